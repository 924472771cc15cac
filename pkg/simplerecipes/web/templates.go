package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Page template names
const (
	PageHome = "home.html"
	PageBlog = "blog.html"
	PagePost = "post.html"
)

var pageNames = []string{PageHome, PageBlog, PagePost}

const layoutName = "layout.html"

var templateFuncs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
}

// Templates holds the parsed page templates. Reload swaps the set
// atomically; renders in flight keep the set they started with.
type Templates struct {
	mu    sync.RWMutex
	pages map[string]*template.Template
	fsys  fs.FS
}

// DefaultTemplates returns the embedded page templates
func DefaultTemplates() *Templates {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	t, err := LoadTemplates(sub)
	if err != nil {
		panic(fmt.Sprintf("embedded templates are invalid: %v", err))
	}
	return t
}

// LoadTemplates parses the layout and every page from fsys
func LoadTemplates(fsys fs.FS) (*Templates, error) {
	t := &Templates{fsys: fsys}
	if err := t.Reload(); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload parses the templates again. On error the previous set is kept.
func (t *Templates) Reload() error {
	base, err := template.New(layoutName).Funcs(templateFuncs).ParseFS(t.fsys, layoutName)
	if err != nil {
		return fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return fmt.Errorf("failed to clone layout: %w", err)
		}
		page, err := clone.ParseFS(t.fsys, name)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
		pages[name] = page
	}

	t.mu.Lock()
	t.pages = pages
	t.mu.Unlock()
	return nil
}

// Render executes the layout with the named page into w. The page is
// rendered into a buffer first so a failing template never writes a
// partial response.
func (t *Templates) Render(w io.Writer, name string, data interface{}) error {
	t.mu.RLock()
	page, ok := t.pages[name]
	t.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown page template: %s", name)
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// TemplatesFromDir loads templates from dir and reloads them whenever a
// file in dir changes, until ctx is cancelled.
func TemplatesFromDir(ctx context.Context, dir string) (*Templates, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve template dir: %w", err)
	}

	t, err := LoadTemplates(os.DirFS(absDir))
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(absDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch template dir %s: %w", absDir, err)
	}

	slog.Info("Watching templates", "dir", absDir)
	go t.watchLoop(ctx, watcher)
	return t, nil
}

const reloadDebounce = 200 * time.Millisecond

func (t *Templates) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) != ".html" {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				slog.Debug("Template change detected", "file", event.Name, "op", event.Op.String())
				timer.Reset(reloadDebounce)
			}
		case <-timer.C:
			if err := t.Reload(); err != nil {
				slog.Error("Failed to reload templates", "error", err)
				continue
			}
			slog.Info("Templates reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Template watcher error", "error", err)
		}
	}
}
