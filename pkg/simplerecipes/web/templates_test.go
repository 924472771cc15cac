package web

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplates(t *testing.T) {
	tmpl := DefaultTemplates()
	var buf bytes.Buffer
	err := tmpl.Render(&buf, PagePost, postPage{Title: "Gone", Message: "Blog post not found", NotFound: true})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<title>Gone · Simple Recipes</title>")
	assert.Contains(t, buf.String(), "Browse all posts")

	assert.Error(t, tmpl.Render(&buf, "missing.html", nil))
}

func writeTemplates(t *testing.T, dir, marker string) {
	t.Helper()
	files := map[string]string{
		layoutName: `{{define "layout"}}` + marker + `{{template "content" .}}{{end}}`,
		PageHome:   `{{define "content"}}home{{end}}`,
		PageBlog:   `{{define "content"}}blog{{end}}`,
		PagePost:   `{{define "content"}}post{{end}}`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestTemplatesFromDirReloads(t *testing.T) {
	dir := t.TempDir()
	writeTemplates(t, dir, "v1:")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tmpl, err := TemplatesFromDir(ctx, dir)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, PageHome, nil))
	assert.Equal(t, "v1:home", buf.String())

	writeTemplates(t, dir, "v2:")
	assert.Eventually(t, func() bool {
		var out bytes.Buffer
		return tmpl.Render(&out, PageHome, nil) == nil && out.String() == "v2:home"
	}, 5*time.Second, 50*time.Millisecond)
}

func TestReloadKeepsPreviousSetOnError(t *testing.T) {
	dir := t.TempDir()
	writeTemplates(t, dir, "ok:")

	tmpl, err := LoadTemplates(os.DirFS(dir))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, PageBlog), []byte(`{{define "content"}}{{.Broken`), 0o644))
	assert.Error(t, tmpl.Reload())

	var buf bytes.Buffer
	require.NoError(t, tmpl.Render(&buf, PageBlog, nil))
	assert.Equal(t, "ok:blog", buf.String())
}
