package config

import (
	"strings"
	"testing"
)

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("CONTENT_BACKEND", "contentful")
	t.Setenv("CONTENTFUL_SPACE_ID", "space")
	t.Setenv("CONTENTFUL_ACCESS_TOKEN", "token")
	t.Setenv("PAGE_SIZE", "12")
	t.Setenv("RENDER_MARKDOWN", "true")
	t.Setenv("ENABLE_METRICS", "false")

	cfg, err := Load(WithEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("expected port 9999, got: %s", cfg.Port)
	}
	if cfg.ContentBackend != BackendContentful {
		t.Errorf("expected contentful backend, got: %s", cfg.ContentBackend)
	}
	if cfg.Contentful.SpaceID != "space" || cfg.Contentful.AccessToken != "token" {
		t.Errorf("unexpected contentful config: %+v", cfg.Contentful)
	}
	if cfg.Contentful.Environment != "master" {
		t.Errorf("expected default environment master, got: %s", cfg.Contentful.Environment)
	}
	if cfg.PageSize != 12 {
		t.Errorf("expected page size 12, got: %d", cfg.PageSize)
	}
	if cfg.PageIncrement != 9 {
		t.Errorf("expected default increment 9, got: %d", cfg.PageIncrement)
	}
	if !cfg.RenderMarkdown {
		t.Error("expected markdown rendering enabled")
	}
	if cfg.EnableMetrics {
		t.Error("expected metrics disabled")
	}
}

func TestEnvKeepsEarlierOptions(t *testing.T) {
	cfg, err := Load(WithPort("7070"), WithEnv())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("expected port 7070, got: %s", cfg.Port)
	}
}

func TestEnvInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric page size", "PAGE_SIZE", "many"},
		{"unknown backend", "CONTENT_BACKEND", "postgres"},
		{"contentful without credentials", "CONTENT_BACKEND", "contentful"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(WithEnv()); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestEnvUsage(t *testing.T) {
	usage := EnvUsage()
	for _, key := range []string{"PORT", "CONTENTFUL_SPACE_ID", "PAGE_SIZE"} {
		if !strings.Contains(usage, key) {
			t.Errorf("expected usage to mention %s", key)
		}
	}
}
