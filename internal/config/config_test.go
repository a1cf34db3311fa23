package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Empty values are treated as unset.
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGIN", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  mode: test\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 3001 {
		t.Errorf("port = %d, want 3001", cfg.Server.Port)
	}
	if cfg.Server.Mode != "test" {
		t.Errorf("mode = %q, want test", cfg.Server.Mode)
	}
	if len(cfg.Server.CORS.AllowedOrigins) != 1 || cfg.Server.CORS.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("allowed origins = %v", cfg.Server.CORS.AllowedOrigins)
	}
	if cfg.Flickr.Timeout != 10*time.Second {
		t.Errorf("flickr timeout = %v, want 10s", cfg.Flickr.Timeout)
	}
	if cfg.Flickr.PageSize != 20 {
		t.Errorf("page size = %d, want 20", cfg.Flickr.PageSize)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("ALLOWED_ORIGIN", "https://gallery.example.com/")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("flickr:\n  timeout: 3s\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8088 {
		t.Errorf("port = %d, want 8088", cfg.Server.Port)
	}
	if len(cfg.Server.CORS.AllowedOrigins) != 1 || cfg.Server.CORS.AllowedOrigins[0] != "https://gallery.example.com" {
		t.Errorf("allowed origins = %v", cfg.Server.CORS.AllowedOrigins)
	}
	if cfg.Flickr.Timeout != 3*time.Second {
		t.Errorf("flickr timeout = %v, want 3s", cfg.Flickr.Timeout)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		Server: ServerConfig{Port: 3001, CORS: CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}},
		Flickr: FlickrConfig{Timeout: time.Second, PageSize: 20},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "no origin", mutate: func(c *Config) { c.Server.CORS.AllowedOrigins = nil }, wantErr: true},
		{name: "allow all without list", mutate: func(c *Config) {
			c.Server.CORS.AllowedOrigins = nil
			c.Server.CORS.AllowAllOrigins = true
		}},
		{name: "zero timeout", mutate: func(c *Config) { c.Flickr.Timeout = 0 }, wantErr: true},
		{name: "zero page size", mutate: func(c *Config) { c.Flickr.PageSize = 0 }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := base
			c.Server.CORS.AllowedOrigins = append([]string(nil), base.Server.CORS.AllowedOrigins...)
			tc.mutate(&c)
			err := c.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestSplitOrigins(t *testing.T) {
	got := splitOrigins([]string{"http://a.test, http://b.test/", " ", "http://c.test"})
	want := []string{"http://a.test", "http://b.test", "http://c.test"}
	if len(got) != len(want) {
		t.Fatalf("splitOrigins = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("splitOrigins[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
