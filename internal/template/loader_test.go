package template

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

var defaultNames = []string{"Xresources", "alacritty.toml", "colors.css", "foot.ini", "kitty.conf"}

func TestLoaderList(t *testing.T) {
	names, err := NewLoader().WithCustomDir(t.TempDir()).List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(names, defaultNames) {
		t.Errorf("List() = %v, want %v", names, defaultNames)
	}
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader().WithCustomDir(dir)

	t.Run("embedded when no custom exists", func(t *testing.T) {
		content, fromCustom, err := loader.Load("kitty.conf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fromCustom {
			t.Error("expected embedded template, got custom")
		}
		if !strings.Contains(string(content), "$$BACKGROUND$$") {
			t.Error("expected embedded kitty template to reference BACKGROUND")
		}
	})

	t.Run("custom overrides embedded", func(t *testing.T) {
		custom := []byte("background $$COLOR0$$\n")
		if err := os.WriteFile(filepath.Join(dir, "kitty.conf"), custom, 0o644); err != nil {
			t.Fatalf("failed to write custom template: %v", err)
		}
		content, fromCustom, err := loader.Load("kitty.conf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fromCustom || string(content) != string(custom) {
			t.Errorf("got custom=%v content %q", fromCustom, content)
		}
	})

	t.Run("custom only template", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "mine.conf"), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write custom template: %v", err)
		}
		if _, fromCustom, err := loader.Load("mine.conf"); err != nil || !fromCustom {
			t.Errorf("got custom=%v err=%v", fromCustom, err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, _, err := loader.Load("nonexistent.conf")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got %v", err)
		}
	})
}

func TestDefaultCustomDir(t *testing.T) {
	t.Setenv(EnvTemplateDir, "/tmp/wallhue-templates")
	if got := DefaultCustomDir(); got != "/tmp/wallhue-templates" {
		t.Errorf("DefaultCustomDir() = %q", got)
	}

	t.Setenv(EnvTemplateDir, "")
	if got := DefaultCustomDir(); !strings.HasSuffix(got, filepath.Join(".config", "wallhue", "templates")) {
		t.Errorf("DefaultCustomDir() = %q", got)
	}
}

func TestLoaderInfo(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader().WithCustomDir(dir)

	info := loader.Info("foot.ini")
	if !info.EmbeddedExists || info.CustomExists || info.Source() != "embedded" {
		t.Errorf("unexpected info: %+v", info)
	}
	if info.CustomPath != filepath.Join(dir, "foot.ini") {
		t.Errorf("CustomPath = %q", info.CustomPath)
	}

	if _, err := loader.Dump("foot.ini", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info := loader.Info("foot.ini"); info.Source() != "custom" {
		t.Errorf("Source() = %q, want custom", info.Source())
	}
	if info := loader.Info("nothing"); info.Source() != "missing" {
		t.Errorf("Source() = %q, want missing", info.Source())
	}
}

func TestLoaderDump(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "templates")
	loader := NewLoader().WithCustomDir(dir)

	path, err := loader.Dump("colors.css", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "colors.css") {
		t.Errorf("Dump() path = %q", path)
	}

	if _, err := loader.Dump("colors.css", false); !errors.Is(err, ErrTemplateExists) {
		t.Errorf("expected ErrTemplateExists, got %v", err)
	}

	if err := os.WriteFile(path, []byte("edited"), 0o644); err != nil {
		t.Fatalf("failed to edit: %v", err)
	}
	if _, err := loader.Dump("colors.css", true); err != nil {
		t.Fatalf("forced dump failed: %v", err)
	}
	content, _ := os.ReadFile(path)
	if string(content) == "edited" {
		t.Error("forced dump did not overwrite")
	}

	if _, err := loader.Dump("missing.conf", true); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestLoaderDumpAll(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader().WithCustomDir(dir)

	if _, err := loader.Dump("kitty.conf", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dumped, err := loader.DumpAll(false)
	if !errors.Is(err, ErrTemplateExists) {
		t.Errorf("expected skipped kitty.conf to be reported, got %v", err)
	}
	if len(dumped) != len(defaultNames)-1 {
		t.Errorf("dumped %d templates, want %d", len(dumped), len(defaultNames)-1)
	}

	dumped, err = loader.DumpAll(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dumped) != len(defaultNames) {
		t.Errorf("dumped %d templates, want %d", len(dumped), len(defaultNames))
	}
}

// Every embedded template renders against a resolver that accepts anything.
func TestEmbeddedTemplatesWellFormed(t *testing.T) {
	loader := NewLoader().WithCustomDir(t.TempDir())
	names, err := loader.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			content, _, err := loader.Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if _, err := NewRenderer(echoResolver{}).Render(name, strings.NewReader(string(content))); err != nil {
				t.Errorf("render: %v", err)
			}
		})
	}
}

type echoResolver struct{}

func (echoResolver) ResolveText(expr string) (string, error) { return "<" + expr + ">", nil }
