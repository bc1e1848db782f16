package timeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tracklinehq/trackline/pkg/errors"
)

func writeContent(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadItemsTOML(t *testing.T) {
	path := writeContent(t, "items.toml", `
[[items]]
title = "Founded"
description = "The beginning"

[[items]]
title = "First release"
link = "https://example.com/v1"
`)

	items, err := LoadItems(path)
	if err != nil {
		t.Fatalf("LoadItems() error = %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Title != "Founded" {
		t.Errorf("items[0].Title = %q, want %q", items[0].Title, "Founded")
	}
	if items[1].Link != "https://example.com/v1" {
		t.Errorf("items[1].Link = %q, want %q", items[1].Link, "https://example.com/v1")
	}
}

func TestLoadItemsYAML(t *testing.T) {
	path := writeContent(t, "items.yaml", `
items:
  - title: Founded
  - title: First release
  - title: Acquired
`)

	items, err := LoadItems(path)
	if err != nil {
		t.Fatalf("LoadItems() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if items[2].Title != "Acquired" {
		t.Errorf("items[2].Title = %q, want %q", items[2].Title, "Acquired")
	}
}

func TestLoadItemsErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		data     string
		wantCode errors.Code
	}{
		{
			name:     "unsupported extension",
			file:     "items.json",
			data:     `{}`,
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "broken toml",
			file:     "items.toml",
			data:     "[[items\n",
			wantCode: errors.ErrCodeInvalidContent,
		},
		{
			name:     "untitled item",
			file:     "items.yaml",
			data:     "items:\n  - description: no title here\n",
			wantCode: errors.ErrCodeInvalidContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeContent(t, tt.file, tt.data)
			_, err := LoadItems(path)
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestLoadItemsRejectsTraversal(t *testing.T) {
	_, err := LoadItems("../outside.toml")
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidPath)
	}
}

func TestItemGeometryCenter(t *testing.T) {
	g := ItemGeometry{Index: 0, Offset: 100, Length: 60}
	if got := g.Center(); got != 130 {
		t.Errorf("Center() = %v, want 130", got)
	}
}

func TestFrameFilledCount(t *testing.T) {
	f := Frame{Dots: []bool{true, true, false, false}}
	if got := f.FilledCount(); got != 2 {
		t.Errorf("FilledCount() = %d, want 2", got)
	}
}
