package model

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/searchbeam/filterdsl"
	"github.com/searchbeam/filterdsl/internal/domain"
)

func writeModelsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write models file: %v", err)
	}
	return path
}

func TestLoadStatic_Success(t *testing.T) {
	path := writeModelsFile(t, `
models:
  products:
    title: true
    status:
      type: keyword
    price:
      type: integer
  orders:
    id: true
`)

	s, err := LoadStatic(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, err := s.Get(context.Background(), "products")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Type("title") != filterdsl.FieldTypeText {
		t.Errorf("expected title to default to text, got %q", m.Type("title"))
	}
	if m.Type("status") != filterdsl.FieldTypeKeyword {
		t.Errorf("expected status keyword, got %q", m.Type("status"))
	}
	if m.Type("price") != filterdsl.FieldTypeInteger {
		t.Errorf("expected price integer, got %q", m.Type("price"))
	}
}

func TestLoadStatic_MissingFile(t *testing.T) {
	if _, err := LoadStatic(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadStatic_BadYAML(t *testing.T) {
	path := writeModelsFile(t, "models: [not: a: mapping")
	if _, err := LoadStatic(path); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadStatic_BadModelName(t *testing.T) {
	path := writeModelsFile(t, `
models:
  Products:
    title: true
`)
	_, err := LoadStatic(path)
	if !errors.Is(err, domain.ErrInvalidModelName) {
		t.Errorf("expected ErrInvalidModelName, got %v", err)
	}
}

func TestLoadStatic_BadFieldSpec(t *testing.T) {
	path := writeModelsFile(t, `
models:
  products:
    title: "text"
`)
	_, err := LoadStatic(path)
	if !errors.Is(err, filterdsl.ErrInvalidModel) {
		t.Errorf("expected ErrInvalidModel, got %v", err)
	}
}

func TestStatic_GetNotFound(t *testing.T) {
	path := writeModelsFile(t, "models: {}")
	s, err := LoadStatic(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = s.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrModelNotFound) {
		t.Errorf("expected ErrModelNotFound, got %v", err)
	}
}

func TestStatic_ListSorted(t *testing.T) {
	path := writeModelsFile(t, `
models:
  zebra:
    id: true
  alpha:
    id: true
`)
	s, err := LoadStatic(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	models, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != 2 || models[0].Name != "alpha" || models[1].Name != "zebra" {
		t.Errorf("expected sorted names, got %v", models)
	}
}

func TestStatic_WritesRejected(t *testing.T) {
	path := writeModelsFile(t, "models: {}")
	s, err := LoadStatic(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Put(context.Background(), "products", filterdsl.NewModel(nil)); !errors.Is(err, domain.ErrRegistryReadOnly) {
		t.Errorf("expected ErrRegistryReadOnly from Put, got %v", err)
	}
	if err := s.Delete(context.Background(), "products"); !errors.Is(err, domain.ErrRegistryReadOnly) {
		t.Errorf("expected ErrRegistryReadOnly from Delete, got %v", err)
	}
}
