package sdk

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/searchbeam/filterdsl"
)

func TestNew_NoSource(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("expected error when no model source provided")
	}
}

func TestNew_ConflictingSources(t *testing.T) {
	_, err := New(context.Background(),
		WithRedis("localhost:6379", ""),
		WithStaticModels("models.yaml"),
	)
	if err == nil {
		t.Fatal("expected error for conflicting sources")
	}
}

func TestNew_StaticModels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	data := `models:
  products:
    title: true
    status:
      type: keyword
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write models file: %v", err)
	}

	client, err := New(context.Background(), WithStaticModels(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer client.Close()

	m, err := client.Models().Get(context.Background(), "products")
	if err != nil {
		t.Fatalf("get model: %v", err)
	}
	if m.Type("status") != filterdsl.FieldTypeKeyword {
		t.Errorf("status type = %s, want keyword", m.Type("status"))
	}

	body, err := client.Queries("products").Filters(context.Background(), map[string]any{
		"status": "active",
	})
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	if _, ok := body["query"]; !ok {
		t.Error("expected query key in body")
	}
}

func TestNew_StaticModels_ReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	if err := os.WriteFile(path, []byte("models:\n  products:\n    title: true\n"), 0o600); err != nil {
		t.Fatalf("write models file: %v", err)
	}

	client, err := New(context.Background(), WithStaticModels(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer client.Close()

	_, err = client.Models().Put(context.Background(), "orders", filterdsl.NewModel(nil))
	if !errors.Is(err, ErrRegistryReadOnly) {
		t.Errorf("expected ErrRegistryReadOnly, got %v", err)
	}
	if err := client.Models().Delete(context.Background(), "products"); !errors.Is(err, ErrRegistryReadOnly) {
		t.Errorf("expected ErrRegistryReadOnly, got %v", err)
	}
}

func TestNew_StaticModels_MissingFile(t *testing.T) {
	_, err := New(context.Background(), WithStaticModels("no/such/models.yaml"))
	if err == nil {
		t.Fatal("expected error for missing models file")
	}
}

func TestClient_StaticHealthAndPing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.yaml")
	if err := os.WriteFile(path, []byte("models:\n  products:\n    title: true\n"), 0o600); err != nil {
		t.Fatalf("write models file: %v", err)
	}

	client, err := New(context.Background(), WithStaticModels(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer client.Close()

	health := client.Health(context.Background())
	if health.Status != "ok" {
		t.Errorf("status = %q, want ok", health.Status)
	}
	if len(health.Checks) != 0 {
		t.Errorf("checks = %v, want none for file-backed client", health.Checks)
	}

	if err := client.Ping(context.Background()); err != nil {
		t.Errorf("ping: %v", err)
	}
}

func TestClientOptions(t *testing.T) {
	cfg := &clientConfig{}

	WithRedis("localhost:6379", "secret").apply(cfg)
	if cfg.addrs[0] != "localhost:6379" {
		t.Errorf("addr = %q, want localhost:6379", cfg.addrs[0])
	}
	if cfg.password != "secret" {
		t.Errorf("password = %q, want secret", cfg.password)
	}

	WithUsername("svc").apply(cfg)
	if cfg.username != "svc" {
		t.Errorf("username = %q, want svc", cfg.username)
	}

	WithDB(3).apply(cfg)
	if cfg.db != 3 {
		t.Errorf("db = %d, want 3", cfg.db)
	}

	WithKeyPrefix("search:").apply(cfg)
	if cfg.keyPrefix != "search:" {
		t.Errorf("keyPrefix = %q, want search:", cfg.keyPrefix)
	}

	cfg2 := &clientConfig{}
	WithStaticModels("config/models.yaml").apply(cfg2)
	if cfg2.modelsFile != "config/models.yaml" {
		t.Errorf("modelsFile = %q, want config/models.yaml", cfg2.modelsFile)
	}

	cfg3 := &clientConfig{}
	logger := slog.Default()
	WithLogger(logger).apply(cfg3)
	if cfg3.logger != logger {
		t.Error("expected logger to be set")
	}

	reg := prometheus.NewRegistry()
	WithPrometheus(reg).apply(cfg3)
	if cfg3.metricsReg != reg {
		t.Error("expected metricsReg to be set")
	}
}

func TestClient_Close_NilStore(t *testing.T) {
	c := &Client{}
	c.Close()
}

func TestObserver_NilSafe(t *testing.T) {
	var obs *observer
	obs.observe("test", time.Now(), nil)
	obs.observe("test", time.Now(), errors.New("err"))
}

func TestObserver_WithPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}

	obs.observe("model.get", time.Now().Add(-10*time.Millisecond), nil)
	obs.observe("model.get", time.Now(), errors.New("fail"))

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected metrics to be registered")
	}

	// Verify operations counter has both ok and error.
	found := false
	for _, f := range families {
		if f.GetName() == "filterdsl_sdk_operations_total" {
			found = true
			if len(f.GetMetric()) != 2 {
				t.Errorf("expected 2 metric samples, got %d", len(f.GetMetric()))
			}
		}
	}
	if !found {
		t.Error("filterdsl_sdk_operations_total not found")
	}
}

func TestObserver_ReuseRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := newObserver(nil, reg); err != nil {
		t.Fatalf("first newObserver: %v", err)
	}
	// Second observer on the same registry reuses the collectors.
	if _, err := newObserver(nil, reg); err != nil {
		t.Fatalf("second newObserver: %v", err)
	}
}

func TestObserver_WithLogger(t *testing.T) {
	logger := slog.Default()
	obs, err := newObserver(logger, nil)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}
	obs.observe("test.op", time.Now(), nil)
	obs.observe("test.op", time.Now(), errors.New("test error"))
}

func TestObserver_NoMetricsNoLogger(t *testing.T) {
	obs, err := newObserver(nil, nil)
	if err != nil {
		t.Fatalf("newObserver: %v", err)
	}
	obs.observe("noop", time.Now(), nil)
}
