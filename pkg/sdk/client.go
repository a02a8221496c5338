package sdk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/searchbeam/filterdsl"
	"github.com/searchbeam/filterdsl/internal/db"
	dbRedis "github.com/searchbeam/filterdsl/internal/db/redis"
	"github.com/searchbeam/filterdsl/internal/domain"
	modelrepo "github.com/searchbeam/filterdsl/internal/repository/model"
	healthuc "github.com/searchbeam/filterdsl/internal/usecase/health"
	registryuc "github.com/searchbeam/filterdsl/internal/usecase/registry"
	translateuc "github.com/searchbeam/filterdsl/internal/usecase/translate"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so services can be substituted in tests.
type registryUseCase interface {
	Get(ctx context.Context, name string) (filterdsl.Model, error)
	List(ctx context.Context) ([]domain.NamedModel, error)
	Put(ctx context.Context, name string, fields map[string]any) (filterdsl.Model, error)
	Delete(ctx context.Context, name string) error
}

type translateUseCase interface {
	Translate(ctx context.Context, model string, req filterdsl.SearchRequest) (map[string]any, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the filterdsl SDK entry point.
type Client struct {
	store        db.Store
	registrySvc  registryUseCase
	translateSvc translateUseCase
	healthSvc    healthUseCase
	obs          *observer
}

// New creates a Client over the configured model source.
// The provided context bounds the initial database readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: modelrepo.DefaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 && cfg.modelsFile == "" {
		return nil, errors.New("filterdsl: model source required (use WithRedis or WithStaticModels)")
	}
	if len(cfg.addrs) > 0 && cfg.modelsFile != "" {
		return nil, errors.New("filterdsl: WithRedis and WithStaticModels are mutually exclusive")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	if cfg.modelsFile != "" {
		static, err := modelrepo.LoadStatic(cfg.modelsFile)
		if err != nil {
			return nil, fmt.Errorf("filterdsl: load models file: %w", err)
		}
		c := &Client{obs: obs}
		c.wire(static, nil)
		return c, nil
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("filterdsl: create store: %w", err)
	}
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("filterdsl: database not ready: %w", err)
	}

	c := &Client{store: store, obs: obs}
	c.wire(modelrepo.New(store, cfg.keyPrefix), store)
	return c, nil
}

func (c *Client) wire(repo registryuc.Repository, pinger healthuc.DBPinger) {
	registrySvc := registryuc.New(repo)
	c.registrySvc = registrySvc
	c.translateSvc = translateuc.New(registrySvc)
	c.healthSvc = healthuc.New(pinger)
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity. File-backed clients have no database
// and always report success.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if c.store == nil {
		return nil
	}
	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Models returns the model registry service.
func (c *Client) Models() *ModelService {
	return &ModelService{svc: c.registrySvc, obs: c.obs}
}

// Queries returns the query translation service for a given model.
func (c *Client) Queries(model string) *QueryService {
	return &QueryService{
		model: model,
		svc:   c.translateSvc,
		obs:   c.obs,
	}
}
