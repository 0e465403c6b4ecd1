// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package sbasearch ties the configuration, API client, dataset store and
// run pipeline together behind a single App facade.
package sbasearch

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/sbasearch/api"
	"github.com/poiesic/sbasearch/config"
	"github.com/poiesic/sbasearch/core"
	"github.com/poiesic/sbasearch/pipeline"
	"github.com/poiesic/sbasearch/storage"
	"github.com/poiesic/sbasearch/storage/badger"
)

// App wires the search client and optional dataset store for running
// searches.
type App struct {
	cfg     *config.Config
	backend *badger.Backend
	dataset storage.DatasetRepository
	monitor pipeline.RunMonitor
	logger  *slog.Logger
}

// AppOption configures an App.
type AppOption func(*App)

// WithConfig supplies a loaded configuration.
// Default is config.Default().
func WithConfig(cfg *config.Config) AppOption {
	return func(a *App) {
		if cfg != nil {
			a.cfg = cfg
		}
	}
}

// WithMonitor sets a run monitor passed through to every pipeline run.
func WithMonitor(monitor pipeline.RunMonitor) AppOption {
	return func(a *App) {
		a.monitor = monitor
	}
}

// New creates an App. When dbPath is non-empty, runs are persisted to a
// badger dataset at that path.
func New(dbPath string, opts ...AppOption) (*App, error) {
	a := &App{
		cfg:    config.Default(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if dbPath != "" {
		backend, err := badger.OpenBackend(dbPath, false)
		if err != nil {
			return nil, err
		}
		dataset, err := badger.NewDatasetRepository(backend)
		if err != nil {
			backend.Close()
			return nil, err
		}
		a.backend = backend
		a.dataset = dataset
	}

	return a, nil
}

// Run executes one search run with the app's configuration. Input values
// take precedence over configured defaults for the per-request timeout and
// the enrichment concurrency.
func (a *App) Run(ctx context.Context, input *core.RunInput) (*pipeline.Result, error) {
	timeout := a.cfg.RequestTimeout()
	if input.RequestTimeoutSecs > 0 {
		timeout = time.Duration(input.RequestTimeoutSecs * float64(time.Second))
	}

	if input.ProfileConcurrency == 0 {
		input.ProfileConcurrency = a.cfg.Profiles.Concurrency
	}

	client := api.NewClient(a.cfg.API.BaseURL,
		api.WithTimeout(timeout),
		api.WithRetryDelay(a.cfg.RetryDelay()),
		api.WithProxySource(proxySource(a.cfg)),
		api.WithLogger(a.logger),
	)

	pipeOpts := []pipeline.Option{pipeline.WithLogger(a.logger)}
	if a.dataset != nil {
		pipeOpts = append(pipeOpts, pipeline.WithDataset(a.dataset))
	}
	if a.monitor != nil {
		pipeOpts = append(pipeOpts, pipeline.WithMonitor(a.monitor))
	}

	p, err := pipeline.New(client, pipeOpts...)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx, input)
}

// Dataset returns the dataset repository, or nil when persistence is
// disabled.
func (a *App) Dataset() storage.DatasetRepository {
	return a.dataset
}

// Close releases the dataset store and backend.
func (a *App) Close() error {
	if a.dataset != nil {
		if err := a.dataset.Close(); err != nil {
			a.logger.Error("error closing dataset repository", "err", err)
			return err
		}
	}
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.logger.Error("error closing backend storage", "err", err)
			return err
		}
	}
	return nil
}

// proxySource builds the per-request proxy capability from configuration.
// Returns nil when no proxies are configured, which disables proxying.
func proxySource(cfg *config.Config) api.ProxySource {
	source := api.NewRoundRobinProxies(cfg.Proxies)
	if source == nil {
		return nil
	}
	return source
}
