// Package module implements the recommend module
package module

import (
	"movielens/internal/modkit"
	"movielens/internal/services/recommend/domain"
	"movielens/internal/services/recommend/service"
)

// Ports exposed by the recommend module
type Ports struct {
	Demos domain.DemoPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	name  string
	ports Ports
}

// New constructs the recommend module. deps.Data and deps.Inference are required
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("recommend"),
	}, opts...)...)

	if deps.Data == nil || deps.Inference == nil {
		panic("recommend module: Deps missing Data or Inference")
	}

	cfg := FromConfig(deps.Cfg)
	if overrides.NumResults != 0 {
		cfg.NumResults = overrides.NumResults
	}
	if overrides.RankItems != 0 {
		cfg.RankItems = overrides.RankItems
	}

	svc := service.New(deps.Data, deps.Inference, service.Config{
		NumResults: cfg.NumResults,
		RankItems:  cfg.RankItems,
	})
	return &Module{deps: deps, name: b.Name, ports: Ports{Demos: svc}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
