// Package module implements the batchinput module
package module

import (
	"movielens/internal/modkit"
	"movielens/internal/services/batchinput/domain"
	"movielens/internal/services/batchinput/service"
)

// Ports exposed by the batchinput module
type Ports struct {
	Builder domain.BuilderPort
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	name  string
	ports Ports
}

// New constructs the batchinput module. deps.Data is required; deps.Objects
// is only needed when files are staged
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("batchinput"),
	}, opts...)...)

	if deps.Data == nil {
		panic("batchinput module: Deps missing Data")
	}

	cfg := FromConfig(deps.Cfg)
	if overrides.NumRecords != 0 {
		cfg.NumRecords = overrides.NumRecords
	}
	if overrides.ItemsPerRank != 0 {
		cfg.ItemsPerRank = overrides.ItemsPerRank
	}
	if overrides.OutputDir != "" {
		cfg.OutputDir = overrides.OutputDir
	}
	if overrides.KeyPrefix != "" {
		cfg.KeyPrefix = overrides.KeyPrefix
	}

	svc := service.New(deps.Data, deps.Objects, service.Config{
		NumRecords:   cfg.NumRecords,
		ItemsPerRank: cfg.ItemsPerRank,
		OutputDir:    cfg.OutputDir,
		KeyPrefix:    cfg.KeyPrefix,
	})
	return &Module{deps: deps, name: b.Name, ports: Ports{Builder: svc}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
