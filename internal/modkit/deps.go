// Package modkit provides module wiring and core deps
package modkit

import (
	"movielens/internal/adapters/objectstore"
	"movielens/internal/core/dataset"
	"movielens/internal/platform/config"
	"movielens/internal/platform/logger"
	recdomain "movielens/internal/services/recommend/domain"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log       logger.Logger
	Cfg       config.Conf
	Data      *dataset.Store
	Objects   objectstore.Store        // optional; nil disables staging
	Inference recdomain.InferencePort // optional for the batch tool
}

// Named returns Log tagged with a component field
func (d Deps) Named(component string) logger.Logger {
	return d.Log.With().Str("component", component).Logger()
}
