package workers

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the startup jobs enabled by cfg.
func NewWorkers(storages *store.Storages, cfg config.Workers, log *logger.Logger) *Workers {
	w := &Workers{}

	if !cfg.SkipLegacyMigration {
		w.workers = append(w.workers, NewLegacyMigrationWorker(
			storages.RecipeRepository,
			storages.FavoritesRepository,
			storages.ProfileRepository,
			utils.NewUUIDGenerator(),
			log,
		))
	}

	return w
}

// Run runs every worker in order. A failing worker does not stop the
// following ones; all failures are joined into the returned error.
func (w *Workers) Run(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		if err := worker.Run(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
