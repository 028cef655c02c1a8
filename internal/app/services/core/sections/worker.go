package sections

import (
	"context"
	"recognition-service/internal/app/contracts"
	"recognition-service/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultCatalogRefreshSpec = "@every 10m"

// Worker periodically rebuilds the cached section catalog.
type Worker struct {
	log            *zap.Logger
	spec           string
	sectionUsecase contracts.SectionUsecase
	cron           *cron.Cron
	runCtx         context.Context
	cancel         context.CancelFunc
}

func NewWorker(log *zap.Logger, spec string, sectionUsecase contracts.SectionUsecase) *Worker {
	return &Worker{log: log, spec: spec, sectionUsecase: sectionUsecase}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("sections.worker: invalid cron spec; falling back to default",
			zap.String("cron_spec", w.spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(defaultCatalogRefreshSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running refresh to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	if err := w.sectionUsecase.InvalidateCatalog(ctx); err != nil {
		w.log.Warn("sections.worker: failed to invalidate catalog", zap.Error(err))
		return
	}

	catalog, err := w.sectionUsecase.FindCatalog(ctx)
	if err != nil {
		w.log.Warn("sections.worker: failed to rebuild catalog", zap.Error(err))
		return
	}

	w.log.Info("sections.worker: catalog refreshed",
		zap.String(constvars.LoggingCacheKeyKey, constvars.RedisKeySectionCatalog),
		zap.Int(constvars.LoggingSectionCountKey, len(catalog.Sections)),
		zap.Int(constvars.LoggingTaskCountKey, len(catalog.Tasks)),
	)
}
