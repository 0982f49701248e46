package worker

import (
	"context"
	"sync"
	"time"
	"wager-arena/internal/service"

	"github.com/rs/zerolog"
)

// ExpiryWorker sweeps waiting matches past their join window. Listings
// already filter expired matches; the sweep just tidies the table.
type ExpiryWorker struct {
	matches  service.MatchService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewExpiryWorker(matches service.MatchService, interval time.Duration, logger zerolog.Logger) *ExpiryWorker {
	return &ExpiryWorker{
		matches:  matches,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *ExpiryWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Expiry worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running expiry sweep")
				if _, err := w.matches.ExpireStale(ctx); err != nil {
					w.logger.Error().Err(err).Msg("Failed to run expiry sweep")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Expiry worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Expiry worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *ExpiryWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
