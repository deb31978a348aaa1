// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mercatus-io/mercatus/internal/logging"
	"github.com/mercatus-io/mercatus/internal/store"
)

// SnapshotReloader is the slice of the snapshot manager the refresher
// drives. Satisfied by *store.Manager.
type SnapshotReloader interface {
	// ReloadIfChanged reloads only when a catalog file changed since the
	// current snapshot; the bool reports whether a new snapshot was
	// published.
	ReloadIfChanged() (*store.Snapshot, bool, error)
}

// RefreshService periodically re-checks the dataset files and swaps in
// a fresh snapshot when anything changed.
//
// The service is deliberately forgiving: a failed reload is logged and
// retried on the next tick while the previous snapshot stays published,
// so a half-written extract never takes the dashboard down. Only
// context cancellation ends the loop.
type RefreshService struct {
	reloader SnapshotReloader
	interval time.Duration
	onSwap   func(*store.Snapshot)
	logger   zerolog.Logger
	name     string
}

// NewRefreshService creates a refresh service checking the data
// directory every interval. onSwap, if non-nil, runs after each
// published swap (the API registers its cache invalidation here).
// Intervals below one second are raised to one second to keep a
// misconfigured refresher from spinning on os.Stat.
func NewRefreshService(reloader SnapshotReloader, interval time.Duration, onSwap func(*store.Snapshot)) *RefreshService {
	if interval < time.Second {
		interval = time.Second
	}
	return &RefreshService{
		reloader: reloader,
		interval: interval,
		onSwap:   onSwap,
		logger:   logging.WithService("dataset-refresh"),
		name:     "dataset-refresh",
	}
}

// Serve implements suture.Service. It ticks until the context is
// canceled; each tick is one ReloadIfChanged call.
func (s *RefreshService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.interval).
		Msg("Dataset refresh service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Dataset refresh service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.tick()
		}
	}
}

// tick runs a single refresh check.
func (s *RefreshService) tick() {
	start := time.Now()
	snap, swapped, err := s.reloader.ReloadIfChanged()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Background reload failed; keeping previous snapshot")
		return
	}
	if !swapped {
		return
	}

	s.logger.Info().
		Dur("duration", time.Since(start)).
		Msg("Background reload published a new snapshot")
	if s.onSwap != nil {
		s.onSwap(snap)
	}
}

// String implements fmt.Stringer for logging.
// Suture uses this to identify the service in log messages.
func (s *RefreshService) String() string {
	return s.name
}
