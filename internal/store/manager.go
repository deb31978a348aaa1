// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
manager.go - Snapshot Manager

Publishes snapshots through an atomic pointer. Readers call Current
and never block; reloads are serialized and a failed reload keeps the
previous snapshot live.
*/

package store

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/mercatus-io/mercatus/internal/logging"
	"github.com/mercatus-io/mercatus/internal/metrics"
)

// Manager owns the loader and the currently published snapshot.
type Manager struct {
	loader  *Loader
	current atomic.Pointer[Snapshot]
	logger  zerolog.Logger

	// reloadMu serializes snapshot loads; concurrent reload requests
	// queue rather than duplicating parse work.
	reloadMu sync.Mutex
}

// NewManager creates a manager reading datasets from dataDir. No
// snapshot is published until Load or Reload succeeds.
func NewManager(dataDir string) *Manager {
	return &Manager{
		loader: NewLoader(dataDir),
		logger: logging.WithComponent("store"),
	}
}

// Current returns the published snapshot. The second return is false
// before the first successful load.
func (m *Manager) Current() (*Snapshot, bool) {
	s := m.current.Load()
	return s, s != nil
}

// Load performs the initial snapshot load. Unlike Reload it is
// expected to run at startup, where a primary dataset failure is
// fatal configuration.
func (m *Manager) Load() error {
	_, err := m.Reload()
	return err
}

// Reload loads a fresh snapshot and publishes it. On failure the
// previously published snapshot, if any, stays live and the error is
// returned.
func (m *Manager) Reload() (*Snapshot, error) {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()
	return m.reloadLocked()
}

// ReloadIfChanged reloads only when a catalog file changed since the
// current snapshot was loaded. The second return reports whether a new
// snapshot was published.
func (m *Manager) ReloadIfChanged() (*Snapshot, bool, error) {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	cur := m.current.Load()
	if cur != nil && !m.loader.ChangedSince(cur) {
		return cur, false, nil
	}
	snap, err := m.reloadLocked()
	if err != nil {
		return nil, false, err
	}
	return snap, true, nil
}

// DataDir returns the directory datasets are read from.
func (m *Manager) DataDir() string { return m.loader.DataDir() }

func (m *Manager) reloadLocked() (*Snapshot, error) {
	snap, err := m.loader.LoadSnapshot()
	if err != nil {
		metrics.RecordSnapshotError()
		m.logger.Error().Err(err).Msg("Snapshot load failed; keeping previous snapshot")
		return nil, err
	}

	m.current.Store(snap)
	metrics.RecordSnapshotSwap(snap.LoadDuration(), snap.LoadedAt())

	available := 0
	rows := 0
	for _, st := range snap.Statuses() {
		if st.Available {
			available++
			rows += st.Rows
		}
	}
	m.logger.Info().
		Int("datasets_available", available).
		Int("rows_total", rows).
		Dur("load_duration", snap.LoadDuration()).
		Msg("Snapshot published")
	return snap, nil
}
