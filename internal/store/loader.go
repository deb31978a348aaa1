// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

/*
loader.go - Dataset Loader

Reads the catalog CSVs from the data directory into an immutable
Snapshot. Raw file loads are memoized by file identity (path, size,
mtime) so a reload with unchanged files re-parses nothing. Campaign
normalization runs before the memo store, so cached tables are always
in canonical form.
*/

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mercatus-io/mercatus/internal/frame"
	"github.com/mercatus-io/mercatus/internal/logging"
	"github.com/mercatus-io/mercatus/internal/metrics"
	"github.com/mercatus-io/mercatus/internal/rules"
)

var (
	// ErrPrimaryUnavailable marks a load aborted because
	// monthly_aggregates.csv is missing or unreadable.
	ErrPrimaryUnavailable = errors.New("primary dataset unavailable")

	// ErrYearMonthMissing marks a load aborted because the primary
	// dataset has no YearMonth column or the column holds no values.
	ErrYearMonthMissing = errors.New("primary dataset has no usable YearMonth column")
)

// Load result classifications reported to metrics.
const (
	loadParsed      = "parsed"
	loadMemoized    = "memoized"
	loadUnavailable = "unavailable"
	loadError       = "error"
)

// noCampaignPattern matches the raw spellings of the coupon-free
// campaign bucket ("no coupon", "No Coupon", "NO COUPON", ...).
var noCampaignPattern = regexp.MustCompile(`(?i)^no coupon$`)

// fileIdentity is the memo key fragment for one loaded file. ModTime
// is kept as UnixNano so identities compare with ==.
type fileIdentity struct {
	size    int64
	modTime int64
}

type memoEntry struct {
	identity fileIdentity
	table    *frame.Table
}

// Loader reads catalog datasets from a data directory, memoizing
// parsed tables by file identity. Safe for concurrent use, though the
// Manager serializes full snapshot loads anyway.
type Loader struct {
	dataDir string
	logger  zerolog.Logger

	mu   sync.Mutex
	memo map[string]memoEntry // keyed by absolute file path
}

// NewLoader creates a loader rooted at the given data directory.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir: dataDir,
		logger:  logging.WithComponent("store"),
		memo:    make(map[string]memoEntry),
	}
}

// DataDir returns the directory datasets are read from.
func (l *Loader) DataDir() string { return l.dataDir }

// LoadSnapshot reads every catalog dataset and assembles a new
// immutable Snapshot. A missing or unreadable optional dataset is
// degraded to an unavailable status with a warning; a missing primary
// dataset, or a primary dataset without a usable YearMonth column,
// aborts the load.
func (l *Loader) LoadSnapshot() (*Snapshot, error) {
	started := time.Now()
	snap := &Snapshot{
		tables:     make(map[string]*frame.Table, len(catalog)),
		identities: make(map[string]fileIdentity, len(catalog)),
	}

	for _, desc := range Catalog() {
		t, id, result, err := l.loadDataset(desc)
		rows := 0
		if t != nil {
			rows = t.NumRows()
		}
		metrics.RecordDatasetLoad(desc.Name, result, rows)

		if err != nil {
			if desc.Mandatory {
				return nil, fmt.Errorf("%w: %v", ErrPrimaryUnavailable, err)
			}
			l.logger.Warn().
				Str("dataset", desc.Name).
				Str("file", desc.File).
				Err(err).
				Msg("Optional dataset unavailable")
			if result == loadError {
				// Remember the broken file's identity so the refresher
				// does not re-parse it until it actually changes.
				snap.identities[desc.Name] = id
			}
			snap.statuses = append(snap.statuses, DatasetStatus{
				Name:   desc.Name,
				File:   desc.File,
				Reason: statusReason(err),
			})
			continue
		}

		snap.tables[desc.Name] = t
		snap.identities[desc.Name] = id
		snap.statuses = append(snap.statuses, DatasetStatus{
			Name:      desc.Name,
			File:      desc.File,
			Available: true,
			Rows:      rows,
		})
	}

	primary := snap.tables[DatasetMonthly]
	if err := checkYearMonth(primary); err != nil {
		return nil, err
	}

	if rt, ok := snap.tables[DatasetRules]; ok {
		set, err := rules.FromTable(rt)
		if err != nil {
			l.logger.Warn().
				Str("dataset", DatasetRules).
				Err(err).
				Msg("Rule table rejected")
			delete(snap.tables, DatasetRules)
			snap.markUnavailable(DatasetRules, err.Error())
		} else {
			snap.ruleSet = set
			snap.ruleDefaults = set.Defaults()
		}
	}

	snap.filters = buildFilterMeta(primary)
	if rfm, ok := snap.tables[DatasetRFM]; ok {
		snap.rfmMeta = buildRFMMeta(rfm)
	}
	snap.loadedAt = time.Now()
	snap.loadDuration = time.Since(started)
	return snap, nil
}

// ChangedSince reports whether any catalog file differs from the
// identities recorded in the given snapshot. A file that appeared or
// vanished counts as changed. Used by the background refresher to
// skip no-op reloads.
func (l *Loader) ChangedSince(snap *Snapshot) bool {
	if snap == nil {
		return true
	}
	for _, desc := range Catalog() {
		info, err := os.Stat(filepath.Join(l.dataDir, desc.File))
		if err != nil {
			if _, had := snap.identities[desc.Name]; had {
				return true
			}
			continue
		}
		id, had := snap.identities[desc.Name]
		if !had || id != (fileIdentity{size: info.Size(), modTime: info.ModTime().UnixNano()}) {
			return true
		}
	}
	return false
}

// loadDataset reads one dataset, consulting the memo first. The third
// return classifies the outcome for metrics.
func (l *Loader) loadDataset(desc Descriptor) (*frame.Table, fileIdentity, string, error) {
	path := filepath.Join(l.dataDir, desc.File)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fileIdentity{}, loadUnavailable, err
	}
	if info.IsDir() {
		return nil, fileIdentity{}, loadUnavailable, fmt.Errorf("%s is a directory", path)
	}
	id := fileIdentity{size: info.Size(), modTime: info.ModTime().UnixNano()}

	l.mu.Lock()
	entry, ok := l.memo[path]
	l.mu.Unlock()
	if ok && entry.identity == id {
		return entry.table, id, loadMemoized, nil
	}

	t, err := frame.ReadCSVFile(path)
	if err != nil {
		return nil, id, loadError, err
	}
	if desc.Name == DatasetMonthly {
		t, err = normalizeCampaigns(t)
		if err != nil {
			return nil, id, loadError, err
		}
	}

	l.mu.Lock()
	l.memo[path] = memoEntry{identity: id, table: t}
	l.mu.Unlock()
	return t, id, loadParsed, nil
}

// normalizeCampaigns trims campaign_type_clean values and rewrites any
// casing of "no coupon" to the canonical NoCampaignLabel. Tables
// without the column pass through unchanged.
func normalizeCampaigns(t *frame.Table) (*frame.Table, error) {
	col, ok := t.Col(ColCampaignType)
	if !ok {
		return t, nil
	}
	values := make([]frame.Value, col.Len())
	for i := 0; i < col.Len(); i++ {
		v := col.Value(i)
		s, isText := v.Text()
		if !isText {
			values[i] = v
			continue
		}
		s = strings.TrimSpace(s)
		if noCampaignPattern.MatchString(s) {
			s = NoCampaignLabel
		}
		values[i] = frame.Str(s)
	}
	return t.WithColumn(frame.NewColumn(ColCampaignType, values))
}

// checkYearMonth enforces the fatal-configuration rule: the primary
// dataset must carry a YearMonth column with at least one value.
func checkYearMonth(primary *frame.Table) error {
	if primary == nil {
		return ErrPrimaryUnavailable
	}
	ym, ok := primary.Col(ColYearMonth)
	if !ok {
		return ErrYearMonthMissing
	}
	for i := 0; i < ym.Len(); i++ {
		if !ym.Value(i).IsMissing() {
			return nil
		}
	}
	return ErrYearMonthMissing
}

func statusReason(err error) string {
	if errors.Is(err, os.ErrNotExist) {
		return "file not found"
	}
	return err.Error()
}
