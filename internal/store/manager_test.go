// Mercatus - E-commerce Performance Analytics Dashboard
// Copyright 2026 M. Varga (mercatus-io)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mercatus-io/mercatus

package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "monthly_aggregates.csv", monthlyCSV)
	return NewManager(dir), dir
}

func TestManagerCurrentBeforeLoad(t *testing.T) {
	m, _ := newTestManager(t)

	if snap, ok := m.Current(); ok || snap != nil {
		t.Error("no snapshot should be published before Load")
	}
}

func TestManagerLoadPublishes(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	snap, ok := m.Current()
	if !ok {
		t.Fatal("snapshot should be published after Load")
	}
	if !snap.Available(DatasetMonthly) {
		t.Error("primary dataset should be available")
	}
	if snap.LoadedAt().IsZero() {
		t.Error("LoadedAt should be set")
	}

	again, _ := m.Current()
	if again != snap {
		t.Error("Current should return the same snapshot until a reload")
	}
}

func TestManagerLoadFailsWithoutPrimary(t *testing.T) {
	m := NewManager(t.TempDir())

	err := m.Load()
	if !errors.Is(err, ErrPrimaryUnavailable) {
		t.Fatalf("Load() error = %v, want ErrPrimaryUnavailable", err)
	}
	if _, ok := m.Current(); ok {
		t.Error("failed load must not publish a snapshot")
	}
}

func TestManagerReloadKeepsOldSnapshotOnFailure(t *testing.T) {
	m, dir := newTestManager(t)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	old, _ := m.Current()

	if err := os.Remove(filepath.Join(dir, "monthly_aggregates.csv")); err != nil {
		t.Fatalf("remove primary: %v", err)
	}

	_, err := m.Reload()
	if !errors.Is(err, ErrPrimaryUnavailable) {
		t.Fatalf("Reload() error = %v, want ErrPrimaryUnavailable", err)
	}

	cur, ok := m.Current()
	if !ok || cur != old {
		t.Error("failed reload must keep the previous snapshot live")
	}
}

func TestManagerReloadSwapsSnapshot(t *testing.T) {
	m, dir := newTestManager(t)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	old, _ := m.Current()

	writeFixture(t, dir, "monthly_aggregates.csv", monthlyCSV+
		"2024-03,Acme Ltd,Brand C,webshop,FR,No campaign,False,3,300.0,0.0,300.0,100.0,0.0,0.0\n")

	snap, err := m.Reload()
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if snap == old {
		t.Error("reload should publish a new snapshot")
	}
	monthly, _ := snap.Table(DatasetMonthly)
	if monthly.NumRows() != 4 {
		t.Errorf("reloaded rows = %d, want 4", monthly.NumRows())
	}

	cur, _ := m.Current()
	if cur != snap {
		t.Error("Current should return the reloaded snapshot")
	}
}

func TestManagerReloadIfChanged(t *testing.T) {
	m, dir := newTestManager(t)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	old, _ := m.Current()

	t.Run("no change is a no-op", func(t *testing.T) {
		snap, swapped, err := m.ReloadIfChanged()
		if err != nil {
			t.Fatalf("ReloadIfChanged() error = %v", err)
		}
		if swapped {
			t.Error("unchanged files should not swap")
		}
		if snap != old {
			t.Error("no-op should return the current snapshot")
		}
	})

	t.Run("appeared file swaps", func(t *testing.T) {
		writeFixture(t, dir, "sku_summary.csv", "sku,revenue_alloc_gbp\nSKU-A,10.0\n")

		snap, swapped, err := m.ReloadIfChanged()
		if err != nil {
			t.Fatalf("ReloadIfChanged() error = %v", err)
		}
		if !swapped {
			t.Fatal("appeared file should trigger a swap")
		}
		if !snap.Available(DatasetSKUSummary) {
			t.Error("new dataset should be available after swap")
		}
	})
}

func TestManagerConcurrentReaders(t *testing.T) {
	m, _ := newTestManager(t)
	if err := m.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snap, ok := m.Current()
				if !ok {
					t.Error("snapshot vanished")
					return
				}
				if _, ok := snap.Table(DatasetMonthly); !ok {
					t.Error("primary table vanished")
					return
				}
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.Reload(); err != nil {
				t.Errorf("Reload() error = %v", err)
			}
		}()
	}
	wg.Wait()
}
