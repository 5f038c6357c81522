package store

import (
	"context"
	"path/filepath"
	"testing"

	"mapty/internal/workout"
)

type kvStore interface {
	workout.KV
	Close() error
}

func setupTestDB(t *testing.T) *SQLite {
	t.Helper()

	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestKVBackends(t *testing.T) {
	backends := []struct {
		name string
		open func(t *testing.T) kvStore
	}{
		{"sqlite", func(t *testing.T) kvStore { return setupTestDB(t) }},
		{"memory", func(t *testing.T) kvStore { return NewMemory() }},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			kv := b.open(t)

			t.Run("Get missing key", func(t *testing.T) {
				value, ok, err := kv.Get(ctx, "absent")
				if err != nil {
					t.Fatalf("Get() error = %v", err)
				}
				if ok || value != "" {
					t.Errorf("Get() = %q, %v, want \"\", false", value, ok)
				}
			})

			t.Run("Set then Get", func(t *testing.T) {
				if err := kv.Set(ctx, "workouts", "[1]"); err != nil {
					t.Fatalf("Set() error = %v", err)
				}
				value, ok, err := kv.Get(ctx, "workouts")
				if err != nil {
					t.Fatalf("Get() error = %v", err)
				}
				if !ok || value != "[1]" {
					t.Errorf("Get() = %q, %v, want \"[1]\", true", value, ok)
				}
			})

			t.Run("Set overwrites", func(t *testing.T) {
				if err := kv.Set(ctx, "workouts", "[1,2]"); err != nil {
					t.Fatalf("Set() error = %v", err)
				}
				value, _, _ := kv.Get(ctx, "workouts")
				if value != "[1,2]" {
					t.Errorf("Get() = %q, want \"[1,2]\"", value)
				}
			})

			t.Run("Remove", func(t *testing.T) {
				if err := kv.Remove(ctx, "workouts"); err != nil {
					t.Fatalf("Remove() error = %v", err)
				}
				if _, ok, _ := kv.Get(ctx, "workouts"); ok {
					t.Error("key still present after Remove()")
				}
				if err := kv.Remove(ctx, "workouts"); err != nil {
					t.Errorf("Remove() of missing key error = %v", err)
				}
			})
		})
	}
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "data.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := db.Set(ctx, workout.StorageKey, "[]"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer db.Close()

	value, ok, err := db.Get(ctx, workout.StorageKey)
	if err != nil || !ok || value != "[]" {
		t.Errorf("Get() = %q, %v, %v; want \"[]\", true, nil", value, ok, err)
	}
}

func TestWorkoutsRoundTripThroughSQLite(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	s := workout.NewStore()
	if err := s.Append(workout.NewRunning(workout.Coordinate{Lat: 51.5, Lng: -0.1}, 5, 30, 180)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := s.Save(ctx, db); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := workout.Load(ctx, db)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", loaded.Len())
	}
	if got := loaded.All()[0].Running.PaceMinPerKm; got != 6.0 {
		t.Errorf("pace = %v, want 6.0", got)
	}

	if err := workout.Wipe(ctx, db); err != nil {
		t.Fatalf("Wipe() error = %v", err)
	}
	if _, ok, _ := db.Get(ctx, workout.StorageKey); ok {
		t.Error("key still present after Wipe()")
	}
}
