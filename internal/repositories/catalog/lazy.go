package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/destiny-api/internal/entities/destiny"
	"github.com/KirkDiggler/destiny-api/internal/errors"
)

const (
	loadKey = "catalog"

	errItemIDEmpty = "item ID cannot be empty"
)

// Loader fetches the raw item list
type Loader func(ctx context.Context) ([]destiny.ItemEntry, error)

// Config holds the configuration for the lazy catalog repository
type Config struct {
	Loader Loader
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Loader == nil {
		return errors.InvalidArgument("loader is required")
	}
	return nil
}

type lazyRepository struct {
	load Loader
	sfg  singleflight.Group

	mu     sync.RWMutex
	loaded bool
	items  []destiny.ItemEntry
	byID   map[string]destiny.ItemEntry
}

// New creates a repository that calls the loader on first use. Concurrent
// first calls share one load; a failed load is retried on the next call.
func New(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &lazyRepository{load: cfg.Loader}, nil
}

// NewStatic wraps an in-memory item list
func NewStatic(items []destiny.ItemEntry) Repository {
	r := &lazyRepository{}
	r.store(items)
	return r
}

// NewFile creates a repository backed by a JSON catalog file
func NewFile(path string) (Repository, error) {
	if path == "" {
		return nil, errors.InvalidArgument("catalog path is required")
	}
	return New(&Config{Loader: FileLoader(path)})
}

// Ensure lazyRepository implements Repository
var _ Repository = (*lazyRepository)(nil)

func (r *lazyRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]destiny.ItemEntry, len(r.items))
	copy(items, r.items)

	return &ListOutput{Items: items}, nil
}

func (r *lazyRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	if err := r.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[input.ItemID]
	if !ok {
		return nil, errors.NotFoundf("item %s not found", input.ItemID).WithMeta("item_id", input.ItemID)
	}

	return &GetOutput{Item: item}, nil
}

func (r *lazyRepository) ensureLoaded(ctx context.Context) error {
	r.mu.RLock()
	loaded := r.loaded
	r.mu.RUnlock()
	if loaded {
		return nil
	}

	_, err, _ := r.sfg.Do(loadKey, func() (any, error) {
		r.mu.RLock()
		done := r.loaded
		r.mu.RUnlock()
		if done {
			return nil, nil
		}

		// Shared by every waiter; one caller's cancellation must not fail the rest.
		items, err := r.load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, errors.Wrap(err, "failed to load item catalog")
		}
		r.store(items)
		return nil, nil
	})

	return err
}

func (r *lazyRepository) store(items []destiny.ItemEntry) {
	byID := make(map[string]destiny.ItemEntry, len(items))
	kept := make([]destiny.ItemEntry, 0, len(items))
	incomplete := 0

	for _, item := range items {
		if item.ID == "" {
			continue
		}
		if _, dup := byID[item.ID]; dup {
			continue
		}
		if item.MasteryTable == "" || item.SpecTable == "" {
			incomplete++
		}
		byID[item.ID] = item
		kept = append(kept, item)
	}

	if incomplete > 0 {
		slog.Warn("catalog items without mastery or specialization table",
			"count", incomplete)
	}

	r.mu.Lock()
	r.items = kept
	r.byID = byID
	r.loaded = true
	r.mu.Unlock()
}

// fileItem is the on-disk shape of a catalog row
type fileItem struct {
	ID           string  `json:"id"`
	Slot         string  `json:"slot"`
	MasteryTable string  `json:"masteryTable"`
	SpecTable    string  `json:"specTable"`
	ItemPower    float64 `json:"itemPower"`
}

// FileLoader reads a JSON catalog, either a bare array of items or an object
// with an "items" array.
func FileLoader(path string) Loader {
	return func(_ context.Context) ([]destiny.ItemEntry, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read catalog %s", path)
		}
		return DecodeItems(data)
	}
}

// DecodeItems parses catalog JSON. Slot spellings are normalized; unknown
// slots are kept verbatim and fall into the generic slot rules.
func DecodeItems(data []byte) ([]destiny.ItemEntry, error) {
	var rows []fileItem

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var doc struct {
			Items []fileItem `json:"items"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.InvalidArgumentf("invalid catalog document: %v", err)
		}
		rows = doc.Items
	} else if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.InvalidArgumentf("invalid catalog document: %v", err)
	}

	items := make([]destiny.ItemEntry, 0, len(rows))
	for _, row := range rows {
		slot, ok := destiny.ParseSlot(row.Slot)
		if !ok {
			slot = destiny.Slot(row.Slot)
		}
		items = append(items, destiny.ItemEntry{
			ID:           row.ID,
			Slot:         slot,
			MasteryTable: row.MasteryTable,
			SpecTable:    row.SpecTable,
			ItemPower:    row.ItemPower,
		})
	}

	return items, nil
}
