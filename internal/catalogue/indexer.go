// =============================================================================
// Compute Sales - Catalogue Indexer
// =============================================================================
//
// This module turns the parsed price catalogue into a name -> price lookup.
//
// ACCEPTED SHAPES:
//   1. Array of objects:  [{"title": "pen", "price": 1.5}, ...]
//      The name and price keys come from the configured field mapping.
//   2. Flat mapping:      {"pen": 1.5, ...}
//
// SKIPPED ENTRIES:
//   Entries with an empty or absent name, or a non-numeric price, are left
//   out of the lookup and are not reported as sales errors. Sales for such a
//   product surface later as "Product not found". In strict mode the first
//   skipped entry is a fatal error instead.
//
// =============================================================================

package catalogue

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/rs/zerolog"

	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/ginjaninja78/compute-sales/internal/loader"
	"github.com/ginjaninja78/compute-sales/internal/records"
	"github.com/ginjaninja78/compute-sales/internal/types"
)

// ErrInvalidEntry is returned in strict mode for a catalogue entry that would
// otherwise be skipped.
var ErrInvalidEntry = errors.New("invalid catalogue entry")

// Index is the lookup built from a catalogue document.
type Index struct {
	// Prices maps product name to unit price.
	Prices types.Catalogue

	// Skipped is the number of entries left out of Prices.
	Skipped int
}

// Options controls how a catalogue is indexed.
type Options struct {
	// Fields names the keys that carry product name and price.
	Fields config.FieldMapping

	// Strict fails on the first entry that would be skipped.
	Strict bool
}

// Build indexes a parsed catalogue document.
//
// PARAMETERS:
//   - ctx: Carries the zerolog logger used for skip diagnostics.
//   - raw: The parsed catalogue (array of objects or flat mapping).
//   - opts: Field mapping and strictness.
//
// RETURNS:
//   - The index. Duplicate names keep the last price seen.
//   - loader.ErrInvalidShape if raw is neither an array nor an object, or
//     ErrInvalidEntry in strict mode.
func Build(ctx context.Context, raw any, opts Options) (*Index, error) {
	switch doc := raw.(type) {
	case []any:
		return buildFromEntries(ctx, doc, opts)
	case map[string]any:
		return buildFromMapping(ctx, doc, opts)
	default:
		return nil, fmt.Errorf("price catalogue must be a JSON array or object: %w", loader.ErrInvalidShape)
	}
}

func buildFromEntries(ctx context.Context, entries []any, opts Options) (*Index, error) {
	logger := zerolog.Ctx(ctx)
	index := &Index{Prices: make(types.Catalogue, len(entries))}

	for i, entry := range entries {
		rawName, _ := records.Field(entry, opts.Fields.CatalogueName)
		rawPrice, _ := records.Field(entry, opts.Fields.CataloguePrice)

		name, _ := rawName.(string)
		price, numeric := records.Number(rawPrice)

		if name == "" || !numeric {
			if opts.Strict {
				return nil, fmt.Errorf("entry %d (name %s, price %s): %w",
					i, records.Render(rawName), records.Render(rawPrice), ErrInvalidEntry)
			}
			index.Skipped++
			logger.Debug().
				Int("entry", i).
				Str("name", records.Render(rawName)).
				Str("price", records.Render(rawPrice)).
				Msg("skipping catalogue entry")
			continue
		}

		index.Prices[name] = price
	}

	return index, nil
}

func buildFromMapping(ctx context.Context, mapping map[string]any, opts Options) (*Index, error) {
	logger := zerolog.Ctx(ctx)
	index := &Index{Prices: make(types.Catalogue, len(mapping))}

	// Sorted so skip diagnostics and strict failures are deterministic.
	for _, name := range slices.Sorted(maps.Keys(mapping)) {
		rawPrice := mapping[name]
		price, numeric := records.Number(rawPrice)

		if name == "" || !numeric {
			if opts.Strict {
				return nil, fmt.Errorf("entry %q (price %s): %w", name, records.Render(rawPrice), ErrInvalidEntry)
			}
			index.Skipped++
			logger.Debug().
				Str("name", name).
				Str("price", records.Render(rawPrice)).
				Msg("skipping catalogue entry")
			continue
		}

		index.Prices[name] = price
	}

	return index, nil
}

// Entries returns the indexed products sorted by name.
func (idx *Index) Entries() []types.PriceEntry {
	entries := make([]types.PriceEntry, 0, len(idx.Prices))
	for _, name := range slices.Sorted(maps.Keys(idx.Prices)) {
		entries = append(entries, types.PriceEntry{Name: name, UnitPrice: idx.Prices[name]})
	}
	return entries
}
