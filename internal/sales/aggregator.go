// =============================================================================
// Compute Sales - Sales Aggregator
// =============================================================================
//
// This module matches sales records against the catalogue index and
// accumulates the total sales cost.
//
// CLASSIFICATION (per record, in input order):
//   1. Product absent from the catalogue -> "Product not found: <name>"
//   2. Quantity not numeric, or negative -> "Invalid quantity for <name>: <qty>"
//   3. Otherwise                          -> total += price * quantity
//
// ERROR HANDLING:
//   - Record errors are collected, never returned as a Go error
//   - A rejected record never contributes to the total
//   - Only a non-array sales document aborts the computation
//
// =============================================================================

package sales

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ginjaninja78/compute-sales/internal/config"
	"github.com/ginjaninja78/compute-sales/internal/loader"
	"github.com/ginjaninja78/compute-sales/internal/records"
	"github.com/ginjaninja78/compute-sales/internal/types"
)

// Compute matches every sales record against prices and totals the valid ones.
//
// PARAMETERS:
//   - ctx: Carries the zerolog logger.
//   - prices: The catalogue lookup built by the catalogue indexer.
//   - raw: The parsed sales document, expected to be a JSON array.
//   - fields: The keys that carry product name and quantity.
//
// RETURNS:
//   - The total and the ordered list of record errors.
//   - loader.ErrInvalidShape if raw is not an array.
func Compute(ctx context.Context, prices types.Catalogue, raw any, fields config.FieldMapping) (*types.Result, error) {
	sales, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("sales records must be a JSON array: %w", loader.ErrInvalidShape)
	}

	logger := zerolog.Ctx(ctx)
	result := &types.Result{Errors: make([]*types.RecordError, 0)}

	for i, sale := range sales {
		if recordErr, amount := classify(i, sale, prices, fields); recordErr != nil {
			result.Errors = append(result.Errors, recordErr)
			result.InvalidRecords++
			logger.Debug().
				Int("record", i).
				Str("kind", string(recordErr.Kind)).
				Msg(recordErr.Error())
		} else {
			result.TotalCost += amount
			result.ValidRecords++
		}
	}

	return result, nil
}

// classify returns either the error for a rejected record or the amount a
// valid record adds to the total.
func classify(index int, sale any, prices types.Catalogue, fields config.FieldMapping) (*types.RecordError, float64) {
	rawProduct, _ := records.Field(sale, fields.SaleProduct)
	rawQuantity, _ := records.Field(sale, fields.SaleQuantity)

	recordErr := &types.RecordError{
		Index:    index,
		Product:  records.Render(rawProduct),
		Quantity: records.Render(rawQuantity),
	}

	product, isName := rawProduct.(string)
	price, found := prices[product]
	if !isName || !found {
		recordErr.Kind = types.ProductNotFound
		return recordErr, 0
	}

	quantity, numeric := records.Number(rawQuantity)
	if !numeric || quantity < 0 {
		recordErr.Kind = types.InvalidQuantity
		return recordErr, 0
	}

	return nil, price * quantity
}
