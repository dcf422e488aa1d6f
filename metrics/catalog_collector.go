package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/marcelsud/library-catalog/catalog"
)

// CatalogCollector implements Collector on top of the catalog use cases
type CatalogCollector struct {
	uc  catalog.UseCase
	now func() time.Time
}

func NewCatalogCollector(uc catalog.UseCase) *CatalogCollector {
	return &CatalogCollector{uc: uc, now: time.Now}
}

func (c *CatalogCollector) Collect(ctx context.Context) (Metrics, error) {
	stats, err := c.stats(ctx)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		Books:        bookCounts(stats),
		Patrons:      patronCounts(stats),
		Transactions: stats.Transactions,
		Timestamp:    c.now(),
	}, nil
}

func (c *CatalogCollector) GetBookCounts(ctx context.Context) (map[string]int64, error) {
	stats, err := c.stats(ctx)
	if err != nil {
		return nil, err
	}
	return bookCounts(stats), nil
}

func (c *CatalogCollector) GetPatronCounts(ctx context.Context) (map[string]int64, error) {
	stats, err := c.stats(ctx)
	if err != nil {
		return nil, err
	}
	return patronCounts(stats), nil
}

func (c *CatalogCollector) GetTransactionCount(ctx context.Context) (int64, error) {
	stats, err := c.stats(ctx)
	if err != nil {
		return 0, err
	}
	return stats.Transactions, nil
}

func (c *CatalogCollector) stats(ctx context.Context) (catalog.Stats, error) {
	stats, err := c.uc.Stats(ctx)
	if err != nil {
		return catalog.Stats{}, fmt.Errorf("collecting catalog stats: %w", err)
	}
	return stats, nil
}

func bookCounts(s catalog.Stats) map[string]int64 {
	return map[string]int64{
		BookAvailable:  s.Books - s.CheckedOut,
		BookCheckedOut: s.CheckedOut,
	}
}

func patronCounts(s catalog.Stats) map[string]int64 {
	return map[string]int64{
		PatronClear: s.Patrons - s.PatronsWithFees,
		PatronOwing: s.PatronsWithFees,
	}
}
