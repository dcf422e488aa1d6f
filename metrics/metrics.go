package metrics

import (
	"context"
	"time"
)

// Book states and patron fee states used as metric attributes
const (
	BookAvailable  = "available"
	BookCheckedOut = "checked_out"
	PatronClear    = "clear"
	PatronOwing    = "owing"
)

// Metrics represents the current state of the catalog.
type Metrics struct {
	// Books maps a book state to the number of books in it
	Books map[string]int64 `json:"books"`

	// Patrons maps a fee state to the number of patrons in it
	Patrons map[string]int64 `json:"patrons"`

	// Transactions is the length of the transaction log
	Transactions int64 `json:"transactions"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the catalog.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetBookCounts returns the number of books by state
	GetBookCounts(ctx context.Context) (map[string]int64, error)

	// GetPatronCounts returns the number of patrons by fee state
	GetPatronCounts(ctx context.Context) (map[string]int64, error)

	// GetTransactionCount returns the number of logged transactions
	GetTransactionCount(ctx context.Context) (int64, error)
}
