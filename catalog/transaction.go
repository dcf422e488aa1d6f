package catalog

import "fmt"

// Activity tags a transaction log entry
type Activity int

const (
	CheckOut Activity = iota + 1
	CheckIn
)

func (a Activity) String() string {
	switch a {
	case CheckOut:
		return "check out"
	case CheckIn:
		return "check in"
	}
	return "unknown"
}

// ParseActivity converts a persisted activity tag back into an Activity
func ParseActivity(s string) (Activity, error) {
	switch s {
	case "check out":
		return CheckOut, nil
	case "check in":
		return CheckIn, nil
	}
	return 0, fmt.Errorf("%w: unknown activity %q", ErrInvalidInput, s)
}

/* Transaction is an append-only log entry. It references the book and the
 * patron by key, the catalog never deletes either of them.
 */
type Transaction struct {
	ID         string
	ISBN       string
	CardNumber string
	Activity   Activity
	Date       string
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s by %s", t.Date, t.Activity, t.ISBN, t.CardNumber)
}

// Snapshot is the full state of a catalog, the unit of persistence
type Snapshot struct {
	Books        []Book
	Patrons      []Patron
	Transactions []Transaction
}
