package catalog

import "fmt"

// Patron is a library member identified by card number
type Patron struct {
	Name       string
	CardNumber string
	OwedFees   int
}

// OwesFees reports whether the patron is blocked from new checkouts
func (p Patron) OwesFees() bool {
	return p.OwedFees > 0
}

// Validate checks the fields a patron must have before entering the catalog
func (p Patron) Validate() error {
	if p.CardNumber == "" {
		return fmt.Errorf("%w: card number cannot be empty", ErrInvalidInput)
	}
	if p.OwedFees < 0 {
		return fmt.Errorf("patron %s: %w", p.CardNumber, ErrNegativeFees)
	}
	return nil
}

func (p Patron) String() string {
	if p.OwesFees() {
		return fmt.Sprintf("%s (%s) owes %d", p.Name, p.CardNumber, p.OwedFees)
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.CardNumber)
}
