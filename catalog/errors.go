package catalog

import (
	"errors"
	"fmt"
)

/* Error kinds. Concrete errors wrap one of them so callers can classify
 * any failure with errors.Is(err, ErrNotFound) and friends.
 */
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrInvalidInput = errors.New("invalid input")
	ErrIO           = errors.New("i/o failure")
)

var (
	ErrBookNotFound      = fmt.Errorf("book %w", ErrNotFound)
	ErrPatronNotFound    = fmt.Errorf("patron %w", ErrNotFound)
	ErrAlreadyCheckedOut = fmt.Errorf("%w: book is already checked out", ErrInvalidState)
	ErrNotCheckedOut     = fmt.Errorf("%w: book is not checked out", ErrInvalidState)
	ErrOutstandingFees   = fmt.Errorf("%w: patron owes fees", ErrInvalidState)
	ErrUnknownGenre      = fmt.Errorf("%w: unknown genre", ErrInvalidInput)
	ErrDuplicateISBN     = fmt.Errorf("%w: duplicate isbn", ErrInvalidInput)
	ErrDuplicateCard     = fmt.Errorf("%w: duplicate card number", ErrInvalidInput)
	ErrNegativeFees      = fmt.Errorf("%w: owed fees cannot be negative", ErrInvalidInput)
)
