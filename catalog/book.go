package catalog

import "fmt"

/* Book has no tags, it represents a book for the business rules.
 * Storage and web layers keep their own representations.
 */
type Book struct {
	ISBN       string
	Title      string
	Author     string
	Year       int
	Genre      Genre
	CheckedOut bool
}

// Validate checks the fields a book must have before entering the catalog
func (b Book) Validate() error {
	if b.ISBN == "" {
		return fmt.Errorf("%w: isbn cannot be empty", ErrInvalidInput)
	}
	if err := b.Genre.Validate(); err != nil {
		return fmt.Errorf("book %s: %w", b.ISBN, err)
	}
	return nil
}

func (b Book) String() string {
	state := "available"
	if b.CheckedOut {
		state = "checked out"
	}
	return fmt.Sprintf("%s: %s by %s (%d, %s) [%s]", b.ISBN, b.Title, b.Author, b.Year, b.Genre, state)
}
