package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

// Catalog owns the books, patrons and transaction log of one library.
// It is not safe for concurrent use, Service serialises access to it.
type Catalog struct {
	books        []Book
	patrons      []Patron
	transactions []Transaction

	uniqueKeys      bool
	logTransactions bool
}

// Option configures a Catalog
type Option func(*Catalog)

// WithUniqueKeys rejects a second book with the same ISBN or a second
// patron with the same card number. Off by default.
func WithUniqueKeys(enabled bool) Option {
	return func(c *Catalog) {
		c.uniqueKeys = enabled
	}
}

// WithTransactionLog records every successful check out and check in.
// On by default.
func WithTransactionLog(enabled bool) Option {
	return func(c *Catalog) {
		c.logTransactions = enabled
	}
}

// New creates an empty catalog
func New(opts ...Option) *Catalog {
	c := &Catalog{
		logTransactions: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddBook appends a new book. The checked-out flag always starts false.
func (c *Catalog) AddBook(b Book) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if c.uniqueKeys && c.bookIndex(b.ISBN) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateISBN, b.ISBN)
	}
	b.CheckedOut = false
	c.books = append(c.books, b)
	return nil
}

// AddPatron appends a new patron
func (c *Catalog) AddPatron(p Patron) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if c.uniqueKeys && c.patronIndex(p.CardNumber) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, p.CardNumber)
	}
	c.patrons = append(c.patrons, p)
	return nil
}

// CheckOut lends the book to the patron.
// Checks run in order: book exists, book available, patron exists, patron owes nothing.
func (c *Catalog) CheckOut(isbn, cardNumber, date string) error {
	bi := c.bookIndex(isbn)
	if bi < 0 {
		return fmt.Errorf("checking out %s: %w", isbn, ErrBookNotFound)
	}
	if c.books[bi].CheckedOut {
		return fmt.Errorf("checking out %s: %w", isbn, ErrAlreadyCheckedOut)
	}
	pi := c.patronIndex(cardNumber)
	if pi < 0 {
		return fmt.Errorf("checking out %s to %s: %w", isbn, cardNumber, ErrPatronNotFound)
	}
	if c.patrons[pi].OwesFees() {
		return fmt.Errorf("checking out %s to %s: %w", isbn, cardNumber, ErrOutstandingFees)
	}

	c.books[bi].CheckedOut = true
	c.record(isbn, cardNumber, CheckOut, date)
	return nil
}

// CheckIn returns the book. The card number is only checked, and recorded,
// when the transaction log is enabled.
func (c *Catalog) CheckIn(isbn, cardNumber, date string) error {
	bi := c.bookIndex(isbn)
	if bi < 0 {
		return fmt.Errorf("checking in %s: %w", isbn, ErrBookNotFound)
	}
	if !c.books[bi].CheckedOut {
		return fmt.Errorf("checking in %s: %w", isbn, ErrNotCheckedOut)
	}
	if c.logTransactions && c.patronIndex(cardNumber) < 0 {
		return fmt.Errorf("checking in %s from %s: %w", isbn, cardNumber, ErrPatronNotFound)
	}

	c.books[bi].CheckedOut = false
	c.record(isbn, cardNumber, CheckIn, date)
	return nil
}

// SetOwedFees replaces the fee balance of a patron
func (c *Catalog) SetOwedFees(cardNumber string, fees int) error {
	if fees < 0 {
		return fmt.Errorf("updating fees of %s: %w", cardNumber, ErrNegativeFees)
	}
	pi := c.patronIndex(cardNumber)
	if pi < 0 {
		return fmt.Errorf("updating fees of %s: %w", cardNumber, ErrPatronNotFound)
	}
	c.patrons[pi].OwedFees = fees
	return nil
}

// PatronsWithFees returns the names of every patron owing fees, in insertion order
func (c *Catalog) PatronsWithFees() []string {
	names := []string{}
	for _, p := range c.patrons {
		if p.OwesFees() {
			names = append(names, p.Name)
		}
	}
	return names
}

// Book returns the first book with the given ISBN
func (c *Catalog) Book(isbn string) (Book, error) {
	bi := c.bookIndex(isbn)
	if bi < 0 {
		return Book{}, fmt.Errorf("selecting book %s: %w", isbn, ErrBookNotFound)
	}
	return c.books[bi], nil
}

// Patron returns the first patron with the given card number
func (c *Catalog) Patron(cardNumber string) (Patron, error) {
	pi := c.patronIndex(cardNumber)
	if pi < 0 {
		return Patron{}, fmt.Errorf("selecting patron %s: %w", cardNumber, ErrPatronNotFound)
	}
	return c.patrons[pi], nil
}

func (c *Catalog) Books() []Book {
	return append([]Book{}, c.books...)
}

func (c *Catalog) Patrons() []Patron {
	return append([]Patron{}, c.patrons...)
}

func (c *Catalog) Transactions() []Transaction {
	return append([]Transaction{}, c.transactions...)
}

// Snapshot copies the whole catalog for persistence
func (c *Catalog) Snapshot() Snapshot {
	return Snapshot{
		Books:        c.Books(),
		Patrons:      c.Patrons(),
		Transactions: c.Transactions(),
	}
}

// Restore replaces the catalog content with a previously saved snapshot.
// Records are taken as stored, checked-out flags included.
func (c *Catalog) Restore(s Snapshot) {
	c.books = append([]Book{}, s.Books...)
	c.patrons = append([]Patron{}, s.Patrons...)
	c.transactions = append([]Transaction{}, s.Transactions...)
}

// Empty reports whether the catalog holds no books and no patrons
func (c *Catalog) Empty() bool {
	return len(c.books) == 0 && len(c.patrons) == 0
}

// Stats holds the counters exported as metrics
type Stats struct {
	Books           int64
	CheckedOut      int64
	Patrons         int64
	PatronsWithFees int64
	Transactions    int64
}

func (c *Catalog) Stats() Stats {
	s := Stats{
		Books:        int64(len(c.books)),
		Patrons:      int64(len(c.patrons)),
		Transactions: int64(len(c.transactions)),
	}
	for _, b := range c.books {
		if b.CheckedOut {
			s.CheckedOut++
		}
	}
	for _, p := range c.patrons {
		if p.OwesFees() {
			s.PatronsWithFees++
		}
	}
	return s
}

func (c *Catalog) record(isbn, cardNumber string, activity Activity, date string) {
	if !c.logTransactions {
		return
	}
	c.transactions = append(c.transactions, Transaction{
		ID:         uuid.New().String(),
		ISBN:       isbn,
		CardNumber: cardNumber,
		Activity:   activity,
		Date:       date,
	})
}

func (c *Catalog) bookIndex(isbn string) int {
	for i, b := range c.books {
		if b.ISBN == isbn {
			return i
		}
	}
	return -1
}

func (c *Catalog) patronIndex(cardNumber string) int {
	for i, p := range c.patrons {
		if p.CardNumber == cardNumber {
			return i
		}
	}
	return -1
}
