package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DateLayout is used when a transaction date is not supplied
const DateLayout = "2006-01-02"

/* Service is an API, so it uses pointer semantics. Book, Patron and
 * Transaction are data and always travel by value.
 */

type UseCase interface {
	AddBook(ctx context.Context, b Book) (Book, error)
	AddPatron(ctx context.Context, p Patron) (Patron, error)
	CheckOut(ctx context.Context, isbn, cardNumber, date string) error
	CheckIn(ctx context.Context, isbn, cardNumber, date string) error
	UpdateFees(ctx context.Context, cardNumber string, fees int) error
	GetBook(ctx context.Context, isbn string) (Book, error)
	GetPatron(ctx context.Context, cardNumber string) (Patron, error)
	ListBooks(ctx context.Context) ([]Book, error)
	ListPatrons(ctx context.Context) ([]Patron, error)
	ListTransactions(ctx context.Context) ([]Transaction, error)
	PatronsWithFees(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (Stats, error)
	Save(ctx context.Context) error
}

// Service runs the use cases one at a time against an owned Catalog.
// Repo may be nil, the catalog then lives only in memory.
type Service struct {
	Repo Repository

	mu      sync.Mutex
	catalog *Catalog
	logger  zerolog.Logger
	now     func() time.Time
}

func NewService(repo Repository, logger zerolog.Logger, opts ...Option) *Service {
	return &Service{
		Repo:    repo,
		catalog: New(opts...),
		logger:  logger,
		now:     time.Now,
	}
}

// Open reloads the catalog from the repository. A failing load is logged
// and the service starts with an empty catalog.
func (s *Service) Open(ctx context.Context) {
	if s.Repo == nil {
		return
	}
	snapshot, err := s.Repo.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("loading catalog failed, starting empty")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog.Restore(snapshot)
	s.logger.Info().
		Int("books", len(snapshot.Books)).
		Int("patrons", len(snapshot.Patrons)).
		Int("transactions", len(snapshot.Transactions)).
		Msg("catalog loaded")
}

// Close saves the catalog and releases the repository. A failing save is
// logged and does not stop the close.
func (s *Service) Close(ctx context.Context) error {
	if s.Repo == nil {
		return nil
	}
	if err := s.Save(ctx); err != nil {
		s.logger.Error().Err(err).Msg("saving catalog failed")
	}
	if err := s.Repo.Close(ctx); err != nil {
		return fmt.Errorf("closing repository: %w", err)
	}
	return nil
}

// Empty reports whether there is nothing in the catalog yet
func (s *Service) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Empty()
}

func (s *Service) AddBook(ctx context.Context, b Book) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.catalog.AddBook(b); err != nil {
		return Book{}, fmt.Errorf("adding book: %w", err)
	}
	b.CheckedOut = false
	s.logger.Debug().Str("isbn", b.ISBN).Msg("book added")
	return b, nil
}

func (s *Service) AddPatron(ctx context.Context, p Patron) (Patron, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.catalog.AddPatron(p); err != nil {
		return Patron{}, fmt.Errorf("adding patron: %w", err)
	}
	s.logger.Debug().Str("card_number", p.CardNumber).Msg("patron added")
	return p, nil
}

func (s *Service) CheckOut(ctx context.Context, isbn, cardNumber, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.catalog.CheckOut(isbn, cardNumber, s.dateOrToday(date)); err != nil {
		return err
	}
	s.logger.Debug().Str("isbn", isbn).Str("card_number", cardNumber).Msg("book checked out")
	return nil
}

func (s *Service) CheckIn(ctx context.Context, isbn, cardNumber, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.catalog.CheckIn(isbn, cardNumber, s.dateOrToday(date)); err != nil {
		return err
	}
	s.logger.Debug().Str("isbn", isbn).Str("card_number", cardNumber).Msg("book checked in")
	return nil
}

func (s *Service) UpdateFees(ctx context.Context, cardNumber string, fees int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.catalog.SetOwedFees(cardNumber, fees); err != nil {
		return err
	}
	s.logger.Debug().Str("card_number", cardNumber).Int("owed_fees", fees).Msg("fees updated")
	return nil
}

func (s *Service) GetBook(ctx context.Context, isbn string) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Book(isbn)
}

func (s *Service) GetPatron(ctx context.Context, cardNumber string) (Patron, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Patron(cardNumber)
}

func (s *Service) ListBooks(ctx context.Context) ([]Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Books(), nil
}

func (s *Service) ListPatrons(ctx context.Context) ([]Patron, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Patrons(), nil
}

func (s *Service) ListTransactions(ctx context.Context) ([]Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Transactions(), nil
}

func (s *Service) PatronsWithFees(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.PatronsWithFees(), nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Stats(), nil
}

// Save dumps the whole catalog to the repository
func (s *Service) Save(ctx context.Context) error {
	if s.Repo == nil {
		return nil
	}
	s.mu.Lock()
	snapshot := s.catalog.Snapshot()
	s.mu.Unlock()

	if err := s.Repo.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	s.logger.Info().
		Int("books", len(snapshot.Books)).
		Int("patrons", len(snapshot.Patrons)).
		Msg("catalog saved")
	return nil
}

func (s *Service) dateOrToday(date string) string {
	if date != "" {
		return date
	}
	return s.now().Format(DateLayout)
}
