package sqlite

import (
	"context"
	"fmt"

	_ "github.com/glebarez/go-sqlite" // pure Go SQLite driver, registers "sqlite"
	"github.com/jmoiron/sqlx"
	"github.com/marcelsud/library-catalog/catalog"
)

/* Embedded SQL storage. Same full-dump semantics as the flat files:
 * Save replaces every table inside one transaction, Load reads them
 * back ordered by seq so insertion order survives.
 */

var schema = []string{`
CREATE TABLE IF NOT EXISTS books (
	seq INTEGER PRIMARY KEY,
	isbn TEXT NOT NULL,
	title TEXT NOT NULL,
	author TEXT NOT NULL,
	year INTEGER NOT NULL,
	genre TEXT NOT NULL,
	checked_out INTEGER NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS patrons (
	seq INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	card_number TEXT NOT NULL,
	owed_fees INTEGER NOT NULL
)`, `
CREATE TABLE IF NOT EXISTS transactions (
	seq INTEGER PRIMARY KEY,
	id TEXT NOT NULL,
	isbn TEXT NOT NULL,
	card_number TEXT NOT NULL,
	activity TEXT NOT NULL,
	date TEXT NOT NULL
)`}

type bookRow struct {
	Seq        int    `db:"seq"`
	ISBN       string `db:"isbn"`
	Title      string `db:"title"`
	Author     string `db:"author"`
	Year       int    `db:"year"`
	Genre      string `db:"genre"`
	CheckedOut bool   `db:"checked_out"`
}

type patronRow struct {
	Seq        int    `db:"seq"`
	Name       string `db:"name"`
	CardNumber string `db:"card_number"`
	OwedFees   int    `db:"owed_fees"`
}

type transactionRow struct {
	Seq        int    `db:"seq"`
	ID         string `db:"id"`
	ISBN       string `db:"isbn"`
	CardNumber string `db:"card_number"`
	Activity   string `db:"activity"`
	Date       string `db:"date"`
}

type Repository struct {
	DB *sqlx.DB
}

// NewRepository opens (or creates) the database file at path and makes
// sure the tables exist. ":memory:" works for throwaway catalogs.
func NewRepository(ctx context.Context, path string) (*Repository, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening sqlite database: %v", catalog.ErrIO, err)
	}
	// one connection: a single writer, and ":memory:" is per connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: pinging sqlite: %v", catalog.ErrIO, err)
	}
	r := &Repository{DB: db}
	if err := r.CreateTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Repository) CreateTables(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: creating tables: %v", catalog.ErrIO, err)
		}
	}
	return nil
}

func (r *Repository) Load(ctx context.Context) (catalog.Snapshot, error) {
	var s catalog.Snapshot

	var books []bookRow
	err := r.DB.SelectContext(ctx, &books, "SELECT seq, isbn, title, author, year, genre, checked_out FROM books ORDER BY seq")
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("%w: selecting books: %v", catalog.ErrIO, err)
	}
	for _, row := range books {
		genre, err := catalog.ParseGenre(row.Genre)
		if err != nil {
			return catalog.Snapshot{}, fmt.Errorf("book %s: %w", row.ISBN, err)
		}
		s.Books = append(s.Books, catalog.Book{
			ISBN:       row.ISBN,
			Title:      row.Title,
			Author:     row.Author,
			Year:       row.Year,
			Genre:      genre,
			CheckedOut: row.CheckedOut,
		})
	}

	var patrons []patronRow
	err = r.DB.SelectContext(ctx, &patrons, "SELECT seq, name, card_number, owed_fees FROM patrons ORDER BY seq")
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("%w: selecting patrons: %v", catalog.ErrIO, err)
	}
	for _, row := range patrons {
		s.Patrons = append(s.Patrons, catalog.Patron{
			Name:       row.Name,
			CardNumber: row.CardNumber,
			OwedFees:   row.OwedFees,
		})
	}

	var transactions []transactionRow
	err = r.DB.SelectContext(ctx, &transactions, "SELECT seq, id, isbn, card_number, activity, date FROM transactions ORDER BY seq")
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("%w: selecting transactions: %v", catalog.ErrIO, err)
	}
	for _, row := range transactions {
		activity, err := catalog.ParseActivity(row.Activity)
		if err != nil {
			return catalog.Snapshot{}, fmt.Errorf("transaction %s: %w", row.ID, err)
		}
		s.Transactions = append(s.Transactions, catalog.Transaction{
			ID:         row.ID,
			ISBN:       row.ISBN,
			CardNumber: row.CardNumber,
			Activity:   activity,
			Date:       row.Date,
		})
	}

	return s, nil
}

func (r *Repository) Save(ctx context.Context, s catalog.Snapshot) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", catalog.ErrIO, err)
	}
	defer tx.Rollback()

	for _, table := range []string{"books", "patrons", "transactions"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("%w: clearing %s: %v", catalog.ErrIO, table, err)
		}
	}

	for i, b := range s.Books {
		_, err := tx.NamedExecContext(ctx,
			`INSERT INTO books (seq, isbn, title, author, year, genre, checked_out)
			VALUES (:seq, :isbn, :title, :author, :year, :genre, :checked_out)`,
			bookRow{
				Seq:        i,
				ISBN:       b.ISBN,
				Title:      b.Title,
				Author:     b.Author,
				Year:       b.Year,
				Genre:      b.Genre.String(),
				CheckedOut: b.CheckedOut,
			})
		if err != nil {
			return fmt.Errorf("%w: inserting book %s: %v", catalog.ErrIO, b.ISBN, err)
		}
	}

	for i, p := range s.Patrons {
		_, err := tx.NamedExecContext(ctx,
			`INSERT INTO patrons (seq, name, card_number, owed_fees)
			VALUES (:seq, :name, :card_number, :owed_fees)`,
			patronRow{
				Seq:        i,
				Name:       p.Name,
				CardNumber: p.CardNumber,
				OwedFees:   p.OwedFees,
			})
		if err != nil {
			return fmt.Errorf("%w: inserting patron %s: %v", catalog.ErrIO, p.CardNumber, err)
		}
	}

	for i, t := range s.Transactions {
		_, err := tx.NamedExecContext(ctx,
			`INSERT INTO transactions (seq, id, isbn, card_number, activity, date)
			VALUES (:seq, :id, :isbn, :card_number, :activity, :date)`,
			transactionRow{
				Seq:        i,
				ID:         t.ID,
				ISBN:       t.ISBN,
				CardNumber: t.CardNumber,
				Activity:   t.Activity.String(),
				Date:       t.Date,
			})
		if err != nil {
			return fmt.Errorf("%w: inserting transaction %s: %v", catalog.ErrIO, t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %v", catalog.ErrIO, err)
	}
	return nil
}

func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}
