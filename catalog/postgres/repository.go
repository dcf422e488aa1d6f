package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/marcelsud/library-catalog/catalog"
)

/*
PostgreSQL Repository

Same Repository interface as the flat files and SQLite:
- statements are built with goqu's postgres dialect ($1, $2 placeholders)
- Save truncates and re-inserts inside one transaction
- a seq column keeps insertion order
*/

const (
	tableBooks        = "books"
	tablePatrons      = "patrons"
	tableTransactions = "transactions"
)

var dialect = goqu.Dialect("postgres")

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
	DB *sql.DB
}

// NewRepository creates the repository with the default pool (25, 5, 5 min)
func NewRepository(connectionString string) (*Repository, error) {
	return NewRepositoryWithPoolConfig(connectionString, 25, 5, 5)
}

// NewRepositoryWithPoolConfig creates the repository with a custom pool.
// maxOpenConns: maximum simultaneous connections (0 = unlimited)
// maxIdleConns: maximum idle connections kept in the pool
// maxLifeMinutes: maximum minutes a connection may be reused
func NewRepositoryWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*Repository, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("%w: opening postgres connection: %v", catalog.ErrIO, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%w: pinging postgres: %v", catalog.ErrIO, err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return &Repository{
		DB: db,
	}, nil
}

// Load reads the three tables ordered by seq
func (r *Repository) Load(ctx context.Context) (catalog.Snapshot, error) {
	var s catalog.Snapshot

	query, _, err := dialect.From(tableBooks).
		Select("isbn", "title", "author", "year", "genre", "checked_out").
		Order(goqu.C("seq").Asc()).
		ToSQL()
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("building books query: %w", err)
	}
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("%w: selecting books: %v", catalog.ErrIO, err)
	}
	defer rows.Close()
	for rows.Next() {
		var b catalog.Book
		var genre string
		if err := rows.Scan(&b.ISBN, &b.Title, &b.Author, &b.Year, &genre, &b.CheckedOut); err != nil {
			return catalog.Snapshot{}, fmt.Errorf("%w: scanning book: %v", catalog.ErrIO, err)
		}
		if b.Genre, err = catalog.ParseGenre(genre); err != nil {
			return catalog.Snapshot{}, fmt.Errorf("book %s: %w", b.ISBN, err)
		}
		s.Books = append(s.Books, b)
	}
	if err := rows.Err(); err != nil {
		return catalog.Snapshot{}, fmt.Errorf("%w: iterating books: %v", catalog.ErrIO, err)
	}

	query, _, err = dialect.From(tablePatrons).
		Select("name", "card_number", "owed_fees").
		Order(goqu.C("seq").Asc()).
		ToSQL()
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("building patrons query: %w", err)
	}
	patronRows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("%w: selecting patrons: %v", catalog.ErrIO, err)
	}
	defer patronRows.Close()
	for patronRows.Next() {
		var p catalog.Patron
		if err := patronRows.Scan(&p.Name, &p.CardNumber, &p.OwedFees); err != nil {
			return catalog.Snapshot{}, fmt.Errorf("%w: scanning patron: %v", catalog.ErrIO, err)
		}
		s.Patrons = append(s.Patrons, p)
	}
	if err := patronRows.Err(); err != nil {
		return catalog.Snapshot{}, fmt.Errorf("%w: iterating patrons: %v", catalog.ErrIO, err)
	}

	query, _, err = dialect.From(tableTransactions).
		Select("id", "isbn", "card_number", "activity", "date").
		Order(goqu.C("seq").Asc()).
		ToSQL()
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("building transactions query: %w", err)
	}
	txRows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("%w: selecting transactions: %v", catalog.ErrIO, err)
	}
	defer txRows.Close()
	for txRows.Next() {
		var t catalog.Transaction
		var activity string
		if err := txRows.Scan(&t.ID, &t.ISBN, &t.CardNumber, &activity, &t.Date); err != nil {
			return catalog.Snapshot{}, fmt.Errorf("%w: scanning transaction: %v", catalog.ErrIO, err)
		}
		if t.Activity, err = catalog.ParseActivity(activity); err != nil {
			return catalog.Snapshot{}, fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		s.Transactions = append(s.Transactions, t)
	}
	if err := txRows.Err(); err != nil {
		return catalog.Snapshot{}, fmt.Errorf("%w: iterating transactions: %v", catalog.ErrIO, err)
	}

	return s, nil
}

// Save replaces the content of every table with the snapshot
func (r *Repository) Save(ctx context.Context, s catalog.Snapshot) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", catalog.ErrIO, err)
	}
	defer tx.Rollback()

	for _, table := range []string{tableTransactions, tablePatrons, tableBooks} {
		query, _, err := dialect.Delete(table).ToSQL()
		if err != nil {
			return fmt.Errorf("building delete from %s: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("%w: clearing %s: %v", catalog.ErrIO, table, err)
		}
	}

	books := make([]interface{}, 0, len(s.Books))
	for i, b := range s.Books {
		books = append(books, bookRow{
			Seq:        i,
			ISBN:       b.ISBN,
			Title:      b.Title,
			Author:     b.Author,
			Year:       b.Year,
			Genre:      b.Genre.String(),
			CheckedOut: b.CheckedOut,
		})
	}
	if err := insertRows(ctx, tx, tableBooks, books); err != nil {
		return err
	}

	patrons := make([]interface{}, 0, len(s.Patrons))
	for i, p := range s.Patrons {
		patrons = append(patrons, patronRow{
			Seq:        i,
			Name:       p.Name,
			CardNumber: p.CardNumber,
			OwedFees:   p.OwedFees,
		})
	}
	if err := insertRows(ctx, tx, tablePatrons, patrons); err != nil {
		return err
	}

	transactions := make([]interface{}, 0, len(s.Transactions))
	for i, t := range s.Transactions {
		transactions = append(transactions, transactionRow{
			Seq:        i,
			ID:         t.ID,
			ISBN:       t.ISBN,
			CardNumber: t.CardNumber,
			Activity:   t.Activity.String(),
			Date:       t.Date,
		})
	}
	if err := insertRows(ctx, tx, tableTransactions, transactions); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %v", catalog.ErrIO, err)
	}
	return nil
}

func insertRows(ctx context.Context, tx *sql.Tx, table string, rows []interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	query, args, err := dialect.Insert(table).Prepared(true).Rows(rows...).ToSQL()
	if err != nil {
		return fmt.Errorf("building insert into %s: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: inserting into %s: %v", catalog.ErrIO, table, err)
	}
	return nil
}

func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}

// CreateTables creates the catalog tables (used by tests and first runs)
func (r *Repository) CreateTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS books (
			seq INTEGER PRIMARY KEY,
			isbn TEXT NOT NULL,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			year INTEGER NOT NULL,
			genre TEXT NOT NULL,
			checked_out BOOLEAN NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS patrons (
			seq INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			card_number TEXT NOT NULL,
			owed_fees INTEGER NOT NULL CHECK (owed_fees >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			seq INTEGER PRIMARY KEY,
			id TEXT NOT NULL,
			isbn TEXT NOT NULL,
			card_number TEXT NOT NULL,
			activity TEXT NOT NULL,
			"date" TEXT NOT NULL
		)`,
	}
	for _, query := range queries {
		if _, err := r.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("creating tables: %w", err)
		}
	}
	return nil
}

// DropTables removes the catalog tables (used by tests)
func (r *Repository) DropTables(ctx context.Context) error {
	query := "DROP TABLE IF EXISTS transactions, patrons, books CASCADE"
	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("dropping tables: %w", err)
	}
	return nil
}
