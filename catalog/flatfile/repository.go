package flatfile

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/marcelsud/library-catalog/catalog"
	"github.com/spf13/afero"
)

const (
	DefaultBooksFile        = "books.txt"
	DefaultPatronsFile      = "patrons.txt"
	DefaultTransactionsFile = "transactions.txt"
)

// Repository keeps the catalog in three delimited text files
type Repository struct {
	fs               afero.Fs
	dir              string
	booksFile        string
	patronsFile      string
	transactionsFile string
}

type Option func(*Repository)

func WithBooksFile(name string) Option {
	return func(r *Repository) {
		if name != "" {
			r.booksFile = name
		}
	}
}

func WithPatronsFile(name string) Option {
	return func(r *Repository) {
		if name != "" {
			r.patronsFile = name
		}
	}
}

func WithTransactionsFile(name string) Option {
	return func(r *Repository) {
		if name != "" {
			r.transactionsFile = name
		}
	}
}

// NewRepository stores the files under dir. Pass afero.NewOsFs() for the real disk.
func NewRepository(fsys afero.Fs, dir string, opts ...Option) *Repository {
	r := &Repository{
		fs:               fsys,
		dir:              dir,
		booksFile:        DefaultBooksFile,
		patronsFile:      DefaultPatronsFile,
		transactionsFile: DefaultTransactionsFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads every file. A missing file is an empty collection, a
// malformed line fails the whole load.
func (r *Repository) Load(ctx context.Context) (catalog.Snapshot, error) {
	var s catalog.Snapshot

	err := r.readLines(r.booksFile, func(line string) error {
		b, err := UnmarshalBook(line)
		if err != nil {
			return err
		}
		s.Books = append(s.Books, b)
		return nil
	})
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("loading books: %w", err)
	}

	err = r.readLines(r.patronsFile, func(line string) error {
		p, err := UnmarshalPatron(line)
		if err != nil {
			return err
		}
		s.Patrons = append(s.Patrons, p)
		return nil
	})
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("loading patrons: %w", err)
	}

	err = r.readLines(r.transactionsFile, func(line string) error {
		t, err := UnmarshalTransaction(line)
		if err != nil {
			return err
		}
		s.Transactions = append(s.Transactions, t)
		return nil
	})
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("loading transactions: %w", err)
	}

	return s, nil
}

// Save rewrites every file with the full snapshot. A record that cannot
// be written as one line rejects the whole save before any file is touched.
func (r *Repository) Save(ctx context.Context, s catalog.Snapshot) error {
	if err := check(s); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}

	books := make([]string, 0, len(s.Books))
	for _, b := range s.Books {
		books = append(books, MarshalBook(b))
	}
	if err := r.writeLines(r.booksFile, books); err != nil {
		return fmt.Errorf("saving books: %w", err)
	}

	patrons := make([]string, 0, len(s.Patrons))
	for _, p := range s.Patrons {
		patrons = append(patrons, MarshalPatron(p))
	}
	if err := r.writeLines(r.patronsFile, patrons); err != nil {
		return fmt.Errorf("saving patrons: %w", err)
	}

	transactions := make([]string, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		transactions = append(transactions, MarshalTransaction(t))
	}
	if err := r.writeLines(r.transactionsFile, transactions); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}
	return nil
}

func check(s catalog.Snapshot) error {
	for _, b := range s.Books {
		if err := CheckBook(b); err != nil {
			return err
		}
	}
	for _, p := range s.Patrons {
		if err := CheckPatron(p); err != nil {
			return err
		}
	}
	for _, t := range s.Transactions {
		if err := CheckTransaction(t); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) Close(ctx context.Context) error {
	return nil
}

func (r *Repository) path(name string) string {
	return filepath.Join(r.dir, name)
}

func (r *Repository) readLines(name string, parse func(line string) error) error {
	data, err := afero.ReadFile(r.fs, r.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", catalog.ErrIO, name, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if err := parse(line); err != nil {
			return fmt.Errorf("%s line %d: %w", name, n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: scanning %s: %v", catalog.ErrIO, name, err)
	}
	return nil
}

// writeLines writes a temporary file and renames it over the target
func (r *Repository) writeLines(name string, lines []string) error {
	if err := r.fs.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("%w: creating %s: %v", catalog.ErrIO, r.dir, err)
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	target := r.path(name)
	tmp := target + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", catalog.ErrIO, tmp, err)
	}
	if err := r.fs.Rename(tmp, target); err != nil {
		_ = r.fs.Remove(tmp)
		return fmt.Errorf("%w: renaming %s: %v", catalog.ErrIO, tmp, err)
	}
	return nil
}
