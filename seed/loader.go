package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/marcelsud/library-catalog/catalog"
	"gopkg.in/yaml.v3"
)

/* Loader reads a catalog seed file (YAML) and validates it
 * before anything is added to a catalog
 */

// File represents the structure of a seed file
type File struct {
	Books   []BookConfig   `yaml:"books"`
	Patrons []PatronConfig `yaml:"patrons"`
}

// BookConfig represents a single book in the seed file
type BookConfig struct {
	ISBN   string `yaml:"isbn"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Year   int    `yaml:"year"`
	Genre  string `yaml:"genre"`
}

// PatronConfig represents a single patron in the seed file
type PatronConfig struct {
	Name       string `yaml:"name"`
	CardNumber string `yaml:"card_number"`
	OwedFees   int    `yaml:"owed_fees"`
}

type Loader struct {
	books   []catalog.Book
	patrons []catalog.Patron
}

func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the seed file at filePath
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}
	return l.Parse(data)
}

// Parse validates data and replaces whatever the loader held before
func (l *Loader) Parse(data []byte) error {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing seed YAML: %w", err)
	}

	books := make([]catalog.Book, 0, len(file.Books))
	seenISBN := make(map[string]bool)
	for i, bc := range file.Books {
		genre, err := catalog.LookupGenre(bc.Genre)
		if err != nil {
			return fmt.Errorf("validating book %d: %w", i+1, err)
		}
		b := catalog.Book{
			ISBN:   bc.ISBN,
			Title:  bc.Title,
			Author: bc.Author,
			Year:   bc.Year,
			Genre:  genre,
		}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("validating book %d: %w", i+1, err)
		}
		if seenISBN[b.ISBN] {
			return fmt.Errorf("validating book %d: %w: %s", i+1, catalog.ErrDuplicateISBN, b.ISBN)
		}
		seenISBN[b.ISBN] = true
		books = append(books, b)
	}

	patrons := make([]catalog.Patron, 0, len(file.Patrons))
	seenCard := make(map[string]bool)
	for i, pc := range file.Patrons {
		p := catalog.Patron{
			Name:       pc.Name,
			CardNumber: pc.CardNumber,
			OwedFees:   pc.OwedFees,
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("validating patron %d: %w", i+1, err)
		}
		if seenCard[p.CardNumber] {
			return fmt.Errorf("validating patron %d: %w: %s", i+1, catalog.ErrDuplicateCard, p.CardNumber)
		}
		seenCard[p.CardNumber] = true
		patrons = append(patrons, p)
	}

	l.books = books
	l.patrons = patrons
	return nil
}

func (l *Loader) Books() []catalog.Book {
	return append([]catalog.Book(nil), l.books...)
}

func (l *Loader) Patrons() []catalog.Patron {
	return append([]catalog.Patron(nil), l.patrons...)
}

// Apply adds every seeded book and patron through uc
func (l *Loader) Apply(ctx context.Context, uc catalog.UseCase) error {
	for _, b := range l.books {
		if _, err := uc.AddBook(ctx, b); err != nil {
			return fmt.Errorf("seeding book %s: %w", b.ISBN, err)
		}
	}
	for _, p := range l.patrons {
		if _, err := uc.AddPatron(ctx, p); err != nil {
			return fmt.Errorf("seeding patron %s: %w", p.CardNumber, err)
		}
	}
	return nil
}
