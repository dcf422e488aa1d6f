package flatfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marcelsud/library-catalog/catalog"
)

/* One record per line, comma-delimited, fixed field order, no header.
 * Fields are not escaped: a comma inside a title breaks the line.
 */

const delimiter = ","

const (
	bookFields        = 6
	patronFields      = 3
	transactionFields = 5
)

// MarshalBook encodes ISBN,Title,Author,Year,Genre,CheckedOut
func MarshalBook(b catalog.Book) string {
	return strings.Join([]string{
		b.ISBN,
		b.Title,
		b.Author,
		strconv.Itoa(b.Year),
		b.Genre.String(),
		formatFlag(b.CheckedOut),
	}, delimiter)
}

func UnmarshalBook(line string) (catalog.Book, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) != bookFields {
		return catalog.Book{}, fmt.Errorf("%w: book record has %d fields, want %d", catalog.ErrInvalidInput, len(fields), bookFields)
	}
	year, err := strconv.Atoi(fields[3])
	if err != nil {
		return catalog.Book{}, fmt.Errorf("%w: parsing year %q", catalog.ErrInvalidInput, fields[3])
	}
	genre, err := catalog.ParseGenre(fields[4])
	if err != nil {
		return catalog.Book{}, fmt.Errorf("parsing genre: %w", err)
	}
	checkedOut, err := strconv.ParseBool(fields[5])
	if err != nil {
		return catalog.Book{}, fmt.Errorf("%w: parsing checked-out flag %q", catalog.ErrInvalidInput, fields[5])
	}
	return catalog.Book{
		ISBN:       fields[0],
		Title:      fields[1],
		Author:     fields[2],
		Year:       year,
		Genre:      genre,
		CheckedOut: checkedOut,
	}, nil
}

// MarshalPatron encodes Name,CardNumber,OwedFees
func MarshalPatron(p catalog.Patron) string {
	return strings.Join([]string{
		p.Name,
		p.CardNumber,
		strconv.Itoa(p.OwedFees),
	}, delimiter)
}

func UnmarshalPatron(line string) (catalog.Patron, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) != patronFields {
		return catalog.Patron{}, fmt.Errorf("%w: patron record has %d fields, want %d", catalog.ErrInvalidInput, len(fields), patronFields)
	}
	fees, err := strconv.Atoi(fields[2])
	if err != nil {
		return catalog.Patron{}, fmt.Errorf("%w: parsing owed fees %q", catalog.ErrInvalidInput, fields[2])
	}
	return catalog.Patron{
		Name:       fields[0],
		CardNumber: fields[1],
		OwedFees:   fees,
	}, nil
}

// MarshalTransaction encodes ID,ISBN,CardNumber,Activity,Date
func MarshalTransaction(t catalog.Transaction) string {
	return strings.Join([]string{
		t.ID,
		t.ISBN,
		t.CardNumber,
		t.Activity.String(),
		t.Date,
	}, delimiter)
}

func UnmarshalTransaction(line string) (catalog.Transaction, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) != transactionFields {
		return catalog.Transaction{}, fmt.Errorf("%w: transaction record has %d fields, want %d", catalog.ErrInvalidInput, len(fields), transactionFields)
	}
	activity, err := catalog.ParseActivity(fields[3])
	if err != nil {
		return catalog.Transaction{}, fmt.Errorf("parsing activity: %w", err)
	}
	return catalog.Transaction{
		ID:         fields[0],
		ISBN:       fields[1],
		CardNumber: fields[2],
		Activity:   activity,
		Date:       fields[4],
	}, nil
}

// CheckBook reports whether b can be written as a single record
func CheckBook(b catalog.Book) error {
	return checkFields("book "+b.ISBN, b.ISBN, b.Title, b.Author)
}

func CheckPatron(p catalog.Patron) error {
	return checkFields("patron "+p.CardNumber, p.Name, p.CardNumber)
}

func CheckTransaction(t catalog.Transaction) error {
	return checkFields("transaction "+t.ID, t.ID, t.ISBN, t.CardNumber, t.Date)
}

func checkFields(record string, fields ...string) error {
	for _, f := range fields {
		if strings.ContainsAny(f, delimiter+"\r\n") {
			return fmt.Errorf("%w: %s: field %q contains a comma or line break", catalog.ErrInvalidInput, record, f)
		}
	}
	return nil
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
