package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/marcelsud/library-catalog/catalog"
	"github.com/rs/zerolog"
)

/* Shell is the interactive menu. It reads one answer per line and only
 * talks to the catalog through catalog.UseCase.
 */

const menu = `
Library Catalog
1. Add a Book
2. List Books
3. Add a Patron
4. List Patrons
5. Check Out Book
6. Check In Book
7. List Patrons with Fees
8. Update Patron Fees
9. List Transactions
0. Exit
`

// errEndOfInput stops the shell the same way choosing Exit does
var errEndOfInput = errors.New("end of input")

type Shell struct {
	uc     catalog.UseCase
	in     *bufio.Reader
	out    io.Writer
	logger zerolog.Logger
}

func NewShell(uc catalog.UseCase, in io.Reader, out io.Writer, logger zerolog.Logger) *Shell {
	return &Shell{
		uc:     uc,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run shows the menu until the user exits or the input ends.
// Saving is left to the caller.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(s.out, menu)
		line, err := s.ask("Choice: ")
		if err != nil {
			return s.stop(err)
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid choice.")
			continue
		}

		switch choice {
		case 0:
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		case 1:
			err = s.addBook(ctx)
		case 2:
			err = s.listBooks(ctx)
		case 3:
			err = s.addPatron(ctx)
		case 4:
			err = s.listPatrons(ctx)
		case 5:
			err = s.checkOut(ctx)
		case 6:
			err = s.checkIn(ctx)
		case 7:
			err = s.patronsWithFees(ctx)
		case 8:
			err = s.updateFees(ctx)
		case 9:
			err = s.listTransactions(ctx)
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
			continue
		}
		if err != nil {
			return s.stop(err)
		}
	}
}

func (s *Shell) stop(err error) error {
	if errors.Is(err, errEndOfInput) {
		return nil
	}
	return err
}

func (s *Shell) addBook(ctx context.Context) error {
	isbn, err := s.askRequired("ISBN: ")
	if err != nil {
		return err
	}
	title, err := s.ask("Title: ")
	if err != nil {
		return err
	}
	author, err := s.ask("Author: ")
	if err != nil {
		return err
	}
	year, err := s.askInt("Year: ", func(int) bool { return true })
	if err != nil {
		return err
	}
	genre, err := s.askGenre()
	if err != nil {
		return err
	}

	b, err := s.uc.AddBook(ctx, catalog.Book{
		ISBN:   isbn,
		Title:  title,
		Author: author,
		Year:   year,
		Genre:  genre,
	})
	if err != nil {
		s.fail("Could not add book", err)
		return nil
	}
	fmt.Fprintf(s.out, "Added %s\n", b)
	return nil
}

func (s *Shell) listBooks(ctx context.Context) error {
	books, err := s.uc.ListBooks(ctx)
	if err != nil {
		s.fail("Could not list books", err)
		return nil
	}
	if len(books) == 0 {
		fmt.Fprintln(s.out, "No books.")
		return nil
	}
	for _, b := range books {
		fmt.Fprintln(s.out, b)
	}
	return nil
}

func (s *Shell) addPatron(ctx context.Context) error {
	name, err := s.ask("Name: ")
	if err != nil {
		return err
	}
	card, err := s.askRequired("Card number: ")
	if err != nil {
		return err
	}
	fees, err := s.askInt("Owed fees: ", nonNegative)
	if err != nil {
		return err
	}

	p, err := s.uc.AddPatron(ctx, catalog.Patron{Name: name, CardNumber: card, OwedFees: fees})
	if err != nil {
		s.fail("Could not add patron", err)
		return nil
	}
	fmt.Fprintf(s.out, "Added %s\n", p)
	return nil
}

func (s *Shell) listPatrons(ctx context.Context) error {
	patrons, err := s.uc.ListPatrons(ctx)
	if err != nil {
		s.fail("Could not list patrons", err)
		return nil
	}
	if len(patrons) == 0 {
		fmt.Fprintln(s.out, "No patrons.")
		return nil
	}
	for _, p := range patrons {
		fmt.Fprintln(s.out, p)
	}
	return nil
}

func (s *Shell) checkOut(ctx context.Context) error {
	isbn, card, date, err := s.askLoan()
	if err != nil {
		return err
	}
	if err := s.uc.CheckOut(ctx, isbn, card, date); err != nil {
		s.fail("Check out failed", err)
		return nil
	}
	fmt.Fprintln(s.out, "Book checked out.")
	return nil
}

func (s *Shell) checkIn(ctx context.Context) error {
	isbn, card, date, err := s.askLoan()
	if err != nil {
		return err
	}
	if err := s.uc.CheckIn(ctx, isbn, card, date); err != nil {
		s.fail("Check in failed", err)
		return nil
	}
	fmt.Fprintln(s.out, "Book checked in.")
	return nil
}

func (s *Shell) patronsWithFees(ctx context.Context) error {
	names, err := s.uc.PatronsWithFees(ctx)
	if err != nil {
		s.fail("Could not list patrons", err)
		return nil
	}
	if len(names) == 0 {
		fmt.Fprintln(s.out, "No patrons owe fees.")
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(s.out, name)
	}
	return nil
}

func (s *Shell) updateFees(ctx context.Context) error {
	card, err := s.askRequired("Card number: ")
	if err != nil {
		return err
	}
	fees, err := s.askInt("Owed fees: ", nonNegative)
	if err != nil {
		return err
	}
	if err := s.uc.UpdateFees(ctx, card, fees); err != nil {
		s.fail("Could not update fees", err)
		return nil
	}
	fmt.Fprintln(s.out, "Fees updated.")
	return nil
}

func (s *Shell) listTransactions(ctx context.Context) error {
	all, err := s.uc.ListTransactions(ctx)
	if err != nil {
		s.fail("Could not list transactions", err)
		return nil
	}
	if len(all) == 0 {
		fmt.Fprintln(s.out, "No transactions.")
		return nil
	}
	for _, t := range all {
		fmt.Fprintln(s.out, t)
	}
	return nil
}

func (s *Shell) askLoan() (isbn, card, date string, err error) {
	if isbn, err = s.askRequired("ISBN: "); err != nil {
		return
	}
	if card, err = s.askRequired("Card number: "); err != nil {
		return
	}
	date, err = s.ask("Date (YYYY-MM-DD, blank for today): ")
	return
}

func (s *Shell) askGenre() (catalog.Genre, error) {
	for i, g := range catalog.Genres() {
		fmt.Fprintf(s.out, "%d. %s\n", i, g)
	}
	for {
		line, err := s.ask("Genre: ")
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(line)
		if err == nil {
			if g, err := catalog.GenreFromChoice(choice); err == nil {
				return g, nil
			}
		}
		fmt.Fprintf(s.out, "Pick a genre between 0 and %d.\n", len(catalog.Genres())-1)
	}
}

func (s *Shell) askInt(prompt string, valid func(int) bool) (int, error) {
	for {
		line, err := s.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && valid(n) {
			return n, nil
		}
		fmt.Fprintln(s.out, "Please enter a valid number.")
	}
}

func (s *Shell) askRequired(prompt string) (string, error) {
	for {
		line, err := s.ask(prompt)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(s.out, "A value is required.")
	}
}

func (s *Shell) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		// a last line without a newline still counts
		if line == "" {
			return "", errEndOfInput
		}
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) fail(action string, err error) {
	s.logger.Debug().Err(err).Msg(strings.ToLower(action))
	fmt.Fprintf(s.out, "%s: %v\n", action, err)
}

func nonNegative(n int) bool { return n >= 0 }
