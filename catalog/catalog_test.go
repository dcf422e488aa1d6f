package catalog_test

import (
	"errors"
	"testing"

	"github.com/marcelsud/library-catalog/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func primer() catalog.Book {
	return catalog.Book{
		ISBN:   "123-456-789",
		Title:  "C++ Primer",
		Author: "Lippman",
		Year:   2013,
		Genre:  catalog.Nonfiction,
	}
}

func newScenarioCatalog(t *testing.T, opts ...catalog.Option) *catalog.Catalog {
	t.Helper()
	c := catalog.New(opts...)
	require.NoError(t, c.AddBook(primer()))
	require.NoError(t, c.AddPatron(catalog.Patron{Name: "Kevia", CardNumber: "592"}))
	require.NoError(t, c.AddPatron(catalog.Patron{Name: "Gad", CardNumber: "471", OwedFees: 10}))
	return c
}

func TestCatalog_Scenario(t *testing.T) {
	c := newScenarioCatalog(t)

	err := c.CheckOut("123-456-789", "592", "2024-01-10")
	require.NoError(t, err)
	b, err := c.Book("123-456-789")
	require.NoError(t, err)
	assert.True(t, b.CheckedOut)

	err = c.CheckOut("123-456-789", "471", "2024-01-11")
	assert.ErrorIs(t, err, catalog.ErrAlreadyCheckedOut)

	assert.Equal(t, []string{"Gad"}, c.PatronsWithFees())
}

func TestCatalog_AddBook(t *testing.T) {
	t.Run("checked-out flag starts false", func(t *testing.T) {
		c := catalog.New()
		b := primer()
		b.CheckedOut = true
		require.NoError(t, c.AddBook(b))

		got, err := c.Book(b.ISBN)
		require.NoError(t, err)
		assert.False(t, got.CheckedOut)
	})

	t.Run("invalid genre", func(t *testing.T) {
		c := catalog.New()
		b := primer()
		b.Genre = catalog.Genre(42)
		err := c.AddBook(b)
		assert.ErrorIs(t, err, catalog.ErrUnknownGenre)
		assert.ErrorIs(t, err, catalog.ErrInvalidInput)
		assert.Empty(t, c.Books())
	})

	t.Run("empty isbn", func(t *testing.T) {
		c := catalog.New()
		b := primer()
		b.ISBN = ""
		assert.ErrorIs(t, c.AddBook(b), catalog.ErrInvalidInput)
	})

	t.Run("duplicates allowed by default", func(t *testing.T) {
		c := catalog.New()
		require.NoError(t, c.AddBook(primer()))
		require.NoError(t, c.AddBook(primer()))
		assert.Len(t, c.Books(), 2)
	})

	t.Run("duplicates rejected with unique keys", func(t *testing.T) {
		c := catalog.New(catalog.WithUniqueKeys(true))
		require.NoError(t, c.AddBook(primer()))
		err := c.AddBook(primer())
		assert.ErrorIs(t, err, catalog.ErrDuplicateISBN)
		assert.Len(t, c.Books(), 1)
	})
}

func TestCatalog_AddPatron(t *testing.T) {
	t.Run("negative fees", func(t *testing.T) {
		c := catalog.New()
		err := c.AddPatron(catalog.Patron{Name: "Neg", CardNumber: "1", OwedFees: -1})
		assert.ErrorIs(t, err, catalog.ErrNegativeFees)
	})

	t.Run("duplicate card with unique keys", func(t *testing.T) {
		c := catalog.New(catalog.WithUniqueKeys(true))
		require.NoError(t, c.AddPatron(catalog.Patron{Name: "A", CardNumber: "1"}))
		err := c.AddPatron(catalog.Patron{Name: "B", CardNumber: "1"})
		assert.ErrorIs(t, err, catalog.ErrDuplicateCard)
	})
}

func TestCatalog_CheckOut(t *testing.T) {
	tests := []struct {
		name  string
		isbn  string
		card  string
		setup func(c *catalog.Catalog)
		want  error
	}{
		{name: "unknown book", isbn: "000", card: "592", want: catalog.ErrBookNotFound},
		{name: "unknown patron", isbn: "123-456-789", card: "999", want: catalog.ErrPatronNotFound},
		{name: "patron owes fees", isbn: "123-456-789", card: "471", want: catalog.ErrOutstandingFees},
		{
			name: "already checked out",
			isbn: "123-456-789",
			card: "592",
			setup: func(c *catalog.Catalog) {
				_ = c.CheckOut("123-456-789", "592", "2024-01-01")
			},
			want: catalog.ErrAlreadyCheckedOut,
		},
		{
			name: "book state is checked before patron",
			isbn: "123-456-789",
			card: "999",
			setup: func(c *catalog.Catalog) {
				_ = c.CheckOut("123-456-789", "592", "2024-01-01")
			},
			want: catalog.ErrAlreadyCheckedOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newScenarioCatalog(t)
			if tt.setup != nil {
				tt.setup(c)
			}
			before := len(c.Transactions())

			err := c.CheckOut(tt.isbn, tt.card, "2024-02-01")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Len(t, c.Transactions(), before)
		})
	}

	t.Run("error kinds", func(t *testing.T) {
		c := newScenarioCatalog(t)
		assert.True(t, errors.Is(c.CheckOut("000", "592", ""), catalog.ErrNotFound))
		assert.True(t, errors.Is(c.CheckOut("123-456-789", "471", ""), catalog.ErrInvalidState))
	})

	t.Run("every available book can be checked out", func(t *testing.T) {
		c := catalog.New()
		require.NoError(t, c.AddPatron(catalog.Patron{Name: "Kevia", CardNumber: "592"}))
		for _, isbn := range []string{"a", "b", "c"} {
			b := primer()
			b.ISBN = isbn
			require.NoError(t, c.AddBook(b))
		}
		for _, isbn := range []string{"a", "b", "c"} {
			require.NoError(t, c.CheckOut(isbn, "592", "2024-01-01"))
			b, err := c.Book(isbn)
			require.NoError(t, err)
			assert.True(t, b.CheckedOut)
		}
	})

	t.Run("first match wins on duplicate isbn", func(t *testing.T) {
		c := newScenarioCatalog(t)
		require.NoError(t, c.AddBook(primer()))

		require.NoError(t, c.CheckOut("123-456-789", "592", "2024-01-01"))
		books := c.Books()
		assert.True(t, books[0].CheckedOut)
		assert.False(t, books[1].CheckedOut)
		assert.ErrorIs(t, c.CheckOut("123-456-789", "592", "2024-01-01"), catalog.ErrAlreadyCheckedOut)
	})
}

func TestCatalog_CheckIn(t *testing.T) {
	t.Run("check in then check out again", func(t *testing.T) {
		c := newScenarioCatalog(t)
		require.NoError(t, c.CheckOut("123-456-789", "592", "2024-01-01"))
		require.NoError(t, c.CheckIn("123-456-789", "592", "2024-01-05"))

		b, err := c.Book("123-456-789")
		require.NoError(t, err)
		assert.False(t, b.CheckedOut)

		require.NoError(t, c.CheckOut("123-456-789", "592", "2024-01-06"))
	})

	t.Run("not checked out", func(t *testing.T) {
		c := newScenarioCatalog(t)
		assert.ErrorIs(t, c.CheckIn("123-456-789", "592", ""), catalog.ErrNotCheckedOut)
	})

	t.Run("unknown book", func(t *testing.T) {
		c := newScenarioCatalog(t)
		assert.ErrorIs(t, c.CheckIn("000", "592", ""), catalog.ErrBookNotFound)
	})

	t.Run("unknown patron with transaction log", func(t *testing.T) {
		c := newScenarioCatalog(t)
		require.NoError(t, c.CheckOut("123-456-789", "592", "2024-01-01"))
		assert.ErrorIs(t, c.CheckIn("123-456-789", "999", ""), catalog.ErrPatronNotFound)

		b, err := c.Book("123-456-789")
		require.NoError(t, err)
		assert.True(t, b.CheckedOut)
	})

	t.Run("card ignored without transaction log", func(t *testing.T) {
		c := newScenarioCatalog(t, catalog.WithTransactionLog(false))
		require.NoError(t, c.CheckOut("123-456-789", "592", "2024-01-01"))
		require.NoError(t, c.CheckIn("123-456-789", "", ""))
		assert.Empty(t, c.Transactions())
	})
}

func TestCatalog_Transactions(t *testing.T) {
	c := newScenarioCatalog(t)
	require.NoError(t, c.CheckOut("123-456-789", "592", "2024-01-01"))
	require.NoError(t, c.CheckIn("123-456-789", "592", "2024-01-05"))

	txs := c.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, catalog.CheckOut, txs[0].Activity)
	assert.Equal(t, "2024-01-01", txs[0].Date)
	assert.Equal(t, "592", txs[0].CardNumber)
	assert.Equal(t, catalog.CheckIn, txs[1].Activity)
	assert.Equal(t, "2024-01-05", txs[1].Date)
	assert.NotEmpty(t, txs[0].ID)
	assert.NotEqual(t, txs[0].ID, txs[1].ID)
}

func TestCatalog_PatronsWithFees(t *testing.T) {
	t.Run("empty when nobody owes", func(t *testing.T) {
		c := catalog.New()
		require.NoError(t, c.AddPatron(catalog.Patron{Name: "Kevia", CardNumber: "592"}))
		fees := c.PatronsWithFees()
		assert.NotNil(t, fees)
		assert.Empty(t, fees)
	})

	t.Run("insertion order", func(t *testing.T) {
		c := catalog.New()
		require.NoError(t, c.AddPatron(catalog.Patron{Name: "Zoe", CardNumber: "1", OwedFees: 3}))
		require.NoError(t, c.AddPatron(catalog.Patron{Name: "Kevia", CardNumber: "2"}))
		require.NoError(t, c.AddPatron(catalog.Patron{Name: "Adam", CardNumber: "3", OwedFees: 1}))
		assert.Equal(t, []string{"Zoe", "Adam"}, c.PatronsWithFees())
	})
}

func TestCatalog_SetOwedFees(t *testing.T) {
	c := newScenarioCatalog(t)

	require.NoError(t, c.SetOwedFees("471", 0))
	assert.Empty(t, c.PatronsWithFees())
	require.NoError(t, c.CheckOut("123-456-789", "471", "2024-01-01"))

	assert.ErrorIs(t, c.SetOwedFees("999", 5), catalog.ErrPatronNotFound)
	assert.ErrorIs(t, c.SetOwedFees("592", -5), catalog.ErrNegativeFees)
}

func TestCatalog_SnapshotRestore(t *testing.T) {
	c := newScenarioCatalog(t)
	require.NoError(t, c.CheckOut("123-456-789", "592", "2024-01-01"))
	snapshot := c.Snapshot()

	restored := catalog.New()
	restored.Restore(snapshot)

	assert.Equal(t, snapshot, restored.Snapshot())
	b, err := restored.Book("123-456-789")
	require.NoError(t, err)
	assert.True(t, b.CheckedOut)

	// later mutations do not leak into the snapshot
	require.NoError(t, restored.SetOwedFees("592", 7))
	assert.Equal(t, 0, snapshot.Patrons[0].OwedFees)
}

func TestCatalog_Stats(t *testing.T) {
	c := newScenarioCatalog(t)
	require.NoError(t, c.CheckOut("123-456-789", "592", "2024-01-01"))

	assert.Equal(t, catalog.Stats{
		Books:           1,
		CheckedOut:      1,
		Patrons:         2,
		PatronsWithFees: 1,
		Transactions:    1,
	}, c.Stats())
}

func TestBook_String(t *testing.T) {
	assert.Equal(t, "123-456-789: C++ Primer by Lippman (2013, Nonfiction) [available]", primer().String())
}

func TestPatron_String(t *testing.T) {
	assert.Equal(t, "Kevia (592)", catalog.Patron{Name: "Kevia", CardNumber: "592"}.String())
	assert.Equal(t, "Gad (471) owes 10", catalog.Patron{Name: "Gad", CardNumber: "471", OwedFees: 10}.String())
}
