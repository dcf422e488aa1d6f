//go:build !integration

package postgres

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/marcelsud/library-catalog/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
Unit tests for the PostgreSQL repository.

sqlmock stands in for the database, no container needed.
Run with: go test ./catalog/postgres/...
Integration tests live behind -tags=integration.
*/

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &Repository{DB: db}, mock
}

func TestRepository_Load_Unit(t *testing.T) {
	t.Run("load all tables in order", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM "books" ORDER BY "seq" ASC`)).
			WillReturnRows(sqlmock.NewRows([]string{"isbn", "title", "author", "year", "genre", "checked_out"}).
				AddRow("123-456-789", "C++ Primer", "Lippman", 2013, "Nonfiction", true).
				AddRow("987-654-321", "Harry Potter", "J.K. Rowling", 1997, "Fiction", false))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM "patrons" ORDER BY "seq" ASC`)).
			WillReturnRows(sqlmock.NewRows([]string{"name", "card_number", "owed_fees"}).
				AddRow("Kevia", "592", 0).
				AddRow("Gad", "471", 10))
		mock.ExpectQuery(regexp.QuoteMeta(`FROM "transactions" ORDER BY "seq" ASC`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "isbn", "card_number", "activity", "date"}).
				AddRow("t-1", "123-456-789", "592", "check out", "2024-01-10"))

		s, err := repo.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, []catalog.Book{
			{ISBN: "123-456-789", Title: "C++ Primer", Author: "Lippman", Year: 2013, Genre: catalog.Nonfiction, CheckedOut: true},
			{ISBN: "987-654-321", Title: "Harry Potter", Author: "J.K. Rowling", Year: 1997, Genre: catalog.Fiction},
		}, s.Books)
		assert.Equal(t, []catalog.Patron{
			{Name: "Kevia", CardNumber: "592"},
			{Name: "Gad", CardNumber: "471", OwedFees: 10},
		}, s.Patrons)
		require.Len(t, s.Transactions, 1)
		assert.Equal(t, catalog.CheckOut, s.Transactions[0].Activity)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown genre fails the load", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM "books"`)).
			WillReturnRows(sqlmock.NewRows([]string{"isbn", "title", "author", "year", "genre", "checked_out"}).
				AddRow("1", "T", "A", 2000, "3", false))

		_, err := repo.Load(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrUnknownGenre)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error is an i/o failure", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM "books"`)).
			WillReturnError(fmt.Errorf("connection refused"))

		_, err := repo.Load(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrIO)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Save_Unit(t *testing.T) {
	snapshot := catalog.Snapshot{
		Books: []catalog.Book{
			{ISBN: "123-456-789", Title: "C++ Primer", Author: "Lippman", Year: 2013, Genre: catalog.Nonfiction},
		},
		Patrons: []catalog.Patron{
			{Name: "Kevia", CardNumber: "592"},
			{Name: "Gad", CardNumber: "471", OwedFees: 10},
		},
	}

	t.Run("replace tables in one transaction", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "transactions"`)).WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "patrons"`)).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "books"`)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "books"`)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "patrons"`)).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := repo.Save(ctx, snapshot)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "transactions"`)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "patrons"`)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "books"`)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "books"`)).WillReturnError(fmt.Errorf("disk full"))
		mock.ExpectRollback()

		err := repo.Save(ctx, snapshot)

		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrIO)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Close_Unit(t *testing.T) {
	assert.NoError(t, (&Repository{}).Close(context.Background()))
}
