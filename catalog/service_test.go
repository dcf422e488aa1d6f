package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/marcelsud/library-catalog/catalog"
	"github.com/marcelsud/library-catalog/catalog/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Open(t *testing.T) {
	ctx := context.Background()
	t.Run("restores saved snapshot", func(t *testing.T) {
		saved := catalog.Snapshot{
			Books: []catalog.Book{
				{ISBN: "123-456-789", Title: "C++ Primer", Author: "Lippman", Year: 2013, Genre: catalog.Nonfiction, CheckedOut: true},
			},
			Patrons: []catalog.Patron{{Name: "Gad", CardNumber: "471", OwedFees: 10}},
		}
		repo := mocks.NewRepository(t)
		repo.On("Load", ctx).Return(saved, nil)
		s := catalog.NewService(repo, zerolog.Nop())
		s.Open(ctx)

		books, err := s.ListBooks(ctx)
		require.NoError(t, err)
		assert.Equal(t, saved.Books, books)
		names, err := s.PatronsWithFees(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Gad"}, names)
	})
	t.Run("load failure starts empty", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Load", ctx).Return(catalog.Snapshot{}, fmt.Errorf("%w: disk gone", catalog.ErrIO))
		s := catalog.NewService(repo, zerolog.Nop())
		s.Open(ctx)

		assert.True(t, s.Empty())
	})
}

func TestService_Close(t *testing.T) {
	ctx := context.Background()
	t.Run("saves then closes", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Save", ctx, mock.AnythingOfType("catalog.Snapshot")).Return(nil)
		repo.On("Close", ctx).Return(nil)
		s := catalog.NewService(repo, zerolog.Nop())
		_, err := s.AddBook(ctx, primer())
		require.NoError(t, err)

		require.NoError(t, s.Close(ctx))
		saved := repo.Calls[0].Arguments.Get(1).(catalog.Snapshot)
		assert.Equal(t, []catalog.Book{primer()}, saved.Books)
	})
	t.Run("save failure is not fatal", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.On("Save", ctx, mock.AnythingOfType("catalog.Snapshot")).Return(fmt.Errorf("some error"))
		repo.On("Close", ctx).Return(nil)
		s := catalog.NewService(repo, zerolog.Nop())

		assert.NoError(t, s.Close(ctx))
	})
	t.Run("without repository", func(t *testing.T) {
		s := catalog.NewService(nil, zerolog.Nop())
		s.Open(ctx)
		assert.NoError(t, s.Save(ctx))
		assert.NoError(t, s.Close(ctx))
	})
}

func TestService_Save(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewRepository(t)
	repo.On("Save", ctx, mock.AnythingOfType("catalog.Snapshot")).Return(fmt.Errorf("some error"))
	s := catalog.NewService(repo, zerolog.Nop())

	err := s.Save(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving catalog")
}

func TestService_CheckOut(t *testing.T) {
	ctx := context.Background()
	s := catalog.NewService(nil, zerolog.Nop())
	_, err := s.AddBook(ctx, primer())
	require.NoError(t, err)
	_, err = s.AddPatron(ctx, catalog.Patron{Name: "Kevia", CardNumber: "592"})
	require.NoError(t, err)
	_, err = s.AddPatron(ctx, catalog.Patron{Name: "Gad", CardNumber: "471", OwedFees: 10})
	require.NoError(t, err)

	t.Run("success with today's date", func(t *testing.T) {
		require.NoError(t, s.CheckOut(ctx, "123-456-789", "592", ""))
		b, err := s.GetBook(ctx, "123-456-789")
		require.NoError(t, err)
		assert.True(t, b.CheckedOut)

		txs, err := s.ListTransactions(ctx)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Len(t, txs[0].Date, len(catalog.DateLayout))
	})
	t.Run("already checked out", func(t *testing.T) {
		err := s.CheckOut(ctx, "123-456-789", "471", "2024-01-01")
		assert.ErrorIs(t, err, catalog.ErrAlreadyCheckedOut)
	})
	t.Run("check in with supplied date", func(t *testing.T) {
		require.NoError(t, s.CheckIn(ctx, "123-456-789", "592", "2024-03-01"))
		txs, err := s.ListTransactions(ctx)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", txs[len(txs)-1].Date)
	})
	t.Run("fees block until cleared", func(t *testing.T) {
		assert.ErrorIs(t, s.CheckOut(ctx, "123-456-789", "471", ""), catalog.ErrOutstandingFees)
		require.NoError(t, s.UpdateFees(ctx, "471", 0))
		require.NoError(t, s.CheckOut(ctx, "123-456-789", "471", ""))
	})
	t.Run("stats", func(t *testing.T) {
		stats, err := s.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.CheckedOut)
		assert.Equal(t, int64(0), stats.PatronsWithFees)
	})
}

func TestService_AddBook(t *testing.T) {
	ctx := context.Background()
	s := catalog.NewService(nil, zerolog.Nop(), catalog.WithUniqueKeys(true))

	saved, err := s.AddBook(ctx, primer())
	require.NoError(t, err)
	assert.Equal(t, primer(), saved)

	saved, err = s.AddBook(ctx, primer())
	assert.ErrorIs(t, err, catalog.ErrDuplicateISBN)
	assert.Empty(t, saved)
}
