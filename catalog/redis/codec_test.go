package redis_test

import (
	"testing"

	"github.com/marcelsud/library-catalog/catalog"
	"github.com/marcelsud/library-catalog/catalog/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookRecord(t *testing.T) {
	b := catalog.Book{ISBN: "123-456-789", Title: "C++ Primer", Author: "Lippman", Year: 2013, Genre: catalog.Nonfiction, CheckedOut: true}

	data, err := redis.EncodeBook(b)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"genre":"Nonfiction"`)

	decoded, err := redis.DecodeBook(data)
	require.NoError(t, err)
	assert.Equal(t, b, decoded)
}

func TestDecodeBook_Invalid(t *testing.T) {
	_, err := redis.DecodeBook([]byte(`{"isbn":"1","genre":"Poetry"}`))
	assert.ErrorIs(t, err, catalog.ErrUnknownGenre)

	_, err = redis.DecodeBook([]byte(`not json`))
	assert.ErrorIs(t, err, catalog.ErrInvalidInput)
}

func TestPatronRecord(t *testing.T) {
	p := catalog.Patron{Name: "Gad", CardNumber: "471", OwedFees: 10}
	data, err := redis.EncodePatron(p)
	require.NoError(t, err)

	decoded, err := redis.DecodePatron(data)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestTransactionRecord(t *testing.T) {
	tx := catalog.Transaction{ID: "t-1", ISBN: "123", CardNumber: "592", Activity: catalog.CheckIn, Date: "2024-01-11"}
	data, err := redis.EncodeTransaction(tx)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"activity":"check in"`)

	decoded, err := redis.DecodeTransaction(data)
	require.NoError(t, err)
	assert.Equal(t, tx, decoded)
}
