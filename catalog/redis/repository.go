package redis

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/marcelsud/library-catalog/catalog"
	"github.com/redis/go-redis/v9"
)

/* Redis implementation of catalog.Repository
 * Each collection is a Redis list of JSON records, list order is insertion order.
 * Save replaces the three lists inside one MULTI/EXEC.
 */

const DefaultKeyPrefix = "catalog"

type bookRecord struct {
	ISBN       string `json:"isbn"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Year       int    `json:"year"`
	Genre      string `json:"genre"`
	CheckedOut bool   `json:"checked_out"`
}

type patronRecord struct {
	Name       string `json:"name"`
	CardNumber string `json:"card_number"`
	OwedFees   int    `json:"owed_fees"`
}

type transactionRecord struct {
	ID         string `json:"id"`
	ISBN       string `json:"isbn"`
	CardNumber string `json:"card_number"`
	Activity   string `json:"activity"`
	Date       string `json:"date"`
}

type Repository struct {
	client *redis.Client
	prefix string
}

// NewRepository creates a new Redis repository
func NewRepository(addr, password string, db int, prefix string) (*Repository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: connecting to Redis: %v", catalog.ErrIO, err)
	}

	return NewRepositoryWithClient(client, prefix), nil
}

// NewRepositoryWithClient wraps an existing client
func NewRepositoryWithClient(client *redis.Client, prefix string) *Repository {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Repository{
		client: client,
		prefix: prefix,
	}
}

func (r *Repository) booksKey() string        { return r.prefix + ":books" }
func (r *Repository) patronsKey() string      { return r.prefix + ":patrons" }
func (r *Repository) transactionsKey() string { return r.prefix + ":transactions" }

func (r *Repository) Load(ctx context.Context) (catalog.Snapshot, error) {
	var s catalog.Snapshot

	books, err := r.client.LRange(ctx, r.booksKey(), 0, -1).Result()
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("%w: reading books: %v", catalog.ErrIO, err)
	}
	for _, raw := range books {
		b, err := DecodeBook([]byte(raw))
		if err != nil {
			return catalog.Snapshot{}, fmt.Errorf("loading books: %w", err)
		}
		s.Books = append(s.Books, b)
	}

	patrons, err := r.client.LRange(ctx, r.patronsKey(), 0, -1).Result()
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("%w: reading patrons: %v", catalog.ErrIO, err)
	}
	for _, raw := range patrons {
		p, err := DecodePatron([]byte(raw))
		if err != nil {
			return catalog.Snapshot{}, fmt.Errorf("loading patrons: %w", err)
		}
		s.Patrons = append(s.Patrons, p)
	}

	transactions, err := r.client.LRange(ctx, r.transactionsKey(), 0, -1).Result()
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("%w: reading transactions: %v", catalog.ErrIO, err)
	}
	for _, raw := range transactions {
		t, err := DecodeTransaction([]byte(raw))
		if err != nil {
			return catalog.Snapshot{}, fmt.Errorf("loading transactions: %w", err)
		}
		s.Transactions = append(s.Transactions, t)
	}

	return s, nil
}

func (r *Repository) Save(ctx context.Context, s catalog.Snapshot) error {
	books := make([]interface{}, 0, len(s.Books))
	for _, b := range s.Books {
		data, err := EncodeBook(b)
		if err != nil {
			return err
		}
		books = append(books, data)
	}
	patrons := make([]interface{}, 0, len(s.Patrons))
	for _, p := range s.Patrons {
		data, err := EncodePatron(p)
		if err != nil {
			return err
		}
		patrons = append(patrons, data)
	}
	transactions := make([]interface{}, 0, len(s.Transactions))
	for _, t := range s.Transactions {
		data, err := EncodeTransaction(t)
		if err != nil {
			return err
		}
		transactions = append(transactions, data)
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.booksKey(), r.patronsKey(), r.transactionsKey())
		if len(books) > 0 {
			pipe.RPush(ctx, r.booksKey(), books...)
		}
		if len(patrons) > 0 {
			pipe.RPush(ctx, r.patronsKey(), patrons...)
		}
		if len(transactions) > 0 {
			pipe.RPush(ctx, r.transactionsKey(), transactions...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: saving catalog: %v", catalog.ErrIO, err)
	}
	return nil
}

func (r *Repository) Close(ctx context.Context) error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

func EncodeBook(b catalog.Book) ([]byte, error) {
	data, err := jsoniter.ConfigFastest.Marshal(bookRecord{
		ISBN:       b.ISBN,
		Title:      b.Title,
		Author:     b.Author,
		Year:       b.Year,
		Genre:      b.Genre.String(),
		CheckedOut: b.CheckedOut,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding book %s: %w", b.ISBN, err)
	}
	return data, nil
}

func DecodeBook(data []byte) (catalog.Book, error) {
	var rec bookRecord
	if err := jsoniter.ConfigFastest.Unmarshal(data, &rec); err != nil {
		return catalog.Book{}, fmt.Errorf("%w: decoding book: %v", catalog.ErrInvalidInput, err)
	}
	genre, err := catalog.ParseGenre(rec.Genre)
	if err != nil {
		return catalog.Book{}, fmt.Errorf("book %s: %w", rec.ISBN, err)
	}
	return catalog.Book{
		ISBN:       rec.ISBN,
		Title:      rec.Title,
		Author:     rec.Author,
		Year:       rec.Year,
		Genre:      genre,
		CheckedOut: rec.CheckedOut,
	}, nil
}

func EncodePatron(p catalog.Patron) ([]byte, error) {
	data, err := jsoniter.ConfigFastest.Marshal(patronRecord{
		Name:       p.Name,
		CardNumber: p.CardNumber,
		OwedFees:   p.OwedFees,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding patron %s: %w", p.CardNumber, err)
	}
	return data, nil
}

func DecodePatron(data []byte) (catalog.Patron, error) {
	var rec patronRecord
	if err := jsoniter.ConfigFastest.Unmarshal(data, &rec); err != nil {
		return catalog.Patron{}, fmt.Errorf("%w: decoding patron: %v", catalog.ErrInvalidInput, err)
	}
	return catalog.Patron{
		Name:       rec.Name,
		CardNumber: rec.CardNumber,
		OwedFees:   rec.OwedFees,
	}, nil
}

func EncodeTransaction(t catalog.Transaction) ([]byte, error) {
	data, err := jsoniter.ConfigFastest.Marshal(transactionRecord{
		ID:         t.ID,
		ISBN:       t.ISBN,
		CardNumber: t.CardNumber,
		Activity:   t.Activity.String(),
		Date:       t.Date,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding transaction %s: %w", t.ID, err)
	}
	return data, nil
}

func DecodeTransaction(data []byte) (catalog.Transaction, error) {
	var rec transactionRecord
	if err := jsoniter.ConfigFastest.Unmarshal(data, &rec); err != nil {
		return catalog.Transaction{}, fmt.Errorf("%w: decoding transaction: %v", catalog.ErrInvalidInput, err)
	}
	activity, err := catalog.ParseActivity(rec.Activity)
	if err != nil {
		return catalog.Transaction{}, fmt.Errorf("transaction %s: %w", rec.ID, err)
	}
	return catalog.Transaction{
		ID:         rec.ID,
		ISBN:       rec.ISBN,
		CardNumber: rec.CardNumber,
		Activity:   activity,
		Date:       rec.Date,
	}, nil
}
