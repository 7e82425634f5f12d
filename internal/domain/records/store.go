package records

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists every record kind as a keyed JSONB document, with the two
// derived aggregates (chemical stock, client balances) held in plain columns
// so deltas can be applied atomically on the database side. That per-row
// atomicity is the serialization point for concurrent writers against the
// same aggregate.
type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) Stock(ctx context.Context) (float64, error) {
	var grams float64
	if err := s.DB.QueryRow(ctx, "SELECT chemical_stock_grams FROM inventory WHERE id = 1").Scan(&grams); err != nil {
		return 0, err
	}
	return grams, nil
}

// AdjustStock applies a signed delta and returns the resulting stock. The
// result may be negative; negative stock is reported, never corrected here.
func (s *Store) AdjustStock(ctx context.Context, deltaGrams float64) (float64, error) {
	var grams float64
	err := s.DB.QueryRow(ctx, `
    UPDATE inventory
    SET chemical_stock_grams = chemical_stock_grams + $1
    WHERE id = 1
    RETURNING chemical_stock_grams
  `, deltaGrams).Scan(&grams)
	if err != nil {
		return 0, err
	}
	return grams, nil
}

func (s *Store) ListClients(ctx context.Context) ([]Client, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, kind, balance, doc->>'name'
    FROM clients
    ORDER BY doc->>'name'
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var client Client
		if err := rows.Scan(&client.ID, &client.Kind, &client.Balance, &client.Name); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (s *Store) GetClient(ctx context.Context, id string) (Client, error) {
	var client Client
	err := s.DB.QueryRow(ctx, `
    SELECT id, kind, balance, doc->>'name'
    FROM clients
    WHERE id = $1
  `, id).Scan(&client.ID, &client.Kind, &client.Balance, &client.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return Client{}, ErrNotFound
	}
	if err != nil {
		return Client{}, err
	}
	return client, nil
}

func (s *Store) PutClient(ctx context.Context, client Client) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO clients (id, kind, balance, doc)
    VALUES ($1, $2, $3, jsonb_build_object('name', $4::text))
    ON CONFLICT (id) DO UPDATE SET kind = EXCLUDED.kind, doc = EXCLUDED.doc
  `, client.ID, client.Kind, client.Balance, client.Name)
	return err
}

// AdjustClientBalance applies a signed delta and returns the new balance.
func (s *Store) AdjustClientBalance(ctx context.Context, id string, delta float64) (float64, error) {
	var balance float64
	err := s.DB.QueryRow(ctx, `
    UPDATE clients
    SET balance = balance + $1
    WHERE id = $2
    RETURNING balance
  `, delta, id).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// SetClientBalance overwrites the balance outright. Reserved for manual
// corrections; the new value is authoritative going forward.
func (s *Store) SetClientBalance(ctx context.Context, id string, value float64) error {
	tag, err := s.DB.Exec(ctx, "UPDATE clients SET balance = $1 WHERE id = $2", value, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
