package records

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (s *Store) ListWashEvents(ctx context.Context) ([]WashEvent, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT doc
    FROM wash_events
    ORDER BY occurred_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []WashEvent
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var event WashEvent
		if err := json.Unmarshal(doc, &event); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *Store) GetWashEvent(ctx context.Context, id string) (WashEvent, error) {
	var doc []byte
	err := s.DB.QueryRow(ctx, "SELECT doc FROM wash_events WHERE id = $1", id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return WashEvent{}, ErrNotFound
	}
	if err != nil {
		return WashEvent{}, err
	}
	var event WashEvent
	if err := json.Unmarshal(doc, &event); err != nil {
		return WashEvent{}, err
	}
	return event, nil
}

func (s *Store) PutWashEvent(ctx context.Context, event WashEvent) error {
	doc, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO wash_events (id, occurred_at, doc)
    VALUES ($1, $2, $3)
    ON CONFLICT (id) DO UPDATE SET occurred_at = EXCLUDED.occurred_at, doc = EXCLUDED.doc
  `, event.ID, event.Timestamp, doc)
	return err
}

func (s *Store) DeleteWashEvent(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM wash_events WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListExpenses(ctx context.Context) ([]Expense, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT doc
    FROM expenses
    ORDER BY spent_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var expense Expense
		if err := json.Unmarshal(doc, &expense); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (s *Store) GetExpense(ctx context.Context, id string) (Expense, error) {
	var doc []byte
	err := s.DB.QueryRow(ctx, "SELECT doc FROM expenses WHERE id = $1", id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return Expense{}, ErrNotFound
	}
	if err != nil {
		return Expense{}, err
	}
	var expense Expense
	if err := json.Unmarshal(doc, &expense); err != nil {
		return Expense{}, err
	}
	return expense, nil
}

func (s *Store) PutExpense(ctx context.Context, expense Expense) error {
	doc, err := json.Marshal(expense)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO expenses (id, spent_at, doc)
    VALUES ($1, $2, $3)
    ON CONFLICT (id) DO UPDATE SET spent_at = EXCLUDED.spent_at, doc = EXCLUDED.doc
  `, expense.ID, expense.Date, doc)
	return err
}

func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
