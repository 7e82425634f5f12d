package records

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (s *Store) ListClientTransactions(ctx context.Context, clientID string) ([]ClientTransaction, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT doc
    FROM client_transactions
    WHERE client_id = $1
    ORDER BY created_at DESC
  `, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []ClientTransaction
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var txn ClientTransaction
		if err := json.Unmarshal(doc, &txn); err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, rows.Err()
}

func (s *Store) GetClientTransaction(ctx context.Context, clientID, id string) (ClientTransaction, error) {
	var doc []byte
	err := s.DB.QueryRow(ctx, `
    SELECT doc
    FROM client_transactions
    WHERE client_id = $1 AND id = $2
  `, clientID, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return ClientTransaction{}, ErrNotFound
	}
	if err != nil {
		return ClientTransaction{}, err
	}
	var txn ClientTransaction
	if err := json.Unmarshal(doc, &txn); err != nil {
		return ClientTransaction{}, err
	}
	return txn, nil
}

func (s *Store) PutClientTransaction(ctx context.Context, txn ClientTransaction) error {
	doc, err := json.Marshal(txn)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO client_transactions (id, client_id, created_at, doc)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
  `, txn.ID, txn.ClientID, txn.Date, doc)
	return err
}

func (s *Store) DeleteClientTransaction(ctx context.Context, clientID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM client_transactions WHERE client_id = $1 AND id = $2", clientID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListEmployeeTransactions(ctx context.Context, employeeID string) ([]EmployeeTransaction, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT doc
    FROM employee_transactions
    WHERE employee_id = $1
    ORDER BY created_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []EmployeeTransaction
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var txn EmployeeTransaction
		if err := json.Unmarshal(doc, &txn); err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, rows.Err()
}

func (s *Store) GetEmployeeTransaction(ctx context.Context, employeeID, id string) (EmployeeTransaction, error) {
	var doc []byte
	err := s.DB.QueryRow(ctx, `
    SELECT doc
    FROM employee_transactions
    WHERE employee_id = $1 AND id = $2
  `, employeeID, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return EmployeeTransaction{}, ErrNotFound
	}
	if err != nil {
		return EmployeeTransaction{}, err
	}
	var txn EmployeeTransaction
	if err := json.Unmarshal(doc, &txn); err != nil {
		return EmployeeTransaction{}, err
	}
	return txn, nil
}

func (s *Store) PutEmployeeTransaction(ctx context.Context, txn EmployeeTransaction) error {
	doc, err := json.Marshal(txn)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO employee_transactions (id, employee_id, created_at, doc)
    VALUES ($1, $2, $3, $4)
    ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
  `, txn.ID, txn.EmployeeID, txn.Date, doc)
	return err
}

func (s *Store) DeleteEmployeeTransaction(ctx context.Context, employeeID, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employee_transactions WHERE employee_id = $1 AND id = $2", employeeID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
