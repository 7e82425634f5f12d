package records

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT doc
    FROM employees
    ORDER BY doc->>'fullName'
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var employee Employee
		if err := json.Unmarshal(doc, &employee); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id string) (Employee, error) {
	var doc []byte
	err := s.DB.QueryRow(ctx, "SELECT doc FROM employees WHERE id = $1", id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	var employee Employee
	if err := json.Unmarshal(doc, &employee); err != nil {
		return Employee{}, err
	}
	return employee, nil
}

func (s *Store) PutEmployee(ctx context.Context, employee Employee) error {
	doc, err := json.Marshal(employee)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO employees (id, doc)
    VALUES ($1, $2)
    ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
  `, employee.ID, doc)
	return err
}

func (s *Store) ListSchemes(ctx context.Context) ([]SalaryScheme, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT doc
    FROM salary_schemes
    ORDER BY doc->>'name'
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schemes []SalaryScheme
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var scheme SalaryScheme
		if err := json.Unmarshal(doc, &scheme); err != nil {
			return nil, err
		}
		schemes = append(schemes, scheme)
	}
	return schemes, rows.Err()
}

func (s *Store) GetScheme(ctx context.Context, id string) (SalaryScheme, error) {
	var doc []byte
	err := s.DB.QueryRow(ctx, "SELECT doc FROM salary_schemes WHERE id = $1", id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return SalaryScheme{}, ErrNotFound
	}
	if err != nil {
		return SalaryScheme{}, err
	}
	var scheme SalaryScheme
	if err := json.Unmarshal(doc, &scheme); err != nil {
		return SalaryScheme{}, err
	}
	return scheme, nil
}

func (s *Store) PutScheme(ctx context.Context, scheme SalaryScheme) error {
	doc, err := json.Marshal(scheme)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO salary_schemes (id, doc)
    VALUES ($1, $2)
    ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc
  `, scheme.ID, doc)
	return err
}
