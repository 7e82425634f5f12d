package inventory

import (
	"context"

	"washadmin/internal/domain/records"
)

type StoreAPI interface {
	GetExpense(ctx context.Context, id string) (records.Expense, error)
	PutExpense(ctx context.Context, expense records.Expense) error
	DeleteExpense(ctx context.Context, id string) error
	GetWashEvent(ctx context.Context, id string) (records.WashEvent, error)
	PutWashEvent(ctx context.Context, event records.WashEvent) error
	DeleteWashEvent(ctx context.Context, id string) error
	GetEmployeeTransaction(ctx context.Context, employeeID, id string) (records.EmployeeTransaction, error)
	PutEmployeeTransaction(ctx context.Context, txn records.EmployeeTransaction) error
	DeleteEmployeeTransaction(ctx context.Context, employeeID, id string) error
	AdjustStock(ctx context.Context, deltaGrams float64) (float64, error)
}
