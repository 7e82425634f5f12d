package balance

import (
	"context"

	"washadmin/internal/domain/records"
)

type StoreAPI interface {
	AdjustClientBalance(ctx context.Context, clientID string, delta float64) (float64, error)
	SetClientBalance(ctx context.Context, clientID string, value float64) error
	GetClientTransaction(ctx context.Context, clientID, id string) (records.ClientTransaction, error)
	PutClientTransaction(ctx context.Context, txn records.ClientTransaction) error
	DeleteClientTransaction(ctx context.Context, clientID, id string) error
}
