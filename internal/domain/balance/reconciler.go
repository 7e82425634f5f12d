package balance

import (
	"context"
	"fmt"
	"log/slog"

	"washadmin/internal/domain/records"
)

type InconsistencyRecorder interface {
	RecordInconsistency()
}

// Reconciler keeps each client's running balance consistent with its manual
// transactions. Wash revenue never flows through here: booking revenue
// against a client is a deliberate, separate accounting step recorded as a
// transaction by an operator.
//
// The balance column and the transaction record live in separate aggregates
// with no shared atomic write, so the balance mutation goes first: if it
// fails nothing is recorded, and if the record write fails afterwards the
// mismatch is surfaced as records.ErrInconsistentState rather than retried.
type Reconciler struct {
	store   StoreAPI
	cache   *records.Cache
	log     *slog.Logger
	metrics InconsistencyRecorder
}

func NewReconciler(store StoreAPI, cache *records.Cache, log *slog.Logger, metrics InconsistencyRecorder) *Reconciler {
	if log == nil {
		log = slog.Default()
	}
	return &Reconciler{store: store, cache: cache, log: log, metrics: metrics}
}

func (r *Reconciler) CreateTransaction(ctx context.Context, txn records.ClientTransaction) error {
	if _, err := r.store.AdjustClientBalance(ctx, txn.ClientID, txn.Amount); err != nil {
		return fmt.Errorf("adjust balance for client %s: %w", txn.ClientID, err)
	}
	r.cache.InvalidateClients()

	if err := r.store.PutClientTransaction(ctx, txn); err != nil {
		if r.metrics != nil {
			r.metrics.RecordInconsistency()
		}
		r.log.Error("transaction record write failed after balance mutation",
			"clientId", txn.ClientID, "transactionId", txn.ID, "amount", txn.Amount, "err", err)
		return fmt.Errorf("record transaction %s: %w: %w", txn.ID, records.ErrInconsistentState, err)
	}
	r.cache.InvalidateClientTransactions(txn.ClientID)
	return nil
}

// DeleteTransaction reverses the transaction's amount exactly, then removes
// the record.
func (r *Reconciler) DeleteTransaction(ctx context.Context, clientID, id string) error {
	txn, err := r.store.GetClientTransaction(ctx, clientID, id)
	if err != nil {
		return err
	}

	if _, err := r.store.AdjustClientBalance(ctx, clientID, -txn.Amount); err != nil {
		return fmt.Errorf("adjust balance for client %s: %w", clientID, err)
	}
	r.cache.InvalidateClients()

	if err := r.store.DeleteClientTransaction(ctx, clientID, id); err != nil {
		if r.metrics != nil {
			r.metrics.RecordInconsistency()
		}
		r.log.Error("transaction record delete failed after balance mutation",
			"clientId", clientID, "transactionId", id, "amount", txn.Amount, "err", err)
		return fmt.Errorf("delete transaction %s: %w: %w", id, records.ErrInconsistentState, err)
	}
	r.cache.InvalidateClientTransactions(clientID)
	return nil
}

// SetBalance overwrites a client's balance as an out-of-band correction. The
// written value is authoritative for all subsequent deltas.
func (r *Reconciler) SetBalance(ctx context.Context, clientID string, value float64) error {
	if err := r.store.SetClientBalance(ctx, clientID, value); err != nil {
		return err
	}
	r.cache.InvalidateClients()
	return nil
}
