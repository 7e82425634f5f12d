package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"washadmin/internal/domain/records"
)

type InconsistencyRecorder interface {
	RecordInconsistency()
}

// Reconciler keeps the chemical stock counter equal to cumulative restocks
// minus cumulative consumption, applying exactly one signed delta per record
// lifecycle transition. Ordering is record-first for every operation: the
// primary record is written (or removed) before the stock delta, so a failure
// between the two writes always leaves a record discrepancy recoverable by
// replaying the record set, never a phantom stock movement.
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

func (r *Reconciler) CreateExpense(ctx context.Context, expense records.Expense) error {
	if err := r.store.PutExpense(ctx, expense); err != nil {
		return fmt.Errorf("save expense %s: %w", expense.ID, err)
	}
	r.cache.InvalidateExpenses()
	return r.adjust(ctx, RestockGrams(expense), "expense", expense.ID)
}

// UpdateExpense supersedes the stored version and applies the signed
// difference between the two versions' restock contributions. A record that
// stops being a chemical purchase contributes zero on the new side.
func (r *Reconciler) UpdateExpense(ctx context.Context, expense records.Expense) error {
	old, err := r.store.GetExpense(ctx, expense.ID)
	if err != nil {
		return err
	}
	if err := r.store.PutExpense(ctx, expense); err != nil {
		return fmt.Errorf("save expense %s: %w", expense.ID, err)
	}
	r.cache.InvalidateExpenses()
	return r.adjust(ctx, RestockGrams(expense)-RestockGrams(old), "expense", expense.ID)
}

func (r *Reconciler) DeleteExpense(ctx context.Context, id string) error {
	old, err := r.store.GetExpense(ctx, id)
	if err != nil {
		return err
	}
	if err := r.store.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	r.cache.InvalidateExpenses()
	return r.adjust(ctx, -RestockGrams(old), "expense", id)
}

func (r *Reconciler) CreateWashEvent(ctx context.Context, event records.WashEvent) error {
	if err := r.store.PutWashEvent(ctx, event); err != nil {
		return fmt.Errorf("save wash event %s: %w", event.ID, err)
	}
	r.cache.InvalidateWashEvents()
	return r.adjust(ctx, -TotalConsumption(event), "washEvent", event.ID)
}

func (r *Reconciler) UpdateWashEvent(ctx context.Context, event records.WashEvent) error {
	old, err := r.store.GetWashEvent(ctx, event.ID)
	if err != nil {
		return err
	}
	if err := r.store.PutWashEvent(ctx, event); err != nil {
		return fmt.Errorf("save wash event %s: %w", event.ID, err)
	}
	r.cache.InvalidateWashEvents()
	return r.adjust(ctx, TotalConsumption(old)-TotalConsumption(event), "washEvent", event.ID)
}

func (r *Reconciler) DeleteWashEvent(ctx context.Context, id string) error {
	old, err := r.store.GetWashEvent(ctx, id)
	if err != nil {
		return err
	}
	if err := r.store.DeleteWashEvent(ctx, id); err != nil {
		return fmt.Errorf("delete wash event %s: %w", id, err)
	}
	r.cache.InvalidateWashEvents()
	return r.adjust(ctx, TotalConsumption(old), "washEvent", id)
}

// CreateEmployeeTransaction persists any employee transaction; one marked as
// a canister issuance also draws the fixed canister weight from stock.
func (r *Reconciler) CreateEmployeeTransaction(ctx context.Context, txn records.EmployeeTransaction) error {
	if err := r.store.PutEmployeeTransaction(ctx, txn); err != nil {
		return fmt.Errorf("save employee transaction %s: %w", txn.ID, err)
	}
	r.cache.InvalidateEmployeeTransactions(txn.EmployeeID)
	if !IsCanisterIssue(txn) {
		return nil
	}
	return r.adjust(ctx, -CanisterWeightGrams, "employeeTransaction", txn.ID)
}

// DeleteEmployeeTransaction removes the transaction and, for a canister
// issuance, restores the canister weight to stock.
func (r *Reconciler) DeleteEmployeeTransaction(ctx context.Context, employeeID, id string) error {
	old, err := r.store.GetEmployeeTransaction(ctx, employeeID, id)
	if err != nil {
		return err
	}
	if err := r.store.DeleteEmployeeTransaction(ctx, employeeID, id); err != nil {
		return fmt.Errorf("delete employee transaction %s: %w", id, err)
	}
	r.cache.InvalidateEmployeeTransactions(employeeID)
	if !IsCanisterIssue(old) {
		return nil
	}
	return r.adjust(ctx, CanisterWeightGrams, "employeeTransaction", id)
}

func (r *Reconciler) adjust(ctx context.Context, deltaGrams float64, kind, id string) error {
	if deltaGrams == 0 {
		return nil
	}
	grams, err := r.store.AdjustStock(ctx, deltaGrams)
	if err != nil {
		if r.metrics != nil {
			r.metrics.RecordInconsistency()
		}
		r.log.Error("stock adjustment failed after record write",
			"kind", kind, "id", id, "deltaGrams", deltaGrams, "err", err)
		return fmt.Errorf("stock delta for %s %s: %w: %w", kind, id, records.ErrInconsistentState, err)
	}
	r.cache.InvalidateStock()
	if grams < 0 {
		// Negative stock is a data-entry signal, not an error. Report it,
		// never clamp it.
		r.log.Warn("chemical stock below zero", "kind", kind, "id", id, "stockGrams", grams)
	}
	return nil
}
