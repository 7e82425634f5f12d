package inventory

import (
	"context"
	"errors"
	"testing"

	"washadmin/internal/domain/records"
)

type fakeStore struct {
	expenses     map[string]records.Expense
	washEvents   map[string]records.WashEvent
	employeeTxns map[string]records.EmployeeTransaction
	stock        float64
	failAdjust   bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		expenses:     map[string]records.Expense{},
		washEvents:   map[string]records.WashEvent{},
		employeeTxns: map[string]records.EmployeeTransaction{},
	}
}

func (f *fakeStore) GetExpense(_ context.Context, id string) (records.Expense, error) {
	expense, ok := f.expenses[id]
	if !ok {
		return records.Expense{}, records.ErrNotFound
	}
	return expense, nil
}

func (f *fakeStore) PutExpense(_ context.Context, expense records.Expense) error {
	f.expenses[expense.ID] = expense
	return nil
}

func (f *fakeStore) DeleteExpense(_ context.Context, id string) error {
	if _, ok := f.expenses[id]; !ok {
		return records.ErrNotFound
	}
	delete(f.expenses, id)
	return nil
}

func (f *fakeStore) GetWashEvent(_ context.Context, id string) (records.WashEvent, error) {
	event, ok := f.washEvents[id]
	if !ok {
		return records.WashEvent{}, records.ErrNotFound
	}
	return event, nil
}

func (f *fakeStore) PutWashEvent(_ context.Context, event records.WashEvent) error {
	f.washEvents[event.ID] = event
	return nil
}

func (f *fakeStore) DeleteWashEvent(_ context.Context, id string) error {
	if _, ok := f.washEvents[id]; !ok {
		return records.ErrNotFound
	}
	delete(f.washEvents, id)
	return nil
}

func (f *fakeStore) GetEmployeeTransaction(_ context.Context, _, id string) (records.EmployeeTransaction, error) {
	txn, ok := f.employeeTxns[id]
	if !ok {
		return records.EmployeeTransaction{}, records.ErrNotFound
	}
	return txn, nil
}

func (f *fakeStore) PutEmployeeTransaction(_ context.Context, txn records.EmployeeTransaction) error {
	f.employeeTxns[txn.ID] = txn
	return nil
}

func (f *fakeStore) DeleteEmployeeTransaction(_ context.Context, _, id string) error {
	if _, ok := f.employeeTxns[id]; !ok {
		return records.ErrNotFound
	}
	delete(f.employeeTxns, id)
	return nil
}

func (f *fakeStore) AdjustStock(_ context.Context, deltaGrams float64) (float64, error) {
	if f.failAdjust {
		return 0, errors.New("adjust failed")
	}
	f.stock += deltaGrams
	return f.stock, nil
}

func newTestReconciler(store *fakeStore) *Reconciler {
	return NewReconciler(store, records.NewCache(), nil, nil)
}

func chemicalExpense(id string, quantityKg float64) records.Expense {
	return records.Expense{
		ID:       id,
		Category: CategoryChemicalPurchase,
		Unit:     UnitKilogram,
		Quantity: quantityKg,
		Amount:   quantityKg * 300,
	}
}

func washWithConsumption(id string, grams float64) records.WashEvent {
	return records.WashEvent{
		ID: id,
		Services: records.WashServices{
			Main: records.ServiceItem{ServiceName: "Комплекс", ChemicalConsumption: grams},
		},
	}
}

func TestExpenseCreateRestocks(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(store)

	if err := rec.CreateExpense(context.Background(), chemicalExpense("exp_1", 2)); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	if store.stock != 2000 {
		t.Fatalf("expected stock 2000, got %v", store.stock)
	}
}

func TestExpenseUpdateAppliesSignedDelta(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(store)
	ctx := context.Background()

	if err := rec.CreateExpense(ctx, chemicalExpense("exp_1", 2)); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	if err := rec.UpdateExpense(ctx, chemicalExpense("exp_1", 5)); err != nil {
		t.Fatalf("update expense: %v", err)
	}
	if store.stock != 5000 {
		t.Fatalf("expected net +3000 delta for stock 5000, got %v", store.stock)
	}
}

func TestExpenseStoppingBeingChemicalRemovesContribution(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(store)
	ctx := context.Background()

	if err := rec.CreateExpense(ctx, chemicalExpense("exp_1", 3)); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	updated := chemicalExpense("exp_1", 3)
	updated.Category = "Прочее"
	if err := rec.UpdateExpense(ctx, updated); err != nil {
		t.Fatalf("update expense: %v", err)
	}
	if store.stock != 0 {
		t.Fatalf("expected stock 0 after category change, got %v", store.stock)
	}
}

func TestExpenseDeleteRemovesExactContribution(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(store)
	ctx := context.Background()

	if err := rec.CreateExpense(ctx, chemicalExpense("exp_1", 4)); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	if err := rec.DeleteExpense(ctx, "exp_1"); err != nil {
		t.Fatalf("delete expense: %v", err)
	}
	if store.stock != 0 {
		t.Fatalf("expected stock back to 0, got %v", store.stock)
	}
	if _, ok := store.expenses["exp_1"]; ok {
		t.Fatal("expected expense record removed")
	}
}

func TestNonChemicalExpenseLeavesStockAlone(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(store)

	expense := records.Expense{ID: "exp_1", Category: "Аренда", Amount: 50000}
	if err := rec.CreateExpense(context.Background(), expense); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	if store.stock != 0 {
		t.Fatalf("expected stock untouched, got %v", store.stock)
	}
}

func TestWashEventRoundTripRestoresStock(t *testing.T) {
	store := newFakeStore()
	store.stock = 10000
	rec := newTestReconciler(store)
	ctx := context.Background()

	if err := rec.CreateWashEvent(ctx, washWithConsumption("we_1", 1500)); err != nil {
		t.Fatalf("create wash event: %v", err)
	}
	if store.stock != 8500 {
		t.Fatalf("expected stock 8500 after consumption, got %v", store.stock)
	}
	if err := rec.DeleteWashEvent(ctx, "we_1"); err != nil {
		t.Fatalf("delete wash event: %v", err)
	}
	if store.stock != 10000 {
		t.Fatalf("expected stock restored to 10000, got %v", store.stock)
	}
}

func TestWashEventUpdateAppliesDifferenceOnly(t *testing.T) {
	store := newFakeStore()
	store.stock = 10000
	rec := newTestReconciler(store)
	ctx := context.Background()

	if err := rec.CreateWashEvent(ctx, washWithConsumption("we_1", 500)); err != nil {
		t.Fatalf("create wash event: %v", err)
	}
	event := washWithConsumption("we_1", 800)
	event.Services.Additional = []records.ServiceItem{{ServiceName: "Коврики", ChemicalConsumption: 200}}
	if err := rec.UpdateWashEvent(ctx, event); err != nil {
		t.Fatalf("update wash event: %v", err)
	}
	if store.stock != 9000 {
		t.Fatalf("expected stock 9000 after net -500 more, got %v", store.stock)
	}
}

func TestCanisterIssueAndReverse(t *testing.T) {
	store := newFakeStore()
	store.stock = 50000
	rec := newTestReconciler(store)
	ctx := context.Background()

	issue := records.EmployeeTransaction{
		ID:          "txn_1",
		EmployeeID:  "emp_1",
		Type:        records.EmployeeTxnPurchase,
		Amount:      3000,
		Description: CanisterMarker + " (20 кг)",
	}
	if err := rec.CreateEmployeeTransaction(ctx, issue); err != nil {
		t.Fatalf("issue canister: %v", err)
	}
	if store.stock != 30000 {
		t.Fatalf("expected stock 30000 after canister issue, got %v", store.stock)
	}
	if err := rec.DeleteEmployeeTransaction(ctx, "emp_1", "txn_1"); err != nil {
		t.Fatalf("reverse canister: %v", err)
	}
	if store.stock != 50000 {
		t.Fatalf("expected stock restored to 50000, got %v", store.stock)
	}
}

func TestPlainPurchaseDoesNotTouchStock(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(store)

	txn := records.EmployeeTransaction{
		ID:          "txn_1",
		EmployeeID:  "emp_1",
		Type:        records.EmployeeTxnPurchase,
		Amount:      500,
		Description: "Перчатки",
	}
	if err := rec.CreateEmployeeTransaction(context.Background(), txn); err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	if store.stock != 0 {
		t.Fatalf("expected stock untouched, got %v", store.stock)
	}
}

func TestNegativeStockIsNotClamped(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(store)

	if err := rec.CreateWashEvent(context.Background(), washWithConsumption("we_1", 1500)); err != nil {
		t.Fatalf("create wash event: %v", err)
	}
	if store.stock != -1500 {
		t.Fatalf("expected stock -1500, got %v", store.stock)
	}
}

func TestStockFailureAfterRecordWriteIsInconsistentState(t *testing.T) {
	store := newFakeStore()
	store.failAdjust = true
	rec := newTestReconciler(store)

	err := rec.CreateExpense(context.Background(), chemicalExpense("exp_1", 2))
	if !errors.Is(err, records.ErrInconsistentState) {
		t.Fatalf("expected ErrInconsistentState, got %v", err)
	}
	if _, ok := store.expenses["exp_1"]; !ok {
		t.Fatal("expected expense record kept, record-first ordering")
	}
}

func TestUpdateMissingExpenseIsNotFound(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(store)

	err := rec.UpdateExpense(context.Background(), chemicalExpense("exp_missing", 1))
	if !errors.Is(err, records.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if store.stock != 0 {
		t.Fatalf("expected stock untouched, got %v", store.stock)
	}
}

func TestFinalStockMatchesSurvivingRecords(t *testing.T) {
	store := newFakeStore()
	rec := newTestReconciler(store)
	ctx := context.Background()

	if err := rec.CreateExpense(ctx, chemicalExpense("exp_1", 10)); err != nil {
		t.Fatalf("create exp_1: %v", err)
	}
	if err := rec.CreateExpense(ctx, chemicalExpense("exp_2", 5)); err != nil {
		t.Fatalf("create exp_2: %v", err)
	}
	if err := rec.CreateWashEvent(ctx, washWithConsumption("we_1", 1200)); err != nil {
		t.Fatalf("create we_1: %v", err)
	}
	if err := rec.UpdateExpense(ctx, chemicalExpense("exp_2", 7)); err != nil {
		t.Fatalf("update exp_2: %v", err)
	}
	if err := rec.CreateWashEvent(ctx, washWithConsumption("we_2", 800)); err != nil {
		t.Fatalf("create we_2: %v", err)
	}
	if err := rec.DeleteExpense(ctx, "exp_1"); err != nil {
		t.Fatalf("delete exp_1: %v", err)
	}
	if err := rec.DeleteWashEvent(ctx, "we_1"); err != nil {
		t.Fatalf("delete we_1: %v", err)
	}

	// Surviving records: exp_2 at 7 kg, we_2 at 800 g.
	if store.stock != 7000-800 {
		t.Fatalf("expected stock 6200, got %v", store.stock)
	}
}

func TestCacheInvalidatedOnMutation(t *testing.T) {
	store := newFakeStore()
	cache := records.NewCache()
	rec := NewReconciler(store, cache, nil, nil)

	cache.SetExpenses([]records.Expense{})
	cache.SetStock(0)

	if err := rec.CreateExpense(context.Background(), chemicalExpense("exp_1", 1)); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	if _, ok := cache.Expenses(); ok {
		t.Fatal("expected expenses cache invalidated")
	}
	if _, ok := cache.Stock(); ok {
		t.Fatal("expected stock cache invalidated")
	}
}
