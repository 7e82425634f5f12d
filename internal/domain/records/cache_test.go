package records

import "testing"

func TestCacheMissBeforeSet(t *testing.T) {
	cache := NewCache()
	if _, ok := cache.WashEvents(); ok {
		t.Fatal("expected miss on fresh cache")
	}
	if _, ok := cache.Stock(); ok {
		t.Fatal("expected stock miss on fresh cache")
	}
}

func TestCacheSetThenInvalidate(t *testing.T) {
	cache := NewCache()

	cache.SetExpenses([]Expense{{ID: "exp_1"}})
	expenses, ok := cache.Expenses()
	if !ok || len(expenses) != 1 || expenses[0].ID != "exp_1" {
		t.Fatalf("expected cached expenses, got %v ok=%v", expenses, ok)
	}

	cache.InvalidateExpenses()
	if _, ok := cache.Expenses(); ok {
		t.Fatal("expected miss after invalidation")
	}
}

func TestCacheStockHoldsZero(t *testing.T) {
	cache := NewCache()
	cache.SetStock(0)
	stock, ok := cache.Stock()
	if !ok || stock != 0 {
		t.Fatalf("expected cached zero stock, got %v ok=%v", stock, ok)
	}
}

func TestCachePerClientTransactionsAreIndependent(t *testing.T) {
	cache := NewCache()
	cache.SetClientTransactions("client_1", []ClientTransaction{{ID: "txn_1"}})
	cache.SetClientTransactions("client_2", []ClientTransaction{{ID: "txn_2"}})

	cache.InvalidateClientTransactions("client_1")
	if _, ok := cache.ClientTransactions("client_1"); ok {
		t.Fatal("expected client_1 transactions invalidated")
	}
	txns, ok := cache.ClientTransactions("client_2")
	if !ok || len(txns) != 1 || txns[0].ID != "txn_2" {
		t.Fatal("expected client_2 transactions untouched")
	}
}
