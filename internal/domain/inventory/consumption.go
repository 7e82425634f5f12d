package inventory

import (
	"strings"

	"washadmin/internal/domain/records"
)

// Business constants carried over from the operating data: the expense
// category and unit that mark a chemical restock, and the marker text on a
// purchase transaction that records a canister handed to an employee.
const (
	CategoryChemicalPurchase = "Закупка химии"
	UnitKilogram             = "кг"
	CanisterMarker           = "Выдача канистры химии"
	CanisterWeightGrams      = 20000.0
)

// RestockGrams returns the stock contribution of an expense: quantity
// converted to grams when the expense is a chemical purchase by weight,
// zero otherwise.
func RestockGrams(expense records.Expense) float64 {
	if expense.Category != CategoryChemicalPurchase || expense.Unit != UnitKilogram {
		return 0
	}
	if expense.Quantity <= 0 {
		return 0
	}
	return expense.Quantity * 1000
}

// TotalConsumption sums the chemical norm over the main service and every
// additional service. A service without a norm contributes zero. The
// per-employee breakdown on a service is analytics data and deliberately not
// part of the stock delta.
func TotalConsumption(event records.WashEvent) float64 {
	total := event.Services.Main.ChemicalConsumption
	for _, service := range event.Services.Additional {
		total += service.ChemicalConsumption
	}
	return total
}

// IsCanisterIssue reports whether an employee transaction records a chemical
// canister handed out. This consumption channel is independent of wash events.
func IsCanisterIssue(txn records.EmployeeTransaction) bool {
	return txn.Type == records.EmployeeTxnPurchase && strings.Contains(txn.Description, CanisterMarker)
}
