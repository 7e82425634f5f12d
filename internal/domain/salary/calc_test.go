package salary

import (
	"testing"

	"washadmin/internal/domain/records"
)

func percentageScheme(percent, fixedDeduction float64) Scheme {
	return Percentage{Percent: percent, FixedDeduction: fixedDeduction}
}

func wash(id string, amount float64, employeeIDs ...string) records.WashEvent {
	return records.WashEvent{
		ID:            id,
		VehicleNumber: "А001АА",
		PaymentMethod: records.PaymentCash,
		TotalAmount:   amount,
		EmployeeIDs:   employeeIDs,
		Services: records.WashServices{
			Main: records.ServiceItem{ServiceName: "Комплекс", Price: amount},
		},
	}
}

func employee(id, name, schemeID string) records.Employee {
	return records.Employee{ID: id, FullName: name, SalarySchemeID: schemeID}
}

func findReport(t *testing.T, reports []Report, employeeID string) Report {
	t.Helper()
	for _, report := range reports {
		if report.EmployeeID == employeeID {
			return report
		}
	}
	t.Fatalf("no report for employee %s", employeeID)
	return Report{}
}

func TestPercentageSplitsPoolEvenly(t *testing.T) {
	events := []records.WashEvent{wash("we_1", 1800, "emp_1", "emp_2")}
	employees := []records.Employee{
		employee("emp_1", "Иванов", "scheme_pct"),
		employee("emp_2", "Петров", "scheme_pct"),
	}
	schemes := map[string]Scheme{"scheme_pct": percentageScheme(50, 0)}

	reports := ComputeReport(events, employees, schemes)
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	for _, report := range reports {
		if report.TotalEarnings != 450 {
			t.Fatalf("expected 450.00 each, %s got %v", report.EmployeeID, report.TotalEarnings)
		}
		if len(report.Breakdown) != 1 {
			t.Fatalf("expected one breakdown entry, got %d", len(report.Breakdown))
		}
	}
}

func TestPercentagePrefersNetAmount(t *testing.T) {
	net := 1000.0
	event := wash("we_1", 1800, "emp_1")
	event.NetAmount = &net
	employees := []records.Employee{employee("emp_1", "Иванов", "scheme_pct")}
	schemes := map[string]Scheme{"scheme_pct": percentageScheme(50, 0)}

	reports := ComputeReport([]records.WashEvent{event}, employees, schemes)
	if got := findReport(t, reports, "emp_1").TotalEarnings; got != 500 {
		t.Fatalf("expected base netAmount for 500.00, got %v", got)
	}
}

func TestPercentageFixedDeductionComesOffBase(t *testing.T) {
	events := []records.WashEvent{wash("we_1", 2000, "emp_1")}
	employees := []records.Employee{employee("emp_1", "Иванов", "scheme_pct")}
	schemes := map[string]Scheme{"scheme_pct": percentageScheme(40, 500)}

	reports := ComputeReport(events, employees, schemes)
	// (2000 - 500) * 40% = 600.
	if got := findReport(t, reports, "emp_1").TotalEarnings; got != 600 {
		t.Fatalf("expected 600.00, got %v", got)
	}
}

func TestPercentageNegativePoolFloorsAtZero(t *testing.T) {
	events := []records.WashEvent{wash("we_1", 300, "emp_1")}
	employees := []records.Employee{employee("emp_1", "Иванов", "scheme_pct")}
	schemes := map[string]Scheme{"scheme_pct": percentageScheme(50, 1000)}

	reports := ComputeReport(events, employees, schemes)
	report := findReport(t, reports, "emp_1")
	if report.TotalEarnings != 0 {
		t.Fatalf("expected zero earnings, got %v", report.TotalEarnings)
	}
	if len(report.Breakdown) != 0 {
		t.Fatalf("expected no breakdown entry for zero earnings, got %d", len(report.Breakdown))
	}
}

func TestRateSchemeRatedAndUnratedServices(t *testing.T) {
	event := wash("we_1", 2500, "emp_1", "emp_2")
	event.Services.Additional = []records.ServiceItem{{ServiceName: "Чернение резины", Price: 300}}
	employees := []records.Employee{
		employee("emp_1", "Иванов", "scheme_rate"),
		employee("emp_2", "Петров", "scheme_rate"),
	}
	schemes := map[string]Scheme{"scheme_rate": Rate{
		Rates: map[string]ServiceRate{"Комплекс": {Rate: 500}},
	}}

	reports := ComputeReport([]records.WashEvent{event}, employees, schemes)
	for _, id := range []string{"emp_1", "emp_2"} {
		report := findReport(t, reports, id)
		if report.TotalEarnings != 250 {
			t.Fatalf("expected 250.00 for %s, got %v", id, report.TotalEarnings)
		}
		if len(report.Breakdown) != 1 {
			t.Fatalf("expected one breakdown entry, got %d", len(report.Breakdown))
		}
		unpaid := report.Breakdown[0].UnpaidServices
		if len(unpaid) != 1 || unpaid[0] != "Чернение резины" {
			t.Fatalf("expected unrated service flagged, got %v", unpaid)
		}
	}
}

func TestRateDeductionAppliedPerService(t *testing.T) {
	events := []records.WashEvent{wash("we_1", 2500, "emp_1")}
	employees := []records.Employee{employee("emp_1", "Иванов", "scheme_rate")}
	schemes := map[string]Scheme{"scheme_rate": Rate{
		Rates: map[string]ServiceRate{"Комплекс": {Rate: 500, Deduction: 120}},
	}}

	reports := ComputeReport(events, employees, schemes)
	if got := findReport(t, reports, "emp_1").TotalEarnings; got != 380 {
		t.Fatalf("expected 380.00, got %v", got)
	}
}

func TestRateDeductionNeverDrivesServiceNegative(t *testing.T) {
	events := []records.WashEvent{wash("we_1", 2500, "emp_1")}
	employees := []records.Employee{employee("emp_1", "Иванов", "scheme_rate")}
	schemes := map[string]Scheme{"scheme_rate": Rate{
		Rates: map[string]ServiceRate{"Комплекс": {Rate: 100, Deduction: 300}},
	}}

	reports := ComputeReport(events, employees, schemes)
	report := findReport(t, reports, "emp_1")
	if report.TotalEarnings != 0 {
		t.Fatalf("expected zero earnings, got %v", report.TotalEarnings)
	}
	// The service is rated, just deducted to nothing, so it is not unpaid.
	if len(report.Breakdown) != 0 {
		t.Fatalf("expected no breakdown entry, got %d", len(report.Breakdown))
	}
}

func TestUnpaidServicesDeduplicated(t *testing.T) {
	event := wash("we_1", 1000, "emp_1")
	event.Services.Main = records.ServiceItem{ServiceName: "Полировка", Price: 500}
	event.Services.Additional = []records.ServiceItem{
		{ServiceName: "Полировка", Price: 500},
	}
	employees := []records.Employee{employee("emp_1", "Иванов", "scheme_rate")}
	schemes := map[string]Scheme{"scheme_rate": Rate{Rates: map[string]ServiceRate{}}}

	reports := ComputeReport([]records.WashEvent{event}, employees, schemes)
	unpaid := findReport(t, reports, "emp_1").Breakdown[0].UnpaidServices
	if len(unpaid) != 1 || unpaid[0] != "Полировка" {
		t.Fatalf("expected single deduplicated unpaid service, got %v", unpaid)
	}
}

func TestCounterAgentRestrictedSchemeIgnoresOtherSources(t *testing.T) {
	event := wash("we_1", 3000, "emp_1")
	event.PaymentMethod = records.PaymentCounterAgent
	event.SourceID = "client_other"
	employees := []records.Employee{employee("emp_1", "Иванов", "scheme_rate")}
	schemes := map[string]Scheme{"scheme_rate": Rate{
		Source: &RateSource{Type: SourceCounterAgent, ID: "client_taxi"},
		Rates:  map[string]ServiceRate{"Комплекс": {Rate: 500}},
	}}

	reports := ComputeReport([]records.WashEvent{event}, employees, schemes)
	report := findReport(t, reports, "emp_1")
	if report.TotalEarnings != 0 || len(report.Breakdown) != 0 {
		t.Fatalf("expected no contribution from non-matching source, got %+v", report)
	}
}

func TestRetailRestrictedSchemeMatchesCashCardTransfer(t *testing.T) {
	employees := []records.Employee{employee("emp_1", "Иванов", "scheme_rate")}
	schemes := map[string]Scheme{"scheme_rate": Rate{
		Source: &RateSource{Type: SourceRetail, ID: RetailSourceID},
		Rates:  map[string]ServiceRate{"Комплекс": {Rate: 400}},
	}}

	for _, method := range []records.PaymentMethod{records.PaymentCash, records.PaymentCard, records.PaymentTransfer} {
		event := wash("we_1", 1000, "emp_1")
		event.PaymentMethod = method
		reports := ComputeReport([]records.WashEvent{event}, employees, schemes)
		if got := findReport(t, reports, "emp_1").TotalEarnings; got != 400 {
			t.Fatalf("method %s: expected 400.00, got %v", method, got)
		}
	}
}

func TestAggregatorPriceListRestriction(t *testing.T) {
	event := wash("we_1", 1000, "emp_1")
	event.PaymentMethod = records.PaymentAggregator
	event.SourceID = "agg_1"
	event.PriceListName = "Базовый"
	employees := []records.Employee{employee("emp_1", "Иванов", "scheme_rate")}
	schemes := map[string]Scheme{"scheme_rate": Rate{
		Source: &RateSource{Type: SourceAggregator, ID: "agg_1", PriceListName: "Премиум"},
		Rates:  map[string]ServiceRate{"Комплекс": {Rate: 400}},
	}}

	reports := ComputeReport([]records.WashEvent{event}, employees, schemes)
	if got := findReport(t, reports, "emp_1").TotalEarnings; got != 0 {
		t.Fatalf("expected price list mismatch to pay nothing, got %v", got)
	}

	schemes["scheme_rate"] = Rate{
		Source: &RateSource{Type: SourceAggregator, ID: "agg_1", PriceListName: "Базовый"},
		Rates:  map[string]ServiceRate{"Комплекс": {Rate: 400}},
	}
	reports = ComputeReport([]records.WashEvent{event}, employees, schemes)
	if got := findReport(t, reports, "emp_1").TotalEarnings; got != 400 {
		t.Fatalf("expected matching price list to pay 400.00, got %v", got)
	}
}

func TestUniversalRateSchemeMatchesEverySource(t *testing.T) {
	event := wash("we_1", 1000, "emp_1")
	event.PaymentMethod = records.PaymentCounterAgent
	event.SourceID = "client_any"
	employees := []records.Employee{employee("emp_1", "Иванов", "scheme_rate")}
	schemes := map[string]Scheme{"scheme_rate": Rate{
		Rates: map[string]ServiceRate{"Комплекс": {Rate: 350}},
	}}

	reports := ComputeReport([]records.WashEvent{event}, employees, schemes)
	if got := findReport(t, reports, "emp_1").TotalEarnings; got != 350 {
		t.Fatalf("expected 350.00, got %v", got)
	}
}

func TestEmployeeWithoutSchemeEarnsNothing(t *testing.T) {
	events := []records.WashEvent{wash("we_1", 1800, "emp_1", "emp_2")}
	employees := []records.Employee{
		employee("emp_1", "Иванов", "scheme_pct"),
		employee("emp_2", "Петров", ""),
	}
	schemes := map[string]Scheme{"scheme_pct": percentageScheme(50, 0)}

	reports := ComputeReport(events, employees, schemes)
	if len(reports) != 2 {
		t.Fatalf("expected a report for every employee, got %d", len(reports))
	}
	// The scheme-less employee still counts toward the split.
	if got := findReport(t, reports, "emp_1").TotalEarnings; got != 450 {
		t.Fatalf("expected 450.00, got %v", got)
	}
	noScheme := findReport(t, reports, "emp_2")
	if noScheme.TotalEarnings != 0 || len(noScheme.Breakdown) != 0 {
		t.Fatalf("expected empty report for scheme-less employee, got %+v", noScheme)
	}
}

func TestUnknownEmployeeIDsExcludedFromSplit(t *testing.T) {
	events := []records.WashEvent{wash("we_1", 1800, "emp_1", "emp_deleted")}
	employees := []records.Employee{employee("emp_1", "Иванов", "scheme_pct")}
	schemes := map[string]Scheme{"scheme_pct": percentageScheme(50, 0)}

	reports := ComputeReport(events, employees, schemes)
	// Only one known employee on the wash, so no split.
	if got := findReport(t, reports, "emp_1").TotalEarnings; got != 900 {
		t.Fatalf("expected 900.00, got %v", got)
	}
}

func TestReportsSortedByEarningsThenName(t *testing.T) {
	events := []records.WashEvent{
		wash("we_1", 2000, "emp_1"),
		wash("we_2", 4000, "emp_2"),
	}
	employees := []records.Employee{
		employee("emp_1", "Иванов", "scheme_pct"),
		employee("emp_2", "Петров", "scheme_pct"),
		employee("emp_3", "Арсеньев", ""),
		employee("emp_4", "Борисов", ""),
	}
	schemes := map[string]Scheme{"scheme_pct": percentageScheme(50, 0)}

	reports := ComputeReport(events, employees, schemes)
	if len(reports) != 4 {
		t.Fatalf("expected 4 reports, got %d", len(reports))
	}
	if reports[0].EmployeeID != "emp_2" || reports[1].EmployeeID != "emp_1" {
		t.Fatalf("expected descending earnings order, got %s then %s", reports[0].EmployeeID, reports[1].EmployeeID)
	}
	if reports[2].EmployeeName != "Арсеньев" || reports[3].EmployeeName != "Борисов" {
		t.Fatalf("expected name tiebreak among zero earners, got %s then %s", reports[2].EmployeeName, reports[3].EmployeeName)
	}
}

func TestEarningsRoundedToKopecks(t *testing.T) {
	events := []records.WashEvent{wash("we_1", 1000, "emp_1", "emp_2", "emp_3")}
	employees := []records.Employee{
		employee("emp_1", "Иванов", "scheme_pct"),
		employee("emp_2", "Петров", "scheme_pct"),
		employee("emp_3", "Сидоров", "scheme_pct"),
	}
	schemes := map[string]Scheme{"scheme_pct": percentageScheme(100, 0)}

	reports := ComputeReport(events, employees, schemes)
	// 1000 / 3 rounds half away from zero to 333.33.
	if got := findReport(t, reports, "emp_1").TotalEarnings; got != 333.33 {
		t.Fatalf("expected 333.33, got %v", got)
	}
}

func TestDecodeRejectsUnknownSchemeType(t *testing.T) {
	if _, ok := Decode(records.SalaryScheme{ID: "s1", Type: "hourly"}); ok {
		t.Fatal("expected unknown scheme type to decode to nothing")
	}
	schemes := DecodeAll([]records.SalaryScheme{
		{ID: "s1", Type: "hourly"},
		{ID: "s2", Type: "percentage", Percentage: 40},
	})
	if _, ok := schemes["s1"]; ok {
		t.Fatal("expected unknown scheme excluded from index")
	}
	if _, ok := schemes["s2"]; !ok {
		t.Fatal("expected percentage scheme indexed")
	}
}

func TestComputeReportDoesNotMutateInputs(t *testing.T) {
	event := wash("we_1", 1000, "emp_1")
	event.Services.Additional = []records.ServiceItem{{ServiceName: "Коврики", Price: 100}}
	events := []records.WashEvent{event}
	employees := []records.Employee{employee("emp_1", "Иванов", "scheme_rate")}
	schemes := map[string]Scheme{"scheme_rate": Rate{
		Rates: map[string]ServiceRate{"Комплекс": {Rate: 300}},
	}}

	ComputeReport(events, employees, schemes)
	if events[0].Services.Main.ServiceName != "Комплекс" || len(events[0].Services.Additional) != 1 {
		t.Fatalf("expected event services untouched, got %+v", events[0].Services)
	}
}
