package salary

import (
	"sort"
	"time"

	"washadmin/internal/domain/records"
)

type BreakdownItem struct {
	WashEventID    string    `json:"washEventId"`
	Timestamp      time.Time `json:"timestamp"`
	VehicleNumber  string    `json:"vehicleNumber"`
	Earnings       float64   `json:"earnings"`
	UnpaidServices []string  `json:"unpaidServices"`
}

type Report struct {
	EmployeeID    string          `json:"employeeId"`
	EmployeeName  string          `json:"employeeName"`
	TotalEarnings float64         `json:"totalEarnings"`
	Breakdown     []BreakdownItem `json:"breakdown"`
}

// ComputeReport replays wash events through each participating employee's
// scheme and returns one report per employee, sorted by descending total
// earnings. It is pure: no I/O, no mutation of its inputs, safe for
// concurrent callers.
//
// Employees on the same wash are evaluated independently against their own
// schemes; their shares are not reconciled against the wash's total amount.
// Employees without a scheme, or with a scheme id that decodes to nothing,
// are skipped without error. A breakdown entry is kept only when it carries
// earnings or at least one unpaid service worth flagging.
func ComputeReport(events []records.WashEvent, employees []records.Employee, schemes map[string]Scheme) []Report {
	byID := make(map[string]records.Employee, len(employees))
	reports := make(map[string]*Report, len(employees))
	for _, employee := range employees {
		byID[employee.ID] = employee
		reports[employee.ID] = &Report{
			EmployeeID:   employee.ID,
			EmployeeName: employee.FullName,
			Breakdown:    []BreakdownItem{},
		}
	}

	for _, event := range events {
		var onWash []records.Employee
		for _, id := range event.EmployeeIDs {
			if employee, ok := byID[id]; ok {
				onWash = append(onWash, employee)
			}
		}
		if len(onWash) == 0 {
			continue
		}

		for _, employee := range onWash {
			if employee.SalarySchemeID == "" {
				continue
			}
			scheme, ok := schemes[employee.SalarySchemeID]
			if !ok {
				continue
			}

			earnings, unpaid := individualShare(scheme, event, len(onWash))
			if earnings <= 0 && len(unpaid) == 0 {
				continue
			}

			report := reports[employee.ID]
			report.TotalEarnings += earnings
			report.Breakdown = append(report.Breakdown, BreakdownItem{
				WashEventID:    event.ID,
				Timestamp:      event.Timestamp,
				VehicleNumber:  event.VehicleNumber,
				Earnings:       earnings,
				UnpaidServices: unpaid,
			})
		}
	}

	out := make([]Report, 0, len(reports))
	for _, report := range reports {
		out = append(out, *report)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalEarnings != out[j].TotalEarnings {
			return out[i].TotalEarnings > out[j].TotalEarnings
		}
		return out[i].EmployeeName < out[j].EmployeeName
	})
	return out
}

// individualShare computes one employee's earnings for one wash under their
// scheme, plus the services the scheme had no usable rate for.
func individualShare(scheme Scheme, event records.WashEvent, employeesOnWash int) (float64, []string) {
	if employeesOnWash <= 0 {
		return 0, nil
	}

	switch s := scheme.(type) {
	case Percentage:
		base := event.TotalAmount
		if event.NetAmount != nil {
			base = *event.NetAmount
		}
		pool := (base - s.FixedDeduction) * s.Percent / 100
		return evenShare(pool, employeesOnWash), nil

	case Rate:
		// A restricted scheme that does not match this wash's channel
		// contributes nothing, including no unpaid-service flags.
		if s.Source != nil && !s.Source.matches(event) {
			return 0, nil
		}

		total := 0.0
		var unpaid []string
		services := append([]records.ServiceItem{event.Services.Main}, event.Services.Additional...)
		for _, service := range services {
			if service.ServiceName == "" {
				continue
			}
			rate, ok := s.Rates[service.ServiceName]
			if ok && rate.Rate > 0 {
				if earned := rate.Rate - rate.Deduction; earned > 0 {
					total += earned
				}
			} else if !containsString(unpaid, service.ServiceName) {
				unpaid = append(unpaid, service.ServiceName)
			}
		}
		return evenShare(total, employeesOnWash), unpaid
	}

	return 0, nil
}

func evenShare(pool float64, employeesOnWash int) float64 {
	share := pool / float64(employeesOnWash)
	if share <= 0 {
		return 0
	}
	return Round2(share)
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
