package records

import "time"

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentTransfer     PaymentMethod = "transfer"
	PaymentAggregator   PaymentMethod = "aggregator"
	PaymentCounterAgent PaymentMethod = "counterAgentContract"
)

type EmployeeConsumption struct {
	EmployeeID string  `json:"employeeId"`
	Amount     float64 `json:"amount"`
}

// ServiceItem is one priced service on a wash. ChemicalConsumption is the
// per-service norm in grams; EmployeeConsumptions is the optional actual
// breakdown recorded for analytics.
type ServiceItem struct {
	ServiceName          string                `json:"serviceName"`
	Price                float64               `json:"price"`
	ChemicalConsumption  float64               `json:"chemicalConsumption,omitempty"`
	EmployeeConsumptions []EmployeeConsumption `json:"employeeConsumptions,omitempty"`
}

type WashServices struct {
	Main       ServiceItem   `json:"main"`
	Additional []ServiceItem `json:"additional"`
}

type WashEvent struct {
	ID            string        `json:"id"`
	Timestamp     time.Time     `json:"timestamp"`
	VehicleNumber string        `json:"vehicleNumber"`
	EmployeeIDs   []string      `json:"employeeIds"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	SourceID      string        `json:"sourceId,omitempty"`
	SourceName    string        `json:"sourceName,omitempty"`
	PriceListName string        `json:"priceListName,omitempty"`
	TotalAmount   float64       `json:"totalAmount"`
	NetAmount     *float64      `json:"netAmount,omitempty"`
	AcquiringFee  float64       `json:"acquiringFee,omitempty"`
	Services      WashServices  `json:"services"`
}

type Expense struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
	Quantity     float64   `json:"quantity,omitempty"`
	Unit         string    `json:"unit,omitempty"`
	PricePerUnit float64   `json:"pricePerUnit,omitempty"`
}

type ClientTransaction struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"clientId"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
}

type EmployeeTransactionType string

const (
	EmployeeTxnPayment  EmployeeTransactionType = "payment"
	EmployeeTxnLoan     EmployeeTransactionType = "loan"
	EmployeeTxnBonus    EmployeeTransactionType = "bonus"
	EmployeeTxnPurchase EmployeeTransactionType = "purchase"
)

// EmployeeTransaction amounts are always non-negative; Type decides whether
// the amount is owed to or by the employee.
type EmployeeTransaction struct {
	ID          string                  `json:"id"`
	EmployeeID  string                  `json:"employeeId"`
	Date        time.Time               `json:"date"`
	Type        EmployeeTransactionType `json:"type"`
	Amount      float64                 `json:"amount"`
	Description string                  `json:"description"`
}

type Employee struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Phone          string `json:"phone,omitempty"`
	PaymentDetails string `json:"paymentDetails,omitempty"`
	HasCar         bool   `json:"hasCar,omitempty"`
	SalarySchemeID string `json:"salarySchemeId,omitempty"`
}

type ClientKind string

const (
	ClientCounterAgent ClientKind = "counterAgent"
	ClientAggregator   ClientKind = "aggregator"
)

// Client is a counter-agent or an aggregator. Balance is signed; negative
// means the client owes money. It is mutated only through signed deltas or
// an explicit authoritative overwrite, never by report computations.
type Client struct {
	ID      string     `json:"id"`
	Kind    ClientKind `json:"kind"`
	Name    string     `json:"name"`
	Balance float64    `json:"balance"`
}

type SalaryRate struct {
	ServiceName string  `json:"serviceName"`
	Rate        float64 `json:"rate"`
	Deduction   float64 `json:"deduction,omitempty"`
}

type RateSource struct {
	Type          string `json:"type"`
	ID            string `json:"id"`
	PriceListName string `json:"priceListName,omitempty"`
}

// SalaryScheme is the stored form of a scheme. The salary package decodes it
// into a closed variant; unknown Type values decode to nothing.
type SalaryScheme struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Type           string       `json:"type"`
	Percentage     float64      `json:"percentage,omitempty"`
	FixedDeduction float64      `json:"fixedDeduction,omitempty"`
	RateSource     *RateSource  `json:"rateSource,omitempty"`
	Rates          []SalaryRate `json:"rates,omitempty"`
}

type Inventory struct {
	ChemicalStockGrams float64 `json:"chemicalStockGrams"`
}
