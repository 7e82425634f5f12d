package salary

import "washadmin/internal/domain/records"

type SourceType string

const (
	SourceRetail       SourceType = "retail"
	SourceAggregator   SourceType = "aggregator"
	SourceCounterAgent SourceType = "counterAgent"
)

// RetailSourceID is the id a retail-restricted rate source declares, since
// retail washes carry no client id of their own.
const RetailSourceID = "retail"

// RateSource restricts a rate scheme to one revenue channel. A scheme
// without a source is universal.
type RateSource struct {
	Type          SourceType
	ID            string
	PriceListName string
}

type ServiceRate struct {
	Rate      float64
	Deduction float64
}

// Scheme is a closed variant: exactly Percentage or Rate. Stored documents
// with any other tag decode to no scheme at all, and employees pointing at
// them earn nothing.
type Scheme interface {
	scheme()
}

// Percentage pays each employee an even share of a percentage of the wash's
// base amount after an optional fixed deduction.
type Percentage struct {
	Percent        float64
	FixedDeduction float64
}

// Rate pays from a per-service rate table, optionally restricted to a
// source, with an optional per-service deduction.
type Rate struct {
	Source *RateSource
	Rates  map[string]ServiceRate
}

func (Percentage) scheme() {}
func (Rate) scheme()       {}

// Decode converts a stored scheme document into its variant. The second
// return is false for unknown scheme types.
func Decode(doc records.SalaryScheme) (Scheme, bool) {
	switch doc.Type {
	case "percentage":
		return Percentage{Percent: doc.Percentage, FixedDeduction: doc.FixedDeduction}, true
	case "rate":
		rates := make(map[string]ServiceRate, len(doc.Rates))
		for _, rate := range doc.Rates {
			rates[rate.ServiceName] = ServiceRate{Rate: rate.Rate, Deduction: rate.Deduction}
		}
		var source *RateSource
		if doc.RateSource != nil {
			source = &RateSource{
				Type:          SourceType(doc.RateSource.Type),
				ID:            doc.RateSource.ID,
				PriceListName: doc.RateSource.PriceListName,
			}
		}
		return Rate{Source: source, Rates: rates}, true
	default:
		return nil, false
	}
}

// DecodeAll indexes decodable schemes by id.
func DecodeAll(docs []records.SalaryScheme) map[string]Scheme {
	schemes := make(map[string]Scheme, len(docs))
	for _, doc := range docs {
		if scheme, ok := Decode(doc); ok {
			schemes[doc.ID] = scheme
		}
	}
	return schemes
}

// sourceTypeOf derives the revenue channel of a wash from its payment
// method. Cash, card and transfer are all retail.
func sourceTypeOf(method records.PaymentMethod) (SourceType, bool) {
	switch method {
	case records.PaymentCash, records.PaymentCard, records.PaymentTransfer:
		return SourceRetail, true
	case records.PaymentAggregator:
		return SourceAggregator, true
	case records.PaymentCounterAgent:
		return SourceCounterAgent, true
	default:
		return "", false
	}
}

func (rs RateSource) matches(event records.WashEvent) bool {
	sourceType, ok := sourceTypeOf(event.PaymentMethod)
	if !ok || rs.Type != sourceType {
		return false
	}
	sourceID := event.SourceID
	if sourceType == SourceRetail {
		sourceID = RetailSourceID
	}
	if rs.ID != sourceID {
		return false
	}
	if sourceType == SourceAggregator && rs.PriceListName != "" && event.PriceListName != rs.PriceListName {
		return false
	}
	return true
}
