package opsheet

import "fmt"

// Category is the type of a broker operation.
//
// The set is closed: an operation type the broker adds later fails decoding
// until it is added here and every switch on Category decides what to do with it.
type Category int

const (
	Buy Category = iota
	BuyCard
	Sell
	BrokerCommission
	ExchangeCommission
	ServiceCommission
	MarginCommission
	OtherCommission
	PayIn
	PayOut
	Tax
	TaxBack
	TaxLucre
	TaxDividend
	TaxCoupon
	Repayment
	PartRepayment
	Coupon
	Dividend
	SecurityIn
	SecurityOut
)

// categoryNames are the broker's names, also used for display.
var categoryNames = [...]string{
	Buy:                "Buy",
	BuyCard:            "BuyCard",
	Sell:               "Sell",
	BrokerCommission:   "BrokerCommission",
	ExchangeCommission: "ExchangeCommission",
	ServiceCommission:  "ServiceCommission",
	MarginCommission:   "MarginCommission",
	OtherCommission:    "OtherCommission",
	PayIn:              "PayIn",
	PayOut:             "PayOut",
	Tax:                "Tax",
	TaxBack:            "TaxBack",
	TaxLucre:           "TaxLucre",
	TaxDividend:        "TaxDividend",
	TaxCoupon:          "TaxCoupon",
	Repayment:          "Repayment",
	PartRepayment:      "PartRepayment",
	Coupon:             "Coupon",
	Dividend:           "Dividend",
	SecurityIn:         "SecurityIn",
	SecurityOut:        "SecurityOut",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// ParseCategory parses a broker operation type.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("unknown operation type: %q", s)
}

func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Status is the execution status of an operation.
type Status int

const (
	// Done operations are settled.
	Done Status = iota
	// Declined operations were rejected by the broker and never happened.
	Declined
	// Progress operations are still executing.
	Progress
)

func (s Status) String() string {
	switch s {
	case Done:
		return "Done"
	case Declined:
		return "Decline"
	case Progress:
		return "Progress"
	default:
		return "unknown"
	}
}

// ParseStatus parses a broker operation status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "Done":
		return Done, nil
	case "Decline":
		return Declined, nil
	case "Progress":
		return Progress, nil
	default:
		return 0, fmt.Errorf("unknown operation status: %q", s)
	}
}

// AccountType distinguishes the broker sub-accounts.
type AccountType int

const (
	// Standard is the regular brokerage account.
	Standard AccountType = iota
	// TaxAdvantaged is the individual investment account (IIS) with preferential tax treatment.
	TaxAdvantaged
)

func (t AccountType) String() string {
	switch t {
	case Standard:
		return "Tinkoff"
	case TaxAdvantaged:
		return "TinkoffIis"
	default:
		return "unknown"
	}
}

// ParseAccountType parses a broker account type.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "Tinkoff":
		return Standard, nil
	case "TinkoffIis":
		return TaxAdvantaged, nil
	default:
		return 0, fmt.Errorf("unknown broker account type: %q", s)
	}
}
