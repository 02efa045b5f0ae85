package opsheet

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Range is an interval of time, both bounds included.
// A zero bound means "use the default".
type Range struct{ From, To time.Time }

// OperationFilter narrows the operations returned by a Broker.
type OperationFilter struct {
	Instrument Optional[InstrumentRef] // only operations on that instrument
	Account    AccountID               // "" is the default account
}

// TickerResolver resolves an instrument reference to its display ticker.
type TickerResolver interface {
	Ticker(ctx context.Context, ref InstrumentRef) (string, error)
}

// Broker is the source of all account data.
type Broker interface {
	TickerResolver
	// Operations returns the operations in the range, most recent first.
	Operations(ctx context.Context, r Range, filter OperationFilter) ([]Operation, error)
	// InstrumentByTicker finds the instrument traded under ticker.
	InstrumentByTicker(ctx context.Context, ticker string) (InstrumentRef, error)
	// Positions returns the current positions of an account.
	Positions(ctx context.Context, account AccountID) ([]Position, error)
	// Currencies returns the cash balances of the default account.
	Currencies(ctx context.Context) ([]CurrencyBalance, error)
	// Accounts lists the user's sub-accounts.
	Accounts(ctx context.Context) ([]Account, error)
	// LastPrice returns the last traded price of an instrument.
	LastPrice(ctx context.Context, ref InstrumentRef) (decimal.Decimal, error)
}
