package opsheet

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTradingStart is the lower bound of reports when none is configured.
var DefaultTradingStart = time.Date(2019, time.January, 1, 10, 0, 0, 0, time.FixedZone("MSK", 3*60*60))

// DefaultReferenceInstrument is the USD/RUB instrument used by ReferencePrice.
const DefaultReferenceInstrument InstrumentRef = "BBG0013HGFT4"

// Reporter produces reports from a Broker.
//
// A Reporter holds no mutable state, every call fetches what it needs.
type Reporter struct {
	broker       Broker
	tradingStart time.Time
	reference    InstrumentRef
	now          func() time.Time
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithTradingStart sets the default lower bound of report ranges.
func WithTradingStart(start time.Time) ReporterOption {
	return func(r *Reporter) { r.tradingStart = start }
}

// WithReferenceInstrument sets the instrument valued by ReferencePrice.
func WithReferenceInstrument(ref InstrumentRef) ReporterOption {
	return func(r *Reporter) { r.reference = ref }
}

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) ReporterOption {
	return func(r *Reporter) { r.now = now }
}

// NewReporter returns a Reporter reading from b.
func NewReporter(b Broker, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		broker:       b,
		tradingStart: DefaultTradingStart,
		reference:    DefaultReferenceInstrument,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fills the zero bounds of rng: From defaults to the trading start and To
// to one day after now, so that operations of today are always included
// whatever the clock skew between here and the broker.
func (r *Reporter) Resolve(rng Range) Range {
	if rng.From.IsZero() {
		rng.From = r.tradingStart
	}
	if rng.To.IsZero() {
		rng.To = r.now().Add(24 * time.Hour)
	}
	return rng
}

// TradeHistory returns the operations on the instrument traded under ticker.
func (r *Reporter) TradeHistory(ctx context.Context, ticker string, rng Range) (Table[TradeRow], error) {
	ref, err := r.broker.InstrumentByTicker(ctx, ticker)
	if err != nil {
		return Table[TradeRow]{}, fmt.Errorf("resolving ticker %q: %w", ticker, err)
	}
	ops, err := r.broker.Operations(ctx, r.Resolve(rng), OperationFilter{Instrument: Some(ref)})
	if err != nil {
		return Table[TradeRow]{}, fmt.Errorf("fetching operations: %w", err)
	}
	return BuildTradeHistory(ops), nil
}

// Ledger returns the ledger of the default account.
func (r *Reporter) Ledger(ctx context.Context, rng Range) (Table[LedgerRow], error) {
	ops, err := r.broker.Operations(ctx, r.Resolve(rng), OperationFilter{})
	if err != nil {
		return Table[LedgerRow]{}, fmt.Errorf("fetching operations: %w", err)
	}
	return BuildLedger(ctx, ops, r.broker)
}

// TaxAdvantagedAccount returns the id of the tax-advantaged account.
func (r *Reporter) TaxAdvantagedAccount(ctx context.Context) (AccountID, error) {
	accounts, err := r.broker.Accounts(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching accounts: %w", err)
	}
	return FindTaxAdvantagedAccount(accounts)
}

// Accounts lists the broker accounts of the user.
func (r *Reporter) Accounts(ctx context.Context) (Table[AccountRow], error) {
	accounts, err := r.broker.Accounts(ctx)
	if err != nil {
		return Table[AccountRow]{}, fmt.Errorf("fetching accounts: %w", err)
	}
	t := Table[AccountRow]{Rows: make([]AccountRow, 0, len(accounts))}
	for _, a := range accounts {
		t.Rows = append(t.Rows, AccountRow{ID: a.ID, Type: a.Type})
	}
	return t, nil
}

// TaxAdvantagedLedger returns the ledger of the tax-advantaged account.
func (r *Reporter) TaxAdvantagedLedger(ctx context.Context, rng Range) (Table[TaxLedgerRow], error) {
	id, err := r.TaxAdvantagedAccount(ctx)
	if err != nil {
		return Table[TaxLedgerRow]{}, err
	}
	ops, err := r.broker.Operations(ctx, r.Resolve(rng), OperationFilter{Account: id})
	if err != nil {
		return Table[TaxLedgerRow]{}, fmt.Errorf("fetching operations: %w", err)
	}
	return BuildTaxLedger(ctx, ops, r.broker)
}

// Holdings values the positions of the default account.
func (r *Reporter) Holdings(ctx context.Context) (Table[HoldingRow], error) {
	return r.holdings(ctx, "")
}

// TaxAdvantagedHoldings values the positions of the tax-advantaged account.
func (r *Reporter) TaxAdvantagedHoldings(ctx context.Context) (Table[HoldingRow], error) {
	id, err := r.TaxAdvantagedAccount(ctx)
	if err != nil {
		return Table[HoldingRow]{}, err
	}
	return r.holdings(ctx, id)
}

func (r *Reporter) holdings(ctx context.Context, id AccountID) (Table[HoldingRow], error) {
	positions, err := r.broker.Positions(ctx, id)
	if err != nil {
		return Table[HoldingRow]{}, fmt.Errorf("fetching positions: %w", err)
	}
	return ReduceHoldings(positions)
}

// Currencies lists the cash balances of the default account.
func (r *Reporter) Currencies(ctx context.Context) (Table[CurrencyRow], error) {
	balances, err := r.broker.Currencies(ctx)
	if err != nil {
		return Table[CurrencyRow]{}, fmt.Errorf("fetching currencies: %w", err)
	}
	return ReduceCurrencies(balances), nil
}

// ReferencePrice returns the last price of the reference instrument.
func (r *Reporter) ReferencePrice(ctx context.Context) (decimal.Decimal, error) {
	p, err := r.broker.LastPrice(ctx, r.reference)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fetching price of %s: %w", r.reference, err)
	}
	return p, nil
}

// Price returns the last price of the instrument traded under ticker.
func (r *Reporter) Price(ctx context.Context, ticker string) (decimal.Decimal, error) {
	ref, err := r.broker.InstrumentByTicker(ctx, ticker)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("resolving ticker %q: %w", ticker, err)
	}
	p, err := r.broker.LastPrice(ctx, ref)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fetching price of %s: %w", ticker, err)
	}
	return p, nil
}

// excludedFromTrades reports the categories left out of the trade history.
func excludedFromTrades(c Category) bool { return c == BrokerCommission }

// excludedFromLedgers reports the categories left out of both account ledgers.
func excludedFromLedgers(c Category) bool {
	switch c {
	case BrokerCommission, PayIn, PayOut:
		return true
	default:
		return false
	}
}

// chronological returns the operations that are neither declined nor excluded,
// oldest first. ops is expected most recent first, as a Broker returns them.
func chronological(ops []Operation, excluded func(Category) bool) []Operation {
	kept := make([]Operation, 0, len(ops))
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		if op.Status == Declined || excluded(op.Category) {
			continue
		}
		kept = append(kept, op)
	}
	// reversing is enough for a well-behaved broker, the stable sort makes
	// ascending dates a guarantee.
	slices.SortStableFunc(kept, func(a, b Operation) int { return a.Date.Compare(b.Date) })
	return kept
}

// resolveTicker returns "" without calling the resolver when there is no instrument.
func resolveTicker(ctx context.Context, resolver TickerResolver, ref Optional[InstrumentRef]) (string, error) {
	figi, ok := ref.Get()
	if !ok {
		return "", nil
	}
	ticker, err := resolver.Ticker(ctx, figi)
	if err != nil {
		return "", fmt.Errorf("resolving ticker of %s: %w", figi, err)
	}
	return ticker, nil
}

// BuildTradeHistory builds the trade history rows of operations on a single instrument.
func BuildTradeHistory(ops []Operation) Table[TradeRow] {
	kept := chronological(ops, excludedFromTrades)
	rows := make([]TradeRow, 0, len(kept))
	for _, op := range kept {
		n := Normalize(op.Category, Aggregate(op.Fills), op.Commission)
		rows = append(rows, TradeRow{
			Date:       op.Date,
			Category:   op.Category,
			Quantity:   n.Quantity,
			Price:      n.Price,
			Currency:   op.Currency,
			Commission: n.Commission,
		})
	}
	return Table[TradeRow]{Rows: rows}
}

// BuildLedger builds the full account ledger.
func BuildLedger(ctx context.Context, ops []Operation, resolver TickerResolver) (Table[LedgerRow], error) {
	kept := chronological(ops, excludedFromLedgers)
	rows := make([]LedgerRow, 0, len(kept))
	for _, op := range kept {
		n := Normalize(op.Category, Aggregate(op.Fills), op.Commission)
		ticker, err := resolveTicker(ctx, resolver, op.Instrument)
		if err != nil {
			return Table[LedgerRow]{}, err
		}
		charged := n.Charged
		if !op.Commission.IsSome() {
			charged = M(0, op.Currency)
		}
		if !op.Payment.SameCurrency(charged) {
			return Table[LedgerRow]{}, fmt.Errorf("operation %s: commission in %s cannot settle a payment in %s", op.ID, charged.Currency(), op.Payment.Currency())
		}
		rows = append(rows, LedgerRow{
			Date:       op.Date,
			Ticker:     ticker,
			Category:   op.Category,
			Quantity:   n.Quantity,
			Price:      n.Price,
			Commission: charged,
			Total:      op.Payment.Sub(charged),
			Currency:   op.Currency,
		})
	}
	return Table[LedgerRow]{Header: LedgerHeader, Rows: rows}, nil
}

// BuildTaxLedger builds the tax-advantaged account ledger. The payment is
// reported as the broker sent it.
func BuildTaxLedger(ctx context.Context, ops []Operation, resolver TickerResolver) (Table[TaxLedgerRow], error) {
	kept := chronological(ops, excludedFromLedgers)
	rows := make([]TaxLedgerRow, 0, len(kept))
	for _, op := range kept {
		n := Normalize(op.Category, Aggregate(op.Fills), op.Commission)
		ticker, err := resolveTicker(ctx, resolver, op.Instrument)
		if err != nil {
			return Table[TaxLedgerRow]{}, err
		}
		rows = append(rows, TaxLedgerRow{
			Date:     op.Date,
			Ticker:   ticker,
			Category: op.Category,
			Quantity: n.Quantity,
			Price:    n.Price,
			Payment:  op.Payment,
			Currency: op.Currency,
		})
	}
	return Table[TaxLedgerRow]{Header: TaxLedgerHeader, Rows: rows}, nil
}
