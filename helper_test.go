package opsheet

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// RUB is a helper for test to create rubles from const
func RUB(v float64) Money { return M(v, "RUB") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// at returns a fixed instant on 2021-03-day.
func at(day int) time.Time { return time.Date(2021, time.March, day, 10, 0, 0, 0, time.UTC) }

// fill is a helper to create a fill priced in RUB.
func fill(quantity int, price float64) Fill { return Fill{Quantity: Q(quantity), Price: RUB(price)} }

// fakeBroker serves canned data and records the calls it receives.
type fakeBroker struct {
	operations []Operation
	tickers    map[InstrumentRef]string
	positions  map[AccountID][]Position
	currencies []CurrencyBalance
	accounts   []Account
	prices     map[InstrumentRef]decimal.Decimal
	err        error // returned by every call when set

	tickerCalls []InstrumentRef
	filters     []OperationFilter
	ranges      []Range
}

func (b *fakeBroker) Ticker(_ context.Context, ref InstrumentRef) (string, error) {
	b.tickerCalls = append(b.tickerCalls, ref)
	if b.err != nil {
		return "", b.err
	}
	return b.tickers[ref], nil
}

func (b *fakeBroker) Operations(_ context.Context, r Range, filter OperationFilter) ([]Operation, error) {
	b.ranges = append(b.ranges, r)
	b.filters = append(b.filters, filter)
	if b.err != nil {
		return nil, b.err
	}
	return b.operations, nil
}

func (b *fakeBroker) InstrumentByTicker(_ context.Context, ticker string) (InstrumentRef, error) {
	if b.err != nil {
		return "", b.err
	}
	for ref, t := range b.tickers {
		if t == ticker {
			return ref, nil
		}
	}
	return "", ErrUnknownTicker
}

func (b *fakeBroker) Positions(_ context.Context, account AccountID) ([]Position, error) {
	if b.err != nil {
		return nil, b.err
	}
	p, ok := b.positions[account]
	if !ok {
		return nil, errors.New("no such account")
	}
	return p, nil
}

func (b *fakeBroker) Currencies(context.Context) ([]CurrencyBalance, error) {
	return b.currencies, b.err
}

func (b *fakeBroker) Accounts(context.Context) ([]Account, error) {
	return b.accounts, b.err
}

func (b *fakeBroker) LastPrice(_ context.Context, ref InstrumentRef) (decimal.Decimal, error) {
	if b.err != nil {
		return decimal.Decimal{}, b.err
	}
	p, ok := b.prices[ref]
	if !ok {
		return decimal.Decimal{}, errors.New("no price")
	}
	return p, nil
}
