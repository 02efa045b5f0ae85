package tinkoff

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/etnz/opsheet"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

var _ opsheet.Broker = (*Client)(nil)

// Operations returns the operations in r, most recent first.
func (c *Client) Operations(ctx context.Context, r opsheet.Range, filter opsheet.OperationFilter) ([]opsheet.Operation, error) {
	params := url.Values{}
	params.Set("from", r.From.Format(time.RFC3339))
	params.Set("to", r.To.Format(time.RFC3339))
	if figi, ok := filter.Instrument.Get(); ok {
		params.Set("figi", string(figi))
	}
	if filter.Account != "" {
		params.Set("brokerAccountId", string(filter.Account))
	}

	var content []operation
	if err := c.get(ctx, "operations", params, ".operations", &content); err != nil {
		return nil, err
	}
	ops := make([]opsheet.Operation, 0, len(content))
	for _, o := range content {
		op, err := toOperation(o)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// remember stores both directions of an instrument lookup.
func (c *Client) remember(i instrument) {
	c.instruments.Set("figi:"+i.Figi, i, cache.DefaultExpiration)
	c.instruments.Set("ticker:"+i.Ticker, i, cache.DefaultExpiration)
}

// Ticker returns the ticker of the instrument identified by ref.
func (c *Client) Ticker(ctx context.Context, ref opsheet.InstrumentRef) (string, error) {
	if v, ok := c.instruments.Get("figi:" + string(ref)); ok {
		return v.(instrument).Ticker, nil
	}
	params := url.Values{}
	params.Set("figi", string(ref))
	var content instrument
	if err := c.get(ctx, "market/search/by-figi", params, "", &content); err != nil {
		return "", err
	}
	c.remember(content)
	return content.Ticker, nil
}

// InstrumentByTicker returns the first instrument traded under ticker.
func (c *Client) InstrumentByTicker(ctx context.Context, ticker string) (opsheet.InstrumentRef, error) {
	if v, ok := c.instruments.Get("ticker:" + ticker); ok {
		return opsheet.InstrumentRef(v.(instrument).Figi), nil
	}
	params := url.Values{}
	params.Set("ticker", ticker)
	var content []instrument
	if err := c.get(ctx, "market/search/by-ticker", params, ".instruments", &content); err != nil {
		return "", err
	}
	if len(content) == 0 {
		return "", fmt.Errorf("%w: %s", opsheet.ErrUnknownTicker, ticker)
	}
	c.remember(content[0])
	return opsheet.InstrumentRef(content[0].Figi), nil
}

// Positions returns the positions of account.
func (c *Client) Positions(ctx context.Context, account opsheet.AccountID) ([]opsheet.Position, error) {
	params := url.Values{}
	if account != "" {
		params.Set("brokerAccountId", string(account))
	}
	var content []position
	if err := c.get(ctx, "portfolio", params, ".positions", &content); err != nil {
		return nil, err
	}
	positions := make([]opsheet.Position, 0, len(content))
	for _, p := range content {
		positions = append(positions, toPosition(p))
	}
	return positions, nil
}

// Currencies returns the cash balances of the default account.
func (c *Client) Currencies(ctx context.Context) ([]opsheet.CurrencyBalance, error) {
	var content []currencyPosition
	if err := c.get(ctx, "portfolio/currencies", nil, ".currencies", &content); err != nil {
		return nil, err
	}
	balances := make([]opsheet.CurrencyBalance, 0, len(content))
	for _, cp := range content {
		balances = append(balances, toCurrencyBalance(cp))
	}
	return balances, nil
}

// Accounts lists the user's broker accounts.
func (c *Client) Accounts(ctx context.Context) ([]opsheet.Account, error) {
	var content []account
	if err := c.get(ctx, "user/accounts", nil, ".accounts", &content); err != nil {
		return nil, err
	}
	accounts := make([]opsheet.Account, 0, len(content))
	for _, a := range content {
		acc, err := toAccount(a)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// LastPrice returns the last traded price from the order book of ref.
func (c *Client) LastPrice(ctx context.Context, ref opsheet.InstrumentRef) (decimal.Decimal, error) {
	params := url.Values{}
	params.Set("figi", string(ref))
	params.Set("depth", "1")
	var price decimal.Decimal
	if err := c.get(ctx, "market/orderbook", params, ".lastPrice", &price); err != nil {
		return decimal.Decimal{}, err
	}
	return price, nil
}
