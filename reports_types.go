package opsheet

import "time"

// Row is a report row that can be displayed as a list of cells.
type Row interface {
	Cells() []string
}

// Table is an ordered list of rows, optionally preceded by a header row.
type Table[R Row] struct {
	Header []string // nil when the report shape has no header
	Rows   []R
}

// Lines returns the header (if any) followed by the cells of every row.
func (t Table[R]) Lines() [][]string {
	lines := make([][]string, 0, len(t.Rows)+1)
	if t.Header != nil {
		lines = append(lines, t.Header)
	}
	for _, r := range t.Rows {
		lines = append(lines, r.Cells())
	}
	return lines
}

// NotApplicable is the cell content of an absent value.
const NotApplicable = "-"

// DateLayout is the layout of the date cell.
const DateLayout = "2006-01-02 15:04:05"

func quantityCell(q Optional[Quantity]) string {
	if v, ok := q.Get(); ok {
		return v.String()
	}
	return NotApplicable
}

// priceCell keeps every digit of a unit price.
func priceCell(m Optional[Money]) string {
	if v, ok := m.Get(); ok {
		return v.DisplayExact()
	}
	return NotApplicable
}

func moneyCell(m Optional[Money]) string {
	if v, ok := m.Get(); ok {
		return v.Display()
	}
	return NotApplicable
}

// TradeRow is a row of the single instrument trade history.
type TradeRow struct {
	Date       time.Time
	Category   Category
	Quantity   Optional[Quantity]
	Price      Optional[Money]
	Currency   string
	Commission Optional[Money]
}

// TradeHistoryColumns names the columns of TradeRow. The trade history has no
// header row, renderers that need one can use these.
var TradeHistoryColumns = []string{"Date", "Type", "Quantity", "Price", "Currency", "Commission"}

func (r TradeRow) Cells() []string {
	return []string{
		r.Date.Format(DateLayout),
		r.Category.String(),
		quantityCell(r.Quantity),
		priceCell(r.Price),
		r.Currency,
		moneyCell(r.Commission),
	}
}

func (r TradeRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", r.Date)
	w.Append("type", r.Category)
	w.Append("quantity", r.Quantity)
	w.Append("price", r.Price)
	w.Append("currency", r.Currency)
	w.Append("commission", r.Commission)
	return w.MarshalJSON()
}

// LedgerRow is a row of the full account ledger.
type LedgerRow struct {
	Date       time.Time
	Ticker     string
	Category   Category
	Quantity   Optional[Quantity]
	Price      Optional[Money]
	Commission Money // amount deducted, zero when the broker reported none
	Total      Money // payment minus commission
	Currency   string
}

// LedgerHeader is the header row of the full ledger.
var LedgerHeader = []string{"Дата", "Тикер", "Тип", "Кол-во", "Цена за 1", "Комиссия", "Итого", "Валюта"}

func (r LedgerRow) Cells() []string {
	return []string{
		r.Date.Format(DateLayout),
		r.Ticker,
		r.Category.String(),
		quantityCell(r.Quantity),
		priceCell(r.Price),
		r.Commission.Display(),
		r.Total.Display(),
		r.Currency,
	}
}

func (r LedgerRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", r.Date)
	w.Optional("ticker", r.Ticker)
	w.Append("type", r.Category)
	w.Append("quantity", r.Quantity)
	w.Append("price", r.Price)
	w.Append("commission", r.Commission)
	w.Append("total", r.Total)
	w.Append("currency", r.Currency)
	return w.MarshalJSON()
}

// TaxLedgerRow is a row of the tax-advantaged account ledger.
type TaxLedgerRow struct {
	Date     time.Time
	Ticker   string
	Category Category
	Quantity Optional[Quantity]
	Price    Optional[Money]
	Payment  Money
	Currency string
}

// TaxLedgerHeader is the header row of the tax-advantaged ledger.
var TaxLedgerHeader = []string{"Дата", "Тикер", "Тип", "Кол-во", "Цена за 1", "Итого", "Валюта"}

func (r TaxLedgerRow) Cells() []string {
	return []string{
		r.Date.Format(DateLayout),
		r.Ticker,
		r.Category.String(),
		quantityCell(r.Quantity),
		priceCell(r.Price),
		r.Payment.Display(),
		r.Currency,
	}
}

func (r TaxLedgerRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", r.Date)
	w.Optional("ticker", r.Ticker)
	w.Append("type", r.Category)
	w.Append("quantity", r.Quantity)
	w.Append("price", r.Price)
	w.Append("payment", r.Payment)
	w.Append("currency", r.Currency)
	return w.MarshalJSON()
}

// HoldingRow values one position.
type HoldingRow struct {
	Ticker       string
	Name         string
	Balance      Quantity
	PurchaseCost Money
	CurrentValue Money
	Currency     string
}

func (r HoldingRow) Cells() []string {
	return []string{r.Ticker, r.Name, r.Balance.String(), r.PurchaseCost.Display(), r.CurrentValue.Display(), r.Currency}
}

func (r HoldingRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("ticker", r.Ticker)
	w.Append("name", r.Name)
	w.Append("balance", r.Balance)
	w.Append("purchaseCost", r.PurchaseCost)
	w.Append("currentValue", r.CurrentValue)
	w.Append("currency", r.Currency)
	return w.MarshalJSON()
}

// CurrencyRow is a cash balance.
type CurrencyRow struct {
	Currency string
	Balance  Money
}

// CurrencyColumns names the columns of CurrencyRow.
var CurrencyColumns = []string{"Currency", "Balance"}

func (r CurrencyRow) Cells() []string { return []string{r.Currency, r.Balance.Display()} }

func (r CurrencyRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("currency", r.Currency)
	w.Append("balance", r.Balance)
	return w.MarshalJSON()
}

// AccountRow describes a broker account.
type AccountRow struct {
	ID   AccountID
	Type AccountType
}

// AccountColumns names the columns of AccountRow.
var AccountColumns = []string{"Account", "Type"}

func (r AccountRow) Cells() []string { return []string{string(r.ID), r.Type.String()} }

func (r AccountRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("type", r.Type.String())
	return w.MarshalJSON()
}
