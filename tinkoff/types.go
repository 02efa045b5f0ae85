package tinkoff

import (
	"time"

	"github.com/shopspring/decimal"
)

// These types mirror the OpenAPI v1 payloads, only the fields in use are declared.

// moneyAmount is the API representation of an amount of money.
type moneyAmount struct {
	Currency string          `json:"currency"`
	Value    decimal.Decimal `json:"value"`
}

// trade is one fill of an operation.
type trade struct {
	TradeID  string          `json:"tradeId"`
	Date     time.Time       `json:"date"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type operation struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	Trades        []trade         `json:"trades"`
	Commission    *moneyAmount    `json:"commission"`
	Currency      string          `json:"currency"`
	Payment       decimal.Decimal `json:"payment"`
	Figi          string          `json:"figi"`
	Date          time.Time       `json:"date"`
	OperationType string          `json:"operationType"`
}

type position struct {
	Figi                 string          `json:"figi"`
	Ticker               string          `json:"ticker"`
	Name                 string          `json:"name"`
	Balance              decimal.Decimal `json:"balance"`
	ExpectedYield        *moneyAmount    `json:"expectedYield"`
	AveragePositionPrice *moneyAmount    `json:"averagePositionPrice"`
}

type currencyPosition struct {
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

type account struct {
	BrokerAccountType string `json:"brokerAccountType"`
	BrokerAccountID   string `json:"brokerAccountId"`
}

type instrument struct {
	Figi     string `json:"figi"`
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}
