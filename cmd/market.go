package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/opsheet"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// priceRow is the last price of an instrument.
type priceRow struct {
	Instrument string          `json:"instrument"`
	Price      decimal.Decimal `json:"price"`
}

var priceColumns = []string{"Instrument", "Last price"}

func (r priceRow) Cells() []string { return []string{r.Instrument, r.Price.String()} }

func printPrice(s *session, instrument string, price decimal.Decimal) error {
	t := opsheet.Table[priceRow]{Rows: []priceRow{{Instrument: instrument, Price: price}}}
	return printTable(s, "Price", priceColumns, t)
}

type priceCmd struct {
	ticker string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "display the last price of an instrument" }
func (*priceCmd) Usage() string {
	return `opsheet price -t <ticker>

  Displays the last traded price from the order book of the instrument.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker of the instrument (required)")
}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t <ticker> is required")
		return subcommands.ExitUsageError
	}
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	p, err := s.reporter.Price(ctx, c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching price: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printPrice(s, c.ticker, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing price: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type usdCmd struct{}

func (*usdCmd) Name() string     { return "usd" }
func (*usdCmd) Synopsis() string { return "display the last USD/RUB rate" }
func (*usdCmd) Usage() string {
	return `opsheet usd

  Displays the last price of the configured reference instrument (USD/RUB by default).
`
}

func (*usdCmd) SetFlags(*flag.FlagSet) {}

func (*usdCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	p, err := s.reporter.ReferencePrice(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching reference price: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printPrice(s, s.config.Report.ReferenceFigi, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing reference price: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
