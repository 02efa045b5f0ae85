package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/opsheet"
	"github.com/google/subcommands"
)

// tradesCmd holds the flags for the 'trades' subcommand.
type tradesCmd struct {
	rangeFlags
	ticker string
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "display the trade history of one instrument" }
func (*tradesCmd) Usage() string {
	return `opsheet trades -t <ticker> [-from <date>] [-to <date>]

  Lists every operation on the instrument traded under <ticker>, oldest first.
  Broker commissions and declined operations are left out.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.ticker, "t", "", "Ticker of the instrument (required)")
}

func (c *tradesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t <ticker> is required")
		return subcommands.ExitUsageError
	}
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	t, err := s.reporter.TradeHistory(ctx, c.ticker, c.Range(moscow))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating trade history: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printTable(s, c.ticker, opsheet.TradeHistoryColumns, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing trade history: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// ledgerCmd holds the flags for the 'ledger' subcommand.
type ledgerCmd struct {
	rangeFlags
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "display the ledger of the default account" }
func (*ledgerCmd) Usage() string {
	return `opsheet ledger [-from <date>] [-to <date>]

  Lists the operations of the default account with their commission and
  net settlement. Deposits, withdrawals and broker commissions are left out.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) { c.rangeFlags.SetFlags(f) }

func (c *ledgerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	t, err := s.reporter.Ledger(ctx, c.Range(moscow))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printTable(s, "Ledger", nil, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// iisCmd holds the flags for the 'iis' subcommand.
type iisCmd struct {
	rangeFlags
}

func (*iisCmd) Name() string     { return "iis" }
func (*iisCmd) Synopsis() string { return "display the ledger of the tax-advantaged account" }
func (*iisCmd) Usage() string {
	return `opsheet iis [-from <date>] [-to <date>]

  Lists the operations of the individual investment account (IIS).
  It fails when the user has no such account.
`
}

func (c *iisCmd) SetFlags(f *flag.FlagSet) { c.rangeFlags.SetFlags(f) }

func (c *iisCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	t, err := s.reporter.TaxAdvantagedLedger(ctx, c.Range(moscow))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating tax-advantaged ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printTable(s, "IIS", nil, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing tax-advantaged ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
