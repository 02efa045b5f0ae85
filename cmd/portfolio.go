package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/opsheet"
	"github.com/google/subcommands"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	iis bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the valuation of the current positions" }
func (*portfolioCmd) Usage() string {
	return `opsheet portfolio [-iis]

  Values every position at its purchase cost and at its current value.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.iis, "iis", false, "value the tax-advantaged account instead of the default one")
}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	title, holdings := "Portfolio", s.reporter.Holdings
	if c.iis {
		title, holdings = "IIS Portfolio", s.reporter.TaxAdvantagedHoldings
	}
	t, err := holdings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printTable(s, title, nil, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type currenciesCmd struct{}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "display the cash balances" }
func (*currenciesCmd) Usage() string {
	return `opsheet currencies

  Lists the balance of every currency held in the default account.
`
}

func (*currenciesCmd) SetFlags(*flag.FlagSet) {}

func (*currenciesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	t, err := s.reporter.Currencies(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing currencies: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printTable(s, "Currencies", opsheet.CurrencyColumns, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing currencies: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list the broker accounts" }
func (*accountsCmd) Usage() string {
	return `opsheet accounts

  Lists the broker accounts of the user and their type.
`
}

func (*accountsCmd) SetFlags(*flag.FlagSet) {}

func (*accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	t, err := s.reporter.Accounts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printTable(s, "Accounts", opsheet.AccountColumns, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
