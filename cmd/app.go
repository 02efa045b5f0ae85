// Package cmd implements the opsheet command line application.
package cmd

import (
	"flag"
	"fmt"
	"time"

	"github.com/etnz/opsheet"
	"github.com/etnz/opsheet/date"
	"github.com/etnz/opsheet/tinkoff"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&tradesCmd{}, "reports")
	c.Register(&ledgerCmd{}, "reports")
	c.Register(&iisCmd{}, "reports")

	c.Register(&portfolioCmd{}, "portfolio")
	c.Register(&currenciesCmd{}, "portfolio")
	c.Register(&accountsCmd{}, "portfolio")

	c.Register(&priceCmd{}, "market")
	c.Register(&usdCmd{}, "market")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "opsheet.toml", "Path to the configuration file")
var format = flag.String("format", "", "Output format: md, html or json (defaults to the configured one)")

// Verbose enables debug logging.
var Verbose = flag.Bool("v", false, "Enable debug logging")

// session is what every subcommand needs to report.
type session struct {
	config   *Config
	reporter *opsheet.Reporter
	format   string
}

// newSession loads the configuration and connects a Reporter to the broker API.
func newSession() (*session, error) {
	config, err := LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	if *Verbose {
		config.Logging.Level = "debug"
	}
	if config.Broker.Token == "" {
		return nil, fmt.Errorf("missing broker token: set %s or [broker] token in %s", EnvToken, *configFile)
	}
	start, err := config.Report.GetTradingStart()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(config.Logging.Level)
	opts := []tinkoff.ClientOption{
		tinkoff.WithBaseURL(config.Broker.BaseURL),
		tinkoff.WithLogger(logger),
		tinkoff.WithRateLimit(config.Broker.GetRateLimit()),
		tinkoff.WithTimeout(config.Broker.GetTimeout()),
	}
	if config.Broker.CacheDir != "" {
		opts = append(opts, tinkoff.WithDiskCache(config.Broker.CacheDir))
	}
	client := tinkoff.NewClient(config.Broker.Token, opts...)
	logger.Debug().Str("base_url", config.Broker.BaseURL).Time("trading_start", start).Msg("broker client ready")

	f := config.Report.Format
	if *format != "" {
		f = *format
	}
	if _, ok := printers[f]; !ok {
		return nil, fmt.Errorf("unknown output format %q", f)
	}

	return &session{
		config: config,
		reporter: opsheet.NewReporter(client,
			opsheet.WithTradingStart(start),
			opsheet.WithReferenceInstrument(opsheet.InstrumentRef(config.Report.ReferenceFigi)),
		),
		format: f,
	}, nil
}

// rangeFlags are the -from and -to flags of the operation reports.
type rangeFlags struct {
	from, to date.Date
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.Var(&r.from, "from", "First day of the report (defaults to the configured trading start).")
	f.Var(&r.to, "to", "Last day of the report (defaults to tomorrow).")
}

// Range returns the time range covered by the flags in loc, unset bounds are zero.
func (r *rangeFlags) Range(loc *time.Location) opsheet.Range {
	var rng opsheet.Range
	if !r.from.IsZero() {
		rng.From = r.from.Start(loc)
	}
	if !r.to.IsZero() {
		rng.To = r.to.End(loc)
	}
	return rng
}

// moscow is the time zone of the exchange, day dates are read in it.
var moscow = time.FixedZone("MSK", 3*60*60)
