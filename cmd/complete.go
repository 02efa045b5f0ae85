package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors completes the values of flags known by name, others accept anything.
var flagPredictors = map[string]complete.Predictor{
	"config": predict.Files("*.toml"),
	"format": predict.Set{"md", "html", "json"},
}

func predictor(f *flag.Flag) complete.Predictor {
	if p, ok := flagPredictors[f.Name]; ok {
		return p
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}

// Completion returns the shell completion tree of the commands registered in c
// and of the top level flags.
func Completion(c *subcommands.Commander, top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	top.VisitAll(func(f *flag.Flag) { root.Flags[f.Name] = predictor(f) })

	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) { sub.Flags[f.Name] = predictor(f) })
		root.Sub[cmd.Name()] = sub
	})
	return root
}
