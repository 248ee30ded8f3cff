package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/montecarlo/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. Install it with
// COMP_INSTALL=1 mcs.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"f":        predict.Files("*.jsonl"),
		"currency": predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
	},
	Sub: map[string]*complete.Command{
		"simulate": {Flags: map[string]complete.Predictor{
			"trials":    predict.Something,
			"years":     predict.Something,
			"initial":   predict.Something,
			"benchmark": predict.Something,
			"seed":      predict.Something,
			"workers":   predict.Something,
		}},
		"probability": {Flags: map[string]complete.Predictor{
			"trials": predict.Something,
			"years":  predict.Something,
			"min":    predict.Something,
			"max":    predict.Something,
		}},
		"benchmark": {Flags: map[string]complete.Predictor{
			"return": predict.Something,
			"trials": predict.Something,
			"years":  predict.Something,
		}},
		"chart": {Flags: map[string]complete.Predictor{
			"trajectory": predict.Files("*.png"),
			"histogram":  predict.Files("*.png"),
		}},
		"returns": {Flags: map[string]complete.Predictor{
			"t": predict.Something,
		}},
		"topic":  {Args: predict.Set{"readme", "model", "assumptions", "portfolio-file", "probability", "*"}},
		"assist": {},
	},
}

func main() {
	completion.Complete("mcs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
