package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/gncbook/gncbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion: handled and exited before normal execution when the
	// COMP_LINE environment is set by the shell.
	completer := &complete.Command{
		Flags: map[string]complete.Predictor{
			"f": predict.Files("*.gnucash"),
			"v": predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"accounts": {Flags: map[string]complete.Predictor{"d": predict.Nothing, "t": predict.Nothing, "b": predict.Nothing}},
			"balance":  {Flags: map[string]complete.Predictor{"d": predict.Nothing, "cur": predict.Nothing, "r": predict.Nothing}},
			"check":    {},
			"invoices": {Flags: map[string]complete.Predictor{"owner": predict.Nothing, "variant": predict.Set{"direct", "via-job"}, "unpaid": predict.Nothing}},
			"owners":   {Flags: map[string]complete.Predictor{"k": predict.Set{"customer", "vendor", "employee"}}},
			"price":    {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"quotes":   {Args: predict.Files("*.json")},
			"topic":    {},
		},
	}
	completer.Complete("gncq")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
