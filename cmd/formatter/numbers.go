package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	formatter "github.com/goliatone/go-formatter"
)

type numberFunc func(f *formatter.Formatter, value any, opts ...formatter.FormatOption) (string, bool)

func numberCommands(a *app) []*cobra.Command {
	commands := []struct {
		use   string
		short string
		fn    numberFunc
	}{
		{use: "int", short: "Format a value without fraction digits", fn: (*formatter.Formatter).FormatInt},
		{use: "float", short: "Format a value with two fraction digits", fn: (*formatter.Formatter).FormatFloat},
		{use: "number", short: "Format as int or float depending on the value", fn: (*formatter.Formatter).FormatNumber},
		{use: "percent", short: "Format a value as a percentage", fn: (*formatter.Formatter).FormatPercentage},
	}

	cmds := make([]*cobra.Command, 0, len(commands))
	for _, def := range commands {
		var noUnit bool
		fn := def.fn

		cmd := &cobra.Command{
			Use:   def.use + " <value>",
			Short: def.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				opts := a.options()
				if noUnit {
					opts = append(opts, formatter.WithShowUnit(false))
				}
				result, ok := fn(a.fmt, parseNumberArg(args[0]), opts...)
				return emit(cmd, result, ok)
			},
		}
		if def.use != "percent" {
			cmd.Flags().BoolVar(&noUnit, "no-unit", false, "print the full value instead of K/M/G units")
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// parseNumberArg returns a float64 when arg is numeric and the raw string
// otherwise, which the formatters reject with the fallback.
func parseNumberArg(arg string) any {
	num, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
	if err != nil {
		return arg
	}
	return num
}
