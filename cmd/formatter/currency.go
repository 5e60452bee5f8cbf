package main

import (
	"github.com/spf13/cobra"

	formatter "github.com/goliatone/go-formatter"
)

func currencyCmd(a *app) *cobra.Command {
	var code string
	var forceFloat, noUnit bool

	cmd := &cobra.Command{
		Use:   "currency <amount>",
		Short: "Format an amount with a currency symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.options(
				formatter.WithCurrency(code),
				formatter.WithForceFloat(forceFloat),
				formatter.WithShowUnit(!noUnit),
			)
			// amounts keep their text form; FormatCurrency reads the leading number
			result, ok := a.fmt.FormatCurrency(args[0], opts...)
			return emit(cmd, result, ok)
		},
	}

	cmd.Flags().StringVarP(&code, "currency", "c", "", "ISO 4217 code (defaults to FORMATTER_CURRENCY)")
	cmd.Flags().BoolVar(&forceFloat, "force-float", true, "always print two fraction digits")
	cmd.Flags().BoolVar(&noUnit, "no-unit", false, "print the full amount instead of K/M/G units")
	return cmd
}
