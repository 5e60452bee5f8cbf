package main

import (
	"strings"

	"github.com/spf13/cobra"

	formatter "github.com/goliatone/go-formatter"
)

func stringCmd(a *app) *cobra.Command {
	var card bool

	cmd := &cobra.Command{
		Use:   "string <value>",
		Short: "Apply the IBAN, IDN, VAT and card pattern rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rules []formatter.PatternRule
			if card {
				rules = append(rules, formatter.ToolFormats["card"])
			}

			result, ok := a.fmt.FormatString(args[0], rules...)
			if !ok && a.fallback != "" {
				result = a.fallback
			}
			return emit(cmd, result, ok)
		},
	}

	cmd.Flags().BoolVar(&card, "card", false, "only apply the card number rule")
	return cmd
}

func capitalizeCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "capitalize <text...>",
		Short: "Upper-case the first letter of the text or of every word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if all {
				return emit(cmd, formatter.CapitalizeAll(text), true)
			}
			return emit(cmd, formatter.Capitalize(text), true)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "capitalize every word")
	return cmd
}

func localesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the locales with calendar data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(cmd, strings.Join(a.fmt.Locales(), "\n"), true)
		},
	}
}
