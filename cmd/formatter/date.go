package main

import (
	"github.com/spf13/cobra"

	formatter "github.com/goliatone/go-formatter"
)

func dateCmd(a *app) *cobra.Command {
	var pattern, format string

	cmd := &cobra.Command{
		Use:   "date <value>",
		Short: "Parse a date and render it for a locale",
		Long: `Parses an ISO date (or --pattern layout) and renders it with --format.
Numeric values are epoch milliseconds. Layouts use moment style tokens such
as YYYY, MMMM, Do and the locale formats LT, L, LL, LLL, LLLL.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.options(formatter.WithPattern(pattern), formatter.WithFormat(format))

			var value any = args[0]
			if pattern == "" {
				if num, ok := parseNumberArg(args[0]).(float64); ok {
					value = num
				}
			}

			result, ok := a.fmt.FormatDate(value, opts...)
			return emit(cmd, result, ok)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "input layout, e.g. DD/MM/YYYY")
	cmd.Flags().StringVarP(&format, "format", "f", "LL", "output layout")
	return cmd
}
