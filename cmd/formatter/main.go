package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	formatter "github.com/goliatone/go-formatter"
)

var (
	versionColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed)

	version = "0.1.0"
)

// errNoValue signals that the fallback was printed because nothing could be formatted.
var errNoValue = errors.New("no value")

type app struct {
	locale   string
	fallback string
	fmt      *formatter.Formatter
}

// options returns the per call options shared by every subcommand.
func (a *app) options(extra ...formatter.FormatOption) []formatter.FormatOption {
	opts := []formatter.FormatOption{
		formatter.WithLocale(a.locale),
		formatter.WithFallback(a.fallback),
	}
	return append(opts, extra...)
}

func emit(cmd *cobra.Command, result string, ok bool) error {
	fmt.Fprintln(cmd.OutOrStdout(), result)
	if !ok {
		return errNoValue
	}
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "formatter",
		Short:         "Locale aware formatting of numbers, dates, amounts and identifiers",
		Long:          `formatter renders values the same way the go-formatter library does. Defaults come from FORMATTER_* environment variables.`,
		Version:       versionColor.Sprint(version),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := formatter.New(formatter.WithEnv())
			if err != nil {
				return err
			}
			a.fmt = f
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&a.locale, "locale", "l", "", "locale used for formatting (defaults to FORMATTER_LOCALE)")
	root.PersistentFlags().StringVar(&a.fallback, "fallback", "", "text printed when the value cannot be formatted")

	root.AddCommand(numberCommands(a)...)
	root.AddCommand(
		dateCmd(a),
		currencyCmd(a),
		stringCmd(a),
		capitalizeCmd(),
		phoneCmd(a),
		localesCmd(a),
	)
	return root
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errNoValue) {
			errorColor.Fprintf(stderr, "formatter: %v\n", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
