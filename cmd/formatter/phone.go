package main

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"github.com/spf13/cobra"

	formatter "github.com/goliatone/go-formatter"
)

var phoneFormats = map[string]phonenumbers.PhoneNumberFormat{
	"international": phonenumbers.INTERNATIONAL,
	"national":      phonenumbers.NATIONAL,
	"e164":          phonenumbers.E164,
	"rfc3966":       phonenumbers.RFC3966,
}

func phoneCmd(a *app) *cobra.Command {
	var region, style string

	cmd := &cobra.Command{
		Use:   "phone <number>",
		Short: "Format a phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, ok := phoneFormats[strings.ToLower(style)]
			if !ok {
				return fmt.Errorf("phone: unsupported style %q", style)
			}

			result, ok := a.fmt.FormatPhone(args[0], a.options(
				formatter.WithRegion(region),
				formatter.WithPhoneFormat(format),
			)...)
			return emit(cmd, result, ok)
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", "ISO 3166-1 region, inferred from the locale when empty")
	cmd.Flags().StringVar(&style, "style", "international", "international|national|e164|rfc3966")
	return cmd
}
