package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/zmanim/internal/calendar"
)

func (a *app) todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's Hebrew date and observance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.today()
			if err != nil {
				return err
			}
			return a.showGregorian(cmd, g)
		},
	}
}

func (a *app) dateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date [YYYY-MM-DD]",
		Short: "Convert a Gregorian date to the Hebrew calendar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.dateArg(args)
			if err != nil {
				return err
			}
			return a.showGregorian(cmd, g)
		},
	}
}

func (a *app) hebrewCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "hebrew YEAR MONTH DAY",
		Short:   "Convert a Hebrew date to the Gregorian calendar",
		Example: "  zmanim hebrew 5785 Nisan 15\n  zmanim hebrew 5784 13 14",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			month, err := calendar.ParseHebrewMonth(args[1])
			if err != nil {
				return err
			}
			day, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[2])
			}

			h, err := calendar.NewHebrewDate(year, month, day)
			if err != nil {
				return err
			}
			d, err := a.resolver().ResolveHebrew(h)
			if err != nil {
				return err
			}
			return printDay(cmd.OutOrStdout(), *d, a.format)
		},
	}
}

func (a *app) yearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "year [HEBREW_YEAR]",
		Short: "List the observances of a Hebrew year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var year int
			if len(args) == 1 {
				y, err := parseYear(args[0])
				if err != nil {
					return err
				}
				year = y
			} else {
				g, err := a.today()
				if err != nil {
					return err
				}
				h, err := calendar.HebrewDateOf(g)
				if err != nil {
					return err
				}
				year = h.Year
			}

			days, err := a.resolver().ObservancesInYear(year)
			if err != nil {
				return err
			}
			return printYear(cmd.OutOrStdout(), year, days, a.format)
		},
	}
}

func (a *app) showGregorian(cmd *cobra.Command, g calendar.GregorianDate) error {
	d, err := a.resolver().ResolveGregorian(g)
	if err != nil {
		return err
	}
	return printDay(cmd.OutOrStdout(), *d, a.format)
}

// dateArg parses an optional YYYY-MM-DD argument, defaulting to today.
func (a *app) dateArg(args []string) (calendar.GregorianDate, error) {
	if len(args) == 0 {
		return a.today()
	}
	return calendar.ParseDateString(args[0])
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 {
		return 0, fmt.Errorf("invalid hebrew year %q", s)
	}
	if year > calendar.MaxHebrewYear {
		return 0, fmt.Errorf("hebrew year %d is after %d: %w", year, calendar.MaxHebrewYear, calendar.ErrOutOfRange)
	}
	return year, nil
}
