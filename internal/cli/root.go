// Package cli implements the zmanim command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/zmanim/internal/astro"
	"github.com/zapponejosh/zmanim/internal/calendar"
	"github.com/zapponejosh/zmanim/internal/config"
	"github.com/zapponejosh/zmanim/internal/geo"
	"github.com/zapponejosh/zmanim/internal/logger"
)

// Execute runs the command tree and exits non-zero on failure.
func Execute(cfg *config.Config) {
	cmd, err := newApp(cfg).rootCmd().ExecuteContextC(context.Background())
	if err != nil {
		logger.Error(cmd.Context(), "command failed", err)
		os.Exit(1)
	}
}

// app carries the configuration and the per-invocation flag overrides.
type app struct {
	cfg *config.Config
	now func() time.Time

	israel     bool
	modern     bool
	calculator string
	location   string
	format     string
}

func newApp(cfg *config.Config) *app {
	return &app{cfg: cfg, now: time.Now}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "zmanim",
		Short:        "Hebrew calendar, observances, molad, sun times and geodesics",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := logger.WithCommand(cmd.Context(), cmd.Name())
			cmd.SetContext(ctx)
			logger.Debug(ctx, "running command", "args", args, "options", a.options())
			return a.validateFormat()
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&a.israel, "israel", a.cfg.InIsrael, "observe the festival calendar of Israel")
	flags.BoolVar(&a.modern, "modern", a.cfg.ModernHolidays, "include modern Israeli observances")
	flags.StringVar(&a.calculator, "calculator", a.cfg.Calculator, fmt.Sprintf("sunrise algorithm %v", astro.CalculatorNames()))
	flags.StringVarP(&a.location, "location", "l", "", "named location from the locations file")
	flags.StringVar(&a.format, "format", "pretty", "Output format: pretty|json")

	cmd.AddCommand(
		a.todayCmd(),
		a.dateCmd(),
		a.hebrewCmd(),
		a.yearCmd(),
		a.moladCmd(),
		a.distanceCmd(),
		a.sunCmd(),
	)

	return cmd
}

func (a *app) options() calendar.Options {
	return calendar.Options{InIsrael: a.israel, ModernHolidays: a.modern}
}

func (a *app) resolver() *calendar.DateResolver {
	return calendar.NewDateResolver(a.options())
}

func (a *app) validateFormat() error {
	switch a.format {
	case "pretty", "json":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want pretty or json)", a.format)
	}
}

// observer returns the named catalog location, or the configured default
// when no name was given.
func (a *app) observer(name string) (geo.Location, error) {
	if name == "" {
		return a.cfg.Location()
	}
	if a.cfg.LocationsFile == "" {
		return geo.Location{}, fmt.Errorf("location %q: no locations file configured (set ZMANIM_LOCATIONS_FILE)", name)
	}
	locs, err := config.LoadLocations(a.cfg.LocationsFile)
	if err != nil {
		return geo.Location{}, err
	}
	loc, ok := config.FindLocation(locs, name)
	if !ok {
		return geo.Location{}, fmt.Errorf("location %q not found in %s", name, a.cfg.LocationsFile)
	}
	return loc, nil
}

// today is the current civil date in the observer's zone.
func (a *app) today() (calendar.GregorianDate, error) {
	loc, err := a.observer(a.location)
	if err != nil {
		return calendar.GregorianDate{}, err
	}
	return calendar.GregorianDateOf(a.now().In(loc.TimeZone)), nil
}
