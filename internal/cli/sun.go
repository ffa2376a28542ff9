package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zapponejosh/zmanim/internal/astro"
	"github.com/zapponejosh/zmanim/internal/logger"
)

type sunJSON struct {
	Date       string    `json:"date"`
	Location   string    `json:"location"`
	Calculator string    `json:"calculator"`
	Sunrise    time.Time `json:"sunrise"`
	Sunset     time.Time `json:"sunset"`
	DayLength  string    `json:"day_length"`
}

func (a *app) sunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sun [YYYY-MM-DD]",
		Short: "Sunrise and sunset for the configured or named location",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := astro.NewCalculator(a.calculator)
			if err != nil {
				return err
			}
			loc, err := a.observer(a.location)
			if err != nil {
				return err
			}
			date, err := a.dateArg(args)
			if err != nil {
				return err
			}

			logger.Debug(cmd.Context(), "computing sun times",
				"calculator", calc.Name(), "location", loc.Name, "date", date.String())

			st, err := astro.ComputeSunTimes(calc, date, loc)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.format == "json" {
				return writeJSON(w, sunJSON{
					Date:       date.String(),
					Location:   loc.Name,
					Calculator: calc.Name(),
					Sunrise:    st.Sunrise,
					Sunset:     st.Sunset,
					DayLength:  st.DayLength().String(),
				})
			}

			const layout = "15:04:05 MST"
			t := newTheme(w)
			lines := []string{
				t.Title.Render(fmt.Sprintf("%s, %s", loc.Name, date)),
				t.row("Sunrise", st.Sunrise.Format(layout)),
				t.row("Sunset", st.Sunset.Format(layout)),
				t.row("Day length", st.DayLength().String()),
				t.row("Calculator", t.Faint.Render(calc.Name())),
			}
			_, err = fmt.Fprintln(w, t.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
			return err
		},
	}
}
