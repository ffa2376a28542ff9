package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zapponejosh/zmanim/internal/calendar"
)

type moladJSON struct {
	Year     int    `json:"year"`
	Month    string `json:"month"`
	Date     string `json:"date"`
	Weekday  string `json:"weekday"`
	Hours    int    `json:"hours"`
	Minutes  int    `json:"minutes"`
	Chalakim int    `json:"chalakim"`
}

func (a *app) moladCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "molad YEAR MONTH",
		Short:   "Show the molad of a Hebrew month",
		Example: "  zmanim molad 5785 Tishrei",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			month, err := calendar.ParseHebrewMonth(args[1])
			if err != nil {
				return err
			}
			m, err := calendar.MoladOf(year, month)
			if err != nil {
				return err
			}
			g, err := calendar.FromAbsoluteDay(m.Day)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.format == "json" {
				return writeJSON(w, moladJSON{
					Year:     year,
					Month:    month.Name(year),
					Date:     g.String(),
					Weekday:  m.Day.Weekday().String(),
					Hours:    m.Hours,
					Minutes:  m.Minutes,
					Chalakim: m.Chalakim,
				})
			}

			t := newTheme(w)
			lines := []string{
				t.Title.Render(fmt.Sprintf("Molad %s %d", month.Name(year), year)),
				t.row("Date", fmt.Sprintf("%s %s", m.Day.Weekday(), g)),
				t.row("Time", fmt.Sprintf("%02d:%02d and %d chalakim", m.Hours, m.Minutes, m.Chalakim)),
			}
			_, err = fmt.Fprintln(w, t.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
			return err
		},
	}
}
