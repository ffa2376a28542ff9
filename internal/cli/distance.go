package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/zapponejosh/zmanim/internal/geo"
)

type distanceJSON struct {
	From           string   `json:"from"`
	To             string   `json:"to"`
	Distance       *float64 `json:"distance_m,omitempty"`
	InitialBearing *float64 `json:"initial_bearing,omitempty"`
	FinalBearing   *float64 `json:"final_bearing,omitempty"`
	Converged      bool     `json:"converged"`
	RhumbDistance  float64  `json:"rhumb_distance_m"`
	RhumbBearing   float64  `json:"rhumb_bearing"`
}

func (a *app) distanceCmd() *cobra.Command {
	var from, to string

	c := &cobra.Command{
		Use:   "distance [LAT1 LON1 LAT2 LON2]",
		Short: "Geodesic and rhumb-line distance between two points",
		Example: "  zmanim distance -- 51.4772 0 40.095965 -74.222130\n" +
			"  zmanim distance --from Jerusalem --to Lakewood",
		Args: func(cmd *cobra.Command, args []string) error {
			if from != "" || to != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(4)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p1, p2, err := a.endpoints(from, to, args)
			if err != nil {
				return err
			}

			g, err := geo.VincentyInverse(p1, p2)
			converged := err == nil
			if err != nil && !errors.Is(err, geo.ErrNoConvergence) {
				return err
			}
			rhumbDist := geo.RhumbLineDistance(p1, p2)
			rhumbBearing := geo.RhumbLineBearing(p1, p2)

			w := cmd.OutOrStdout()
			if a.format == "json" {
				out := distanceJSON{
					From:          p1.String(),
					To:            p2.String(),
					Converged:     converged,
					RhumbDistance: rhumbDist,
					RhumbBearing:  rhumbBearing,
				}
				if converged {
					out.Distance = &g.Distance
					out.InitialBearing = &g.InitialBearing
					out.FinalBearing = &g.FinalBearing
				}
				return writeJSON(w, out)
			}

			t := newTheme(w)
			lines := []string{
				t.Title.Render(fmt.Sprintf("%s → %s", p1, p2)),
			}
			if converged {
				lines = append(lines,
					t.row("Geodesic", fmt.Sprintf("%.2f m", g.Distance)),
					t.row("Initial", fmt.Sprintf("%.6f°", g.InitialBearing)),
					t.row("Final", fmt.Sprintf("%.6f°", g.FinalBearing)),
				)
			} else {
				lines = append(lines, t.row("Geodesic", t.Faint.Render("did not converge")))
			}
			lines = append(lines,
				t.row("Rhumb line", fmt.Sprintf("%.2f m", rhumbDist)),
				t.row("Rhumb bearing", fmt.Sprintf("%.6f°", rhumbBearing)),
			)
			_, err = fmt.Fprintln(w, t.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
			return err
		},
	}

	c.Flags().StringVar(&from, "from", "", "Start location name from the locations file")
	c.Flags().StringVar(&to, "to", "", "End location name from the locations file")
	c.MarkFlagsRequiredTogether("from", "to")
	return c
}

// endpoints resolves the two points either from catalog names or from
// four coordinate arguments.
func (a *app) endpoints(from, to string, args []string) (geo.Point, geo.Point, error) {
	if from != "" {
		l1, err := a.observer(from)
		if err != nil {
			return geo.Point{}, geo.Point{}, err
		}
		l2, err := a.observer(to)
		if err != nil {
			return geo.Point{}, geo.Point{}, err
		}
		return l1.Point, l2.Point, nil
	}

	var coords [4]float64
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return geo.Point{}, geo.Point{}, fmt.Errorf("invalid coordinate %q", s)
		}
		coords[i] = f
	}
	p1 := geo.Point{Latitude: coords[0], Longitude: coords[1]}
	p2 := geo.Point{Latitude: coords[2], Longitude: coords[3]}
	if err := p1.Validate(); err != nil {
		return geo.Point{}, geo.Point{}, err
	}
	if err := p2.Validate(); err != nil {
		return geo.Point{}, geo.Point{}, err
	}
	return p1, p2, nil
}
