package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zapponejosh/zmanim/internal/calendar"
)

type dayJSON struct {
	Gregorian      string `json:"gregorian"`
	Hebrew         string `json:"hebrew"`
	HebrewYear     int    `json:"hebrew_year"`
	HebrewMonth    string `json:"hebrew_month"`
	HebrewDay      int    `json:"hebrew_day"`
	Weekday        string `json:"weekday"`
	Observance     string `json:"observance,omitempty"`
	YomTov         bool   `json:"yom_tov"`
	AssurBemelacha bool   `json:"assur_bemelacha"`
	Taanit         bool   `json:"taanit"`
	RoshHodesh     bool   `json:"rosh_hodesh"`
	ErevRoshHodesh bool   `json:"erev_rosh_hodesh"`
	HanukaDay      int    `json:"hanuka_day,omitempty"`
}

func toDayJSON(d calendar.Day) dayJSON {
	return dayJSON{
		Gregorian:      d.Gregorian.String(),
		Hebrew:         d.Hebrew.String(),
		HebrewYear:     d.Hebrew.Year,
		HebrewMonth:    d.Hebrew.Month.Name(d.Hebrew.Year),
		HebrewDay:      d.Hebrew.Day,
		Weekday:        d.Weekday.String(),
		Observance:     d.Observance.String(),
		YomTov:         d.Observance.IsYomTov(),
		AssurBemelacha: d.Observance.IsAssurBemelacha(),
		Taanit:         d.Observance.IsTaanit(),
		RoshHodesh:     d.RoshHodesh,
		ErevRoshHodesh: calendar.IsErevRoshHodesh(d.Hebrew),
		HanukaDay:      d.HanukaDay,
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printDay(w io.Writer, d calendar.Day, format string) error {
	if format == "json" {
		return writeJSON(w, toDayJSON(d))
	}

	t := newTheme(w)
	lines := []string{
		t.Title.Render(d.Hebrew.String()),
		t.row("Gregorian", d.Gregorian.String()),
		t.row("Weekday", d.Weekday.String()),
	}
	if d.Observance != calendar.NotObserved {
		lines = append(lines, t.row("Observance", t.Highlight.Render(d.Observance.String())))
	}
	if flags := dayFlags(d); len(flags) > 0 {
		lines = append(lines, t.row("", t.Faint.Render(strings.Join(flags, ", "))))
	}

	_, err := fmt.Fprintln(w, t.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	return err
}

func dayFlags(d calendar.Day) []string {
	var flags []string
	if d.Observance.IsAssurBemelacha() {
		flags = append(flags, "no melacha")
	}
	if d.Observance.IsTaanit() {
		flags = append(flags, "fast day")
	}
	if d.RoshHodesh {
		flags = append(flags, "Rosh Hodesh")
	}
	if calendar.IsErevRoshHodesh(d.Hebrew) {
		flags = append(flags, "Erev Rosh Hodesh")
	}
	if d.HanukaDay > 0 {
		flags = append(flags, calendar.Ordinal(d.HanukaDay)+" day of Hanuka")
	}
	return flags
}

type yearJSON struct {
	Year        int       `json:"year"`
	Leap        bool      `json:"leap"`
	Days        int       `json:"days"`
	Type        string    `json:"type"`
	RoshHashana string    `json:"rosh_hashana"`
	Observances []dayJSON `json:"observances"`
}

func printYear(w io.Writer, year int, days []calendar.Day, format string) error {
	rh, err := calendar.FromAbsoluteDay(calendar.RoshHashanaDay(year))
	if err != nil {
		return err
	}

	if format == "json" {
		out := yearJSON{
			Year:        year,
			Leap:        calendar.IsLeapYear(year),
			Days:        calendar.DaysInHebrewYear(year),
			Type:        calendar.YearTypeOf(year).String(),
			RoshHashana: rh.String(),
			Observances: make([]dayJSON, 0, len(days)),
		}
		for _, d := range days {
			out.Observances = append(out.Observances, toDayJSON(d))
		}
		return writeJSON(w, out)
	}

	t := newTheme(w)
	kind := "common"
	if calendar.IsLeapYear(year) {
		kind = "leap"
	}
	header := []string{
		t.Title.Render(fmt.Sprintf("Hebrew year %d", year)),
		t.row("Rosh Hashana", fmt.Sprintf("%s %s", rh, rh.Weekday())),
		t.row("Length", fmt.Sprintf("%d days, %s %s", calendar.DaysInHebrewYear(year), kind, calendar.YearTypeOf(year))),
		t.row("Cycle", fmt.Sprintf("year %d of cycle %d", calendar.YearInCycle(year), calendar.CycleNumber(year))),
	}
	if _, err := fmt.Fprintln(w, t.Card.Render(lipgloss.JoinVertical(lipgloss.Left, header...))); err != nil {
		return err
	}

	for _, d := range days {
		line := fmt.Sprintf("%s  %-9s  %-18s  %s",
			d.Gregorian, d.Weekday.String(), d.Hebrew.String(), d.Observance.String())
		if d.Observance.IsAssurBemelacha() {
			line = t.Highlight.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
