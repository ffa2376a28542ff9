package calendar_test

import (
	"fmt"

	"github.com/zapponejosh/zmanim/internal/calendar"
)

func ExampleHebrewDateOf() {
	h, err := calendar.HebrewDateOf(calendar.GregorianDate{Year: 2024, Month: 4, Day: 23})
	if err != nil {
		panic(err)
	}
	fmt.Println(h)
	// Output: 15 Nisan 5784
}

func ExampleClassify() {
	h := calendar.HebrewDate{Year: 5782, Month: calendar.Tamuz, Day: 18}
	wd := calendar.WeekdayOf(h.Weekday())
	fmt.Println(wd, calendar.Classify(h, wd, calendar.Options{}))
	// Output: Sunday Tzom Tammuz
}

func ExampleMoladOf() {
	m, err := calendar.MoladOf(5784, calendar.Tishrei)
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output: Friday 2023-09-15 05:49 and 0 chalakim
}

func ExampleDateResolver_NextObservance() {
	dr := calendar.NewDateResolver(calendar.Options{ModernHolidays: true})
	d, err := dr.NextObservance(calendar.GregorianDate{Year: 2025, Month: 1, Day: 1}, calendar.Is(calendar.Purim))
	if err != nil {
		panic(err)
	}
	fmt.Println(d.Gregorian, d.Hebrew)
	// Output: 2025-03-14 14 Adar 5785
}
