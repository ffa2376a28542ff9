package calendar

import "testing"

func BenchmarkHebrewDateFromAbsolute(b *testing.B) {
	a := GregorianDate{2024, 4, 23}.AbsoluteDay()
	for b.Loop() {
		if _, err := HebrewDateFromAbsolute(a); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkObservancesInYear(b *testing.B) {
	dr := NewDateResolver(Options{ModernHolidays: true})
	for b.Loop() {
		if _, err := dr.ObservancesInYear(5785); err != nil {
			b.Fatal(err)
		}
	}
}
