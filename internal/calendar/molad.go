package calendar

import "fmt"

// Molad is the calculated moment of the lunar conjunction that begins a
// Hebrew month. Day is the civil day of the molad and the time of day uses a
// midnight rollover, so a molad 7 chalakim after midnight has Hours 0,
// Minutes 0 and Chalakim 7.
type Molad struct {
	Day      AbsoluteDay
	Hours    int // 0-23
	Minutes  int // 0-59
	Chalakim int // 0-17
}

// MoladOf returns the molad of the given month. Adar II in a common year
// and years outside 1 to MaxHebrewYear are rejected.
func MoladOf(year int, month HebrewMonth) (Molad, error) {
	if _, err := NewHebrewDate(year, month, 1); err != nil {
		return Molad{}, err
	}
	return moladFromChalakim(ChalakimSinceMoladTohu(year, month)), nil
}

// moladFromChalakim splits a chalakim count into a day and time of day. The
// molad day begins at 18:00 of the preceding civil day.
func moladFromChalakim(chalakim int64) Molad {
	day := chalakim / ChalakimPerDay
	parts := int(chalakim % ChalakimPerDay)

	hours := parts / ChalakimPerHour
	parts -= hours * ChalakimPerHour
	minutes := parts / ChalakimPerMinute
	parts -= minutes * ChalakimPerMinute

	m := Molad{
		Day:      AbsoluteDay(day + HebrewEpoch),
		Minutes:  minutes,
		Chalakim: parts,
	}
	if hours >= 6 {
		m.Day++
	}
	m.Hours = (hours + 18) % 24
	return m
}

// Seconds returns the molad time of day converted to seconds after midnight.
// One chelek is 10/3 seconds; the result is truncated.
func (m Molad) Seconds() int {
	return m.Hours*3600 + m.Minutes*60 + m.Chalakim*10/3
}

func (m Molad) String() string {
	g, err := FromAbsoluteDay(m.Day)
	date := fmt.Sprintf("day %d", m.Day)
	if err == nil {
		date = g.String()
	}
	return fmt.Sprintf("%s %s %02d:%02d and %d chalakim", m.Day.Weekday(), date, m.Hours, m.Minutes, m.Chalakim)
}
