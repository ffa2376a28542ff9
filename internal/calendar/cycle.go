package calendar

// IsLeapYear reports whether the Hebrew year has thirteen months. Years 3, 6,
// 8, 11, 14, 17 and 19 of each 19-year cycle are leap years.
func IsLeapYear(year int) bool {
	return mod(7*year+1, YearsPerCycle) < LeapYearsPerCycle
}

// CycleNumber returns the 1-based 19-year cycle that contains the year.
func CycleNumber(year int) int {
	return floorDiv(year-1, YearsPerCycle) + 1
}

// YearInCycle returns the position of the year within its cycle, 1 to 19.
func YearInCycle(year int) int {
	return mod(year-1, YearsPerCycle) + 1
}

// monthsBeforeYear counts the lunar months from the epoch molad to Tishrei of
// the given year.
func monthsBeforeYear(year int) int64 {
	y := int64(year - 1)
	cycles := y / YearsPerCycle
	inCycle := y % YearsPerCycle
	return MonthsPerCycle*cycles + 12*inCycle + (7*inCycle+1)/YearsPerCycle
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
