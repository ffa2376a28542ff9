package calendar

// Chalakim (parts) are the traditional subdivision of the hour used by the
// molad calculation. All molad arithmetic is done in whole chalakim so it
// stays exact.
const (
	ChalakimPerMinute = 18
	ChalakimPerHour   = 60 * ChalakimPerMinute // 1080
	ChalakimPerDay    = 24 * ChalakimPerHour   // 25920

	// ChalakimPerMonth is the mean synodic month: 29 days, 12 hours and
	// 793 chalakim.
	ChalakimPerMonth = (29*24+12)*ChalakimPerHour + 793 // 765433

	// ChalakimMoladTohu is the time from the start of the Sunday before the
	// epoch molad (BeHaRaD) to the molad itself: 1 day, 5 hours, 204 chalakim.
	ChalakimMoladTohu = (24+5)*ChalakimPerHour + 204 // 31524
)

// Thresholds for the Rosh Hashana postponement rules, in chalakim since the
// start of the molad day.
const (
	moladZakenThreshold = 18 * ChalakimPerHour     // 19440
	gatradThreshold     = 9*ChalakimPerHour + 204  // 9924
	betutakfotThreshold = 15*ChalakimPerHour + 589 // 16789
)

// HebrewEpoch is the offset between a count of days since the molad epoch and
// an AbsoluteDay.
const HebrewEpoch = -1373429

// MaxHebrewYear is the last supported Hebrew year. Later years are rejected
// with ErrOutOfRange so the chalakim count cannot overflow.
const MaxHebrewYear = 999_999

// Metonic cycle.
const (
	YearsPerCycle     = 19
	MonthsPerCycle    = 235
	LeapYearsPerCycle = 7
)
