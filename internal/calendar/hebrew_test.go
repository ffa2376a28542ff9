package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestRoshHashanaDay(t *testing.T) {
	tests := []struct {
		year    int
		want    GregorianDate
		weekday time.Weekday
		days    int
		leap    bool
		kind    YearType
	}{
		{5783, GregorianDate{2022, 9, 26}, time.Monday, 355, false, Shelaimim},
		{5784, GregorianDate{2023, 9, 16}, time.Saturday, 383, true, Chaserim},
		{5785, GregorianDate{2024, 10, 3}, time.Thursday, 355, false, Shelaimim},
		{5786, GregorianDate{2025, 9, 23}, time.Tuesday, 354, false, Kesidran},
		{5787, GregorianDate{2026, 9, 12}, time.Saturday, 385, true, Shelaimim},
	}

	for _, tt := range tests {
		got, err := FromAbsoluteDay(RoshHashanaDay(tt.year))
		if err != nil {
			t.Fatalf("RoshHashanaDay(%d) error: %v", tt.year, err)
		}
		if got != tt.want {
			t.Errorf("RoshHashanaDay(%d) = %v, want %v", tt.year, got, tt.want)
		}
		if wd := RoshHashanaDay(tt.year).Weekday(); wd != tt.weekday {
			t.Errorf("RoshHashanaDay(%d).Weekday() = %v, want %v", tt.year, wd, tt.weekday)
		}
		if d := DaysInHebrewYear(tt.year); d != tt.days {
			t.Errorf("DaysInHebrewYear(%d) = %d, want %d", tt.year, d, tt.days)
		}
		if l := IsLeapYear(tt.year); l != tt.leap {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tt.year, l, tt.leap)
		}
		if k := YearTypeOf(tt.year); k != tt.kind {
			t.Errorf("YearTypeOf(%d) = %v, want %v", tt.year, k, tt.kind)
		}
	}
}

func TestRoshHashana_NeverSundayWednesdayFriday(t *testing.T) {
	for year := 5600; year <= 6000; year++ {
		switch wd := RoshHashanaDay(year).Weekday(); wd {
		case time.Sunday, time.Wednesday, time.Friday:
			t.Errorf("RoshHashanaDay(%d) falls on %v", year, wd)
		}
	}
}

func TestDaysInHebrewYear_AllowedLengths(t *testing.T) {
	allowed := map[bool]map[int]bool{
		false: {353: true, 354: true, 355: true},
		true:  {383: true, 384: true, 385: true},
	}
	for year := 5600; year <= 6000; year++ {
		if d := DaysInHebrewYear(year); !allowed[IsLeapYear(year)][d] {
			t.Errorf("DaysInHebrewYear(%d) = %d (leap=%v)", year, d, IsLeapYear(year))
		}
	}
}

func TestIsLeapYear_SevenPerCycle(t *testing.T) {
	for start := 5700; start < 5800; start += 19 {
		n := 0
		for y := start; y < start+YearsPerCycle; y++ {
			if IsLeapYear(y) {
				n++
			}
		}
		if n != LeapYearsPerCycle {
			t.Errorf("years %d-%d contain %d leap years, want %d", start, start+18, n, LeapYearsPerCycle)
		}
	}
}

func TestIsLeapYear_CyclePositions(t *testing.T) {
	leap := map[int]bool{3: true, 6: true, 8: true, 11: true, 14: true, 17: true, 19: true}
	for year := 5777; year < 5777+19; year++ {
		if got, want := IsLeapYear(year), leap[YearInCycle(year)]; got != want {
			t.Errorf("IsLeapYear(%d) = %v, want %v (position %d)", year, got, want, YearInCycle(year))
		}
	}
	if got := CycleNumber(5785); got != 305 {
		t.Errorf("CycleNumber(5785) = %d, want 305", got)
	}
	if got := YearInCycle(5785); got != 9 {
		t.Errorf("YearInCycle(5785) = %d, want 9", got)
	}
}

func TestPostponements(t *testing.T) {
	tests := []struct {
		year       int
		zaken      bool
		gatrad     bool
		betutakfot bool
		days       int
		want       GregorianDate
	}{
		{5745, false, true, false, 2, GregorianDate{1984, 9, 27}},
		{5766, false, false, true, 1, GregorianDate{2005, 10, 4}},
		{5772, true, true, false, 2, GregorianDate{2011, 9, 29}},
		{5715, true, false, true, 1, GregorianDate{1954, 9, 28}},
	}

	for _, tt := range tests {
		p := Postponements(tt.year)
		if p.MoladZaken != tt.zaken || p.Gatrad != tt.gatrad || p.Betutakfot != tt.betutakfot {
			t.Errorf("Postponements(%d) = %+v, want zaken=%v gatrad=%v betutakfot=%v",
				tt.year, p, tt.zaken, tt.gatrad, tt.betutakfot)
		}
		if got := p.Days(); got != tt.days {
			t.Errorf("Postponements(%d).Days() = %d, want %d", tt.year, got, tt.days)
		}
		got, _ := FromAbsoluteDay(RoshHashanaDay(tt.year))
		if got != tt.want {
			t.Errorf("RoshHashanaDay(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestPostponements_RulesOneToThreeDelayOnce(t *testing.T) {
	for year := 5600; year <= 6000; year++ {
		p := Postponements(year)
		if d := p.Days(); d < 0 || d > 2 {
			t.Errorf("Postponements(%d).Days() = %d", year, d)
		}
		if ElapsedDays(year) != p.MoladDay+p.Days() {
			t.Errorf("ElapsedDays(%d) = %d, want %d", year, ElapsedDays(year), p.MoladDay+p.Days())
		}
	}
}

func TestDaysInHebrewMonth(t *testing.T) {
	tests := []struct {
		year  int
		month HebrewMonth
		want  int
	}{
		{5784, Nisan, 30},
		{5784, Iyyar, 29},
		{5784, Cheshvan, 29},
		{5784, Kislev, 29},
		{5784, Adar, 30},
		{5784, AdarII, 29},
		{5785, Cheshvan, 30},
		{5785, Kislev, 30},
		{5785, Adar, 29},
		{5785, AdarII, 0},
		{5786, Cheshvan, 29},
		{5786, Kislev, 30},
		{5785, HebrewMonth(14), 0},
	}

	for _, tt := range tests {
		if got := DaysInHebrewMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInHebrewMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDaysInHebrewMonth_SumsToYear(t *testing.T) {
	for year := 5700; year <= 5800; year++ {
		total := 0
		for m := Nisan; m <= AdarII; m++ {
			total += DaysInHebrewMonth(year, m)
		}
		if total != DaysInHebrewYear(year) {
			t.Errorf("months of %d sum to %d, want %d", year, total, DaysInHebrewYear(year))
		}
	}
}

func TestHebrewDate_Gregorian(t *testing.T) {
	tests := []struct {
		hebrew HebrewDate
		want   GregorianDate
	}{
		{HebrewDate{5784, Nisan, 15}, GregorianDate{2024, 4, 23}},
		{HebrewDate{5784, Sivan, 6}, GregorianDate{2024, 6, 12}},
		{HebrewDate{5785, Tishrei, 10}, GregorianDate{2024, 10, 12}},
		{HebrewDate{5785, Kislev, 25}, GregorianDate{2024, 12, 26}},
		{HebrewDate{5784, Adar, 14}, GregorianDate{2024, 2, 23}},
		{HebrewDate{5784, AdarII, 14}, GregorianDate{2024, 3, 24}},
	}

	for _, tt := range tests {
		got, err := tt.hebrew.Gregorian()
		if err != nil {
			t.Fatalf("%v.Gregorian() error: %v", tt.hebrew, err)
		}
		if got != tt.want {
			t.Errorf("%v.Gregorian() = %v, want %v", tt.hebrew, got, tt.want)
		}

		back, err := HebrewDateOf(tt.want)
		if err != nil {
			t.Fatalf("HebrewDateOf(%v) error: %v", tt.want, err)
		}
		if back != tt.hebrew {
			t.Errorf("HebrewDateOf(%v) = %v, want %v", tt.want, back, tt.hebrew)
		}
	}
}

func TestHebrewDateFromAbsolute_RoundTrip(t *testing.T) {
	start := RoshHashanaDay(5700)
	end := RoshHashanaDay(5800)

	prev, err := HebrewDateFromAbsolute(start)
	if err != nil {
		t.Fatalf("HebrewDateFromAbsolute(%d) error: %v", start, err)
	}
	for a := start + 1; a < end; a++ {
		h, err := HebrewDateFromAbsolute(a)
		if err != nil {
			t.Fatalf("HebrewDateFromAbsolute(%d) error: %v", a, err)
		}
		if err := h.Validate(); err != nil {
			t.Fatalf("HebrewDateFromAbsolute(%d) = %v is invalid: %v", a, h, err)
		}
		if got := h.AbsoluteDay(); got != a {
			t.Fatalf("HebrewDateFromAbsolute(%d) = %v, which maps back to %d", a, h, got)
		}
		// Consecutive absolute days advance the day, or start a new month.
		if h.Day != prev.Day+1 && h.Day != 1 {
			t.Fatalf("HebrewDateFromAbsolute(%d) = %v follows %v", a, h, prev)
		}
		prev = h
	}
}

func TestHebrewDateFromAbsolute_Epoch(t *testing.T) {
	first := RoshHashanaDay(1)
	if first != -1373427 {
		t.Errorf("RoshHashanaDay(1) = %d, want -1373427", first)
	}

	h, err := HebrewDateFromAbsolute(first)
	if err != nil {
		t.Fatalf("HebrewDateFromAbsolute(%d) error: %v", first, err)
	}
	if want := (HebrewDate{1, Tishrei, 1}); h != want {
		t.Errorf("HebrewDateFromAbsolute(%d) = %v, want %v", first, h, want)
	}

	if _, err := HebrewDateFromAbsolute(first - 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("HebrewDateFromAbsolute(%d) error = %v, want ErrOutOfRange", first-1, err)
	}
}

func TestNewHebrewDate_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month HebrewMonth
		day   int
	}{
		{"year zero", 0, Tishrei, 1},
		{"month zero", 5785, 0, 1},
		{"month fourteen", 5785, 14, 1},
		{"adar II in common year", 5785, AdarII, 1},
		{"day zero", 5785, Nisan, 0},
		{"day thirty one", 5785, Nisan, 31},
		{"short iyyar", 5785, Iyyar, 30},
		{"short kislev", 5784, Kislev, 30},
		{"short cheshvan", 5786, Cheshvan, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHebrewDate(tt.year, tt.month, tt.day)
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("NewHebrewDate(%d, %d, %d) error = %v, want ErrInvalidDate", tt.year, tt.month, tt.day, err)
			}

			h := HebrewDate{tt.year, tt.month, tt.day}
			if _, err := h.Gregorian(); !errors.Is(err, ErrInvalidDate) {
				t.Errorf("%v.Gregorian() error = %v, want ErrInvalidDate", h, err)
			}
		})
	}
}

func TestNewHebrewDate_Accepts(t *testing.T) {
	for _, h := range []HebrewDate{
		{5784, AdarII, 29},
		{5784, Adar, 30},
		{5785, Kislev, 30},
		{5785, Cheshvan, 30},
		{1, Tishrei, 1},
	} {
		if _, err := NewHebrewDate(h.Year, h.Month, h.Day); err != nil {
			t.Errorf("NewHebrewDate(%v) error: %v", h, err)
		}
	}
}

func TestHebrewDate_String(t *testing.T) {
	tests := []struct {
		date HebrewDate
		want string
	}{
		{HebrewDate{5784, Adar, 14}, "14 Adar I 5784"},
		{HebrewDate{5784, AdarII, 14}, "14 Adar II 5784"},
		{HebrewDate{5785, Adar, 14}, "14 Adar 5785"},
		{HebrewDate{5785, Shvat, 15}, "15 Sh'vat 5785"},
	}

	for _, tt := range tests {
		if got := tt.date.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestHebrewDate_AddDays(t *testing.T) {
	h := HebrewDate{5784, Elul, 29}
	got, err := h.AddDays(1)
	if err != nil {
		t.Fatalf("AddDays() error: %v", err)
	}
	if want := (HebrewDate{5785, Tishrei, 1}); got != want {
		t.Errorf("%v.AddDays(1) = %v, want %v", h, got, want)
	}

	back, err := got.AddDays(-1)
	if err != nil {
		t.Fatalf("AddDays() error: %v", err)
	}
	if back != h {
		t.Errorf("%v.AddDays(-1) = %v, want %v", got, back, h)
	}
}

func TestHebrewDate_OutOfRange(t *testing.T) {
	last := HebrewDate{MaxHebrewYear, Elul, 29}
	g, err := last.Gregorian()
	if err != nil {
		t.Fatalf("%v.Gregorian() error: %v", last, err)
	}
	if back, err := HebrewDateOf(g); err != nil || back != last {
		t.Errorf("HebrewDateOf(%v) = %v, %v, want %v", g, back, err, last)
	}
	if _, err := last.AddDays(1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("%v.AddDays(1) error = %v, want ErrOutOfRange", last, err)
	}

	for _, year := range []int{MaxHebrewYear + 1, 20_000_000_000_000} {
		h := HebrewDate{year, Tishrei, 1}
		if _, err := h.Gregorian(); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%v.Gregorian() error = %v, want ErrOutOfRange", h, err)
		}
		if _, err := NewHebrewDate(year, Tishrei, 1); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("NewHebrewDate(%d, Tishrei, 1) error = %v, want ErrOutOfRange", year, err)
		}
	}

	if _, err := HebrewDateOf(GregorianDate{2_000_000, 1, 1}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("HebrewDateOf(2000000-01-01) error = %v, want ErrOutOfRange", err)
	}
}
