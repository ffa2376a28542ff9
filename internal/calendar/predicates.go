package calendar

// IsErevYomTov reports whether o is the eve of a festival.
func (o Observance) IsErevYomTov() bool {
	switch o {
	case ErevPesach, ErevShavuot, ErevSukkot, ErevRoshHashana, ErevYomKippur:
		return true
	}
	return false
}

// IsTaanit reports whether o is a fast day.
func (o Observance) IsTaanit() bool {
	switch o {
	case TzomTamuz, TishaBeAv, TzomGedalia, YomKippur, AsaraBeTevet, TaanitEster:
		return true
	}
	return false
}

// IsCholHaMoed reports whether o is an intermediate festival day.
func (o Observance) IsCholHaMoed() bool {
	return o == CholHaMoedPesach || o == CholHaMoedSukkot
}

// IsHanuka reports whether o is one of the eight days of Hanuka.
func (o Observance) IsHanuka() bool {
	return o == Hanuka
}

// IsYomTov reports whether o is a holiday. Eves, Hanuka and fasts other than
// Yom Kippur are not.
func (o Observance) IsYomTov() bool {
	switch {
	case o == NotObserved, o == Undefined:
		return false
	case o.IsErevYomTov(), o.IsHanuka():
		return false
	case o.IsTaanit() && o != YomKippur:
		return false
	}
	return true
}

// IsAssurBemelacha reports whether work is prohibited on o.
func (o Observance) IsAssurBemelacha() bool {
	switch o {
	case Pesach, Shavuot, RoshHashana, YomKippur, Sukkot, SheminiAtzeret, SimchatTorah:
		return true
	}
	return false
}

// IsRoshHodesh reports whether the date is a day of Rosh Hodesh: the 30th
// of a month, or the 1st of any month except Tishrei, which is Rosh Hashana.
func IsRoshHodesh(date HebrewDate) bool {
	return (date.Day == 1 && date.Month != Tishrei) || date.Day == 30
}

// IsErevRoshHodesh reports whether the date is the 29th of a month other
// than Elul.
func IsErevRoshHodesh(date HebrewDate) bool {
	return date.Day == 29 && date.Month != Elul
}

// DayOfHanuka returns the day of Hanuka (1-8) for the date, and false when
// the date is not in Hanuka.
func DayOfHanuka(date HebrewDate) (int, bool) {
	if date.Validate() != nil {
		return 0, false
	}
	if !Classify(date, WeekdayOf(date.Weekday()), Options{}).IsHanuka() {
		return 0, false
	}
	switch date.Month {
	case Kislev:
		return date.Day - 24, true
	case Tevet:
		if IsKislevShort(date.Year) {
			return date.Day + 5, true
		}
		return date.Day + 6, true
	}
	return 0, false
}
