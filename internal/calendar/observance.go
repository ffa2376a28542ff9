package calendar

// Observance is the holiday, fast or commemoration that falls on a Hebrew
// date. NotObserved marks an ordinary day; Undefined marks input that could
// not be classified (an invalid date or weekday).
type Observance int

const (
	NotObserved Observance = iota
	Undefined

	// Nisan
	ErevPesach
	Pesach
	CholHaMoedPesach
	YomHaShoa

	// Iyyar
	PesachSheni
	YomHaZikaron
	YomHaAtzmaut
	YomYerushalayim

	// Sivan
	ErevShavuot
	Shavuot

	// Tamuz
	TzomTamuz

	// Av
	TishaBeAv
	TuBeAv

	// Elul
	ErevRoshHashana

	// Tishrei
	RoshHashana
	TzomGedalia
	ErevYomKippur
	YomKippur
	ErevSukkot
	Sukkot
	CholHaMoedSukkot
	HoshanaRaba
	SheminiAtzeret
	SimchatTorah

	// Kislev, Tevet
	ErevHanuka
	Hanuka
	AsaraBeTevet

	// Shvat
	TuBishvat

	// Adar
	TaanitEster
	Purim
	ShushanPurim
	PurimKatan
	ShushanPurimKatan
)

var observanceNames = map[Observance]string{
	NotObserved:       "",
	Undefined:         "Undefined",
	ErevPesach:        "Erev Pesach",
	Pesach:            "Pesach",
	CholHaMoedPesach:  "Chol HaMoed Pesach",
	YomHaShoa:         "Yom HaShoah",
	PesachSheni:       "Pesach Sheni",
	YomHaZikaron:      "Yom HaZikaron",
	YomHaAtzmaut:      "Yom HaAtzmaut",
	YomYerushalayim:   "Yom Yerushalayim",
	ErevShavuot:       "Erev Shavuot",
	Shavuot:           "Shavuot",
	TzomTamuz:         "Tzom Tammuz",
	TishaBeAv:         "Tisha B'Av",
	TuBeAv:            "Tu B'Av",
	ErevRoshHashana:   "Erev Rosh Hashana",
	RoshHashana:       "Rosh Hashana",
	TzomGedalia:       "Tzom Gedalia",
	ErevYomKippur:     "Erev Yom Kippur",
	YomKippur:         "Yom Kippur",
	ErevSukkot:        "Erev Sukkot",
	Sukkot:            "Sukkot",
	CholHaMoedSukkot:  "Chol HaMoed Sukkot",
	HoshanaRaba:       "Hoshana Raba",
	SheminiAtzeret:    "Shemini Atzeret",
	SimchatTorah:      "Simchat Torah",
	ErevHanuka:        "Erev Hanuka",
	Hanuka:            "Hanuka",
	AsaraBeTevet:      "Asara B'Tevet",
	TuBishvat:         "Tu B'Shvat",
	TaanitEster:       "Taanit Ester",
	Purim:             "Purim",
	ShushanPurim:      "Shushan Purim",
	PurimKatan:        "Purim Katan",
	ShushanPurimKatan: "Shushan Purim Katan",
}

// String returns the display name. NotObserved has an empty name.
func (o Observance) String() string {
	if name, ok := observanceNames[o]; ok {
		return name
	}
	return "Undefined"
}

// Options are the per-call policy flags of the classifier.
type Options struct {
	// InIsrael selects the single festival day observed in Israel instead
	// of the two days observed elsewhere.
	InIsrael bool
	// ModernHolidays enables the observances instituted after 1948.
	ModernHolidays bool
}

// Classify maps a Hebrew date and the weekday it falls on to its observance.
// Every valid date resolves to an observance or NotObserved; an invalid
// date or weekday resolves to Undefined.
func Classify(date HebrewDate, weekday Weekday, opts Options) Observance {
	if !weekday.Valid() || date.Validate() != nil {
		return Undefined
	}

	day := date.Day
	switch date.Month {
	case Nisan:
		return classifyNisan(day, weekday, opts)
	case Iyyar:
		return classifyIyyar(day, weekday, opts)
	case Sivan:
		switch day {
		case 5:
			return ErevShavuot
		case 6:
			return Shavuot
		case 7:
			if opts.InIsrael {
				return NotObserved
			}
			return Shavuot
		}
	case Tamuz:
		return deferredFast(day, 17, weekday, TzomTamuz)
	case Av:
		if day == 15 {
			return TuBeAv
		}
		return deferredFast(day, 9, weekday, TishaBeAv)
	case Elul:
		if day == 29 {
			return ErevRoshHashana
		}
	case Tishrei:
		return classifyTishrei(day, weekday, opts)
	case Cheshvan:
		return NotObserved
	case Kislev:
		switch {
		case day == 24:
			return ErevHanuka
		case day >= 25:
			return Hanuka
		}
	case Tevet:
		switch day {
		case 1, 2:
			return Hanuka
		case 3:
			if IsKislevShort(date.Year) {
				return Hanuka
			}
		case 10:
			return AsaraBeTevet
		}
	case Shvat:
		if day == 15 {
			return TuBishvat
		}
	case Adar:
		if IsLeapYear(date.Year) {
			switch day {
			case 14:
				return PurimKatan
			case 15:
				return ShushanPurimKatan
			}
			return NotObserved
		}
		return classifyPurim(day, weekday)
	case AdarII:
		return classifyPurim(day, weekday)
	}
	return NotObserved
}

func classifyNisan(day int, weekday Weekday, opts Options) Observance {
	switch day {
	case 14:
		return ErevPesach
	case 15, 21:
		return Pesach
	case 16:
		if opts.InIsrael {
			return CholHaMoedPesach
		}
		return Pesach
	case 17, 18, 19, 20:
		return CholHaMoedPesach
	case 22:
		if opts.InIsrael {
			return NotObserved
		}
		return Pesach
	}

	if !opts.ModernHolidays {
		return NotObserved
	}
	// Yom HaShoah is 27 Nisan, moved to Thursday when the 27th is a Friday
	// and to Monday when it is a Sunday.
	switch {
	case day == 26 && weekday == Thursday,
		day == 27 && weekday != Sunday && weekday != Friday,
		day == 28 && weekday == Monday:
		return YomHaShoa
	}
	return NotObserved
}

func classifyIyyar(day int, weekday Weekday, opts Options) Observance {
	if day == 14 {
		return PesachSheni
	}
	if !opts.ModernHolidays {
		return NotObserved
	}

	// Yom HaAtzmaut is 5 Iyyar, brought forward to Thursday when the 5th is
	// a Friday or Shabbat and moved to Tuesday when it is a Monday. Yom
	// HaZikaron is always the day before.
	switch day {
	case 2:
		if weekday == Wednesday {
			return YomHaZikaron
		}
	case 3:
		switch weekday {
		case Wednesday:
			return YomHaZikaron
		case Thursday:
			return YomHaAtzmaut
		}
	case 4:
		switch weekday {
		case Tuesday:
			return YomHaZikaron
		case Thursday:
			return YomHaAtzmaut
		}
	case 5:
		switch weekday {
		case Monday:
			return YomHaZikaron
		case Wednesday:
			return YomHaAtzmaut
		}
	case 6:
		if weekday == Tuesday {
			return YomHaAtzmaut
		}
	case 28:
		return YomYerushalayim
	}
	return NotObserved
}

func classifyTishrei(day int, weekday Weekday, opts Options) Observance {
	switch day {
	case 1, 2:
		return RoshHashana
	case 3, 4:
		return deferredFast(day, 3, weekday, TzomGedalia)
	case 9:
		return ErevYomKippur
	case 10:
		return YomKippur
	case 14:
		return ErevSukkot
	case 15:
		return Sukkot
	case 16:
		if opts.InIsrael {
			return CholHaMoedSukkot
		}
		return Sukkot
	case 17, 18, 19, 20:
		return CholHaMoedSukkot
	case 21:
		return HoshanaRaba
	case 22:
		return SheminiAtzeret
	case 23:
		if opts.InIsrael {
			return NotObserved
		}
		return SimchatTorah
	}
	return NotObserved
}

// classifyPurim handles Adar of a common year and Adar II of a leap year.
// Taanit Ester is 13 Adar, brought forward to Thursday when the 13th is Shabbat.
func classifyPurim(day int, weekday Weekday) Observance {
	switch day {
	case 11, 12:
		if weekday == Thursday {
			return TaanitEster
		}
	case 13:
		if weekday != Friday && weekday != Saturday {
			return TaanitEster
		}
	case 14:
		return Purim
	case 15:
		return ShushanPurim
	}
	return NotObserved
}

// deferredFast handles a fast fixed on the given day that moves to Sunday
// when it falls on Shabbat.
func deferredFast(day, fixed int, weekday Weekday, fast Observance) Observance {
	switch {
	case day == fixed && weekday != Saturday:
		return fast
	case day == fixed+1 && weekday == Sunday:
		return fast
	}
	return NotObserved
}
