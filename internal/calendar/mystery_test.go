package calendar

import (
	"testing"
	"time"
)

func TestDailyMystery(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want Mystery
	}{
		// Seasonal overrides
		{"easter sunday", date(2024, time.March, 31), Glorious},
		{"easter sunday 2025", date(2025, time.April, 20), Glorious},
		{"first sunday of lent", date(2024, time.February, 18), Sorrowful},
		{"laetare sunday", date(2024, time.March, 10), Sorrowful},
		{"palm sunday", date(2024, time.March, 24), Sorrowful},
		{"first sunday of advent", date(2024, time.December, 1), Joyful},
		{"fourth sunday of advent", date(2024, time.December, 22), Joyful},
		{"fourth sunday of advent on christmas eve", date(2023, time.December, 24), Joyful},

		// Sundays just outside the seasons fall back to the weekly cycle
		{"sunday before ash wednesday", date(2024, time.February, 11), Glorious},
		{"sunday before advent", date(2024, time.November, 24), Glorious},
		{"sunday after christmas", date(2024, time.December, 29), Glorious},
		{"low sunday", date(2024, time.April, 7), Glorious},

		// Weekdays always follow the weekly cycle
		{"ash wednesday", date(2024, time.February, 14), Glorious},
		{"maundy thursday", date(2024, time.March, 28), Luminous},
		{"good friday", date(2024, time.March, 29), Sorrowful},
		{"holy saturday", date(2024, time.March, 30), Joyful},
		{"easter monday", date(2024, time.April, 1), Joyful},
		{"easter tuesday", date(2024, time.April, 2), Sorrowful},
		{"thursday in advent", date(2024, time.December, 5), Luminous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DailyMystery(tt.date); got != tt.want {
				t.Errorf("DailyMystery(%s) = %s, want %s", FormatDate(tt.date), got, tt.want)
			}
		})
	}
}

func TestDailyMystery_IgnoresTimeOfDay(t *testing.T) {
	evening := time.Date(2024, time.March, 31, 23, 59, 0, 0, time.FixedZone("UTC+5", 5*60*60))
	if got := DailyMystery(evening); got != Glorious {
		t.Errorf("DailyMystery(Easter evening) = %s, want Glorious", got)
	}
}

func TestDailyMystery_OutsideSupportedYears(t *testing.T) {
	// Without Easter only the weekly cycle applies.
	for _, d := range []time.Time{date(1500, time.April, 1), date(10000, time.March, 5)} {
		want := WeekdayMystery(d.Weekday())
		if got := DailyMystery(d); got != want {
			t.Errorf("DailyMystery(%s) = %s, want %s", d, got, want)
		}
	}
}

func TestMystery_Strings(t *testing.T) {
	tests := []struct {
		m     Mystery
		name  string
		key   string
		title string
	}{
		{Joyful, "Joyful", "gaudiosa", "Joyful Mysteries of the Rosary"},
		{Sorrowful, "Sorrowful", "dolorosa", "Sorrowful Mysteries of the Rosary"},
		{Glorious, "Glorious", "gloriosa", "Glorious Mysteries of the Rosary"},
		{Luminous, "Luminous", "luminosa", "Luminous Mysteries of the Rosary"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.m.Key(); got != tt.key {
			t.Errorf("Key() = %q, want %q", got, tt.key)
		}
		if got := tt.m.Title(); got != tt.title {
			t.Errorf("Title() = %q, want %q", got, tt.title)
		}
	}
	if len(Mysteries()) != 4 {
		t.Errorf("Mysteries() has %d entries", len(Mysteries()))
	}
}
