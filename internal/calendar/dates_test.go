package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestDate_RejectsNormalizedDates(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		day     int
		wantErr error
	}{
		{"valid", 2024, time.February, 29, nil},
		{"feb 30", 2024, time.February, 30, ErrInvalidDate},
		{"feb 29 non-leap", 2023, time.February, 29, ErrInvalidDate},
		{"day zero", 2024, time.March, 0, ErrInvalidDate},
		{"month 13", 2024, time.Month(13), 1, ErrInvalidDate},
		{"before gregorian", 1582, time.October, 15, ErrOutOfRange},
		{"after max", 10000, time.January, 1, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Date(tt.year, tt.month, tt.day)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Date() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Date() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWeekdaySearch(t *testing.T) {
	// 2024-03-31 is a Sunday.
	easter := date(2024, time.March, 31)

	tests := []struct {
		name string
		fn   func(time.Time, time.Weekday) (time.Time, error)
		wd   time.Weekday
		want time.Time
	}{
		{"sunday before sunday is a week earlier", WeekdayBefore, time.Sunday, date(2024, time.March, 24)},
		{"thursday before", WeekdayBefore, time.Thursday, date(2024, time.March, 28)},
		{"saturday before is the day before", WeekdayBefore, time.Saturday, date(2024, time.March, 30)},
		{"monday after", WeekdayAfter, time.Monday, date(2024, time.April, 1)},
		{"sunday after sunday is a week later", WeekdayAfter, time.Sunday, date(2024, time.April, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(easter, tt.wd)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %s, want %s", FormatDate(got), FormatDate(tt.want))
			}
		})
	}
}

func TestWeekdaySearch_OutOfRange(t *testing.T) {
	// 1583-01-01 is a Saturday; the previous Sunday is in 1582.
	start := date(MinYear, time.January, 1)
	if _, err := WeekdayBefore(start, time.Sunday); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("WeekdayBefore() error = %v, want ErrOutOfRange", err)
	}
	end := date(MaxYear, time.December, 31)
	if _, err := AddDays(end, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("AddDays() error = %v, want ErrOutOfRange", err)
	}
}

func TestSundayOnOrBefore(t *testing.T) {
	tests := []struct {
		in, want time.Time
	}{
		{date(2023, time.December, 24), date(2023, time.December, 24)},
		{date(2024, time.December, 24), date(2024, time.December, 22)},
		{date(2025, time.December, 24), date(2025, time.December, 21)},
	}
	for _, tt := range tests {
		got, err := SundayOnOrBefore(tt.in)
		if err != nil {
			t.Fatalf("SundayOnOrBefore(%s): %v", FormatDate(tt.in), err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("SundayOnOrBefore(%s) = %s, want %s", FormatDate(tt.in), FormatDate(got), FormatDate(tt.want))
		}
	}
}

func TestDay_KeepsWallClockDate(t *testing.T) {
	late := time.Date(2024, time.March, 31, 23, 30, 0, 0, time.FixedZone("UTC+5", 5*60*60))
	got := Day(late)
	if !got.Equal(date(2024, time.March, 31)) {
		t.Errorf("Day() = %s, want 2024-03-31", got)
	}
}

func TestFindSundayBetween(t *testing.T) {
	got, ok := FindSundayBetween(2024, time.January, 7, time.January, 13)
	if !ok {
		t.Fatal("expected a Sunday")
	}
	if !got.Equal(date(2024, time.January, 7)) {
		t.Errorf("got %s, want 2024-01-07", FormatDate(got))
	}

	// A range of less than a week may hold no Sunday: 2024-01-08..10 is Mon-Wed.
	if _, ok := FindSundayBetween(2024, time.January, 8, time.January, 10); ok {
		t.Error("expected no Sunday between Jan 8 and 10 2024")
	}
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 10: "10th",
		11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 101: "101st", 111: "111th",
	}
	for n, want := range tests {
		if got := Ordinal(n); got != want {
			t.Errorf("Ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestParseDateString(t *testing.T) {
	got, err := ParseDateString("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDateString() error: %v", err)
	}
	if !got.Equal(date(2024, time.February, 29)) {
		t.Errorf("ParseDateString() = %s", got)
	}
	if _, err := ParseDateString("2024-02-30"); err == nil {
		t.Error("expected error for 2024-02-30")
	}
	if _, err := ParseDateString("yesterday"); err == nil {
		t.Error("expected error for malformed input")
	}
}
