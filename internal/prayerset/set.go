package prayerset

// Set is an expanded prayer set with a cursor. Navigation stops at both ends.
type Set struct {
	title   string
	prayers []string
	cur     int
}

// New returns a set over prayers positioned at the first one.
func New(title string, prayers []string) *Set {
	return &Set{title: title, prayers: prayers}
}

func (s *Set) Title() string { return s.title }

// Prayers returns the prayer keys of the set.
func (s *Set) Prayers() []string { return s.prayers }

func (s *Set) Len() int { return len(s.prayers) }

// Index returns the 0-based position of the cursor.
func (s *Set) Index() int { return s.cur }

// Current returns the prayer under the cursor, false for an empty set.
func (s *Set) Current() (string, bool) {
	if len(s.prayers) == 0 {
		return "", false
	}
	return s.prayers[s.cur], true
}

func (s *Set) Advance() {
	if s.cur < len(s.prayers)-1 {
		s.cur++
	}
}

func (s *Set) Recede() {
	if s.cur > 0 {
		s.cur--
	}
}

func (s *Set) AtStart() bool { return s.cur == 0 }

func (s *Set) AtEnd() bool { return len(s.prayers) == 0 || s.cur == len(s.prayers)-1 }
