package domain

// MeetingTime is one scheduled meeting of a course. Start and End are
// minutes since midnight; Days are day tokens like "Mon", "Wed".
type MeetingTime struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Days     []string `json:"days"`
	Type     string   `json:"type"`
	Building string   `json:"building"`
}

// Course is one section of a catalog course for a given term.
// Num, NumValue and Suffix are derived from Coursenum at import time:
// "103A" -> Num "103", NumValue 103, Suffix "A". NumValue exists so
// ordering by course number is numeric rather than lexicographic.
type Course struct {
	ID               int64
	Subject          string
	Coursenum        string
	Num              string
	NumValue         int
	Suffix           string
	Section          string
	Name             string
	Term             string
	Instructor       string
	Waiting          int
	IndependentStudy bool
	Times            []MeetingTime
	StrTimes         []string
}
