package model

import "time"

type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"-"`
}

type Week struct {
	Number int       `json:"number"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

type Outcome string

const (
	OutcomeNegative Outcome = "Negative"
	OutcomePositive Outcome = "Positive"
)

func (o Outcome) Valid() bool {
	return o == OutcomeNegative || o == OutcomePositive
}

// Record is one submitted test/attendance row in the dB sheet.
// Natural key: (Year, Week, Member), at most one row per member per year-week.
type Record struct {
	LoggedAt  time.Time `json:"logged_at"`
	Year      int       `json:"year"`
	Week      int       `json:"week"`
	WeekStart string    `json:"week_start"`
	WeekEnd   string    `json:"week_end"`
	Member    string    `json:"member"`
	TestDate  string    `json:"test_date"`
	Days      []string  `json:"days"`
	Remark    string    `json:"remark"`
	Outcome   Outcome   `json:"outcome"`
}

// Key identifies a record's year-week bucket for one member.
type Key struct {
	Year   int
	Week   int
	Member string
}

func (r Record) Key() Key { return Key{Year: r.Year, Week: r.Week, Member: r.Member} }

// AttendanceRow is one unpivoted (member, day) pair, derived for charting
// only and never persisted.
type AttendanceRow struct {
	Year    int     `json:"year"`
	Week    int     `json:"week"`
	Member  string  `json:"member"`
	Outcome Outcome `json:"outcome"`
	Day     string  `json:"day"`
}

// ChartPoint is one marker of the member x day scatter. Members without a
// record for the requested week carry an empty Day and the Untested legend.
type ChartPoint struct {
	Year   int    `json:"year"`
	Week   int    `json:"week"`
	Member string `json:"member"`
	Day    string `json:"day"`
	Legend string `json:"legend"`
}

const LegendUntested = "Untested"
