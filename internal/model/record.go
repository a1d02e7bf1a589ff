package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Column layout of the dB sheet. Dates are written as literal strings so the
// backing service's USER_ENTERED coercion cannot change what we read back.
const (
	TimestampLayout = "2006-01-02 15:04"
	DateLayout      = "2006-01-02"

	recordColumns = 10
)

// Row serializes the record in dB column order:
// timestamp, year, week, week start, week end, member, test date, days,
// remark, outcome.
func (r Record) Row() []string {
	return []string{
		r.LoggedAt.Format(TimestampLayout),
		strconv.Itoa(r.Year),
		strconv.Itoa(r.Week),
		r.WeekStart,
		r.WeekEnd,
		r.Member,
		r.TestDate,
		EncodeDays(r.Days),
		r.Remark,
		string(r.Outcome),
	}
}

// ParseRecord builds a typed Record from a raw sheet row. Short rows are
// padded with empty cells first; timestamp, year, week and outcome must
// parse, the rest is taken as-is.
func ParseRecord(row []string) (Record, error) {
	cells := make([]string, recordColumns)
	for i := range cells {
		if i < len(row) {
			cells[i] = strings.TrimSpace(row[i])
		}
	}

	loggedAt, err := time.Parse(TimestampLayout, cells[0])
	if err != nil {
		return Record{}, fmt.Errorf("%w: timestamp %q", ErrMalformedRow, cells[0])
	}
	year, err := strconv.Atoi(cells[1])
	if err != nil {
		return Record{}, fmt.Errorf("%w: year %q", ErrMalformedRow, cells[1])
	}
	week, err := strconv.Atoi(cells[2])
	if err != nil {
		return Record{}, fmt.Errorf("%w: week %q", ErrMalformedRow, cells[2])
	}
	if cells[5] == "" {
		return Record{}, fmt.Errorf("%w: empty member", ErrMalformedRow)
	}
	outcome := Outcome(cells[9])
	if !outcome.Valid() {
		return Record{}, fmt.Errorf("%w: outcome %q", ErrMalformedRow, cells[9])
	}

	return Record{
		LoggedAt:  loggedAt,
		Year:      year,
		Week:      week,
		WeekStart: cells[3],
		WeekEnd:   cells[4],
		Member:    cells[5],
		TestDate:  cells[6],
		Days:      ParseDays(cells[7]),
		Remark:    cells[8],
		Outcome:   outcome,
	}, nil
}
