package service

import (
	"context"
	"time"

	"weekly-check/internal/model"
)

// fakeStore is an in-memory sheets.Store for tests.
type fakeStore struct {
	data      map[string][][]string
	readErr   error
	appendErr error
	appends   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][][]string)}
}

func (f *fakeStore) Read(ctx context.Context, rng string) ([][]string, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.data[rng], nil
}

func (f *fakeStore) Append(ctx context.Context, rng string, rows [][]string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appends++
	f.data[rng] = append(f.data[rng], rows...)
	return nil
}

const testRecordsRange = "dB!A:J"

var recordsHeader = []string{
	"Timestamp", "Year", "Week", "Week start", "Week end",
	"Member", "Test date", "Days", "Remark", "Outcome",
}

func testRecordRow(logged, year, week, member, days, outcome string) []string {
	return []string{logged, year, week, "", "", member, "", days, "", outcome}
}

func fixedNow() time.Time {
	return time.Date(2022, 3, 9, 10, 0, 0, 0, time.UTC) // ISO week 10 of 2022
}

func mustWeek(weeks []model.Week, number int) model.Week {
	for _, w := range weeks {
		if w.Number == number {
			return w
		}
	}
	panic("week not found")
}
