package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"weekly-check/internal/config"
	"weekly-check/internal/logger"
	"weekly-check/internal/model"
	"weekly-check/internal/sheets"
)

// WeekService builds the week table either from the Weeks range of the
// spreadsheet or generated from the calendar.
type WeekService struct {
	store sheets.Store
	rng   string
	mode  string
	year  int
	now   func() time.Time
}

func NewWeekService(store sheets.Store, cfg config.WeeksConfig, rng string) *WeekService {
	return &WeekService{store: store, rng: rng, mode: cfg.Mode, year: cfg.Year, now: time.Now}
}

func (s *WeekService) Build(ctx context.Context) ([]model.Week, error) {
	if s.mode == "sheet" {
		return s.buildFromSheet(ctx)
	}
	year := s.year
	if year == 0 {
		year, _ = s.now().ISOWeek()
	}
	return GenerateWeeks(year), nil
}

// Active returns the weeks open for submission: week number not past the
// current ISO week, most recent first so form defaults pick the latest.
func (s *WeekService) Active(ctx context.Context) ([]model.Week, error) {
	weeks, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}
	_, current := s.now().ISOWeek()

	active := make([]model.Week, 0, len(weeks))
	for _, w := range weeks {
		if w.Number <= current {
			active = append(active, w)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Number > active[j].Number })
	return active, nil
}

func (s *WeekService) buildFromSheet(ctx context.Context) ([]model.Week, error) {
	rows, err := s.store.Read(ctx, s.rng)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("weeks range %s is empty", s.rng)
	}

	weeks := make([]model.Week, 0, len(rows)-1)
	for i, row := range rows[1:] {
		w, err := parseWeek(row)
		if err != nil {
			logger.Warn("weeks.row_skipped", "row", i+2, "err", err)
			continue
		}
		weeks = append(weeks, w)
	}
	return weeks, nil
}

func parseWeek(row []string) (model.Week, error) {
	if len(row) < 3 {
		return model.Week{}, fmt.Errorf("%w: want 3 cells, got %d", model.ErrMalformedRow, len(row))
	}
	number, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return model.Week{}, fmt.Errorf("%w: week number %q", model.ErrMalformedRow, row[0])
	}
	start, err := time.Parse(model.DateLayout, strings.TrimSpace(row[1]))
	if err != nil {
		return model.Week{}, fmt.Errorf("%w: start date %q", model.ErrMalformedRow, row[1])
	}
	end, err := time.Parse(model.DateLayout, strings.TrimSpace(row[2]))
	if err != nil {
		return model.Week{}, fmt.Errorf("%w: end date %q", model.ErrMalformedRow, row[2])
	}
	return model.Week{Number: number, Start: start, End: end}, nil
}

// GenerateWeeks derives the full ISO week table for one year: one entry per
// ISO week, Monday start, six days later end. Early January belongs to week
// 52/53 of the prior year under ISO numbering, so the table starts at the
// Monday of ISO week 1, not at January 1.
func GenerateWeeks(year int) []model.Week {
	// ISO week 1 always contains January 4.
	d := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, -1)
	}

	var weeks []model.Week
	for {
		isoYear, isoWeek := d.ISOWeek()
		if isoYear > year {
			break
		}
		weeks = append(weeks, model.Week{Number: isoWeek, Start: d, End: d.AddDate(0, 0, 6)})
		d = d.AddDate(0, 0, 7)
	}
	return weeks
}
