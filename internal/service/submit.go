package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"weekly-check/internal/logger"
	"weekly-check/internal/model"
	"weekly-check/internal/sheets"
)

// SubmissionService guards the one-row-per-member-per-week invariant and
// appends accepted submissions to the dB range.
type SubmissionService struct {
	store   sheets.Store
	records *RecordService
	rng     string
	now     func() time.Time

	// Serializes check-then-append within this process. Two server
	// instances racing on the same key can still both pass the check;
	// the Sheets API has no conditional append to close that.
	mu sync.Mutex
}

func NewSubmissionService(store sheets.Store, records *RecordService, rng string) *SubmissionService {
	return &SubmissionService{store: store, records: records, rng: rng, now: time.Now}
}

// Submit re-reads the record set, rejects if (year, week, member) already has
// a row, otherwise appends exactly one new row. The record set is fetched
// fresh on every call to keep the duplicate-check window as small as the
// network allows. The year-week key is derived from the week table entry,
// never from client input, so the key cannot be spoofed around the guard.
func (s *SubmissionService) Submit(ctx context.Context, user model.User, week model.Week, req model.SubmitRequest) (model.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.records.Load(ctx)
	if err != nil {
		return model.Record{}, fmt.Errorf("duplicate check: %w", err)
	}

	year, _ := week.Start.ISOWeek()
	key := model.Key{Year: year, Week: week.Number, Member: user.Name}
	for _, r := range existing {
		if r.Key() == key {
			logger.Info("submit.duplicate", "member", user.Name, "year", year, "week", week.Number)
			return model.Record{}, model.ErrDuplicateSubmission
		}
	}

	rec := model.Record{
		LoggedAt:  s.now(),
		Year:      year,
		Week:      week.Number,
		WeekStart: week.Start.Format(model.DateLayout),
		WeekEnd:   week.End.Format(model.DateLayout),
		Member:    user.Name,
		TestDate:  req.TestDate,
		Days:      req.Days,
		Remark:    req.Remark,
		Outcome:   req.Outcome,
	}
	if err := s.store.Append(ctx, s.rng, [][]string{rec.Row()}); err != nil {
		return model.Record{}, err
	}

	logger.Info("submit.ok", "member", user.Name, "year", year, "week", week.Number,
		"days", len(req.Days), "outcome", req.Outcome)
	return rec, nil
}
