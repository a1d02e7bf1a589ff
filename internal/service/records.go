package service

import (
	"context"
	"sort"

	"weekly-check/internal/logger"
	"weekly-check/internal/model"
	"weekly-check/internal/sheets"
)

// RecordService loads submitted rows from the dB range.
type RecordService struct {
	store sheets.Store
	rng   string
}

func NewRecordService(store sheets.Store, rng string) *RecordService {
	return &RecordService{store: store, rng: rng}
}

// Load reads every stored record, newest year-week bucket first but in
// chronological submission order inside a bucket. An empty sheet yields an
// empty result; rows that fail to parse are skipped with a warning, since a
// partial report beats no report.
func (s *RecordService) Load(ctx context.Context) ([]model.Record, error) {
	rows, err := s.store.Read(ctx, s.rng)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	records := make([]model.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		r, err := model.ParseRecord(row)
		if err != nil {
			logger.Warn("records.row_skipped", "row", i+2, "err", err)
			continue
		}
		records = append(records, r)
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		if a.Week != b.Week {
			return a.Week > b.Week
		}
		return a.LoggedAt.Before(b.LoggedAt)
	})
	return records, nil
}
