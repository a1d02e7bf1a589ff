package service

import (
	"context"

	"weekly-check/internal/model"
)

// ChartService turns stored records into the member x day scatter for one
// year-week.
type ChartService struct {
	directory *DirectoryService
	records   *RecordService
}

func NewChartService(directory *DirectoryService, records *RecordService) *ChartService {
	return &ChartService{directory: directory, records: records}
}

func (s *ChartService) Chart(ctx context.Context, year, week int) ([]model.ChartPoint, error) {
	records, err := s.records.Load(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.directory.Users(ctx)
	if err != nil {
		return nil, err
	}
	return Project(Unpivot(records), users, year, week), nil
}

// Unpivot expands each record into one row per attendance day. A record with
// no days yields no rows.
func Unpivot(records []model.Record) []model.AttendanceRow {
	var rows []model.AttendanceRow
	for _, r := range records {
		for _, day := range r.Days {
			rows = append(rows, model.AttendanceRow{
				Year:    r.Year,
				Week:    r.Week,
				Member:  r.Member,
				Outcome: r.Outcome,
				Day:     day,
			})
		}
	}
	return rows
}

// Project left-joins the full directory against the attendance rows of one
// year-week. Members with no row for the week are kept as a single Untested
// marker; an inner join here would silently drop non-reporters.
func Project(rows []model.AttendanceRow, users []model.User, year, week int) []model.ChartPoint {
	byMember := make(map[string][]model.AttendanceRow)
	for _, row := range rows {
		if row.Year == year && row.Week == week {
			byMember[row.Member] = append(byMember[row.Member], row)
		}
	}

	var points []model.ChartPoint
	for _, u := range users {
		matched := byMember[u.Name]
		if len(matched) == 0 {
			points = append(points, model.ChartPoint{
				Year: year, Week: week, Member: u.Name, Legend: model.LegendUntested,
			})
			continue
		}
		for _, row := range matched {
			points = append(points, model.ChartPoint{
				Year: year, Week: week, Member: u.Name,
				Day: row.Day, Legend: string(row.Outcome),
			})
		}
	}
	return points
}
