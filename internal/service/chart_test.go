package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekly-check/internal/model"
)

func TestUnpivot(t *testing.T) {
	rows := Unpivot([]model.Record{
		{Year: 2022, Week: 5, Member: "Alice", Outcome: model.OutcomeNegative,
			Days: []string{"Mon", "Wed", "Fri"}},
		{Year: 2022, Week: 5, Member: "Bob", Outcome: model.OutcomePositive},
	})

	// Three day tokens make three rows; no days make none.
	require.Len(t, rows, 3)
	for i, day := range []string{"Mon", "Wed", "Fri"} {
		assert.Equal(t, model.AttendanceRow{
			Year: 2022, Week: 5, Member: "Alice",
			Outcome: model.OutcomeNegative, Day: day,
		}, rows[i])
	}
}

func TestUnpivotEmpty(t *testing.T) {
	assert.Empty(t, Unpivot(nil))
}

func TestProjectKeepsNonReporters(t *testing.T) {
	users := []model.User{{Name: "Alice"}, {Name: "Bob"}}
	rows := []model.AttendanceRow{
		{Year: 2022, Week: 5, Member: "Alice", Outcome: model.OutcomeNegative, Day: "Mon"},
		{Year: 2022, Week: 5, Member: "Alice", Outcome: model.OutcomeNegative, Day: "Tue"},
	}

	points := Project(rows, users, 2022, 5)
	require.Len(t, points, 3)

	assert.Equal(t, "Alice", points[0].Member)
	assert.Equal(t, "Mon", points[0].Day)
	assert.Equal(t, "Negative", points[0].Legend)
	assert.Equal(t, "Tue", points[1].Day)

	// Bob never submitted and must not be dropped.
	assert.Equal(t, "Bob", points[2].Member)
	assert.Equal(t, "", points[2].Day)
	assert.Equal(t, model.LegendUntested, points[2].Legend)
}

func TestProjectFiltersOtherWeeks(t *testing.T) {
	users := []model.User{{Name: "Alice"}}
	rows := []model.AttendanceRow{
		{Year: 2022, Week: 4, Member: "Alice", Outcome: model.OutcomeNegative, Day: "Mon"},
		{Year: 2021, Week: 5, Member: "Alice", Outcome: model.OutcomeNegative, Day: "Mon"},
	}

	points := Project(rows, users, 2022, 5)
	require.Len(t, points, 1)
	assert.Equal(t, model.LegendUntested, points[0].Legend)
}

func TestChartService(t *testing.T) {
	store := newFakeStore()
	store.data[testMembersRange] = membersSheet()
	store.data[testRecordsRange] = [][]string{
		recordsHeader,
		testRecordRow("2022-02-01 09:00", "2022", "5", "Alice", "Mon, Wed", "Negative"),
	}
	svc := NewChartService(
		NewDirectoryService(store, testMembersRange),
		NewRecordService(store, testRecordsRange),
	)

	points, err := svc.Chart(context.Background(), 2022, 5)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, "Alice", points[0].Member)
	assert.Equal(t, "Bob", points[2].Member)
	assert.Equal(t, model.LegendUntested, points[2].Legend)
}
