package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekly-check/internal/model"
)

func TestRecordsLoadSorted(t *testing.T) {
	store := newFakeStore()
	store.data[testRecordsRange] = [][]string{
		recordsHeader,
		testRecordRow("2022-03-07 09:00", "2022", "10", "Alice", "Mon", "Negative"),
		testRecordRow("2022-03-14 09:00", "2022", "11", "Alice", "Mon", "Negative"),
		testRecordRow("2021-12-20 09:00", "2021", "51", "Bob", "Tue", "Negative"),
		testRecordRow("2022-03-07 08:00", "2022", "10", "Bob", "Wed", "Positive"),
	}
	svc := NewRecordService(store, testRecordsRange)

	records, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 4)

	// Newest year-week bucket first; within a bucket, earliest submission first.
	assert.Equal(t, 11, records[0].Week)
	assert.Equal(t, "Bob", records[1].Member)
	assert.Equal(t, "Alice", records[2].Member)
	assert.Equal(t, 2021, records[3].Year)
}

func TestRecordsLoadSkipsMalformedRows(t *testing.T) {
	store := newFakeStore()
	store.data[testRecordsRange] = [][]string{
		recordsHeader,
		testRecordRow("2022-03-07 09:00", "2022", "10", "Alice", "Mon", "Negative"),
		{"garbage"},
		testRecordRow("not a time", "2022", "10", "Bob", "Mon", "Negative"),
		testRecordRow("2022-03-07 10:00", "2022", "10", "Carol", "Mon", "Maybe"),
	}
	svc := NewRecordService(store, testRecordsRange)

	records, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].Member)
}

func TestRecordsLoadEmptySheet(t *testing.T) {
	svc := NewRecordService(newFakeStore(), testRecordsRange)

	records, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordsLoadHeaderOnly(t *testing.T) {
	store := newFakeStore()
	store.data[testRecordsRange] = [][]string{recordsHeader}
	svc := NewRecordService(store, testRecordsRange)

	records, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordsLoadStoreError(t *testing.T) {
	store := newFakeStore()
	store.readErr = errors.New("quota exceeded")
	svc := NewRecordService(store, testRecordsRange)

	_, err := svc.Load(context.Background())
	assert.Error(t, err)
}

func TestRecordsLoadParsesLegacyDays(t *testing.T) {
	store := newFakeStore()
	store.data[testRecordsRange] = [][]string{
		recordsHeader,
		testRecordRow("2022-03-07 09:00", "2022", "10", "Alice", "['Mon', 'Fri']", "Negative"),
	}
	svc := NewRecordService(store, testRecordsRange)

	records, err := svc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"Mon", "Fri"}, records[0].Days)
	assert.Equal(t, model.OutcomeNegative, records[0].Outcome)
}
