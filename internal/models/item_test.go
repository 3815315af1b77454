package models

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/dailytracker/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Toggle(t *testing.T) {
	assert.Equal(t, StatusCompleted, StatusPending.Toggle())
	assert.Equal(t, StatusPending, StatusCompleted.Toggle())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, s)

	s, err = ParseStatus("Pending")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, s)

	_, err = ParseStatus("done")
	assert.True(t, errors.Is(err, common.ErrorValidation))
}

func TestParseItemType(t *testing.T) {
	tests := []struct {
		in      string
		want    ItemType
		wantErr bool
	}{
		{"", TypeTask, false},
		{"task", TypeTask, false},
		{"APPOINTMENT", TypeAppointment, false},
		{"meeting", "", true},
	}
	for _, tt := range tests {
		got, err := ParseItemType(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, common.ErrorValidation, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestDate_DropsClock(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	in := time.Date(2026, 10, 16, 23, 30, 0, 0, loc)

	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), Date(in))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2026-02-28 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("28/02/2026")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", got)

	got, err = ParseClock("14:30:00")
	require.NoError(t, err)
	assert.Equal(t, "14:30", got)

	_, err = ParseClock("25:00")
	assert.ErrorIs(t, err, common.ErrorValidation)
}
