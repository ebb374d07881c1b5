// file: internals/features/calendar/scheduling/dto/scheduling_dto_test.go
package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarEventID(t *testing.T) {
	id := uuid.New()

	kind, got, err := ParseCalendarEventID(FormatCalendarEventID(EventKindQuran, id))
	require.NoError(t, err)
	assert.Equal(t, EventKindQuran, kind)
	assert.Equal(t, id, got)

	_, _, err = ParseCalendarEventID("quran-" + id.String())
	assert.Error(t, err, "tanpa pemisah titik dua")

	_, _, err = ParseCalendarEventID("webinar:" + id.String())
	assert.Error(t, err, "kind tidak dikenal")

	_, _, err = ParseCalendarEventID("quran:bukan-uuid")
	assert.Error(t, err)
}

func TestToRecurrence(t *testing.T) {
	startDate := "2030-01-07"
	req := GenerateScheduleRequest{
		ContainerKind: ContainerIndividual,
		ContainerID:   uuid.New(),
		Days:          []int{1, 4, 1}, // duplikat dibuang
		Time:          "16:30",
		StartDate:     &startDate,
		SessionCount:  8,
	}

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	rec, err := req.ToRecurrence(time.UTC, now)
	require.NoError(t, err)

	assert.Equal(t, []time.Weekday{time.Monday, time.Thursday}, rec.Weekdays)
	assert.Equal(t, "16:30:00", rec.TimeOfDay.Format("15:04:05"))
	assert.Equal(t, 8, rec.Count)
	assert.Equal(t, 2030, rec.StartLocal.Year())
	assert.Equal(t, time.January, rec.StartLocal.Month())
	assert.Equal(t, 7, rec.StartLocal.Day())
}

func TestToRecurrence_DefaultsToNow(t *testing.T) {
	req := GenerateScheduleRequest{
		Days:         []int{2},
		Time:         "09:00",
		SessionCount: 4,
	}
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	rec, err := req.ToRecurrence(time.UTC, now)
	require.NoError(t, err)
	assert.True(t, rec.StartLocal.Equal(now))
}

func TestToRecurrence_InvalidInput(t *testing.T) {
	now := time.Now()

	bad := GenerateScheduleRequest{Days: []int{1}, Time: "25:99", SessionCount: 1}
	_, err := bad.ToRecurrence(time.UTC, now)
	assert.Error(t, err)

	badDate := "07-01-2030"
	bad2 := GenerateScheduleRequest{Days: []int{1}, Time: "10:00", StartDate: &badDate, SessionCount: 1}
	_, err = bad2.ToRecurrence(time.UTC, now)
	assert.Error(t, err)
}

func TestMutationResultConstructors(t *testing.T) {
	ok := MutationSuccess("Sesi berhasil dipindah")
	assert.True(t, ok.Success)
	assert.False(t, ok.Revert)
	assert.Empty(t, ok.ErrorType)

	rev := MutationRevert("conflict", "Guru sudah terisi")
	assert.False(t, rev.Success)
	assert.True(t, rev.Revert)
	assert.Equal(t, "conflict", rev.ErrorType)

	fail := MutationFailure("error", "Kesalahan internal")
	assert.False(t, fail.Success)
	assert.False(t, fail.Revert)
	assert.Equal(t, "error", fail.ErrorType)
}
