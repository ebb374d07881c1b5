// file: internals/features/calendar/events/service/calendar_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"akademiku_backend/internals/constants"
	schedDto "akademiku_backend/internals/features/calendar/scheduling/dto"
	helperAuth "akademiku_backend/internals/helpers/auth"

	sessModel "akademiku_backend/internals/features/calendar/sessions/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&sessModel.QuranSessionModel{},
		&sessModel.AcademicSessionModel{},
		&sessModel.InteractiveCourseSessionModel{},
	))
	return db
}

func TestJoinable(t *testing.T) {
	start := time.Date(2030, 3, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		status sessModel.SessionStatus
		now    time.Time
		want   bool
	}{
		{"11 menit sebelum mulai", sessModel.SessionScheduled, start.Add(-11 * time.Minute), false},
		{"tepat 10 menit sebelum", sessModel.SessionScheduled, start.Add(-10 * time.Minute), true},
		{"sudah mulai", sessModel.SessionOngoing, start.Add(5 * time.Minute), true},
		{"selesai", sessModel.SessionCompleted, start, false},
		{"dibatalkan", sessModel.SessionCancelled, start, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Joinable(tc.status, start, tc.now))
		})
	}
}

func TestCancelable(t *testing.T) {
	start := time.Date(2030, 3, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		status sessModel.SessionStatus
		now    time.Time
		want   bool
	}{
		{"2 jam sebelum", sessModel.SessionScheduled, start.Add(-2 * time.Hour), true},
		{"tepat 60 menit sebelum", sessModel.SessionScheduled, start.Add(-60 * time.Minute), false},
		{"59 menit sebelum", sessModel.SessionScheduled, start.Add(-59 * time.Minute), false},
		{"ongoing tidak bisa batal", sessModel.SessionOngoing, start.Add(-2 * time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Cancelable(tc.status, start, tc.now))
		})
	}
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "#059669", StatusColor(sessModel.SessionScheduled))
	assert.Equal(t, "#DC2626", StatusColor(sessModel.SessionOngoing))
	assert.Equal(t, "#6B7280", StatusColor(sessModel.SessionCompleted))
	assert.Equal(t, "#EF4444", StatusColor(sessModel.SessionCancelled))
	// fallback untuk status tanpa warna khusus
	assert.Equal(t, "#6B7280", StatusColor(sessModel.SessionAbsent))
}

func TestGetEvents_RoleScoping(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	acadCtx := helperAuth.AcademyContext{AcademyID: academyID, TZName: "UTC", Loc: time.UTC}

	teacherID := uuid.New()
	studentID := uuid.New()
	otherStudent := uuid.New()

	start := time.Date(2030, 3, 1, 10, 0, 0, 0, time.UTC)
	mk := func(student uuid.UUID, offset time.Duration) {
		s := start.Add(offset)
		sid := student
		require.NoError(t, db.Create(&sessModel.QuranSessionModel{
			QuranSessionAcademyID:       academyID,
			QuranSessionTeacherID:       teacherID,
			QuranSessionStudentID:       &sid,
			QuranSessionType:            sessModel.QuranSessionIndividual,
			QuranSessionCode:            "TST",
			QuranSessionScheduledAt:     &s,
			QuranSessionDurationMinutes: 45,
			QuranSessionStatus:          sessModel.SessionScheduled,
		}).Error)
	}
	mk(studentID, 0)
	mk(otherStudent, 2*time.Hour)

	from := time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2)
	svc := NewCalendarService(db)
	ctx := context.Background()

	// guru melihat semua sesinya
	events, err := svc.GetEvents(ctx, acadCtx, ViewerScope{Role: constants.RoleQuranTeacher, UserID: teacherID}, from, to)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	// siswa hanya sesinya sendiri
	events, err = svc.GetEvents(ctx, acadCtx, ViewerScope{Role: constants.RoleStudent, UserID: studentID}, from, to)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, schedDto.EventKindQuran, events[0].Kind)
	require.NotNil(t, events[0].StudentID)
	assert.Equal(t, studentID, *events[0].StudentID)

	// orang tua: scope ke anak yang dipilih
	events, err = svc.GetEvents(ctx, acadCtx, ViewerScope{Role: constants.RoleParent, UserID: uuid.New(), StudentID: &otherStudent}, from, to)
	require.NoError(t, err)
	require.Len(t, events, 1)

	// guru lain tidak melihat apa-apa
	events, err = svc.GetEvents(ctx, acadCtx, ViewerScope{Role: constants.RoleQuranTeacher, UserID: uuid.New()}, from, to)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestGetEvents_SortedAndFormatted(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	acadCtx := helperAuth.AcademyContext{AcademyID: academyID, TZName: "UTC", Loc: time.UTC}
	teacherID := uuid.New()

	// dibuat tidak urut: akademik 14:00 dulu, lalu quran 09:00
	later := time.Date(2030, 3, 1, 14, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&sessModel.AcademicSessionModel{
		AcademicSessionAcademyID:       academyID,
		AcademicSessionTeacherID:       teacherID,
		AcademicSessionCode:            "ACD-TST",
		AcademicSessionScheduledAt:     &later,
		AcademicSessionDurationMinutes: 60,
		AcademicSessionStatus:          sessModel.SessionScheduled,
	}).Error)

	earlier := time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&sessModel.QuranSessionModel{
		QuranSessionAcademyID:       academyID,
		QuranSessionTeacherID:       teacherID,
		QuranSessionType:            sessModel.QuranSessionGroup,
		QuranSessionCode:            "GRP-TST",
		QuranSessionScheduledAt:     &earlier,
		QuranSessionDurationMinutes: 60,
		QuranSessionStatus:          sessModel.SessionScheduled,
	}).Error)

	from := time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	events, err := NewCalendarService(db).GetEvents(context.Background(), acadCtx,
		ViewerScope{Role: constants.RoleQuranTeacher, UserID: teacherID}, from, to)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// urut naik lintas jenis sesi
	assert.Equal(t, schedDto.EventKindQuran, events[0].Kind)
	assert.Equal(t, schedDto.EventKindAcademic, events[1].Kind)
	assert.True(t, events[0].Start.Before(events[1].Start))

	// end = start + durasi; id composite bisa diparse balik
	assert.True(t, events[0].End.Equal(events[0].Start.Add(60*time.Minute)))
	kind, _, err := schedDto.ParseCalendarEventID(events[0].ID)
	require.NoError(t, err)
	assert.Equal(t, schedDto.EventKindQuran, kind)
}
