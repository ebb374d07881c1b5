// file: internals/features/calendar/scheduling/service/event_mutation_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akademiku_backend/internals/features/calendar/scheduling/dto"

	contModel "akademiku_backend/internals/features/calendar/containers/model"
	sessModel "akademiku_backend/internals/features/calendar/sessions/model"
)

func TestHandleMove_Success(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	teacherID := uuid.New()
	acadCtx := testAcademyCtx(academyID)

	oldStart := at(2030, 3, 1, 10, 0)
	url := "https://meet.example.com/abc"
	provider := "zoom"
	row := seedQuranSession(t, db, academyID, teacherID, oldStart, 60, sessModel.SessionScheduled)
	require.NoError(t, db.Model(row).Updates(map[string]interface{}{
		"quran_session_meeting_url":      url,
		"quran_session_meeting_provider": provider,
	}).Error)

	newStart := at(2030, 3, 2, 14, 0)
	result := NewEventMutationService(db).HandleMove(
		context.Background(), acadCtx, teacherID, dto.EventKindQuran, row.QuranSessionID, newStart, newStart.Add(60*time.Minute))

	assert.True(t, result.Success)
	assert.False(t, result.Revert)
	assert.Empty(t, result.ErrorType)

	var updated sessModel.QuranSessionModel
	require.NoError(t, db.Where("quran_session_id = ?", row.QuranSessionID).Take(&updated).Error)
	assert.True(t, updated.QuranSessionScheduledAt.UTC().Equal(newStart))
	// audit + meeting di-clear
	require.NotNil(t, updated.QuranSessionRescheduledFrom)
	assert.True(t, updated.QuranSessionRescheduledFrom.UTC().Equal(oldStart))
	require.NotNil(t, updated.QuranSessionRescheduledTo)
	assert.True(t, updated.QuranSessionRescheduledTo.UTC().Equal(newStart))
	assert.Nil(t, updated.QuranSessionMeetingURL)
	assert.Nil(t, updated.QuranSessionMeetingProvider)
	// durasi tidak berubah saat move
	assert.Equal(t, 60, updated.QuranSessionDurationMinutes)
}

func TestHandleMove_FinalStatusesUnchanged(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	teacherID := uuid.New()
	acadCtx := testAcademyCtx(academyID)

	for _, status := range []sessModel.SessionStatus{
		sessModel.SessionCompleted, sessModel.SessionCancelled, sessModel.SessionAbsent,
	} {
		t.Run(string(status), func(t *testing.T) {
			start := at(2030, 3, 1, 10, 0)
			row := seedQuranSession(t, db, academyID, teacherID, start, 60, status)

			result := NewEventMutationService(db).HandleMove(
				context.Background(), acadCtx, teacherID, dto.EventKindQuran, row.QuranSessionID,
				at(2030, 3, 5, 10, 0), at(2030, 3, 5, 11, 0))

			assert.False(t, result.Success)
			assert.True(t, result.Revert)
			assert.Equal(t, ErrCodeStatus, result.ErrorType)

			var unchanged sessModel.QuranSessionModel
			require.NoError(t, db.Where("quran_session_id = ?", row.QuranSessionID).Take(&unchanged).Error)
			assert.True(t, unchanged.QuranSessionScheduledAt.UTC().Equal(start))
			assert.Nil(t, unchanged.QuranSessionRescheduledTo)
		})
	}
}

func TestHandleMove_OngoingCannotReschedule(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	acadCtx := testAcademyCtx(academyID)

	teacherID := uuid.New()
	row := seedQuranSession(t, db, academyID, teacherID, at(2030, 3, 1, 10, 0), 60, sessModel.SessionOngoing)
	result := NewEventMutationService(db).HandleMove(
		context.Background(), acadCtx, teacherID, dto.EventKindQuran, row.QuranSessionID,
		at(2030, 3, 5, 10, 0), at(2030, 3, 5, 11, 0))

	assert.True(t, result.Revert)
	assert.Equal(t, ErrCodeStatus, result.ErrorType)
}

func TestHandleMove_PastRejected(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	acadCtx := testAcademyCtx(academyID)

	teacherID := uuid.New()
	row := seedQuranSession(t, db, academyID, teacherID, at(2030, 3, 1, 10, 0), 60, sessModel.SessionScheduled)
	past := acadCtx.Now().Add(-24 * time.Hour)
	result := NewEventMutationService(db).HandleMove(
		context.Background(), acadCtx, teacherID, dto.EventKindQuran, row.QuranSessionID, past, past.Add(time.Hour))

	assert.True(t, result.Revert)
	assert.Equal(t, ErrCodePast, result.ErrorType)
}

func TestHandleMove_SubscriptionWindowRejected(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	teacherID := uuid.New()
	acadCtx := testAcademyCtx(academyID)

	startsAt := at(2030, 6, 1, 0, 0)
	sub := &contModel.QuranSubscriptionModel{
		QuranSubscriptionAcademyID:              academyID,
		QuranSubscriptionTeacherID:              teacherID,
		QuranSubscriptionStudentID:              uuid.New(),
		QuranSubscriptionStatus:                 contModel.SubscriptionActive,
		QuranSubscriptionStartsAt:               &startsAt,
		QuranSubscriptionTotalSessions:          8,
		QuranSubscriptionSessionDurationMinutes: 45,
	}
	require.NoError(t, db.Create(sub).Error)

	start := at(2030, 6, 10, 10, 0)
	row := seedQuranSession(t, db, academyID, teacherID, start, 45, sessModel.SessionScheduled)
	require.NoError(t, db.Model(row).
		Update("quran_session_subscription_id", sub.QuranSubscriptionID).Error)

	// sebelum starts_at subscription → tolak, tanpa perubahan tersimpan
	target := at(2030, 5, 20, 10, 0)
	result := NewEventMutationService(db).HandleMove(
		context.Background(), acadCtx, teacherID, dto.EventKindQuran, row.QuranSessionID, target, target.Add(45*time.Minute))

	assert.True(t, result.Revert)
	assert.Equal(t, ErrCodeSubscription, result.ErrorType)

	var unchanged sessModel.QuranSessionModel
	require.NoError(t, db.Where("quran_session_id = ?", row.QuranSessionID).Take(&unchanged).Error)
	assert.True(t, unchanged.QuranSessionScheduledAt.UTC().Equal(start))
}

// Skenario ujung-ke-ujung: satu sesi 10:00–11:00, sesi lain dipindah.
func TestHandleMove_ConflictScenario(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	teacherID := uuid.New()
	acadCtx := testAcademyCtx(academyID)

	svc := NewEventMutationService(db)
	ctx := context.Background()

	anchor := seedQuranSession(t, db, academyID, teacherID, at(2030, 3, 1, 10, 0), 60, sessModel.SessionScheduled)
	other := seedQuranSession(t, db, academyID, teacherID, at(2030, 3, 1, 15, 0), 60, sessModel.SessionScheduled)

	// pindah sesi lain ke 10:30 → bentrok dengan 10:00–11:00
	result := svc.HandleMove(ctx, acadCtx, teacherID, dto.EventKindQuran, other.QuranSessionID,
		at(2030, 3, 1, 10, 30), at(2030, 3, 1, 11, 30))
	assert.True(t, result.Revert)
	assert.Equal(t, ErrCodeConflict, result.ErrorType)

	// pindah sesi lain ke 11:00 (tepat saat sesi pertama selesai) → sukses
	result = svc.HandleMove(ctx, acadCtx, teacherID, dto.EventKindQuran, other.QuranSessionID,
		at(2030, 3, 1, 11, 0), at(2030, 3, 1, 12, 0))
	assert.True(t, result.Success)

	// geser sesi pertama itu sendiri ke 10:30 → sukses (dirinya dikecualikan)
	result = svc.HandleMove(ctx, acadCtx, teacherID, dto.EventKindQuran, anchor.QuranSessionID,
		at(2030, 3, 1, 10, 30), at(2030, 3, 1, 11, 30))
	assert.True(t, result.Revert, "10:30–11:30 bentrok dengan sesi yang barusan pindah ke 11:00")

	result = svc.HandleMove(ctx, acadCtx, teacherID, dto.EventKindQuran, anchor.QuranSessionID,
		at(2030, 3, 1, 9, 30), at(2030, 3, 1, 10, 30))
	assert.True(t, result.Success, "dikecualikan dari cek terhadap posisi lamanya sendiri")
}

func TestHandleMove_CourseSessionNotMovable(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	acadCtx := testAcademyCtx(academyID)

	teacherID := uuid.New()
	start := at(2030, 3, 1, 10, 0)
	row := &sessModel.InteractiveCourseSessionModel{
		InteractiveCourseSessionAcademyID:       academyID,
		InteractiveCourseSessionCourseID:        uuid.New(),
		InteractiveCourseSessionTeacherID:       teacherID,
		InteractiveCourseSessionSequence:        1,
		InteractiveCourseSessionScheduledAt:     &start,
		InteractiveCourseSessionDurationMinutes: 60,
		InteractiveCourseSessionStatus:          sessModel.SessionScheduled,
	}
	require.NoError(t, db.Create(row).Error)

	result := NewEventMutationService(db).HandleMove(
		context.Background(), acadCtx, teacherID, dto.EventKindCourse, row.InteractiveCourseSessionID,
		at(2030, 3, 5, 10, 0), at(2030, 3, 5, 11, 0))

	assert.True(t, result.Revert)
	assert.Equal(t, ErrCodeType, result.ErrorType)
}

func TestHandleResize_DurationBounds(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	teacherID := uuid.New()
	acadCtx := testAcademyCtx(academyID)
	svc := NewEventMutationService(db)
	ctx := context.Background()

	start := at(2030, 3, 1, 10, 0)
	row := seedQuranSession(t, db, academyID, teacherID, start, 60, sessModel.SessionScheduled)

	cases := []struct {
		minutes int
		wantOK  bool
	}{
		{14, false},
		{15, true},
		{180, true},
		{181, false},
	}
	for _, tc := range cases {
		result := svc.HandleResize(ctx, acadCtx, teacherID, dto.EventKindQuran, row.QuranSessionID,
			start, start.Add(time.Duration(tc.minutes)*time.Minute))
		if tc.wantOK {
			assert.True(t, result.Success, "durasi %d menit harus diterima", tc.minutes)

			var updated sessModel.QuranSessionModel
			require.NoError(t, db.Where("quran_session_id = ?", row.QuranSessionID).Take(&updated).Error)
			assert.Equal(t, tc.minutes, updated.QuranSessionDurationMinutes)
		} else {
			assert.True(t, result.Revert, "durasi %d menit harus ditolak", tc.minutes)
			assert.Equal(t, ErrCodeDuration, result.ErrorType)
		}
	}
}

func TestHandleResize_ConflictAtExistingStart(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	teacherID := uuid.New()
	acadCtx := testAcademyCtx(academyID)

	// sesi 10:00–11:00, sesi berikutnya 11:00–11:30
	row := seedQuranSession(t, db, academyID, teacherID, at(2030, 3, 1, 10, 0), 60, sessModel.SessionScheduled)
	seedQuranSession(t, db, academyID, teacherID, at(2030, 3, 1, 11, 0), 30, sessModel.SessionScheduled)

	// perpanjang ke 90 menit → menabrak sesi 11:00
	result := NewEventMutationService(db).HandleResize(
		context.Background(), acadCtx, teacherID, dto.EventKindQuran, row.QuranSessionID,
		at(2030, 3, 1, 10, 0), at(2030, 3, 1, 11, 30))

	assert.True(t, result.Revert)
	assert.Equal(t, ErrCodeConflict, result.ErrorType)

	var unchanged sessModel.QuranSessionModel
	require.NoError(t, db.Where("quran_session_id = ?", row.QuranSessionID).Take(&unchanged).Error)
	assert.Equal(t, 60, unchanged.QuranSessionDurationMinutes)
}

func TestHandleResize_TrialNotResizable(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	acadCtx := testAcademyCtx(academyID)

	teacherID := uuid.New()
	start := at(2030, 3, 1, 10, 0)
	row := &sessModel.QuranSessionModel{
		QuranSessionAcademyID:       academyID,
		QuranSessionTeacherID:       teacherID,
		QuranSessionType:            sessModel.QuranSessionTrial,
		QuranSessionCode:            "TRL-TEST",
		QuranSessionScheduledAt:     &start,
		QuranSessionDurationMinutes: 30,
		QuranSessionStatus:          sessModel.SessionScheduled,
	}
	require.NoError(t, db.Create(row).Error)

	result := NewEventMutationService(db).HandleResize(
		context.Background(), acadCtx, teacherID, dto.EventKindQuran, row.QuranSessionID,
		start, start.Add(60*time.Minute))

	assert.True(t, result.Revert)
	assert.Equal(t, ErrCodeType, result.ErrorType)
}

func TestHandleMove_UnknownSession(t *testing.T) {
	db := newTestDB(t)
	acadCtx := testAcademyCtx(uuid.New())

	result := NewEventMutationService(db).HandleMove(
		context.Background(), acadCtx, uuid.New(), dto.EventKindQuran, uuid.New(),
		at(2030, 3, 1, 10, 0), at(2030, 3, 1, 11, 0))

	assert.False(t, result.Success)
	assert.Equal(t, ErrCodeValidation, result.ErrorType)
}

func TestHandleMove_OtherTeachersSessionRejected(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	ownerID := uuid.New()
	acadCtx := testAcademyCtx(academyID)

	start := at(2030, 3, 1, 10, 0)
	row := seedQuranSession(t, db, academyID, ownerID, start, 60, sessModel.SessionScheduled)

	// guru lain di academy yang sama mencoba menggeser
	intruder := uuid.New()
	result := NewEventMutationService(db).HandleMove(
		context.Background(), acadCtx, intruder, dto.EventKindQuran, row.QuranSessionID,
		at(2030, 3, 5, 10, 0), at(2030, 3, 5, 11, 0))

	assert.False(t, result.Success)
	assert.True(t, result.Revert)
	assert.Equal(t, ErrCodeValidation, result.ErrorType)

	var unchanged sessModel.QuranSessionModel
	require.NoError(t, db.Where("quran_session_id = ?", row.QuranSessionID).Take(&unchanged).Error)
	assert.True(t, unchanged.QuranSessionScheduledAt.UTC().Equal(start))

	// resize juga ditolak untuk non-pemilik
	result = NewEventMutationService(db).HandleResize(
		context.Background(), acadCtx, intruder, dto.EventKindQuran, row.QuranSessionID,
		start, start.Add(90*time.Minute))
	assert.True(t, result.Revert)
	assert.Equal(t, ErrCodeValidation, result.ErrorType)
}

// Kalau baca subscription gagal (bukan not-found), move harus gagal —
// bukan lolos tanpa cek window.
func TestHandleMove_SubscriptionReadFailure(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	teacherID := uuid.New()
	acadCtx := testAcademyCtx(academyID)

	start := at(2030, 6, 10, 10, 0)
	row := seedQuranSession(t, db, academyID, teacherID, start, 45, sessModel.SessionScheduled)
	subID := uuid.New()
	require.NoError(t, db.Model(row).
		Update("quran_session_subscription_id", subID).Error)

	require.NoError(t, db.Migrator().DropTable(&contModel.QuranSubscriptionModel{}))

	target := at(2030, 6, 12, 10, 0)
	result := NewEventMutationService(db).HandleMove(
		context.Background(), acadCtx, teacherID, dto.EventKindQuran, row.QuranSessionID,
		target, target.Add(45*time.Minute))

	assert.False(t, result.Success)
	assert.Equal(t, ErrCodeError, result.ErrorType)
}
