// file: internals/features/calendar/scheduling/service/conflict_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	sessModel "akademiku_backend/internals/features/calendar/sessions/model"
)

/* =========================
   Conflict Detector
   ========================= */

// occupiedSlot: interval terpakai milik satu guru, apapun jenis sesinya.
type occupiedSlot struct {
	ID          uuid.UUID
	ScheduledAt time.Time
	DurationMin int
}

func (o occupiedSlot) end() time.Time {
	return o.ScheduledAt.Add(time.Duration(o.DurationMin) * time.Minute)
}

type ConflictService struct {
	DB *gorm.DB
}

func NewConflictService(db *gorm.DB) *ConflictService {
	return &ConflictService{DB: db}
}

// HasConflict: apakah guru sudah terisi pada [start, start+duration)?
//
// Bentrok di-scope per GURU lintas ketiga tabel sesi — bukan per jenis.
// Baris diambil sekali lalu aritmatika interval dihitung di proses
// (half-open: back-to-back TIDAK bentrok). excludeID dipakai saat
// re-validasi sesi yang sedang dipindah supaya tidak bentrok dengan
// dirinya sendiri.
//
// Detector tidak pernah mengembalikan business error; hanya error DB.
func (s *ConflictService) HasConflict(
	ctx context.Context,
	academyID uuid.UUID,
	teacherID uuid.UUID,
	start time.Time,
	durationMinutes int,
	excludeID *uuid.UUID,
) (bool, error) {
	slots, err := s.loadOccupiedSlots(ctx, academyID, teacherID, excludeID)
	if err != nil {
		return false, err
	}

	candStart := start
	candEnd := start.Add(time.Duration(durationMinutes) * time.Minute)

	for _, occ := range slots {
		// overlap iff candStart < exEnd && candEnd > exStart (strict)
		if candStart.Before(occ.end()) && candEnd.After(occ.ScheduledAt) {
			return true, nil
		}
	}
	return false, nil
}

// loadOccupiedSlots mengumpulkan sesi non-cancelled yang sudah terjadwal
// dari quran_sessions + academic_sessions + interactive_course_sessions.
func (s *ConflictService) loadOccupiedSlots(
	ctx context.Context,
	academyID uuid.UUID,
	teacherID uuid.UUID,
	excludeID *uuid.UUID,
) ([]occupiedSlot, error) {
	out := make([]occupiedSlot, 0, 16)

	// --- quran
	{
		var rows []sessModel.QuranSessionModel
		q := s.DB.WithContext(ctx).
			Select("quran_session_id", "quran_session_scheduled_at", "quran_session_duration_minutes").
			Where("quran_session_academy_id = ?", academyID).
			Where("quran_session_teacher_id = ?", teacherID).
			Where("quran_session_status <> ?", sessModel.SessionCancelled).
			Where("quran_session_scheduled_at IS NOT NULL")
		if excludeID != nil {
			q = q.Where("quran_session_id <> ?", *excludeID)
		}
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			out = append(out, occupiedSlot{
				ID:          r.QuranSessionID,
				ScheduledAt: *r.QuranSessionScheduledAt,
				DurationMin: r.QuranSessionDurationMinutes,
			})
		}
	}

	// --- academic
	{
		var rows []sessModel.AcademicSessionModel
		q := s.DB.WithContext(ctx).
			Select("academic_session_id", "academic_session_scheduled_at", "academic_session_duration_minutes").
			Where("academic_session_academy_id = ?", academyID).
			Where("academic_session_teacher_id = ?", teacherID).
			Where("academic_session_status <> ?", sessModel.SessionCancelled).
			Where("academic_session_scheduled_at IS NOT NULL")
		if excludeID != nil {
			q = q.Where("academic_session_id <> ?", *excludeID)
		}
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			out = append(out, occupiedSlot{
				ID:          r.AcademicSessionID,
				ScheduledAt: *r.AcademicSessionScheduledAt,
				DurationMin: r.AcademicSessionDurationMinutes,
			})
		}
	}

	// --- interactive course
	{
		var rows []sessModel.InteractiveCourseSessionModel
		q := s.DB.WithContext(ctx).
			Select("interactive_course_session_id", "interactive_course_session_scheduled_at", "interactive_course_session_duration_minutes").
			Where("interactive_course_session_academy_id = ?", academyID).
			Where("interactive_course_session_teacher_id = ?", teacherID).
			Where("interactive_course_session_status <> ?", sessModel.SessionCancelled).
			Where("interactive_course_session_scheduled_at IS NOT NULL")
		if excludeID != nil {
			q = q.Where("interactive_course_session_id <> ?", *excludeID)
		}
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			out = append(out, occupiedSlot{
				ID:          r.InteractiveCourseSessionID,
				ScheduledAt: *r.InteractiveCourseSessionScheduledAt,
				DurationMin: r.InteractiveCourseSessionDurationMinutes,
			})
		}
	}

	return out, nil
}
