// file: internals/features/calendar/events/service/calendar_service.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	evDto "akademiku_backend/internals/features/calendar/events/dto"
	schedDto "akademiku_backend/internals/features/calendar/scheduling/dto"
	helperAuth "akademiku_backend/internals/helpers/auth"

	sessModel "akademiku_backend/internals/features/calendar/sessions/model"
)

/* =========================
   Calendar Read / Format Layer
   ========================= */

// Jendela waktu tombol join & batas pembatalan (menit).
const (
	JoinWindowMinutes   = 10
	CancelCutoffMinutes = 60
)

// Warna status di kalender frontend.
var statusColors = map[sessModel.SessionStatus]string{
	sessModel.SessionScheduled: "#059669",
	sessModel.SessionOngoing:   "#DC2626",
	sessModel.SessionCompleted: "#6B7280",
	sessModel.SessionCancelled: "#EF4444",
}

func StatusColor(s sessModel.SessionStatus) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "#6B7280"
}

// Joinable: sesi scheduled/ongoing dan "now" sudah masuk 10 menit sebelum mulai.
func Joinable(status sessModel.SessionStatus, start, now time.Time) bool {
	if status != sessModel.SessionScheduled && status != sessModel.SessionOngoing {
		return false
	}
	return !now.Before(start.Add(-JoinWindowMinutes * time.Minute))
}

// Cancelable: sesi scheduled dan masih lebih dari 60 menit sebelum mulai.
func Cancelable(status sessModel.SessionStatus, start, now time.Time) bool {
	if status != sessModel.SessionScheduled {
		return false
	}
	return now.Before(start.Add(-CancelCutoffMinutes * time.Minute))
}

// ViewerScope: siapa yang melihat kalender — menentukan filter query.
// Parent melihat kalender anaknya (StudentID diisi oleh controller setelah
// otorisasi relasi keluarga oleh layer luar).
type ViewerScope struct {
	Role      string
	UserID    uuid.UUID
	StudentID *uuid.UUID
}

type CalendarService struct {
	DB *gorm.DB
}

func NewCalendarService(db *gorm.DB) *CalendarService {
	return &CalendarService{DB: db}
}

// GetEvents: semua sesi yang terlihat oleh viewer dalam [from, to),
// dipetakan ke CalendarEvent dan diurutkan naik by start.
func (s *CalendarService) GetEvents(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	viewer ViewerScope,
	from, to time.Time,
) ([]evDto.CalendarEvent, error) {
	now := acadCtx.Now()
	events := make([]evDto.CalendarEvent, 0, 32)

	quran, err := s.quranEvents(ctx, acadCtx, viewer, from, to, now)
	if err != nil {
		return nil, err
	}
	events = append(events, quran...)

	academic, err := s.academicEvents(ctx, acadCtx, viewer, from, to, now)
	if err != nil {
		return nil, err
	}
	events = append(events, academic...)

	course, err := s.courseEvents(ctx, acadCtx, viewer, from, to, now)
	if err != nil {
		return nil, err
	}
	events = append(events, course...)

	sortEventsByStart(events)
	return events, nil
}

func (s *CalendarService) quranEvents(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	viewer ViewerScope,
	from, to, now time.Time,
) ([]evDto.CalendarEvent, error) {
	q := s.DB.WithContext(ctx).Model(&sessModel.QuranSessionModel{}).
		Where("quran_session_academy_id = ?", acadCtx.AcademyID).
		Where("quran_session_scheduled_at >= ? AND quran_session_scheduled_at < ?", from, to)

	switch viewer.Role {
	case constants.RoleQuranTeacher, constants.RoleAcademicTeacher:
		q = q.Where("quran_session_teacher_id = ?", viewer.UserID)
	case constants.RoleStudent:
		q = q.Where("quran_session_student_id = ?", viewer.UserID)
	case constants.RoleParent:
		if viewer.StudentID == nil {
			return nil, nil
		}
		q = q.Where("quran_session_student_id = ?", *viewer.StudentID)
	case constants.RoleAdmin, constants.RoleOwner:
		// admin melihat semua sesi academy
	default:
		return nil, nil
	}

	var rows []sessModel.QuranSessionModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]evDto.CalendarEvent, 0, len(rows))
	for _, r := range rows {
		start := *r.QuranSessionScheduledAt
		end := *r.EndAt()

		title := r.QuranSessionCode
		if r.QuranSessionTitle != nil && *r.QuranSessionTitle != "" {
			title = *r.QuranSessionTitle
		}

		var containerID *uuid.UUID
		switch {
		case r.QuranSessionCircleID != nil:
			containerID = r.QuranSessionCircleID
		case r.QuranSessionIndividualCircleID != nil:
			containerID = r.QuranSessionIndividualCircleID
		case r.QuranSessionTrialRequestID != nil:
			containerID = r.QuranSessionTrialRequestID
		}

		out = append(out, evDto.CalendarEvent{
			ID:          schedDto.FormatCalendarEventID(schedDto.EventKindQuran, r.QuranSessionID),
			Kind:        schedDto.EventKindQuran,
			Title:       title,
			Start:       start,
			End:         end,
			Status:      string(r.QuranSessionStatus),
			Color:       StatusColor(r.QuranSessionStatus),
			Joinable:    Joinable(r.QuranSessionStatus, start, now),
			Cancelable:  Cancelable(r.QuranSessionStatus, start, now),
			TeacherID:   r.QuranSessionTeacherID,
			StudentID:   r.QuranSessionStudentID,
			ContainerID: containerID,
			MeetingURL:  r.QuranSessionMeetingURL,
		})
	}
	return out, nil
}

func (s *CalendarService) academicEvents(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	viewer ViewerScope,
	from, to, now time.Time,
) ([]evDto.CalendarEvent, error) {
	q := s.DB.WithContext(ctx).Model(&sessModel.AcademicSessionModel{}).
		Where("academic_session_academy_id = ?", acadCtx.AcademyID).
		Where("academic_session_scheduled_at >= ? AND academic_session_scheduled_at < ?", from, to)

	switch viewer.Role {
	case constants.RoleQuranTeacher, constants.RoleAcademicTeacher:
		q = q.Where("academic_session_teacher_id = ?", viewer.UserID)
	case constants.RoleStudent:
		q = q.Where("academic_session_student_id = ?", viewer.UserID)
	case constants.RoleParent:
		if viewer.StudentID == nil {
			return nil, nil
		}
		q = q.Where("academic_session_student_id = ?", *viewer.StudentID)
	case constants.RoleAdmin, constants.RoleOwner:
	default:
		return nil, nil
	}

	var rows []sessModel.AcademicSessionModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]evDto.CalendarEvent, 0, len(rows))
	for _, r := range rows {
		start := *r.AcademicSessionScheduledAt
		end := *r.EndAt()

		title := r.AcademicSessionCode
		if r.AcademicSessionTitle != nil && *r.AcademicSessionTitle != "" {
			title = *r.AcademicSessionTitle
		}

		out = append(out, evDto.CalendarEvent{
			ID:          schedDto.FormatCalendarEventID(schedDto.EventKindAcademic, r.AcademicSessionID),
			Kind:        schedDto.EventKindAcademic,
			Title:       title,
			Start:       start,
			End:         end,
			Status:      string(r.AcademicSessionStatus),
			Color:       StatusColor(r.AcademicSessionStatus),
			Joinable:    Joinable(r.AcademicSessionStatus, start, now),
			Cancelable:  Cancelable(r.AcademicSessionStatus, start, now),
			TeacherID:   r.AcademicSessionTeacherID,
			StudentID:   r.AcademicSessionStudentID,
			ContainerID: r.AcademicSessionSubscriptionID,
			MeetingURL:  r.AcademicSessionMeetingURL,
		})
	}
	return out, nil
}

func (s *CalendarService) courseEvents(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	viewer ViewerScope,
	from, to, now time.Time,
) ([]evDto.CalendarEvent, error) {
	q := s.DB.WithContext(ctx).Model(&sessModel.InteractiveCourseSessionModel{}).
		Where("interactive_course_session_academy_id = ?", acadCtx.AcademyID).
		Where("interactive_course_session_scheduled_at >= ? AND interactive_course_session_scheduled_at < ?", from, to)

	switch viewer.Role {
	case constants.RoleQuranTeacher, constants.RoleAcademicTeacher:
		q = q.Where("interactive_course_session_teacher_id = ?", viewer.UserID)
	case constants.RoleAdmin, constants.RoleOwner:
	default:
		// enrollment kursus dikelola collaborator eksternal — siswa/orang tua
		// menerima feed kursus dari sana, bukan dari sini
		return nil, nil
	}

	var rows []sessModel.InteractiveCourseSessionModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]evDto.CalendarEvent, 0, len(rows))
	for _, r := range rows {
		start := *r.InteractiveCourseSessionScheduledAt
		end := *r.EndAt()

		title := ""
		if r.InteractiveCourseSessionTitle != nil {
			title = *r.InteractiveCourseSessionTitle
		}

		courseID := r.InteractiveCourseSessionCourseID
		out = append(out, evDto.CalendarEvent{
			ID:          schedDto.FormatCalendarEventID(schedDto.EventKindCourse, r.InteractiveCourseSessionID),
			Kind:        schedDto.EventKindCourse,
			Title:       title,
			Start:       start,
			End:         end,
			Status:      string(r.InteractiveCourseSessionStatus),
			Color:       StatusColor(r.InteractiveCourseSessionStatus),
			Joinable:    Joinable(r.InteractiveCourseSessionStatus, start, now),
			Cancelable:  false, // pembatalan kursus interaktif lewat alur refund, bukan kalender
			TeacherID:   r.InteractiveCourseSessionTeacherID,
			ContainerID: &courseID,
			MeetingURL:  r.InteractiveCourseSessionMeetingURL,
		})
	}
	return out, nil
}

func sortEventsByStart(events []evDto.CalendarEvent) {
	sort.Slice(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
}
