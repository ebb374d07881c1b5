// file: internals/features/calendar/sessions/model/interactive_course_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sesi kursus interaktif. Teacher di-denormalisasi dari course supaya
// cek bentrok per guru cukup satu query per tabel.
type InteractiveCourseSessionModel struct {
	InteractiveCourseSessionID uuid.UUID `gorm:"column:interactive_course_session_id;type:uuid;primaryKey" json:"interactive_course_session_id"`

	InteractiveCourseSessionAcademyID uuid.UUID `gorm:"column:interactive_course_session_academy_id;type:uuid;not null;index" json:"interactive_course_session_academy_id"`

	InteractiveCourseSessionCourseID  uuid.UUID `gorm:"column:interactive_course_session_course_id;type:uuid;not null;index" json:"interactive_course_session_course_id"`
	InteractiveCourseSessionTeacherID uuid.UUID `gorm:"column:interactive_course_session_teacher_id;type:uuid;not null;index" json:"interactive_course_session_teacher_id"`

	InteractiveCourseSessionTitle    *string `gorm:"column:interactive_course_session_title;type:varchar(200)" json:"interactive_course_session_title,omitempty"`
	InteractiveCourseSessionSequence int     `gorm:"column:interactive_course_session_sequence;not null;default:1" json:"interactive_course_session_sequence"`

	InteractiveCourseSessionScheduledAt     *time.Time    `gorm:"column:interactive_course_session_scheduled_at;index" json:"interactive_course_session_scheduled_at,omitempty"`
	InteractiveCourseSessionDurationMinutes int           `gorm:"column:interactive_course_session_duration_minutes;not null;default:60" json:"interactive_course_session_duration_minutes"`
	InteractiveCourseSessionStatus          SessionStatus `gorm:"column:interactive_course_session_status;type:session_status_enum;not null;default:'scheduled'" json:"interactive_course_session_status"`

	InteractiveCourseSessionMeetingURL *string `gorm:"column:interactive_course_session_meeting_url;type:text" json:"interactive_course_session_meeting_url,omitempty"`

	InteractiveCourseSessionCreatedAt time.Time      `gorm:"column:interactive_course_session_created_at;autoCreateTime" json:"interactive_course_session_created_at"`
	InteractiveCourseSessionUpdatedAt time.Time      `gorm:"column:interactive_course_session_updated_at;autoUpdateTime" json:"interactive_course_session_updated_at"`
	InteractiveCourseSessionDeletedAt gorm.DeletedAt `gorm:"column:interactive_course_session_deleted_at;index" json:"interactive_course_session_deleted_at,omitempty"`
}

func (InteractiveCourseSessionModel) TableName() string { return "interactive_course_sessions" }

func (s *InteractiveCourseSessionModel) BeforeCreate(tx *gorm.DB) error {
	if s.InteractiveCourseSessionID == uuid.Nil {
		s.InteractiveCourseSessionID = uuid.New()
	}
	return nil
}

func (s *InteractiveCourseSessionModel) EndAt() *time.Time {
	if s.InteractiveCourseSessionScheduledAt == nil {
		return nil
	}
	end := s.InteractiveCourseSessionScheduledAt.Add(time.Duration(s.InteractiveCourseSessionDurationMinutes) * time.Minute)
	return &end
}
