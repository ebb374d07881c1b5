// file: internals/features/calendar/sessions/model/academic_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sesi les privat akademik (terikat ke academic_subscriptions)
type AcademicSessionModel struct {
	AcademicSessionID uuid.UUID `gorm:"column:academic_session_id;type:uuid;primaryKey" json:"academic_session_id"`

	AcademicSessionAcademyID uuid.UUID `gorm:"column:academic_session_academy_id;type:uuid;not null;index" json:"academic_session_academy_id"`

	AcademicSessionTeacherID uuid.UUID  `gorm:"column:academic_session_teacher_id;type:uuid;not null;index" json:"academic_session_teacher_id"`
	AcademicSessionStudentID *uuid.UUID `gorm:"column:academic_session_student_id;type:uuid;index" json:"academic_session_student_id,omitempty"`

	AcademicSessionSubscriptionID *uuid.UUID `gorm:"column:academic_session_subscription_id;type:uuid;index" json:"academic_session_subscription_id,omitempty"`

	AcademicSessionCode  string  `gorm:"column:academic_session_code;type:varchar(48)" json:"academic_session_code"`
	AcademicSessionTitle *string `gorm:"column:academic_session_title;type:varchar(200)" json:"academic_session_title,omitempty"`

	AcademicSessionScheduledAt     *time.Time    `gorm:"column:academic_session_scheduled_at;index" json:"academic_session_scheduled_at,omitempty"`
	AcademicSessionDurationMinutes int           `gorm:"column:academic_session_duration_minutes;not null;default:60" json:"academic_session_duration_minutes"`
	AcademicSessionStatus          SessionStatus `gorm:"column:academic_session_status;type:session_status_enum;not null;default:'scheduled'" json:"academic_session_status"`

	AcademicSessionRescheduledFrom *time.Time `gorm:"column:academic_session_rescheduled_from" json:"academic_session_rescheduled_from,omitempty"`
	AcademicSessionRescheduledTo   *time.Time `gorm:"column:academic_session_rescheduled_to" json:"academic_session_rescheduled_to,omitempty"`

	AcademicSessionMeetingURL      *string `gorm:"column:academic_session_meeting_url;type:text" json:"academic_session_meeting_url,omitempty"`
	AcademicSessionMeetingProvider *string `gorm:"column:academic_session_meeting_provider;type:varchar(32)" json:"academic_session_meeting_provider,omitempty"`

	AcademicSessionSequence *int `gorm:"column:academic_session_sequence" json:"academic_session_sequence,omitempty"`

	AcademicSessionCreatedAt time.Time      `gorm:"column:academic_session_created_at;autoCreateTime" json:"academic_session_created_at"`
	AcademicSessionUpdatedAt time.Time      `gorm:"column:academic_session_updated_at;autoUpdateTime" json:"academic_session_updated_at"`
	AcademicSessionDeletedAt gorm.DeletedAt `gorm:"column:academic_session_deleted_at;index" json:"academic_session_deleted_at,omitempty"`
}

func (AcademicSessionModel) TableName() string { return "academic_sessions" }

func (s *AcademicSessionModel) BeforeCreate(tx *gorm.DB) error {
	if s.AcademicSessionID == uuid.Nil {
		s.AcademicSessionID = uuid.New()
	}
	return nil
}

func (s *AcademicSessionModel) EndAt() *time.Time {
	if s.AcademicSessionScheduledAt == nil {
		return nil
	}
	end := s.AcademicSessionScheduledAt.Add(time.Duration(s.AcademicSessionDurationMinutes) * time.Minute)
	return &end
}
