// file: internals/features/calendar/sessions/model/quran_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Jenis sesi Quran dalam satu tabel (individual | group | trial)
type QuranSessionType string

const (
	QuranSessionIndividual QuranSessionType = "individual"
	QuranSessionGroup      QuranSessionType = "group"
	QuranSessionTrial      QuranSessionType = "trial"
)

type QuranSessionModel struct {
	QuranSessionID uuid.UUID `gorm:"column:quran_session_id;type:uuid;primaryKey" json:"quran_session_id"`

	// tenant scope
	QuranSessionAcademyID uuid.UUID `gorm:"column:quran_session_academy_id;type:uuid;not null;index" json:"quran_session_academy_id"`

	// pemilik sesi (user id guru Quran) — semua cek bentrok di-scope per guru
	QuranSessionTeacherID uuid.UUID  `gorm:"column:quran_session_teacher_id;type:uuid;not null;index" json:"quran_session_teacher_id"`
	QuranSessionStudentID *uuid.UUID `gorm:"column:quran_session_student_id;type:uuid;index" json:"quran_session_student_id,omitempty"`

	// container: tepat satu yang terisi sesuai type
	QuranSessionCircleID           *uuid.UUID `gorm:"column:quran_session_circle_id;type:uuid;index" json:"quran_session_circle_id,omitempty"`
	QuranSessionIndividualCircleID *uuid.UUID `gorm:"column:quran_session_individual_circle_id;type:uuid;index" json:"quran_session_individual_circle_id,omitempty"`
	QuranSessionTrialRequestID     *uuid.UUID `gorm:"column:quran_session_trial_request_id;type:uuid;index" json:"quran_session_trial_request_id,omitempty"`
	QuranSessionSubscriptionID     *uuid.UUID `gorm:"column:quran_session_subscription_id;type:uuid;index" json:"quran_session_subscription_id,omitempty"`

	QuranSessionType QuranSessionType `gorm:"column:quran_session_type;type:varchar(20);not null" json:"quran_session_type"`
	QuranSessionCode string           `gorm:"column:quran_session_code;type:varchar(48)" json:"quran_session_code"`

	QuranSessionTitle *string `gorm:"column:quran_session_title;type:varchar(200)" json:"quran_session_title,omitempty"`

	// waktu disimpan UTC; perbandingan selalu di zona academy
	QuranSessionScheduledAt     *time.Time    `gorm:"column:quran_session_scheduled_at;index" json:"quran_session_scheduled_at,omitempty"`
	QuranSessionDurationMinutes int           `gorm:"column:quran_session_duration_minutes;not null;default:60" json:"quran_session_duration_minutes"`
	QuranSessionStatus          SessionStatus `gorm:"column:quran_session_status;type:session_status_enum;not null;default:'scheduled'" json:"quran_session_status"`

	// audit reschedule (drag di kalender)
	QuranSessionRescheduledFrom *time.Time `gorm:"column:quran_session_rescheduled_from" json:"quran_session_rescheduled_from,omitempty"`
	QuranSessionRescheduledTo   *time.Time `gorm:"column:quran_session_rescheduled_to" json:"quran_session_rescheduled_to,omitempty"`

	// meeting di-generate lazy oleh collaborator eksternal; di-clear saat sesi dipindah
	QuranSessionMeetingURL      *string `gorm:"column:quran_session_meeting_url;type:text" json:"quran_session_meeting_url,omitempty"`
	QuranSessionMeetingProvider *string `gorm:"column:quran_session_meeting_provider;type:varchar(32)" json:"quran_session_meeting_provider,omitempty"`

	// nomor urut pertemuan di dalam container (bukan hitung baris — lihat generator)
	QuranSessionSequence *int `gorm:"column:quran_session_sequence" json:"quran_session_sequence,omitempty"`

	// snapshot pola recurrence yang melahirkan sesi ini
	QuranSessionRuleSnapshot datatypes.JSONMap `gorm:"column:quran_session_rule_snapshot;type:jsonb" json:"quran_session_rule_snapshot,omitempty"`

	QuranSessionCreatedAt time.Time      `gorm:"column:quran_session_created_at;autoCreateTime" json:"quran_session_created_at"`
	QuranSessionUpdatedAt time.Time      `gorm:"column:quran_session_updated_at;autoUpdateTime" json:"quran_session_updated_at"`
	QuranSessionDeletedAt gorm.DeletedAt `gorm:"column:quran_session_deleted_at;index" json:"quran_session_deleted_at,omitempty"`
}

func (QuranSessionModel) TableName() string { return "quran_sessions" }

func (s *QuranSessionModel) BeforeCreate(tx *gorm.DB) error {
	if s.QuranSessionID == uuid.Nil {
		s.QuranSessionID = uuid.New()
	}
	return nil
}

// EndAt = scheduled_at + duration. Nil kalau belum terjadwal.
func (s *QuranSessionModel) EndAt() *time.Time {
	if s.QuranSessionScheduledAt == nil {
		return nil
	}
	end := s.QuranSessionScheduledAt.Add(time.Duration(s.QuranSessionDurationMinutes) * time.Minute)
	return &end
}
