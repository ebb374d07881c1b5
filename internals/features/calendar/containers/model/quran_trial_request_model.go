// file: internals/features/calendar/containers/model/quran_trial_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrialRequestStatus string

const (
	TrialPending   TrialRequestStatus = "pending"
	TrialScheduled TrialRequestStatus = "scheduled"
	TrialCompleted TrialRequestStatus = "completed"
	TrialCancelled TrialRequestStatus = "cancelled"
)

// Permintaan sesi percobaan. Tidak punya validity window —
// satu slot 30 menit, dijadwalkan sekali dari status pending.
type QuranTrialRequestModel struct {
	QuranTrialRequestID uuid.UUID `gorm:"column:quran_trial_request_id;type:uuid;primaryKey" json:"quran_trial_request_id"`

	QuranTrialRequestAcademyID uuid.UUID `gorm:"column:quran_trial_request_academy_id;type:uuid;not null;index" json:"quran_trial_request_academy_id"`
	QuranTrialRequestTeacherID uuid.UUID `gorm:"column:quran_trial_request_teacher_id;type:uuid;not null;index" json:"quran_trial_request_teacher_id"`

	QuranTrialRequestStudentName string  `gorm:"column:quran_trial_request_student_name;type:varchar(160);not null" json:"quran_trial_request_student_name"`
	QuranTrialRequestPhone       *string `gorm:"column:quran_trial_request_phone;type:varchar(32)" json:"quran_trial_request_phone,omitempty"`
	QuranTrialRequestNotes       *string `gorm:"column:quran_trial_request_notes;type:text" json:"quran_trial_request_notes,omitempty"`

	QuranTrialRequestStatus      TrialRequestStatus `gorm:"column:quran_trial_request_status;type:varchar(20);not null;default:'pending'" json:"quran_trial_request_status"`
	QuranTrialRequestScheduledAt *time.Time         `gorm:"column:quran_trial_request_scheduled_at" json:"quran_trial_request_scheduled_at,omitempty"`

	QuranTrialRequestCreatedAt time.Time      `gorm:"column:quran_trial_request_created_at;autoCreateTime" json:"quran_trial_request_created_at"`
	QuranTrialRequestUpdatedAt time.Time      `gorm:"column:quran_trial_request_updated_at;autoUpdateTime" json:"quran_trial_request_updated_at"`
	QuranTrialRequestDeletedAt gorm.DeletedAt `gorm:"column:quran_trial_request_deleted_at;index" json:"quran_trial_request_deleted_at,omitempty"`
}

func (QuranTrialRequestModel) TableName() string { return "quran_trial_requests" }

func (m *QuranTrialRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuranTrialRequestID == uuid.Nil {
		m.QuranTrialRequestID = uuid.New()
	}
	return nil
}
