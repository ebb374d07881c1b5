// file: internals/features/calendar/containers/model/academic_subscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Langganan les privat akademik. Semantik window sama dengan quran_subscriptions.
type AcademicSubscriptionModel struct {
	AcademicSubscriptionID uuid.UUID `gorm:"column:academic_subscription_id;type:uuid;primaryKey" json:"academic_subscription_id"`

	AcademicSubscriptionAcademyID uuid.UUID `gorm:"column:academic_subscription_academy_id;type:uuid;not null;index" json:"academic_subscription_academy_id"`
	AcademicSubscriptionTeacherID uuid.UUID `gorm:"column:academic_subscription_teacher_id;type:uuid;not null;index" json:"academic_subscription_teacher_id"`
	AcademicSubscriptionStudentID uuid.UUID `gorm:"column:academic_subscription_student_id;type:uuid;not null;index" json:"academic_subscription_student_id"`

	AcademicSubscriptionSubject *string `gorm:"column:academic_subscription_subject;type:varchar(120)" json:"academic_subscription_subject,omitempty"`

	AcademicSubscriptionStatus SubscriptionStatus `gorm:"column:academic_subscription_status;type:varchar(20);not null;default:'pending'" json:"academic_subscription_status"`

	AcademicSubscriptionStartsAt *time.Time `gorm:"column:academic_subscription_starts_at" json:"academic_subscription_starts_at,omitempty"`
	AcademicSubscriptionEndsAt   *time.Time `gorm:"column:academic_subscription_ends_at" json:"academic_subscription_ends_at,omitempty"`

	AcademicSubscriptionTotalSessions          int `gorm:"column:academic_subscription_total_sessions;not null;default:8" json:"academic_subscription_total_sessions"`
	AcademicSubscriptionSessionDurationMinutes int `gorm:"column:academic_subscription_session_duration_minutes;not null;default:60" json:"academic_subscription_session_duration_minutes"`

	AcademicSubscriptionCreatedAt time.Time      `gorm:"column:academic_subscription_created_at;autoCreateTime" json:"academic_subscription_created_at"`
	AcademicSubscriptionUpdatedAt time.Time      `gorm:"column:academic_subscription_updated_at;autoUpdateTime" json:"academic_subscription_updated_at"`
	AcademicSubscriptionDeletedAt gorm.DeletedAt `gorm:"column:academic_subscription_deleted_at;index" json:"academic_subscription_deleted_at,omitempty"`
}

func (AcademicSubscriptionModel) TableName() string { return "academic_subscriptions" }

func (m *AcademicSubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if m.AcademicSubscriptionID == uuid.Nil {
		m.AcademicSubscriptionID = uuid.New()
	}
	return nil
}
