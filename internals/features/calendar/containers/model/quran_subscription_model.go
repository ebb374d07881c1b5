// file: internals/features/calendar/containers/model/quran_subscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Langganan halaqah individual. starts_at/ends_at adalah batas instant
// (bukan whole-day) — beda dengan course yang pakai batas tanggal.
type QuranSubscriptionModel struct {
	QuranSubscriptionID uuid.UUID `gorm:"column:quran_subscription_id;type:uuid;primaryKey" json:"quran_subscription_id"`

	QuranSubscriptionAcademyID uuid.UUID `gorm:"column:quran_subscription_academy_id;type:uuid;not null;index" json:"quran_subscription_academy_id"`
	QuranSubscriptionTeacherID uuid.UUID `gorm:"column:quran_subscription_teacher_id;type:uuid;not null;index" json:"quran_subscription_teacher_id"`
	QuranSubscriptionStudentID uuid.UUID `gorm:"column:quran_subscription_student_id;type:uuid;not null;index" json:"quran_subscription_student_id"`

	QuranSubscriptionStatus SubscriptionStatus `gorm:"column:quran_subscription_status;type:varchar(20);not null;default:'pending'" json:"quran_subscription_status"`

	QuranSubscriptionStartsAt *time.Time `gorm:"column:quran_subscription_starts_at" json:"quran_subscription_starts_at,omitempty"`
	QuranSubscriptionEndsAt   *time.Time `gorm:"column:quran_subscription_ends_at" json:"quran_subscription_ends_at,omitempty"`

	QuranSubscriptionTotalSessions          int `gorm:"column:quran_subscription_total_sessions;not null;default:8" json:"quran_subscription_total_sessions"`
	QuranSubscriptionSessionDurationMinutes int `gorm:"column:quran_subscription_session_duration_minutes;not null;default:45" json:"quran_subscription_session_duration_minutes"`

	QuranSubscriptionCreatedAt time.Time      `gorm:"column:quran_subscription_created_at;autoCreateTime" json:"quran_subscription_created_at"`
	QuranSubscriptionUpdatedAt time.Time      `gorm:"column:quran_subscription_updated_at;autoUpdateTime" json:"quran_subscription_updated_at"`
	QuranSubscriptionDeletedAt gorm.DeletedAt `gorm:"column:quran_subscription_deleted_at;index" json:"quran_subscription_deleted_at,omitempty"`
}

func (QuranSubscriptionModel) TableName() string { return "quran_subscriptions" }

func (m *QuranSubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuranSubscriptionID == uuid.Nil {
		m.QuranSubscriptionID = uuid.New()
	}
	return nil
}
