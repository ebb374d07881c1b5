// file: internals/features/calendar/containers/model/quran_individual_circle_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Halaqah individual (satu guru ↔ satu siswa), terikat ke quran_subscriptions.
type QuranIndividualCircleModel struct {
	QuranIndividualCircleID uuid.UUID `gorm:"column:quran_individual_circle_id;type:uuid;primaryKey" json:"quran_individual_circle_id"`

	QuranIndividualCircleAcademyID uuid.UUID `gorm:"column:quran_individual_circle_academy_id;type:uuid;not null;index" json:"quran_individual_circle_academy_id"`
	QuranIndividualCircleTeacherID uuid.UUID `gorm:"column:quran_individual_circle_teacher_id;type:uuid;not null;index" json:"quran_individual_circle_teacher_id"`
	QuranIndividualCircleStudentID uuid.UUID `gorm:"column:quran_individual_circle_student_id;type:uuid;not null;index" json:"quran_individual_circle_student_id"`

	QuranIndividualCircleSubscriptionID uuid.UUID `gorm:"column:quran_individual_circle_subscription_id;type:uuid;not null;index" json:"quran_individual_circle_subscription_id"`

	QuranIndividualCircleName string `gorm:"column:quran_individual_circle_name;type:varchar(160);not null" json:"quran_individual_circle_name"`

	QuranIndividualCircleTotalSessions          int `gorm:"column:quran_individual_circle_total_sessions;not null;default:8" json:"quran_individual_circle_total_sessions"`
	QuranIndividualCircleDefaultDurationMinutes int `gorm:"column:quran_individual_circle_default_duration_minutes;not null;default:45" json:"quran_individual_circle_default_duration_minutes"`

	QuranIndividualCircleCreatedAt time.Time      `gorm:"column:quran_individual_circle_created_at;autoCreateTime" json:"quran_individual_circle_created_at"`
	QuranIndividualCircleUpdatedAt time.Time      `gorm:"column:quran_individual_circle_updated_at;autoUpdateTime" json:"quran_individual_circle_updated_at"`
	QuranIndividualCircleDeletedAt gorm.DeletedAt `gorm:"column:quran_individual_circle_deleted_at;index" json:"quran_individual_circle_deleted_at,omitempty"`
}

func (QuranIndividualCircleModel) TableName() string { return "quran_individual_circles" }

func (m *QuranIndividualCircleModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuranIndividualCircleID == uuid.Nil {
		m.QuranIndividualCircleID = uuid.New()
	}
	return nil
}
