// file: internals/features/calendar/containers/model/quran_circle_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Halaqah jamaah (group circle). Status boolean: aktif / nonaktif.
type QuranCircleModel struct {
	QuranCircleID uuid.UUID `gorm:"column:quran_circle_id;type:uuid;primaryKey" json:"quran_circle_id"`

	QuranCircleAcademyID uuid.UUID `gorm:"column:quran_circle_academy_id;type:uuid;not null;index" json:"quran_circle_academy_id"`
	QuranCircleTeacherID uuid.UUID `gorm:"column:quran_circle_teacher_id;type:uuid;not null;index" json:"quran_circle_teacher_id"`

	QuranCircleName   string `gorm:"column:quran_circle_name;type:varchar(160);not null" json:"quran_circle_name"`
	QuranCircleStatus bool   `gorm:"column:quran_circle_status;not null" json:"quran_circle_status"`

	QuranCircleSessionDurationMinutes int `gorm:"column:quran_circle_session_duration_minutes;not null;default:60" json:"quran_circle_session_duration_minutes"`
	QuranCircleMonthlySessionsCount   int `gorm:"column:quran_circle_monthly_sessions_count;not null;default:4" json:"quran_circle_monthly_sessions_count"`

	QuranCircleMaxStudents      int `gorm:"column:quran_circle_max_students;not null;default:10" json:"quran_circle_max_students"`
	QuranCircleEnrolledStudents int `gorm:"column:quran_circle_enrolled_students;not null;default:0" json:"quran_circle_enrolled_students"`

	QuranCircleCreatedAt time.Time      `gorm:"column:quran_circle_created_at;autoCreateTime" json:"quran_circle_created_at"`
	QuranCircleUpdatedAt time.Time      `gorm:"column:quran_circle_updated_at;autoUpdateTime" json:"quran_circle_updated_at"`
	QuranCircleDeletedAt gorm.DeletedAt `gorm:"column:quran_circle_deleted_at;index" json:"quran_circle_deleted_at,omitempty"`
}

func (QuranCircleModel) TableName() string { return "quran_circles" }

func (m *QuranCircleModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuranCircleID == uuid.Nil {
		m.QuranCircleID = uuid.New()
	}
	return nil
}
