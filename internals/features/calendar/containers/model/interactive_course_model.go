// file: internals/features/calendar/containers/model/interactive_course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Kursus interaktif. start_date/end_date diperlakukan whole-day
// (batas tanggal, bukan instant) saat validasi window.
type InteractiveCourseModel struct {
	InteractiveCourseID uuid.UUID `gorm:"column:interactive_course_id;type:uuid;primaryKey" json:"interactive_course_id"`

	InteractiveCourseAcademyID uuid.UUID `gorm:"column:interactive_course_academy_id;type:uuid;not null;index" json:"interactive_course_academy_id"`
	InteractiveCourseTeacherID uuid.UUID `gorm:"column:interactive_course_teacher_id;type:uuid;not null;index" json:"interactive_course_teacher_id"`

	InteractiveCourseName        string `gorm:"column:interactive_course_name;type:varchar(200);not null" json:"interactive_course_name"`
	InteractiveCourseIsPublished bool   `gorm:"column:interactive_course_is_published;not null;default:false" json:"interactive_course_is_published"`

	InteractiveCourseStartDate *time.Time `gorm:"column:interactive_course_start_date" json:"interactive_course_start_date,omitempty"`
	InteractiveCourseEndDate   *time.Time `gorm:"column:interactive_course_end_date" json:"interactive_course_end_date,omitempty"`

	InteractiveCourseTotalSessions          int `gorm:"column:interactive_course_total_sessions;not null;default:12" json:"interactive_course_total_sessions"`
	InteractiveCourseSessionDurationMinutes int `gorm:"column:interactive_course_session_duration_minutes;not null;default:60" json:"interactive_course_session_duration_minutes"`

	InteractiveCourseCreatedAt time.Time      `gorm:"column:interactive_course_created_at;autoCreateTime" json:"interactive_course_created_at"`
	InteractiveCourseUpdatedAt time.Time      `gorm:"column:interactive_course_updated_at;autoUpdateTime" json:"interactive_course_updated_at"`
	InteractiveCourseDeletedAt gorm.DeletedAt `gorm:"column:interactive_course_deleted_at;index" json:"interactive_course_deleted_at,omitempty"`
}

func (InteractiveCourseModel) TableName() string { return "interactive_courses" }

func (m *InteractiveCourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.InteractiveCourseID == uuid.Nil {
		m.InteractiveCourseID = uuid.New()
	}
	return nil
}
