// file: internals/features/calendar/containers/model/quran_circle_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"akademiku_backend/internals/helpers/dbtime"
)

// Pola mingguan yang dipersist untuk group circle — reusable antar batch
// generate. last_sequence menyimpan nomor pertemuan terbesar yang sudah
// terpakai supaya penomoran tidak tabrakan setelah generate parsial.
type QuranCircleScheduleModel struct {
	QuranCircleScheduleID uuid.UUID `gorm:"column:quran_circle_schedule_id;type:uuid;primaryKey" json:"quran_circle_schedule_id"`

	QuranCircleScheduleAcademyID uuid.UUID `gorm:"column:quran_circle_schedule_academy_id;type:uuid;not null;index" json:"quran_circle_schedule_academy_id"`
	QuranCircleScheduleCircleID  uuid.UUID `gorm:"column:quran_circle_schedule_circle_id;type:uuid;not null;index" json:"quran_circle_schedule_circle_id"`
	QuranCircleScheduleTeacherID uuid.UUID `gorm:"column:quran_circle_schedule_teacher_id;type:uuid;not null;index" json:"quran_circle_schedule_teacher_id"`

	// hari dalam minggu, 0=Minggu .. 6=Sabtu
	QuranCircleScheduleWeekdays pq.Int64Array `gorm:"column:quran_circle_schedule_weekdays;type:integer[]" json:"quran_circle_schedule_weekdays"`
	QuranCircleScheduleTime     dbtime.Tod    `gorm:"column:quran_circle_schedule_time;type:time" json:"quran_circle_schedule_time"`

	QuranCircleScheduleDefaultDurationMinutes int    `gorm:"column:quran_circle_schedule_default_duration_minutes;not null;default:60" json:"quran_circle_schedule_default_duration_minutes"`
	QuranCircleScheduleTimezone               string `gorm:"column:quran_circle_schedule_timezone;type:varchar(64);not null" json:"quran_circle_schedule_timezone"`

	QuranCircleScheduleIsActive     bool `gorm:"column:quran_circle_schedule_is_active;not null" json:"quran_circle_schedule_is_active"`
	QuranCircleScheduleLastSequence int  `gorm:"column:quran_circle_schedule_last_sequence;not null;default:0" json:"quran_circle_schedule_last_sequence"`

	QuranCircleScheduleCreatedBy *uuid.UUID `gorm:"column:quran_circle_schedule_created_by;type:uuid" json:"quran_circle_schedule_created_by,omitempty"`

	QuranCircleScheduleCreatedAt time.Time      `gorm:"column:quran_circle_schedule_created_at;autoCreateTime" json:"quran_circle_schedule_created_at"`
	QuranCircleScheduleUpdatedAt time.Time      `gorm:"column:quran_circle_schedule_updated_at;autoUpdateTime" json:"quran_circle_schedule_updated_at"`
	QuranCircleScheduleDeletedAt gorm.DeletedAt `gorm:"column:quran_circle_schedule_deleted_at;index" json:"quran_circle_schedule_deleted_at,omitempty"`
}

func (QuranCircleScheduleModel) TableName() string { return "quran_circle_schedules" }

func (m *QuranCircleScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuranCircleScheduleID == uuid.Nil {
		m.QuranCircleScheduleID = uuid.New()
	}
	return nil
}
