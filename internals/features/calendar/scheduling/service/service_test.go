// file: internals/features/calendar/scheduling/service/service_test.go
package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	helperAuth "akademiku_backend/internals/helpers/auth"

	contModel "akademiku_backend/internals/features/calendar/containers/model"
	sessModel "akademiku_backend/internals/features/calendar/sessions/model"
)

// newTestDB: SQLite in-memory, single connection supaya transaksi dan
// query biasa melihat state yang sama.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&sessModel.QuranSessionModel{},
		&sessModel.AcademicSessionModel{},
		&sessModel.InteractiveCourseSessionModel{},
		&contModel.QuranCircleModel{},
		&contModel.QuranCircleScheduleModel{},
		&contModel.QuranIndividualCircleModel{},
		&contModel.QuranSubscriptionModel{},
		&contModel.QuranTrialRequestModel{},
		&contModel.AcademicSubscriptionModel{},
		&contModel.InteractiveCourseModel{},
	))
	return db
}

func testAcademyCtx(academyID uuid.UUID) helperAuth.AcademyContext {
	return helperAuth.AcademyContext{AcademyID: academyID, TZName: "UTC", Loc: time.UTC}
}

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func seedQuranSession(t *testing.T, db *gorm.DB, academyID, teacherID uuid.UUID, start time.Time, durationMin int, status sessModel.SessionStatus) *sessModel.QuranSessionModel {
	t.Helper()
	row := &sessModel.QuranSessionModel{
		QuranSessionAcademyID:       academyID,
		QuranSessionTeacherID:       teacherID,
		QuranSessionType:            sessModel.QuranSessionIndividual,
		QuranSessionCode:            "TST-SEED",
		QuranSessionScheduledAt:     &start,
		QuranSessionDurationMinutes: durationMin,
		QuranSessionStatus:          status,
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

func seedAcademicSession(t *testing.T, db *gorm.DB, academyID, teacherID uuid.UUID, start time.Time, durationMin int, status sessModel.SessionStatus) *sessModel.AcademicSessionModel {
	t.Helper()
	row := &sessModel.AcademicSessionModel{
		AcademicSessionAcademyID:       academyID,
		AcademicSessionTeacherID:       teacherID,
		AcademicSessionCode:            "TST-SEED",
		AcademicSessionScheduledAt:     &start,
		AcademicSessionDurationMinutes: durationMin,
		AcademicSessionStatus:          status,
	}
	require.NoError(t, db.Create(row).Error)
	return row
}
