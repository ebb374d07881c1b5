// file: internals/features/calendar/scheduling/service/conflict_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sessModel "akademiku_backend/internals/features/calendar/sessions/model"
)

func TestHasConflict_Overlap(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	teacherID := uuid.New()

	// sesi eksisting 10:00–11:00
	existing := at(2030, 3, 1, 10, 0)
	seedQuranSession(t, db, academyID, teacherID, existing, 60, sessModel.SessionScheduled)

	svc := NewConflictService(db)
	ctx := context.Background()

	cases := []struct {
		name     string
		start    time.Time
		duration int
		want     bool
	}{
		{"tepat sama", at(2030, 3, 1, 10, 0), 60, true},
		{"mulai di tengah", at(2030, 3, 1, 10, 30), 60, true},
		{"berakhir di tengah", at(2030, 3, 1, 9, 30), 60, true},
		{"menelan penuh", at(2030, 3, 1, 9, 0), 180, true},
		{"back-to-back setelah", at(2030, 3, 1, 11, 0), 60, false},
		{"back-to-back sebelum", at(2030, 3, 1, 9, 0), 60, false},
		{"jauh sesudah", at(2030, 3, 1, 14, 0), 60, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.HasConflict(ctx, academyID, teacherID, tc.start, tc.duration, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHasConflict_Symmetry(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	ctx := context.Background()

	aStart, aDur := at(2030, 3, 1, 10, 0), 60
	bStart, bDur := at(2030, 3, 1, 10, 45), 45

	// A dulu, cek B terhadap A
	teacher1 := uuid.New()
	seedQuranSession(t, db, academyID, teacher1, aStart, aDur, sessModel.SessionScheduled)
	abConflict, err := NewConflictService(db).HasConflict(ctx, academyID, teacher1, bStart, bDur, nil)
	require.NoError(t, err)

	// B dulu, cek A terhadap B
	db2 := newTestDB(t)
	teacher2 := uuid.New()
	seedQuranSession(t, db2, academyID, teacher2, bStart, bDur, sessModel.SessionScheduled)
	baConflict, err := NewConflictService(db2).HasConflict(ctx, academyID, teacher2, aStart, aDur, nil)
	require.NoError(t, err)

	assert.Equal(t, abConflict, baConflict)
	assert.True(t, abConflict)
}

func TestHasConflict_ExcludeSelf(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	teacherID := uuid.New()

	start := at(2030, 3, 1, 10, 0)
	row := seedQuranSession(t, db, academyID, teacherID, start, 60, sessModel.SessionScheduled)

	svc := NewConflictService(db)
	ctx := context.Background()

	// tanpa exclude: bentrok dengan dirinya sendiri
	got, err := svc.HasConflict(ctx, academyID, teacherID, start, 60, nil)
	require.NoError(t, err)
	assert.True(t, got)

	// dengan exclude: tidak bentrok
	got, err = svc.HasConflict(ctx, academyID, teacherID, start, 60, &row.QuranSessionID)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestHasConflict_CrossSessionKinds(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	teacherID := uuid.New()
	ctx := context.Background()

	// sesi akademik 13:00–14:00 harus memblokir kandidat Quran di jam sama
	seedAcademicSession(t, db, academyID, teacherID, at(2030, 3, 1, 13, 0), 60, sessModel.SessionScheduled)

	got, err := NewConflictService(db).HasConflict(ctx, academyID, teacherID, at(2030, 3, 1, 13, 30), 60, nil)
	require.NoError(t, err)
	assert.True(t, got, "bentrok harus lintas jenis sesi untuk guru yang sama")
}

func TestHasConflict_IgnoresCancelledAndOtherTeachers(t *testing.T) {
	db := newTestDB(t)
	academyID := uuid.New()
	teacherID := uuid.New()
	ctx := context.Background()

	start := at(2030, 3, 1, 10, 0)
	seedQuranSession(t, db, academyID, teacherID, start, 60, sessModel.SessionCancelled)
	seedQuranSession(t, db, academyID, uuid.New(), start, 60, sessModel.SessionScheduled) // guru lain

	got, err := NewConflictService(db).HasConflict(ctx, academyID, teacherID, start, 60, nil)
	require.NoError(t, err)
	assert.False(t, got)
}
