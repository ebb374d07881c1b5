// file: internals/features/calendar/scheduling/service/event_mutation_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/calendar/scheduling/dto"
	helperAuth "akademiku_backend/internals/helpers/auth"
	"akademiku_backend/internals/helpers/dbtime"

	contModel "akademiku_backend/internals/features/calendar/containers/model"
	sessModel "akademiku_backend/internals/features/calendar/sessions/model"
)

/* =========================
   Event Mutation Handler (drag / resize)
   ========================= */

type EventMutationService struct {
	DB *gorm.DB
}

func NewEventMutationService(db *gorm.DB) *EventMutationService {
	return &EventMutationService{DB: db}
}

// mutableSession: pandangan seragam atas satu baris sesi dari salah satu
// dari tiga tabel, plus flag kemampuan per jenis.
type mutableSession struct {
	kind        string
	id          uuid.UUID
	teacherID   uuid.UUID
	scheduledAt *time.Time
	durationMin int
	status      sessModel.SessionStatus

	movable   bool
	resizable bool

	// window container (nil = tanpa window)
	windowCheck func(t time.Time) error
}

// --- PG error mapping (race di commit time) ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// pre-check conflict bukan jaminan bebas race; pelanggaran exclusion/unique
// yang muncul saat commit tetap dilaporkan sebagai conflict, bukan error.
func isPGConflict(err error) bool {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23P01", "23505":
			return true
		}
	}
	return false
}

/* =========================
   Move (drag)
   ========================= */

// HandleMove menggeser scheduled_at. Urutan cek short-circuit:
// type → status final → status reschedulable → past → window → conflict.
// Durasi tidak berubah saat move; meeting link di-clear karena harus
// di-generate ulang oleh collaborator eksternal.
func (s *EventMutationService) HandleMove(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	actorID uuid.UUID,
	kind string,
	sessionID uuid.UUID,
	newStart time.Time,
	newEnd time.Time,
) dto.MutationResult {
	var result dto.MutationResult

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ms, err := loadMutableSession(tx, acadCtx, kind, sessionID)
		if err != nil {
			return err
		}

		// guru hanya boleh menggeser sesinya sendiri
		if ms.teacherID != actorID {
			return NewScheduleError(ErrCodeValidation, "Sesi ini bukan milik Anda")
		}
		if !ms.movable {
			return NewScheduleError(ErrCodeType, "Jenis sesi ini tidak bisa dipindah")
		}
		if ms.status.IsFinal() {
			return Errf(ErrCodeStatus, "Sesi berstatus %s tidak bisa diubah lagi", ms.status)
		}
		if !ms.status.CanReschedule() {
			return Errf(ErrCodeStatus, "Sesi berstatus %s tidak bisa dijadwalkan ulang", ms.status)
		}
		if newStart.Before(acadCtx.Now()) {
			return NewScheduleError(ErrCodePast, "Tidak bisa memindah sesi ke waktu yang sudah lewat")
		}
		if ms.windowCheck != nil {
			if werr := ms.windowCheck(newStart); werr != nil {
				return werr
			}
		}

		conflict := NewConflictService(tx)
		hit, cerr := conflict.HasConflict(ctx, acadCtx.AcademyID, ms.teacherID, newStart, ms.durationMin, &ms.id)
		if cerr != nil {
			return cerr
		}
		if hit {
			return NewScheduleError(ErrCodeConflict, "Guru sudah punya jadwal lain di waktu tersebut")
		}

		return applyMove(tx, ms, dbtime.ToUTC(newStart))
	})

	switch {
	case err == nil:
		result = dto.MutationSuccess("Sesi berhasil dipindah ke " + newStart.In(acadCtx.Loc).Format("02 Jan 2006 15:04"))
	default:
		result = mutationResultFromErr("HandleMove", kind, sessionID, err)
	}
	return result
}

func applyMove(tx *gorm.DB, ms *mutableSession, newStartUTC time.Time) error {
	// scheduled_at, audit, dan clear meeting harus satu write — tidak boleh
	// ada partial update kalau transaksi gagal di tengah
	switch ms.kind {
	case dto.EventKindQuran:
		return tx.Model(&sessModel.QuranSessionModel{}).
			Where("quran_session_id = ?", ms.id).
			Updates(map[string]interface{}{
				"quran_session_scheduled_at":     newStartUTC,
				"quran_session_rescheduled_from": ms.scheduledAt,
				"quran_session_rescheduled_to":   newStartUTC,
				"quran_session_status":           sessModel.SessionScheduled,
				"quran_session_meeting_url":      nil,
				"quran_session_meeting_provider": nil,
			}).Error
	case dto.EventKindAcademic:
		return tx.Model(&sessModel.AcademicSessionModel{}).
			Where("academic_session_id = ?", ms.id).
			Updates(map[string]interface{}{
				"academic_session_scheduled_at":     newStartUTC,
				"academic_session_rescheduled_from": ms.scheduledAt,
				"academic_session_rescheduled_to":   newStartUTC,
				"academic_session_status":           sessModel.SessionScheduled,
				"academic_session_meeting_url":      nil,
				"academic_session_meeting_provider": nil,
			}).Error
	default:
		return NewScheduleError(ErrCodeType, "Jenis sesi ini tidak bisa dipindah")
	}
}

/* =========================
   Resize
   ========================= */

// HandleResize mengubah durasi pada start yang SAMA. Urutan cek:
// type → status final → batas durasi → conflict (durasi baru di start lama).
func (s *EventMutationService) HandleResize(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	actorID uuid.UUID,
	kind string,
	sessionID uuid.UUID,
	newStart time.Time,
	newEnd time.Time,
) dto.MutationResult {
	var newDuration int

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ms, err := loadMutableSession(tx, acadCtx, kind, sessionID)
		if err != nil {
			return err
		}

		if ms.teacherID != actorID {
			return NewScheduleError(ErrCodeValidation, "Sesi ini bukan milik Anda")
		}
		if !ms.resizable {
			return NewScheduleError(ErrCodeType, "Durasi jenis sesi ini tidak bisa diubah")
		}
		if ms.status.IsFinal() {
			return Errf(ErrCodeStatus, "Sesi berstatus %s tidak bisa diubah lagi", ms.status)
		}

		newDuration = int(newEnd.Sub(newStart).Minutes())
		if newDuration < MinSessionDurationMinutes || newDuration > MaxSessionDurationMinutes {
			return Errf(ErrCodeDuration, "Durasi harus antara %d dan %d menit (diminta %d)",
				MinSessionDurationMinutes, MaxSessionDurationMinutes, newDuration)
		}

		if ms.scheduledAt == nil {
			return NewScheduleError(ErrCodeStatus, "Sesi belum punya jadwal, tidak ada yang bisa di-resize")
		}

		conflict := NewConflictService(tx)
		hit, cerr := conflict.HasConflict(ctx, acadCtx.AcademyID, ms.teacherID, *ms.scheduledAt, newDuration, &ms.id)
		if cerr != nil {
			return cerr
		}
		if hit {
			return NewScheduleError(ErrCodeConflict, "Durasi baru bentrok dengan jadwal lain")
		}

		return applyResize(tx, ms, newDuration)
	})

	if err != nil {
		return mutationResultFromErr("HandleResize", kind, sessionID, err)
	}
	return dto.MutationSuccess("Durasi sesi diubah menjadi " + strconv.Itoa(newDuration) + " menit")
}

func applyResize(tx *gorm.DB, ms *mutableSession, newDuration int) error {
	switch ms.kind {
	case dto.EventKindQuran:
		return tx.Model(&sessModel.QuranSessionModel{}).
			Where("quran_session_id = ?", ms.id).
			Update("quran_session_duration_minutes", newDuration).Error
	case dto.EventKindAcademic:
		return tx.Model(&sessModel.AcademicSessionModel{}).
			Where("academic_session_id = ?", ms.id).
			Update("academic_session_duration_minutes", newDuration).Error
	default:
		return NewScheduleError(ErrCodeType, "Durasi jenis sesi ini tidak bisa diubah")
	}
}

/* =========================
   Loader & error conversion
   ========================= */

func loadMutableSession(
	tx *gorm.DB,
	acadCtx helperAuth.AcademyContext,
	kind string,
	id uuid.UUID,
) (*mutableSession, error) {
	switch kind {
	case dto.EventKindQuran:
		var row sessModel.QuranSessionModel
		if err := tx.
			Where("quran_session_academy_id = ?", acadCtx.AcademyID).
			Where("quran_session_id = ?", id).
			Take(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewScheduleError(ErrCodeValidation, "Sesi tidak ditemukan")
			}
			return nil, err
		}
		ms := &mutableSession{
			kind:        kind,
			id:          row.QuranSessionID,
			teacherID:   row.QuranSessionTeacherID,
			scheduledAt: row.QuranSessionScheduledAt,
			durationMin: row.QuranSessionDurationMinutes,
			status:      row.QuranSessionStatus,
			movable:     true,
			// trial durasinya tetap 30 menit
			resizable: row.QuranSessionType != sessModel.QuranSessionTrial,
		}
		if row.QuranSessionType == sessModel.QuranSessionIndividual && row.QuranSessionSubscriptionID != nil {
			var sub contModel.QuranSubscriptionModel
			err := tx.
				Where("quran_subscription_id = ?", *row.QuranSessionSubscriptionID).
				Take(&sub).Error
			switch {
			case err == nil:
				v := &IndividualCircleValidator{Subscription: &sub, AcademyCtx: acadCtx}
				ms.windowCheck = v.WithinValidityWindow
			case !errors.Is(err, gorm.ErrRecordNotFound):
				// gagal baca subscription ≠ boleh lewat tanpa cek window
				return nil, err
			}
		}
		return ms, nil

	case dto.EventKindAcademic:
		var row sessModel.AcademicSessionModel
		if err := tx.
			Where("academic_session_academy_id = ?", acadCtx.AcademyID).
			Where("academic_session_id = ?", id).
			Take(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewScheduleError(ErrCodeValidation, "Sesi tidak ditemukan")
			}
			return nil, err
		}
		ms := &mutableSession{
			kind:        kind,
			id:          row.AcademicSessionID,
			teacherID:   row.AcademicSessionTeacherID,
			scheduledAt: row.AcademicSessionScheduledAt,
			durationMin: row.AcademicSessionDurationMinutes,
			status:      row.AcademicSessionStatus,
			movable:     true,
			resizable:   true,
		}
		if row.AcademicSessionSubscriptionID != nil {
			var sub contModel.AcademicSubscriptionModel
			err := tx.
				Where("academic_subscription_id = ?", *row.AcademicSessionSubscriptionID).
				Take(&sub).Error
			switch {
			case err == nil:
				v := &AcademicSubscriptionValidator{Subscription: &sub, AcademyCtx: acadCtx}
				ms.windowCheck = v.WithinValidityWindow
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return nil, err
			}
		}
		return ms, nil

	case dto.EventKindCourse:
		var row sessModel.InteractiveCourseSessionModel
		if err := tx.
			Where("interactive_course_session_academy_id = ?", acadCtx.AcademyID).
			Where("interactive_course_session_id = ?", id).
			Take(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewScheduleError(ErrCodeValidation, "Sesi tidak ditemukan")
			}
			return nil, err
		}
		// jadwal kursus interaktif dikunci: peserta sudah membeli slot waktunya
		return &mutableSession{
			kind:        kind,
			id:          row.InteractiveCourseSessionID,
			teacherID:   row.InteractiveCourseSessionTeacherID,
			scheduledAt: row.InteractiveCourseSessionScheduledAt,
			durationMin: row.InteractiveCourseSessionDurationMinutes,
			status:      row.InteractiveCourseSessionStatus,
			movable:     false,
			resizable:   false,
		}, nil

	default:
		return nil, NewScheduleError(ErrCodeValidation, "Jenis event tidak dikenal")
	}
}

// mutationResultFromErr: business error → revert; race di commit → conflict;
// sisanya → error generik tanpa revert, dengan log diagnostik.
func mutationResultFromErr(op, kind string, sessionID uuid.UUID, err error) dto.MutationResult {
	var se *ScheduleError
	if errors.As(err, &se) {
		return dto.MutationRevert(se.Code, se.Message)
	}
	if isPGConflict(err) {
		return dto.MutationRevert(ErrCodeConflict, "Jadwal bentrok terdeteksi saat menyimpan — coba waktu lain")
	}
	log.Printf("[EventMutation] %s %s/%s gagal: %v", op, kind, sessionID, err)
	return dto.MutationFailure(ErrCodeError, "Terjadi kesalahan tak terduga, silakan coba lagi")
}
