// file: internals/features/calendar/scheduling/service/generate_sessions_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/calendar/scheduling/dto"
	helperAuth "akademiku_backend/internals/helpers/auth"
	"akademiku_backend/internals/helpers/dbtime"

	contModel "akademiku_backend/internals/features/calendar/containers/model"
	sessModel "akademiku_backend/internals/features/calendar/sessions/model"
)

// Durasi tetap sesi trial (menit).
const TrialSessionDurationMinutes = 30

/* =========================
   Session Generator
   ========================= */

type GenerateSessionsService struct {
	DB *gorm.DB
}

func NewGenerateSessionsService(db *gorm.DB) *GenerateSessionsService {
	return &GenerateSessionsService{DB: db}
}

/* =========================
   Slot expansion
   ========================= */

// expandCandidateSlots: deret kandidat FINITE & berurutan. Jalan hari demi
// hari dari StartLocal, ambil hari yang cocok dengan weekday set, sampai
// tepat Count kandidat. Slot yang sudah lewat "now" tidak diproduksi.
// Hasil dalam UTC.
func expandCandidateSlots(rec dto.Recurrence, loc *time.Location, now time.Time) []time.Time {
	if len(rec.Weekdays) == 0 || rec.Count <= 0 {
		return nil
	}

	match := make(map[time.Weekday]bool, len(rec.Weekdays))
	for _, wd := range rec.Weekdays {
		match[wd] = true
	}

	out := make([]time.Time, 0, rec.Count)
	day := dbtime.StartOfDayInLoc(rec.StartLocal, loc)

	// weekday set tidak kosong ⇒ maksimal Count*7 + 7 hari sudah cukup
	for i := 0; i <= rec.Count*7+7 && len(out) < rec.Count; i++ {
		if match[day.Weekday()] {
			cand := dbtime.CombineDateAndTod(day, rec.TimeOfDay, loc)
			if !cand.Before(now) {
				out = append(out, dbtime.ToUTC(cand))
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return out
}

// scheduleBatch: mesin bersama semua jenis container. Per slot: window check
// lalu conflict check; gagal ⇒ dicatat skip dan lanjut ke kandidat berikut
// (posisi natural dipertahankan, tidak digeser maju). persist dipanggil hanya
// untuk slot yang lolos.
func scheduleBatch(
	ctx context.Context,
	tx *gorm.DB,
	acadCtx helperAuth.AcademyContext,
	teacherID uuid.UUID,
	validator ScheduleValidator,
	slots []time.Time,
	durationMinutes int,
	persist func(at time.Time) error,
) (scheduled int, skipped []dto.SkippedSlot, err error) {
	conflict := NewConflictService(tx)

	for _, at := range slots {
		if werr := validator.WithinValidityWindow(at); werr != nil {
			var se *ScheduleError
			reason := "di luar window"
			if errors.As(werr, &se) {
				reason = se.Message
			}
			skipped = append(skipped, dto.SkippedSlot{At: at, Reason: reason})
			continue
		}

		hit, cerr := conflict.HasConflict(ctx, acadCtx.AcademyID, teacherID, at, durationMinutes, nil)
		if cerr != nil {
			return scheduled, skipped, cerr
		}
		if hit {
			skipped = append(skipped, dto.SkippedSlot{At: at, Reason: "bentrok dengan jadwal lain"})
			continue
		}

		if perr := persist(at); perr != nil {
			return scheduled, skipped, perr
		}
		scheduled++
	}
	return scheduled, skipped, nil
}

func ruleSnapshot(rec dto.Recurrence) datatypes.JSONMap {
	days := make([]interface{}, 0, len(rec.Weekdays))
	for _, wd := range rec.Weekdays {
		days = append(days, int(wd))
	}
	return datatypes.JSONMap{
		"days":       days,
		"time":       rec.TimeOfDay.Format("15:04:05"),
		"start_date": rec.StartLocal.Format("2006-01-02"),
		"requested":  rec.Count,
	}
}

func shortCode(prefix string, containerID uuid.UUID, seq int) string {
	return fmt.Sprintf("%s-%s-%02d", prefix, strings.ToUpper(containerID.String()[:8]), seq)
}

// aggregate error kalau tidak ada satupun slot yang berhasil.
func allSkippedError(skipped []dto.SkippedSlot) *ScheduleError {
	return Errf(ErrCodeConflict, "Semua %d kandidat waktu bentrok atau di luar window — tidak ada sesi yang dijadwalkan", len(skipped))
}

/* =========================
   Quran: halaqah privat (individual)
   ========================= */

func (s *GenerateSessionsService) GenerateIndividual(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	circleID uuid.UUID,
	rec dto.Recurrence,
) (*dto.GenerateScheduleResponse, error) {
	resp := &dto.GenerateScheduleResponse{RequestedCount: rec.Count, SkippedSlots: []dto.SkippedSlot{}}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var circle contModel.QuranIndividualCircleModel
		if err := tx.
			Where("quran_individual_circle_academy_id = ?", acadCtx.AcademyID).
			Where("quran_individual_circle_id = ?", circleID).
			Take(&circle).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewScheduleError(ErrCodeValidation, "Halaqah privat tidak ditemukan")
			}
			return err
		}

		var sub contModel.QuranSubscriptionModel
		if err := tx.
			Where("quran_subscription_id = ?", circle.QuranIndividualCircleSubscriptionID).
			Take(&sub).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewScheduleError(ErrCodeSubscription, "Subscription halaqah tidak ditemukan")
			}
			return err
		}

		validator := &IndividualCircleValidator{Circle: &circle, Subscription: &sub, AcademyCtx: acadCtx}
		if err := validator.EligibleForGeneration(); err != nil {
			return err
		}

		// sisa kapasitas = total subscription − sesi yang sudah terpakai
		var used int64
		if err := tx.Model(&sessModel.QuranSessionModel{}).
			Where("quran_session_individual_circle_id = ?", circle.QuranIndividualCircleID).
			Where("quran_session_status IN ?", []sessModel.SessionStatus{
				sessModel.SessionScheduled, sessModel.SessionOngoing, sessModel.SessionCompleted,
			}).
			Count(&used).Error; err != nil {
			return err
		}
		remaining := sub.QuranSubscriptionTotalSessions - int(used)
		if remaining <= 0 {
			return NewScheduleError(ErrCodeSubscription, "Tidak ada sisa sesi pada subscription ini")
		}
		if rec.Count > remaining {
			rec.Count = remaining
			resp.Clamped = true
		}

		// penomoran dari max sequence yang sudah terpakai, bukan hitung baris
		seq, err := maxQuranSequence(tx, "quran_session_individual_circle_id", circle.QuranIndividualCircleID)
		if err != nil {
			return err
		}

		duration := circle.QuranIndividualCircleDefaultDurationMinutes
		if duration <= 0 {
			duration = sub.QuranSubscriptionSessionDurationMinutes
		}
		slots := expandCandidateSlots(rec, acadCtx.Loc, acadCtx.Now())
		snapshot := ruleSnapshot(rec)

		scheduled, skipped, err := scheduleBatch(ctx, tx, acadCtx, circle.QuranIndividualCircleTeacherID, validator, slots, duration,
			func(at time.Time) error {
				seq++
				atCopy := at
				seqCopy := seq
				row := sessModel.QuranSessionModel{
					QuranSessionAcademyID:          acadCtx.AcademyID,
					QuranSessionTeacherID:          circle.QuranIndividualCircleTeacherID,
					QuranSessionStudentID:          &circle.QuranIndividualCircleStudentID,
					QuranSessionIndividualCircleID: &circle.QuranIndividualCircleID,
					QuranSessionSubscriptionID:     &circle.QuranIndividualCircleSubscriptionID,
					QuranSessionType:               sessModel.QuranSessionIndividual,
					QuranSessionCode:               shortCode("IND", circle.QuranIndividualCircleID, seqCopy),
					QuranSessionScheduledAt:        &atCopy,
					QuranSessionDurationMinutes:    duration,
					QuranSessionStatus:             sessModel.SessionScheduled,
					QuranSessionSequence:           &seqCopy,
					QuranSessionRuleSnapshot:       snapshot,
				}
				return tx.Create(&row).Error
			})
		if err != nil {
			return err
		}

		resp.RequestedCount = rec.Count
		resp.ScheduledCount = scheduled
		resp.SkippedSlots = skipped
		if scheduled == 0 && len(skipped) > 0 {
			return allSkippedError(skipped)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

/* =========================
   Quran: halaqah grup
   ========================= */

// GenerateGroup juga meng-upsert pola mingguan ke quran_circle_schedules
// supaya batch berikutnya memakai pola & penomoran yang sama.
func (s *GenerateSessionsService) GenerateGroup(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	circleID uuid.UUID,
	rec dto.Recurrence,
) (*dto.GenerateScheduleResponse, error) {
	resp := &dto.GenerateScheduleResponse{RequestedCount: rec.Count, SkippedSlots: []dto.SkippedSlot{}}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var circle contModel.QuranCircleModel
		if err := tx.
			Where("quran_circle_academy_id = ?", acadCtx.AcademyID).
			Where("quran_circle_id = ?", circleID).
			Take(&circle).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewScheduleError(ErrCodeValidation, "Halaqah tidak ditemukan")
			}
			return err
		}

		validator := &GroupCircleValidator{Circle: &circle}
		if err := validator.EligibleForGeneration(); err != nil {
			return err
		}

		if circle.QuranCircleMonthlySessionsCount <= 0 {
			return NewScheduleError(ErrCodeSubscription, "Halaqah ini tidak punya kuota sesi bulanan")
		}
		if rec.Count > circle.QuranCircleMonthlySessionsCount {
			rec.Count = circle.QuranCircleMonthlySessionsCount
			resp.Clamped = true
		}

		// pola mingguan dipersist; upsert per circle
		sched, err := upsertCircleSchedule(tx, acadCtx, &circle, rec)
		if err != nil {
			return err
		}

		// last_sequence di schedule adalah sumber penomoran; sinkron dengan
		// max(sequence) di tabel sesi kalau ada drift
		seq := sched.QuranCircleScheduleLastSequence
		if maxSeq, err := maxQuranSequence(tx, "quran_session_circle_id", circle.QuranCircleID); err != nil {
			return err
		} else if maxSeq > seq {
			seq = maxSeq
		}

		duration := circle.QuranCircleSessionDurationMinutes
		slots := expandCandidateSlots(rec, acadCtx.Loc, acadCtx.Now())
		snapshot := ruleSnapshot(rec)

		scheduled, skipped, err := scheduleBatch(ctx, tx, acadCtx, circle.QuranCircleTeacherID, validator, slots, duration,
			func(at time.Time) error {
				seq++
				atCopy := at
				seqCopy := seq
				row := sessModel.QuranSessionModel{
					QuranSessionAcademyID:       acadCtx.AcademyID,
					QuranSessionTeacherID:       circle.QuranCircleTeacherID,
					QuranSessionCircleID:        &circle.QuranCircleID,
					QuranSessionType:            sessModel.QuranSessionGroup,
					QuranSessionCode:            shortCode("GRP", circle.QuranCircleID, seqCopy),
					QuranSessionScheduledAt:     &atCopy,
					QuranSessionDurationMinutes: duration,
					QuranSessionStatus:          sessModel.SessionScheduled,
					QuranSessionSequence:        &seqCopy,
					QuranSessionRuleSnapshot:    snapshot,
				}
				return tx.Create(&row).Error
			})
		if err != nil {
			return err
		}

		if err := tx.Model(&contModel.QuranCircleScheduleModel{}).
			Where("quran_circle_schedule_id = ?", sched.QuranCircleScheduleID).
			Update("quran_circle_schedule_last_sequence", seq).Error; err != nil {
			return err
		}

		resp.RequestedCount = rec.Count
		resp.ScheduledCount = scheduled
		resp.SkippedSlots = skipped
		if scheduled == 0 && len(skipped) > 0 {
			return allSkippedError(skipped)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func upsertCircleSchedule(
	tx *gorm.DB,
	acadCtx helperAuth.AcademyContext,
	circle *contModel.QuranCircleModel,
	rec dto.Recurrence,
) (*contModel.QuranCircleScheduleModel, error) {
	days := make([]int64, 0, len(rec.Weekdays))
	for _, wd := range rec.Weekdays {
		days = append(days, int64(wd))
	}

	var sched contModel.QuranCircleScheduleModel
	err := tx.
		Where("quran_circle_schedule_circle_id = ?", circle.QuranCircleID).
		Take(&sched).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		sched = contModel.QuranCircleScheduleModel{
			QuranCircleScheduleAcademyID:              acadCtx.AcademyID,
			QuranCircleScheduleCircleID:               circle.QuranCircleID,
			QuranCircleScheduleTeacherID:              circle.QuranCircleTeacherID,
			QuranCircleScheduleWeekdays:               pq.Int64Array(days),
			QuranCircleScheduleTime:                   rec.TimeOfDay,
			QuranCircleScheduleDefaultDurationMinutes: circle.QuranCircleSessionDurationMinutes,
			QuranCircleScheduleTimezone:               acadCtx.TZName,
			QuranCircleScheduleIsActive:               true,
		}
		if err := tx.Create(&sched).Error; err != nil {
			return nil, err
		}
		return &sched, nil
	case err != nil:
		return nil, err
	}

	updates := map[string]interface{}{
		"quran_circle_schedule_weekdays":  pq.Int64Array(days),
		"quran_circle_schedule_time":      rec.TimeOfDay,
		"quran_circle_schedule_timezone":  acadCtx.TZName,
		"quran_circle_schedule_is_active": true,
	}
	if err := tx.Model(&contModel.QuranCircleScheduleModel{}).
		Where("quran_circle_schedule_id = ?", sched.QuranCircleScheduleID).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	return &sched, nil
}

/* =========================
   Quran: trial (slot tunggal)
   ========================= */

// ScheduleTrial: satu slot, durasi tetap 30 menit, dan flip status request
// pending → scheduled dalam transaksi yang sama.
func (s *GenerateSessionsService) ScheduleTrial(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	trialID uuid.UUID,
	at time.Time,
) (*dto.GenerateScheduleResponse, error) {
	resp := &dto.GenerateScheduleResponse{RequestedCount: 1, SkippedSlots: []dto.SkippedSlot{}}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req contModel.QuranTrialRequestModel
		if err := tx.
			Where("quran_trial_request_academy_id = ?", acadCtx.AcademyID).
			Where("quran_trial_request_id = ?", trialID).
			Take(&req).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewScheduleError(ErrCodeValidation, "Trial request tidak ditemukan")
			}
			return err
		}

		validator := &TrialValidator{Request: &req}
		if err := validator.EligibleForGeneration(); err != nil {
			return err
		}

		if at.Before(acadCtx.Now()) {
			return NewScheduleError(ErrCodePast, "Waktu trial sudah lewat")
		}

		conflict := NewConflictService(tx)
		hit, err := conflict.HasConflict(ctx, acadCtx.AcademyID, req.QuranTrialRequestTeacherID, at, TrialSessionDurationMinutes, nil)
		if err != nil {
			return err
		}
		if hit {
			return NewScheduleError(ErrCodeConflict, "Guru sudah punya jadwal di waktu tersebut")
		}

		atUTC := dbtime.ToUTC(at)
		title := "Sesi Trial: " + req.QuranTrialRequestStudentName
		row := sessModel.QuranSessionModel{
			QuranSessionAcademyID:       acadCtx.AcademyID,
			QuranSessionTeacherID:       req.QuranTrialRequestTeacherID,
			QuranSessionTrialRequestID:  &req.QuranTrialRequestID,
			QuranSessionType:            sessModel.QuranSessionTrial,
			QuranSessionCode:            shortCode("TRL", req.QuranTrialRequestID, 1),
			QuranSessionTitle:           &title,
			QuranSessionScheduledAt:     &atUTC,
			QuranSessionDurationMinutes: TrialSessionDurationMinutes,
			QuranSessionStatus:          sessModel.SessionScheduled,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		if err := tx.Model(&contModel.QuranTrialRequestModel{}).
			Where("quran_trial_request_id = ?", req.QuranTrialRequestID).
			Updates(map[string]interface{}{
				"quran_trial_request_status":       contModel.TrialScheduled,
				"quran_trial_request_scheduled_at": atUTC,
			}).Error; err != nil {
			return err
		}

		resp.ScheduledCount = 1
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

/* =========================
   Academic: les privat (subscription)
   ========================= */

func (s *GenerateSessionsService) GenerateAcademic(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	subscriptionID uuid.UUID,
	rec dto.Recurrence,
) (*dto.GenerateScheduleResponse, error) {
	resp := &dto.GenerateScheduleResponse{RequestedCount: rec.Count, SkippedSlots: []dto.SkippedSlot{}}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sub contModel.AcademicSubscriptionModel
		if err := tx.
			Where("academic_subscription_academy_id = ?", acadCtx.AcademyID).
			Where("academic_subscription_id = ?", subscriptionID).
			Take(&sub).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewScheduleError(ErrCodeValidation, "Subscription tidak ditemukan")
			}
			return err
		}

		validator := &AcademicSubscriptionValidator{Subscription: &sub, AcademyCtx: acadCtx}
		if err := validator.EligibleForGeneration(); err != nil {
			return err
		}

		var used int64
		if err := tx.Model(&sessModel.AcademicSessionModel{}).
			Where("academic_session_subscription_id = ?", sub.AcademicSubscriptionID).
			Where("academic_session_status IN ?", []sessModel.SessionStatus{
				sessModel.SessionScheduled, sessModel.SessionOngoing, sessModel.SessionCompleted,
			}).
			Count(&used).Error; err != nil {
			return err
		}
		remaining := sub.AcademicSubscriptionTotalSessions - int(used)
		if remaining <= 0 {
			return NewScheduleError(ErrCodeSubscription, "Tidak ada sisa sesi pada subscription ini")
		}
		if rec.Count > remaining {
			rec.Count = remaining
			resp.Clamped = true
		}

		var maxSeq int
		if err := tx.Model(&sessModel.AcademicSessionModel{}).
			Where("academic_session_subscription_id = ?", sub.AcademicSubscriptionID).
			Select("COALESCE(MAX(academic_session_sequence), 0)").
			Scan(&maxSeq).Error; err != nil {
			return err
		}
		seq := maxSeq

		duration := sub.AcademicSubscriptionSessionDurationMinutes
		slots := expandCandidateSlots(rec, acadCtx.Loc, acadCtx.Now())

		scheduled, skipped, err := scheduleBatch(ctx, tx, acadCtx, sub.AcademicSubscriptionTeacherID, validator, slots, duration,
			func(at time.Time) error {
				seq++
				atCopy := at
				seqCopy := seq
				row := sessModel.AcademicSessionModel{
					AcademicSessionAcademyID:       acadCtx.AcademyID,
					AcademicSessionTeacherID:       sub.AcademicSubscriptionTeacherID,
					AcademicSessionStudentID:       &sub.AcademicSubscriptionStudentID,
					AcademicSessionSubscriptionID:  &sub.AcademicSubscriptionID,
					AcademicSessionCode:            shortCode("ACD", sub.AcademicSubscriptionID, seqCopy),
					AcademicSessionTitle:           sub.AcademicSubscriptionSubject,
					AcademicSessionScheduledAt:     &atCopy,
					AcademicSessionDurationMinutes: duration,
					AcademicSessionStatus:          sessModel.SessionScheduled,
					AcademicSessionSequence:        &seqCopy,
				}
				return tx.Create(&row).Error
			})
		if err != nil {
			return err
		}

		resp.RequestedCount = rec.Count
		resp.ScheduledCount = scheduled
		resp.SkippedSlots = skipped
		if scheduled == 0 && len(skipped) > 0 {
			return allSkippedError(skipped)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

/* =========================
   Academic: kursus interaktif
   ========================= */

func (s *GenerateSessionsService) GenerateCourse(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	courseID uuid.UUID,
	rec dto.Recurrence,
) (*dto.GenerateScheduleResponse, error) {
	resp := &dto.GenerateScheduleResponse{RequestedCount: rec.Count, SkippedSlots: []dto.SkippedSlot{}}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course contModel.InteractiveCourseModel
		if err := tx.
			Where("interactive_course_academy_id = ?", acadCtx.AcademyID).
			Where("interactive_course_id = ?", courseID).
			Take(&course).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NewScheduleError(ErrCodeValidation, "Kursus tidak ditemukan")
			}
			return err
		}

		validator := &InteractiveCourseValidator{Course: &course, AcademyCtx: acadCtx}
		if err := validator.EligibleForGeneration(); err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&sessModel.InteractiveCourseSessionModel{}).
			Where("interactive_course_session_course_id = ?", course.InteractiveCourseID).
			Where("interactive_course_session_status <> ?", sessModel.SessionCancelled).
			Count(&existing).Error; err != nil {
			return err
		}
		remaining := course.InteractiveCourseTotalSessions - int(existing)
		if remaining <= 0 {
			return NewScheduleError(ErrCodeCourse, "Semua slot sesi kursus ini sudah terisi")
		}
		if rec.Count > remaining {
			rec.Count = remaining
			resp.Clamped = true
		}

		var maxSeq int
		if err := tx.Model(&sessModel.InteractiveCourseSessionModel{}).
			Where("interactive_course_session_course_id = ?", course.InteractiveCourseID).
			Select("COALESCE(MAX(interactive_course_session_sequence), 0)").
			Scan(&maxSeq).Error; err != nil {
			return err
		}
		seq := maxSeq

		duration := course.InteractiveCourseSessionDurationMinutes
		slots := expandCandidateSlots(rec, acadCtx.Loc, acadCtx.Now())

		scheduled, skipped, err := scheduleBatch(ctx, tx, acadCtx, course.InteractiveCourseTeacherID, validator, slots, duration,
			func(at time.Time) error {
				seq++
				atCopy := at
				title := fmt.Sprintf("%s — Pertemuan %d", course.InteractiveCourseName, seq)
				row := sessModel.InteractiveCourseSessionModel{
					InteractiveCourseSessionAcademyID:       acadCtx.AcademyID,
					InteractiveCourseSessionCourseID:        course.InteractiveCourseID,
					InteractiveCourseSessionTeacherID:       course.InteractiveCourseTeacherID,
					InteractiveCourseSessionTitle:           &title,
					InteractiveCourseSessionSequence:        seq,
					InteractiveCourseSessionScheduledAt:     &atCopy,
					InteractiveCourseSessionDurationMinutes: duration,
					InteractiveCourseSessionStatus:          sessModel.SessionScheduled,
				}
				return tx.Create(&row).Error
			})
		if err != nil {
			return err
		}

		resp.RequestedCount = rec.Count
		resp.ScheduledCount = scheduled
		resp.SkippedSlots = skipped
		if scheduled == 0 && len(skipped) > 0 {
			return allSkippedError(skipped)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

/* =========================
   Shared SQL helpers
   ========================= */

// maxQuranSequence: max(quran_session_sequence) untuk satu container.
func maxQuranSequence(tx *gorm.DB, containerColumn string, containerID uuid.UUID) (int, error) {
	var maxSeq int
	err := tx.Model(&sessModel.QuranSessionModel{}).
		Where(containerColumn+" = ?", containerID).
		Select("COALESCE(MAX(quran_session_sequence), 0)").
		Scan(&maxSeq).Error
	return maxSeq, err
}
