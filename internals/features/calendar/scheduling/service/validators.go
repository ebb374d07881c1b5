// file: internals/features/calendar/scheduling/service/validators.go
package service

import (
	"time"

	helperAuth "akademiku_backend/internals/helpers/auth"
	"akademiku_backend/internals/helpers/dbtime"

	contModel "akademiku_backend/internals/features/calendar/containers/model"
)

/* =========================
   Validity window & validator
   ========================= */

// ValidityWindow: bentuk seragam untuk window container.
// Start/End nil = tidak dibatasi di sisi itu.
type ValidityWindow struct {
	Start *time.Time
	End   *time.Time
}

// ScheduleValidator dipegang satu per jenis container. Closed set:
// group circle, individual circle, trial, academic subscription,
// interactive course.
type ScheduleValidator interface {
	// EligibleForGeneration: boleh tidaknya container ini menerima sesi baru.
	EligibleForGeneration() error
	// WithinValidityWindow: apakah t masuk window container (t dalam UTC).
	WithinValidityWindow(t time.Time) error
	// Window: window mentah untuk keperluan pelaporan/logging.
	Window() ValidityWindow
}

const dateFmt = "2006-01-02"

/* =========================
   Group circle
   ========================= */

// Halaqah grup: tidak punya window tanggal, hanya flag aktif.
type GroupCircleValidator struct {
	Circle *contModel.QuranCircleModel
}

func (v *GroupCircleValidator) EligibleForGeneration() error {
	if v.Circle == nil {
		return NewScheduleError(ErrCodeSubscription, "Halaqah tidak ditemukan")
	}
	if !v.Circle.QuranCircleStatus {
		return NewScheduleError(ErrCodeSubscription, "Halaqah sedang tidak aktif")
	}
	return nil
}

func (v *GroupCircleValidator) WithinValidityWindow(t time.Time) error { return nil }

func (v *GroupCircleValidator) Window() ValidityWindow { return ValidityWindow{} }

/* =========================
   Individual circle (via subscription)
   ========================= */

// Halaqah privat: window & status ikut quran_subscriptions (batas instant).
type IndividualCircleValidator struct {
	Circle       *contModel.QuranIndividualCircleModel
	Subscription *contModel.QuranSubscriptionModel
	AcademyCtx   helperAuth.AcademyContext
}

func (v *IndividualCircleValidator) EligibleForGeneration() error {
	if v.Circle == nil || v.Subscription == nil {
		return NewScheduleError(ErrCodeSubscription, "Subscription tidak ditemukan")
	}
	if v.Subscription.QuranSubscriptionStatus != contModel.SubscriptionActive {
		return Errf(ErrCodeSubscription, "Subscription berstatus %s, tidak bisa dijadwalkan", v.Subscription.QuranSubscriptionStatus)
	}
	return nil
}

func (v *IndividualCircleValidator) WithinValidityWindow(t time.Time) error {
	return instantWindowCheck(v.Window(), t, v.AcademyCtx.Loc, ErrCodeSubscription, "subscription")
}

func (v *IndividualCircleValidator) Window() ValidityWindow {
	if v.Subscription == nil {
		return ValidityWindow{}
	}
	return ValidityWindow{
		Start: v.Subscription.QuranSubscriptionStartsAt,
		End:   v.Subscription.QuranSubscriptionEndsAt,
	}
}

/* =========================
   Trial
   ========================= */

// Trial: tanpa window; hanya request berstatus pending yang boleh dijadwalkan.
type TrialValidator struct {
	Request *contModel.QuranTrialRequestModel
}

func (v *TrialValidator) EligibleForGeneration() error {
	if v.Request == nil {
		return NewScheduleError(ErrCodeSubscription, "Trial request tidak ditemukan")
	}
	if v.Request.QuranTrialRequestStatus != contModel.TrialPending {
		return Errf(ErrCodeSubscription, "Trial request berstatus %s, hanya pending yang bisa dijadwalkan", v.Request.QuranTrialRequestStatus)
	}
	return nil
}

func (v *TrialValidator) WithinValidityWindow(t time.Time) error { return nil }

func (v *TrialValidator) Window() ValidityWindow { return ValidityWindow{} }

/* =========================
   Academic subscription
   ========================= */

type AcademicSubscriptionValidator struct {
	Subscription *contModel.AcademicSubscriptionModel
	AcademyCtx   helperAuth.AcademyContext
}

func (v *AcademicSubscriptionValidator) EligibleForGeneration() error {
	if v.Subscription == nil {
		return NewScheduleError(ErrCodeSubscription, "Subscription tidak ditemukan")
	}
	if v.Subscription.AcademicSubscriptionStatus != contModel.SubscriptionActive {
		return Errf(ErrCodeSubscription, "Subscription berstatus %s, tidak bisa dijadwalkan", v.Subscription.AcademicSubscriptionStatus)
	}
	return nil
}

func (v *AcademicSubscriptionValidator) WithinValidityWindow(t time.Time) error {
	return instantWindowCheck(v.Window(), t, v.AcademyCtx.Loc, ErrCodeSubscription, "subscription")
}

func (v *AcademicSubscriptionValidator) Window() ValidityWindow {
	if v.Subscription == nil {
		return ValidityWindow{}
	}
	return ValidityWindow{
		Start: v.Subscription.AcademicSubscriptionStartsAt,
		End:   v.Subscription.AcademicSubscriptionEndsAt,
	}
}

/* =========================
   Interactive course
   ========================= */

// Kursus interaktif: start_date/end_date diperlakukan sebagai batas
// SEHARIAN PENUH di zona academy (beda dengan subscription yang pakai instant).
type InteractiveCourseValidator struct {
	Course     *contModel.InteractiveCourseModel
	AcademyCtx helperAuth.AcademyContext
}

func (v *InteractiveCourseValidator) EligibleForGeneration() error {
	if v.Course == nil {
		return NewScheduleError(ErrCodeCourse, "Kursus tidak ditemukan")
	}
	if !v.Course.InteractiveCourseIsPublished {
		return NewScheduleError(ErrCodeCourse, "Kursus belum dipublikasikan")
	}
	return nil
}

func (v *InteractiveCourseValidator) WithinValidityWindow(t time.Time) error {
	if v.Course == nil {
		return NewScheduleError(ErrCodeCourse, "Kursus tidak ditemukan")
	}
	loc := v.AcademyCtx.Loc

	if sd := v.Course.InteractiveCourseStartDate; sd != nil {
		dayStart := dbtime.StartOfDayInLoc(*sd, loc)
		if t.Before(dayStart) {
			return Errf(ErrCodeCourse, "Jadwal sebelum tanggal mulai kursus (%s)", dayStart.Format(dateFmt))
		}
	}
	if ed := v.Course.InteractiveCourseEndDate; ed != nil {
		// inklusif sampai akhir hari end_date
		dayEnd := dbtime.StartOfDayInLoc(*ed, loc).AddDate(0, 0, 1)
		if !t.Before(dayEnd) {
			return Errf(ErrCodeCourse, "Jadwal melewati tanggal selesai kursus (%s)", dbtime.StartOfDayInLoc(*ed, loc).Format(dateFmt))
		}
	}
	return nil
}

func (v *InteractiveCourseValidator) Window() ValidityWindow {
	if v.Course == nil {
		return ValidityWindow{}
	}
	return ValidityWindow{
		Start: v.Course.InteractiveCourseStartDate,
		End:   v.Course.InteractiveCourseEndDate,
	}
}

/* =========================
   Shared window arithmetic
   ========================= */

// instantWindowCheck: batas instant (subscription). Batas start & end inklusif.
func instantWindowCheck(w ValidityWindow, t time.Time, loc *time.Location, code, label string) error {
	if w.Start != nil && t.Before(*w.Start) {
		return Errf(code, "Jadwal sebelum masa berlaku %s (mulai %s)", label, w.Start.In(loc).Format(dateFmt))
	}
	if w.End != nil && t.After(*w.End) {
		return Errf(code, "Jadwal melewati masa berlaku %s (berakhir %s)", label, w.End.In(loc).Format(dateFmt))
	}
	return nil
}
