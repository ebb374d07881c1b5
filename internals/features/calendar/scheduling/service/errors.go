// file: internals/features/calendar/scheduling/service/errors.go
package service

import "fmt"

/* =========================
   Kode error scheduling
   ========================= */

// Kode kategori yang dipakai seragam oleh generator & mutation handler.
// Frontend memutuskan revert/tampilkan pesan berdasarkan kode ini.
const (
	ErrCodeType         = "type"         // operasi tidak diizinkan untuk jenis sesi ini
	ErrCodeStatus       = "status"       // status sesi tidak mengizinkan operasi
	ErrCodePast         = "past"         // waktu target sudah lewat
	ErrCodeSubscription = "subscription" // di luar window / eligibility subscription
	ErrCodeCourse       = "course"       // di luar window / eligibility course
	ErrCodeConflict     = "conflict"     // guru double-booking
	ErrCodeDuration     = "duration"     // durasi resize di luar batas
	ErrCodeValidation   = "validation"   // input tidak valid
	ErrCodeError        = "error"        // kegagalan tak terduga
)

// Batas durasi resize (menit).
const (
	MinSessionDurationMinutes = 15
	MaxSessionDurationMinutes = 180
)

// ScheduleError: business-rule violation dengan kode kategori.
// Semua pelanggaran yang "diharapkan" dikonversi ke tipe ini —
// error mentah hanya boleh lolos untuk kegagalan infrastruktur.
type ScheduleError struct {
	Code    string
	Message string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewScheduleError(code, message string) *ScheduleError {
	return &ScheduleError{Code: code, Message: message}
}

func Errf(code, format string, args ...interface{}) *ScheduleError {
	return &ScheduleError{Code: code, Message: fmt.Sprintf(format, args...)}
}
