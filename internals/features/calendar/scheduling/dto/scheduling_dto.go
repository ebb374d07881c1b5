// file: internals/features/calendar/scheduling/dto/scheduling_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"akademiku_backend/internals/helpers/dbtime"
)

/* =========================
   Container kinds (request payload)
   ========================= */

const (
	ContainerGroup             = "group"
	ContainerIndividual        = "individual"
	ContainerTrial             = "trial"
	ContainerPrivateLesson     = "private_lesson"
	ContainerInteractiveCourse = "interactive_course"
)

/* =========================
   Generate request / response
   ========================= */

// GenerateScheduleRequest: deskripsi recurrence mentah dari client.
// days = hari dalam minggu (0=Minggu..6=Sabtu); time = "HH:MM";
// start_date opsional "YYYY-MM-DD" (default: hari ini di zona academy).
type GenerateScheduleRequest struct {
	ContainerKind string    `json:"container_kind" validate:"required,oneof=group individual trial private_lesson interactive_course"`
	ContainerID   uuid.UUID `json:"container_id" validate:"required"`

	Days         []int   `json:"days" validate:"required,min=1,max=7,dive,gte=0,lte=6"`
	Time         string  `json:"time" validate:"required"`
	StartDate    *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	SessionCount int     `json:"session_count" validate:"required,gte=1,lte=60"`
}

// Recurrence: bentuk ter-parse yang dikonsumsi generator.
type Recurrence struct {
	Weekdays   []time.Weekday
	TimeOfDay  dbtime.Tod
	StartLocal time.Time // awal pencarian slot, sudah di zona academy
	Count      int
}

// ToRecurrence mem-parse request ke Recurrence di zona loc.
// now dipakai sebagai default start_date.
func (r *GenerateScheduleRequest) ToRecurrence(loc *time.Location, now time.Time) (Recurrence, error) {
	tod, err := dbtime.Parse(strings.TrimSpace(r.Time))
	if err != nil {
		return Recurrence{}, fmt.Errorf("format time tidak valid (harus HH:MM): %w", err)
	}

	start := now.In(loc)
	if r.StartDate != nil && strings.TrimSpace(*r.StartDate) != "" {
		d, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(*r.StartDate), loc)
		if err != nil {
			return Recurrence{}, fmt.Errorf("format start_date tidak valid (harus YYYY-MM-DD): %w", err)
		}
		start = d
	}

	wd := make([]time.Weekday, 0, len(r.Days))
	seen := map[int]bool{}
	for _, d := range r.Days {
		if seen[d] {
			continue
		}
		seen[d] = true
		wd = append(wd, time.Weekday(d))
	}

	return Recurrence{
		Weekdays:   wd,
		TimeOfDay:  tod,
		StartLocal: start,
		Count:      r.SessionCount,
	}, nil
}

// SkippedSlot: kandidat yang gagal (bentrok / di luar window) + alasannya.
type SkippedSlot struct {
	At     time.Time `json:"at"`
	Reason string    `json:"reason"`
}

// GenerateScheduleResponse: laporan batch untuk caller.
type GenerateScheduleResponse struct {
	RequestedCount int           `json:"requested_count"`
	ScheduledCount int           `json:"scheduled_count"`
	SkippedSlots   []SkippedSlot `json:"skipped_slots"`
	Clamped        bool          `json:"clamped"` // requested dipangkas ke sisa kapasitas
}

/* =========================
   Mutation (move / resize)
   ========================= */

// Composite event id di kalender: "<kind>:<uuid>" (quran | academic | course).
const (
	EventKindQuran    = "quran"
	EventKindAcademic = "academic"
	EventKindCourse   = "course"
)

func FormatCalendarEventID(kind string, id uuid.UUID) string {
	return kind + ":" + id.String()
}

func ParseCalendarEventID(s string) (string, uuid.UUID, error) {
	kind, rawID, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return "", uuid.Nil, fmt.Errorf("event_id harus berformat kind:uuid")
	}
	switch kind {
	case EventKindQuran, EventKindAcademic, EventKindCourse:
	default:
		return "", uuid.Nil, fmt.Errorf("jenis event %q tidak dikenal", kind)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("uuid event tidak valid: %w", err)
	}
	return kind, id, nil
}

// MoveEventRequest: drag di kalender — start & end baru (RFC3339).
type MoveEventRequest struct {
	EventID  string    `json:"event_id" validate:"required"`
	NewStart time.Time `json:"new_start" validate:"required"`
	NewEnd   time.Time `json:"new_end" validate:"required"`
}

// ResizeEventRequest: tarik ujung event — durasi baru dari selisih start/end.
type ResizeEventRequest struct {
	EventID  string    `json:"event_id" validate:"required"`
	NewStart time.Time `json:"new_start" validate:"required"`
	NewEnd   time.Time `json:"new_end" validate:"required"`
}

// MutationResult diserialisasi apa adanya ke frontend kalender;
// revert=true artinya perubahan optimistik di UI harus dibatalkan.
type MutationResult struct {
	Success   bool   `json:"success"`
	Revert    bool   `json:"revert"`
	Message   string `json:"message"`
	ErrorType string `json:"error_type,omitempty"`
}

func MutationSuccess(message string) MutationResult {
	return MutationResult{Success: true, Message: message}
}

// MutationRevert: pelanggaran business rule — UI harus revert.
func MutationRevert(errorType, message string) MutationResult {
	return MutationResult{Success: false, Revert: true, Message: message, ErrorType: errorType}
}

// MutationFailure: kegagalan tak terduga — tanpa revert, cukup pesan.
func MutationFailure(errorType, message string) MutationResult {
	return MutationResult{Success: false, Revert: false, Message: message, ErrorType: errorType}
}
