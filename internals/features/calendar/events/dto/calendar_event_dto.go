// file: internals/features/calendar/events/dto/calendar_event_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEvent: representasi seragam semua jenis sesi untuk frontend
// kalender. ID composite "kind:uuid" — dipakai balik oleh endpoint
// move/resize.
type CalendarEvent struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title"`

	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	Status string `json:"status"`
	Color  string `json:"color"`

	// joinable: tombol "Masuk Kelas" aktif; cancelable: masih boleh dibatalkan
	Joinable   bool `json:"joinable"`
	Cancelable bool `json:"cancelable"`

	TeacherID   uuid.UUID  `json:"teacher_id"`
	StudentID   *uuid.UUID `json:"student_id,omitempty"`
	ContainerID *uuid.UUID `json:"container_id,omitempty"`

	MeetingURL *string `json:"meeting_url,omitempty"`
}
