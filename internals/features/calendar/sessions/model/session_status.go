// file: internals/features/calendar/sessions/model/session_status.go
package model

// SessionStatus merepresentasikan enum session_status_enum di Postgres.
type SessionStatus string

const (
	SessionUnscheduled SessionStatus = "unscheduled"
	SessionScheduled   SessionStatus = "scheduled"
	SessionOngoing     SessionStatus = "ongoing"
	SessionCompleted   SessionStatus = "completed"
	SessionCancelled   SessionStatus = "cancelled"
	SessionAbsent      SessionStatus = "absent"
)

// IsFinal: status terminal — tidak boleh ada mutasi lagi.
func (s SessionStatus) IsFinal() bool {
	switch s {
	case SessionCompleted, SessionCancelled, SessionAbsent:
		return true
	}
	return false
}

// CanReschedule: hanya sesi yang belum berjalan yang boleh dipindah.
func (s SessionStatus) CanReschedule() bool {
	switch s {
	case SessionUnscheduled, SessionScheduled:
		return true
	}
	return false
}

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionUnscheduled, SessionScheduled, SessionOngoing,
		SessionCompleted, SessionCancelled, SessionAbsent:
		return true
	}
	return false
}
