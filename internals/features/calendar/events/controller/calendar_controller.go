// file: internals/features/calendar/events/controller/calendar_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	svc "akademiku_backend/internals/features/calendar/events/service"
	helper "akademiku_backend/internals/helpers"
	helperAuth "akademiku_backend/internals/helpers/auth"
)

type CalendarController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *CalendarController {
	return &CalendarController{DB: db}
}

/* =========================
   GET /calendar/events?from=&to=[&student_id=]
   ========================= */

func (ctl *CalendarController) GetCalendarEvents(c *fiber.Ctx) error {
	acadCtx, err := helperAuth.ResolveAcademyContext(c, ctl.DB)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "User tidak dikenal")
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "Role tidak dikenal")
	}

	from, to, err := parseRange(c, acadCtx)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	viewer := svc.ViewerScope{Role: role, UserID: userID}
	if role == constants.RoleParent {
		// relasi orang tua ↔ anak diverifikasi layer otorisasi di depan;
		// di sini cukup terima student_id yang sudah lolos
		raw := strings.TrimSpace(c.Query("student_id"))
		if raw == "" {
			return helper.JsonError(c, http.StatusBadRequest, "student_id wajib untuk akun orang tua")
		}
		sid, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "student_id tidak valid")
		}
		viewer.StudentID = &sid
	}

	events, err := svc.NewCalendarService(ctl.DB).GetEvents(c.UserContext(), acadCtx, viewer, from, to)
	if err != nil {
		log.Printf("[Calendar.Events] gagal: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memuat kalender")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"from":   from,
		"to":     to,
		"events": events,
	})
}

// parseRange: ?from & ?to "YYYY-MM-DD" di zona academy, default minggu ini
// sampai 30 hari ke depan. Batas "to" inklusif seharian.
func parseRange(c *fiber.Ctx, acadCtx helperAuth.AcademyContext) (time.Time, time.Time, error) {
	now := acadCtx.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, acadCtx.Loc)
	to := from.AddDate(0, 0, 30)

	if s := strings.TrimSpace(c.Query("from")); s != "" {
		d, err := time.ParseInLocation("2006-01-02", s, acadCtx.Loc)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("format from tidak valid (YYYY-MM-DD)")
		}
		from = d
	}
	if s := strings.TrimSpace(c.Query("to")); s != "" {
		d, err := time.ParseInLocation("2006-01-02", s, acadCtx.Loc)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("format to tidak valid (YYYY-MM-DD)")
		}
		to = d.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, errors.New("rentang tanggal tidak valid")
	}
	return from.UTC(), to.UTC(), nil
}
