// file: internals/features/calendar/events/route/calendar_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calCtl "akademiku_backend/internals/features/calendar/events/controller"
)

// CalendarUserRoutes: feed kalender untuk semua role (group /api/u).
func CalendarUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := calCtl.New(db)

	grp := user.Group("/calendar")
	grp.Get("/events", ctl.GetCalendarEvents)
}
