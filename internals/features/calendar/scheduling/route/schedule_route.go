// file: internals/features/calendar/scheduling/route/schedule_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedCtl "akademiku_backend/internals/features/calendar/scheduling/controller"
	"akademiku_backend/internals/middlewares"
)

// ScheduleTeacherRoutes: semua endpoint penjadwalan guru (group /api/t).
// Guard role ada di controller (strategi per role), bukan di route.
func ScheduleTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctl := schedCtl.New(db, validator.New())

	grp := teacher.Group("/schedules")

	// generate dibatasi lebih ketat — satu request bisa menulis banyak baris
	grp.Post("/generate", middlewares.GenerateRateLimiter(), ctl.GenerateSchedule)

	grp.Patch("/events/move", ctl.MoveEvent)
	grp.Patch("/events/resize", ctl.ResizeEvent)

	grp.Get("/items", ctl.ListSchedulableItems)
	grp.Get("/sessions", ctl.ListSessions)
	grp.Get("/stats", ctl.ScheduleStats)
}
