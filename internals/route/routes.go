// file: internals/route/routes.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "akademiku_backend/internals/middlewares/auth"

	calendarRoute "akademiku_backend/internals/features/calendar/events/route"
	schedulingRoute "akademiku_backend/internals/features/calendar/scheduling/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== TEACHER (/api/t) =====================
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t", authMiddleware.AuthMiddleware())
	schedulingRoute.ScheduleTeacherRoutes(teacher, db)

	// ===================== USER (/api/u) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	calendarRoute.CalendarUserRoutes(user, db)
}
