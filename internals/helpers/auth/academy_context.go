// file: internals/helpers/auth/academy_context.go
package helperAuth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/configs"
	acadModel "akademiku_backend/internals/features/academies/model"
	"akademiku_backend/internals/helpers/dbtime"
)

// AcademyContext dibawa eksplisit ke semua service scheduling —
// tidak ada state global "academy aktif".
type AcademyContext struct {
	AcademyID uuid.UUID
	TZName    string
	Loc       *time.Location
}

// Now = "sekarang" di zona waktu academy.
func (a AcademyContext) Now() time.Time {
	return time.Now().In(a.Loc)
}

func NewAcademyContext(academyID uuid.UUID, tzName string) AcademyContext {
	loc := dbtime.LoadLocationOrFallback(tzName, configs.DefaultTimezone, 3)
	if tzName == "" {
		tzName = configs.DefaultTimezone
	}
	return AcademyContext{AcademyID: academyID, TZName: tzName, Loc: loc}
}

// ResolveAcademyContext: academy_id dari token + timezone dari row academies.
func ResolveAcademyContext(c *fiber.Ctx, db *gorm.DB) (AcademyContext, error) {
	academyID, err := GetAcademyIDFromToken(c)
	if err != nil {
		return AcademyContext{}, err
	}

	var row acadModel.AcademyModel
	if err := db.WithContext(c.UserContext()).
		Select("academy_id", "academy_timezone", "academy_is_active").
		Where("academy_id = ?", academyID).
		Take(&row).Error; err != nil {
		return AcademyContext{}, fiber.NewError(fiber.StatusNotFound, "Academy tidak ditemukan")
	}
	if !row.AcademyIsActive {
		return AcademyContext{}, fiber.NewError(fiber.StatusForbidden, "Academy sedang nonaktif")
	}

	return NewAcademyContext(row.AcademyID, row.AcademyTimezone), nil
}
