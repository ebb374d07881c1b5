// file: internals/features/calendar/scheduling/controller/schedule_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "akademiku_backend/internals/helpers"
	helperAuth "akademiku_backend/internals/helpers/auth"

	d "akademiku_backend/internals/features/calendar/scheduling/dto"
	svc "akademiku_backend/internals/features/calendar/scheduling/service"
	sessModel "akademiku_backend/internals/features/calendar/sessions/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ScheduleController {
	return &ScheduleController{DB: db, Validate: v}
}

// mapping kode business error → HTTP status untuk endpoint generate
func statusForScheduleError(code string) int {
	switch code {
	case svc.ErrCodeConflict, svc.ErrCodeStatus:
		return http.StatusConflict
	case svc.ErrCodeSubscription, svc.ErrCodeCourse, svc.ErrCodePast:
		return http.StatusUnprocessableEntity
	case svc.ErrCodeValidation, svc.ErrCodeDuration, svc.ErrCodeType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (ctl *ScheduleController) resolveTeacherScope(c *fiber.Ctx) (helperAuth.AcademyContext, svc.ScheduleStrategy, error) {
	if !helperAuth.IsTeacher(c) {
		return helperAuth.AcademyContext{}, nil, fiber.NewError(fiber.StatusForbidden, "Hanya guru yang boleh mengakses fitur penjadwalan")
	}
	acadCtx, err := helperAuth.ResolveAcademyContext(c, ctl.DB)
	if err != nil {
		return helperAuth.AcademyContext{}, nil, err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return helperAuth.AcademyContext{}, nil, err
	}
	strategy, err := svc.StrategyForRole(ctl.DB, role)
	if err != nil {
		return helperAuth.AcademyContext{}, nil, fiber.NewError(fiber.StatusForbidden, err.Error())
	}
	return acadCtx, strategy, nil
}

/* =========================
   POST /generate
   ========================= */

func (ctl *ScheduleController) GenerateSchedule(c *fiber.Ctx) error {
	acadCtx, strategy, err := ctl.resolveTeacherScope(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "User tidak dikenal")
	}

	var req d.GenerateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Schedule.Generate] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	resp, err := strategy.Generate(c.UserContext(), acadCtx, teacherID, req)
	if err != nil {
		var se *svc.ScheduleError
		if errors.As(err, &se) {
			return helper.JsonError(c, statusForScheduleError(se.Code), se.Message)
		}
		log.Printf("[Schedule.Generate] gagal: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal membuat jadwal")
	}

	return helper.JsonCreated(c, "Jadwal berhasil dibuat", resp)
}

/* =========================
   PATCH /events/move & /events/resize
   ========================= */

// Hasil mutasi selalu HTTP 200 — frontend kalender membaca flag
// success/revert, bukan status HTTP.
func (ctl *ScheduleController) MoveEvent(c *fiber.Ctx) error {
	acadCtx, _, err := ctl.resolveTeacherScope(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "User tidak dikenal")
	}

	var req d.MoveEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	kind, sessionID, err := d.ParseCalendarEventID(req.EventID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	mut := svc.NewEventMutationService(ctl.DB)
	result := mut.HandleMove(c.UserContext(), acadCtx, teacherID, kind, sessionID, req.NewStart, req.NewEnd)
	return helper.JsonOK(c, result.Message, result)
}

func (ctl *ScheduleController) ResizeEvent(c *fiber.Ctx) error {
	acadCtx, _, err := ctl.resolveTeacherScope(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "User tidak dikenal")
	}

	var req d.ResizeEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	kind, sessionID, err := d.ParseCalendarEventID(req.EventID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	mut := svc.NewEventMutationService(ctl.DB)
	result := mut.HandleResize(c.UserContext(), acadCtx, teacherID, kind, sessionID, req.NewStart, req.NewEnd)
	return helper.JsonOK(c, result.Message, result)
}

/* =========================
   GET /items — container yang bisa dijadwalkan
   ========================= */

func (ctl *ScheduleController) ListSchedulableItems(c *fiber.Ctx) error {
	acadCtx, strategy, err := ctl.resolveTeacherScope(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "User tidak dikenal")
	}

	items, err := strategy.ListSchedulableItems(c.UserContext(), acadCtx, teacherID)
	if err != nil {
		log.Printf("[Schedule.Items] gagal: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal memuat daftar container")
	}
	return helper.JsonOK(c, "OK", items)
}

/* =========================
   GET /sessions — daftar sesi guru (paginated)
   ========================= */

func (ctl *ScheduleController) ListSessions(c *fiber.Ctx) error {
	acadCtx, _, err := ctl.resolveTeacherScope(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "User tidak dikenal")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	kind := strings.TrimSpace(c.Query("kind", d.EventKindQuran))
	status := strings.TrimSpace(c.Query("status"))

	switch kind {
	case d.EventKindQuran:
		var total int64
		var rows []sessModel.QuranSessionModel
		q := ctl.DB.WithContext(c.UserContext()).Model(&sessModel.QuranSessionModel{}).
			Where("quran_session_academy_id = ?", acadCtx.AcademyID).
			Where("quran_session_teacher_id = ?", teacherID)
		if status != "" {
			q = q.Where("quran_session_status = ?", status)
		}
		if err := q.Count(&total).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		if err := q.Order("quran_session_scheduled_at ASC").
			Offset(paging.Offset).Limit(paging.Limit).
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "OK", fiber.Map{
			"sessions":   rows,
			"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
		})

	case d.EventKindAcademic:
		var total int64
		var rows []sessModel.AcademicSessionModel
		q := ctl.DB.WithContext(c.UserContext()).Model(&sessModel.AcademicSessionModel{}).
			Where("academic_session_academy_id = ?", acadCtx.AcademyID).
			Where("academic_session_teacher_id = ?", teacherID)
		if status != "" {
			q = q.Where("academic_session_status = ?", status)
		}
		if err := q.Count(&total).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		if err := q.Order("academic_session_scheduled_at ASC").
			Offset(paging.Offset).Limit(paging.Limit).
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "OK", fiber.Map{
			"sessions":   rows,
			"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
		})

	case d.EventKindCourse:
		var total int64
		var rows []sessModel.InteractiveCourseSessionModel
		q := ctl.DB.WithContext(c.UserContext()).Model(&sessModel.InteractiveCourseSessionModel{}).
			Where("interactive_course_session_academy_id = ?", acadCtx.AcademyID).
			Where("interactive_course_session_teacher_id = ?", teacherID)
		if status != "" {
			q = q.Where("interactive_course_session_status = ?", status)
		}
		if err := q.Count(&total).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		if err := q.Order("interactive_course_session_scheduled_at ASC").
			Offset(paging.Offset).Limit(paging.Limit).
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "OK", fiber.Map{
			"sessions":   rows,
			"pagination": helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
		})

	default:
		return helper.JsonError(c, http.StatusBadRequest, "kind harus quran | academic | course")
	}
}

/* =========================
   GET /stats — ringkasan jumlah sesi per status
   ========================= */

type statusCountRow struct {
	Status sessModel.SessionStatus `gorm:"column:status"`
	Total  int64                   `gorm:"column:total"`
}

func (ctl *ScheduleController) ScheduleStats(c *fiber.Ctx) error {
	acadCtx, _, err := ctl.resolveTeacherScope(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "User tidak dikenal")
	}

	from, to, err := parseRangeQuery(c, acadCtx)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	counts := map[sessModel.SessionStatus]int64{}
	type tableSpec struct {
		model  interface{}
		prefix string
	}
	for _, t := range []tableSpec{
		{&sessModel.QuranSessionModel{}, "quran_session"},
		{&sessModel.AcademicSessionModel{}, "academic_session"},
		{&sessModel.InteractiveCourseSessionModel{}, "interactive_course_session"},
	} {
		var rows []statusCountRow
		if err := ctl.DB.WithContext(c.UserContext()).Model(t.model).
			Select(t.prefix+"_status AS status, COUNT(*) AS total").
			Where(t.prefix+"_academy_id = ?", acadCtx.AcademyID).
			Where(t.prefix+"_teacher_id = ?", teacherID).
			Where(t.prefix+"_scheduled_at >= ? AND "+t.prefix+"_scheduled_at < ?", from, to).
			Group(t.prefix + "_status").
			Scan(&rows).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
		for _, r := range rows {
			counts[r.Status] += r.Total
		}
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"from":   from,
		"to":     to,
		"counts": counts,
	})
}

// parseRangeQuery: ?from=YYYY-MM-DD&to=YYYY-MM-DD di zona academy.
// Default: 30 hari ke depan dari awal hari ini.
func parseRangeQuery(c *fiber.Ctx, acadCtx helperAuth.AcademyContext) (time.Time, time.Time, error) {
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
		// inklusif sampai akhir hari "to"
		to = d.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, errors.New("rentang tanggal tidak valid")
	}
	return from.UTC(), to.UTC(), nil
}
