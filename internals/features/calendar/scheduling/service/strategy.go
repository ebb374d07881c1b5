// file: internals/features/calendar/scheduling/service/strategy.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	"akademiku_backend/internals/features/calendar/scheduling/dto"
	helperAuth "akademiku_backend/internals/helpers/auth"
	"akademiku_backend/internals/helpers/dbtime"

	contModel "akademiku_backend/internals/features/calendar/containers/model"
)

/* =========================
   Strategy Dispatch Layer
   ========================= */

// SchedulableItem: satu container yang bisa dijadwalkan oleh guru ini.
type SchedulableItem struct {
	Kind  string    `json:"kind"`
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

// ScheduleStrategy: komposisi per role guru. Dua domain guru punya item
// yang strukturnya beda (halaqah/trial vs subscription/kursus) tapi mesin
// generator/validator/detector di bawahnya sama.
type ScheduleStrategy interface {
	Role() string
	ListSchedulableItems(ctx context.Context, acadCtx helperAuth.AcademyContext, teacherID uuid.UUID) ([]SchedulableItem, error)
	Generate(ctx context.Context, acadCtx helperAuth.AcademyContext, teacherID uuid.UUID, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error)
}

// StrategyForRole: pure routing — role tak dikenal = error, bukan fallback.
func StrategyForRole(db *gorm.DB, role string) (ScheduleStrategy, error) {
	switch role {
	case constants.RoleQuranTeacher:
		return &QuranScheduleStrategy{DB: db, Generator: NewGenerateSessionsService(db)}, nil
	case constants.RoleAcademicTeacher:
		return &AcademicScheduleStrategy{DB: db, Generator: NewGenerateSessionsService(db)}, nil
	default:
		return nil, fmt.Errorf("role %q tidak punya strategi penjadwalan", role)
	}
}

/* =========================
   Quran teacher
   ========================= */

type QuranScheduleStrategy struct {
	DB        *gorm.DB
	Generator *GenerateSessionsService
}

func (s *QuranScheduleStrategy) Role() string { return constants.RoleQuranTeacher }

func (s *QuranScheduleStrategy) ListSchedulableItems(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	teacherID uuid.UUID,
) ([]SchedulableItem, error) {
	items := make([]SchedulableItem, 0, 8)

	var circles []contModel.QuranCircleModel
	if err := s.DB.WithContext(ctx).
		Where("quran_circle_academy_id = ?", acadCtx.AcademyID).
		Where("quran_circle_teacher_id = ?", teacherID).
		Where("quran_circle_status = ?", true).
		Find(&circles).Error; err != nil {
		return nil, err
	}
	for _, c := range circles {
		items = append(items, SchedulableItem{Kind: dto.ContainerGroup, ID: c.QuranCircleID, Label: c.QuranCircleName})
	}

	var indiv []contModel.QuranIndividualCircleModel
	if err := s.DB.WithContext(ctx).
		Where("quran_individual_circle_academy_id = ?", acadCtx.AcademyID).
		Where("quran_individual_circle_teacher_id = ?", teacherID).
		Find(&indiv).Error; err != nil {
		return nil, err
	}
	for _, c := range indiv {
		items = append(items, SchedulableItem{Kind: dto.ContainerIndividual, ID: c.QuranIndividualCircleID, Label: c.QuranIndividualCircleName})
	}

	var trials []contModel.QuranTrialRequestModel
	if err := s.DB.WithContext(ctx).
		Where("quran_trial_request_academy_id = ?", acadCtx.AcademyID).
		Where("quran_trial_request_teacher_id = ?", teacherID).
		Where("quran_trial_request_status = ?", contModel.TrialPending).
		Find(&trials).Error; err != nil {
		return nil, err
	}
	for _, t := range trials {
		items = append(items, SchedulableItem{Kind: dto.ContainerTrial, ID: t.QuranTrialRequestID, Label: "Trial: " + t.QuranTrialRequestStudentName})
	}

	return items, nil
}

func (s *QuranScheduleStrategy) Generate(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	teacherID uuid.UUID,
	req dto.GenerateScheduleRequest,
) (*dto.GenerateScheduleResponse, error) {
	rec, err := req.ToRecurrence(acadCtx.Loc, acadCtx.Now())
	if err != nil {
		return nil, NewScheduleError(ErrCodeValidation, err.Error())
	}

	switch req.ContainerKind {
	case dto.ContainerGroup:
		if err := verifyOwnership(ctx, s.DB, acadCtx, teacherID,
			&contModel.QuranCircleModel{}, "quran_circle", req.ContainerID); err != nil {
			return nil, err
		}
		return s.Generator.GenerateGroup(ctx, acadCtx, req.ContainerID, rec)

	case dto.ContainerIndividual:
		if err := verifyOwnership(ctx, s.DB, acadCtx, teacherID,
			&contModel.QuranIndividualCircleModel{}, "quran_individual_circle", req.ContainerID); err != nil {
			return nil, err
		}
		return s.Generator.GenerateIndividual(ctx, acadCtx, req.ContainerID, rec)

	case dto.ContainerTrial:
		if err := verifyOwnership(ctx, s.DB, acadCtx, teacherID,
			&contModel.QuranTrialRequestModel{}, "quran_trial_request", req.ContainerID); err != nil {
			return nil, err
		}
		// trial = slot tunggal di hari pertama recurrence
		at := dbtime.CombineDateAndTod(rec.StartLocal, rec.TimeOfDay, acadCtx.Loc)
		return s.Generator.ScheduleTrial(ctx, acadCtx, req.ContainerID, at)

	default:
		return nil, Errf(ErrCodeValidation, "Jenis container %q tidak tersedia untuk guru Quran", req.ContainerKind)
	}
}

/* =========================
   Academic teacher
   ========================= */

type AcademicScheduleStrategy struct {
	DB        *gorm.DB
	Generator *GenerateSessionsService
}

func (s *AcademicScheduleStrategy) Role() string { return constants.RoleAcademicTeacher }

func (s *AcademicScheduleStrategy) ListSchedulableItems(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	teacherID uuid.UUID,
) ([]SchedulableItem, error) {
	items := make([]SchedulableItem, 0, 8)

	var subs []contModel.AcademicSubscriptionModel
	if err := s.DB.WithContext(ctx).
		Where("academic_subscription_academy_id = ?", acadCtx.AcademyID).
		Where("academic_subscription_teacher_id = ?", teacherID).
		Where("academic_subscription_status = ?", contModel.SubscriptionActive).
		Find(&subs).Error; err != nil {
		return nil, err
	}
	for _, sub := range subs {
		label := "Les Privat"
		if sub.AcademicSubscriptionSubject != nil {
			label = *sub.AcademicSubscriptionSubject
		}
		items = append(items, SchedulableItem{Kind: dto.ContainerPrivateLesson, ID: sub.AcademicSubscriptionID, Label: label})
	}

	var courses []contModel.InteractiveCourseModel
	if err := s.DB.WithContext(ctx).
		Where("interactive_course_academy_id = ?", acadCtx.AcademyID).
		Where("interactive_course_teacher_id = ?", teacherID).
		Where("interactive_course_is_published = ?", true).
		Find(&courses).Error; err != nil {
		return nil, err
	}
	for _, course := range courses {
		items = append(items, SchedulableItem{Kind: dto.ContainerInteractiveCourse, ID: course.InteractiveCourseID, Label: course.InteractiveCourseName})
	}

	return items, nil
}

func (s *AcademicScheduleStrategy) Generate(
	ctx context.Context,
	acadCtx helperAuth.AcademyContext,
	teacherID uuid.UUID,
	req dto.GenerateScheduleRequest,
) (*dto.GenerateScheduleResponse, error) {
	rec, err := req.ToRecurrence(acadCtx.Loc, acadCtx.Now())
	if err != nil {
		return nil, NewScheduleError(ErrCodeValidation, err.Error())
	}

	switch req.ContainerKind {
	case dto.ContainerPrivateLesson:
		if err := verifyOwnership(ctx, s.DB, acadCtx, teacherID,
			&contModel.AcademicSubscriptionModel{}, "academic_subscription", req.ContainerID); err != nil {
			return nil, err
		}
		return s.Generator.GenerateAcademic(ctx, acadCtx, req.ContainerID, rec)

	case dto.ContainerInteractiveCourse:
		if err := verifyOwnership(ctx, s.DB, acadCtx, teacherID,
			&contModel.InteractiveCourseModel{}, "interactive_course", req.ContainerID); err != nil {
			return nil, err
		}
		return s.Generator.GenerateCourse(ctx, acadCtx, req.ContainerID, rec)

	default:
		return nil, Errf(ErrCodeValidation, "Jenis container %q tidak tersedia untuk guru akademik", req.ContainerKind)
	}
}

/* =========================
   Ownership guard
   ========================= */

// verifyOwnership: container harus milik guru pemanggil di academy aktif.
// columnPrefix mengikuti konvensi nama kolom panjang per tabel.
func verifyOwnership(
	ctx context.Context,
	db *gorm.DB,
	acadCtx helperAuth.AcademyContext,
	teacherID uuid.UUID,
	model interface{},
	columnPrefix string,
	containerID uuid.UUID,
) error {
	var count int64
	err := db.WithContext(ctx).Model(model).
		Where(columnPrefix+"_academy_id = ?", acadCtx.AcademyID).
		Where(columnPrefix+"_id = ?", containerID).
		Where(columnPrefix+"_teacher_id = ?", teacherID).
		Count(&count).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if count == 0 {
		return NewScheduleError(ErrCodeValidation, "Container tidak ditemukan atau bukan milik Anda")
	}
	return nil
}
