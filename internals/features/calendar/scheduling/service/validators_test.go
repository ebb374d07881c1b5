// file: internals/features/calendar/scheduling/service/validators_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contModel "akademiku_backend/internals/features/calendar/containers/model"
)

func scheduleCode(t *testing.T, err error) string {
	t.Helper()
	var se *ScheduleError
	require.ErrorAs(t, err, &se)
	return se.Code
}

func TestIndividualCircleValidator_InstantWindow(t *testing.T) {
	startsAt := at(2030, 6, 1, 8, 0)
	endsAt := at(2030, 8, 31, 20, 0)
	sub := &contModel.QuranSubscriptionModel{
		QuranSubscriptionStatus:   contModel.SubscriptionActive,
		QuranSubscriptionStartsAt: &startsAt,
		QuranSubscriptionEndsAt:   &endsAt,
	}
	v := &IndividualCircleValidator{
		Circle:       &contModel.QuranIndividualCircleModel{},
		Subscription: sub,
		AcademyCtx:   testAcademyCtx(uuid.New()),
	}

	require.NoError(t, v.EligibleForGeneration())

	// batas instant: tepat di starts_at dan ends_at masih sah
	assert.NoError(t, v.WithinValidityWindow(startsAt))
	assert.NoError(t, v.WithinValidityWindow(endsAt))
	assert.NoError(t, v.WithinValidityWindow(at(2030, 7, 15, 10, 0)))

	err := v.WithinValidityWindow(startsAt.Add(-time.Minute))
	assert.Equal(t, ErrCodeSubscription, scheduleCode(t, err))

	err = v.WithinValidityWindow(endsAt.Add(time.Minute))
	assert.Equal(t, ErrCodeSubscription, scheduleCode(t, err))
}

func TestIndividualCircleValidator_InactiveSubscription(t *testing.T) {
	for _, status := range []contModel.SubscriptionStatus{
		contModel.SubscriptionPending, contModel.SubscriptionExpired, contModel.SubscriptionCancelled,
	} {
		v := &IndividualCircleValidator{
			Circle:       &contModel.QuranIndividualCircleModel{},
			Subscription: &contModel.QuranSubscriptionModel{QuranSubscriptionStatus: status},
			AcademyCtx:   testAcademyCtx(uuid.New()),
		}
		err := v.EligibleForGeneration()
		assert.Equal(t, ErrCodeSubscription, scheduleCode(t, err), "status %s", status)
	}
}

func TestGroupCircleValidator(t *testing.T) {
	active := &GroupCircleValidator{Circle: &contModel.QuranCircleModel{QuranCircleStatus: true}}
	require.NoError(t, active.EligibleForGeneration())
	// halaqah tidak punya window tanggal
	assert.NoError(t, active.WithinValidityWindow(at(2099, 1, 1, 0, 0)))

	inactive := &GroupCircleValidator{Circle: &contModel.QuranCircleModel{QuranCircleStatus: false}}
	err := inactive.EligibleForGeneration()
	assert.Equal(t, ErrCodeSubscription, scheduleCode(t, err))
}

func TestTrialValidator_PendingOnly(t *testing.T) {
	pending := &TrialValidator{Request: &contModel.QuranTrialRequestModel{QuranTrialRequestStatus: contModel.TrialPending}}
	require.NoError(t, pending.EligibleForGeneration())
	assert.NoError(t, pending.WithinValidityWindow(at(2099, 1, 1, 0, 0)))

	for _, status := range []contModel.TrialRequestStatus{
		contModel.TrialScheduled, contModel.TrialCompleted, contModel.TrialCancelled,
	} {
		v := &TrialValidator{Request: &contModel.QuranTrialRequestModel{QuranTrialRequestStatus: status}}
		err := v.EligibleForGeneration()
		assert.Equal(t, ErrCodeSubscription, scheduleCode(t, err), "status %s", status)
	}
}

func TestInteractiveCourseValidator_WholeDayWindow(t *testing.T) {
	startDate := at(2030, 6, 1, 0, 0)
	endDate := at(2030, 6, 30, 0, 0)
	v := &InteractiveCourseValidator{
		Course: &contModel.InteractiveCourseModel{
			InteractiveCourseIsPublished: true,
			InteractiveCourseStartDate:   &startDate,
			InteractiveCourseEndDate:     &endDate,
		},
		AcademyCtx: testAcademyCtx(uuid.New()),
	}

	require.NoError(t, v.EligibleForGeneration())

	// batas seharian: jam berapapun di tanggal start/end masih sah
	assert.NoError(t, v.WithinValidityWindow(at(2030, 6, 1, 0, 0)))
	assert.NoError(t, v.WithinValidityWindow(at(2030, 6, 30, 23, 59)))

	err := v.WithinValidityWindow(at(2030, 5, 31, 23, 59))
	assert.Equal(t, ErrCodeCourse, scheduleCode(t, err))

	err = v.WithinValidityWindow(at(2030, 7, 1, 0, 0))
	assert.Equal(t, ErrCodeCourse, scheduleCode(t, err))
}

func TestValidators_WindowAccessor(t *testing.T) {
	startsAt := at(2030, 6, 1, 8, 0)
	v := &AcademicSubscriptionValidator{
		Subscription: &contModel.AcademicSubscriptionModel{
			AcademicSubscriptionStatus:   contModel.SubscriptionActive,
			AcademicSubscriptionStartsAt: &startsAt,
		},
		AcademyCtx: testAcademyCtx(uuid.New()),
	}

	w := v.Window()
	require.NotNil(t, w.Start)
	assert.True(t, w.Start.Equal(startsAt))
	assert.Nil(t, w.End)

	// end nil = tidak dibatasi ke depan
	assert.NoError(t, v.WithinValidityWindow(at(2099, 1, 1, 0, 0)))
}
