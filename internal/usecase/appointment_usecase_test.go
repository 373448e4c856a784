package usecase

import (
	"context"
	"testing"

	"healthcare-admin/internal/delivery/dto"
	"healthcare-admin/internal/domain/entity"
	"healthcare-admin/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentUsecase(t *testing.T) AppointmentUsecase {
	return NewAppointmentUsecase(newTestDB(t), testLogger(), repository.NewAppointmentRepository())
}

func seedAppointments(t *testing.T, uc AppointmentUsecase) {
	t.Helper()
	seeds := []dto.CreateAppointmentRequest{
		{PatientID: 1, DoctorID: 10, DateTime: "2026-03-01T09:00"},
		{PatientID: 1, DoctorID: 11, DateTime: "2026-03-02T09:00"},
		{PatientID: 2, DoctorID: 10, DateTime: "2026-03-03T09:00"},
	}
	for i := range seeds {
		_, err := uc.Create(context.Background(), &seeds[i])
		require.NoError(t, err)
	}
}

func TestAppointmentCreateAcceptsDanglingIDs(t *testing.T) {
	uc := newAppointmentUsecase(t)

	// no referential check: ids that resolve to nothing are stored as-is
	created, err := uc.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID: 999,
		DoctorID:  888,
		DateTime:  "2026-04-01T10:00",
		Reason:    strP("follow-up"),
	})
	require.NoError(t, err)
	assert.Equal(t, 999, created.PatientID)
	assert.Equal(t, 888, created.DoctorID)
}

func TestAppointmentListUnfiltered(t *testing.T) {
	uc := newAppointmentUsecase(t)
	seedAppointments(t, uc)

	all, err := uc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAppointmentListFilteredByPatient(t *testing.T) {
	uc := newAppointmentUsecase(t)
	seedAppointments(t, uc)

	got, err := uc.List(context.Background(), &entity.AppointmentFilter{PatientID: intP(1)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, a := range got {
		assert.Equal(t, 1, a.PatientID)
	}
}

func TestAppointmentListFilteredByDoctor(t *testing.T) {
	uc := newAppointmentUsecase(t)
	seedAppointments(t, uc)

	got, err := uc.List(context.Background(), &entity.AppointmentFilter{DoctorID: intP(10)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, a := range got {
		assert.Equal(t, 10, a.DoctorID)
	}
}

func TestAppointmentListBothFiltersPatientWins(t *testing.T) {
	uc := newAppointmentUsecase(t)
	seedAppointments(t, uc)

	got, err := uc.List(context.Background(), &entity.AppointmentFilter{
		PatientID: intP(2),
		DoctorID:  intP(11),
	})
	require.NoError(t, err)
	// doctor filter is ignored: patient 2 has one appointment, with doctor 10
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].PatientID)
	assert.Equal(t, 10, got[0].DoctorID)
}

func TestAppointmentUpdateAndDelete(t *testing.T) {
	uc := newAppointmentUsecase(t)
	seedAppointments(t, uc)

	updated, err := uc.Update(context.Background(), 1, &dto.UpdateAppointmentRequest{
		DateTime: strP("2026-03-01T15:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01T15:30", updated.DateTime)
	// untouched foreign keys survive the partial update
	assert.Equal(t, 1, updated.PatientID)
	assert.Equal(t, 10, updated.DoctorID)

	require.NoError(t, uc.Delete(context.Background(), 1))
	_, err = uc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	assert.ErrorIs(t, uc.Delete(context.Background(), 999), ErrAppointmentNotFound)
}
