package converter

import (
	"testing"
	"time"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentToResponse(t *testing.T) {
	appointment := &entity.Appointment{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		DoctorID:        uuid.New(),
		AppointmentDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "10:30",
		Status:          entity.AppointmentStatusPending,
		Notes:           "first visit",
	}

	response := AppointmentToResponse(appointment)
	require.NotNil(t, response)
	assert.Equal(t, appointment.ID, response.ID)
	assert.Equal(t, "2026-09-01", response.AppointmentDate)
	assert.Equal(t, "10:00", response.StartTime)
	assert.Equal(t, "pending", response.Status)
	assert.Nil(t, response.Doctor, "doctor omitted when not preloaded")
}

func TestAppointmentToResponseIncludesDoctor(t *testing.T) {
	doctorID := uuid.New()
	appointment := &entity.Appointment{
		ID:       uuid.New(),
		DoctorID: doctorID,
		Status:   entity.AppointmentStatusConfirmed,
		Doctor: entity.DoctorProfile{
			ID:             doctorID,
			Specialization: "Cardiology",
			User:           entity.User{Name: "Dr. House", Email: "house@clinic.test"},
		},
	}

	response := AppointmentToResponse(appointment)
	require.NotNil(t, response)
	require.NotNil(t, response.Doctor)
	assert.Equal(t, "Cardiology", response.Doctor.Specialization)
	assert.Equal(t, "Dr. House", response.Doctor.Name)
}

func TestAppointmentToResponseNil(t *testing.T) {
	assert.Nil(t, AppointmentToResponse(nil))
}

func TestAppointmentsToResponses(t *testing.T) {
	appointments := []entity.Appointment{
		{ID: uuid.New(), Status: entity.AppointmentStatusPending},
		{ID: uuid.New(), Status: entity.AppointmentStatusCancelled},
	}

	responses := AppointmentsToResponses(appointments)
	require.Len(t, responses, 2)
	assert.Equal(t, appointments[0].ID, responses[0].ID)
	assert.Equal(t, "cancelled", responses[1].Status)
}
