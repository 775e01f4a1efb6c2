package usecase

import (
	"testing"
	"time"

	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrescribingUsecase(t *testing.T) (PrescriptionUsecase, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	identity := NewIdentityUsecase(db, testLogger(), repository.NewUserRepository())
	uc := NewPrescriptionUsecase(
		db,
		testLogger(),
		repository.NewPrescriptionRepository(),
		repository.NewAppointmentRepository(),
		identity,
		nil,
	)
	return uc, mock
}

// expectRoleLookup scripts the account load behind RequireDoctor: the user
// row plus its admin and doctor profile preloads, in that order.
func expectRoleLookup(mock sqlmock.Sqlmock, accountID uuid.UUID, role string, hasDoctorProfile bool) {
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role"}).
			AddRow(accountID.String(), "Dr. Ada", "ada@clinic.test", role))
	mock.ExpectQuery(`SELECT \* FROM "admins"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	doctors := sqlmock.NewRows([]string{"id", "specialization", "phone", "is_available"})
	if hasDoctorProfile {
		doctors.AddRow(accountID.String(), "Cardiology", "0800123456", true)
	}
	mock.ExpectQuery(`SELECT \* FROM "doctors"`).WillReturnRows(doctors)
}

// expectAppointmentLookup scripts the appointment load inside the prescribing
// transaction, including its doctor and user preloads.
func expectAppointmentLookup(mock sqlmock.Sqlmock, appointmentID, patientID, doctorID uuid.UUID, status string) {
	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "doctor_id", "appointment_date", "start_time", "end_time", "status"}).
			AddRow(appointmentID.String(), patientID.String(), doctorID.String(), time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), "10:00", "10:30", status))
	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
}

func prescriptionRequest(appointmentID uuid.UUID) *dto.CreatePrescriptionRequest {
	return &dto.CreatePrescriptionRequest{
		AppointmentID:      appointmentID,
		Diagnosis:          "Seasonal flu",
		InteractionDetails: "None noted",
		Medicines:          "Paracetamol 500mg",
		DosageInstructions: "3x daily after meals",
	}
}

func TestCreatePrescriptionRejectsNonDoctorAccount(t *testing.T) {
	uc, mock := newPrescribingUsecase(t)
	actorID := uuid.New()

	// The token claims doctor but the account row says plain user; the store
	// wins and nothing past the role lookup runs.
	expectRoleLookup(mock, actorID, "user", false)

	_, err := uc.Create(actorContext(actorID, entity.RoleDoctor), prescriptionRequest(uuid.New()))
	assert.Equal(t, ErrRoleMismatch, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePrescriptionRequiresEligibleAppointment(t *testing.T) {
	uc, mock := newPrescribingUsecase(t)
	doctorID, patientID, appointmentID := uuid.New(), uuid.New(), uuid.New()

	expectRoleLookup(mock, doctorID, "doctor", true)
	mock.ExpectBegin()
	expectAppointmentLookup(mock, appointmentID, patientID, doctorID, "pending")
	mock.ExpectRollback()

	_, err := uc.Create(actorContext(doctorID, entity.RoleDoctor), prescriptionRequest(appointmentID))
	assert.Equal(t, ErrAppointmentNotEligible, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePrescriptionDeniesOtherDoctor(t *testing.T) {
	uc, mock := newPrescribingUsecase(t)
	actorID, otherDoctorID, patientID, appointmentID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	expectRoleLookup(mock, actorID, "doctor", true)
	mock.ExpectBegin()
	expectAppointmentLookup(mock, appointmentID, patientID, otherDoctorID, "confirmed")
	mock.ExpectRollback()

	_, err := uc.Create(actorContext(actorID, entity.RoleDoctor), prescriptionRequest(appointmentID))
	assert.Equal(t, ErrNotAppointmentDoctor, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePrescriptionDenormalizesFromAppointment(t *testing.T) {
	uc, mock := newPrescribingUsecase(t)
	doctorID, patientID, appointmentID := uuid.New(), uuid.New(), uuid.New()

	expectRoleLookup(mock, doctorID, "doctor", true)
	mock.ExpectBegin()
	expectAppointmentLookup(mock, appointmentID, patientID, doctorID, "confirmed")
	// The stored row takes doctor and user ids from the appointment even
	// though the request left them empty.
	mock.ExpectQuery(`INSERT INTO "prescriptions"`).
		WithArgs(appointmentID.String(), doctorID.String(), patientID.String(),
			"Seasonal flu", "None noted", "Paracetamol 500mg", "3x daily after meals",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	resp, err := uc.Create(actorContext(doctorID, entity.RoleDoctor), prescriptionRequest(appointmentID))
	require.NoError(t, err)
	assert.Equal(t, doctorID, resp.DoctorID)
	assert.Equal(t, patientID, resp.UserID)
	assert.Equal(t, appointmentID, resp.AppointmentID)
	require.NoError(t, mock.ExpectationsWereMet())
}
