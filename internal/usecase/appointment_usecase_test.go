package usecase

import (
	"testing"
	"time"

	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingUsecase(t *testing.T) (AppointmentUsecase, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	uc := NewAppointmentUsecase(
		db,
		testLogger(),
		repository.NewAppointmentRepository(),
		repository.NewScheduleRepository(),
		repository.NewDoctorProfileRepository(),
		nil,
	)
	return uc, mock
}

// expectAvailabilityCheck scripts the doctor lookup (with its account preload)
// and the weekly window lookup that run inside the booking transaction. The
// window is Monday 09:00-17:00 and the doctor is globally available.
func expectAvailabilityCheck(mock sqlmock.Sqlmock, doctorID uuid.UUID) {
	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "specialization", "phone", "is_available"}).
			AddRow(doctorID.String(), "Cardiology", "0800123456", true))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT \* FROM "schedules"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "doctor_id", "day_of_week", "start_time", "end_time", "is_available"}).
			AddRow(uuid.NewString(), doctorID.String(), "Monday", "09:00", "17:00", true))
}

// 2026-08-24 is a Monday.
func mondayBooking(doctorID uuid.UUID) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		DoctorID:        doctorID,
		AppointmentDate: "2026-08-24",
		StartTime:       "10:00",
		EndTime:         "10:30",
	}
}

func TestCreateAppointmentBooksFreeSlot(t *testing.T) {
	uc, mock := newBookingUsecase(t)
	userID, doctorID, appointmentID := uuid.New(), uuid.New(), uuid.New()

	// No live overlap remains, e.g. because the previous occupant of the
	// interval was cancelled, so the insert goes through.
	mock.ExpectBegin()
	expectAvailabilityCheck(mock, doctorID)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(appointmentID.String()))
	mock.ExpectCommit()

	resp, err := uc.Create(actorContext(userID, entity.RoleUser), mondayBooking(doctorID))
	require.NoError(t, err)
	assert.Equal(t, appointmentID, resp.ID)
	assert.Equal(t, string(entity.AppointmentStatusPending), resp.Status)
	assert.Equal(t, "2026-08-24", resp.AppointmentDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	uc, mock := newBookingUsecase(t)
	userID, doctorID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	expectAvailabilityCheck(mock, doctorID)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := uc.Create(actorContext(userID, entity.RoleUser), mondayBooking(doctorID))
	assert.Equal(t, ErrSlotConflict, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentSerializationFailure(t *testing.T) {
	uc, mock := newBookingUsecase(t)
	userID, doctorID := uuid.New(), uuid.New()

	// A concurrent create that passed its own overlap check first wins the
	// serializable race; the loser's commit fails with pg 40001 and must
	// surface as a slot conflict, not an internal error.
	mock.ExpectBegin()
	expectAvailabilityCheck(mock, doctorID)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit().WillReturnError(&pgconn.PgError{Code: "40001"})

	_, err := uc.Create(actorContext(userID, entity.RoleUser), mondayBooking(doctorID))
	assert.Equal(t, ErrSlotConflict, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentOutsideAvailability(t *testing.T) {
	uc, mock := newBookingUsecase(t)
	userID, doctorID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "specialization", "phone", "is_available"}).
			AddRow(doctorID.String(), "Cardiology", "0800123456", true))
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	// No window row for the date's weekday.
	mock.ExpectQuery(`SELECT \* FROM "schedules"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := uc.Create(actorContext(userID, entity.RoleUser), mondayBooking(doctorID))
	assert.Equal(t, ErrOutsideAvailability, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListForUserReportsTotalAcrossPages(t *testing.T) {
	uc, mock := newBookingUsecase(t)
	userID, doctorID := uuid.New(), uuid.New()

	// Five rows match overall; the page holds two. Total must report the
	// former.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "doctor_id", "appointment_date", "start_time", "end_time", "status"}).
			AddRow(uuid.NewString(), userID.String(), doctorID.String(), time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), "10:00", "10:30", "pending").
			AddRow(uuid.NewString(), userID.String(), doctorID.String(), time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), "11:00", "11:30", "confirmed"))
	mock.ExpectQuery(`SELECT \* FROM "doctors"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp, err := uc.ListForUser(actorContext(userID, entity.RoleUser), &dto.ListAppointmentsRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
	assert.Equal(t, 5, resp.Total)
	require.NoError(t, mock.ExpectationsWereMet())
}
