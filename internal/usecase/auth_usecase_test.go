package usecase

import (
	"context"
	"testing"

	"clinic-appointment-service/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newAuthUsecaseForTest(t *testing.T) (AuthUsecase, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	uc := NewAuthUsecase(
		db,
		testLogger(),
		repository.NewUserRepository(),
		repository.NewDoctorProfileRepository(),
		repository.NewAdminProfileRepository(),
		nil,
		nil,
		nil,
	)
	return uc, mock
}

func TestEnsureAdminAccountSeedsWhenMissing(t *testing.T) {
	uc, mock := newAuthUsecaseForTest(t)

	// No account with the configured email: the account and its admin
	// profile are created in one transaction.
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectExec(`INSERT INTO "admins"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := uc.EnsureAdminAccount(context.Background(), "Root Admin", "admin@clinic.test", "changeme123")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureAdminAccountIdempotent(t *testing.T) {
	uc, mock := newAuthUsecaseForTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).
			AddRow(uuid.NewString(), "admin@clinic.test", "admin"))

	err := uc.EnsureAdminAccount(context.Background(), "Root Admin", "admin@clinic.test", "changeme123")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
