package usecase

import (
	"context"
	"testing"

	"clinic-appointment-service/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdentityUsecaseForTest(t *testing.T) (IdentityUsecase, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewIdentityUsecase(db, testLogger(), repository.NewUserRepository()), mock
}

func TestResolveRoleUnknownAccount(t *testing.T) {
	uc, mock := newIdentityUsecaseForTest(t)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := uc.ResolveRole(context.Background(), uuid.New())
	assert.Equal(t, ErrAccountNotFound, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireDoctorReturnsProfile(t *testing.T) {
	uc, mock := newIdentityUsecaseForTest(t)
	accountID := uuid.New()

	expectRoleLookup(mock, accountID, "doctor", true)

	profile, err := uc.RequireDoctor(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, accountID, profile.ID)
	assert.Equal(t, "Cardiology", profile.Specialization)
	assert.Equal(t, "Dr. Ada", profile.User.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireDoctorRejectsOtherRoles(t *testing.T) {
	uc, mock := newIdentityUsecaseForTest(t)
	accountID := uuid.New()

	expectRoleLookup(mock, accountID, "user", false)

	_, err := uc.RequireDoctor(context.Background(), accountID)
	assert.Equal(t, ErrRoleMismatch, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequireAdminRejectsOtherRoles(t *testing.T) {
	uc, mock := newIdentityUsecaseForTest(t)
	accountID := uuid.New()

	expectRoleLookup(mock, accountID, "doctor", true)

	_, err := uc.RequireAdmin(context.Background(), accountID)
	assert.Equal(t, ErrRoleMismatch, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
