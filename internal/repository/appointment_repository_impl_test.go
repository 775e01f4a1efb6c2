package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestCountOverlappingExcludesCancelled(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository()

	doctorID := uuid.New()
	date := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	// The predicate must skip cancelled rows, so a cancelled appointment's
	// interval can be rebooked, and must apply the half-open overlap test
	// against [start,end).
	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments" WHERE .*status != \$3.* AND .*start_time < \$4 AND end_time > \$5`).
		WithArgs(doctorID.String(), date, "cancelled", "10:30", "10:00").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountOverlapping(db, doctorID, date, "10:00", "10:30")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByUserIDIgnoresPageBounds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository()

	userID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "appointments" WHERE user_id = \$1`).
		WithArgs(userID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountByUserID(db, userID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
