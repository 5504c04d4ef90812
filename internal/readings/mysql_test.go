package readings

import (
	"context"
	"errors"
	"regexp"
	"soilgate/internal/types"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMysqlAppend(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	latitude := 1.35
	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO moisture_readings(")).
		ExpectExec().
		WithArgs(sqlmock.AnyArg(), "iotlab", int64(1700000000), 42.5, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repository, err := NewMysql(NewMysqlOpts{Db: db})
	require.NoError(t, err)
	require.NoError(t, repository.Append(context.Background(), Reading{
		Username:      "iotlab",
		Timestamp:     1700000000,
		MoistureValue: 42.5,
		Latitude:      &latitude,
	}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMysqlListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"timestamp", "moisture_value"}).
		AddRow(int64(10), 11.5).
		AddRow(int64(20), 23.0)
	mock.ExpectPrepare(regexp.QuoteMeta("FROM moisture_readings")).
		ExpectQuery().
		WithArgs("iotlab").
		WillReturnRows(rows)

	repository, err := NewMysql(NewMysqlOpts{Db: db})
	require.NoError(t, err)
	history, err := repository.ListByUser(context.Background(), "iotlab")
	require.NoError(t, err)
	assert.Equal(t, []HistoryEntry{
		{Timestamp: 10, MoistureValue: 11.5},
		{Timestamp: 20, MoistureValue: 23},
	}, history)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMysqlListByUserStorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPrepare(regexp.QuoteMeta("FROM moisture_readings")).
		WillReturnError(errors.New("connection refused"))

	repository, err := NewMysql(NewMysqlOpts{Db: db})
	require.NoError(t, err)
	_, err = repository.ListByUser(context.Background(), "iotlab")
	assert.ErrorIs(t, err, types.ErrorStorageUnavailable)
}
