package repository

import (
	"Marketplace/internal/model"
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInterestExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterestRepo(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `interests` WHERE user_id = \\? AND producer_id = \\?").
		WithArgs(uint64(1), uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	exists, err := repo.CheckInterestExists(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInterest(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterestRepo(db)

	mock.ExpectExec("INSERT INTO `interests`").
		WillReturnResult(sqlmock.NewResult(3, 1))

	interest := &model.Interest{UserID: 1, ProducerID: 2, Message: "hi"}
	require.NoError(t, repo.CreateInterest(context.Background(), interest))
	assert.Equal(t, uint64(3), interest.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetInterestsByProducer_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInterestRepo(db)

	mock.ExpectQuery("SELECT \\* FROM `interests` WHERE producer_id = \\? ORDER BY created_at desc").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "producer_id", "message"}))

	interests, err := repo.GetInterestsByProducer(context.Background(), 2, 20, 0)
	require.NoError(t, err)
	assert.NotNil(t, interests)
	assert.Empty(t, interests)
	assert.NoError(t, mock.ExpectationsWereMet())
}
