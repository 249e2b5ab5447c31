package repository

import (
	"Marketplace/internal/model"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountFollowers_AnyStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `follows` WHERE producer_id = ?") + "$").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	count, err := repo.CountFollowers(context.Background(), 7, "")
	require.NoError(t, err)
	assert.Equal(t, int64(9), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountFollowers_Approved(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `follows` WHERE producer_id = ? AND status = ?")).
		WithArgs(uint64(7), model.FollowStatusApproved).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountFollowers(context.Background(), 7, model.FollowStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentFollows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepo(db)

	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT \\* FROM `follows` WHERE producer_id = \\? AND status = \\? ORDER BY created_at desc LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "follower_id", "producer_id", "status", "created_at"}).
			AddRow(2, 100, 7, model.FollowStatusApproved, now).
			AddRow(1, 101, 7, model.FollowStatusApproved, now.Add(-time.Hour)))
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE `users`.`id` IN").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(100, "Ada", "ada@example.com").
			AddRow(101, "Linus", "linus@example.com"))

	follows, err := repo.GetRecentFollows(context.Background(), 7, model.FollowStatusApproved, 10)
	require.NoError(t, err)
	require.Len(t, follows, 2)
	assert.Equal(t, "Ada", follows[0].Follower.Name)
	assert.Equal(t, "linus@example.com", follows[1].Follower.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountFollowsByDay_StatusBeforeWindow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepo(db)

	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 7, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery("FROM `follows` WHERE producer_id = \\? AND status = \\? AND \\(created_at BETWEEN \\? AND \\?\\)").
		WithArgs(uint64(7), model.FollowStatusApproved, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"date", "value"}).
			AddRow("2026-04-01", 1).
			AddRow("2026-04-07", 2))

	series, err := repo.CountFollowsByDay(context.Background(), 7, model.FollowStatusApproved, &model.TimeRange{From: from, To: to})
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "2026-04-07", series[1].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}
