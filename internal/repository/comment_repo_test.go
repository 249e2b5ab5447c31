package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRecentCommentsByProducer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepo(db)

	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM `post_comments` JOIN posts ON posts.id = post_comments.post_id WHERE posts.producer_id = \\? ORDER BY post_comments.created_at DESC LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "user_id", "content", "created_at"}).
			AddRow(31, 5, 100, "great brunch", now).
			AddRow(30, 4, 101, "slow service", now.Add(-time.Minute)))
	mock.ExpectQuery("SELECT \\* FROM `users` WHERE `users`.`id` IN").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(100, "Ada").
			AddRow(101, "Linus"))

	comments, err := repo.GetRecentCommentsByProducer(context.Background(), 7, 20)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, uint64(31), comments[0].ID)
	assert.Equal(t, "Ada", comments[0].User.Name)
	assert.Equal(t, "Linus", comments[1].User.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetComment_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepo(db)

	mock.ExpectQuery("SELECT \\* FROM `post_comments` WHERE `post_comments`.`id` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	comment, err := repo.GetComment(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, comment)
}
