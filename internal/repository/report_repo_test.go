package repository

import (
	"Marketplace/internal/model"
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPendingReportExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepo(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `reports` WHERE .*status = \\?").
		WithArgs(uint64(1), model.ReportTargetPost, uint64(9), model.ReportStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	exists, err := repo.CheckPendingReportExists(context.Background(), 1, model.ReportTargetPost, 9)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReport_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepo(db)

	mock.ExpectExec("INSERT INTO `reports`").
		WillReturnError(errors.New("connection reset"))

	err := repo.CreateReport(context.Background(), &model.Report{ReporterID: 1, TargetType: model.ReportTargetUser, TargetID: 2, Reason: "spam"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
