package postgres

import (
	"context"
	"testing"
	"time"

	"kyc-credential-gateway/internal/core/domain"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func i64Ptr(i int64) *int64   { return &i }

func newTestApplicant() *domain.Applicant {
	return &domain.Applicant{
		ApplicantID:   "app-63f5b90c",
		UserID:        i64Ptr(42),
		CorrelationID: "issuer-42",
		Status:        domain.ApplicantStatusPending,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
		UpdatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func applicantColumns() []string {
	return []string{"applicant_id", "user_id", "correlation_id", "status", "review_result", "created_at", "updated_at"}
}

func applicantRow(a *domain.Applicant) *pgxmock.Rows {
	return pgxmock.NewRows(applicantColumns()).AddRow(
		a.ApplicantID, a.UserID, a.CorrelationID, a.Status,
		a.ReviewResult, a.CreatedAt, a.UpdatedAt,
	)
}

func TestApplicantRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewApplicantRepo(mock)
	a := newTestApplicant()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO applicants").
		WithArgs(a.ApplicantID, a.UserID, a.CorrelationID, a.Status,
			a.ReviewResult, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Upsert(context.Background(), tx, a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicantRepo_GetByApplicantID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewApplicantRepo(mock)
	a := newTestApplicant()
	a.ReviewResult = strPtr(domain.ReviewResultApproved)

	mock.ExpectQuery("SELECT .+ FROM applicants WHERE applicant_id").
		WithArgs(a.ApplicantID).
		WillReturnRows(applicantRow(a))

	result, err := repo.GetByApplicantID(context.Background(), a.ApplicantID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.ApplicantID, result.ApplicantID)
	require.NotNil(t, result.UserID)
	assert.Equal(t, int64(42), *result.UserID)
	require.NotNil(t, result.ReviewResult)
	assert.Equal(t, domain.ReviewResultApproved, *result.ReviewResult)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicantRepo_GetByApplicantID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewApplicantRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM applicants WHERE applicant_id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(applicantColumns()))

	result, err := repo.GetByApplicantID(context.Background(), "app-missing")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicantRepo_Link(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewApplicantRepo(mock)

	mock.ExpectExec("UPDATE applicants SET user_id").
		WithArgs(int64(42), "app-63f5b90c").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.Link(context.Background(), "app-63f5b90c", 42)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicantRepo_ListUnlinked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewApplicantRepo(mock)
	a := newTestApplicant()
	a.UserID = nil

	mock.ExpectQuery("SELECT .+ FROM applicants WHERE user_id IS NULL").
		WithArgs(100).
		WillReturnRows(applicantRow(a))

	result, err := repo.ListUnlinked(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Nil(t, result[0].UserID)
	assert.Equal(t, a.ApplicantID, result[0].ApplicantID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
