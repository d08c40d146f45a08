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

func newTestIssuer() *domain.Issuer {
	return &domain.Issuer{
		ID:          9,
		UserID:      42,
		CompanyName: "Acme Capital",
	}
}

func issuerTestColumns() []string {
	return []string{"id", "user_id", "company_name", "verification_status", "verified_at", "did", "did_created_at"}
}

func issuerRow(i *domain.Issuer) *pgxmock.Rows {
	return pgxmock.NewRows(issuerTestColumns()).AddRow(
		i.ID, i.UserID, i.CompanyName, i.VerificationStatus,
		i.VerifiedAt, i.DID, i.DIDCreatedAt,
	)
}

func TestIssuerRepo_GetByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIssuerRepo(mock)
	i := newTestIssuer()

	mock.ExpectQuery("SELECT .+ FROM issuers WHERE user_id").
		WithArgs(i.UserID).
		WillReturnRows(issuerRow(i))

	result, err := repo.GetByUserID(context.Background(), i.UserID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, i.ID, result.ID)
	assert.Equal(t, i.CompanyName, result.CompanyName)
	assert.False(t, result.VerificationStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssuerRepo_GetByApplicantID_Linked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIssuerRepo(mock)
	i := newTestIssuer()

	mock.ExpectQuery("SELECT .+ FROM issuers i JOIN applicants a").
		WithArgs("app-63f5b90c").
		WillReturnRows(issuerRow(i))

	result, err := repo.GetByApplicantID(context.Background(), "app-63f5b90c")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, i.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssuerRepo_GetByApplicantID_Unlinked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIssuerRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM issuers i JOIN applicants a").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(issuerTestColumns()))

	result, err := repo.GetByApplicantID(context.Background(), "app-orphan")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssuerRepo_SetVerified_Transition(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIssuerRepo(mock)
	at := time.Now().UTC()

	mock.ExpectExec("UPDATE issuers SET verification_status").
		WithArgs(true, at, int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	changed, err := repo.SetVerified(context.Background(), 9, true, at)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssuerRepo_SetVerified_Redelivery_NoChange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIssuerRepo(mock)
	at := time.Now().UTC()

	// Already verified: the conditional WHERE matches zero rows.
	mock.ExpectExec("UPDATE issuers SET verification_status").
		WithArgs(true, at, int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	changed, err := repo.SetVerified(context.Background(), 9, true, at)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssuerRepo_SetDID_FirstWriterWins(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIssuerRepo(mock)
	at := time.Now().UTC()

	mock.ExpectExec("UPDATE issuers SET did").
		WithArgs("did:ethr:0xabc", at, int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE issuers SET did").
		WithArgs("did:ethr:0xother", at, int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	set, err := repo.SetDID(context.Background(), 9, "did:ethr:0xabc", at)
	require.NoError(t, err)
	assert.True(t, set)

	set, err = repo.SetDID(context.Background(), 9, "did:ethr:0xother", at)
	require.NoError(t, err)
	assert.False(t, set, "did is monotonic, second write must be a no-op")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIssuerRepo_ListVerifiedWithoutDID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewIssuerRepo(mock)
	i := newTestIssuer()
	i.VerificationStatus = true

	mock.ExpectQuery("SELECT .+ FROM issuers").
		WithArgs(500).
		WillReturnRows(issuerRow(i))

	result, err := repo.ListVerifiedWithoutDID(context.Background(), 500)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].VerificationStatus)
	assert.Nil(t, result[0].DID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
