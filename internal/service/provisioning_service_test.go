package service

import (
	"context"
	"errors"
	"testing"

	"kyc-credential-gateway/internal/core/domain"
	"kyc-credential-gateway/internal/core/ports"
	"kyc-credential-gateway/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type provisioningDeps struct {
	svc          *ProvisioningServiceImpl
	issuerRepo   *mocks.MockIssuerRepository
	walletRepo   *mocks.MockWalletRepository
	walletClient *mocks.MockWalletProviderClient
	ctrl         *gomock.Controller
}

func setupProvisioning(t *testing.T) *provisioningDeps {
	ctrl := gomock.NewController(t)
	d := &provisioningDeps{
		issuerRepo:   mocks.NewMockIssuerRepository(ctrl),
		walletRepo:   mocks.NewMockWalletRepository(ctrl),
		walletClient: mocks.NewMockWalletProviderClient(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewProvisioningService(d.issuerRepo, d.walletRepo, d.walletClient, "ethereum", "ethr", nil, zerolog.Nop())
	return d
}

func TestEnsureDID_AlreadySet(t *testing.T) {
	d := setupProvisioning(t)
	defer d.ctrl.Finish()

	did := "did:ethr:0xABC"
	issuer := &domain.Issuer{ID: 7, UserID: 7, DID: &did}

	got, created, err := d.svc.EnsureDID(context.Background(), issuer)
	require.NoError(t, err)
	assert.Equal(t, did, got)
	assert.False(t, created, "existing DID short-circuits without provider calls")
}

func TestEnsureDID_FullBootstrap(t *testing.T) {
	d := setupProvisioning(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	issuer := &domain.Issuer{ID: 7, UserID: 70}

	d.walletRepo.EXPECT().GetByUserAndChain(ctx, int64(70), "ethereum").Return(nil, nil)
	d.walletClient.EXPECT().CreateWallet(ctx, int64(70), "ethereum").
		Return(&ports.WalletCreateResult{Address: "0xD34D"}, nil)
	d.walletRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, w *domain.Wallet) error {
			assert.Equal(t, "0xD34D", w.Address)
			assert.Equal(t, "did:ethr:0xD34D", w.DID)
			return nil
		})
	d.issuerRepo.EXPECT().SetDID(ctx, int64(7), "did:ethr:0xD34D", gomock.Any()).Return(true, nil)

	did, created, err := d.svc.EnsureDID(ctx, issuer)
	require.NoError(t, err)
	assert.Equal(t, "did:ethr:0xD34D", did)
	assert.True(t, created)
}

func TestEnsureDID_ExistingWallet(t *testing.T) {
	d := setupProvisioning(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	issuer := &domain.Issuer{ID: 7, UserID: 70}

	d.walletRepo.EXPECT().GetByUserAndChain(ctx, int64(70), "ethereum").
		Return(&domain.Wallet{UserID: 70, Address: "0xFEED", Chain: "ethereum"}, nil)
	d.issuerRepo.EXPECT().SetDID(ctx, int64(7), "did:ethr:0xFEED", gomock.Any()).Return(true, nil)

	did, created, err := d.svc.EnsureDID(ctx, issuer)
	require.NoError(t, err)
	assert.Equal(t, "did:ethr:0xFEED", did)
	assert.True(t, created)
}

func TestEnsureDID_ProviderDuplicateTreatedAsSuccess(t *testing.T) {
	d := setupProvisioning(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	issuer := &domain.Issuer{ID: 7, UserID: 70}

	gomock.InOrder(
		d.walletRepo.EXPECT().GetByUserAndChain(ctx, int64(70), "ethereum").Return(nil, nil),
		d.walletClient.EXPECT().CreateWallet(ctx, int64(70), "ethereum").Return(nil, ports.ErrWalletExists),
		d.walletRepo.EXPECT().GetByUserAndChain(ctx, int64(70), "ethereum").
			Return(&domain.Wallet{UserID: 70, Address: "0xBEEF", Chain: "ethereum"}, nil),
	)
	d.issuerRepo.EXPECT().SetDID(ctx, int64(7), "did:ethr:0xBEEF", gomock.Any()).Return(true, nil)

	did, created, err := d.svc.EnsureDID(ctx, issuer)
	require.NoError(t, err)
	assert.Equal(t, "did:ethr:0xBEEF", did)
	assert.True(t, created)
}

func TestEnsureDID_ProviderFailureLeavesIssuerUntouched(t *testing.T) {
	d := setupProvisioning(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	issuer := &domain.Issuer{ID: 7, UserID: 70}

	d.walletRepo.EXPECT().GetByUserAndChain(ctx, int64(70), "ethereum").Return(nil, nil)
	d.walletClient.EXPECT().CreateWallet(ctx, int64(70), "ethereum").Return(nil, errors.New("provider 503"))
	// No SetDID expectation: the verification decision is never rolled back.

	_, created, err := d.svc.EnsureDID(ctx, issuer)
	assert.Error(t, err)
	assert.False(t, created)
}

func TestEnsureDID_ConcurrentWinner(t *testing.T) {
	d := setupProvisioning(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	issuer := &domain.Issuer{ID: 7, UserID: 70}
	concurrentDID := "did:ethr:0xC0FFEE"

	d.walletRepo.EXPECT().GetByUserAndChain(ctx, int64(70), "ethereum").
		Return(&domain.Wallet{UserID: 70, Address: "0xC0FFEE", Chain: "ethereum"}, nil)
	// Conditional write loses: another delivery already set the DID.
	d.issuerRepo.EXPECT().SetDID(ctx, int64(7), "did:ethr:0xC0FFEE", gomock.Any()).Return(false, nil)
	d.issuerRepo.EXPECT().GetByID(ctx, int64(7)).
		Return(&domain.Issuer{ID: 7, UserID: 70, DID: &concurrentDID}, nil)

	did, created, err := d.svc.EnsureDID(ctx, issuer)
	require.NoError(t, err)
	assert.Equal(t, concurrentDID, did)
	assert.False(t, created, "losing the race is not a new DID generation")
}

func TestEnsureDID_WalletInsertRace(t *testing.T) {
	d := setupProvisioning(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	issuer := &domain.Issuer{ID: 7, UserID: 70}

	gomock.InOrder(
		d.walletRepo.EXPECT().GetByUserAndChain(ctx, int64(70), "ethereum").Return(nil, nil),
		d.walletClient.EXPECT().CreateWallet(ctx, int64(70), "ethereum").
			Return(&ports.WalletCreateResult{Address: "0xAAA"}, nil),
		d.walletRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("unique violation")),
		d.walletRepo.EXPECT().GetByUserAndChain(ctx, int64(70), "ethereum").
			Return(&domain.Wallet{UserID: 70, Address: "0xAAA", Chain: "ethereum"}, nil),
	)
	d.issuerRepo.EXPECT().SetDID(ctx, int64(7), "did:ethr:0xAAA", gomock.Any()).Return(true, nil)

	did, created, err := d.svc.EnsureDID(ctx, issuer)
	require.NoError(t, err)
	assert.Equal(t, "did:ethr:0xAAA", did)
	assert.True(t, created)
}
