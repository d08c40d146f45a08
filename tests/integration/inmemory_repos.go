package integration

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"kyc-credential-gateway/internal/core/domain"
	"kyc-credential-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events map[uuid.UUID]*domain.WebhookEvent
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{events: make(map[uuid.UUID]*domain.WebhookEvent)}
}

func (r *inMemoryEventRepo) Create(ctx context.Context, event *domain.WebhookEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *inMemoryEventRepo) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return fmt.Errorf("event not found")
	}
	now := time.Now().UTC()
	e.Status = domain.EventStatusProcessed
	e.ProcessedAt = &now
	return nil
}

func (r *inMemoryEventRepo) MarkError(ctx context.Context, id uuid.UUID, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return fmt.Errorf("event not found")
	}
	e.Status = domain.EventStatusError
	e.ErrorMessage = &message
	return nil
}

func (r *inMemoryEventRepo) ListByStatus(ctx context.Context, status domain.EventStatus, limit int) ([]domain.WebhookEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.WebhookEvent
	for _, e := range r.events {
		if e.Status == status {
			result = append(result, *e)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *inMemoryEventRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

// --- In-Memory Applicant Repo ---

type inMemoryApplicantRepo struct {
	mu         sync.RWMutex
	applicants map[string]*domain.Applicant
}

func newInMemoryApplicantRepo() *inMemoryApplicantRepo {
	return &inMemoryApplicantRepo{applicants: make(map[string]*domain.Applicant)}
}

// Upsert mirrors the SQL merge semantics: status always updates, an
// existing user link is never overwritten, the correlation id is replaced
// only by a non-empty incoming value, and a nil incoming review result
// preserves the stored one.
func (r *inMemoryApplicantRepo) Upsert(ctx context.Context, tx pgx.Tx, applicant *domain.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.applicants[applicant.ApplicantID]
	if !ok {
		copied := *applicant
		copied.CreatedAt = time.Now().UTC()
		copied.UpdatedAt = copied.CreatedAt
		r.applicants[applicant.ApplicantID] = &copied
		return nil
	}
	existing.Status = applicant.Status
	if existing.UserID == nil {
		existing.UserID = applicant.UserID
	}
	if applicant.CorrelationID != "" {
		existing.CorrelationID = applicant.CorrelationID
	}
	if applicant.ReviewResult != nil {
		existing.ReviewResult = applicant.ReviewResult
	}
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryApplicantRepo) GetByApplicantID(ctx context.Context, applicantID string) (*domain.Applicant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.applicants[applicantID]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *inMemoryApplicantRepo) Link(ctx context.Context, applicantID string, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applicants[applicantID]
	if !ok {
		return fmt.Errorf("applicant not found")
	}
	if a.UserID == nil {
		a.UserID = &userID
		a.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (r *inMemoryApplicantRepo) ListUnlinked(ctx context.Context, limit int) ([]domain.Applicant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Applicant
	for _, a := range r.applicants {
		if a.UserID == nil {
			result = append(result, *a)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

// --- In-Memory Personal Info Repo ---

type inMemoryPersonalInfoRepo struct {
	mu    sync.RWMutex
	infos map[string]*domain.PersonalInfo
	addrs map[string]*domain.AddressInfo
}

func newInMemoryPersonalInfoRepo() *inMemoryPersonalInfoRepo {
	return &inMemoryPersonalInfoRepo{
		infos: make(map[string]*domain.PersonalInfo),
		addrs: make(map[string]*domain.AddressInfo),
	}
}

func (r *inMemoryPersonalInfoRepo) Merge(ctx context.Context, info *domain.PersonalInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.infos[info.ApplicantID]
	if !ok {
		copied := *info
		r.infos[info.ApplicantID] = &copied
		return nil
	}
	existing.Merge(info)
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryPersonalInfoRepo) Get(ctx context.Context, applicantID string) (*domain.PersonalInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.infos[applicantID]
	if !ok {
		return nil, nil
	}
	copied := *info
	return &copied, nil
}

func (r *inMemoryPersonalInfoRepo) MergeAddress(ctx context.Context, addr *domain.AddressInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.addrs[addr.ApplicantID]
	if !ok {
		copied := *addr
		r.addrs[addr.ApplicantID] = &copied
		return nil
	}
	if addr.Street != nil {
		existing.Street = addr.Street
	}
	if addr.City != nil {
		existing.City = addr.City
	}
	if addr.State != nil {
		existing.State = addr.State
	}
	if addr.PostalCode != nil {
		existing.PostalCode = addr.PostalCode
	}
	if addr.Country != nil {
		existing.Country = addr.Country
	}
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *inMemoryPersonalInfoRepo) GetPrimaryAddress(ctx context.Context, applicantID string) (*domain.AddressInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	addr, ok := r.addrs[applicantID]
	if !ok {
		return nil, nil
	}
	copied := *addr
	return &copied, nil
}

// --- In-Memory History Repo ---

type inMemoryHistoryRepo struct {
	mu      sync.RWMutex
	entries []domain.VerificationHistory
}

func newInMemoryHistoryRepo() *inMemoryHistoryRepo {
	return &inMemoryHistoryRepo{}
}

func (r *inMemoryHistoryRepo) Append(ctx context.Context, tx pgx.Tx, entry *domain.VerificationHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryHistoryRepo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.VerificationHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.VerificationHistory
	for _, e := range r.entries {
		if e.ApplicantID == applicantID {
			result = append(result, e)
		}
	}
	return result, nil
}

// --- In-Memory Issuer Repo ---

type inMemoryIssuerRepo struct {
	mu         sync.RWMutex
	issuers    map[int64]*domain.Issuer
	applicants *inMemoryApplicantRepo
}

func newInMemoryIssuerRepo(applicants *inMemoryApplicantRepo) *inMemoryIssuerRepo {
	return &inMemoryIssuerRepo{
		issuers:    make(map[int64]*domain.Issuer),
		applicants: applicants,
	}
}

func (r *inMemoryIssuerRepo) add(issuer *domain.Issuer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issuers[issuer.ID] = issuer
}

func (r *inMemoryIssuerRepo) GetByID(ctx context.Context, id int64) (*domain.Issuer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.issuers[id]
	if !ok {
		return nil, nil
	}
	copied := *i
	return &copied, nil
}

func (r *inMemoryIssuerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Issuer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, i := range r.issuers {
		if i.UserID == userID {
			copied := *i
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryIssuerRepo) GetByApplicantID(ctx context.Context, applicantID string) (*domain.Issuer, error) {
	applicant, err := r.applicants.GetByApplicantID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil || applicant.UserID == nil {
		return nil, nil
	}
	return r.GetByUserID(ctx, *applicant.UserID)
}

func (r *inMemoryIssuerRepo) SetVerified(ctx context.Context, id int64, verified bool, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.issuers[id]
	if !ok {
		return false, fmt.Errorf("issuer not found")
	}
	if i.VerificationStatus == verified {
		return false, nil
	}
	i.VerificationStatus = verified
	i.VerifiedAt = &at
	return true, nil
}

func (r *inMemoryIssuerRepo) SetDID(ctx context.Context, id int64, did string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.issuers[id]
	if !ok {
		return false, fmt.Errorf("issuer not found")
	}
	if i.DID != nil {
		return false, nil
	}
	i.DID = &did
	i.DIDCreatedAt = &at
	return true, nil
}

func (r *inMemoryIssuerRepo) ListVerifiedWithoutDID(ctx context.Context, limit int) ([]domain.Issuer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Issuer
	for _, i := range r.issuers {
		if i.VerificationStatus && i.DID == nil {
			result = append(result, *i)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[int64]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[int64]*domain.User)}
}

func (r *inMemoryUserRepo) add(user *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[string]*domain.Wallet
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[string]*domain.Wallet)}
}

func walletKey(userID int64, chain string) string {
	return fmt.Sprintf("%d/%s", userID, chain)
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := walletKey(w.UserID, w.Chain)
	if _, exists := r.wallets[key]; exists {
		return nil
	}
	copied := *w
	r.wallets[key] = &copied
	return nil
}

func (r *inMemoryWalletRepo) GetByUserAndChain(ctx context.Context, userID int64, chain string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[walletKey(userID, chain)]
	if !ok {
		return nil, nil
	}
	copied := *w
	return &copied, nil
}

// --- Fake Wallet/Credential Provider ---

// fakeWalletProvider counts provider calls so tests can assert that
// redeliveries never reach the external side.
type fakeWalletProvider struct {
	createCalls atomic.Int64
	mintCalls   atomic.Int64

	mu      sync.Mutex
	created map[int64]bool
}

func newFakeWalletProvider() *fakeWalletProvider {
	return &fakeWalletProvider{created: make(map[int64]bool)}
}

func (p *fakeWalletProvider) CreateWallet(ctx context.Context, userID int64, chain string) (*ports.WalletCreateResult, error) {
	p.createCalls.Add(1)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.created[userID] {
		return nil, ports.ErrWalletExists
	}
	p.created[userID] = true
	return &ports.WalletCreateResult{Address: fmt.Sprintf("0x%08x", userID)}, nil
}

func (p *fakeWalletProvider) MintCredential(ctx context.Context, recipientDID string, claims map[string]any) (string, error) {
	n := p.mintCalls.Add(1)
	return fmt.Sprintf("cred-%d", n), nil
}

// --- Fake Verification Provider ---

type fakeVerificationProvider struct {
	mu      sync.RWMutex
	details map[string][]byte
}

func newFakeVerificationProvider() *fakeVerificationProvider {
	return &fakeVerificationProvider{details: make(map[string][]byte)}
}

func (p *fakeVerificationProvider) setDetail(applicantID string, payload []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.details[applicantID] = payload
}

func (p *fakeVerificationProvider) FetchApplicantDetail(ctx context.Context, applicantID string) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	detail, ok := p.details[applicantID]
	if !ok {
		return nil, fmt.Errorf("applicant detail unavailable")
	}
	return detail, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
