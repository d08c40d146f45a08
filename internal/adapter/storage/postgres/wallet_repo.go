package postgres

import (
	"context"
	"errors"
	"fmt"

	"kyc-credential-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a wallet record. The table carries a unique constraint
// on (user_id, chain); a conflicting insert surfaces as an error and the
// caller re-reads to find the winner.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, user_id, address, chain, did, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.UserID, w.Address, w.Chain, w.DID, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByUserAndChain fetches a user's wallet on a given chain.
func (r *WalletRepo) GetByUserAndChain(ctx context.Context, userID int64, chain string) (*domain.Wallet, error) {
	query := `SELECT id, user_id, address, chain, did, created_at
		FROM wallets WHERE user_id = $1 AND chain = $2`

	w := &domain.Wallet{}
	err := r.pool.QueryRow(ctx, query, userID, chain).Scan(
		&w.ID, &w.UserID, &w.Address, &w.Chain, &w.DID, &w.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by user and chain: %w", err)
	}
	return w, nil
}
