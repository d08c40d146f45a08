package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Wallet is a blockchain wallet held by the external wallet provider for
// a platform user. At most one wallet per (user, chain) is required for
// DID generation; creation is lazy and idempotent.
type Wallet struct {
	ID        uuid.UUID `json:"id"`
	UserID    int64     `json:"user_id"`
	Address   string    `json:"address"`
	Chain     string    `json:"chain"`
	DID       string    `json:"did"`
	CreatedAt time.Time `json:"created_at"`
}

// BuildDID derives a decentralized identifier deterministically from the
// DID method and a wallet address, e.g. did:ethr:0xabc.
func BuildDID(method, address string) string {
	return fmt.Sprintf("did:%s:%s", method, address)
}
