package ports

import (
	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/google/uuid"
)

type IDGenerator interface {
	NewAccountID() domain.AccountID
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewAccountID() domain.AccountID {
	return domain.AccountID(uuid.NewString())
}
