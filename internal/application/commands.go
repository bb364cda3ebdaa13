package application

import "github.com/bnema/wallet-accounts-cli/internal/domain"

type AddAccountCommand struct {
	Name string
	Seed string
	// AvatarID defaults to domain.DefaultAvatarID when zero.
	AvatarID  int
	SetActive bool
	// ProvisionalSession marks a session the caller materialized for this
	// add and clears again on failure. The new seed is then rolled back like
	// any other uncommitted write.
	ProvisionalSession bool
}

type SetAvatarCommand struct {
	ID       domain.AccountID
	AvatarID int
}
