package domain

import (
	"fmt"
	"strings"
	"time"
)

const CurrentRegistryVersion = 1

type AccountID string

type AccountProfile struct {
	ID        AccountID
	Name      string
	IsPrimary bool
	CreatedAt time.Time
	AvatarID  int
}

// Registry is the persisted list of accounts plus the active one. An empty
// ActiveAccountID means no account is active.
type Registry struct {
	Accounts        []AccountProfile
	ActiveAccountID AccountID
	Version         int
}

func (r Registry) Find(id AccountID) (AccountProfile, bool) {
	for _, account := range r.Accounts {
		if account.ID == id {
			return account, true
		}
	}

	return AccountProfile{}, false
}

func (r Registry) Validate() error {
	seen := make(map[AccountID]struct{}, len(r.Accounts))
	for _, account := range r.Accounts {
		if strings.TrimSpace(string(account.ID)) == "" {
			return fmt.Errorf("account id is required")
		}
		if _, ok := seen[account.ID]; ok {
			return fmt.Errorf("duplicate account id %q", account.ID)
		}
		seen[account.ID] = struct{}{}
	}

	if r.ActiveAccountID == "" {
		return nil
	}
	if _, ok := seen[r.ActiveAccountID]; !ok {
		return fmt.Errorf("active account %q is not registered", r.ActiveAccountID)
	}

	return nil
}

// Clone returns a copy whose account slice does not alias r.
func (r Registry) Clone() Registry {
	accounts := make([]AccountProfile, len(r.Accounts))
	copy(accounts, r.Accounts)
	r.Accounts = accounts
	return r
}
