package application

import "github.com/bnema/wallet-accounts-cli/internal/domain"

// State is a point-in-time snapshot of the engine published to observers.
type State struct {
	Phase           domain.Phase
	Accounts        []domain.AccountProfile
	ActiveAccountID domain.AccountID
	IsSwitching     bool
	IsAddingAccount bool
	IsLoaded        bool
}

func (s State) ActiveAccount() (domain.AccountProfile, bool) {
	if s.ActiveAccountID == "" {
		return domain.AccountProfile{}, false
	}

	return s.Find(s.ActiveAccountID)
}

func (s State) Find(id domain.AccountID) (domain.AccountProfile, bool) {
	for _, account := range s.Accounts {
		if account.ID == id {
			return account, true
		}
	}

	return domain.AccountProfile{}, false
}

type AccountView struct {
	Profile domain.AccountProfile
	Avatar  domain.Avatar
	Active  bool
}

type Status struct {
	State   State
	Session domain.Session
	Active  *AccountView
}
