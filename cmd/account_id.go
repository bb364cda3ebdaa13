package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/wallet-accounts-cli/internal/application"
	"github.com/bnema/wallet-accounts-cli/internal/domain"
)

const minIDPrefixLen = 4

// resolveAccountID accepts a full account id, an account name (case
// insensitive) or a unique id prefix.
func resolveAccountID(state application.State, raw string) (domain.AccountID, error) {
	requested := strings.TrimSpace(raw)
	if requested == "" {
		return "", fmt.Errorf("account is required")
	}

	if _, ok := state.Find(domain.AccountID(requested)); ok {
		return domain.AccountID(requested), nil
	}

	if id, err := uniqueMatch(state.Accounts, requested, func(p domain.AccountProfile) bool {
		return strings.EqualFold(strings.TrimSpace(p.Name), requested)
	}); id != "" || err != nil {
		return id, err
	}

	if len(requested) >= minIDPrefixLen {
		if id, err := uniqueMatch(state.Accounts, requested, func(p domain.AccountProfile) bool {
			return strings.HasPrefix(string(p.ID), requested)
		}); id != "" || err != nil {
			return id, err
		}
	}

	return "", fmt.Errorf("account %q: %w", requested, domain.ErrAccountNotFound)
}

func uniqueMatch(accounts []domain.AccountProfile, requested string, match func(domain.AccountProfile) bool) (domain.AccountID, error) {
	var found []domain.AccountID
	for _, account := range accounts {
		if match(account) {
			found = append(found, account.ID)
		}
	}

	switch len(found) {
	case 0:
		return "", nil
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("account %q is ambiguous: matches %d accounts, use the id", requested, len(found))
	}
}
