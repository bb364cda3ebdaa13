package cmd

import (
	"testing"

	"github.com/bnema/wallet-accounts-cli/internal/application"
	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAccountID(t *testing.T) {
	state := application.State{Accounts: []domain.AccountProfile{
		{ID: "9f1c2b7a-0000-4000-8000-000000000001", Name: "Main"},
		{ID: "9f1c2b7a-0000-4000-8000-000000000002", Name: "Savings"},
		{ID: "41aa0e3d-0000-4000-8000-000000000003", Name: "savings"},
	}}

	tests := []struct {
		name    string
		raw     string
		want    domain.AccountID
		wantErr string
	}{
		{name: "exact id", raw: "9f1c2b7a-0000-4000-8000-000000000002", want: "9f1c2b7a-0000-4000-8000-000000000002"},
		{name: "name case insensitive", raw: "MAIN", want: "9f1c2b7a-0000-4000-8000-000000000001"},
		{name: "unique prefix", raw: "41aa", want: "41aa0e3d-0000-4000-8000-000000000003"},
		{name: "ambiguous name", raw: "Savings", wantErr: "ambiguous"},
		{name: "ambiguous prefix", raw: "9f1c2b7a", wantErr: "ambiguous"},
		{name: "short prefix", raw: "41a", wantErr: domain.ErrAccountNotFound.Error()},
		{name: "blank", raw: "  ", wantErr: "account is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveAccountID(state, tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
