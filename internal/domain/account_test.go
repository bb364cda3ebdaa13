package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		registry Registry
		wantErr  string
	}{
		{
			name:     "empty registry",
			registry: Registry{Version: CurrentRegistryVersion},
		},
		{
			name: "active account registered",
			registry: Registry{
				Accounts:        []AccountProfile{{ID: "acc-1"}, {ID: "acc-2"}},
				ActiveAccountID: "acc-2",
			},
		},
		{
			name:     "missing id",
			registry: Registry{Accounts: []AccountProfile{{Name: "Main"}}},
			wantErr:  "account id is required",
		},
		{
			name:     "duplicate id",
			registry: Registry{Accounts: []AccountProfile{{ID: "acc-1"}, {ID: "acc-1"}}},
			wantErr:  "duplicate account id",
		},
		{
			name: "dangling active id",
			registry: Registry{
				Accounts:        []AccountProfile{{ID: "acc-1"}},
				ActiveAccountID: "acc-9",
			},
			wantErr: "is not registered",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.registry.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestRegistryFind(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	registry := Registry{Accounts: []AccountProfile{
		{ID: "acc-1", Name: "Main", IsPrimary: true, CreatedAt: created, AvatarID: 2},
	}}

	got, ok := registry.Find("acc-1")
	require.True(t, ok)
	assert.Equal(t, "Main", got.Name)

	_, ok = registry.Find("acc-2")
	assert.False(t, ok)
}

func TestRegistryCloneDoesNotAliasAccounts(t *testing.T) {
	t.Parallel()

	original := Registry{Accounts: []AccountProfile{{ID: "acc-1", AvatarID: 1}}}
	clone := original.Clone()
	clone.Accounts[0].AvatarID = 7

	assert.Equal(t, 1, original.Accounts[0].AvatarID)
}
