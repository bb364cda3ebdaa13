package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	accountsrender "github.com/bnema/wallet-accounts-cli/internal/adapters/render/accounts"
	"github.com/bnema/wallet-accounts-cli/internal/application"
	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage wallet accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountAddCmd(app),
		newAccountSwitchCmd(app),
		newAccountAvatarCmd(app),
	)

	return cmd
}

type accountJSON struct {
	ID        domain.AccountID `json:"id"`
	Name      string           `json:"name"`
	IsPrimary bool             `json:"isPrimary"`
	CreatedAt time.Time        `json:"createdAt"`
	AvatarID  int              `json:"avatarId"`
	Avatar    string           `json:"avatar"`
	Active    bool             `json:"active"`
}

func toAccountJSON(view application.AccountView) accountJSON {
	return accountJSON{
		ID:        view.Profile.ID,
		Name:      view.Profile.Name,
		IsPrimary: view.Profile.IsPrimary,
		CreatedAt: view.Profile.CreatedAt,
		AvatarID:  view.Avatar.ID,
		Avatar:    view.Avatar.Emoji,
		Active:    view.Active,
	}
}

func newAccountListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List wallet accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			views, err := accountViews(cmd.Context(), app)
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]accountJSON, 0, len(views))
				for _, view := range views {
					out = append(out, toAccountJSON(view))
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			rendered, err := app.renderAccounts(views, accountsrender.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render accounts: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output accounts as JSON")

	return cmd
}

func newAccountAddCmd(app *app) *cobra.Command {
	var (
		name      string
		avatarID  int
		activate  bool
		seed      string
		seedStdin bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Import a wallet seed as a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if seedStdin {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read seed from stdin: %w", err)
				}
				seed = string(raw)
			}
			seed = normalizeSeed(seed)
			if seed == "" {
				return errors.New("seed is empty")
			}

			profile, err := addAccount(cmd.Context(), app, application.AddAccountCommand{
				Name:      name,
				Seed:      seed,
				AvatarID:  avatarID,
				SetActive: activate,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added account %s (%s)\n", profile.Name, profile.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Account display name")
	cmd.Flags().IntVar(&avatarID, "avatar", domain.DefaultAvatarID, "Avatar index (see `wa avatars`)")
	cmd.Flags().BoolVar(&activate, "activate", false, "Make the new account the active one")
	cmd.Flags().StringVar(&seed, "seed", "", "Seed phrase (prefer --seed-stdin)")
	cmd.Flags().BoolVar(&seedStdin, "seed-stdin", false, "Read the seed phrase from stdin")
	_ = cmd.MarkFlagRequired("name")
	cmd.MarkFlagsMutuallyExclusive("seed", "seed-stdin")
	cmd.MarkFlagsOneRequired("seed", "seed-stdin")

	return cmd
}

// addAccount records a new account. For an activated first account the
// session is materialized here and the engine only records it.
func addAccount(ctx context.Context, app *app, cmd application.AddAccountCommand) (domain.AccountProfile, error) {
	app.engine.SetAddingAccount(true)
	defer app.engine.SetAddingAccount(false)

	materialized := false
	if cmd.SetActive {
		if _, hasActive := app.engine.ActiveAccount(); !hasActive {
			session, err := app.binder.Session(ctx)
			if err != nil {
				return domain.AccountProfile{}, err
			}
			if session.Initialized {
				return domain.AccountProfile{}, fmt.Errorf("a wallet session (%s) is already materialized without a registered account", session.Name)
			}
			if err := app.binder.Materialize(ctx, strings.TrimSpace(cmd.Name), cmd.Seed); err != nil {
				return domain.AccountProfile{}, err
			}
			materialized = true
			cmd.ProvisionalSession = true
		}
	}

	profile, err := app.engine.AddAccount(ctx, cmd)
	if err != nil {
		if materialized {
			if clearErr := app.binder.Clear(ctx); clearErr != nil {
				return domain.AccountProfile{}, fmt.Errorf("add account and clear new session: %w", errors.Join(err, clearErr))
			}
		}
		return domain.AccountProfile{}, err
	}

	return profile, nil
}

func newAccountSwitchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <id|name>",
		Short: "Switch the wallet session to another account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state := app.engine.State()
			id, err := resolveAccountID(state, args[0])
			if err != nil {
				return err
			}
			if id == state.ActiveAccountID {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "account %s is already active\n", id)
				return err
			}

			profile, _ := state.Find(id)
			err = runSwitchSpinner(cmd.Context(), cmd.ErrOrStderr(), app.engine, profile.Name, func(ctx context.Context) error {
				return app.engine.SwitchAccount(ctx, id)
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "switched to %s (%s)\n", profile.Name, id)
			return err
		},
	}
}

func newAccountAvatarCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <id|name> <index>",
		Short: "Assign an avatar to an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveAccountID(app.engine.State(), args[0])
			if err != nil {
				return err
			}

			avatarID, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil {
				return fmt.Errorf("%w: %q is not a number", domain.ErrInvalidAvatar, args[1])
			}

			if err := app.engine.SetAvatar(cmd.Context(), application.SetAvatarCommand{ID: id, AvatarID: avatarID}); err != nil {
				return err
			}

			avatar := domain.LookupAvatar(avatarID)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "account %s avatar set to %d %s\n", id, avatar.ID, avatar.Emoji)
			return err
		},
	}
}

func accountViews(ctx context.Context, app *app) ([]application.AccountView, error) {
	state := app.engine.State()
	views := make([]application.AccountView, 0, len(state.Accounts))
	for _, profile := range state.Accounts {
		avatar, err := app.engine.Avatar(ctx, profile.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, application.AccountView{
			Profile: profile,
			Avatar:  avatar,
			Active:  profile.ID == state.ActiveAccountID,
		})
	}

	return views, nil
}

func normalizeSeed(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
