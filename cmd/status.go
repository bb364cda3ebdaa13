package cmd

import (
	"fmt"

	accountsrender "github.com/bnema/wallet-accounts-cli/internal/adapters/render/accounts"
	"github.com/bnema/wallet-accounts-cli/internal/application"
	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

type statusJSON struct {
	Phase        domain.Phase `json:"phase"`
	Accounts     int          `json:"accounts"`
	Active       *accountJSON `json:"active"`
	Session      sessionJSON  `json:"session"`
	IsSwitching  bool         `json:"isSwitching"`
	ActiveAvatar string       `json:"activeAvatar"`
}

type sessionJSON struct {
	Initialized bool   `json:"initialized"`
	Unlocked    bool   `json:"unlocked"`
	Name        string `json:"name,omitempty"`
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active account and wallet session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			session, err := app.binder.Session(ctx)
			if err != nil {
				return err
			}

			state := app.engine.State()
			status := application.Status{State: state, Session: session}
			if profile, ok := state.ActiveAccount(); ok {
				avatar, err := app.engine.Avatar(ctx, profile.ID)
				if err != nil {
					return err
				}
				status.Active = &application.AccountView{Profile: profile, Avatar: avatar, Active: true}
			}

			if asJSON {
				activeAvatar, err := app.engine.ActiveAvatar(ctx)
				if err != nil {
					return err
				}
				out := statusJSON{
					Phase:        state.Phase,
					Accounts:     len(state.Accounts),
					Session:      sessionJSON{Initialized: session.Initialized, Unlocked: session.Unlocked, Name: session.Name},
					IsSwitching:  state.IsSwitching,
					ActiveAvatar: activeAvatar.Emoji,
				}
				if status.Active != nil {
					active := toAccountJSON(*status.Active)
					out.Active = &active
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}

			rendered, err := app.renderStatus(status, accountsrender.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output status as JSON")

	return cmd
}
