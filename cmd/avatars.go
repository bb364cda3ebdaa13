package cmd

import (
	"fmt"

	"github.com/bnema/wallet-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newAvatarsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "avatars",
		Short: "List the available account avatars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := app.renderCatalog(domain.AvatarCatalog)
			if err != nil {
				return fmt.Errorf("render avatars: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}
