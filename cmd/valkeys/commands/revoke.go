package commands

import "github.com/spf13/cobra"

func revokeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke",
		Short: "Permanently revoke the master keys with a final manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return signManifest(nil, true)
		},
	}
}
