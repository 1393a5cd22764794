package commands

import (
	"github.com/spf13/cobra"

	"valkeys/internal/app"
)

var (
	keyFile    string
	configPath string
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:          "valkeys",
		Short:        "Validator key management CLI",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Load(configPath)
			if err != nil {
				return err
			}
			if keyFile != "" {
				cfg.KeyFile = keyFile
			}
			appCtx = app.Wire(cfg)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&keyFile, "keyfile", "",
		"master key file (default ~/.valkeys/validator-keys.json)")
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default ~/.valkeys/config.yaml)")

	root.AddCommand(createCmd(), restoreCmd(), signCmd(), revokeCmd(), showCmd())
	return root.Execute()
}
