package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/brandcraft/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize brandcraft configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to choose an LLM provider, server port and history database, and writes a .brandcraft.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
