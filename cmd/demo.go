package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/console"
	"github.com/ziadkadry99/brandcraft/internal/demo"
	"github.com/ziadkadry99/brandcraft/internal/schedule"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Type out a sample business idea and generate its brand",
	Long:  `Picks one of four sample ideas and a random style, types the idea into the form one character at a time, then submits it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		s, err := newSession(cmd, brand.Request{})
		if err != nil {
			return err
		}
		defer s.Close()
		s.form = console.NewForm(cmd.OutOrStdout(), brand.Request{})

		d := &demo.Driver{
			Form:   s.form,
			Focus:  s.view,
			Submit: s.ctrl.Submit,
			Clock:  schedule.System{},
		}
		if err := d.Run(ctx); err != nil {
			return err
		}

		if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
			return actionMenu(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

func init() {
	demoCmd.Flags().BoolP("interactive", "i", false, "offer copy/download actions afterwards")
	addClientFlags(demoCmd)
	rootCmd.AddCommand(demoCmd)
}
