package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/logo"
)

var logoCmd = &cobra.Command{
	Use:   "logo [name]",
	Short: "Render an SVG logo for a brand name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, _ := cmd.Flags().GetString("style")
		color, _ := cmd.Flags().GetString("color")
		outPath, _ := cmd.Flags().GetString("out")

		svg := logo.Render(args[0], string(brand.StyleOrDefault(style)), color)
		if outPath == "" {
			fmt.Fprintln(cmd.OutOrStdout(), svg)
			return nil
		}
		if err := os.WriteFile(outPath, []byte(svg), 0o644); err != nil {
			return fmt.Errorf("writing logo: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Logo written to %s\n", outPath)
		return nil
	},
}

func init() {
	logoCmd.Flags().String("style", string(brand.DefaultStyle), "style: Modern, Minimal, Luxury, Bold or Playful")
	logoCmd.Flags().String("color", brand.NeutralColor, "primary colour")
	logoCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(logoCmd)
}
