package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/brandcraft/internal/export"
	"github.com/ziadkadry99/brandcraft/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List stored generations, or print one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of generations")
	historyCmd.Flags().Int("offset", 0, "number of generations to skip")
	historyCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	out := cmd.OutOrStdout()

	database, err := openDatabase(appCfg)
	if err != nil {
		return err
	}
	defer database.Close()
	store := history.NewStore(database)

	if len(args) == 1 {
		g, err := store.Get(ctx, args[0])
		if err != nil {
			return err
		}
		if g == nil {
			return fmt.Errorf("generation %s not found", args[0])
		}
		if jsonOutput {
			return writeIndentedJSON(out, g)
		}
		fmt.Fprintln(out, export.DownloadText(g.Idea, g.Style, g.Result))
		return nil
	}

	gens, err := store.List(ctx, limit, offset)
	if err != nil {
		return err
	}
	if jsonOutput {
		if gens == nil {
			gens = []history.Generation{}
		}
		return writeIndentedJSON(out, gens)
	}
	if len(gens) == 0 {
		fmt.Fprintln(out, "No generations yet. Run `brandcraft generate` to create one.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tSTYLE\tSOURCE\tNAMES")
	for _, g := range gens {
		names := ""
		if g.Result != nil {
			names = strings.Join(g.Result.BrandNames, ", ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", g.ID, g.CreatedAt.Local().Format("2006-01-02 15:04"), g.Style, g.Source, names)
	}
	return tw.Flush()
}

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
