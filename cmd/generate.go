package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/client"
	"github.com/ziadkadry99/brandcraft/internal/console"
	"github.com/ziadkadry99/brandcraft/internal/progress"
	"github.com/ziadkadry99/brandcraft/internal/schedule"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a brand identity from the terminal",
	Long: `Submits a business idea to the BrandCraft server (or the in-process generator
with --local) and renders the names, palette and logo in the terminal.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("idea", "", "business idea")
	generateCmd.Flags().String("style", string(brand.DefaultStyle), "style: Modern, Minimal, Luxury, Bold or Playful")
	generateCmd.Flags().String("audience", "", "target audience")
	generateCmd.Flags().BoolP("interactive", "i", false, "prompt for missing fields and offer copy/download actions")
	addClientFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

// addClientFlags registers the flags newSession reads.
func addClientFlags(c *cobra.Command) {
	c.Flags().String("url", "", "server base URL (overrides config)")
	c.Flags().Bool("local", false, "generate in-process instead of calling the server")
	c.Flags().String("logo-out", "", "write the SVG logo to this file")
}

// session bundles the terminal rendition of the generator page.
type session struct {
	form     *console.Form
	view     *console.View
	palette  *console.Palette
	renderer *console.Renderer
	results  *client.Session
	ctrl     *client.Controller
	exporter *client.Exporter
	download *client.DirDownloader
	logo     io.Closer
}

func newSession(cmd *cobra.Command, req brand.Request) (*session, error) {
	cfg := appCfg
	out := cmd.OutOrStdout()

	var gen client.Generator
	if local, _ := cmd.Flags().GetBool("local"); local {
		gen = localGenerator{gen: newGenerator(cfg)}
	} else {
		baseURL, _ := cmd.Flags().GetString("url")
		if baseURL == "" {
			baseURL = cfg.Client.BaseURL
		}
		gen = client.New(baseURL, clientTimeout(cfg))
	}

	clock := schedule.System{}
	s := &session{
		form:    console.NewForm(nil, req),
		view:    console.NewView(out, progress.NewReporter(cmd.ErrOrStderr())),
		palette: console.NewPalette(client.SystemClipboard{}, clock),
		results: &client.Session{},
	}
	s.renderer = console.NewRenderer(out, s.palette)

	if path, _ := cmd.Flags().GetString("logo-out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating logo file: %w", err)
		}
		s.renderer.Logo = f
		s.logo = f
	}

	s.ctrl = client.NewController(gen, s.results, s.view, s.renderer)
	s.download = &client.DirDownloader{Dir: cfg.Client.DownloadDir}
	s.exporter = client.NewExporter(s.results, client.SystemClipboard{}, s.download, clock)
	return s, nil
}

func (s *session) Close() {
	s.palette.Close()
	s.exporter.Close()
	if s.logo != nil {
		s.logo.Close()
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	idea, _ := cmd.Flags().GetString("idea")
	style, _ := cmd.Flags().GetString("style")
	audience, _ := cmd.Flags().GetString("audience")
	interactive, _ := cmd.Flags().GetBool("interactive")

	req := brand.Request{Idea: idea, Style: style, Audience: audience}
	if interactive && req.Idea == "" {
		var err error
		if req, err = promptRequest(req); err != nil {
			return err
		}
	}
	if req.Idea == "" {
		return fmt.Errorf("--idea is required (or use --interactive)")
	}

	s, err := newSession(cmd, req)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.ctrl.Submit(ctx, s.form.Values()); err != nil {
		return err
	}

	if interactive {
		return actionMenu(cmd.OutOrStdout(), s)
	}
	return nil
}

func promptRequest(req brand.Request) (brand.Request, error) {
	ideaPrompt := promptui.Prompt{
		Label: "Business idea",
		Validate: func(s string) error {
			if s == "" {
				return errors.New("business idea is required")
			}
			return nil
		},
	}
	idea, err := ideaPrompt.Run()
	if err != nil {
		return req, fmt.Errorf("idea: %w", err)
	}
	req.Idea = idea

	styles := make([]string, len(brand.Styles))
	cursor := 0
	for i, st := range brand.Styles {
		styles[i] = string(st)
		if string(st) == req.Style {
			cursor = i
		}
	}
	stylePrompt := promptui.Select{Label: "Style", Items: styles, CursorPos: cursor}
	if _, req.Style, err = stylePrompt.Run(); err != nil {
		return req, fmt.Errorf("style: %w", err)
	}

	audiencePrompt := promptui.Prompt{Label: "Target audience (optional)", Default: req.Audience}
	if req.Audience, err = audiencePrompt.Run(); err != nil {
		return req, fmt.Errorf("audience: %w", err)
	}
	return req, nil
}

const (
	actionCopyColor = "Copy a colour"
	actionCopyAll   = "Copy All"
	actionDownload  = "Download brand-identity.txt"
	actionQuit      = "Quit"
)

// actionMenu offers the result page's buttons until the user quits.
func actionMenu(out io.Writer, s *session) error {
	for {
		menu := promptui.Select{
			Label: "Next",
			Items: []string{actionCopyColor, actionCopyAll, actionDownload, actionQuit},
		}
		_, choice, err := menu.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case actionCopyColor:
			if err := copyColor(out, s.palette); err != nil {
				return err
			}
		case actionCopyAll:
			if _, err := s.exporter.CopyAll(); err != nil {
				fmt.Fprintf(out, "Copy failed: %v\n", err)
				continue
			}
			fmt.Fprintln(out, s.exporter.Label())
		case actionDownload:
			if _, err := s.exporter.DownloadAll(s.form.Values()); err != nil {
				fmt.Fprintf(out, "Download failed: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Saved %s\n", s.download.Saved)
		case actionQuit:
			return nil
		}
	}
}

func copyColor(out io.Writer, palette *console.Palette) error {
	swatches := palette.Swatches()
	if len(swatches) == 0 {
		fmt.Fprintln(out, "No colours to copy.")
		return nil
	}
	items := make([]string, len(swatches))
	for i, sw := range swatches {
		items[i] = sw.Color()
	}
	pick := promptui.Select{Label: "Colour", Items: items}
	i, _, err := pick.Run()
	if err != nil {
		return nil
	}
	if err := palette.Swatch(i).Click(); err != nil {
		fmt.Fprintf(out, "Copy failed: %v\n", err)
		return nil
	}
	label, _ := palette.Swatch(i).Label()
	fmt.Fprintln(out, label)
	return nil
}
