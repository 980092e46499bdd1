package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/site"
	"folio/internal/telemetry"
	"folio/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// options holds the parsed command line.
type options struct {
	configPath string
	contentDir string
	debugLog   string
	noMouse    bool
	page       string
	post       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "folio",
		Short: "A personal portfolio in the terminal",
		Long: `folio shows a personal portfolio (home, about, blog, contact and a
data chart) as a full-screen terminal app. Switch pages with tab or 1-5,
open posts with enter, and press SPC for the command menu.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/folio/config.toml)")
	pf.StringVar(&opts.contentDir, "content", "", "directory with site.yaml and posts/ (default: built-in content)")

	f := cmd.Flags()
	f.StringVar(&opts.debugLog, "debug-log", "", "write the debug log to this file (FOLIO_DEBUG=1 uses debug.log)")
	f.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")
	f.StringVar(&opts.page, "page", "", "start on this page: home, about, blog, contact or data")
	f.StringVar(&opts.post, "post", "", "start with the post with this id open")

	cmd.AddCommand(newPostsCmd(&opts))
	return cmd
}

func newPostsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "posts",
		Short: "List blog posts (id, date, title)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*opts)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			return printPosts(cmd.OutOrStdout(), cat)
		},
	}
}

func printPosts(w io.Writer, cat *site.Catalog) error {
	for _, p := range cat.Posts {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Date.Format(content.DateLayout), p.Title); err != nil {
			return err
		}
	}
	return nil
}

func runTUI(ctx context.Context, opts options) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("folio needs a terminal; use `folio posts` for plain output")
	}

	closeLog, err := setupLogging(opts.debugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	tp, err := telemetry.New(ctx, cfg.Telemetry.ServiceName)
	if err != nil {
		log.Printf("main.runTUI: telemetry disabled: %v", err)
		tp = telemetry.Disabled()
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			log.Printf("main.runTUI: telemetry shutdown: %v", err)
		}
	}()

	mouse := cfg.UI.Mouse && !opts.noMouse
	var zones *zone.Manager
	if mouse {
		zones = zone.New()
		defer zones.Close()
	}

	app := ui.NewAppModel(cat, ui.Options{Config: cfg, Telemetry: tp, Zones: zones})
	if err := openStart(app, opts); err != nil {
		return err
	}

	var progOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	progOpts = append(progOpts, tea.WithContext(ctx))

	log.Printf("main.runTUI: starting with %d posts, policy=%s, mouse=%v", len(cat.Posts), cfg.SelectionPolicy(), mouse)
	if _, err := tea.NewProgram(app.AsTeaModel(), progOpts...).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// openStart applies --page and --post. An unknown post id is not fatal; the
// blog listing is shown instead.
func openStart(app *ui.AppModel, opts options) error {
	var page site.Page
	if opts.page != "" {
		p, ok := site.ParsePage(cases.Title(language.English).String(opts.page))
		if !ok {
			return fmt.Errorf("unknown page %q", opts.page)
		}
		page = p
	}
	if page == 0 && opts.post == "" {
		return nil
	}
	app.Open(page, opts.post)
	return nil
}

// setupLogging sends the log package to a file when debugging is on. The
// TUI owns the terminal, so otherwise log output is dropped.
func setupLogging(path string) (func(), error) {
	if path == "" && os.Getenv("FOLIO_DEBUG") != "" {
		path = "debug.log"
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "folio")
	if err != nil {
		return nil, fmt.Errorf("debug log: %w", err)
	}
	return func() { f.Close() }, nil
}

func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if opts.contentDir != "" {
		cfg.Content.Dir = opts.contentDir
	}
	return cfg, nil
}

func loadCatalog(cfg *config.Config) (*site.Catalog, error) {
	if cfg.Content.Dir != "" {
		return content.LoadDir(cfg.Content.Dir)
	}
	return content.Default()
}
