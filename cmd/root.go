package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dragboard/internal/app"
	"github.com/thenoetrevino/dragboard/internal/config"
	"github.com/thenoetrevino/dragboard/internal/logging"
	"github.com/thenoetrevino/dragboard/internal/seed"
	"github.com/thenoetrevino/dragboard/internal/tui"
)

// ErrBadAddSpec is returned for --add values that are not title|description|people
var ErrBadAddSpec = errors.New("expected title|description|people")

// NewRootCmd returns the dragboard command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dragboard",
		Short: "Dragboard - drag projects between lanes in your terminal",
		Long: `Dragboard is an in-memory project board with an Active and a Finished lane.
Grab a card with space (or the mouse), carry it to the other lane and drop it.

Examples:
  # Start with projects from a seed file
  dragboard --seed projects.yaml

  # Add projects on the command line
  dragboard --add "Build site|Landing page and docs|3" --add "Write tests||1"
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	cmd.Flags().String("config", "", "Config file (default ~/.config/dragboard/config.yaml)")
	cmd.Flags().String("seed", "", "YAML file of projects to load at startup")
	cmd.Flags().StringArray("add", nil, `Add an active project: "title|description|people" (repeatable)`)
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().String("log-file", "", "Log file (default ~/.dragboard/logs/dragboard.log)")
	cmd.Flags().Bool("write-config", false, "Write the effective config to the config path and exit")

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	levelName, _ := cmd.Flags().GetString("log-level")
	logFile, _ := cmd.Flags().GetString("log-file")
	configPath, _ := cmd.Flags().GetString("config")
	seedPath, _ := cmd.Flags().GetString("seed")
	adds, _ := cmd.Flags().GetStringArray("add")
	writeConfig, _ := cmd.Flags().GetBool("write-config")

	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	f, err := logging.Init(logFile, level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer f.Close()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if writeConfig {
		return saveConfig(cmd, cfg, configPath)
	}

	a, err := buildApp(seedPath, adds)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting dragboard", "projects", a.Registry.Len())
	p := tea.NewProgram(tui.InitialModel(ctx, a, cfg), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// saveConfig writes cfg to path, or to the default location when path is empty
func saveConfig(cmd *cobra.Command, cfg *config.Config, path string) error {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote config to %s\n", path)
	return nil
}

// buildApp creates the app and loads the seed file and --add projects into
// it, in that order
func buildApp(seedPath string, adds []string) (*app.App, error) {
	specs := make([]addSpec, 0, len(adds))
	for _, raw := range adds {
		s, err := parseAddSpec(raw)
		if err != nil {
			return nil, fmt.Errorf("--add %q: %w", raw, err)
		}
		specs = append(specs, s)
	}

	a, err := app.New(app.WithLogger(slog.Default()))
	if err != nil {
		return nil, err
	}

	if seedPath != "" {
		file, err := seed.Load(seedPath)
		if err != nil {
			return nil, err
		}
		a.Seed(file)
	}
	for _, s := range specs {
		a.AddProject(s.title, s.description, s.people)
	}
	return a, nil
}

type addSpec struct {
	title       string
	description string
	people      int
}

// parseAddSpec parses "title|description|people". Description and people
// may be omitted; people defaults to 0.
func parseAddSpec(raw string) (addSpec, error) {
	parts := strings.SplitN(raw, "|", 3)
	s := addSpec{title: strings.TrimSpace(parts[0])}
	if s.title == "" {
		return addSpec{}, ErrBadAddSpec
	}
	if len(parts) > 1 {
		s.description = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return addSpec{}, fmt.Errorf("people %q: %w", parts[2], ErrBadAddSpec)
		}
		s.people = n
	}
	return s, nil
}
