package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvanek/projboard/internal/config"
	"github.com/mvanek/projboard/internal/model"
	"github.com/mvanek/projboard/internal/source"
	"github.com/mvanek/projboard/internal/store"
	"github.com/mvanek/projboard/internal/tui"
	"github.com/mvanek/projboard/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagFile    string
	flagDB      string
	flagProject string
)

var rootCmd = &cobra.Command{
	Use:   "projboard",
	Short: "Project status dashboard",
	Long:  "Terminal dashboard for a client project: progress, deadline, budget, and requirements.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "JSON snapshot file with projects and requirements")
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Project database path")
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", "", "Project ID to show")
}

// resolveSource decides where project data comes from: flags first, then
// config, then the default database path.
func resolveSource() (dataFile, dbPath string, err error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  %v (using defaults)\n", err)
	}

	if flagFile != "" {
		return flagFile, "", nil
	}
	if flagDB != "" {
		return "", flagDB, nil
	}
	if cfg.General.DataFile != "" {
		return cfg.General.DataFile, "", nil
	}
	if cfg.General.DBPath != "" {
		return "", cfg.General.DBPath, nil
	}

	home, herr := os.UserHomeDir()
	if herr != nil {
		return "", "", fmt.Errorf("resolving data source: %w", herr)
	}
	return "", filepath.Join(home, ".local", "share", "projboard", "projects.db"), nil
}

// resolveProjectID picks the project to display: flag first, then config
// default, then the only project in the source. Empty means the caller
// must pick (the TUI opens its picker; CLI commands error).
func resolveProjectID(projects []model.Project) string {
	if flagProject != "" {
		return flagProject
	}

	cfg, _ := config.Load()
	if cfg.General.DefaultProject != "" {
		return cfg.General.DefaultProject
	}

	if len(projects) == 1 {
		return projects[0].ID
	}
	return ""
}

// loadData reads the full snapshot from whichever source is configured.
func loadData() ([]model.Project, []model.Requirement, error) {
	dataFile, dbPath, err := resolveSource()
	if err != nil {
		return nil, nil, err
	}

	if dataFile != "" {
		snap, err := source.Load(dataFile)
		if err != nil {
			return nil, nil, err
		}
		return snap.Projects, snap.Requirements, nil
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = st.Close() }()

	projects, err := st.LoadProjects()
	if err != nil {
		return nil, nil, err
	}
	reqs, err := st.LoadAllRequirements()
	if err != nil {
		return nil, nil, err
	}
	return projects, reqs, nil
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so styling produces ANSI codes even when
	// lipgloss would otherwise fall back to the Ascii profile.
	lipgloss.SetColorProfile(termenv.TrueColor)

	dataFile, dbPath, err := resolveSource()
	if err != nil {
		return err
	}

	projectID := flagProject
	if projectID == "" {
		projectID = cfg.General.DefaultProject
	}

	app := tui.NewApp(dataFile, dbPath, projectID)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}

var errNoProject = errors.New("no project selected: pass --project or set default_project in config")
