// Package tui provides the interactive Bubble Tea project panel.
package tui

import (
	"fmt"
	"time"

	"github.com/mvanek/projboard/internal/model"
	"github.com/mvanek/projboard/internal/pipeline"
	"github.com/mvanek/projboard/internal/reveal"
	"github.com/mvanek/projboard/internal/source"
	"github.com/mvanek/projboard/internal/store"
	"github.com/mvanek/projboard/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the data source finishes loading.
type DataLoadedMsg struct {
	Projects     []model.Project
	Requirements []model.Requirement
}

// LoadErrMsg reports a data source failure.
type LoadErrMsg struct {
	Err error
}

// BudgetHiddenMsg is sent when the reveal controller's auto-hide timer
// masks the budget again.
type BudgetHiddenMsg struct{}

// App is the root Bubble Tea model: one project panel plus an optional
// project picker when the source holds several projects.
type App struct {
	// Data source, exactly one of these is used
	dataFile string
	dbPath   string

	// Loaded snapshot
	projects     []model.Project
	requirements []model.Requirement
	loaded       bool
	loadErr      error

	// Current selection and its derived view
	projectID string
	summary   pipeline.Summary

	budget *reveal.Controller

	// Project picker (huh form), active when no project is selected
	picker  *huh.Form
	picking bool

	// UI state
	width    int
	height   int
	showHelp bool
	scroll   int

	spinner spinner.Model
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
)

// NewApp creates the panel model. projectID may be empty; the picker
// takes over when the source holds more than one project.
func NewApp(dataFile, dbPath, projectID string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		dataFile:  dataFile,
		dbPath:    dbPath,
		projectID: projectID,
		budget:    reveal.NewController(),
		spinner:   sp,
	}
}

// Close releases the reveal controller's pending timer. Call after the
// program exits so no auto-hide fires against a defunct panel.
func (a App) Close() {
	a.budget.Close()
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.dataFile, a.dbPath),
		a.spinner.Tick,
		waitForHide(a.budget),
	)
}

// loadDataCmd reads the snapshot file or the project database off the UI
// goroutine.
func loadDataCmd(dataFile, dbPath string) tea.Cmd {
	return func() tea.Msg {
		if dataFile != "" {
			snap, err := source.Load(dataFile)
			if err != nil {
				return LoadErrMsg{Err: err}
			}
			return DataLoadedMsg{Projects: snap.Projects, Requirements: snap.Requirements}
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return LoadErrMsg{Err: err}
		}
		defer func() { _ = st.Close() }()

		projects, err := st.LoadProjects()
		if err != nil {
			return LoadErrMsg{Err: err}
		}
		reqs, err := st.LoadAllRequirements()
		if err != nil {
			return LoadErrMsg{Err: err}
		}
		return DataLoadedMsg{Projects: projects, Requirements: reqs}
	}
}

// waitForHide blocks on the controller's auto-hide channel and converts
// each signal into a message, mirroring the channel-subscription command
// idiom used for data loading.
func waitForHide(c *reveal.Controller) tea.Cmd {
	return func() tea.Msg {
		<-c.Hides()
		return BudgetHiddenMsg{}
	}
}

// recompute rebuilds the display summary from the current snapshot,
// selection, and reveal state.
func (a *App) recompute() {
	p, ok := a.findProject(a.projectID)
	if !ok {
		return
	}
	a.summary = pipeline.BuildSummary(p, a.requirements, time.Now(), a.budget.Revealed())
	if a.scroll > len(a.summary.Requirements)-1 {
		a.scroll = 0
	}
}

func (a App) findProject(id string) (model.Project, bool) {
	for _, p := range a.projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}

// pickerKey addresses the select's value inside the form. The model is a
// value type, so the selection is read back through the form rather than
// bound to a field pointer that would escape into a stale copy.
const pickerKey = "project"

func newPickerForm(projects []model.Project) *huh.Form {
	opts := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		label := p.Name
		if p.Client != "" {
			label = fmt.Sprintf("%s · %s", p.Name, p.Client)
		}
		opts = append(opts, huh.NewOption(label, p.ID))
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Key(pickerKey).
			Title("Select a project").
			Options(opts...),
	))
}

func (a *App) startPicker() tea.Cmd {
	a.picker = newPickerForm(a.projects)
	a.picking = true
	if a.width > 0 {
		a.picker = a.picker.WithWidth(a.width).WithHeight(a.height)
	}
	return a.picker.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.picker != nil {
			a.picker = a.picker.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			if key == "q" {
				return a, tea.Quit
			}
			return a, nil
		}

		if a.picking && a.picker != nil {
			return a.updatePicker(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "b":
			// Toggling while revealed cancels the pending auto-hide;
			// toggling while hidden schedules a fresh one.
			a.budget.Toggle()
			a.recompute()
			return a, nil

		case "j", "down":
			if a.scroll < len(a.summary.Requirements)-1 {
				a.scroll++
			}
			return a, nil

		case "k", "up":
			if a.scroll > 0 {
				a.scroll--
			}
			return a, nil

		case "g":
			a.scroll = 0
			return a, nil

		case "p":
			if len(a.projects) > 1 {
				return a, a.startPicker()
			}
			return a, nil

		case "r":
			a.loaded = false
			return a, tea.Batch(loadDataCmd(a.dataFile, a.dbPath), a.spinner.Tick)
		}
		return a, nil

	case DataLoadedMsg:
		a.projects = msg.Projects
		a.requirements = msg.Requirements
		a.loaded = true
		a.loadErr = nil

		if _, ok := a.findProject(a.projectID); !ok {
			a.projectID = ""
		}
		if a.projectID == "" && len(a.projects) == 1 {
			a.projectID = a.projects[0].ID
		}
		if a.projectID == "" && len(a.projects) > 1 {
			return a, a.startPicker()
		}
		a.recompute()
		return a, nil

	case LoadErrMsg:
		a.loaded = true
		a.loadErr = msg.Err
		return a, nil

	case BudgetHiddenMsg:
		a.recompute()
		// Resubscribe for the next auto-hide.
		return a, waitForHide(a.budget)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.picking && a.picker != nil {
		return a.updatePicker(msg)
	}

	return a, nil
}

func (a App) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.picker.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.picker = f
	}

	if a.picker.State == huh.StateCompleted {
		a.projectID = a.picker.GetString(pickerKey)
		a.picking = false
		a.picker = nil
		a.recompute()
		return a, nil
	}

	if a.picker.State == huh.StateAborted {
		a.picking = false
		a.picker = nil
		if a.projectID == "" {
			return a, tea.Quit
		}
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}
