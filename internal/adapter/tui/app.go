// Package tui provides the interactive Bubble Tea frontend for the campaign
// budget tracker.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"campaign-tracker/internal/adapter/usecase"
	"campaign-tracker/internal/core/domain"
)

// stateChangedMsg is sent when a list action (load, create, delete)
// completes. The new state is read from the controller on render.
type stateChangedMsg struct{}

type focusArea int

const (
	focusList focusArea = iota
	focusForm
)

const (
	fieldName = iota
	fieldBudget
	fieldSpend
	fieldCount
)

const (
	// below this width the list renders as cards instead of a table
	compactWidth = 80
	defaultWidth = 100
)

// App is the root Bubble Tea model.
type App struct {
	ctx    context.Context
	list   *usecase.CampaignList
	form   *usecase.Form
	dialog *usecase.Dialog

	inputs  []textinput.Model
	field   int
	focus   focusArea
	cursor  int
	spinner spinner.Model

	width  int
	height int
}

// NewApp creates the terminal model over the shared page controller.
func NewApp(ctx context.Context, list *usecase.CampaignList) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	a := &App{
		ctx:     ctx,
		list:    list,
		form:    usecase.NewForm(),
		dialog:  usecase.NewDialog(),
		spinner: sp,
		width:   defaultWidth,
	}
	a.inputs = newInputs()
	return a
}

func newInputs() []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 100
		ti.Width = 28
		switch i {
		case fieldName:
			ti.Placeholder = "Enter campaign name"
		case fieldBudget, fieldSpend:
			ti.Placeholder = "0.00"
			ti.CharLimit = 16
		}
		inputs[i] = ti
	}
	return inputs
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadCmd(), a.spinner.Tick)
}

func (a *App) loadCmd() tea.Cmd {
	return func() tea.Msg {
		// failures are shown in the banner
		_ = a.list.Load(a.ctx)
		return stateChangedMsg{}
	}
}

func (a *App) createCmd(data domain.CreateCampaignData) tea.Cmd {
	return func() tea.Msg {
		_, _ = a.list.Create(a.ctx, data)
		return stateChangedMsg{}
	}
}

func (a *App) confirmDeleteCmd() tea.Cmd {
	return func() tea.Msg {
		_ = a.dialog.Confirm(a.ctx, func(ctx context.Context, c domain.Campaign) error {
			_ = a.list.Remove(ctx, c.ID)
			return nil
		})
		return stateChangedMsg{}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case stateChangedMsg:
		a.clampCursor()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.dialog.View().Open() {
			return a, a.updateDialog(msg)
		}
		if a.focus == focusForm {
			return a, a.updateForm(msg)
		}
		return a, a.updateList(msg)
	}
	return a, nil
}

func (a *App) updateList(msg tea.KeyMsg) tea.Cmd {
	snap := a.list.Snapshot()
	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(snap.Campaigns)-1 {
			a.cursor++
		}
	case "d", "delete":
		if a.cursor < len(snap.Campaigns) {
			a.dialog.Open(snap.Campaigns[a.cursor])
		}
	case "r":
		if !snap.IsLoading {
			return a.loadCmd()
		}
	case "x":
		a.list.DismissError()
	case "n", "tab":
		return a.focusField(fieldName)
	}
	return nil
}

func (a *App) updateDialog(msg tea.KeyMsg) tea.Cmd {
	v := a.dialog.View()
	if v.Loading() {
		// confirm is not re-invocable while in flight
		return nil
	}
	switch msg.String() {
	case "y", "enter":
		return a.confirmDeleteCmd()
	case "n", "esc":
		a.dialog.Cancel()
	}
	return nil
}

func (a *App) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.blurForm()
		return nil
	case "tab", "down":
		return a.focusField((a.field + 1) % fieldCount)
	case "shift+tab", "up":
		return a.focusField((a.field + fieldCount - 1) % fieldCount)
	case "enter":
		if a.field < fieldSpend {
			return a.focusField(a.field + 1)
		}
		return a.submit()
	}

	var cmd tea.Cmd
	a.inputs[a.field], cmd = a.inputs[a.field].Update(msg)
	a.syncDraft()
	return cmd
}

// submit hands the draft to the controller and resets the inputs at once;
// the outcome surfaces through the banner.
func (a *App) submit() tea.Cmd {
	if a.list.Snapshot().IsSubmitting {
		return nil
	}
	if a.inputs[fieldName].Value() == "" {
		return a.focusField(fieldName)
	}
	var cmd tea.Cmd
	_ = a.form.Submit(a.ctx, func(_ context.Context, data domain.CreateCampaignData) error {
		cmd = a.createCmd(data)
		return nil
	})
	for i := range a.inputs {
		a.inputs[i].SetValue("")
	}
	a.blurForm()
	return cmd
}

func (a *App) syncDraft() {
	a.form.SetName(a.inputs[fieldName].Value())
	a.form.SetBudget(a.inputs[fieldBudget].Value())
	a.form.SetSpend(a.inputs[fieldSpend].Value())
}

func (a *App) focusField(i int) tea.Cmd {
	a.focus = focusForm
	a.field = i
	for j := range a.inputs {
		a.inputs[j].Blur()
	}
	return a.inputs[i].Focus()
}

func (a *App) blurForm() {
	a.focus = focusList
	for j := range a.inputs {
		a.inputs[j].Blur()
	}
}

func (a *App) clampCursor() {
	n := len(a.list.Snapshot().Campaigns)
	if a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}
