package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/adapter/usecase"
	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port/mocks"
)

func newTestApp(t *testing.T) (*App, *mocks.MockCampaignAPI) {
	t.Helper()
	api := mocks.NewMockCampaignAPI(t)
	list := usecase.NewCampaignList(api, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewApp(context.Background(), list), api
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

const (
	testTimeout = time.Second
	testTick    = 5 * time.Millisecond
)

// press sends a key and returns the resulting command without running it.
func press(a *App, s string) tea.Cmd {
	_, cmd := a.Update(key(s))
	return cmd
}

func typeText(a *App, s string) {
	for _, r := range s {
		press(a, string(r))
	}
}

// runCmd runs an action command and feeds its result back to the app.
func runCmd(a *App, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	if msg, ok := cmd().(stateChangedMsg); ok {
		a.Update(msg)
	}
}

func load(t *testing.T, a *App) {
	t.Helper()
	runCmd(a, a.loadCmd())
}

func seed() []domain.Campaign {
	return []domain.Campaign{
		{ID: 1, Name: "Alpha", Budget: domain.MoneyFromFloat(1000), Spend: domain.MoneyFromFloat(250), Status: "On Track"},
		{ID: 2, Name: "Beta", Budget: domain.MoneyFromFloat(100), Spend: domain.MoneyFromFloat(120), Status: "Over Budget"},
	}
}

func TestViewShowsLoadingBeforeFirstLoad(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Contains(t, a.View(), "Loading campaigns...")
}

func TestViewLayoutsShowSameRows(t *testing.T) {
	a, api := newTestApp(t)
	api.EXPECT().List(mock.Anything).Return(seed(), nil).Once()
	load(t, a)

	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	wide := a.View()
	a.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	narrow := a.View()

	for _, out := range []string{wide, narrow} {
		assert.Contains(t, out, "Alpha")
		assert.Contains(t, out, "Beta")
		assert.Contains(t, out, "$1,000.00")
		assert.Contains(t, out, "$250.00")
		assert.Contains(t, out, "On Track")
		assert.Contains(t, out, "Over Budget")
	}
	assert.Contains(t, wide, "Budget")
	assert.Less(t, strings.Index(wide, "Alpha"), strings.Index(wide, "Beta"))
}

func TestEmptyList(t *testing.T) {
	a, api := newTestApp(t)
	api.EXPECT().List(mock.Anything).Return([]domain.Campaign{}, nil).Once()
	load(t, a)
	assert.Contains(t, a.View(), "No campaigns found. Add a new campaign to get started.")
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	a, api := newTestApp(t)
	api.EXPECT().List(mock.Anything).Return(seed(), nil).Once()
	api.EXPECT().Delete(mock.Anything, int64(2)).Return(nil).Once()
	load(t, a)

	press(a, "j")
	press(a, "d")
	out := a.View()
	assert.Contains(t, out, "Delete Campaign")
	assert.Contains(t, out, `Are you sure you want to delete "Beta"?`)

	// cancel keeps the row
	press(a, "n")
	assert.False(t, a.dialog.View().Open())
	assert.Len(t, a.list.Snapshot().Campaigns, 2)

	press(a, "d")
	runCmd(a, press(a, "y"))
	assert.False(t, a.dialog.View().Open())
	snap := a.list.Snapshot()
	require.Len(t, snap.Campaigns, 1)
	assert.Equal(t, int64(1), snap.Campaigns[0].ID)
	assert.Equal(t, 0, a.cursor)
}

func TestDialogIgnoresKeysWhileConfirming(t *testing.T) {
	a, api := newTestApp(t)
	api.EXPECT().List(mock.Anything).Return(seed(), nil).Once()
	load(t, a)

	release := make(chan struct{})
	api.EXPECT().Delete(mock.Anything, int64(1)).
		Run(func(context.Context, int64) { <-release }).
		Return(nil).Once()

	press(a, "d")
	_, cmd := a.Update(key("y"))
	require.NotNil(t, cmd)

	done := make(chan tea.Msg)
	go func() { done <- cmd() }()
	require.Eventually(t, func() bool { return a.dialog.View().Loading() }, testTimeout, testTick)

	_, again := a.Update(key("y"))
	assert.Nil(t, again)
	assert.Contains(t, a.View(), "Deleting...")

	close(release)
	a.Update(<-done)
	assert.Len(t, a.list.Snapshot().Campaigns, 1)
}

func TestFormSubmitResetsInputs(t *testing.T) {
	a, api := newTestApp(t)
	api.EXPECT().List(mock.Anything).Return(seed(), nil).Once()
	api.EXPECT().Create(mock.Anything, mock.MatchedBy(func(d domain.CreateCampaignData) bool {
		return d.Name == "Spring Sale" && d.Budget.String() == "1000" && d.Spend.String() == "0"
	})).Return(domain.Campaign{}, errors.New("HTTP error! status: 500")).Once()
	load(t, a)

	press(a, "n")
	typeText(a, "Spring Sale")
	press(a, "tab")
	typeText(a, "1000")
	press(a, "tab")
	typeText(a, "abc")

	_, cmd := a.Update(key("enter"))
	require.NotNil(t, cmd)

	// inputs are cleared before the create call resolves
	for _, in := range a.inputs {
		assert.Empty(t, in.Value())
	}
	assert.Empty(t, a.form.Draft().Name)
	assert.Equal(t, focusList, a.focus)

	runCmd(a, cmd)
	assert.Contains(t, a.View(), "Failed to create campaign")
	assert.Len(t, a.list.Snapshot().Campaigns, 2)

	press(a, "x")
	assert.NotContains(t, a.View(), "Failed to create campaign")
}

func TestFormRequiresName(t *testing.T) {
	a, _ := newTestApp(t)
	press(a, "n")
	press(a, "tab")
	press(a, "tab")
	press(a, "enter")
	assert.Equal(t, focusForm, a.focus)
	assert.Equal(t, fieldName, a.field)
	assert.False(t, a.list.Snapshot().IsSubmitting)
}

func TestReload(t *testing.T) {
	a, api := newTestApp(t)
	api.EXPECT().List(mock.Anything).Return(seed(), nil).Once()
	api.EXPECT().List(mock.Anything).Return(nil, errors.New("down")).Once()
	load(t, a)

	runCmd(a, press(a, "r"))
	out := a.View()
	assert.Contains(t, out, "Failed to load campaigns.")
	assert.Contains(t, out, "Alpha", "previous sequence kept")
}
