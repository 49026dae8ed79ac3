package view

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/adapter/usecase"
	"campaign-tracker/internal/core/domain"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func sample() []domain.Campaign {
	return []domain.Campaign{
		{ID: 1, Name: "Spring Sale", Budget: domain.MoneyFromFloat(1000), Spend: domain.MoneyFromFloat(250), Status: "On Track"},
		{ID: 2, Name: "Summer <Blast>", Budget: domain.MoneyFromFloat(500), Spend: domain.MoneyFromFloat(450), Status: "Warning"},
		{ID: 3, Name: "Fall", Budget: domain.MoneyFromFloat(100), Spend: domain.MoneyFromFloat(150), Status: "Over Budget"},
		{ID: 4, Name: "Winter", Budget: domain.MoneyFromFloat(0), Spend: domain.MoneyFromFloat(0), Status: "No Budget"},
	}
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, "status status-good", StatusClass("On Track"))
	assert.Equal(t, "status status-caution", StatusClass("Warning"))
	assert.Equal(t, "status status-danger", StatusClass("Over Budget"))
	assert.Equal(t, "status status-neutral", StatusClass("Paused"))
}

// TestLayoutsAgree ensures the card list and the table show the same rows
// with the same formatting and styling.
func TestLayoutsAgree(t *testing.T) {
	cs := sample()
	table := render(t, CampaignTable(cs))
	cards := render(t, CampaignCards(cs))

	for _, out := range []string{table, cards} {
		assert.Equal(t, len(cs), strings.Count(out, `data-id="`))
		assert.Contains(t, out, "$1,000.00")
		assert.Contains(t, out, "$250.00")
		assert.Contains(t, out, `<span class="status status-good">On Track</span>`)
		assert.Contains(t, out, `<span class="status status-caution">Warning</span>`)
		assert.Contains(t, out, `<span class="status status-danger">Over Budget</span>`)
		assert.Contains(t, out, `<span class="status status-neutral">No Budget</span>`)
		assert.Contains(t, out, "Summer &lt;Blast&gt;")
		assert.NotContains(t, out, "<Blast>")
		assert.Contains(t, out, `href="/?confirm=3"`)
	}

	// server order is preserved
	assert.Less(t, strings.Index(table, `data-id="1"`), strings.Index(table, `data-id="4"`))
}

func TestEmptyPlaceholder(t *testing.T) {
	out := render(t, CampaignList(usecase.Snapshot{Campaigns: nil}))
	assert.Equal(t, 2, strings.Count(out, emptyListMessage))
	assert.NotContains(t, out, `data-id="`)
}

func TestLoadingPlaceholder(t *testing.T) {
	out := render(t, CampaignList(usecase.Snapshot{IsLoading: true, Campaigns: sample()}))
	assert.Contains(t, out, "Loading campaigns...")
	assert.NotContains(t, out, `data-id="`)
}

func TestBanner(t *testing.T) {
	assert.Empty(t, render(t, Banner("")))
	out := render(t, Banner(usecase.MsgCreateFailed))
	assert.Contains(t, out, `role="alert"`)
	assert.Contains(t, out, "Failed to create campaign")
	assert.Contains(t, out, `action="/error/dismiss"`)
}

func TestCampaignFormSubmittingState(t *testing.T) {
	idle := render(t, CampaignForm(false))
	assert.Contains(t, idle, ">Add Campaign</button>")
	assert.Contains(t, idle, `min="0"`)
	assert.Equal(t, 3, strings.Count(idle, " required>"))

	busy := render(t, CampaignForm(true))
	assert.Contains(t, busy, "disabled>Adding...</button>")
}

func TestConfirmDialog(t *testing.T) {
	d := usecase.NewDialog()
	assert.Empty(t, render(t, ConfirmDialog(d.View())))

	d.Open(domain.Campaign{ID: 9, Name: "Spring Sale"})
	out := render(t, ConfirmDialog(d.View()))
	assert.Contains(t, out, "Delete Campaign")
	assert.Contains(t, out, "Are you sure you want to delete &#34;Spring Sale&#34;? This action cannot be undone.")
	assert.Contains(t, out, `action="/campaigns/9/delete"`)
	assert.Contains(t, out, `class="btn btn-danger">Delete</button>`)
}

func TestConfirmDialogLoadingDisablesConfirm(t *testing.T) {
	out := render(t, ConfirmDialog(usecase.DialogView{
		State:  usecase.DialogConfirming,
		Title:  "Delete Campaign",
		Target: domain.Campaign{ID: 1},
	}))
	assert.Contains(t, out, "disabled>Deleting...</button>")
}

func TestPage(t *testing.T) {
	out := render(t, Page(PageData{
		State: usecase.Snapshot{Campaigns: sample(), Loaded: true, Error: usecase.MsgLoadFailed},
	}))
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "Campaign Budget Tracker")
	assert.Contains(t, out, usecase.MsgLoadFailed[:20])
	assert.Contains(t, out, "Add New Campaign")
	assert.NotContains(t, out, `role="dialog"`)
}
