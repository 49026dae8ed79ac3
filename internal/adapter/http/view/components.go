// Package view renders the campaign page as HTML templ components.
package view

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"campaign-tracker/internal/adapter/usecase"
	"campaign-tracker/internal/core/domain"
)

const (
	emptyListMessage   = "No campaigns found. Add a new campaign to get started."
	loadingListMessage = "Loading campaigns..."
)

// writer accumulates the first write error so components can stream markup
// without checking every call.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) render(ctx context.Context, c templ.Component) {
	if w.err != nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

func component(fn func(ctx context.Context, w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		fn(ctx, w)
		return w.err
	})
}

// StatusClass returns the CSS class for a status badge.
func StatusClass(s domain.Status) string {
	return "status status-" + string(s.Category())
}

// StatusBadge renders the server-provided status label.
func StatusBadge(s domain.Status) templ.Component {
	return component(func(_ context.Context, w *writer) {
		w.raw(`<span class="` + StatusClass(s) + `">`)
		w.text(string(s))
		w.raw(`</span>`)
	})
}

func deleteButton(c domain.Campaign) templ.Component {
	return component(func(_ context.Context, w *writer) {
		w.raw(`<a class="btn btn-danger btn-sm" href="/?confirm=` + strconv.FormatInt(c.ID, 10) + `">Delete</a>`)
	})
}

// CampaignTable renders the dense layout shown on wide viewports.
func CampaignTable(campaigns []domain.Campaign) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<div class="campaign-table"><table><thead><tr>`)
		w.raw(`<th>Name</th><th>Budget</th><th>Spend</th><th>Status</th><th class="actions">Actions</th>`)
		w.raw(`</tr></thead><tbody>`)
		if len(campaigns) == 0 {
			w.raw(`<tr><td colspan="5" class="empty">`)
			w.text(emptyListMessage)
			w.raw(`</td></tr>`)
		}
		for _, c := range campaigns {
			w.raw(`<tr data-id="` + strconv.FormatInt(c.ID, 10) + `"><td class="name">`)
			w.text(c.Name)
			w.raw(`</td><td>`)
			w.text(domain.FormatUSD(c.Budget))
			w.raw(`</td><td>`)
			w.text(domain.FormatUSD(c.Spend))
			w.raw(`</td><td>`)
			w.render(ctx, StatusBadge(c.Status))
			w.raw(`</td><td>`)
			w.render(ctx, deleteButton(c))
			w.raw(`</td></tr>`)
		}
		w.raw(`</tbody></table></div>`)
	})
}

// CampaignCards renders the compact layout shown on narrow viewports.
func CampaignCards(campaigns []domain.Campaign) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<ul class="campaign-cards">`)
		if len(campaigns) == 0 {
			w.raw(`<li class="empty">`)
			w.text(emptyListMessage)
			w.raw(`</li>`)
		}
		for _, c := range campaigns {
			w.raw(`<li class="card" data-id="` + strconv.FormatInt(c.ID, 10) + `"><div class="card-head"><span class="name">`)
			w.text(c.Name)
			w.raw(`</span>`)
			w.render(ctx, StatusBadge(c.Status))
			w.raw(`</div><dl><dt>Budget</dt><dd>`)
			w.text(domain.FormatUSD(c.Budget))
			w.raw(`</dd><dt>Spend</dt><dd>`)
			w.text(domain.FormatUSD(c.Spend))
			w.raw(`</dd></dl>`)
			w.render(ctx, deleteButton(c))
			w.raw(`</li>`)
		}
		w.raw(`</ul>`)
	})
}

// CampaignList renders both layouts of the same sequence, or the loading
// placeholder while a load is in flight.
func CampaignList(s usecase.Snapshot) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		if s.IsLoading {
			w.raw(`<div class="loading"><div class="spinner"></div><p>`)
			w.text(loadingListMessage)
			w.raw(`</p></div>`)
			return
		}
		w.render(ctx, CampaignCards(s.Campaigns))
		w.render(ctx, CampaignTable(s.Campaigns))
	})
}

// Banner renders the page-level error message with a dismiss control.
func Banner(msg string) templ.Component {
	return component(func(_ context.Context, w *writer) {
		if msg == "" {
			return
		}
		w.raw(`<div class="banner" role="alert">`)
		w.text(msg)
		w.raw(`<form method="post" action="/error/dismiss"><button type="submit" aria-label="Dismiss">&#x2715;</button></form></div>`)
	})
}

// CampaignForm renders the "Add New Campaign" card. The draft always starts
// from defaults: the form is reset after every submission.
func CampaignForm(isSubmitting bool) templ.Component {
	return component(func(_ context.Context, w *writer) {
		w.raw(`<section class="panel form-panel"><h2>Add New Campaign</h2>`)
		w.raw(`<form method="post" action="/campaigns" class="campaign-form">`)
		w.raw(`<label for="name">Campaign Name</label>`)
		w.raw(`<input id="name" name="name" type="text" placeholder="Enter campaign name" value="" required>`)
		w.raw(`<label for="budget">Budget</label>`)
		w.raw(`<input id="budget" name="budget" type="number" step="0.01" min="0" placeholder="0.00" value="" required>`)
		w.raw(`<label for="spend">Spend</label>`)
		w.raw(`<input id="spend" name="spend" type="number" step="0.01" min="0" placeholder="0.00" value="" required>`)
		if isSubmitting {
			w.raw(`<button type="submit" class="btn btn-primary" disabled>Adding...</button>`)
		} else {
			w.raw(`<button type="submit" class="btn btn-primary">Add Campaign</button>`)
		}
		w.raw(`</form></section>`)
	})
}

// ConfirmDialog renders the modal confirmation for a destructive action.
// The confirm button is disabled while the action is in flight and on
// submit, so the same delete cannot be posted twice.
func ConfirmDialog(v usecase.DialogView) templ.Component {
	return component(func(_ context.Context, w *writer) {
		if !v.Open() {
			return
		}
		action := fmt.Sprintf("/campaigns/%d/delete", v.Target.ID)
		w.raw(`<div class="dialog-backdrop"><div class="dialog" role="dialog" aria-modal="true" aria-labelledby="dialog-title">`)
		w.raw(`<h3 id="dialog-title">`)
		w.text(v.Title)
		w.raw(`</h3><p>`)
		w.text(v.Description)
		w.raw(`</p><div class="dialog-actions">`)
		w.raw(`<a class="btn" href="/">Cancel</a>`)
		w.raw(`<form method="post" action="` + templ.EscapeString(action) + `" onsubmit="this.querySelector('button').disabled=true">`)
		if v.Loading() {
			w.raw(`<button type="submit" class="btn btn-danger" disabled>Deleting...</button>`)
		} else {
			w.raw(`<button type="submit" class="btn btn-danger">Delete</button>`)
		}
		w.raw(`</form></div></div></div>`)
	})
}

// PageData is everything the campaign page needs to render.
type PageData struct {
	State  usecase.Snapshot
	Dialog usecase.DialogView
}

// Page renders the full campaign budget tracker document.
func Page(p PageData) templ.Component {
	return component(func(ctx context.Context, w *writer) {
		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.raw(`<title>Campaign Budget Tracker</title><style>` + stylesheet + `</style></head><body><main>`)
		w.raw(`<header><h1>Campaign Budget Tracker</h1><p>Monitor and manage your advertising campaign budgets and spending</p></header>`)
		w.render(ctx, Banner(p.State.Error))
		w.raw(`<div class="grid"><section class="panel list-panel"><div class="panel-head"><h2>Campaign List</h2>`)
		w.raw(`<form method="post" action="/reload"><button type="submit" class="btn btn-sm">Reload</button></form></div>`)
		w.render(ctx, CampaignList(p.State))
		w.raw(`</section>`)
		w.render(ctx, CampaignForm(p.State.IsSubmitting))
		w.raw(`</div>`)
		w.render(ctx, ConfirmDialog(p.Dialog))
		w.raw(`</main></body></html>`)
	})
}
