package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"campaign-tracker/internal/adapter/usecase"
	"campaign-tracker/internal/core/domain"
)

const (
	emptyListMessage   = "No campaigns found. Add a new campaign to get started."
	loadingListMessage = "Loading campaigns..."

	moneyColWidth  = 14
	statusColWidth = 13
	markerWidth    = 2
)

// View implements tea.Model.
func (a *App) View() string {
	snap := a.list.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Campaign Budget Tracker"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Monitor and manage your advertising campaign budgets and spending"))
	b.WriteString("\n\n")

	if snap.Error != "" {
		b.WriteString(bannerStyle.Render(snap.Error))
		b.WriteString(mutedStyle.Render("  (x to dismiss)"))
		b.WriteString("\n\n")
	}

	if d := a.dialog.View(); d.Open() {
		b.WriteString(renderDialog(d))
		b.WriteString("\n")
		return b.String()
	}

	list := a.renderList(snap)
	form := a.renderForm(snap)
	if a.width < compactWidth {
		b.WriteString(form)
		b.WriteString("\n")
		b.WriteString(list)
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, " ", form))
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(a.helpLine()))
	return b.String()
}

func (a *App) helpLine() string {
	if a.focus == focusForm {
		return "tab next field • enter submit • esc back"
	}
	return "j/k move • d delete • n new • r reload • q quit"
}

func (a *App) renderList(snap usecase.Snapshot) string {
	var body string
	switch {
	case snap.IsLoading || !snap.Loaded:
		body = a.spinner.View() + " " + loadingListMessage
	case a.width < compactWidth:
		body = renderCards(snap.Campaigns, a.cursor, a.focus == focusList)
	default:
		body = renderTable(snap.Campaigns, a.cursor, a.focus == focusList, a.listWidth())
	}
	return panelStyle.Render(titleStyle.Render("Campaign List") + "\n\n" + body)
}

// listWidth is the inner width available to the table on wide terminals.
func (a *App) listWidth() int {
	w := a.width*2/3 - 4
	if w < compactWidth-4 {
		w = compactWidth - 4
	}
	return w
}

func renderStatus(s domain.Status) string {
	return statusStyle(s.Category()).Render(string(s))
}

func marker(selected bool) string {
	if selected {
		return accentStyle.Render("> ")
	}
	return "  "
}

// renderTable draws the dense layout.
func renderTable(cs []domain.Campaign, cursor int, active bool, width int) string {
	nameWidth := width - markerWidth - 2*moneyColWidth - statusColWidth
	if nameWidth < 10 {
		nameWidth = 10
	}
	cell := func(w int) lipgloss.Style { return lipgloss.NewStyle().Width(w).MaxWidth(w) }

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", markerWidth))
	b.WriteString(headerStyle.Render(cell(nameWidth).Render("Name") +
		cell(moneyColWidth).Render("Budget") +
		cell(moneyColWidth).Render("Spend") +
		cell(statusColWidth).Render("Status")))
	b.WriteString("\n")

	if len(cs) == 0 {
		b.WriteString(mutedStyle.Render(emptyListMessage))
		return b.String()
	}
	for i, c := range cs {
		selected := active && i == cursor
		row := cell(nameWidth).Render(truncate(c.Name, nameWidth-1)) +
			cell(moneyColWidth).Render(domain.FormatUSD(c.Budget)) +
			cell(moneyColWidth).Render(domain.FormatUSD(c.Spend)) +
			renderStatus(c.Status)
		if selected {
			row = selectedStyle.Render(row)
		}
		b.WriteString(marker(selected) + row)
		if i < len(cs)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderCards draws the compact layout used on narrow terminals.
func renderCards(cs []domain.Campaign, cursor int, active bool) string {
	if len(cs) == 0 {
		return mutedStyle.Render(emptyListMessage)
	}
	cards := make([]string, 0, len(cs))
	for i, c := range cs {
		selected := active && i == cursor
		card := fmt.Sprintf("%s%s %s\n  %s %s\n  %s %s",
			marker(selected),
			titleStyle.Render(c.Name),
			renderStatus(c.Status),
			mutedStyle.Render("Budget"), domain.FormatUSD(c.Budget),
			mutedStyle.Render("Spend "), domain.FormatUSD(c.Spend),
		)
		cards = append(cards, card)
	}
	return strings.Join(cards, "\n\n")
}

func (a *App) renderForm(snap usecase.Snapshot) string {
	labels := [fieldCount]string{"Campaign Name", "Budget", "Spend"}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Add New Campaign"))
	b.WriteString("\n\n")
	for i, label := range labels {
		b.WriteString(mutedStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(a.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if snap.IsSubmitting {
		b.WriteString(mutedStyle.Render("Adding..."))
	} else {
		b.WriteString(accentStyle.Render("[enter] Add Campaign"))
	}
	return panelStyle.Render(b.String())
}

func renderDialog(d usecase.DialogView) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(50).Render(d.Description))
	b.WriteString("\n\n")
	if d.Loading() {
		b.WriteString(mutedStyle.Render("Deleting..."))
	} else {
		b.WriteString(bannerStyle.Render("[y] Delete") + "   " + mutedStyle.Render("[n] Cancel"))
	}
	return dialogStyle.Render(b.String())
}

func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
