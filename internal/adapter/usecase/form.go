package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"campaign-tracker/internal/core/domain"
)

// Form holds the draft of a new campaign. Numeric input that cannot be
// parsed, or that is negative, coerces to zero. There is no cross-field
// validation: spend may exceed budget.
type Form struct {
	mu    sync.Mutex
	draft domain.CreateCampaignData
}

// NewForm returns a form holding the default draft.
func NewForm() *Form {
	return &Form{draft: emptyDraft()}
}

func emptyDraft() domain.CreateCampaignData {
	return domain.CreateCampaignData{
		Budget: domain.NewMoney(decimal.Zero),
		Spend:  domain.NewMoney(decimal.Zero),
	}
}

// SetName sets the draft name.
func (f *Form) SetName(name string) {
	f.mu.Lock()
	f.draft.Name = name
	f.mu.Unlock()
}

// SetBudget sets the draft budget from raw input.
func (f *Form) SetBudget(raw string) {
	m := coerceAmount(raw)
	f.mu.Lock()
	f.draft.Budget = m
	f.mu.Unlock()
}

// SetSpend sets the draft spend from raw input.
func (f *Form) SetSpend(raw string) {
	m := coerceAmount(raw)
	f.mu.Lock()
	f.draft.Spend = m
	f.mu.Unlock()
}

// Draft returns the current draft.
func (f *Form) Draft() domain.CreateCampaignData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Submit hands the current draft to submit and resets the form to its
// defaults before submit runs. The reset does not depend on the outcome;
// failures surface through the page banner.
func (f *Form) Submit(ctx context.Context, submit func(context.Context, domain.CreateCampaignData) error) error {
	f.mu.Lock()
	data := f.draft
	f.draft = emptyDraft()
	f.mu.Unlock()

	return submit(ctx, data)
}

// SubmitValues fills the draft from raw input and submits it as one step,
// so overlapping submissions never mix each other's fields.
func (f *Form) SubmitValues(ctx context.Context, name, budget, spend string, submit func(context.Context, domain.CreateCampaignData) error) error {
	data := domain.CreateCampaignData{
		Name:   name,
		Budget: coerceAmount(budget),
		Spend:  coerceAmount(spend),
	}
	f.mu.Lock()
	f.draft = emptyDraft()
	f.mu.Unlock()

	return submit(ctx, data)
}

func coerceAmount(raw string) domain.Money {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return domain.NewMoney(decimal.Zero)
	}
	return domain.NewMoney(d)
}
