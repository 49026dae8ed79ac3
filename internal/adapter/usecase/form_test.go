package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/core/domain"
)

func TestFormDefaults(t *testing.T) {
	d := NewForm().Draft()
	assert.Empty(t, d.Name)
	assert.True(t, d.Budget.IsZero())
	assert.True(t, d.Spend.IsZero())
}

func TestFormCoercesNumericInput(t *testing.T) {
	f := NewForm()
	cases := map[string]string{
		"1000":   "1000",
		" 12.5 ": "12.5",
		"abc":    "0",
		"":       "0",
		"-3":     "0",
		"1e2":    "100",
	}
	for raw, want := range cases {
		f.SetBudget(raw)
		assert.Equal(t, want, f.Draft().Budget.String(), "budget input %q", raw)
		f.SetSpend(raw)
		assert.Equal(t, want, f.Draft().Spend.String(), "spend input %q", raw)
	}
}

// TestFormSubmitResetsRegardlessOfOutcome ensures the draft is cleared
// whether the create callback succeeds or fails.
func TestFormSubmitResetsRegardlessOfOutcome(t *testing.T) {
	for _, submitErr := range []error{nil, errors.New("create failed")} {
		f := NewForm()
		f.SetName("Spring Sale")
		f.SetBudget("1000")
		f.SetSpend("250")

		var got domain.CreateCampaignData
		var draftDuringSubmit domain.CreateCampaignData
		err := f.Submit(context.Background(), func(_ context.Context, data domain.CreateCampaignData) error {
			got = data
			draftDuringSubmit = f.Draft()
			return submitErr
		})
		assert.Equal(t, submitErr, err)

		assert.Equal(t, "Spring Sale", got.Name)
		assert.Equal(t, "1000", got.Budget.String())
		assert.Equal(t, "250", got.Spend.String())

		// reset happens before the callback returns
		assert.Empty(t, draftDuringSubmit.Name)

		d := f.Draft()
		assert.Empty(t, d.Name)
		assert.True(t, d.Budget.IsZero())
		assert.True(t, d.Spend.IsZero())
	}
}

func TestFormAllowsSpendAboveBudget(t *testing.T) {
	f := NewForm()
	f.SetName("x")
	f.SetBudget("10")
	f.SetSpend("20")

	var got domain.CreateCampaignData
	require.NoError(t, f.Submit(context.Background(), func(_ context.Context, d domain.CreateCampaignData) error {
		got = d
		return nil
	}))
	assert.Equal(t, "20", got.Spend.String())
}

func TestFormSubmitValuesResetsDraft(t *testing.T) {
	f := NewForm()
	f.SetName("stale")

	var got domain.CreateCampaignData
	require.NoError(t, f.SubmitValues(context.Background(), "Spring Sale", "1000", "-5",
		func(_ context.Context, d domain.CreateCampaignData) error {
			got = d
			return nil
		}))

	assert.Equal(t, "Spring Sale", got.Name)
	assert.Equal(t, "1000", got.Budget.String())
	assert.Equal(t, "0", got.Spend.String())
	assert.Empty(t, f.Draft().Name)
}
