package usecase

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
	"campaign-tracker/internal/metrics"
)

// Banner messages shown at the page level when an action fails.
const (
	MsgLoadFailed   = "Failed to load campaigns. Make sure the API server is running."
	MsgCreateFailed = "Failed to create campaign"
	MsgDeleteFailed = "Failed to delete campaign"
)

// Snapshot is an immutable view of the page state handed to renderers.
type Snapshot struct {
	Campaigns    []domain.Campaign
	IsLoading    bool
	IsSubmitting bool
	Loaded       bool
	LoadFailed   bool
	Error        string
}

// CampaignList is the page-level controller. It holds the client-side copy
// of the campaign sequence and patches it from API responses after each
// mutation. Ids and statuses are only ever taken from the server.
//
// It is safe for concurrent use. The mutex is never held across an API
// call, so overlapping actions each resolve independently.
type CampaignList struct {
	api    port.CampaignAPI
	logger *slog.Logger

	mu           sync.Mutex
	campaigns    []domain.Campaign
	isLoading    bool
	isSubmitting bool
	loaded       bool
	loadFailed   bool
	errMsg       string
}

// NewCampaignList creates an empty controller. Call Load to populate it.
func NewCampaignList(api port.CampaignAPI, logger *slog.Logger) *CampaignList {
	return &CampaignList{api: api, logger: logger, campaigns: []domain.Campaign{}}
}

// Load fetches the full list and replaces the local sequence. On failure the
// previous sequence is kept and the load banner is set.
func (l *CampaignList) Load(ctx context.Context) error {
	l.mu.Lock()
	l.isLoading = true
	l.loaded = true
	l.mu.Unlock()

	campaigns, err := l.api.List(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.isLoading = false
	l.loadFailed = err != nil
	if err != nil {
		l.fail("load", MsgLoadFailed, err)
		return err
	}
	l.campaigns = slices.Clone(campaigns)
	l.errMsg = ""
	return nil
}

// Create posts a new campaign and appends the server's response to the end
// of the sequence.
func (l *CampaignList) Create(ctx context.Context, data domain.CreateCampaignData) (domain.Campaign, error) {
	l.mu.Lock()
	l.isSubmitting = true
	l.mu.Unlock()

	created, err := l.api.Create(ctx, data)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.isSubmitting = false
	if err != nil {
		l.fail("create", MsgCreateFailed, err)
		return domain.Campaign{}, err
	}
	l.campaigns = append(l.campaigns, created)
	l.errMsg = ""
	return created, nil
}

// Remove deletes a campaign and drops every local entry with that id.
// Removing an id that is not present leaves the sequence unchanged.
func (l *CampaignList) Remove(ctx context.Context, id int64) error {
	err := l.api.Delete(ctx, id)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.fail("delete", MsgDeleteFailed, err)
		return err
	}
	l.campaigns = slices.DeleteFunc(slices.Clone(l.campaigns), func(c domain.Campaign) bool {
		return c.ID == id
	})
	l.errMsg = ""
	return nil
}

// DismissError clears the banner.
func (l *CampaignList) DismissError() {
	l.mu.Lock()
	l.errMsg = ""
	l.mu.Unlock()
}

// Find returns the campaign with the given id from the local sequence.
func (l *CampaignList) Find(id int64) (domain.Campaign, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.IndexFunc(l.campaigns, func(c domain.Campaign) bool { return c.ID == id })
	if i < 0 {
		return domain.Campaign{}, false
	}
	return l.campaigns[i], true
}

// Snapshot returns a copy of the current state.
func (l *CampaignList) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{
		Campaigns:    slices.Clone(l.campaigns),
		IsLoading:    l.isLoading,
		IsSubmitting: l.isSubmitting,
		Loaded:       l.loaded,
		LoadFailed:   l.loadFailed,
		Error:        l.errMsg,
	}
}

// fail must be called with l.mu held.
func (l *CampaignList) fail(action, msg string, err error) {
	l.errMsg = msg
	metrics.RecordPageError(action)
	l.logger.Error("campaign "+action+" failed", slog.Any("error", err))
}
