package port

import (
	"context"

	"campaign-tracker/internal/core/domain"
)

// CampaignAPI defines the remote campaign service. It is an outbound port in
// hexagonal architecture: the service owns persistence, id assignment and
// status derivation, and the client only reflects its responses.
type CampaignAPI interface {
	// List returns every campaign in server order.
	List(ctx context.Context) ([]domain.Campaign, error)
	// Get returns a single campaign by id.
	Get(ctx context.Context, id int64) (domain.Campaign, error)
	// Create stores a new campaign and returns it with the server-assigned
	// id and status.
	Create(ctx context.Context, data domain.CreateCampaignData) (domain.Campaign, error)
	// Update applies a partial update and returns the resulting campaign.
	Update(ctx context.Context, id int64, patch domain.CampaignPatch) (domain.Campaign, error)
	// Delete removes a campaign.
	Delete(ctx context.Context, id int64) error
}
