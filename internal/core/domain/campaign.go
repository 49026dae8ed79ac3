package domain

// Campaign represents an advertising campaign as returned by the campaign
// API. ID and Status are always assigned by the server; the client never
// derives them.
type Campaign struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Budget Money  `json:"budget"`
	Spend  Money  `json:"spend"`
	Status Status `json:"status"`
}

// CreateCampaignData is the payload for creating a campaign. It carries no
// identifier and no status; both are supplied by the server.
type CreateCampaignData struct {
	Name   string `json:"name"`
	Budget Money  `json:"budget"`
	Spend  Money  `json:"spend"`
}

// CampaignPatch describes a partial update. Nil fields are left untouched
// by the server and omitted from the request body.
type CampaignPatch struct {
	Name   *string `json:"name,omitempty"`
	Budget *Money  `json:"budget,omitempty"`
	Spend  *Money  `json:"spend,omitempty"`
}
