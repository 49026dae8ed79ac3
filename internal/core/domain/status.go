package domain

// Status is the server-computed budget utilisation label. The vocabulary is
// owned by the campaign API and may grow, so the client treats it as an
// opaque string.
type Status string

// Labels the client knows how to style.
const (
	StatusOnTrack    Status = "On Track"
	StatusWarning    Status = "Warning"
	StatusOverBudget Status = "Over Budget"
)

// StatusCategory is the visual category used to style a status badge.
type StatusCategory string

const (
	CategoryGood    StatusCategory = "good"
	CategoryCaution StatusCategory = "caution"
	CategoryDanger  StatusCategory = "danger"
	CategoryNeutral StatusCategory = "neutral"
)

// Category maps the status to its visual category. Unknown labels fall back
// to CategoryNeutral.
func (s Status) Category() StatusCategory {
	switch s {
	case StatusOnTrack:
		return CategoryGood
	case StatusWarning:
		return CategoryCaution
	case StatusOverBudget:
		return CategoryDanger
	default:
		return CategoryNeutral
	}
}
