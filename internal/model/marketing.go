package model

import "time"

// Marketing content statuses.  Content moves through a fixed editorial
// workflow; every transition is triggered by an explicit action endpoint
// and illegal transitions are rejected with a conflict.
const (
	ContentDraft     = "DRAFT"
	ContentReview    = "REVIEW"
	ContentApproved  = "APPROVED"
	ContentPublished = "PUBLISHED"
	ContentArchived  = "ARCHIVED"
)

// contentTransitions maps an action name to its required source status
// and resulting target status.
var contentTransitions = map[string][2]string{
	"submit":  {ContentDraft, ContentReview},
	"reject":  {ContentReview, ContentDraft},
	"approve": {ContentReview, ContentApproved},
	"publish": {ContentApproved, ContentPublished},
	"archive": {ContentPublished, ContentArchived},
}

// ContentTransition resolves a workflow action against the current
// status.  It returns the target status and true when the action is
// legal, or an empty string and false otherwise.
func ContentTransition(action, current string) (string, bool) {
	t, ok := contentTransitions[action]
	if !ok || t[0] != current {
		return "", false
	}
	return t[1], true
}

// MarketingContent is a piece of marketing copy (newsletter section,
// social post, menu insert) moving through the editorial workflow.
//
// Fields:
//  ID        – primary key identifier.
//  Title     – headline of the content.
//  Body      – the copy itself.
//  Channel   – target channel (e.g. "NEWSLETTER", "SOCIAL", "PRINT").
//  Status    – workflow status, see constants above.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type MarketingContent struct {
	ID        uint64    // marketing_contents.id
	Title     string    // marketing_contents.title
	Body      string    // marketing_contents.body
	Channel   string    // marketing_contents.channel
	Status    string    // marketing_contents.status
	CreatedAt time.Time // marketing_contents.created_at
	UpdatedAt time.Time // marketing_contents.updated_at
}
