package dto

import "encoding/json"

// Webhook event types dispatched by the provider.
const (
	WebhookCastCreated     = "cast.created"
	WebhookReactionCreated = "reaction.created"
	WebhookFollowCreated   = "follow.created"
	WebhookUserUpdated     = "user.updated"
)

// WebhookEvent is the POST /api/webhooks/neynar body. Data is kept raw; each
// event handler decodes only the fields it needs.
type WebhookEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// WebhookCastData is the payload of a cast.created event.
type WebhookCastData struct {
	Hash string `json:"hash"`
	Text string `json:"text"`
	Author struct {
		Fid int64 `json:"fid"`
	} `json:"author"`
}

// WebhookReactionData is the payload of a reaction.created event.
type WebhookReactionData struct {
	ReactionType string `json:"reaction_type"`
	Cast         struct {
		Hash string `json:"hash"`
	} `json:"cast"`
	User struct {
		Fid int64 `json:"fid"`
	} `json:"user"`
}

// WebhookFollowData is the payload of a follow.created event.
type WebhookFollowData struct {
	User struct {
		Fid int64 `json:"fid"`
	} `json:"user"`
	TargetUser struct {
		Fid int64 `json:"fid"`
	} `json:"target_user"`
}

// WebhookUserData is the payload of a user.updated event.
type WebhookUserData struct {
	Fid int64 `json:"fid"`
}
