package dto

// PublishCastRequest is the POST /api/casts body.
type PublishCastRequest struct {
	Text       string                   `json:"text"`
	SignerUUID string                   `json:"signerUuid"`
	ParentHash string                   `json:"parentHash,omitempty"`
	ParentURL  string                   `json:"parentUrl,omitempty"`
	Embeds     []map[string]interface{} `json:"embeds,omitempty"`
	Mentions   []int64                  `json:"mentions,omitempty"`
}

// ReactionRequest is the POST /api/reactions body. DELETE takes the same three
// fields as query parameters.
type ReactionRequest struct {
	SignerUUID   string `json:"signerUuid"`
	ReactionType string `json:"reactionType"`
	TargetHash   string `json:"targetHash"`
}
