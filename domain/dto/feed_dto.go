package dto

import "jobcast/domain/model"

// FeedRequest carries the GET /api/feed query parameters with their defaults
// already applied (feedType "filter", filterType "global_trending", limit 25).
type FeedRequest struct {
	FeedType   string
	FilterType string
	Limit      int
	Cursor     string
	Fid        int64
	ChannelID  string
}

// FeedResponse is the reshaped feed page returned to clients.
type FeedResponse struct {
	Casts []model.Cast `json:"casts"`
	Next  *FeedCursor  `json:"next"`
}

// FeedCursor is the provider's pagination cursor, passed through unchanged.
type FeedCursor struct {
	Cursor string `json:"cursor,omitempty"`
}
