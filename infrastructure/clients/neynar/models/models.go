// Package models holds the provider's wire types. Field names follow the
// API's snake_case JSON; reshaping into local view models happens in the
// social usecase, not here.
package models

// Signer is the response of a signer lookup.
type Signer struct {
	SignerUUID string `json:"signer_uuid"`
	Status     string `json:"status"`
	Fid        int64  `json:"fid"`
}

// User is a Farcaster account as the provider returns it.
type User struct {
	Fid            int64    `json:"fid"`
	Username       string   `json:"username"`
	DisplayName    string   `json:"display_name"`
	PfpURL         string   `json:"pfp_url"`
	Profile        Profile  `json:"profile"`
	FollowerCount  int      `json:"follower_count"`
	FollowingCount int      `json:"following_count"`
	Verifications  []string `json:"verifications"`
	ActiveStatus   string   `json:"active_status"`
}

type Profile struct {
	Bio Bio `json:"bio"`
}

type Bio struct {
	Text string `json:"text"`
}

type BulkUsersResponse struct {
	Users []User `json:"users"`
}

// Cast is a social post on the wire.
type Cast struct {
	Hash              string                   `json:"hash"`
	ParentHash        string                   `json:"parent_hash"`
	ParentURL         string                   `json:"parent_url"`
	ThreadHash        string                   `json:"thread_hash"`
	Author            User                     `json:"author"`
	Text              string                   `json:"text"`
	Timestamp         string                   `json:"timestamp"`
	Embeds            []map[string]interface{} `json:"embeds"`
	Frames            []map[string]interface{} `json:"frames"`
	Reactions         *CastReactions           `json:"reactions"`
	Replies           *CastReplies             `json:"replies"`
	Channel           map[string]interface{}   `json:"channel"`
	MentionedProfiles []User                   `json:"mentioned_profiles"`
	ViewerContext     map[string]interface{}   `json:"viewer_context"`
}

type CastReactions struct {
	Likes        []map[string]interface{} `json:"likes"`
	Recasts      []map[string]interface{} `json:"recasts"`
	LikesCount   int                      `json:"likes_count"`
	RecastsCount int                      `json:"recasts_count"`
}

type CastReplies struct {
	Count int `json:"count"`
}

// FeedOptions are the feed query parameters; encoded with go-querystring.
type FeedOptions struct {
	FeedType   string `url:"feed_type,omitempty"`
	FilterType string `url:"filter_type,omitempty"`
	ChannelID  string `url:"channel_id,omitempty"`
	Fid        int64  `url:"fid,omitempty"`
	Limit      int    `url:"limit,omitempty"`
	Cursor     string `url:"cursor,omitempty"`
}

type FeedResponse struct {
	Casts []Cast `json:"casts"`
	Next  *Next  `json:"next"`
}

type Next struct {
	Cursor string `json:"cursor,omitempty"`
}

// PublishCastRequest is the cast publish body. Parent carries either a cast
// hash or a URL; the provider disambiguates.
type PublishCastRequest struct {
	SignerUUID string                   `json:"signer_uuid"`
	Text       string                   `json:"text"`
	Parent     string                   `json:"parent,omitempty"`
	Embeds     []map[string]interface{} `json:"embeds,omitempty"`
	Mentions   []int64                  `json:"mentions,omitempty"`
}

type PublishCastResponse struct {
	Success bool  `json:"success"`
	Cast    *Cast `json:"cast"`
}

// ErrorResponse is the provider's error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
