package model

// SocialUser is the view model for a Farcaster account as returned to clients.
// It is sourced entirely from the identity provider; this service never owns it.
type SocialUser struct {
	Fid            int64    `json:"fid"`
	Username       string   `json:"username"`
	DisplayName    string   `json:"displayName"`
	Pfp            Pfp      `json:"pfp"`
	Profile        Profile  `json:"profile"`
	FollowerCount  int      `json:"followerCount"`
	FollowingCount int      `json:"followingCount"`
	Verifications  []string `json:"verifications"`
	ActiveStatus   string   `json:"activeStatus"`
}

type Pfp struct {
	URL string `json:"url"`
}

type Profile struct {
	Bio Bio `json:"bio"`
}

type Bio struct {
	Text string `json:"text"`
}

// Cast is the view model for a social post. Nested optional provider fields are
// defaulted to empty values during reshaping so clients never null-check them.
type Cast struct {
	Hash              string                   `json:"hash"`
	ParentHash        string                   `json:"parentHash,omitempty"`
	ParentURL         string                   `json:"parentUrl,omitempty"`
	ThreadHash        string                   `json:"threadHash,omitempty"`
	Author            SocialUser               `json:"author"`
	Text              string                   `json:"text"`
	Timestamp         string                   `json:"timestamp"`
	Embeds            []map[string]interface{} `json:"embeds"`
	Frames            []map[string]interface{} `json:"frames"`
	Reactions         CastReactions            `json:"reactions"`
	Replies           CastReplies              `json:"replies"`
	Channel           map[string]interface{}   `json:"channel"`
	MentionedProfiles []SocialUser             `json:"mentioned_profiles"`
	ViewerContext     map[string]interface{}   `json:"viewerContext"`
}

// CastReactions aggregates likes and recasts plus the raw reactor lists.
type CastReactions struct {
	Likes        []map[string]interface{} `json:"likes"`
	Recasts      []map[string]interface{} `json:"recasts"`
	LikesCount   int                      `json:"likesCount"`
	RecastsCount int                      `json:"recastsCount"`
}

type CastReplies struct {
	Count int `json:"count"`
}

// Reaction types accepted by the reaction endpoints.
const (
	ReactionLike   = "like"
	ReactionRecast = "recast"
)

// ValidReactionType reports whether t is one of the two accepted reaction kinds.
func ValidReactionType(t string) bool {
	return t == ReactionLike || t == ReactionRecast
}
