package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"jobcast/domain/dto"
	"jobcast/domain/model"
	"jobcast/infrastructure/clients/neynar"
	"jobcast/infrastructure/clients/neynar/models"
)

// ISocialUsecase wraps the social provider: identity resolution, cast
// publish/delete, reactions, and feed retrieval with local reshaping.
type ISocialUsecase interface {
	AuthenticateUser(ctx context.Context, signerUUID string) (*model.SocialUser, error)
	PublishCast(ctx context.Context, req *dto.PublishCastRequest) (*models.PublishCastResponse, error)
	DeleteCast(ctx context.Context, signerUUID, hash string) error
	React(ctx context.Context, signerUUID, reactionType, targetHash string) error
	Unreact(ctx context.Context, signerUUID, reactionType, targetHash string) error
	GetFeed(ctx context.Context, req dto.FeedRequest) (*dto.FeedResponse, error)
}

type socialUsecase struct {
	client neynar.IClient
}

func NewSocialUsecase(client neynar.IClient) ISocialUsecase {
	return &socialUsecase{client: client}
}

func (u *socialUsecase) AuthenticateUser(ctx context.Context, signerUUID string) (*model.SocialUser, error) {
	signer, err := u.client.LookupSigner(ctx, signerUUID)
	if err != nil {
		var statusErr *neynar.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, model.ErrInvalidSigner
		}
		return nil, fmt.Errorf("signer lookup failed: %w", err)
	}
	if signer.Fid == 0 {
		return nil, model.ErrInvalidSigner
	}

	users, err := u.client.FetchBulkUsers(ctx, []int64{signer.Fid})
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	if len(users) == 0 {
		return nil, model.ErrUserNotFound
	}

	user := reshapeUser(users[0])
	return &user, nil
}

func (u *socialUsecase) PublishCast(ctx context.Context, req *dto.PublishCastRequest) (*models.PublishCastResponse, error) {
	payload := &models.PublishCastRequest{
		SignerUUID: req.SignerUUID,
		Text:       strings.TrimSpace(req.Text),
	}
	// A reply is attached by cast hash or, failing that, by parent URL.
	if req.ParentHash != "" {
		payload.Parent = req.ParentHash
	} else if req.ParentURL != "" {
		payload.Parent = req.ParentURL
	}
	if len(req.Embeds) > 0 {
		payload.Embeds = req.Embeds
	}
	if len(req.Mentions) > 0 {
		payload.Mentions = req.Mentions
	}

	res, err := u.client.PublishCast(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to publish cast: %w", err)
	}
	return res, nil
}

func (u *socialUsecase) DeleteCast(ctx context.Context, signerUUID, hash string) error {
	if err := u.client.DeleteCast(ctx, signerUUID, hash); err != nil {
		return fmt.Errorf("failed to delete cast: %w", err)
	}
	return nil
}

func (u *socialUsecase) React(ctx context.Context, signerUUID, reactionType, targetHash string) error {
	if err := u.client.PublishReaction(ctx, signerUUID, reactionType, targetHash); err != nil {
		return fmt.Errorf("failed to publish reaction: %w", err)
	}
	return nil
}

func (u *socialUsecase) Unreact(ctx context.Context, signerUUID, reactionType, targetHash string) error {
	if err := u.client.DeleteReaction(ctx, signerUUID, reactionType, targetHash); err != nil {
		return fmt.Errorf("failed to delete reaction: %w", err)
	}
	return nil
}

func (u *socialUsecase) GetFeed(ctx context.Context, req dto.FeedRequest) (*dto.FeedResponse, error) {
	opts := &models.FeedOptions{
		Limit:  req.Limit,
		Cursor: req.Cursor,
	}

	var (
		feed *models.FeedResponse
		err  error
	)
	switch {
	case req.FeedType == "following" && req.Fid > 0:
		feed, err = u.client.FetchFeedForYou(ctx, req.Fid, opts)
	case req.ChannelID != "":
		opts.FeedType = req.FeedType
		opts.FilterType = "channel_id"
		opts.ChannelID = req.ChannelID
		feed, err = u.client.FetchFeed(ctx, opts)
	default:
		opts.FeedType = req.FeedType
		opts.FilterType = req.FilterType
		feed, err = u.client.FetchFeed(ctx, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	casts := make([]model.Cast, 0, len(feed.Casts))
	for _, cast := range feed.Casts {
		casts = append(casts, reshapeCast(cast))
	}
	res := &dto.FeedResponse{Casts: casts}
	if feed.Next != nil {
		res.Next = &dto.FeedCursor{Cursor: feed.Next.Cursor}
	}
	return res, nil
}

// reshapeUser converts the provider's snake_case wire user into the local view
// model, defaulting absent nested fields so clients never null-check.
func reshapeUser(user models.User) model.SocialUser {
	verifications := user.Verifications
	if verifications == nil {
		verifications = []string{}
	}
	return model.SocialUser{
		Fid:            user.Fid,
		Username:       user.Username,
		DisplayName:    user.DisplayName,
		Pfp:            model.Pfp{URL: user.PfpURL},
		Profile:        model.Profile{Bio: model.Bio{Text: user.Profile.Bio.Text}},
		FollowerCount:  user.FollowerCount,
		FollowingCount: user.FollowingCount,
		Verifications:  verifications,
		ActiveStatus:   user.ActiveStatus,
	}
}

func reshapeCast(cast models.Cast) model.Cast {
	out := model.Cast{
		Hash:       cast.Hash,
		ParentHash: cast.ParentHash,
		ParentURL:  cast.ParentURL,
		ThreadHash: cast.ThreadHash,
		Author:     reshapeUser(cast.Author),
		Text:       cast.Text,
		Timestamp:  cast.Timestamp,
		Embeds:     cast.Embeds,
		Frames:     cast.Frames,
		Channel:    cast.Channel,
		Reactions: model.CastReactions{
			Likes:   []map[string]interface{}{},
			Recasts: []map[string]interface{}{},
		},
		MentionedProfiles: []model.SocialUser{},
		ViewerContext:     cast.ViewerContext,
	}
	if out.Embeds == nil {
		out.Embeds = []map[string]interface{}{}
	}
	if out.Frames == nil {
		out.Frames = []map[string]interface{}{}
	}
	if cast.Reactions != nil {
		if cast.Reactions.Likes != nil {
			out.Reactions.Likes = cast.Reactions.Likes
		}
		if cast.Reactions.Recasts != nil {
			out.Reactions.Recasts = cast.Reactions.Recasts
		}
		out.Reactions.LikesCount = cast.Reactions.LikesCount
		out.Reactions.RecastsCount = cast.Reactions.RecastsCount
	}
	if cast.Replies != nil {
		out.Replies.Count = cast.Replies.Count
	}
	for _, profile := range cast.MentionedProfiles {
		out.MentionedProfiles = append(out.MentionedProfiles, reshapeUser(profile))
	}
	return out
}
