package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"jobcast/domain/dto"
	"jobcast/domain/repository"
	"jobcast/infrastructure/logger"
)

// IWebhookUsecase dispatches provider webhook events to local side effects.
type IWebhookUsecase interface {
	HandleEvent(ctx context.Context, event *dto.WebhookEvent) error
}

type webhookUsecase struct {
	castStats repository.ICastStats
}

func NewWebhookUsecase(castStats repository.ICastStats) IWebhookUsecase {
	return &webhookUsecase{castStats: castStats}
}

// jobKeywords flags casts worth surfacing in the job-related set.
var jobKeywords = []string{"hiring", "job", "position", "opportunity", "work", "career"}

// HandleEvent routes an event by type. Unknown types are logged and ignored so
// the provider never sees a delivery failure for events added after this build.
func (u *webhookUsecase) HandleEvent(ctx context.Context, event *dto.WebhookEvent) error {
	log := logger.GetLogger().WithField("type", event.Type)
	switch event.Type {
	case dto.WebhookCastCreated:
		return u.handleCastCreated(ctx, event.Data)
	case dto.WebhookReactionCreated:
		return u.handleReactionCreated(ctx, event.Data)
	case dto.WebhookFollowCreated:
		return u.handleFollowCreated(ctx, event.Data)
	case dto.WebhookUserUpdated:
		return u.handleUserUpdated(ctx, event.Data)
	default:
		log.Info("Ignoring unhandled webhook event")
		return nil
	}
}

func (u *webhookUsecase) handleCastCreated(ctx context.Context, raw json.RawMessage) error {
	var data dto.WebhookCastData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	if !containsJobKeyword(data.Text) {
		return nil
	}
	logger.GetLogger().
		WithField("hash", data.Hash).
		WithField("fid", data.Author.Fid).
		Info("Job-related cast detected")
	return u.castStats.MarkJobRelatedCast(ctx, data.Hash)
}

func (u *webhookUsecase) handleReactionCreated(ctx context.Context, raw json.RawMessage) error {
	var data dto.WebhookReactionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	_, err := u.castStats.IncrementReaction(ctx, data.Cast.Hash, data.ReactionType)
	return err
}

func (u *webhookUsecase) handleFollowCreated(ctx context.Context, raw json.RawMessage) error {
	var data dto.WebhookFollowData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	return u.castStats.IncrementFollowers(ctx, data.TargetUser.Fid)
}

func (u *webhookUsecase) handleUserUpdated(ctx context.Context, raw json.RawMessage) error {
	var data dto.WebhookUserData
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}
	return u.castStats.InvalidateUser(ctx, data.Fid)
}

func containsJobKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range jobKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
