package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"jobcast/domain/dto"
	"jobcast/domain/model"
	"jobcast/infrastructure/configuration"
	"jobcast/infrastructure/utils"
)

// IAuthUsecase issues and validates session tokens bound to a signer login.
type IAuthUsecase interface {
	Login(ctx context.Context, signerUUID string) (*dto.AuthUserResponse, error)
	ParseToken(token string) (*model.SessionClaims, error)
}

type authUsecase struct {
	social    ISocialUsecase
	secretKey string
	ttl       time.Duration
}

func NewAuthUsecase(social ISocialUsecase, app configuration.App) IAuthUsecase {
	return &authUsecase{
		social:    social,
		secretKey: app.SecretKey,
		ttl:       time.Duration(app.SessionTTL) * time.Hour,
	}
}

// Login resolves the signer to its Farcaster account and issues a signed
// session token carrying the fid and signer UUID.
func (u *authUsecase) Login(ctx context.Context, signerUUID string) (*dto.AuthUserResponse, error) {
	user, err := u.social.AuthenticateUser(ctx, signerUUID)
	if err != nil {
		return nil, err
	}

	now := utils.GetCurrentTime()
	token, err := utils.GenerateToken(map[string]interface{}{
		"fid":        user.Fid,
		"signerUuid": signerUUID,
		"username":   user.Username,
		"iat":        now.Unix(),
		"exp":        now.Add(u.ttl).Unix(),
	}, u.secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &dto.AuthUserResponse{User: *user, Token: token}, nil
}

func (u *authUsecase) ParseToken(tokenString string) (*model.SessionClaims, error) {
	claims := &model.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(u.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return claims, nil
}
