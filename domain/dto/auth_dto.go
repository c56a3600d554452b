package dto

import "jobcast/domain/model"

// AuthUserRequest is the POST /api/auth/user body.
type AuthUserRequest struct {
	SignerUUID string `json:"signerUuid"`
}

// AuthUserResponse returns the resolved user plus a signed session token the
// client can present to restore the session without re-resolving the signer.
type AuthUserResponse struct {
	User  model.SocialUser `json:"user"`
	Token string           `json:"token,omitempty"`
}
