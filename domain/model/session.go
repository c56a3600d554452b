package model

import "github.com/golang-jwt/jwt"

// SessionClaims is the payload of the signed session token issued after a
// successful signer login. The token replaces the original client-local-only
// session with a server-verifiable one.
type SessionClaims struct {
	Fid        int64  `json:"fid"`
	SignerUUID string `json:"signerUuid"`
	Username   string `json:"username,omitempty"`
	jwt.StandardClaims
}
