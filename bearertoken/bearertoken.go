// Package bearertoken extracts Bearer tokens from incoming requests and
// decodes the claims carried by Adobe IMS access tokens.
//
// Claim decoding is deliberately unverified: the toolkit runs behind
// Adobe's API gateway, which has already validated the token, and the
// claims are read for identity metadata only.
package bearertoken

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "bearer "

// headersParam is the key OpenWhisk web actions use for request headers.
const headersParam = "__ow_headers"

var (
	// ErrNoToken indicates no Authorization header (or header param) was present.
	ErrNoToken = errors.New("bearertoken: no authorization header")

	// ErrMalformedHeader indicates the Authorization header carries no Bearer token.
	ErrMalformedHeader = errors.New("bearertoken: authorization header is not a bearer token")
)

// Claims holds the identity metadata decoded from an IMS access token.
type Claims struct {
	// ClientID is the API client the token was issued to.
	ClientID string

	// UserID is the IMS user (or technical account) identifier.
	UserID string

	// Scopes are the granted OAuth scopes.
	Scopes []string

	// CreatedAt is when the token was issued.
	CreatedAt time.Time

	// ExpiresIn is the token's validity window from CreatedAt.
	ExpiresIn time.Duration

	// Raw exposes every claim for callers needing more than the typed fields.
	Raw jwt.MapClaims
}

// FromHeader extracts the token from an Authorization header value. The
// Bearer scheme is matched case-insensitively.
func FromHeader(authorization string) (string, error) {
	if strings.TrimSpace(authorization) == "" {
		return "", ErrNoToken
	}
	if len(authorization) < len(bearerPrefix) ||
		!strings.EqualFold(authorization[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrMalformedHeader
	}
	token := strings.TrimSpace(authorization[len(bearerPrefix):])
	if token == "" {
		return "", ErrMalformedHeader
	}
	return token, nil
}

// FromParams extracts the token from OpenWhisk web action parameters, which
// carry the request headers under "__ow_headers".
func FromParams(params map[string]any) (string, error) {
	headers, ok := params[headersParam].(map[string]any)
	if !ok {
		return "", ErrNoToken
	}
	authorization, _ := headers["authorization"].(string)
	return FromHeader(authorization)
}

// Decode parses the token without verifying its signature and returns the
// typed claims.
func Decode(token string) (*Claims, error) {
	raw := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, raw); err != nil {
		return nil, err
	}

	return &Claims{
		ClientID:  toString(raw["client_id"]),
		UserID:    toString(raw["user_id"]),
		Scopes:    toScopes(raw["scope"]),
		CreatedAt: toMillisTime(raw["created_at"]),
		ExpiresIn: toMillisDuration(raw["expires_in"]),
		Raw:       raw,
	}, nil
}

// Helper to convert a claim value to string.
func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// Helper to split the IMS comma-separated scope claim.
func toScopes(v any) []string {
	s := toString(v)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	scopes := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			scopes = append(scopes, part)
		}
	}
	return scopes
}

// Helper to convert an IMS millisecond timestamp claim, which IMS encodes
// as a decimal string.
func toMillisTime(v any) time.Time {
	ms := toMillis(v)
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func toMillisDuration(v any) time.Duration {
	return time.Duration(toMillis(v)) * time.Millisecond
}

func toMillis(v any) int64 {
	switch t := v.(type) {
	case string:
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return i
		}
	case float64:
		return int64(t)
	case int64:
		return t
	}
	return 0
}
