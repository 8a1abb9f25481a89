// Package session implements the client-held project session token.
//
// The token is deliberately an unsigned JSON blob: the server keeps no
// session state, and logout is a client-side discard. This is a documented
// trust boundary of the system, not an oversight: callers must not assume
// a presented token proves anything beyond a successful authentication
// within the validity window.
package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"
)

// TTL is the validity window for a project session.
const TTL = 24 * time.Hour

// ErrAccessDenied is returned for every failed validation. Which of the
// three checks failed is intentionally not exposed.
var ErrAccessDenied = errors.New("access denied")

// Token is the client-held proof of project authentication.
// AuthenticatedAt is unix milliseconds.
type Token struct {
	ProjectID       string `json:"project_id"`
	ProjectName     string `json:"project_name"`
	AuthenticatedAt int64  `json:"authenticated_at"`
}

// Issue creates a fresh token for a project. A new authentication always
// gets a new timestamp; tokens are never renewed in place.
func Issue(projectID, projectName string, now time.Time) Token {
	return Token{
		ProjectID:       projectID,
		ProjectName:     projectName,
		AuthenticatedAt: now.UnixMilli(),
	}
}

// Encode serializes a token for header transport.
func Encode(t Token) (string, error) {
	raw, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode parses an encoded token. A token that does not decode is treated
// the same as an absent one.
func Decode(encoded string) (Token, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Token{}, ErrAccessDenied
	}
	var t Token
	if err := json.Unmarshal(raw, &t); err != nil {
		return Token{}, ErrAccessDenied
	}
	if t.ProjectName == "" || t.AuthenticatedAt == 0 {
		return Token{}, ErrAccessDenied
	}
	return t, nil
}

// Validate applies the guard checks in order: project name match, then
// validity window. All failures collapse into ErrAccessDenied.
func (t Token) Validate(requestedName string, now time.Time) error {
	if t.ProjectName != requestedName {
		return ErrAccessDenied
	}
	if t.Expired(now) {
		return ErrAccessDenied
	}
	return nil
}

// Expired reports whether the token is past its validity window,
// independent of which project it names.
func (t Token) Expired(now time.Time) bool {
	return now.Sub(time.UnixMilli(t.AuthenticatedAt)) > TTL
}
