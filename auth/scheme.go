// Package auth holds the client's credential state: which addressing scheme a
// deployment uses, the single active credential, where it is persisted, and
// the session-expiry notification fan-in.
package auth

import "fmt"

// Scheme selects how the active credential is attached to outbound requests.
// The backend went through three addressing schemes over time; a deployment
// commits to exactly one, resolved once at client construction.
type Scheme int

const (
	// SchemeBearer attaches the credential as an Authorization: Bearer header.
	SchemeBearer Scheme = iota
	// SchemeSession embeds the credential as a "session" field in the request body.
	SchemeSession
	// SchemeUser embeds the credential as a "user" field in the request body.
	SchemeUser
)

// String returns the configuration name of the scheme.
func (s Scheme) String() string {
	switch s {
	case SchemeBearer:
		return "bearer"
	case SchemeSession:
		return "session"
	case SchemeUser:
		return "user"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ParseScheme parses a configuration value into a Scheme.
func ParseScheme(value string) (Scheme, error) {
	switch value {
	case "bearer":
		return SchemeBearer, nil
	case "session":
		return SchemeSession, nil
	case "user":
		return SchemeUser, nil
	default:
		return SchemeBearer, fmt.Errorf("unknown auth scheme %q (want bearer, session, or user)", value)
	}
}
