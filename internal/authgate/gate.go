// Package authgate decides how controls look depending on whether a session
// token is stored. It only changes affordance: the catalog API verifies the
// token on every protected request regardless of what the gate shows.
package authgate

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind says how a control reacts to the token.
type Kind int

const (
	// Protected controls are disabled without a token.
	Protected Kind = iota
	// GuestOnly controls (the login link) are hidden with a token.
	GuestOnly
	// MemberOnly controls (the logout item) are hidden without a token.
	MemberOnly
)

// Control is a gated element of a page.
type Control struct {
	ID      string
	Kind    Kind
	Tooltip string
}

// ControlState is how a control should be painted.
type ControlState struct {
	ID       string `json:"id"`
	Disabled bool   `json:"disabled"`
	Hidden   bool   `json:"hidden"`
	Tooltip  string `json:"tooltip,omitempty"`
}

// Gate evaluates a fixed set of controls.
type Gate struct {
	controls []Control
}

// New creates a gate for controls.
func New(controls ...Control) *Gate {
	return &Gate{controls: controls}
}

// Present reports whether token counts as a stored session.
func Present(token string) bool {
	return strings.TrimSpace(token) != ""
}

// Evaluate returns the state of every control for token.
func (g *Gate) Evaluate(token string) []ControlState {
	signedIn := Present(token)
	out := make([]ControlState, 0, len(g.controls))
	for _, c := range g.controls {
		out = append(out, evaluate(c, signedIn))
	}
	return out
}

// State returns the state of one control. Unknown ids are enabled and visible.
func (g *Gate) State(token, id string) ControlState {
	for _, c := range g.controls {
		if c.ID == id {
			return evaluate(c, Present(token))
		}
	}
	return ControlState{ID: id}
}

func evaluate(c Control, signedIn bool) ControlState {
	st := ControlState{ID: c.ID}
	switch c.Kind {
	case Protected:
		if !signedIn {
			st.Disabled = true
			st.Tooltip = c.Tooltip
		}
	case GuestOnly:
		st.Hidden = signedIn
	case MemberOnly:
		st.Hidden = !signedIn
	}
	return st
}

// Identity is what a token says about its holder. It is decoded without
// verifying the signature and is for display only.
type Identity struct {
	Subject   string
	ExpiresAt time.Time
}

// Describe decodes the unverified claims of token.
func Describe(token string) (Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, err
	}
	var id Identity
	id.Subject, _ = claims.GetSubject()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	return id, nil
}
