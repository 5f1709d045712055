// gate.go
//
// PropIQ, a property, lease and tenant management service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of propiq.
// propiq is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// propiq is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with propiq.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/localnerve/propiq/internal/metrics"
	"github.com/localnerve/propiq/internal/types"
)

// GateState is the auth gate state
type GateState string

const (
	StateChecking  GateState = "checking"
	StateSignedOut GateState = "signedOut"
	StateSignedIn  GateState = "signedIn"
)

const (
	credentialsRequired = "Email and password are required."
	confirmEmail        = "Check your email to confirm your account."
	sessionFailure      = "Could not start a session. Please try again."
	authFailure         = "Could not sign in. Please try again."
)

// ErrGateNotReady is returned when a form is submitted before the session check settles
var ErrGateNotReady = errors.New("auth gate is still checking the session")

// Sessions opens and resolves application sessions
type Sessions interface {
	Create(ctx context.Context, identity Identity) (*Session, error)
	Lookup(ctx context.Context, token string) (*Session, error)
}

// GateSnapshot is what the sign-in view renders
type GateSnapshot struct {
	State      GateState `json:"status"`
	Email      string    `json:"email,omitempty"`
	Message    string    `json:"message,omitempty"`
	Notice     bool      `json:"notice,omitempty"`
	Submitting bool      `json:"submitting"`
}

// Gate guards content behind a session: checking, then signedOut or signedIn.
// signedIn is terminal for the gate's lifetime.
type Gate struct {
	provider Provider
	sessions Sessions

	mu         sync.Mutex
	alive      bool
	stop       func() bool
	state      GateState
	session    *Session
	submitting bool
	message    string
	notice     bool
}

// NewGate builds an unmounted gate in the checking state
func NewGate(provider Provider, sessions Sessions) *Gate {
	return &Gate{provider: provider, sessions: sessions, state: StateChecking}
}

// Mount resolves the current session. A missing session or a failed lookup signs out.
func (g *Gate) Mount(ctx context.Context, creds Credentials) {
	g.mu.Lock()
	g.alive = true
	g.stop = context.AfterFunc(ctx, g.Unmount)
	g.mu.Unlock()

	session, err := g.current(ctx, creds)
	if err != nil {
		log.Printf("Error checking session: %v", err)
	}

	g.set(func() {
		if session != nil {
			g.session = session
			g.state = StateSignedIn
			return
		}
		g.state = StateSignedOut
	})
}

func (g *Gate) current(ctx context.Context, creds Credentials) (*Session, error) {
	session, err := g.sessions.Lookup(ctx, creds.Session)
	if err != nil || session != nil {
		return session, err
	}

	validator, ok := g.provider.(CredentialValidator)
	if !ok || creds.Provider == "" {
		return nil, nil
	}

	identity, err := validator.Validate(ctx, creds.Provider)
	if err != nil || identity == nil {
		return nil, err
	}
	return g.sessions.Create(ctx, *identity)
}

// Unmount drops every later state update
func (g *Gate) Unmount() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.alive = false
	if g.stop != nil {
		g.stop()
		g.stop = nil
	}
}

// SignIn submits the sign-in form
func (g *Gate) SignIn(ctx context.Context, email, password string) error {
	return g.submit(ctx, "signin", email, password, g.provider.SignIn)
}

// SignUp submits the sign-up form. Without an immediate session the gate
// stays signed out and shows the confirmation notice.
func (g *Gate) SignUp(ctx context.Context, email, password string) error {
	return g.submit(ctx, "signup", email, password, g.provider.SignUp)
}

type authCall func(ctx context.Context, email, password string) (*Identity, error)

func (g *Gate) submit(ctx context.Context, action, email, password string, call authCall) error {
	g.mu.Lock()
	switch {
	case g.state == StateSignedIn:
		g.mu.Unlock()
		return nil
	case g.state == StateChecking:
		g.mu.Unlock()
		return ErrGateNotReady
	case g.submitting:
		g.mu.Unlock()
		return types.ErrSubmitInProgress
	}

	g.message, g.notice = "", false
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		g.message = credentialsRequired
		g.mu.Unlock()
		metrics.AuthAttempts.WithLabelValues(action, metrics.Invalid).Inc()
		return &types.ValidationError{Message: credentialsRequired}
	}
	g.submitting = true
	g.mu.Unlock()

	identity, err := call(ctx, email, password)

	var session *Session
	if err == nil && identity != nil {
		session, err = g.sessions.Create(ctx, *identity)
		if err != nil {
			log.Printf("Error creating session: %v", err)
			err = &types.AuthError{Message: sessionFailure, Err: err}
		}
	}

	switch {
	case err != nil:
		metrics.AuthAttempts.WithLabelValues(action, metrics.Failed).Inc()
	case session == nil:
		metrics.AuthAttempts.WithLabelValues(action, metrics.Deferred).Inc()
	default:
		metrics.AuthAttempts.WithLabelValues(action, metrics.OK).Inc()
	}

	g.set(func() {
		g.submitting = false
		switch {
		case err != nil:
			g.message = displayMessage(err)
		case session == nil:
			g.message = confirmEmail
			g.notice = true
		default:
			g.session = session
			g.state = StateSignedIn
		}
	})

	if err != nil {
		var authErr *types.AuthError
		if !errors.As(err, &authErr) {
			err = &types.AuthError{Message: authFailure, Err: err}
		}
		return err
	}
	return nil
}

// displayMessage is the auth service message shown verbatim.
// Any other failure is logged and replaced with a generic message.
func displayMessage(err error) string {
	var authErr *types.AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	log.Printf("Error contacting auth provider: %v", err)
	return authFailure
}

// Snapshot returns the current state
func (g *Gate) Snapshot() GateSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := GateSnapshot{
		State:      g.state,
		Message:    g.message,
		Notice:     g.notice,
		Submitting: g.submitting,
	}
	if g.session != nil {
		snap.Email = g.session.Email
	}
	return snap
}

// Session returns the signed-in session, nil unless signedIn
func (g *Gate) Session() *Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != StateSignedIn {
		return nil
	}
	return g.session
}

func (g *Gate) set(update func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.alive {
		return false
	}
	update()
	return true
}
