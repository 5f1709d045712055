// auth_test.go
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
	"testing"
	"time"

	"github.com/localnerve/propiq/internal/testutil"
	"github.com/localnerve/propiq/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeProvider struct {
	signIns  int
	signUps  int
	identity *Identity
	err      error
	cookie   string
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) SignIn(context.Context, string, string) (*Identity, error) {
	p.signIns++
	return p.identity, p.err
}

func (p *fakeProvider) SignUp(context.Context, string, string) (*Identity, error) {
	p.signUps++
	return p.identity, p.err
}

func (p *fakeProvider) Ping(context.Context) error { return nil }

type validatingProvider struct {
	fakeProvider
}

func (p *validatingProvider) Validate(_ context.Context, credential string) (*Identity, error) {
	if credential == p.cookie {
		return p.identity, nil
	}
	return nil, nil
}

type memorySessions struct {
	sessions  map[string]*Session
	lookupErr error
	createErr error
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: map[string]*Session{}}
}

func (m *memorySessions) Create(_ context.Context, identity Identity) (*Session, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	s := &Session{Token: "tok-" + identity.UserID, UserID: identity.UserID, Email: identity.Email}
	m.sessions[s.Token] = s
	return s, nil
}

func (m *memorySessions) Lookup(_ context.Context, token string) (*Session, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	return m.sessions[token], nil
}

func TestGateStartsChecking(t *testing.T) {
	gate := NewGate(&fakeProvider{}, newMemorySessions())
	assert.Equal(t, StateChecking, gate.Snapshot().State)
	assert.ErrorIs(t, gate.SignIn(context.Background(), "a@b.c", "secret"), ErrGateNotReady)
}

func TestGateMountWithoutSessionSignsOut(t *testing.T) {
	gate := NewGate(&fakeProvider{}, newMemorySessions())
	gate.Mount(context.Background(), Credentials{})
	assert.Equal(t, StateSignedOut, gate.Snapshot().State)
	assert.Nil(t, gate.Session())
}

func TestGateMountLookupErrorSignsOut(t *testing.T) {
	sessions := newMemorySessions()
	sessions.lookupErr = errors.New("db down")
	gate := NewGate(&fakeProvider{}, sessions)
	gate.Mount(context.Background(), Credentials{Session: "tok"})
	assert.Equal(t, StateSignedOut, gate.Snapshot().State)
}

func TestGateMountWithSessionSignsIn(t *testing.T) {
	sessions := newMemorySessions()
	sessions.sessions["tok"] = &Session{Token: "tok", UserID: "u1", Email: "owner@example.com"}

	gate := NewGate(&fakeProvider{}, sessions)
	gate.Mount(context.Background(), Credentials{Session: "tok"})

	snap := gate.Snapshot()
	assert.Equal(t, StateSignedIn, snap.State)
	assert.Equal(t, "owner@example.com", snap.Email)
	require.NotNil(t, gate.Session())
	assert.Equal(t, "u1", gate.Session().UserID)
}

func TestGateMountWithProviderCredential(t *testing.T) {
	provider := &validatingProvider{fakeProvider{identity: &Identity{UserID: "u9", Email: "authz@example.com"}, cookie: "authz-cookie"}}
	gate := NewGate(provider, newMemorySessions())
	gate.Mount(context.Background(), Credentials{Provider: "authz-cookie"})

	assert.Equal(t, StateSignedIn, gate.Snapshot().State)
	assert.Equal(t, "tok-u9", gate.Session().Token)
}

func TestGateSignIn(t *testing.T) {
	provider := &fakeProvider{identity: &Identity{UserID: "u1", Email: "owner@example.com"}}
	gate := NewGate(provider, newMemorySessions())
	gate.Mount(context.Background(), Credentials{})

	require.NoError(t, gate.SignIn(context.Background(), " owner@example.com ", "secret"))
	assert.Equal(t, 1, provider.signIns)

	snap := gate.Snapshot()
	assert.Equal(t, StateSignedIn, snap.State)
	assert.Equal(t, "owner@example.com", snap.Email)
	assert.False(t, snap.Submitting)

	// signedIn is terminal
	require.NoError(t, gate.SignIn(context.Background(), "x@example.com", "other"))
	assert.Equal(t, 1, provider.signIns)
}

func TestGateRequiresBothFields(t *testing.T) {
	provider := &fakeProvider{identity: &Identity{UserID: "u1"}}
	gate := NewGate(provider, newMemorySessions())
	gate.Mount(context.Background(), Credentials{})

	for _, creds := range [][2]string{{"", "secret"}, {"owner@example.com", ""}, {"   ", "secret"}} {
		err := gate.SignIn(context.Background(), creds[0], creds[1])
		assert.True(t, types.IsValidation(err))
		err = gate.SignUp(context.Background(), creds[0], creds[1])
		assert.True(t, types.IsValidation(err))
	}

	assert.Zero(t, provider.signIns)
	assert.Zero(t, provider.signUps)
	assert.Equal(t, "Email and password are required.", gate.Snapshot().Message)
	assert.Equal(t, StateSignedOut, gate.Snapshot().State)
}

func TestGateRemoteFailureShownVerbatim(t *testing.T) {
	provider := &fakeProvider{err: &types.AuthError{Message: "Invalid login credentials"}}
	gate := NewGate(provider, newMemorySessions())
	gate.Mount(context.Background(), Credentials{})

	err := gate.SignIn(context.Background(), "owner@example.com", "wrong")
	var authErr *types.AuthError
	require.True(t, errors.As(err, &authErr))

	snap := gate.Snapshot()
	assert.Equal(t, StateSignedOut, snap.State)
	assert.Equal(t, "Invalid login credentials", snap.Message)
	assert.False(t, snap.Notice)
}

func TestGateProviderFaultHidden(t *testing.T) {
	provider := &fakeProvider{err: errors.New("dial tcp 10.0.0.5:5432: connection refused")}
	gate := NewGate(provider, newMemorySessions())
	gate.Mount(context.Background(), Credentials{})

	err := gate.SignIn(context.Background(), "owner@example.com", "secret")
	var authErr *types.AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "Could not sign in. Please try again.", authErr.Message)
	assert.ErrorIs(t, err, provider.err)

	snap := gate.Snapshot()
	assert.Equal(t, StateSignedOut, snap.State)
	assert.Equal(t, "Could not sign in. Please try again.", snap.Message)
	assert.NotContains(t, snap.Message, "5432")
}

func TestGateSignUpDeferredConfirmation(t *testing.T) {
	provider := &fakeProvider{}
	gate := NewGate(provider, newMemorySessions())
	gate.Mount(context.Background(), Credentials{})

	require.NoError(t, gate.SignUp(context.Background(), "new@example.com", "secret1"))

	snap := gate.Snapshot()
	assert.Equal(t, StateSignedOut, snap.State)
	assert.Equal(t, "Check your email to confirm your account.", snap.Message)
	assert.True(t, snap.Notice)
	assert.Equal(t, 1, provider.signUps)
}

func TestGateSessionFailure(t *testing.T) {
	sessions := newMemorySessions()
	sessions.createErr = errors.New("disk full")
	gate := NewGate(&fakeProvider{identity: &Identity{UserID: "u1"}}, sessions)
	gate.Mount(context.Background(), Credentials{})

	assert.Error(t, gate.SignIn(context.Background(), "owner@example.com", "secret"))
	assert.Equal(t, "Could not start a session. Please try again.", gate.Snapshot().Message)
	assert.Equal(t, StateSignedOut, gate.Snapshot().State)
}

func TestSessionContext(t *testing.T) {
	_, ok := SessionFrom(context.Background())
	assert.False(t, ok)

	ctx := WithSession(context.Background(), &Session{Email: "owner@example.com"})
	s, ok := SessionFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "owner@example.com", s.Email)
}

func TestSessionStore(t *testing.T) {
	db := testutil.NewDB(t)
	store := NewSessionStore(db, time.Hour)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	s, err := store.Create(ctx, Identity{UserID: "u1", Email: "owner@example.com"})
	require.NoError(t, err)
	assert.Len(t, s.Token, 36)

	found, err := store.Lookup(ctx, s.Token)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "owner@example.com", found.Email)

	missing, err := store.Lookup(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	now = now.Add(2 * time.Hour)
	expired, err := store.Lookup(ctx, s.Token)
	require.NoError(t, err)
	assert.Nil(t, expired)

	n, err := store.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestLocalProvider(t *testing.T) {
	db := testutil.NewDB(t)
	provider := NewLocalProvider(db)
	provider.Cost = bcrypt.MinCost
	ctx := context.Background()

	identity, err := provider.SignUp(ctx, "Owner@Example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", identity.Email)

	_, err = provider.SignUp(ctx, "owner@example.com", "secret2")
	var authErr *types.AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "User already registered", authErr.Message)

	signedIn, err := provider.SignIn(ctx, "owner@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, signedIn.UserID)

	_, err = provider.SignIn(ctx, "owner@example.com", "wrong")
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "Invalid login credentials", authErr.Message)

	_, err = provider.SignIn(ctx, "nobody@example.com", "secret1")
	require.True(t, errors.As(err, &authErr))

	_, err = provider.SignUp(ctx, "short@example.com", "abc")
	require.True(t, errors.As(err, &authErr))

	assert.NoError(t, provider.Ping(ctx))
}

func TestLocalGateEndToEnd(t *testing.T) {
	db := testutil.NewDB(t)
	provider := NewLocalProvider(db)
	provider.Cost = bcrypt.MinCost
	sessions := NewSessionStore(db, time.Hour)
	ctx := context.Background()

	gate := NewGate(provider, sessions)
	gate.Mount(ctx, Credentials{})
	require.NoError(t, gate.SignUp(ctx, "owner@example.com", "secret1"))
	require.Equal(t, StateSignedIn, gate.Snapshot().State)

	token := gate.Session().Token
	next := NewGate(provider, sessions)
	next.Mount(ctx, Credentials{Session: token})
	assert.Equal(t, StateSignedIn, next.Snapshot().State)
	assert.Equal(t, "owner@example.com", next.Snapshot().Email)
}
