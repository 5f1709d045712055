// authorizer.go
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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/authorizerdev/authorizer-go"
	"github.com/localnerve/propiq/internal/types"
	"github.com/localnerve/propiq/internal/utils"
)

// AuthorizerProvider authenticates against an Authorizer service
type AuthorizerProvider struct {
	client *authorizer.AuthorizerClient
	url    string
	roles  []string
}

// NewAuthorizerProvider creates the Authorizer client
func NewAuthorizerProvider(clientID, authzURL, redirectURL string) (*AuthorizerProvider, error) {
	client, err := authorizer.NewAuthorizerClient(clientID, authzURL, redirectURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create authorizer client: %w", err)
	}
	return &AuthorizerProvider{client: client, url: authzURL, roles: []string{"user"}}, nil
}

func (p *AuthorizerProvider) Name() string {
	return "authorizer"
}

func (p *AuthorizerProvider) SignIn(_ context.Context, email, password string) (*Identity, error) {
	res, err := p.client.Login(&authorizer.LoginInput{
		Email:    &email,
		Password: password,
	})
	if err != nil {
		return nil, authorizerError(err)
	}
	if res == nil || res.User == nil {
		return nil, &types.AuthError{Message: "Sign in did not return an account"}
	}
	return identityOf(res.User)
}

// SignUp registers the account. Authorizer withholds the token until the
// email address is verified, which surfaces as a nil identity.
func (p *AuthorizerProvider) SignUp(_ context.Context, email, password string) (*Identity, error) {
	res, err := p.client.SignUp(&authorizer.SignUpInput{
		Email:           &email,
		Password:        password,
		ConfirmPassword: password,
		Roles:           rolePtrs(p.roles),
	})
	if err != nil {
		return nil, authorizerError(err)
	}
	if res == nil || res.AccessToken == nil || res.User == nil {
		return nil, nil
	}
	return identityOf(res.User)
}

// Validate checks an Authorizer session cookie
func (p *AuthorizerProvider) Validate(_ context.Context, cookie string) (*Identity, error) {
	res, err := p.client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
		Roles:  rolePtrs(p.roles),
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}
	if res == nil || !res.IsValid || res.User == nil {
		return nil, nil
	}
	return identityOf(res.User)
}

// Ping dials the Authorizer host
func (p *AuthorizerProvider) Ping(ctx context.Context) error {
	return utils.PingAuthorizer(ctx, p.url)
}

// identityOf reads the id and email off an Authorizer user
func identityOf(user interface{}) (*Identity, error) {
	raw, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	var u struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, err
	}
	if u.ID == "" {
		return nil, &types.AuthError{Message: "Authorizer returned an account without an id"}
	}
	return &Identity{UserID: u.ID, Email: u.Email}, nil
}

// authorizerError keeps the service's own message for display
func authorizerError(err error) error {
	msg := err.Error()
	msg = strings.TrimPrefix(msg, "graphql: ")
	return &types.AuthError{Message: msg, Err: err}
}

func rolePtrs(roles []string) []*string {
	ptrs := make([]*string, len(roles))
	for i := range roles {
		ptrs[i] = &roles[i]
	}
	return ptrs
}
