// provider.go
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
	"fmt"

	"github.com/localnerve/propiq/internal/config"
	"gorm.io/gorm"
)

// Provider authenticates credentials against an account service
type Provider interface {
	Name() string
	// SignIn returns the identity for valid credentials, or an *types.AuthError
	SignIn(ctx context.Context, email, password string) (*Identity, error)
	// SignUp registers an account. A nil identity without error means the
	// account must be confirmed before a session can start.
	SignUp(ctx context.Context, email, password string) (*Identity, error)
	// Ping reports whether the provider is reachable
	Ping(ctx context.Context) error
}

// CredentialValidator is implemented by providers that issue their own
// session credential, so a client holding one can be let in directly
type CredentialValidator interface {
	Validate(ctx context.Context, credential string) (*Identity, error)
}

// NewProvider builds the provider named by cfg.AuthProvider
func NewProvider(cfg *config.Config, db *gorm.DB) (Provider, error) {
	switch cfg.AuthProvider {
	case config.AuthProviderLocal:
		return NewLocalProvider(db), nil
	case config.AuthProviderAuthorizer:
		return NewAuthorizerProvider(cfg.AuthzClientID, cfg.AuthzURL, cfg.AuthzRedirectURL)
	}
	return nil, fmt.Errorf("unsupported auth provider: %s", cfg.AuthProvider)
}
