// tenants.go
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

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/localnerve/propiq/internal/containers"
	"github.com/localnerve/propiq/internal/forms"
	"github.com/localnerve/propiq/internal/types"
	"github.com/localnerve/propiq/internal/views"
)

const (
	firstNameFlag = "first-name"
	lastNameFlag  = "last-name"
	emailFlag     = "email"
	phoneFlag     = "phone"
)

func newTenantsCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenants",
		Short: "List and add tenants",
	}
	cmd.AddCommand(newTenantsListCommand(s), newTenantsAddCommand(s))
	return cmd
}

func newTenantsListCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tenants with their active lease counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			list := containers.NewTenantList(s.store)
			list.Mount(ctx)
			printLines(cmd, views.RenderTenantList(list.Snapshot()).Lines())
			return nil
		},
	}
}

func newTenantsAddCommand(s *session) *cobra.Command {
	flags := map[string]cobraflags.Flag{
		firstNameFlag: &cobraflags.StringFlag{Name: firstNameFlag, Usage: "First name (required)"},
		lastNameFlag:  &cobraflags.StringFlag{Name: lastNameFlag, Usage: "Last name (required)"},
		emailFlag:     &cobraflags.StringFlag{Name: emailFlag, Usage: "Email address"},
		phoneFlag:     &cobraflags.StringFlag{Name: phoneFlag, Usage: "Phone number"},
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a tenant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := forms.NewTenantForm()
			form.Set(forms.TenantValues{
				FirstName: flags[firstNameFlag].GetString(),
				LastName:  flags[lastNameFlag].GetString(),
				Email:     flags[emailFlag].GetString(),
				Phone:     types.FlexString(flags[phoneFlag].GetString()),
			})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			list := containers.NewTenantList(s.store)
			if err := form.Submit(ctx, list.Create); err != nil {
				return errors.New(form.State().Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Tenant added")
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
