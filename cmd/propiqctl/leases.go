// leases.go
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
	"strings"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/localnerve/propiq/internal/containers"
	"github.com/localnerve/propiq/internal/forms"
	"github.com/localnerve/propiq/internal/types"
	"github.com/localnerve/propiq/internal/views"
)

const (
	propertyFlag   = "property"
	propertyIDFlag = "property-id"
	tenantFlag     = "tenant-ids"
	startFlag      = "start"
	rentFlag       = "rent"
	frequencyFlag  = "frequency"
	bondFlag       = "bond"
)

func newLeasesCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leases",
		Short: "List and add leases",
	}
	cmd.AddCommand(newLeasesListCommand(s), newLeasesAddCommand(s))
	return cmd
}

func newLeasesListCommand(s *session) *cobra.Command {
	flags := map[string]cobraflags.Flag{
		propertyFlag: &cobraflags.StringFlag{
			Name:  propertyFlag,
			Usage: "Only leases of this property id",
		},
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leases with their property and tenants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			list := containers.NewLeaseList(s.store)
			list.Mount(ctx)
			printLines(cmd, views.RenderLeaseList(list.Snapshot(), flags[propertyFlag].GetString()).Lines())
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

func newLeasesAddCommand(s *session) *cobra.Command {
	flags := map[string]cobraflags.Flag{
		propertyIDFlag: &cobraflags.StringFlag{Name: propertyIDFlag, Usage: "Property id (required)"},
		tenantFlag:     &cobraflags.StringFlag{Name: tenantFlag, Usage: "Comma separated tenant ids (required)"},
		startFlag:      &cobraflags.StringFlag{Name: startFlag, Usage: "Start date, YYYY-MM-DD (required)"},
		rentFlag:       &cobraflags.StringFlag{Name: rentFlag, Usage: "Rent amount"},
		frequencyFlag:  &cobraflags.StringFlag{Name: frequencyFlag, Usage: "weekly, fortnightly or monthly"},
		bondFlag:       &cobraflags.StringFlag{Name: bondFlag, Usage: "Bond amount"},
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a lease linking a property to its tenants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := forms.NewLeaseForm()
			form.Update(func(v *forms.LeaseValues) {
				v.PropertyID = flags[propertyIDFlag].GetString()
				v.TenantID = types.FlexList[string](strings.Split(flags[tenantFlag].GetString(), ","))
				v.StartDate = flags[startFlag].GetString()
				v.RentAmount = types.FlexString(flags[rentFlag].GetString())
				v.BondAmount = types.FlexString(flags[bondFlag].GetString())
				if frequency := flags[frequencyFlag].GetString(); frequency != "" {
					v.RentFrequency = frequency
				}
			})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			list := containers.NewLeaseList(s.store)
			if err := form.Submit(ctx, list.Create); err != nil {
				return errors.New(form.State().Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Lease added")
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
