// properties.go
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
	"bufio"
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
	filterFlag    = "filter"
	nameFlag      = "name"
	streetFlag    = "street"
	suburbFlag    = "suburb"
	stateFlag     = "state"
	postcodeFlag  = "postcode"
	countryFlag   = "country"
	statusFlag    = "status"
	bedroomsFlag  = "bedrooms"
	bathroomsFlag = "bathrooms"
	carBaysFlag   = "car-bays"
	notesFlag     = "notes"
)

func newPropertiesCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "List, add and archive properties",
	}
	cmd.AddCommand(
		newPropertiesListCommand(s),
		newPropertiesShowCommand(s),
		newPropertiesAddCommand(s),
		newPropertiesArchiveCommand(s),
	)
	return cmd
}

func newPropertiesListCommand(s *session) *cobra.Command {
	flags := map[string]cobraflags.Flag{
		filterFlag: &cobraflags.StringFlag{
			Name:  filterFlag,
			Value: string(views.FilterAll),
			Usage: "Show all, occupied or vacant properties",
		},
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := views.ParseFilter(flags[filterFlag].GetString())
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			list := containers.NewPropertyList(s.store)
			list.Mount(ctx)
			printLines(cmd, views.RenderPropertyList(list.Snapshot(), filter, views.ReadOnly).Lines())
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

func newPropertiesShowCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one property, archived or not",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			detail := containers.NewPropertyDetail(s.store, args[0])
			detail.Mount(ctx)

			view := views.RenderPropertyDetail(detail.Snapshot(), views.ReadOnly)
			if view.Property == nil {
				return errors.New(view.Message)
			}

			p := view.Property
			lines := []string{
				p.Name,
				"Address: " + views.Address(*p),
				"Status: " + view.StatusLabel,
				"Updated: " + view.Updated,
			}
			if p.IsArchived {
				lines = append(lines, "Archived")
			}
			printLines(cmd, lines)
			return nil
		},
	}
}

func newPropertiesAddCommand(s *session) *cobra.Command {
	flags := map[string]cobraflags.Flag{}
	for name, usage := range map[string]string{
		nameFlag:      "Property name (required)",
		streetFlag:    "Street address",
		suburbFlag:    "Suburb (required)",
		stateFlag:     "State",
		postcodeFlag:  "Postcode",
		countryFlag:   "Country, defaults to the configured country",
		statusFlag:    "occupied or vacant",
		bedroomsFlag:  "Number of bedrooms",
		bathroomsFlag: "Number of bathrooms",
		carBaysFlag:   "Number of car bays",
		notesFlag:     "Notes",
	} {
		flags[name] = &cobraflags.StringFlag{Name: name, Usage: usage}
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			form := forms.NewPropertyForm(s.cfg.DefaultCountry, nil)
			form.Update(func(v *forms.PropertyValues) {
				v.Name = flags[nameFlag].GetString()
				v.Street = flags[streetFlag].GetString()
				v.Suburb = flags[suburbFlag].GetString()
				v.State = flags[stateFlag].GetString()
				v.Postcode = types.FlexString(flags[postcodeFlag].GetString())
				v.Bedrooms = types.FlexString(flags[bedroomsFlag].GetString())
				v.Bathrooms = types.FlexString(flags[bathroomsFlag].GetString())
				v.CarBays = types.FlexString(flags[carBaysFlag].GetString())
				v.Notes = flags[notesFlag].GetString()
				if country := flags[countryFlag].GetString(); country != "" {
					v.Country = country
				}
				if status := flags[statusFlag].GetString(); status != "" {
					v.Status = status
				}
			})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			list := containers.NewPropertyList(s.store)
			if err := form.Submit(ctx, list.Create); err != nil {
				return errors.New(form.State().Error)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Property added")
			return nil
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

func newPropertiesArchiveCommand(s *session) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a property, hiding it from the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			detail := containers.NewPropertyDetail(s.store, args[0])
			detail.Mount(ctx)

			var confirm containers.Confirmer = containers.Answer(true)
			if !yes {
				confirm = stdinConfirm(cmd)
			}

			archived, err := detail.Archive(ctx, confirm)
			switch {
			case errors.Is(err, types.ErrNotFound):
				return errors.New(detail.Snapshot().Message)
			case err != nil:
				return err
			case !archived:
				fmt.Fprintln(cmd.OutOrStdout(), "Not archived")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Property archived")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Archive without asking for confirmation")
	return cmd
}

// stdinConfirm asks on the command's output and reads y or yes from its input
func stdinConfirm(cmd *cobra.Command) containers.ConfirmFunc {
	return func(_ context.Context, prompt string) (bool, error) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
		answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && answer == "" {
			return false, nil
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes", nil
	}
}
