// root.go
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
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/localnerve/propiq/internal/config"
	"github.com/localnerve/propiq/internal/database"
	"github.com/localnerve/propiq/internal/services"
)

const envFileFlag = "env-file"

// opener connects to the configured database and returns how to release it
type opener func(envFile string) (*config.Config, *gorm.DB, func() error, error)

// session is what every subcommand works against
type session struct {
	open  opener
	cfg   *config.Config
	db    *gorm.DB
	close func() error
	store *services.Store
}

func openFromEnv(envFile string) (*config.Config, *gorm.DB, func() error, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, nil, nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, db, func() error { return database.Close(db) }, nil
}

func newRootCommand(open opener) *cobra.Command {
	s := &session{open: open}
	var envFile string

	root := &cobra.Command{
		Use:           "propiqctl",
		Short:         "Manage PropIQ properties, leases and tenants",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, db, closeDB, err := s.open(envFile)
			if err != nil {
				return err
			}
			s.cfg, s.db, s.close, s.store = cfg, db, closeDB, services.NewStore(db)
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if s.close == nil {
				return nil
			}
			return s.close()
		},
	}
	root.PersistentFlags().StringVar(&envFile, envFileFlag, "", "Path to a .env file with the service configuration")

	root.AddCommand(
		newMigrateCommand(s),
		newPropertiesCommand(s),
		newLeasesCommand(s),
		newTenantsCommand(s),
	)
	return root
}

func newMigrateCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := database.AutoMigrate(s.db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}

func printLines(cmd *cobra.Command, lines []string) {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
