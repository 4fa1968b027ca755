// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/l3montree-dev/jiralink/database"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Run the database migrations",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setupEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			if err := database.RunMigrationsWithDB(env.db); err != nil {
				return fmt.Errorf("could not run migrations: %w", err)
			}
			version, dirty, err := database.GetMigrationVersionWithDB(env.db)
			if err != nil {
				return err
			}
			slog.Info("database migrated", "version", version, "dirty", dirty)
			return nil
		},
	}

	migrate.AddCommand(newMigrationVersionCommand())
	return &migrate
}

func newMigrationVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setupEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			version, dirty, err := database.GetMigrationVersionWithDB(env.db)
			if err != nil {
				return err
			}
			fmt.Printf("version: %d dirty: %t\n", version, dirty)
			return nil
		},
	}
}
