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
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/l3montree-dev/jiralink/shared"
)

var rootCmd = &cobra.Command{
	Use:     "jiralink-cli",
	Short:   "Management cli",
	Long:    `The jiralink cli operates directly on the database of a jiralink installation.`,
	Version: shared.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		shared.LoadConfig() // nolint: errcheck
		return initializeFlags(cmd)
	},
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func initializeFlags(cmd *cobra.Command) error {
	viper.SetEnvPrefix("JIRALINK")
	// --installation-id can be provided as JIRALINK_INSTALLATION_ID
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(f.Name))); err != nil {
				bindErr = fmt.Errorf("invalid value for --%s: %w", f.Name, err)
			}
		}
		if err := viper.BindPFlag(f.Name, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
	return bindErr
}
