// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"saprfc/cli/internal/config"
	"saprfc/cli/internal/keychain"
)

var (
	logoutForget bool
	logoutExport bool
)

// logoutCmd removes the stored password of a profile.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved password of a profile",
	Long: `The logout command removes the password of the selected profile from the
OS keychain. With --forget the profile is removed from the config file too;
with --export the export database DSN is removed as well.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := profileFlag
		if name == "" {
			name = app.cfg.Profile
		}
		if km, err := keychain.GetManager(); err == nil {
			_ = km.ClearPassword(name)
			if logoutExport {
				_ = km.ClearExportDSN()
			}
		}
		if logoutForget {
			delete(app.cfg.Profiles, name)
			if err := config.Save(app.cfg); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Credentials of profile %s have been removed\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
	logoutCmd.Flags().BoolVar(&logoutForget, "forget", false, "Also remove the profile from the config file")
	logoutCmd.Flags().BoolVar(&logoutExport, "export", false, "Also remove the export database DSN")
}
