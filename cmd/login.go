// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"saprfc/cli/internal/config"
	clierrors "saprfc/cli/internal/errors"
	"saprfc/cli/internal/keychain"
	"saprfc/cli/internal/rfc"
	"saprfc/cli/internal/terminal"
)

var (
	loginProfile config.Profile
	loginNoCheck bool
)

// loginCmd stores a profile in the config file and its password in the
// keychain after a test logon.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save logon data of an SAP system as a profile",
	Long: `The login command asks for the application server, system number, client,
user and password of an SAP system. Values passed as flags are not asked for.
Unless --no-check is given it logs on and calls RFC_PING before saving.

The profile is written to the config file; the password goes to the OS
keychain.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationRFC: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := profileFlag
		if name == "" {
			name = app.cfg.Profile
		}
		existing := app.cfg.Profiles[name]
		pr := terminal.NewPrompter()
		p, err := askProfile(pr, mergeProfile(existing, loginProfile))
		if err != nil {
			return err
		}
		password, err := pr.Password("Password")
		if err != nil {
			return err
		}
		if password == "" {
			return clierrors.New(clierrors.CredentialsMissing, "a password is required")
		}

		if !loginNoCheck {
			err := spin("Checking logon", func() error {
				conn, err := rfc.Open(app.api, p.Params(password), rfc.WithLogger(app.log))
				if err != nil {
					return err
				}
				defer conn.Close()
				fn, err := conn.Function("RFC_PING")
				if err != nil {
					return err
				}
				defer fn.Close()
				return fn.Call()
			})
			if err != nil {
				return clierrors.Wrap(clierrors.ConnectionFailed, "test logon with profile "+name, err)
			}
		}

		km, err := keychain.GetManager()
		if err != nil {
			fmt.Println("❌ Secure storage is not available on this system.")
			fmt.Printf("   Set %s to pass the password instead.\n", envPassword)
			return err
		}
		if err := km.SavePassword(name, password); err != nil {
			return err
		}
		if app.cfg.Profiles == nil {
			app.cfg.Profiles = map[string]config.Profile{}
		}
		app.cfg.Profiles[name] = p
		if len(app.cfg.Profiles) == 1 {
			app.cfg.Profile = name
		}
		if err := config.Save(app.cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Profile %s saved (%s@%s client %s)\n", name, p.User, host(p), p.Client)
		return nil
	},
}

// mergeProfile overlays the non-empty fields of flags on base.
func mergeProfile(base, flags config.Profile) config.Profile {
	for _, f := range []struct{ dst, src *string }{
		{&base.ASHost, &flags.ASHost},
		{&base.SysNr, &flags.SysNr},
		{&base.MSHost, &flags.MSHost},
		{&base.Group, &flags.Group},
		{&base.SAPRouter, &flags.SAPRouter},
		{&base.Client, &flags.Client},
		{&base.User, &flags.User},
		{&base.Lang, &flags.Lang},
	} {
		if *f.src != "" {
			*f.dst = *f.src
		}
	}
	return base
}

// askProfile prompts for every field of p, offering current values as
// defaults. A message server profile skips the application server fields.
func askProfile(pr *terminal.Prompter, p config.Profile) (config.Profile, error) {
	type field struct {
		label string
		dst   *string
		def   string
	}
	var fields []field
	if p.MSHost == "" {
		fields = append(fields,
			field{"Application server", &p.ASHost, p.ASHost},
			field{"System number", &p.SysNr, orDefault(p.SysNr, "00")},
		)
	}
	fields = append(fields,
		field{"Client", &p.Client, orDefault(p.Client, "100")},
		field{"User", &p.User, p.User},
		field{"Language", &p.Lang, orDefault(p.Lang, "EN")},
	)
	for _, f := range fields {
		v, err := pr.Line(f.label, f.def)
		if err != nil {
			return p, err
		}
		*f.dst = v
	}
	if p.ASHost == "" && p.MSHost == "" {
		return p, clierrors.New(clierrors.ProfileMissing, "an application or message server is required")
	}
	return p, nil
}

func orDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func host(p config.Profile) string {
	if p.MSHost != "" {
		return p.MSHost
	}
	return p.ASHost
}

func init() {
	rootCmd.AddCommand(loginCmd)
	f := loginCmd.Flags()
	f.StringVar(&loginProfile.ASHost, "ashost", "", "Application server host")
	f.StringVar(&loginProfile.SysNr, "sysnr", "", "System number")
	f.StringVar(&loginProfile.MSHost, "mshost", "", "Message server host (load balanced logon)")
	f.StringVar(&loginProfile.Group, "group", "", "Logon group for --mshost")
	f.StringVar(&loginProfile.SAPRouter, "saprouter", "", "SAProuter string")
	f.StringVar(&loginProfile.Client, "client", "", "Client")
	f.StringVar(&loginProfile.User, "user", "", "User name")
	f.StringVar(&loginProfile.Lang, "lang", "", "Logon language")
	f.BoolVar(&loginNoCheck, "no-check", false, "Save without a test logon")
}
