// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"os"

	"saprfc/cli/internal/connparams"
	clierrors "saprfc/cli/internal/errors"
	"saprfc/cli/internal/dsn"
	"saprfc/cli/internal/keychain"
	"saprfc/cli/internal/rfc"
)

// envPassword supplies the SAP password in non-interactive use.
const envPassword = "SAPRFC_PASSWORD"

// sessionParams builds the logon parameters from --dsn or from the active
// profile. The password comes from the DSN, the environment or the keychain,
// in that order.
func sessionParams() (string, connparams.Params, error) {
	if dsnFlag != "" {
		if err := dsn.Validate(dsnFlag); err != nil {
			return "", nil, err
		}
		info, err := dsn.ParseInfo(dsnFlag)
		if err != nil {
			return "", nil, err
		}
		if info.Scheme != dsn.SchemeSAP {
			return "", nil, clierrors.New(clierrors.ConnectionFailed, "--dsn needs a sap:// URL")
		}
		if info.Password == "" {
			info.Password = os.Getenv(envPassword)
		}
		return info.Host, dsn.ConnParams(info), nil
	}

	name, profile, err := app.cfg.Active(profileFlag)
	if err != nil {
		return name, nil, err
	}
	password, err := profilePassword(name)
	if err != nil {
		return name, nil, err
	}
	params := profile.Params(password)
	if err := params.Validate(); err != nil {
		return name, nil, clierrors.Wrap(clierrors.ProfileMissing, "profile "+name+" is incomplete", err)
	}
	return name, params, nil
}

func profilePassword(profile string) (string, error) {
	if v := os.Getenv(envPassword); v != "" {
		return v, nil
	}
	km, err := keychain.GetManager()
	if err != nil {
		return "", clierrors.Wrap(clierrors.CredentialsMissing, "no keychain available; set "+envPassword, err)
	}
	pw, err := km.LoadPassword(profile)
	if errors.Is(err, keychain.ErrNotFound) {
		return "", clierrors.New(clierrors.CredentialsMissing, "no password stored for profile "+profile+"; run 'saprfc login'")
	}
	return pw, err
}

// openSession logs on with the parameters of sessionParams.
func openSession() (*rfc.Connection, error) {
	target, params, err := sessionParams()
	if err != nil {
		return nil, err
	}
	app.log.Debug("opening connection", app.log.Args("target", target, "params", params.String()))
	var conn *rfc.Connection
	err = spin("Logging on to "+target, func() error {
		var err error
		conn, err = rfc.Open(app.api, params, rfc.WithLogger(app.log))
		return err
	})
	if err != nil {
		return nil, clierrors.Wrap(clierrors.ConnectionFailed, "logon to "+target, err)
	}
	return conn, nil
}
