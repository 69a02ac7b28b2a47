// Copyright (c) 2025 JustTzyy
// SoftWear - retail inventory management core
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JustTzyy/softwear/internal/auth"
	"github.com/JustTzyy/softwear/internal/db"
	"github.com/JustTzyy/softwear/internal/i18n"
)

// loginCmd verifies a credential pair against the user store. It is mainly a
// diagnostic: the desktop front-end performs the same call through the auth
// package.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify an email/password pair against the user store",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		var err error
		if email == "" {
			if email, err = promptLine("Email: "); err != nil {
				return err
			}
		}
		if password == "" {
			if password, err = promptLine("Password: "); err != nil {
				return err
			}
		}

		authenticator := auth.NewAuthenticator(db.DefaultStore())
		session := auth.NewSession()

		identity, err := authenticator.Authenticate(cmd.Context(), email, password)
		switch {
		case errors.Is(err, auth.ErrNotAuthenticated):
			fmt.Println(i18n.T("login.failed"))
			os.Exit(1)
		case errors.Is(err, auth.ErrStoreUnavailable):
			fmt.Println(i18n.T("login.store_unreachable"))
			os.Exit(2)
		case err != nil:
			return err
		}

		session.Set(identity)
		current := session.Current()
		fmt.Printf("%s %s <%s> (%s)\n", i18n.T("login.success"), current.DisplayName, current.Email, current.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Email address to authenticate")
	loginCmd.Flags().String("password", "", "Password (prompted when omitted)")
}
