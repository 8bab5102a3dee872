package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register [username]",
	Short: "Create a new account",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and remember the session until SESSION_TTL passes",
	Long: `Asks for the password even when a session is remembered, then loads the
account's catalog. The first login of an account offers to import records from
the legacy event list.

Sessions are only remembered when SESSION_SECRET is set.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the remembered session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func runRegister(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	username := userFlag
	if len(args) == 1 {
		username = args[0]
	}
	if strings.TrimSpace(username) == "" {
		if username, err = a.prompt.Line("Username: "); err != nil {
			return err
		}
	}
	password, err := a.prompt.Secret("Password: ")
	if err != nil {
		return err
	}
	if err = a.credentials.Register(cmd.Context(), username, password); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "User created: %s\n", strings.TrimSpace(username))
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	account, err := a.signIn(cmd.Context(), false)
	if err != nil {
		return err
	}
	if err = a.catalog.Load(cmd.Context(), account, a.confirmImport); err != nil {
		return err
	}
	if err = a.remember(account); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", account)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := forgetSession(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
	return nil
}
