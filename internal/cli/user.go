package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/warehouse-keeper/internal/app"
	"github.com/MKhiriev/warehouse-keeper/models"
	"github.com/spf13/cobra"
)

const flagPassword = "password"

func (c *CLI) newUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user credentials",
	}

	registerCmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Register a new user",
		Long: `Register a new user with a freshly salted password digest.

The password is taken from --password or, when the flag is omitted, from the
first line of standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: c.runUserRegister,
	}

	validateCmd := &cobra.Command{
		Use:   "validate <username>",
		Short: "Check a username/password pair",
		Long: `Check a username/password pair against the stored digest.

Unknown users and wrong passwords are reported identically.`,
		Args: cobra.ExactArgs(1),
		RunE: c.runUserValidate,
	}

	for _, cmd := range []*cobra.Command{registerCmd, validateCmd} {
		cmd.Flags().StringP(flagPassword, "p", "", "Password (read from stdin when omitted)")
	}

	userCmd.AddCommand(registerCmd, validateCmd)
	return userCmd
}

func (c *CLI) runUserRegister(cmd *cobra.Command, args []string) error {
	creds, err := readCredentials(cmd, args[0])
	if err != nil {
		return err
	}

	if err = c.app.Auth.RegisterUser(cmd.Context(), creds); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", app.MsgUserRegistered, creds.Username)
	return nil
}

func (c *CLI) runUserValidate(cmd *cobra.Command, args []string) error {
	creds, err := readCredentials(cmd, args[0])
	if err != nil {
		return err
	}

	ok, err := c.app.Auth.ValidateUser(cmd.Context(), creds)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCredentials
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.MsgCredentialsValid)
	return nil
}

func readCredentials(cmd *cobra.Command, username string) (models.Credentials, error) {
	password, err := cmd.Flags().GetString(flagPassword)
	if err != nil {
		return models.Credentials{}, err
	}

	if !cmd.Flags().Changed(flagPassword) {
		line, readErr := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return models.Credentials{}, fmt.Errorf("error reading password: %w", readErr)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	return models.Credentials{Username: username, Password: password}, nil
}
