package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cairncms/cairn/pkg/crypto"
	"github.com/cairncms/cairn/pkg/db"
	"github.com/cairncms/cairn/pkg/model"
	storegorm "github.com/cairncms/cairn/pkg/server/store/gorm"
)

// accountCreateCmd represents the account create command
var accountCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an active account",
	Long: `Create an account directly, skipping the registration mail flow.

The account is created active, so it can sign in immediately. When no
password is given, a random one is generated and printed to STDOUT.

Example:
  cairnctl account create --email admin@example.com --username admin
  cairnctl account create --email admin@example.com --username admin --password changeme`,
	Run: func(cmd *cobra.Command, args []string) {
		email, _ := cmd.Flags().GetString("email")
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if email == "" || username == "" {
			fmt.Fprintln(os.Stderr, "--email and --username are required")
			os.Exit(1)
		}

		generated := password == ""
		if generated {
			var err error
			password, err = crypto.RandomToken(24)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to generate password: %v\n", err)
				os.Exit(1)
			}
		}

		if err := createAccount(email, username, password); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create account: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created account '%s'\n", username)
		if generated {
			fmt.Printf("Password for %s: %s\n", username, password)
		}
	},
}

func init() {
	accountCmd.AddCommand(accountCreateCmd)
	accountCreateCmd.Flags().StringP("email", "e", "", "account email")
	accountCreateCmd.Flags().StringP("username", "u", "", "account username")
	accountCreateCmd.Flags().StringP("password", "p", "", "account password (generated when omitted)")
}

func createAccount(email, username, password string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	accounts := storegorm.NewAccountsStore(database)
	account := &model.Account{
		ID:       uuid.NewString(),
		Email:    email,
		Username: username,
		Password: hash,
		Role:     "none",
		Active:   true,
	}
	return accounts.CreateAccount(context.Background(), account)
}
