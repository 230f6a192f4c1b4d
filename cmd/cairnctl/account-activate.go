package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cairncms/cairn/pkg/db"
	storegorm "github.com/cairncms/cairn/pkg/server/store/gorm"
)

// accountActivateCmd represents the account activate command
var accountActivateCmd = &cobra.Command{
	Use:   "activate <code>",
	Short: "Activate a registered account",
	Long: `Activate a registered account by its activation code.

Useful when the activation mail never arrived.

Example:
  cairnctl account activate hX2p9qLmN4vK7wYz`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := activateAccount(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to activate account: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	accountCmd.AddCommand(accountActivateCmd)
}

func activateAccount(code string) error {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	accounts := storegorm.NewAccountsStore(database)
	account, err := accounts.ActivateAccount(context.Background(), code)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Activated account '%s'\n", account.Username)
	return nil
}
