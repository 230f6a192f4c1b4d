package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cairncms/cairn/pkg/config"
	"github.com/cairncms/cairn/pkg/db"
	"github.com/cairncms/cairn/pkg/googleauth"
	"github.com/cairncms/cairn/pkg/server"
	"github.com/cairncms/cairn/pkg/server/endpoints"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the Cairn application server",
	Long: `Run the Cairn application server.

Running the server requires the DATABASE_URL environment variable.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		if cfg.DatabaseURL == "" && os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{URL: cfg.DatabaseURL})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		var verifier googleauth.Verifier
		if cfg.GoogleAudience != "" {
			verifier = googleauth.NewJWTVerifier(cfg.GoogleAudience, googleauth.NewKeySet().Keyfunc)
			log.Println("Google sign-in enabled")
		}

		if host, _ := cmd.Flags().GetString("bind-address"); host != "" {
			cfg.BindAddress = host
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}

		s := server.NewServer(database, cfg, verifier)
		endpoints.RegisterAll(s)

		// Pick up config file edits without a restart.
		if err := config.Watch(func(c *config.Config) {
			log.Println("Configuration reloaded")
		}); err != nil {
			log.Println("Config watch disabled:", err)
		}

		log.Printf("Running server at http://%s:%s...\n", cfg.BindAddress, cfg.Port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", "", "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
