package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/cli/jira"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/cli/migrate"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/cli/server"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/cli/token"
)

// @title						Dotations API
// @version					1.0
// @description				IT equipment allocation backend with Jira Assets reconciliation.
// @host						localhost:8080
// @BasePath					/
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "dotations",
		Short: "Dotations - IT equipment allocation service",
		Long:  `Dotations tracks laptops and peripherals lent to employees, reconciles them with Jira Assets and records allocations and returns.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		jira.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
