package token

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/GithubESPI/dotationsFrontend/internal/infrastructure/auth"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/cli/bootstrap"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/authorization"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/constants"
)

var (
	env        string
	configPath string
	subject    string
	role       string
	email      string
	name       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Staff bearer tokens",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newIssueCommand())

	return cmd
}

func newIssueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a signed access token for a staff member",
		Long:  `Sign an access token with auth.jwt.secret. Only the token is printed when stdout is not a terminal.`,
		RunE:  runIssue,
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Staff identifier (required)")
	cmd.Flags().StringVar(&role, "role", string(authorization.RoleStaff), "Role: admin, staff or viewer")
	cmd.Flags().StringVar(&email, "email", "", "Staff email")
	cmd.Flags().StringVar(&name, "name", "", "Staff display name")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func runIssue(cmd *cobra.Command, args []string) error {
	r := authorization.UserRole(role)
	if !r.IsValid() {
		return fmt.Errorf("invalid role %q", role)
	}

	cfg, _, err := bootstrap.Init(bootstrap.Options{Env: env, ConfigPath: configPath})
	if err != nil {
		return err
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.AccessExpMinutes)
	token, expiresAt, err := svc.Issue(auth.Identity{
		Subject: subject,
		Email:   email,
		Name:    name,
		Role:    r,
	})
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	return printToken(cmd.OutOrStdout(), isTerminal(cmd.OutOrStdout()), token, expiresAt)
}

func printToken(w io.Writer, verbose bool, token string, expiresAt time.Time) error {
	if !verbose {
		_, err := fmt.Fprintln(w, token)
		return err
	}
	_, err := fmt.Fprintf(w, "Authorization: Bearer %s\nExpires: %s\n", token, expiresAt.Format(time.RFC3339))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
