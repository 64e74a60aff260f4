// Command issue-token signs access tokens for NGO and admin users.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ngoconnect/ngo-connect-api/internal/models"
	"github.com/ngoconnect/ngo-connect-api/internal/service"
	"github.com/ngoconnect/ngo-connect-api/pkg/config"
)

type tokenOptions struct {
	userID string
	role   string
	ngoID  string
	email  string
	ttl    time.Duration
}

func newRootCmd(load func() (*config.Config, error)) *cobra.Command {
	opts := tokenOptions{}
	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Sign an access token for the NGO Connect API",
		Long: `Sign an HS256 access token with the configured JWT secret and issuer.

NGO tokens must name the NGO they may report for with --ngo.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return issue(cmd.OutOrStdout(), cfg.JWT, opts)
		},
	}
	cmd.Flags().StringVar(&opts.userID, "user", "", "user id placed in the token (required)")
	cmd.Flags().StringVar(&opts.role, "role", string(models.RoleNGO), "ADMIN or NGO")
	cmd.Flags().StringVar(&opts.ngoID, "ngo", "", "NGO id the user reports for")
	cmd.Flags().StringVar(&opts.email, "email", "", "user email")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", 0, "token lifetime, defaults to JWT_EXPIRATION")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func issue(out io.Writer, jwtCfg config.JWTConfig, opts tokenOptions) error {
	role, ok := models.ParseRole(strings.ToUpper(strings.TrimSpace(opts.role)))
	if !ok {
		return fmt.Errorf("unknown role %q", opts.role)
	}
	ttl := jwtCfg.Expiration
	if opts.ttl > 0 {
		ttl = opts.ttl
	}
	auth := service.NewAuthService(service.AuthConfig{
		AccessTokenSecret: jwtCfg.Secret,
		AccessTokenExpiry: ttl,
		Issuer:            jwtCfg.Issuer,
	})
	token, expiresAt, err := auth.IssueToken(service.TokenSubject{
		UserID: opts.userID,
		Role:   role,
		NGOID:  opts.ngoID,
		Email:  opts.email,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\nexpires %s\n", token, expiresAt.Format(time.RFC3339))
	return err
}

func main() {
	if err := newRootCmd(config.Load).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "issue-token:", err)
		os.Exit(1)
	}
}
