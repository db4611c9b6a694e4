package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/editorial-admin/internal/auth"
	"github.com/heartmarshall/editorial-admin/internal/config"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue access tokens for the admin API",
	}
	cmd.AddCommand(newTokenIssueCmd())
	return cmd
}

func newTokenIssueCmd() *cobra.Command {
	var (
		userID string
		name   string
		role   string
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Print a signed access token for the given user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actor, err := parseActor(userID, name, role)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			mgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
			token, err := mgr.GenerateAccessToken(actor)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user ID (a random one if empty)")
	cmd.Flags().StringVar(&name, "name", "", "display name embedded in the token")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleAdmin), "role: admin or editor")
	return cmd
}

func parseActor(userID, name, role string) (domain.Actor, error) {
	actor := domain.Actor{DisplayName: name, Role: domain.UserRole(role)}
	if !actor.Role.IsValid() {
		return domain.Actor{}, fmt.Errorf("--role: unknown role %q", role)
	}

	if userID == "" {
		actor.ID = uuid.New()
		return actor, nil
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("--user: %w", err)
	}
	actor.ID = id
	return actor, nil
}
