package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mernapp/mern-api/internal/core/domain"
	mongodb "github.com/mernapp/mern-api/internal/infrastructure/db/mongo"
)

const commandTimeout = 2 * time.Minute

func InitCmd() *cobra.Command {
	var withAdmin bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the users and posts collections and their indexes",
		Long: `Create the users and posts collections, the unique email index, the
posts createdAt/author indexes and a sparse unique username index.
With --with-admin an administrative account is added from ADMIN_USERNAME,
ADMIN_EMAIL and ADMIN_PASSWORD. Running init again changes nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close(context.WithoutCancel(ctx))

			var admin *mongodb.AdminAccount
			if withAdmin {
				admin = &mongodb.AdminAccount{
					Username: s.cfg.Admin.Username,
					Email:    domain.NormalizeEmail(s.cfg.Admin.Email),
					Password: s.cfg.Admin.Password,
				}
			}

			res, err := mongodb.Provision(ctx, s.db, admin)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			s.log.Info().
				Str("database", s.cfg.Mongo.Database).
				Strs("created_collections", res.CreatedCollections).
				Bool("admin_created", res.AdminCreated).
				Msg("database initialized")
			return nil
		},
	}

	cmd.Flags().BoolVar(&withAdmin, "with-admin", false, "also create the administrative account")
	return cmd
}
