package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mernapp/mern-api/internal/core/service"
	mongodb "github.com/mernapp/mern-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mernapp/mern-api/internal/infrastructure/db/redis"
)

func SeedCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all users and posts with the sample data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close(context.WithoutCancel(ctx))

			if s.cfg.IsProduction() && !force {
				return errors.New("refusing to seed a production database without --force")
			}

			if err := mongodb.EnsureIndexes(ctx, s.db); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}

			// Share the API's lock when Redis is configured.
			var locker service.SeedLocker
			redisCfg := redisdb.Config{
				Addr:     s.cfg.Redis.Addr,
				Password: s.cfg.Redis.Password,
				DB:       s.cfg.Redis.DB,
			}
			if redisCfg.Enabled() {
				rdb, err := redisdb.Connect(ctx, redisCfg)
				if err != nil {
					return fmt.Errorf("connect redis: %w", err)
				}
				defer rdb.Close()
				locker = redisdb.NewSeedLock(rdb)
			}

			users := mongodb.NewUserRepository(s.db)
			posts := mongodb.NewPostRepository(s.db)
			res, err := service.NewSeedService(users, posts, locker, s.log).Seed(ctx)
			if err != nil {
				return fmt.Errorf("failed to seed database: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Database seeded successfully: %d users, %d posts\n", res.Users, res.Posts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "seed even when ENV=production")
	return cmd
}
