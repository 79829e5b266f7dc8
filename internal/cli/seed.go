package cli

import (
	"fmt"
	"log/slog"

	"quizgame/internal/infra/postgres"

	"github.com/spf13/cobra"
)

// NewSeedCmd writes the built-in question sets to Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in question sets into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cfg.Postgres.URL == "" {
				return fmt.Errorf("postgres url not configured")
			}
			if err := runMigrationsWithConfig(cmd.Context(), cfg); err != nil {
				return err
			}

			db := postgres.OpenBun(cfg.Postgres.URL)
			defer db.Close()
			for _, set := range builtinQuestionSets() {
				if err := postgres.SeedQuestionSet(cmd.Context(), db, set); err != nil {
					return err
				}
				slog.Info("question set seeded", "set", set.ID, "questions", len(set.Questions))
			}
			return nil
		},
	}
}
