package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizgame/internal/app"
	"quizgame/internal/config"
	"quizgame/internal/infra/memory"
	"quizgame/internal/infra/postgres"
	redisinfra "quizgame/internal/infra/redis"
	"quizgame/internal/logger"
	transport "quizgame/internal/transport/http"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	return cfg, nil
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 30*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var (
		loader   memory.QuestionSetLoader = memory.NewStaticLoader(builtinQuestionSets())
		results  app.ResultRepository     = memory.NewResultStore()
		users    app.UserRepository       = memory.NewUserStore()
		sessions app.SessionRepository    = memory.NewSessionStore()
	)
	if pool != nil {
		loader = postgres.NewQuestionSetLoader(pool)
		results = postgres.NewResultStore(pool)
		users = postgres.NewUserStore(pool)
	} else {
		slog.Warn("postgres not configured, results and users are kept in memory")
	}

	setTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	var sets app.QuestionSetRepository
	if redisClient != nil {
		sets = redisinfra.NewQuestionSetRepository(redisClient, loader, setTTL)
		sessions = redisinfra.NewSessionStore(redisClient, redisTTL)
	} else {
		sets = memory.NewQuestionSetRepository(loader, setTTL)
	}

	defaultSet := cfg.Quiz.DefaultSet
	if defaultSet == "" {
		defaultSet = defaultSetID
	}

	quizzes := app.NewQuizService(sessions, sets, results)
	accounts := app.NewAccountService(users, results)
	wsHandler := transport.NewWSHandler(quizzes, accounts, defaultSet)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	transport.NewAPI(quizzes, accounts).Register(mux)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		slog.Info("starting quiz service", "port", finalPort, "default_set", defaultSet)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "err", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		slog.Info("shutting down server")
	case <-ctx.Done():
		slog.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
