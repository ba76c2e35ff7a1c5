package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edukids-quiz-service/internal/app"
	"edukids-quiz-service/internal/config"
	"edukids-quiz-service/internal/infra/memory"
	pgloader "edukids-quiz-service/internal/infra/postgres"
	rediskv "edukids-quiz-service/internal/infra/redis"
	"edukids-quiz-service/internal/profile"
	"edukids-quiz-service/internal/questionbank"
	"edukids-quiz-service/internal/quiz"
	transport "edukids-quiz-service/internal/transport/http"
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

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
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
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader memory.SubjectLoader = memory.NewStaticSubjectLoader(questionbank.Subjects(), questionbank.Keys())
	if pool != nil {
		loader = pgloader.NewSubjectLoader(pool)
	}

	subjectTTL := config.TTLDuration(cfg.Quiz.SubjectTTL, 10*time.Minute)
	var subjects app.SubjectRepository
	if redisClient != nil {
		subjects = rediskv.NewSubjectRepository(redisClient, loader, subjectTTL)
	} else {
		subjects = memory.NewSubjectRepository(loader, subjectTTL)
	}

	var kv quiz.KeyValue
	if redisClient != nil {
		kv = rediskv.NewKV(redisClient)
	} else {
		kv = memory.NewKV()
	}
	scores := quiz.NewScoreTracker(kv)
	scores.Load(ctx)

	sessionCfg := quiz.Config{
		RunSeconds:   int(config.TTLDuration(cfg.Quiz.Duration, 3*time.Minute).Seconds()),
		TickInterval: config.TTLDuration(cfg.Quiz.Tick, time.Second),
	}
	factory := func() *quiz.Session {
		return quiz.NewSession(scores, sessionCfg)
	}

	var store app.SessionRepository
	if redisClient != nil {
		store = rediskv.NewSessionStore(redisClient, redisTTL, factory)
	} else {
		store = memory.NewSessionStore(factory)
	}

	service := app.NewQuizService(store, subjects, scores)
	profiles := profile.NewManager(kv)
	wsHandler := transport.NewWSHandler(service, profiles)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quiz service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
