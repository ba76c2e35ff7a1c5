package integration

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"edukids-quiz-service/internal/app"
	"edukids-quiz-service/internal/domain"
	pgloader "edukids-quiz-service/internal/infra/postgres"
	pgmigrations "edukids-quiz-service/internal/infra/postgres/migrations"
	infraredis "edukids-quiz-service/internal/infra/redis"
	"edukids-quiz-service/internal/quiz"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

func TestFullRunEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	applyMigrations(t, ctx, pgURL)

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}

	loader := pgloader.NewSubjectLoader(pool)
	subjects := infraredis.NewSubjectRepository(redisClient, loader, 5*time.Minute)
	kv := infraredis.NewKV(redisClient)
	scores := quiz.NewScoreTracker(kv)
	scores.Load(ctx)
	sessions := infraredis.NewSessionStore(redisClient, 5*time.Minute, func() *quiz.Session {
		return quiz.NewSession(scores, quiz.Config{RunSeconds: 60})
	})
	service := app.NewQuizService(sessions, subjects, scores)

	menu, err := service.Subjects(ctx)
	if err != nil {
		t.Fatalf("subjects: %v", err)
	}
	if len(menu) != 8 || menu[0].Key != "math" {
		t.Fatalf("expected seeded menu starting with math, got %+v", menu)
	}

	session := service.Connect(ctx, "child-1")
	snap, err := service.Start(ctx, "child-1", "math")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if snap.TotalQuestions == 0 {
		t.Fatalf("expected questions from postgres, got %+v", snap)
	}

	// Answer everything correctly and advance through the whole run.
	for i := 0; i < snap.TotalQuestions; i++ {
		q, err := session.CurrentQuestion()
		if err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
		feedback, err := service.Answer(ctx, "child-1", q.CorrectIndex)
		if err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		if !feedback.Correct {
			t.Fatalf("expected question %d correct, got %+v", i, feedback)
		}
		if snap, err = service.Advance(ctx, "child-1"); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	if snap.Phase != domain.PhaseFinished || snap.Result == nil {
		t.Fatalf("expected finished run, got %+v", snap)
	}
	if snap.Result.Percentage != 100 || snap.Result.TrophyPoints != snap.TotalQuestions*10 {
		t.Fatalf("expected perfect score, got %+v", snap.Result)
	}

	// A fresh tracker reading the same Redis sees the persisted last score.
	reloaded := quiz.NewScoreTracker(infraredis.NewKV(redisClient))
	reloaded.Load(ctx)
	last, ok := reloaded.Last("math")
	if !ok || last.Trophies != snap.TotalQuestions*10 || last.Percentage != 100 {
		t.Fatalf("expected persisted math score, got ok=%v %+v", ok, last)
	}
}

func applyMigrations(t *testing.T, ctx context.Context, dsn string) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "edukids", "POSTGRES_PASSWORD": "edukidspass", "POSTGRES_DB": "edukidsdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://edukids:edukidspass@%s:%s/edukidsdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
