//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"travel-checkout/cmd/bootstrap"
	"travel-checkout/cmd/bootstrap/components"
	"travel-checkout/internal/infra/db"
	"travel-checkout/internal/infra/events"
	"travel-checkout/internal/pkg/config"
	"travel-checkout/tests/common/backendtest"
	"travel-checkout/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

var (
	postgresOnce sync.Once
	postgresAddr string
	postgresErr  error
)

// postgres starts one container per test process and returns its host:port.
func postgres(t *testing.T) string {
	postgresOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return adminDSN(host + ":" + port.Port())
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "travel-checkout-e2e"},
			},
			Started: true,
		})
		if err != nil {
			postgresErr = err
			return
		}

		host, err := container.Host(ctx)
		if err != nil {
			postgresErr = err
			return
		}
		port, err := container.MappedPort(ctx, pgPort)
		if err != nil {
			postgresErr = err
			return
		}
		postgresAddr = host + ":" + port.Port()
	})
	require.NoError(t, postgresErr, "postgres container")
	return postgresAddr
}

func adminDSN(addr string) string {
	return fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, addr)
}

// newDatabase creates a fresh database with the schema applied and drops it on cleanup.
func newDatabase(t *testing.T, addr string) (*pgxpool.Pool, config.DBConfig) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	name := "checkout_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	admin, err := pgxpool.New(ctx, adminDSN(addr))
	require.NoError(t, err)
	defer admin.Close()
	_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err, "create database")

	host, port, _ := strings.Cut(addr, ":")
	dbConfig := config.DBConfig{
		Host:     host,
		Port:     port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 4,
	}
	pool, closePool, err := db.Connect(dbConfig)
	require.NoError(t, err, "connect")

	schema, err := os.ReadFile(migrationPath())
	require.NoError(t, err, "read schema")
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err, "apply schema")

	t.Cleanup(func() {
		closePool()
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		if admin, err := pgxpool.New(dropCtx, adminDSN(addr)); err == nil {
			_, _ = admin.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name)
			admin.Close()
		}
	})
	return pool, dbConfig
}

func migrationPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations", "001_initial_schema.sql")
}

// newApp boots the HTTP stack against the test database and the fake backend.
// Redis and AMQP stay off, so the in-memory guard and the logging notifier run.
func newApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(
			func() redis.UniversalClient { return nil },
			func() *events.Publisher { return nil },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.ClientModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start app")
	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	})
	return router
}

// SharedSuite gives each e2e package a database, a fake backend and a router.
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	DB      *pgxpool.Pool
	Config  config.Config
	Backend *backendtest.Backend
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pool, dbConfig := newDatabase(t, postgres(t))
	backend := backendtest.NewBackend(t)

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Services.BookingURL = backend.URL()
	cfg.Services.PaymentURL = backend.URL()
	cfg.Services.ItineraryURL = backend.URL()

	s.DB = pool
	s.Config = cfg
	s.Backend = backend
	s.Router = newApp(t, pool, cfg)
}

func (s *SharedSuite) SetupSubTest() {
	s.Require().NoError(dbtest.ResetDB(s.DB), "reset database")
	s.Backend.Reset()
}
