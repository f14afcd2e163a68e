//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lunchly/cmd/bootstrap"
	"lunchly/cmd/bootstrap/components"
	"lunchly/internal/infra/db"
	"lunchly/internal/pkg/config"
	"lunchly/internal/pkg/metrics"
	"lunchly/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const migrationFile = "migrations/001_initial_schema.sql"

type app struct {
	pool    *pgxpool.Pool
	router  *gin.Engine
	cfg     config.Config
	metrics *metrics.Metrics
}

// ------------------------------------------------------------
// テストスイート毎に専用DBとアプリを用意する
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, override func(*config.Config)) app {
	gin.SetMode(gin.TestMode)

	pg := startPostgres(t)
	dbConfig := createDatabase(t, pg)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, closePool, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)

	require.NoError(t, applyMigrations(ctx, pool), "データベースマイグレーションに失敗")

	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	if override != nil {
		override(&cfg)
	}

	a := buildE2EApp(t, pool, cfg)
	slog.Info("E2E環境の準備が完了しました",
		"database", dbConfig.DBName,
		"preload_strategy", cfg.Reservation.PreloadStrategy)
	return a
}

func createDatabase(t *testing.T, pg ContainerInfo) config.DBConfig {
	dbName := "lunchly_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, pg.adminDSN())
	require.NoError(t, err, "管理者接続に失敗")
	defer adminPool.Close()

	var createErr error
	for attempt := range 5 {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
			slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", createErr.Error())
		}
		if _, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName); createErr == nil {
			break
		}
	}
	require.NoError(t, createErr, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, pg.adminDSN())
		if err != nil {
			slog.Warn("クリーンアップ用の接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 5,
	}
}

// package dirs differ under `go test`, so the file is looked up from a few levels
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	var (
		sqlContent []byte
		readErr    error
	)
	for _, cand := range []string{
		migrationFile,
		filepath.Join("..", migrationFile),
		filepath.Join("..", "..", migrationFile),
		filepath.Join("..", "..", "..", migrationFile),
	} {
		if sqlContent, readErr = os.ReadFile(cand); readErr == nil {
			break
		}
	}
	if readErr != nil {
		return fmt.Errorf("failed to read migration file %s: %w", migrationFile, readErr)
	}

	if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", migrationFile, err)
	}
	return nil
}

// ------------------------------------------------------------
// 本番と同じfxモジュール構成でアプリを組み立てる（DBと設定のみ差し替え）
// ------------------------------------------------------------
func buildE2EApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) app {
	a := app{pool: pool}

	fxApp := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&a.router, &a.cfg, &a.metrics),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, fxApp.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := fxApp.Stop(stopCtx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})

	return a
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	DB      *pgxpool.Pool
	Config  config.Config
	Metrics *metrics.Metrics

	// ConfigOverride is applied to the test config before the app is built.
	ConfigOverride func(*config.Config)
}

func (s *SharedSuite) SetupSuite() {
	a := setupE2EEnvironment(s.T(), s.ConfigOverride)
	s.DB = a.pool
	s.Router = a.router
	s.Config = a.cfg
	s.Metrics = a.metrics
	s.Require().NotNil(s.Router, "Routerのセットアップに失敗")
}

func (s *SharedSuite) SetupTest() {
	s.Require().NoError(dbtest.ResetDB(s.DB), "Failed to reset database state")
}

func (s *SharedSuite) SetupSubTest() {
	s.Require().NoError(dbtest.ResetDB(s.DB), "Failed to reset database state")
}
