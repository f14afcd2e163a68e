//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (c ContainerInfo) adminDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, c.Host, c.Port.Port())
}

// ------------------------------------------------------------
// PostgreSQLコンテナを一度だけ起動し、接続先を返す
// ------------------------------------------------------------
func startPostgres(t *testing.T) ContainerInfo {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m", // データはRAM上に置く
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=100",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return ContainerInfo{Host: host, Port: port}.adminDSN()
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "lunchly-e2e"},
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var err error
		postgresTestContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")
	})
	require.NotNil(t, postgresTestContainer, "PostgreSQLコンテナが起動していません")

	ctx := context.Background()
	port, err := postgresTestContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err, "PostgreSQLのポート取得に失敗")
	host, err := postgresTestContainer.Host(ctx)
	require.NoError(t, err, "PostgreSQLのホスト取得に失敗")

	slog.Debug("PostgreSQLコンテナを使用します", "host", host, "port", port.Port())
	return ContainerInfo{Host: host, Port: port}
}
