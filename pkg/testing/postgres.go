package testing

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

const TestDBName = "fittrack_test"

type PostgresInstance struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func (p PostgresInstance) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.DBName,
	)
}

// GetPostgres returns the postgres at POSTGRES_HOST when set (CI), otherwise
// it starts a throwaway container that is purged when the test finishes.
func GetPostgres(t *testing.T) PostgresInstance {
	t.Helper()

	if host := os.Getenv("POSTGRES_HOST"); host != "" {
		port := os.Getenv("POSTGRES_PORT")
		if port == "" {
			port = "5432"
		}
		instance := PostgresInstance{
			Host:     host,
			Port:     port,
			User:     "postgres",
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   TestDBName,
		}
		waitForPostgres(t, nil, instance)
		return instance
	}

	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not create dockertest pool")
	require.NoError(t, dockerPool.Client.Ping(), "could not ping docker")

	pgResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + TestDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	require.NoError(t, err, "dockerpool run postgres")
	t.Cleanup(func() {
		if err := dockerPool.Purge(pgResource); err != nil {
			t.Logf("postgres teardown: %s", err)
		}
	})

	instance := PostgresInstance{
		Host:   "localhost",
		Port:   pgResource.GetPort("5432/tcp"),
		User:   "postgres",
		DBName: TestDBName,
	}
	waitForPostgres(t, dockerPool, instance)
	return instance
}

func waitForPostgres(t *testing.T, dockerPool *dockertest.Pool, instance PostgresInstance) {
	t.Helper()

	ping := func() error {
		db, err := sql.Open("postgres", instance.DSN())
		if err != nil {
			return err
		}
		defer db.Close()
		return db.Ping()
	}

	if dockerPool == nil {
		require.NoError(t, ping(), "ping postgres")
		return
	}
	require.NoError(t, dockerPool.Retry(ping), "connect to postgres")
}
