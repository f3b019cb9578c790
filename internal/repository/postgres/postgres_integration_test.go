package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"contact-directory/config"
	"contact-directory/internal/entities"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	ops, err := repo.CreateTeam(ctx, entities.Team{Name: "Ops"})
	require.NoError(t, err)
	require.NotEmpty(t, ops.ID)

	fetched, err := repo.GetTeam(ctx, ops.ID)
	require.NoError(t, err)
	require.Equal(t, entities.Team{ID: ops.ID, Name: "Ops"}, *fetched)

	dev, err := repo.CreateTeam(ctx, entities.Team{Name: "Dev"})
	require.NoError(t, err)

	teams, err := repo.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	ana, err := repo.CreateContact(ctx, entities.Contact{
		Name:     "Ana",
		Phone:    "+15551234567",
		Timezone: "America/New_York",
		TeamIDs:  []string{ops.ID, dev.ID},
	})
	require.NoError(t, err)
	require.NotEmpty(t, ana.ID)

	_, err = repo.CreateContact(ctx, entities.Contact{Name: "Dup", Phone: "+15551234567", Timezone: "UTC"})
	require.ErrorIs(t, err, entities.ErrContactExists)

	byPhone, err := repo.GetContactByPhone(ctx, "+15551234567")
	require.NoError(t, err)
	require.Equal(t, ana.ID, byPhone.ID)
	require.ElementsMatch(t, []string{ops.ID, dev.ID}, byPhone.TeamIDs)

	resolved, err := repo.GetTeamsByIDs(ctx, []string{ops.ID, uuid.NewString()})
	require.NoError(t, err)
	require.Equal(t, []entities.Team{*ops}, resolved)

	newName := "Ana Maria"
	updated, err := repo.UpdateContact(ctx, ana.ID, entities.ContactUpdate{Name: &newName})
	require.NoError(t, err)
	require.Equal(t, newName, updated.Name)
	require.Equal(t, "+15551234567", updated.Phone)
	require.Equal(t, "America/New_York", updated.Timezone)

	deleted, err := repo.DeleteTeam(ctx, ops.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	changed, err := repo.RemoveTeamFromContacts(ctx, ops.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), changed)

	after, err := repo.GetContact(ctx, ana.ID)
	require.NoError(t, err)
	require.Equal(t, []string{dev.ID}, after.TeamIDs)

	deleted, err = repo.DeleteTeam(ctx, ops.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	changed, err = repo.RemoveTeamFromContacts(ctx, ops.ID)
	require.NoError(t, err)
	require.Zero(t, changed)

	_, err = repo.GetTeam(ctx, ops.ID)
	require.ErrorIs(t, err, entities.ErrTeamNotFound)

	removed, err := repo.DeleteContact(ctx, ana.ID)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = repo.DeleteContact(ctx, ana.ID)
	require.NoError(t, err)
	require.False(t, removed)

	_, err = repo.GetContact(ctx, ana.ID)
	require.ErrorIs(t, err, entities.ErrContactNotFound)
}

func TestUpdateContactPhoneConflictIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	a, err := repo.CreateContact(ctx, entities.Contact{Name: "A", Phone: "+100", Timezone: "UTC"})
	require.NoError(t, err)
	_, err = repo.CreateContact(ctx, entities.Contact{Name: "B", Phone: "+200", Timezone: "UTC"})
	require.NoError(t, err)

	taken := "+200"
	_, err = repo.UpdateContact(ctx, a.ID, entities.ContactUpdate{Phone: &taken})
	require.ErrorIs(t, err, entities.ErrContactExists)

	missing := "Ghost"
	_, err = repo.UpdateContact(ctx, uuid.NewString(), entities.ContactUpdate{Name: &missing})
	require.ErrorIs(t, err, entities.ErrContactNotFound)

	contacts, err := repo.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	require.Equal(t, "A", contacts[0].Name)
	require.Empty(t, contacts[0].TeamIDs)
}

func TestInvalidIdentifiers(t *testing.T) {
	repo := New(context.Background(), zap.NewNop().Sugar(), &config.Config{})
	ctx := context.Background()

	_, err := repo.GetContact(ctx, "not-a-uuid")
	require.ErrorIs(t, err, entities.ErrInvalidID)
	_, err = repo.GetTeam(ctx, "42")
	require.ErrorIs(t, err, entities.ErrInvalidID)
	_, err = repo.DeleteTeam(ctx, "")
	require.ErrorIs(t, err, entities.ErrInvalidID)
	_, err = repo.GetTeamsByIDs(ctx, []string{uuid.NewString(), "nope"})
	require.ErrorIs(t, err, entities.ErrInvalidID)
	_, err = repo.CreateContact(ctx, entities.Contact{Name: "x", Phone: "y", TeamIDs: []string{"bad"}})
	require.ErrorIs(t, err, entities.ErrInvalidID)
}

func startRepo(t *testing.T) *Postgres {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	return repo
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=contact_directory_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server:     config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:       config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Repository: config.RepositoryConfig{Backend: config.BackendPostgres},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "contact_directory_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
