package mongodb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"contact-directory/config"
	"contact-directory/internal/entities"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)

	ops, err := repo.CreateTeam(ctx, entities.Team{Name: "Ops"})
	require.NoError(t, err)

	fetched, err := repo.GetTeam(ctx, ops.ID)
	require.NoError(t, err)
	require.Equal(t, entities.Team{ID: ops.ID, Name: "Ops"}, *fetched)

	dev, err := repo.CreateTeam(ctx, entities.Team{Name: "Dev"})
	require.NoError(t, err)

	ana, err := repo.CreateContact(ctx, entities.Contact{
		Name:     "Ana",
		Phone:    "+15551234567",
		Timezone: "America/New_York",
		TeamIDs:  []string{ops.ID, dev.ID},
	})
	require.NoError(t, err)

	_, err = repo.CreateContact(ctx, entities.Contact{Name: "Dup", Phone: "+15551234567", Timezone: "UTC"})
	require.ErrorIs(t, err, entities.ErrContactExists)

	resolved, err := repo.GetTeamsByIDs(ctx, []string{dev.ID, primitive.NewObjectID().Hex()})
	require.NoError(t, err)
	require.Equal(t, []entities.Team{*dev}, resolved)

	phone := "+15550000000"
	updated, err := repo.UpdateContact(ctx, ana.ID, entities.ContactUpdate{Phone: &phone})
	require.NoError(t, err)
	require.Equal(t, phone, updated.Phone)
	require.Equal(t, "Ana", updated.Name)
	require.Equal(t, "America/New_York", updated.Timezone)

	deleted, err := repo.DeleteTeam(ctx, ops.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	changed, err := repo.RemoveTeamFromContacts(ctx, ops.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), changed)

	after, err := repo.GetContactByPhone(ctx, phone)
	require.NoError(t, err)
	require.Equal(t, []string{dev.ID}, after.TeamIDs)

	deleted, err = repo.DeleteTeam(ctx, ops.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	contacts, err := repo.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)

	removed, err := repo.DeleteContact(ctx, ana.ID)
	require.NoError(t, err)
	require.True(t, removed)

	_, err = repo.GetContact(ctx, ana.ID)
	require.ErrorIs(t, err, entities.ErrContactNotFound)
}

func TestInvalidIdentifiers(t *testing.T) {
	repo := New(context.Background(), zap.NewNop().Sugar(), &config.Config{})
	ctx := context.Background()

	_, err := repo.GetContact(ctx, "not-an-object-id")
	require.ErrorIs(t, err, entities.ErrInvalidID)
	_, err = repo.DeleteContact(ctx, "123")
	require.ErrorIs(t, err, entities.ErrInvalidID)
	_, err = repo.RemoveTeamFromContacts(ctx, "")
	require.ErrorIs(t, err, entities.ErrInvalidID)
	_, err = repo.CreateContact(ctx, entities.Contact{Name: "x", Phone: "y", TeamIDs: []string{"bad"}})
	require.ErrorIs(t, err, entities.ErrInvalidID)
}

func startRepo(t *testing.T) *Mongo {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping mongo integration test in short mode")
	}

	ctx := context.Background()
	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	uri := fmt.Sprintf("mongodb://localhost:%s", resource.GetPort("27017/tcp"))
	require.NoError(t, pool.Retry(func() error {
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(ctx) }()
		return client.Ping(ctx, nil)
	}))

	cfg := &config.Config{
		Repository: config.RepositoryConfig{Backend: config.BackendMongo},
		Mongo: config.MongoConfig{
			URI:            uri,
			Database:       "contact_directory_test",
			ConnectTimeout: 10 * time.Second,
			QueryTimeout:   5 * time.Second,
		},
	}

	repo := New(ctx, zap.NewNop().Sugar(), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	return repo
}
