// Package mongodb implements the repository against MongoDB.
package mongodb

import (
	"context"
	"fmt"

	"contact-directory/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	contactsCollection = "contacts"
	teamsCollection    = "teams"
)

// Mongo wraps a mongo client and the directory collections.
type Mongo struct {
	baseCtx  context.Context
	log      *zap.SugaredLogger
	cfg      config.MongoConfig
	client   *mongo.Client
	contacts *mongo.Collection
	teams    *mongo.Collection
}

// New creates a Mongo repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Mongo {
	return &Mongo{
		baseCtx: ctx,
		log:     log.Named("repo.mongo"),
		cfg:     cfg.Mongo,
	}
}

// OnStart connects to the server and ensures indexes.
func (m *Mongo) OnStart(_ context.Context) error {
	opts := options.Client().
		ApplyURI(m.cfg.URI).
		SetConnectTimeout(m.cfg.ConnectTimeout)
	if m.cfg.QueryTimeout > 0 {
		opts.SetTimeout(m.cfg.QueryTimeout)
	}

	client, err := mongo.Connect(m.baseCtx, opts)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(m.baseCtx, m.cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("ping: %w", err)
	}

	db := client.Database(m.cfg.Database)
	m.client = client
	m.contacts = db.Collection(contactsCollection)
	m.teams = db.Collection(teamsCollection)

	if err := m.ensureIndexes(connectCtx); err != nil {
		return err
	}

	m.log.Infow("mongo ready", "database", m.cfg.Database)
	return nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	_, err := m.contacts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("contacts_phone_key"),
		},
		{
			Keys:    bson.D{{Key: "team_ids", Value: 1}},
			Options: options.Index().SetName("contacts_team_ids_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// OnStop disconnects the client.
func (m *Mongo) OnStop(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	return nil
}
