package mongo

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/sm8ta/registration_microservice/internal/core/ports"
)

const UsersCollection = "users"

// Connection owns the client. The first Database call dials the server and
// creates the indexes; later calls reuse the established client.
type Connection struct {
	uri    string
	dbName string
	logger ports.LoggerPort

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

func NewConnection(uri, dbName string, logger ports.LoggerPort) *Connection {
	return &Connection{
		uri:    uri,
		dbName: dbName,
		logger: logger,
	}
}

func (c *Connection) Database(ctx context.Context) (*mongo.Database, error) {
	const op = "mongo.Connection.Database"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(c.uri))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	db := client.Database(c.dbName)
	if err := EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.client = client
	c.db = db

	c.logger.Info("Connected to MongoDB", map[string]interface{}{
		"database": c.dbName,
	})
	return db, nil
}

func (c *Connection) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}
	err := c.client.Disconnect(ctx)
	c.client = nil
	c.db = nil
	return err
}

// EnsureIndexes creates the unique constraints the user collection relies on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_1").SetUnique(true).SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "secretKey", Value: 1}},
			Options: options.Index().SetName("secretKey_1").SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}
