package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/256dpi/lungo"
	"github.com/VitaminP8/bloccit/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection     = "users"
	topicsCollection    = "topics"
	postsCollection     = "posts"
	votesCollection     = "votes"
	commentsCollection  = "comments"
	favoritesCollection = "favorites"
)

const memoryScheme = "memory://"

// Database объединяет клиента lungo и выбранную базу.
// Для memory:// дополнительно хранится движок, который нужно закрыть.
type Database struct {
	client lungo.IClient
	engine *lungo.Engine
	db     lungo.IDatabase
}

// Connect подключается к MongoDB по uri. Адрес вида memory://<name>
// открывает встроенный движок lungo в памяти.
func Connect(ctx context.Context, uri, name string) (*Database, error) {
	if strings.HasPrefix(uri, memoryScheme) {
		if name == "" {
			name = strings.TrimPrefix(uri, memoryScheme)
		}
		return OpenMemory(ctx, name)
	}

	client, err := lungo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.Println("Successfully connected to mongo.")
	return &Database{
		client: client,
		db:     client.Database(name),
	}, nil
}

// OpenMemory открывает базу в памяти (используется в тестах и для memory://)
func OpenMemory(ctx context.Context, name string) (*Database, error) {
	client, engine, err := lungo.Open(ctx, lungo.Options{
		Store: lungo.NewMemoryStore(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open memory engine: %w", err)
	}

	return &Database{
		client: client,
		engine: engine,
		db:     client.Database(name),
	}, nil
}

func (d *Database) C(name string) lungo.ICollection {
	return d.db.Collection(name)
}

func (d *Database) Close(ctx context.Context) error {
	err := d.client.Disconnect(ctx)
	if d.engine != nil {
		d.engine.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}

	log.Println("Mongo connection closed.")
	return nil
}

// parseID переводит hex-строку в ObjectID; невалидный ID означает, что записи нет
func parseID(kind, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s %q: %w", kind, id, storage.ErrNotFound)
	}
	return oid, nil
}

// notFound оборачивает mongo.ErrNoDocuments в storage.ErrNotFound
func notFound(kind, id string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return fmt.Errorf("could not get %s %s: %w", kind, id, err)
}

// exists проверяет, есть ли в коллекции документ с указанным _id
func (d *Database) exists(ctx context.Context, collection, kind, id string) (primitive.ObjectID, error) {
	oid, err := parseID(kind, id)
	if err != nil {
		return oid, err
	}

	n, err := d.C(collection).CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return oid, fmt.Errorf("could not check %s %s: %w", kind, id, err)
	}
	if n == 0 {
		return oid, fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}

	return oid, nil
}
