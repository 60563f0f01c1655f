/*
Package mongostore provides a modelstore.Store backed by a MongoDB
collection.

Each model is a document with a unique name field and the encoded
blob, replaced with an upsert on every save.
*/
package mongostore

import (
	"context"
	"fmt"

	"github.com/sylvaml/sylva/modelstore"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

type modelDoc struct {
	Name  string `bson:"name"`
	Model []byte `bson:"model"`
}

/*
Open connects to the MongoDB deployment at the given URI and returns a
modelstore.Store over the given database and collection. Closing the
store disconnects the client.
*/
func Open(ctx context.Context, uri, database, collection string) (modelstore.Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %v", err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %v", err)
	}
	return &mongoStore{client, client.Database(database).Collection(collection)}, nil
}

/*
New returns a modelstore.Store over an already connected collection.
Closing the store is a no-op in this case, the caller owns the client.
*/
func New(collection *mongo.Collection) modelstore.Store {
	return &mongoStore{nil, collection}
}

func (ms *mongoStore) Save(ctx context.Context, name string, model []byte) error {
	upsert := true
	doc := modelDoc{Name: name, Model: model}
	_, err := ms.collection.ReplaceOne(ctx, bson.D{{Key: "name", Value: name}}, doc, &options.ReplaceOptions{Upsert: &upsert})
	if err != nil {
		return fmt.Errorf("storing model %q in mongodb: %v", name, err)
	}
	return nil
}

func (ms *mongoStore) Load(ctx context.Context, name string) ([]byte, error) {
	result := ms.collection.FindOne(ctx, bson.D{{Key: "name", Value: name}})
	if err := result.Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no model stored under %q", name)
		}
		return nil, fmt.Errorf("retrieving model %q from mongodb: %v", name, err)
	}
	var doc modelDoc
	if err := result.Decode(&doc); err != nil {
		return nil, fmt.Errorf("retrieving model %q: decoding document: %v", name, err)
	}
	return doc.Model, nil
}

func (ms *mongoStore) Delete(ctx context.Context, name string) error {
	_, err := ms.collection.DeleteOne(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return fmt.Errorf("deleting model %q from mongodb: %v", name, err)
	}
	return nil
}

func (ms *mongoStore) Close(ctx context.Context) error {
	if ms.client == nil {
		return nil
	}
	return ms.client.Disconnect(ctx)
}
