/* store.go
 * Contains the Store struct and NewStore function. Match document
 * operations live in matches.go and the change-stream subscription in
 * subscription.go.
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// matchesCollection is the single collection this application owns.
const matchesCollection = "matches"

type Store struct {
	Client   *mongo.Client
	Database *mongo.Database
	Matches  *mongo.Collection
}

// NewStore initialises the db connection and binds the matches collection.
// Preconditions: Receives strings containing dbName and mongoURI
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	return &Store{
		Client:   client,
		Database: db,
		Matches:  db.Collection(matchesCollection),
	}, nil
}

// Disconnect closes the underlying client connection.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
