/* matches.go
 * Contains the methods for interacting with the matches collection.
 */

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"matchday-bot/api/shared"
	"matchday-bot/internal/log"
)

// SaveMatch upserts a match document by its id. Every domain field is
// overwritten (an edit is a full replace, including clearing the score when
// the incoming record has none), updated_at is stamped on every write and
// created_at only on the first insert so the original creation stamp
// survives edits.
func (s *Store) SaveMatch(ctx context.Context, match shared.MatchRecord) error {
	if match.ID == "" {
		return fmt.Errorf("match id cannot be empty")
	}
	doc := newMatchDoc(match)

	set := bson.M{
		"stadium":       doc.Stadium,
		"team1_players": doc.Team1Players,
		"team2_players": doc.Team2Players,
		"match_time":    doc.MatchTime,
		"match_day":     doc.MatchDay,
		"timestamp":     doc.Timestamp,
	}
	unset := bson.M{}
	if doc.Score != nil {
		set["score"] = doc.Score
	} else {
		unset["score"] = ""
	}

	update := bson.M{
		"$set":         set,
		"$currentDate": bson.M{"updated_at": true},
		"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	_, err := s.Matches.UpdateByID(ctx, doc.ID, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save match %s: %w", doc.ID, err)
	}
	log.Debug("match saved", zap.String("id", doc.ID))
	return nil
}

// DeleteMatch removes the match document with the given id. Deleting an id
// that is already gone is not an error.
func (s *Store) DeleteMatch(ctx context.Context, id string) error {
	_, err := s.Matches.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete match %s: %w", id, err)
	}
	log.Debug("match deleted", zap.String("id", id))
	return nil
}

// UpdateMatchScore writes only the score field and the updated_at stamp.
// This is the one write that must not replace the whole document; a
// concurrent edit to any other field is left untouched.
func (s *Store) UpdateMatchScore(ctx context.Context, id string, score shared.Score) error {
	update := bson.M{
		"$set":         bson.M{"score": score},
		"$currentDate": bson.M{"updated_at": true},
	}
	res, err := s.Matches.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to update score for match %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("no match found with id %s", id)
	}
	log.Debug("match score updated", zap.String("id", id))
	return nil
}

// FetchMatches returns every match in the collection ordered by creation
// stamp descending. Documents without a created_at stamp sort as oldest.
func (s *Store) FetchMatches(ctx context.Context) ([]shared.MatchRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.Matches.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching matches from db: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []matchDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding matches: %w", err)
	}

	matches := make([]shared.MatchRecord, 0, len(docs))
	for _, doc := range docs {
		matches = append(matches, doc.toRecord())
	}
	return matches, nil
}
