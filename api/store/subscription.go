/* subscription.go
 * Contains the push subscription over the matches collection. Every change
 * anywhere in the collection re-delivers the full sorted set of matches;
 * consumers replace their state wholesale on each delivery.
 */

package store

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"matchday-bot/api/shared"
	"matchday-bot/internal/log"
)

// WatchMatches opens a change stream over the matches collection. onChange
// receives the full current snapshot once immediately and again after every
// insert, replace, update or delete. When the stream or a snapshot query
// fails, onChange receives an empty slice rather than going silent, so the
// consumer's last known state is visibly degraded instead of stale.
//
// The returned function tears the subscription down; calling it more than
// once is a no-op.
func (s *Store) WatchMatches(onChange func([]shared.MatchRecord)) (func(), error) {
	ctx, cancel := context.WithCancel(context.Background())

	stream, err := s.Matches.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		cancel()
		return nil, err
	}

	go func() {
		defer stream.Close(context.Background())

		// Initial snapshot before any change arrives
		s.deliverSnapshot(ctx, onChange)

		for stream.Next(ctx) {
			s.deliverSnapshot(ctx, onChange)
		}

		if err := stream.Err(); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("match change stream failed", zap.Error(err))
			onChange([]shared.MatchRecord{})
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(cancel)
	}
	return unsubscribe, nil
}

// deliverSnapshot pushes the current collection state to onChange. A failed
// fetch degrades to an empty delivery unless the subscription itself has
// been torn down.
func (s *Store) deliverSnapshot(ctx context.Context, onChange func([]shared.MatchRecord)) {
	matches, err := s.FetchMatches(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Error("failed to fetch match snapshot", zap.Error(err))
		onChange([]shared.MatchRecord{})
		return
	}
	onChange(matches)
}
