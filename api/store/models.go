/* models.go
 * This file contains the bson document model for the matches collection and
 * its conversions to and from the domain MatchRecord.
 */

package store

import (
	"time"

	"matchday-bot/api/shared"
)

// matchDoc is the stored shape of a match. The match id doubles as the
// document key. created_at and updated_at are store-assigned stamps and are
// not part of the domain record; created_at is written once on first insert
// and drives the subscription's delivery order.
type matchDoc struct {
	ID           string         `bson:"_id"`
	Stadium      shared.Stadium `bson:"stadium"`
	Team1Players []string       `bson:"team1_players"`
	Team2Players []string       `bson:"team2_players"`
	MatchTime    string         `bson:"match_time"`
	MatchDay     string         `bson:"match_day"`
	Timestamp    time.Time      `bson:"timestamp"`
	Score        *shared.Score  `bson:"score,omitempty"`
	CreatedAt    time.Time      `bson:"created_at,omitempty"`
	UpdatedAt    time.Time      `bson:"updated_at,omitempty"`
}

// toRecord converts a stored document back into the domain record.
func (d matchDoc) toRecord() shared.MatchRecord {
	return shared.MatchRecord{
		ID:           d.ID,
		Stadium:      d.Stadium,
		Team1Players: d.Team1Players,
		Team2Players: d.Team2Players,
		MatchTime:    d.MatchTime,
		MatchDay:     d.MatchDay,
		Timestamp:    d.Timestamp,
		Score:        d.Score,
	}
}

// newMatchDoc builds the stored shape from a domain record. The stamp
// fields are left zero; SaveMatch manages them through update operators so
// created_at survives edits.
func newMatchDoc(m shared.MatchRecord) matchDoc {
	return matchDoc{
		ID:           m.ID,
		Stadium:      m.Stadium,
		Team1Players: m.Team1Players,
		Team2Players: m.Team2Players,
		MatchTime:    m.MatchTime,
		MatchDay:     m.MatchDay,
		Timestamp:    m.Timestamp,
		Score:        m.Score,
	}
}
