package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	gamePrefix     = "game:"
)

// PlayerColor represents which color the human plays.
type PlayerColor int

const (
	ColorWhite PlayerColor = iota
	ColorBlack
)

// Outcome is the result of a finished game from the human's perspective.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
	OutcomeDraw
)

// Preferences stores user settings.
type Preferences struct {
	PlayerColor PlayerColor   `json:"player_color"`
	SearchTime  time.Duration `json:"search_time"`
	LastPlayed  time.Time     `json:"last_played"`
}

// DefaultPreferences returns the default user settings.
func DefaultPreferences() *Preferences {
	return &Preferences{
		PlayerColor: ColorWhite,
		SearchTime:  2 * time.Second,
	}
}

// Stats stores lifetime game statistics.
type Stats struct {
	GamesPlayed   int           `json:"games_played"`
	Wins          int           `json:"wins"`
	Losses        int           `json:"losses"`
	Draws         int           `json:"draws"`
	TotalPlayTime time.Duration `json:"total_play_time"`
	CurrentStreak int           `json:"current_streak"`
	LongestStreak int           `json:"longest_streak"`
}

// WinRate returns the win rate as a percentage (0-100).
func (s *Stats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// GameRecord is one archived game.
type GameRecord struct {
	ID       uuid.UUID     `json:"id"`
	Moves    []string      `json:"moves"`
	Outcome  Outcome       `json:"outcome"`
	Duration time.Duration `json:"duration"`
	Finished time.Time     `json:"finished"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// New opens the store in the platform data directory.
func New() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens the store at an explicit directory.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// LoadStats loads game statistics, returning empty stats if not found.
func (s *Storage) LoadStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // Use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

func (s *Storage) saveStats(stats *Stats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// RecordGame archives a finished game under a fresh id and updates the
// statistics. It returns the id of the stored record.
func (s *Storage) RecordGame(moves []string, outcome Outcome, duration time.Duration) (uuid.UUID, error) {
	record := GameRecord{
		ID:       uuid.New(),
		Moves:    moves,
		Outcome:  outcome,
		Duration: duration,
		Finished: time.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return uuid.Nil, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gamePrefix+record.ID.String()), data)
	})
	if err != nil {
		return uuid.Nil, err
	}

	stats, err := s.LoadStats()
	if err != nil {
		return record.ID, err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += duration

	switch outcome {
	case OutcomeWin:
		stats.Wins++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestStreak {
			stats.LongestStreak = stats.CurrentStreak
		}
	case OutcomeLoss:
		stats.Losses++
		stats.CurrentStreak = 0
	case OutcomeDraw:
		stats.Draws++
		stats.CurrentStreak = 0
	}

	return record.ID, s.saveStats(stats)
}

// ListGames returns all archived games.
func (s *Storage) ListGames() ([]GameRecord, error) {
	var games []GameRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gamePrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var record GameRecord
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				games = append(games, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return games, err
}
