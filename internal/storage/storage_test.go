package storage

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Storage {
	t.Helper()

	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return s
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := openTestStore(t)

	prefs, err := s.LoadPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if prefs.PlayerColor != ColorWhite || prefs.SearchTime != 2*time.Second {
		t.Errorf("unexpected defaults: %+v", prefs)
	}

	prefs.PlayerColor = ColorBlack
	prefs.SearchTime = 5 * time.Second
	if err := s.SavePreferences(prefs); err != nil {
		t.Fatal(err)
	}

	loaded, err := s.LoadPreferences()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.PlayerColor != ColorBlack || loaded.SearchTime != 5*time.Second {
		t.Errorf("loaded preferences = %+v", loaded)
	}
	if loaded.LastPlayed.IsZero() {
		t.Error("LastPlayed not stamped on save")
	}
}

func TestRecordGameUpdatesStats(t *testing.T) {
	s := openTestStore(t)

	moves := []string{"b1a3", "b6a4", "a3b1", "a4b6"}

	id, err := s.RecordGame(moves, OutcomeWin, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordGame(moves, OutcomeDraw, time.Minute); err != nil {
		t.Fatal(err)
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesPlayed != 2 || stats.Wins != 1 || stats.Draws != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.WinRate() != 50 {
		t.Errorf("win rate = %v, want 50", stats.WinRate())
	}

	games, err := s.ListGames()
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 2 {
		t.Fatalf("archived %d games, want 2", len(games))
	}

	found := false
	for _, g := range games {
		if g.ID == id {
			found = true
			if len(g.Moves) != len(moves) || g.Moves[0] != "b1a3" {
				t.Errorf("archived moves = %v", g.Moves)
			}
		}
	}
	if !found {
		t.Error("recorded game missing from archive")
	}
}

func TestStreakTracking(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := s.RecordGame(nil, OutcomeWin, time.Second); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.RecordGame(nil, OutcomeLoss, time.Second); err != nil {
		t.Fatal(err)
	}

	stats, err := s.LoadStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.LongestStreak != 3 {
		t.Errorf("longest streak = %d, want 3", stats.LongestStreak)
	}
	if stats.CurrentStreak != 0 {
		t.Errorf("current streak = %d, want 0", stats.CurrentStreak)
	}
}
