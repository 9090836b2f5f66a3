package game

import "testing"

func TestStatsManagerRecord(t *testing.T) {
	sm := NewStatsManager(NewStorage(nil))

	sm.RecordRescue(1)
	sm.RecordRescue(2)
	sm.RecordRescue(3)
	if err := sm.RecordOutcome(OutcomeLost, 1); err != nil {
		t.Fatal(err)
	}
	if err := sm.RecordOutcome(OutcomePlaying, 9); err != nil {
		t.Fatal(err)
	}

	got := sm.Stats()
	want := PlayerStats{GamesPlayed: 1, Losses: 1, BestTrain: 3, TotalCats: 3}
	if got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
}

func TestStatsManagerPersists(t *testing.T) {
	storage := newTestStorage(t)

	sm := NewStatsManager(storage)
	for i := 1; i <= 5; i++ {
		sm.RecordRescue(i)
	}
	if err := sm.RecordOutcome(OutcomeWon, 5); err != nil {
		t.Fatalf("RecordOutcome failed: %v", err)
	}

	reloaded := NewStatsManager(storage)
	got := reloaded.Stats()
	want := PlayerStats{GamesPlayed: 1, Wins: 1, BestTrain: 5, TotalCats: 5}
	if got != want {
		t.Errorf("reloaded stats = %+v, want %+v", got, want)
	}
}
