package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexUnmarshal_AllStrings(t *testing.T) {
	input := `[{"date": "20230716", "tour": "ATP", "tournament": "Wimbledon", "level": "G", "surface": "Grass", "best_of": "5", "player_a": "Carlos Alcaraz", "player_b": "Novak Djokovic", "round": "F", "y": "1"}]`

	var matches []Match
	if err := json.Unmarshal([]byte(input), &matches); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}

	m := matches[0]
	if !m.Date.Equal(time.Date(2023, 7, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Date = %v, want 2023-07-16", m.Date)
	}
	if m.BestOf != 5 {
		t.Errorf("BestOf = %d, want 5", m.BestOf)
	}
	if m.Y != 1 {
		t.Errorf("Y = %d, want 1", m.Y)
	}
	if m.PlayerA != "Carlos Alcaraz" {
		t.Errorf("PlayerA = %q, want Carlos Alcaraz", m.PlayerA)
	}
	if m.Round != "F" {
		t.Errorf("Round = %q, want F", m.Round)
	}
}

func TestFlexUnmarshal_NativeTypes(t *testing.T) {
	input := `{"date": "2024-06-09T00:00:00Z", "surface": "Clay", "best_of": 5, "player_a": "Carlos Alcaraz", "player_b": "Alexander Zverev", "y": 1}`

	var m Match
	if err := json.Unmarshal([]byte(input), &m); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if m.BestOf != 5 || m.Surface != "Clay" || m.Date.Year() != 2024 {
		t.Errorf("unexpected match %+v", m)
	}
}

func TestFlexUnmarshal_NumericDate(t *testing.T) {
	var m Match
	if err := json.Unmarshal([]byte(`{"date": 20220605, "player_a": "A", "player_b": "B", "y": 1}`), &m); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if m.Year() != 2022 || m.Date.Month() != time.June {
		t.Errorf("Date = %v, want 2022-06-05", m.Date)
	}
}

func TestFlexUnmarshal_BadDate(t *testing.T) {
	var m Match
	if err := json.Unmarshal([]byte(`{"date": "next tuesday", "player_a": "A", "player_b": "B"}`), &m); err == nil {
		t.Error("expected error for unparseable date")
	}
}
