package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var bigThree = []string{"Roger Federer", "Rafael Nadal", "Novak Djokovic"}

func TestSuggest(t *testing.T) {
	names := []string{"Andy Murray", "Andrey Rublev", "Andre Agassi", "Andy Roddick", "Stan Wawrinka"}

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"case insensitive", "MURR", []string{"Andy Murray"}},
		{"capped at three in source order", "and", []string{"Andy Murray", "Andrey Rublev", "Andre Agassi"}},
		{"trimmed", "  rubl ", []string{"Andrey Rublev"}},
		{"no match", "zzz", nil},
		{"inner substring", "y r", []string{"Andrey Rublev", "Andy Roddick"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(names, tt.input))
		})
	}
}

func TestSuggest_IsFilteredSubsequence(t *testing.T) {
	inputs := []string{"a", "er", "o", "nov", "x", "R"}
	for _, in := range inputs {
		got := Suggest(bigThree, in)
		var want []string
		for _, n := range bigThree {
			if strings.Contains(strings.ToLower(n), strings.ToLower(in)) && len(want) < MaxSuggestions {
				want = append(want, n)
			}
		}
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestAutocomplete_NaScenario(t *testing.T) {
	store := NewNameStore(zap.NewNop())
	store.Load(context.Background(), namesOf(bigThree...))

	input := newFakeElement()
	panel := &fakePanel{}
	ac := NewAutocomplete(input, panel, store)

	input.SetValue("na")
	ac.HandleInput()

	require.True(t, panel.visible)
	assert.Equal(t, []string{"Rafael Nadal"}, panel.items)

	panel.pick("Rafael Nadal")
	assert.Equal(t, "Rafael Nadal", input.Value())
	assert.False(t, panel.visible)
}

func TestAutocomplete_HidesOnEmptyOrNoMatch(t *testing.T) {
	store := NewNameStore(zap.NewNop())
	store.Load(context.Background(), namesOf(bigThree...))

	input := newFakeElement()
	panel := &fakePanel{}
	ac := NewAutocomplete(input, panel, store)

	input.SetValue("ro")
	ac.HandleInput()
	require.True(t, panel.visible)

	input.SetValue("")
	ac.HandleInput()
	assert.False(t, panel.visible, "empty input should hide the panel")

	input.SetValue("ro")
	ac.HandleInput()
	input.SetValue("qqq")
	ac.HandleInput()
	assert.False(t, panel.visible, "no match should hide the panel")
}

func TestAutocomplete_DocumentClick(t *testing.T) {
	store := NewNameStore(zap.NewNop())
	store.Load(context.Background(), namesOf(bigThree...))

	input := newFakeElement()
	panel := &fakePanel{}
	ac := NewAutocomplete(input, panel, store)

	input.SetValue("r")
	ac.HandleInput()

	ac.HandleDocumentClick(input)
	assert.True(t, panel.visible, "click on the input keeps the panel")
	ac.HandleDocumentClick(panel)
	assert.True(t, panel.visible, "click on the panel keeps it")
	ac.HandleDocumentClick("elsewhere")
	assert.False(t, panel.visible, "click outside hides it")
}

func TestAutocomplete_IndependentInstances(t *testing.T) {
	store := NewNameStore(zap.NewNop())
	store.Load(context.Background(), namesOf(bigThree...))

	in1, in2 := newFakeElement(), newFakeElement()
	p1, p2 := &fakePanel{}, &fakePanel{}
	ac1 := NewAutocomplete(in1, p1, store)
	ac2 := NewAutocomplete(in2, p2, store)

	in1.SetValue("fed")
	ac1.HandleInput()
	in2.SetValue("djo")
	ac2.HandleInput()

	assert.Equal(t, []string{"Roger Federer"}, p1.items)
	assert.Equal(t, []string{"Novak Djokovic"}, p2.items)

	ac1.HandleDocumentClick(in2)
	assert.False(t, p1.visible)
	assert.True(t, p2.visible)
}

func TestNameStore_Load(t *testing.T) {
	t.Run("success replaces list", func(t *testing.T) {
		store := NewNameStore(zap.NewNop())
		src := namesOf(bigThree...)
		store.Load(context.Background(), src)
		assert.Equal(t, bigThree, store.Names())
		assert.Equal(t, 1, src.calls)
	})

	t.Run("error leaves store empty", func(t *testing.T) {
		store := NewNameStore(zap.NewNop())
		store.Load(context.Background(), namesOf(bigThree...))
		src := &MockNames{PlayerNamesFunc: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("502 bad gateway")
		}}
		store.Load(context.Background(), src)
		assert.Equal(t, 0, store.Len())
		assert.Equal(t, 1, src.calls, "no retry")
	})

	t.Run("empty result treated as failure", func(t *testing.T) {
		store := NewNameStore(zap.NewNop())
		store.Load(context.Background(), namesOf())
		assert.Empty(t, store.Names())
	})
}
