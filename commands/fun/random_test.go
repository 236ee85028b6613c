package fun

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSides(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{name: "no argument defaults to d6", args: nil, want: 6},
		{name: "explicit sides", args: []string{"20"}, want: 20},
		{name: "lower bound", args: []string{"1"}, want: 1},
		{name: "upper bound", args: []string{"100"}, want: 100},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "negative", args: []string{"-4"}, wantErr: true},
		{name: "too large", args: []string{"101"}, wantErr: true},
		{name: "not a number", args: []string{"twenty"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sides, err := parseSides(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, sides)
		})
	}
}

func TestSplitChoices(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "commas",
			raw:  "pizza, pasta, salad",
			want: []string{"pizza", "pasta", "salad"},
		},
		{
			name: "or separator",
			raw:  "tea or coffee",
			want: []string{"tea", "coffee"},
		},
		{
			name: "commas win over or",
			raw:  "this or that, the other",
			want: []string{"this or that", "the other"},
		},
		{
			name: "empty options dropped",
			raw:  "a,,b, ,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "single option",
			raw:  "only",
			want: []string{"only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitChoices(tt.raw))
		})
	}
}

func TestRollDieBounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := rollDie(6)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 6)
	}

	assert.Equal(t, 1, rollDie(1))
}

func TestFlipCoin(t *testing.T) {
	for i := 0; i < 100; i++ {
		r := flipCoin()
		require.Contains(t, []string{"Heads", "Tails"}, r)
	}
}

// Handlers run in separate goroutines per event, so the random draws must be
// safe for concurrent use. Run with -race.
func TestRandomConcurrent(t *testing.T) {
	choices := []string{"a", "b", "c"}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				if n := rollDie(6); n < 1 || n > 6 {
					t.Errorf("rollDie(6) = %v, out of range", n)
				}
				flipCoin()
				pick(choices)
			}
		}()
	}
	wg.Wait()
}

func TestEightBallAnswers(t *testing.T) {
	assert.Len(t, eightBallAnswers, 20)

	for _, a := range eightBallAnswers {
		assert.NotEmpty(t, a)
	}
}
