package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/store"
)

func TestRecord(t *testing.T) {
	var a AggregateStats
	double := problemgen.Settings{Difficulty: problemgen.DifficultyDouble, Operation: problemgen.OpSubtraction}
	single := problemgen.Settings{Difficulty: problemgen.DifficultySingle, Operation: problemgen.OpAddition}

	a.Record(double, true, 10, 23)
	a.Record(single, false, 60, 0)

	assert.Equal(t, 2, a.TotalGamesPlayed)
	assert.Equal(t, 1, a.CorrectAnswers)
	assert.InDelta(t, 70.0, a.TotalTimePlayed, 1e-9)
	assert.Equal(t, 23, a.TotalCoins)
	assert.Equal(t, DifficultyCounts{Single: 1, Double: 1}, a.GamesPerDifficulty)
	assert.Equal(t, OperationCounts{Addition: 1, Subtraction: 1}, a.GamesPerOperation)
	assert.Equal(t, 1, a.GamesPerDifficulty.Get(problemgen.DifficultyDouble))
	assert.Equal(t, 0, a.GamesPerOperation.Get(problemgen.OpMultiplication))
}

func TestAccuracyAndAverage(t *testing.T) {
	var empty AggregateStats
	assert.Equal(t, 0, empty.Accuracy())
	assert.Equal(t, 0, empty.AverageTime())

	a := AggregateStats{TotalGamesPlayed: 3, CorrectAnswers: 2, TotalTimePlayed: 20}
	assert.Equal(t, 67, a.Accuracy())
	assert.Equal(t, 7, a.AverageTime())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want AggregateStats
	}{
		{"empty", ``, AggregateStats{}},
		{"garbage", `{not json`, AggregateStats{}},
		{"array", `[1,2,3]`, AggregateStats{}},
		{
			"complete",
			`{"totalGamesPlayed":4,"correctAnswers":3,"totalTimePlayed":41.5,"totalCoins":60,
			  "gamesPerDifficulty":{"single":2,"double":1,"triple":1},
			  "gamesPerOperation":{"addition":1,"subtraction":2,"multiplication":1}}`,
			AggregateStats{
				TotalGamesPlayed: 4, CorrectAnswers: 3, TotalTimePlayed: 41.5, TotalCoins: 60,
				GamesPerDifficulty: DifficultyCounts{Single: 2, Double: 1, Triple: 1},
				GamesPerOperation:  OperationCounts{Addition: 1, Subtraction: 2, Multiplication: 1},
			},
		},
		{
			"partial corruption keeps siblings",
			`{"totalGamesPlayed":"lots","correctAnswers":3,"totalCoins":-5,
			  "gamesPerDifficulty":{"single":2,"double":null},
			  "gamesPerOperation":"broken"}`,
			AggregateStats{
				CorrectAnswers:     3,
				GamesPerDifficulty: DifficultyCounts{Single: 2},
			},
		},
		{
			"oversized counters read as zero",
			`{"totalGamesPlayed":100000000000000000000,"correctAnswers":3,"totalCoins":1e20,
			  "gamesPerDifficulty":{"single":2147483648}}`,
			AggregateStats{CorrectAnswers: 3},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Decode([]byte(tc.raw)))
		})
	}
}

func TestEncode_Layout(t *testing.T) {
	raw, err := Encode(AggregateStats{TotalGamesPlayed: 1, TotalTimePlayed: 2.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"totalGamesPlayed":1,"correctAnswers":0,"totalTimePlayed":2.5,"totalCoins":0,
		"gamesPerDifficulty":{"single":0,"double":0,"triple":0},
		"gamesPerOperation":{"addition":0,"subtraction":0,"multiplication":0}
	}`, string(raw))
}

func TestRepo_LoadSaveReset(t *testing.T) {
	kv := store.NewMemoryKV()
	repo := NewRepo(kv)
	ctx := context.Background()

	a, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, AggregateStats{}, a)

	a.TotalGamesPlayed = 5
	a.GamesPerOperation.Multiplication = 5
	require.NoError(t, repo.Save(ctx, a))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	raw, ok, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"totalGamesPlayed":5`)

	require.NoError(t, repo.Reset(ctx))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, AggregateStats{}, got)
}

func TestRepo_SaveError(t *testing.T) {
	kv := store.NewMemoryKV()
	kv.PutErr = errors.New("quota exceeded")
	err := NewRepo(kv).Save(context.Background(), AggregateStats{})
	assert.ErrorIs(t, err, kv.PutErr)
}

func TestValidateImport(t *testing.T) {
	valid := `{"totalGamesPlayed":2,"correctAnswers":1,"totalTimePlayed":12.5,"totalCoins":23,
		"gamesPerDifficulty":{"single":1,"double":1,"triple":0},
		"gamesPerOperation":{"addition":2,"subtraction":0,"multiplication":0}}`

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", valid, false},
		{"not json", `nope`, true},
		{"missing field", `{"totalGamesPlayed":2}`, true},
		{"negative counter", `{"totalGamesPlayed":-1,"correctAnswers":0,"totalTimePlayed":0,"totalCoins":0,
			"gamesPerDifficulty":{"single":0,"double":0,"triple":0},
			"gamesPerOperation":{"addition":0,"subtraction":0,"multiplication":0}}`, true},
		{"fractional counter", `{"totalGamesPlayed":1.5,"correctAnswers":0,"totalTimePlayed":0,"totalCoins":0,
			"gamesPerDifficulty":{"single":0,"double":0,"triple":0},
			"gamesPerOperation":{"addition":0,"subtraction":0,"multiplication":0}}`, true},
		{"counter out of range", `{"totalGamesPlayed":100000000000000000000,"correctAnswers":0,"totalTimePlayed":0,"totalCoins":0,
			"gamesPerDifficulty":{"single":0,"double":0,"triple":0},
			"gamesPerOperation":{"addition":0,"subtraction":0,"multiplication":0}}`, true},
		{"more correct than played", `{"totalGamesPlayed":1,"correctAnswers":2,"totalTimePlayed":0,"totalCoins":0,
			"gamesPerDifficulty":{"single":0,"double":0,"triple":0},
			"gamesPerOperation":{"addition":0,"subtraction":0,"multiplication":0}}`, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateImport([]byte(tc.raw))
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepo_Import(t *testing.T) {
	repo := NewRepo(store.NewMemoryKV())
	ctx := context.Background()

	_, err := repo.Import(ctx, []byte(`{"totalGamesPlayed":2}`))
	require.Error(t, err)
	a, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, a.TotalGamesPlayed, "rejected import must not touch the slot")

	_, err = repo.Import(ctx, []byte(`{"totalGamesPlayed":3,"correctAnswers":3,"totalTimePlayed":9,"totalCoins":45,
		"gamesPerDifficulty":{"single":3,"double":0,"triple":0},
		"gamesPerOperation":{"addition":3,"subtraction":0,"multiplication":0}}`))
	require.NoError(t, err)

	exported, err := repo.Export(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(exported), `"totalCoins":45`)
}
