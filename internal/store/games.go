package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// GameRecord is one scored Number Rush session.
type GameRecord struct {
	ID             int64
	SessionID      string
	StartedAt      time.Time
	EndedAt        time.Time
	Difficulty     string
	Operation      string
	Operands       []int
	CorrectAnswer  int
	SelectedAnswer *int // nil when the session timed out
	Correct        bool
	Score          int
	Reward         int
	TimeTaken      float64 // seconds
}

// GameRepo is an append-only log of scored sessions.
type GameRepo interface {
	// AppendGame records a scored session.
	AppendGame(ctx context.Context, rec GameRecord) error

	// RecentGames returns up to limit records, newest first. limit <= 0 means all.
	RecentGames(ctx context.Context, limit int) ([]GameRecord, error)

	// Clear deletes every record.
	Clear(ctx context.Context) error
}

type gameRepo struct {
	drv *entsql.Driver
}

var gameColumns = []string{
	"session_id", "started_at", "ended_at", "difficulty", "operation", "operands",
	"correct_answer", "selected_answer", "correct", "score", "reward", "time_taken",
}

func (r *gameRepo) AppendGame(ctx context.Context, rec GameRecord) error {
	operands, err := json.Marshal(rec.Operands)
	if err != nil {
		return fmt.Errorf("marshal operands: %w", err)
	}

	var selected sql.NullInt64
	if rec.SelectedAnswer != nil {
		selected = sql.NullInt64{Int64: int64(*rec.SelectedAnswer), Valid: true}
	}

	query, args := builder().
		Insert(gamesTable).
		Columns(gameColumns...).
		Values(
			rec.SessionID,
			rec.StartedAt.UTC(),
			rec.EndedAt.UTC(),
			rec.Difficulty,
			rec.Operation,
			operands,
			rec.CorrectAnswer,
			selected,
			rec.Correct,
			rec.Score,
			rec.Reward,
			rec.TimeTaken,
		).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

func (r *gameRepo) RecentGames(ctx context.Context, limit int) ([]GameRecord, error) {
	sel := builder().
		Select(append([]string{"id"}, gameColumns...)...).
		From(entsql.Table(gamesTable)).
		OrderBy(entsql.Desc("id"))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query games: %w", err)
	}
	defer rows.Close()

	var out []GameRecord
	for rows.Next() {
		var (
			rec      GameRecord
			operands []byte
			selected sql.NullInt64
		)
		if err := rows.Scan(&rec.ID, &rec.SessionID, &rec.StartedAt, &rec.EndedAt, &rec.Difficulty,
			&rec.Operation, &operands, &rec.CorrectAnswer, &selected, &rec.Correct,
			&rec.Score, &rec.Reward, &rec.TimeTaken); err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		if err := json.Unmarshal(operands, &rec.Operands); err != nil {
			return nil, fmt.Errorf("unmarshal operands: %w", err)
		}
		if selected.Valid {
			v := int(selected.Int64)
			rec.SelectedAnswer = &v
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *gameRepo) Clear(ctx context.Context) error {
	query, args := builder().Delete(gamesTable).Query()
	var res sql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("clear games: %w", err)
	}
	return nil
}
