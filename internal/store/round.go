package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const roundsTable = "rounds"

var roundColumns = []string{
	"sequence", "session_id", "category", "problem", "answer",
	"given", "outcome", "attempts", "elapsed_ms", "created_at",
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// roundRepo implements RoundRepo on the rounds table.
type roundRepo struct {
	db  *sql.DB
	seq *sequenceCounter
	now func() time.Time
}

func (r *roundRepo) RecordRound(ctx context.Context, rd Round) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	ts := rd.Timestamp
	if ts.IsZero() {
		ts = r.now()
	}

	query, args := builder().Insert(roundsTable).
		Columns(roundColumns...).
		Values(seqNum, rd.SessionID, rd.Category, rd.Problem, rd.Answer, rd.Given,
			rd.Outcome, rd.Attempts, rd.ElapsedMs, ts.UnixMilli()).
		Query()
	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save round: %w", err)
	}
	return nil
}

const statsColumns = `
	COUNT(*),
	COALESCE(SUM(CASE WHEN outcome = 'correct' THEN 1 ELSE 0 END), 0),
	COALESCE(MIN(CASE WHEN outcome = 'correct' THEN elapsed_ms END), 0),
	COALESCE(MAX(created_at), 0)`

func (r *roundRepo) Stats(ctx context.Context, category string) (RoundStats, error) {
	sel := builder().SelectExpr(entsql.Raw(statsColumns)).From(entsql.Table(roundsTable))
	if category != "" {
		sel.Where(entsql.EQ("category", category))
	}
	query, args := sel.Query()
	row := r.db.QueryRowContext(ctx, query, args...)
	st := RoundStats{Category: category}
	if err := scanStats(row.Scan, &st); err != nil {
		return RoundStats{}, fmt.Errorf("query round stats: %w", err)
	}
	return st, nil
}

func (r *roundRepo) StatsByCategory(ctx context.Context) ([]RoundStats, error) {
	query, args := builder().Select("category").
		AppendSelectExpr(entsql.Raw(statsColumns)).
		From(entsql.Table(roundsTable)).
		GroupBy("category").
		OrderBy("category").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query round stats: %w", err)
	}
	defer rows.Close()

	var out []RoundStats
	for rows.Next() {
		var st RoundStats
		err := scanStats(func(dest ...any) error {
			return rows.Scan(append([]any{&st.Category}, dest...)...)
		}, &st)
		if err != nil {
			return nil, fmt.Errorf("scan round stats: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func scanStats(scan func(dest ...any) error, st *RoundStats) error {
	var fastestMs, lastMs int64
	if err := scan(&st.Attempted, &st.Correct, &fastestMs, &lastMs); err != nil {
		return err
	}
	st.Fastest = time.Duration(fastestMs) * time.Millisecond
	if lastMs > 0 {
		st.LastPlayed = time.UnixMilli(lastMs)
	}
	return nil
}

func (r *roundRepo) Recent(ctx context.Context, opts QueryOpts) ([]Round, error) {
	sel := builder().Select(roundColumns...).
		From(entsql.Table(roundsTable)).
		OrderBy(entsql.Desc("sequence"))
	if opts.Category != "" {
		sel.Where(entsql.EQ("category", opts.Category))
	}
	if opts.SessionID != "" {
		sel.Where(entsql.EQ("session_id", opts.SessionID))
	}
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var out []Round
	for rows.Next() {
		var (
			rd   Round
			tsMs int64
		)
		if err := rows.Scan(&rd.Sequence, &rd.SessionID, &rd.Category, &rd.Problem, &rd.Answer,
			&rd.Given, &rd.Outcome, &rd.Attempts, &rd.ElapsedMs, &tsMs); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		rd.Timestamp = time.UnixMilli(tsMs)
		out = append(out, rd)
	}
	return out, rows.Err()
}

func (r *roundRepo) DeleteRounds(ctx context.Context, category string) (int64, error) {
	del := builder().Delete(roundsTable)
	if category != "" {
		del.Where(entsql.EQ("category", category))
	}
	query, args := del.Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete rounds: %w", err)
	}
	return res.RowsAffected()
}
