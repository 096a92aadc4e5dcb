package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/playoracle/internal/play"
)

// ExportStats reports what a WriteResults call changed.
type ExportStats struct {
	Digest   string
	Inserted int
	Updated  int
	Skipped  int
}

// WriteResults stores results and their notes in a single transaction.
//
// A case already stored with the same canonical record is skipped. A case
// whose record differs (the engine changed) is overwritten and its notes
// replaced, so stored rows always match the latest export. The export row
// is keyed by the digest of results in the order given and becomes the
// latest export.
func (s *Store) WriteResults(ctx context.Context, results []play.Result) (ExportStats, error) {
	digest, err := play.Digest(results)
	if err != nil {
		return ExportStats{}, fmt.Errorf("write results: %w", err)
	}
	stats := ExportStats{Digest: digest}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExportStats{}, fmt.Errorf("write results: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	valid := 0
	for _, r := range results {
		if r.Valid {
			valid++
		}

		record, err := marshalRecord(r)
		if err != nil {
			return ExportStats{}, fmt.Errorf("write results: %w", err)
		}

		var stored string
		err = tx.QueryRowContext(ctx, `SELECT record FROM cases WHERE case_id = ?`, r.CaseID).Scan(&stored)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			stats.Inserted++
		case err != nil:
			return ExportStats{}, fmt.Errorf("read case %s: %w", r.CaseID, err)
		case stored == record:
			stats.Skipped++
			continue
		default:
			stats.Updated++
		}

		if err := upsertCase(ctx, tx, r, record); err != nil {
			return ExportStats{}, err
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO exports
		(digest, seq, engine_version, report_version, total_cases, valid_cases, invalid_cases)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM exports), ?, ?, ?, ?, ?)
		ON CONFLICT(digest) DO UPDATE SET seq = excluded.seq
	`, digest, play.EngineVersion, play.ReportVersion, len(results), valid, len(results)-valid)
	if err != nil {
		return ExportStats{}, fmt.Errorf("write export: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return ExportStats{}, fmt.Errorf("write results: commit: %w", err)
	}
	return stats, nil
}

// upsertCase writes the row for r and replaces its notes.
func upsertCase(ctx context.Context, tx *sql.Tx, r play.Result, record string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO cases
		(case_id, base_state, base_ord, outs_before, outcome, outcome_ord, category,
		 runs_scored, outs_after, new_first, new_second, new_third,
		 batter_reaches, inning_ends, is_valid, sac_fly, rbi_credited, record)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(case_id) DO UPDATE SET
			runs_scored = excluded.runs_scored,
			outs_after = excluded.outs_after,
			new_first = excluded.new_first,
			new_second = excluded.new_second,
			new_third = excluded.new_third,
			batter_reaches = excluded.batter_reaches,
			inning_ends = excluded.inning_ends,
			is_valid = excluded.is_valid,
			sac_fly = excluded.sac_fly,
			rbi_credited = excluded.rbi_credited,
			record = excluded.record
	`,
		r.CaseID,
		r.BaseState.String(),
		int(r.BaseState),
		r.OutsBefore,
		r.Outcome.String(),
		int(r.Outcome),
		string(r.Category()),
		r.RunsScored,
		r.OutsAfter,
		boolToInt(r.NewBases.First),
		boolToInt(r.NewBases.Second),
		boolToInt(r.NewBases.Third),
		boolToInt(r.BatterReaches),
		boolToInt(r.InningEnds),
		boolToInt(r.Valid),
		boolToInt(r.SacFly),
		boolToInt(r.RBICredited),
		record,
	)
	if err != nil {
		return fmt.Errorf("write case %s: %w", r.CaseID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE case_id = ?`, r.CaseID); err != nil {
		return fmt.Errorf("clear notes for case %s: %w", r.CaseID, err)
	}
	for i, n := range r.Notes {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO notes (case_id, ord, code, message)
			VALUES (?, ?, ?, ?)
		`, r.CaseID, i, string(n.Code), n.Message)
		if err != nil {
			return fmt.Errorf("write note %d for case %s: %w", i, r.CaseID, err)
		}
	}
	return nil
}
