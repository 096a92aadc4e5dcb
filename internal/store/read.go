package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/playoracle/internal/play"
)

const caseColumns = `
	case_id, base_state, outs_before, outcome, runs_scored, outs_after,
	new_first, new_second, new_third, batter_reaches, inning_ends,
	is_valid, sac_fly, rbi_credited`

const exportColumns = `
	digest, seq, engine_version, report_version, total_cases, valid_cases, invalid_cases`

// Export is a row of the exports table.
type Export struct {
	Digest        string
	Seq           int64
	EngineVersion string
	ReportVersion string
	TotalCases    int
	ValidCases    int
	InvalidCases  int
}

// Case reads a single case with its notes.
// Returns sql.ErrNoRows if not found.
func (s *Store) Case(ctx context.Context, caseID string) (play.Result, error) {
	row := s.db.QueryRowContext(ctx, `SELECT`+caseColumns+` FROM cases WHERE case_id = ?`, caseID)
	r, err := scanCase(row)
	if err != nil {
		return play.Result{}, err
	}

	notes, err := s.readNotes(ctx, caseID)
	if err != nil {
		return play.Result{}, err
	}
	r.Notes = notes
	return r, nil
}

// Situation returns every stored case for a base preset and out count,
// in canonical outcome order.
//
// Returns an empty slice (not nil) if nothing has been exported for it.
func (s *Store) Situation(ctx context.Context, preset play.Preset, outs int) ([]play.Result, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT`+caseColumns+`
		FROM cases
		WHERE base_ord = ? AND outs_before = ?
		ORDER BY outcome_ord ASC
	`, int(preset), outs)
	if err != nil {
		return nil, fmt.Errorf("query situation: %w", err)
	}
	defer rows.Close()

	results := []play.Result{}
	for rows.Next() {
		r, err := scanCase(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate situation: %w", err)
	}

	// Notes are read after rows is drained; the pool holds one connection.
	for i := range results {
		notes, err := s.readNotes(ctx, results[i].CaseID)
		if err != nil {
			return nil, err
		}
		results[i].Notes = notes
	}
	return results, nil
}

// CountValid returns the number of valid and invalid stored cases.
func (s *Store) CountValid(ctx context.Context) (valid, invalid int, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN is_valid = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN is_valid = 0 THEN 1 ELSE 0 END), 0)
		FROM cases
	`).Scan(&valid, &invalid)
	if err != nil {
		return 0, 0, fmt.Errorf("count cases: %w", err)
	}
	return valid, invalid, nil
}

// Record returns the canonical JSON stored for a case.
// Returns sql.ErrNoRows if not found.
func (s *Store) Record(ctx context.Context, caseID string) (string, error) {
	var record string
	err := s.db.QueryRowContext(ctx, `SELECT record FROM cases WHERE case_id = ?`, caseID).Scan(&record)
	if err != nil {
		return "", err
	}
	return record, nil
}

// Exports lists export rows, oldest first.
func (s *Store) Exports(ctx context.Context) ([]Export, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT`+exportColumns+` FROM exports ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("query exports: %w", err)
	}
	defer rows.Close()

	exports := []Export{}
	for rows.Next() {
		e, err := scanExport(rows)
		if err != nil {
			return nil, err
		}
		exports = append(exports, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exports: %w", err)
	}
	return exports, nil
}

// LatestExport returns the export whose results are currently stored.
// Returns sql.ErrNoRows if nothing has been exported.
func (s *Store) LatestExport(ctx context.Context) (Export, error) {
	row := s.db.QueryRowContext(ctx, `SELECT`+exportColumns+` FROM exports ORDER BY seq DESC LIMIT 1`)
	return scanExport(row)
}

// StoredDigest recomputes the report digest over every stored case in
// canonical order. After a full export it equals the latest export digest.
func (s *Store) StoredDigest(ctx context.Context) (string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT`+caseColumns+`
		FROM cases
		ORDER BY base_ord ASC, outs_before ASC, outcome_ord ASC
	`)
	if err != nil {
		return "", fmt.Errorf("query cases: %w", err)
	}
	defer rows.Close()

	results := []play.Result{}
	for rows.Next() {
		r, err := scanCase(rows)
		if err != nil {
			return "", err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate cases: %w", err)
	}

	for i := range results {
		notes, err := s.readNotes(ctx, results[i].CaseID)
		if err != nil {
			return "", err
		}
		results[i].Notes = notes
	}
	return play.Digest(results)
}

// readNotes returns the notes of a case in their original order.
func (s *Store) readNotes(ctx context.Context, caseID string) ([]play.Note, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, message FROM notes WHERE case_id = ? ORDER BY ord ASC
	`, caseID)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	notes := []play.Note{}
	for rows.Next() {
		var code, message string
		if err := rows.Scan(&code, &message); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, play.Note{Code: play.NoteCode(code), Message: message})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}
	return notes, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanCase scans a cases row selected with caseColumns.
// sql.ErrNoRows is returned unwrapped so callers can compare against it.
func scanCase(sc scanner) (play.Result, error) {
	var c caseRow
	err := sc.Scan(
		&c.caseID, &c.baseState, &c.outsBefore, &c.outcome, &c.runsScored, &c.outsAfter,
		&c.newFirst, &c.newSecond, &c.newThird, &c.batterReaches, &c.inningEnds,
		&c.isValid, &c.sacFly, &c.rbiCredited,
	)
	if err == sql.ErrNoRows {
		return play.Result{}, err
	}
	if err != nil {
		return play.Result{}, fmt.Errorf("scan case: %w", err)
	}
	return c.result()
}

// scanExport scans an exports row selected with exportColumns.
func scanExport(sc scanner) (Export, error) {
	var e Export
	err := sc.Scan(&e.Digest, &e.Seq, &e.EngineVersion, &e.ReportVersion,
		&e.TotalCases, &e.ValidCases, &e.InvalidCases)
	if err == sql.ErrNoRows {
		return Export{}, err
	}
	if err != nil {
		return Export{}, fmt.Errorf("scan export: %w", err)
	}
	return e, nil
}
