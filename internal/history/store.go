// internal/history/store.go
//
// SQLite-backed log of finished solves. One row per solved session:
// who solved it (user or anonymous cookie id), what the answer was, how
// many guesses the feedback history took, and how long the session ran.
// The engine never touches this; the HTTP layer records rows best-effort
// after a winning guess.

package history

import (
	"context"
	"database/sql"
)

// Solve is one finished solver session.
type Solve struct {
	OwnerID   string `json:"ownerId"`
	SessionID string `json:"sessionId"`
	Answer    string `json:"answer"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int    `json:"elapsedMs"`
}

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert records a finished solve. Re-inserting the same session id is
// ignored (UNIQUE(session_id)).
func (s *Store) Insert(ctx context.Context, r Solve) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO solves(owner_id, session_id, answer, guesses, elapsed_ms)
		 VALUES(?,?,?,?,?)`, r.OwnerID, r.SessionID, r.Answer, r.Guesses, r.ElapsedMs,
	)
	return err
}

// Recent returns the latest solves across all owners, fastest-first within
// equal guess counts.
func (s *Store) Recent(ctx context.Context, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT owner_id, session_id, answer, guesses, elapsed_ms
		 FROM solves
		 ORDER BY created_at DESC, guesses ASC, elapsed_ms ASC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSolves(rows)
}

// ForOwner returns an owner's solves, newest first.
func (s *Store) ForOwner(ctx context.Context, ownerID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT owner_id, session_id, answer, guesses, elapsed_ms
		 FROM solves
		 WHERE owner_id=?
		 ORDER BY created_at DESC
		 LIMIT ?`, ownerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSolves(rows)
}

// Claim reassigns anonymous solves to a user account after login/signup.
func (s *Store) Claim(ctx context.Context, anonID, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE solves SET owner_id=? WHERE owner_id=?`, userID, anonID)
	return err
}

func scanSolves(rows *sql.Rows) ([]Solve, error) {
	var out []Solve
	for rows.Next() {
		var r Solve
		if err := rows.Scan(&r.OwnerID, &r.SessionID, &r.Answer, &r.Guesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
