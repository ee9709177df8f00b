package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo on SQLite. It accepts a db.DBTX
// so appends can run inside a unit-of-work transaction.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.TherapeuticSession) error {
	emotions, err := marshalList(s.EmotionalState)
	if err != nil {
		return err
	}

	query := `INSERT INTO therapy_sessions (id, user_id, issue, emotional_state, started_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.Issue,
		emotions,
		s.StartedAt.Format(time.RFC3339),
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting therapy session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, userID, sessionID string) (*domain.TherapeuticSession, error) {
	query := `SELECT id, user_id, issue, emotional_state, started_at, created_at
		FROM therapy_sessions WHERE id = ? AND user_id = ?`
	row := r.db.QueryRowContext(ctx, query, sessionID, userID)

	s, err := r.scanSession(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadAppliedTechniques(ctx, s); err != nil {
		return nil, err
	}
	if err := r.loadFeedback(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSessionRepo) ListByUser(ctx context.Context, userID string) ([]*domain.TherapeuticSession, error) {
	query := `SELECT id, user_id, issue, emotional_state, started_at, created_at
		FROM therapy_sessions WHERE user_id = ? ORDER BY started_at, created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by user: %w", err)
	}
	defer rows.Close()

	sessions, err := r.scanSessions(rows)
	if err != nil {
		return nil, err
	}
	for _, s := range sessions {
		if err := r.loadAppliedTechniques(ctx, s); err != nil {
			return nil, err
		}
		if err := r.loadFeedback(ctx, s); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

func (r *SQLiteSessionRepo) AppendTechnique(ctx context.Context, userID, sessionID, techniqueID string, appliedAt time.Time) error {
	if err := r.checkOwnership(ctx, userID, sessionID); err != nil {
		return err
	}

	// Seq assignment happens inside the INSERT so concurrent appends cannot
	// read the same MAX; SQLite's single-writer lock serializes the statement.
	query := `INSERT INTO applied_techniques (id, session_id, technique_id, seq, created_at)
		SELECT ?, ?, ?, COALESCE(MAX(seq) + 1, 0), ?
		FROM applied_techniques WHERE session_id = ?`
	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(),
		sessionID,
		techniqueID,
		appliedAt.Format(time.RFC3339),
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("appending applied technique: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) AppendFeedback(ctx context.Context, userID, sessionID string, fb domain.TechniqueFeedback) error {
	if err := r.checkOwnership(ctx, userID, sessionID); err != nil {
		return err
	}

	query := `INSERT INTO session_feedback (id, session_id, technique_id, rating, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(),
		sessionID,
		fb.TechniqueID,
		fb.Rating,
		fb.Notes,
		fb.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending session feedback: %w", err)
	}
	return nil
}

// checkOwnership verifies the session exists and belongs to the user.
func (r *SQLiteSessionRepo) checkOwnership(ctx context.Context, userID, sessionID string) error {
	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM therapy_sessions WHERE id = ? AND user_id = ?`, sessionID, userID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("therapy session: %w", ErrNotFound)
		}
		return fmt.Errorf("checking session ownership: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) loadAppliedTechniques(ctx context.Context, s *domain.TherapeuticSession) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT technique_id FROM applied_techniques WHERE session_id = ? ORDER BY seq`, s.ID)
	if err != nil {
		return fmt.Errorf("loading applied techniques: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scanning applied technique: %w", err)
		}
		s.AppliedTechniques = append(s.AppliedTechniques, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating applied techniques: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) loadFeedback(ctx context.Context, s *domain.TherapeuticSession) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT technique_id, rating, notes, created_at
		FROM session_feedback WHERE session_id = ? ORDER BY created_at, id`, s.ID)
	if err != nil {
		return fmt.Errorf("loading session feedback: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var fb domain.TechniqueFeedback
		var createdAtStr string
		if err := rows.Scan(&fb.TechniqueID, &fb.Rating, &fb.Notes, &createdAtStr); err != nil {
			return fmt.Errorf("scanning session feedback: %w", err)
		}
		fb.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return fmt.Errorf("parsing feedback created_at: %w", err)
		}
		s.Feedback = append(s.Feedback, fb)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating session feedback: %w", err)
	}
	return nil
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.TherapeuticSession, error) {
	var s domain.TherapeuticSession
	var emotionsStr, startedAtStr, createdAtStr string

	err := row.Scan(&s.ID, &s.UserID, &s.Issue, &emotionsStr, &startedAtStr, &createdAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("therapy session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning therapy session: %w", err)
	}

	return r.populateSession(&s, emotionsStr, startedAtStr, createdAtStr)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.TherapeuticSession, error) {
	var sessions []*domain.TherapeuticSession
	for rows.Next() {
		var s domain.TherapeuticSession
		var emotionsStr, startedAtStr, createdAtStr string

		err := rows.Scan(&s.ID, &s.UserID, &s.Issue, &emotionsStr, &startedAtStr, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, emotionsStr, startedAtStr, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields after scanning raw strings.
func (r *SQLiteSessionRepo) populateSession(s *domain.TherapeuticSession, emotionsStr, startedAtStr, createdAtStr string) (*domain.TherapeuticSession, error) {
	if err := unmarshalList(emotionsStr, &s.EmotionalState); err != nil {
		return nil, fmt.Errorf("parsing emotional_state: %w", err)
	}

	var parseErr error
	s.StartedAt, parseErr = time.Parse(time.RFC3339, startedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing started_at: %w", parseErr)
	}
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	return s, nil
}
