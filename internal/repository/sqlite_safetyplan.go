package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/domain"
)

// SQLiteSafetyPlanRepo implements SafetyPlanRepo using a SQLite database.
// List-valued fields are stored as JSON text columns.
type SQLiteSafetyPlanRepo struct {
	db db.DBTX
}

// NewSQLiteSafetyPlanRepo creates a new SQLiteSafetyPlanRepo.
func NewSQLiteSafetyPlanRepo(conn db.DBTX) *SQLiteSafetyPlanRepo {
	return &SQLiteSafetyPlanRepo{db: conn}
}

func (r *SQLiteSafetyPlanRepo) Get(ctx context.Context, userID string) (*domain.SafetyPlan, error) {
	query := `SELECT user_id, warning_signals, coping_strategies, support_contacts,
		professional_contacts, environmental_safety, reasons_for_living, created_at, updated_at
		FROM safety_plans WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p domain.SafetyPlan
	var signals, coping, support, professional, environment, reasons string
	var createdAtStr, updatedAtStr string

	err := row.Scan(&p.UserID, &signals, &coping, &support, &professional,
		&environment, &reasons, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("safety plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning safety plan: %w", err)
	}

	if err := unmarshalList(signals, &p.WarningSignals); err != nil {
		return nil, fmt.Errorf("parsing warning_signals: %w", err)
	}
	if err := unmarshalList(coping, &p.CopingStrategies); err != nil {
		return nil, fmt.Errorf("parsing coping_strategies: %w", err)
	}
	if err := unmarshalList(support, &p.SupportContacts); err != nil {
		return nil, fmt.Errorf("parsing support_contacts: %w", err)
	}
	if err := unmarshalList(professional, &p.ProfessionalContacts); err != nil {
		return nil, fmt.Errorf("parsing professional_contacts: %w", err)
	}
	if err := unmarshalList(environment, &p.EnvironmentalSafety); err != nil {
		return nil, fmt.Errorf("parsing environmental_safety: %w", err)
	}
	if err := unmarshalList(reasons, &p.ReasonsForLiving); err != nil {
		return nil, fmt.Errorf("parsing reasons_for_living: %w", err)
	}

	p.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	p.LastUpdated, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}

	return &p, nil
}

func (r *SQLiteSafetyPlanRepo) Upsert(ctx context.Context, p *domain.SafetyPlan) error {
	signals, err := marshalList(p.WarningSignals)
	if err != nil {
		return err
	}
	coping, err := marshalList(p.CopingStrategies)
	if err != nil {
		return err
	}
	support, err := marshalList(p.SupportContacts)
	if err != nil {
		return err
	}
	professional, err := marshalList(p.ProfessionalContacts)
	if err != nil {
		return err
	}
	environment, err := marshalList(p.EnvironmentalSafety)
	if err != nil {
		return err
	}
	reasons, err := marshalList(p.ReasonsForLiving)
	if err != nil {
		return err
	}

	query := `INSERT INTO safety_plans (user_id, warning_signals, coping_strategies, support_contacts,
			professional_contacts, environmental_safety, reasons_for_living, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			warning_signals = excluded.warning_signals,
			coping_strategies = excluded.coping_strategies,
			support_contacts = excluded.support_contacts,
			professional_contacts = excluded.professional_contacts,
			environmental_safety = excluded.environmental_safety,
			reasons_for_living = excluded.reasons_for_living,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		p.UserID,
		signals,
		coping,
		support,
		professional,
		environment,
		reasons,
		p.CreatedAt.Format(time.RFC3339),
		p.LastUpdated.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting safety plan: %w", err)
	}
	return nil
}
