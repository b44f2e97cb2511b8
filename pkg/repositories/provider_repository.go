package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/salvacode/orientlink/pkg/apperrors"
	"github.com/salvacode/orientlink/pkg/database"
	"github.com/salvacode/orientlink/pkg/models"
)

// ProviderRepository provides data access for supplier profiles.
type ProviderRepository interface {
	Create(ctx context.Context, p *models.ProviderProfile) error
	Update(ctx context.Context, p *models.ProviderProfile) error
	GetByID(ctx context.Context, id int64) (*models.ProviderProfile, error)
	GetByURL(ctx context.Context, sourceURL string) (*models.ProviderProfile, error)
	ListByUser(ctx context.Context, userID string) ([]*models.ProviderProfile, error)
	SearchByName(ctx context.Context, name string) ([]*models.ProviderProfile, error)
}

type providerRepository struct {
	db *database.DB
}

// NewProviderRepository creates a new ProviderRepository.
func NewProviderRepository(db *database.DB) ProviderRepository {
	return &providerRepository{db: db}
}

var _ ProviderRepository = (*providerRepository)(nil)

const providerColumns = `id, user_id, provider_name, source_url, product_name, moq,
	       price_per_unit, currency, certifications, delivery_time_days,
	       additional_info, risk_assessment, created_at, updated_at`

func (r *providerRepository) Create(ctx context.Context, p *models.ProviderProfile) error {
	now := time.Now()

	query := `
		INSERT INTO provider_profiles (
			user_id, provider_name, source_url, product_name, moq,
			price_per_unit, currency, certifications, delivery_time_days,
			additional_info, risk_assessment, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		p.UserID,
		p.ProviderName,
		p.SourceURL,
		p.ProductName,
		p.MOQ,
		p.PricePerUnit,
		p.Currency,
		joinCertifications(p.Certifications),
		p.DeliveryTimeDays,
		p.AdditionalInfo,
		p.RiskAssessment,
		now,
		now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create provider profile: %w", err)
	}

	return nil
}

func (r *providerRepository) Update(ctx context.Context, p *models.ProviderProfile) error {
	query := `
		UPDATE provider_profiles
		SET user_id = $2, provider_name = $3, product_name = $4, moq = $5,
		    price_per_unit = $6, currency = $7, certifications = $8,
		    delivery_time_days = $9, additional_info = $10,
		    risk_assessment = $11, updated_at = $12
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		p.ID,
		p.UserID,
		p.ProviderName,
		p.ProductName,
		p.MOQ,
		p.PricePerUnit,
		p.Currency,
		joinCertifications(p.Certifications),
		p.DeliveryTimeDays,
		p.AdditionalInfo,
		p.RiskAssessment,
		time.Now(),
	).Scan(&p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to update provider profile: %w", err)
	}

	return nil
}

func (r *providerRepository) GetByID(ctx context.Context, id int64) (*models.ProviderProfile, error) {
	query := `SELECT ` + providerColumns + ` FROM provider_profiles WHERE id = $1`

	p, err := scanProvider(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get provider profile: %w", err)
	}
	return p, nil
}

func (r *providerRepository) GetByURL(ctx context.Context, sourceURL string) (*models.ProviderProfile, error) {
	query := `SELECT ` + providerColumns + ` FROM provider_profiles WHERE source_url = $1`

	p, err := scanProvider(r.db.QueryRow(ctx, query, sourceURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get provider profile by url: %w", err)
	}
	return p, nil
}

func (r *providerRepository) ListByUser(ctx context.Context, userID string) ([]*models.ProviderProfile, error) {
	query := `SELECT ` + providerColumns + `
		FROM provider_profiles
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider profiles: %w", err)
	}
	defer rows.Close()

	return collectProviders(rows)
}

func (r *providerRepository) SearchByName(ctx context.Context, name string) ([]*models.ProviderProfile, error) {
	query := `SELECT ` + providerColumns + `
		FROM provider_profiles
		WHERE provider_name ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search provider profiles: %w", err)
	}
	defer rows.Close()

	return collectProviders(rows)
}

func scanProvider(row pgx.Row) (*models.ProviderProfile, error) {
	var p models.ProviderProfile
	var certifications *string

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.ProviderName,
		&p.SourceURL,
		&p.ProductName,
		&p.MOQ,
		&p.PricePerUnit,
		&p.Currency,
		&certifications,
		&p.DeliveryTimeDays,
		&p.AdditionalInfo,
		&p.RiskAssessment,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Certifications = splitCertifications(certifications)
	return &p, nil
}

func collectProviders(rows pgx.Rows) ([]*models.ProviderProfile, error) {
	var providers []*models.ProviderProfile
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan provider profile: %w", err)
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate provider profiles: %w", err)
	}
	return providers, nil
}

// Certifications are stored as one comma-joined column but exposed as a list.
func joinCertifications(certs []string) string {
	return strings.Join(certs, ", ")
}

func splitCertifications(column *string) []string {
	if column == nil || *column == "" {
		return nil
	}
	parts := strings.Split(*column, ", ")
	certs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			certs = append(certs, trimmed)
		}
	}
	return certs
}
