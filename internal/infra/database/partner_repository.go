package database

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/entity"
)

type PartnerRepository struct {
	DB *sql.DB
}

func NewPartnerRepository(db *sql.DB) *PartnerRepository {
	return &PartnerRepository{DB: db}
}

const partnerColumns = `
	id, name, notes, website, contact_name, contact_email, contact_phone,
	status, opportunity_type, partnership_type, partner_tier, lifecycle_stage,
	use_for_tags, lifestyle_category,
	contacted, call_booked, call_had, contract_sent, contract_signed,
	stripe_aliases, lead_date, signed_at, created_at, updated_at
`

func (r *PartnerRepository) Create(ctx context.Context, p *entity.Partner) error {
	query := `
		INSERT INTO partners (` + partnerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Name, p.Notes, p.Website, p.ContactName, p.ContactEmail, p.ContactPhone,
		p.Status, nullString(p.OpportunityType), nullString(p.PartnershipType),
		nullString(p.PartnerTier), nullString(p.LifecycleStage),
		pq.Array(p.UseForTags), nullString(p.LifestyleCategory),
		p.Contacted, p.CallBooked, p.CallHad, p.ContractSent, p.ContractSigned,
		pq.Array(p.StripeAliases), p.LeadDate, p.SignedAt, p.CreatedAt, p.UpdatedAt,
	)

	return err
}

// Replace overwrites the whole record by id.
func (r *PartnerRepository) Replace(ctx context.Context, p *entity.Partner) error {
	query := `
		UPDATE partners SET
			name = $2, notes = $3, website = $4, contact_name = $5,
			contact_email = $6, contact_phone = $7, status = $8,
			opportunity_type = $9, partnership_type = $10, partner_tier = $11,
			lifecycle_stage = $12, use_for_tags = $13, lifestyle_category = $14,
			contacted = $15, call_booked = $16, call_had = $17,
			contract_sent = $18, contract_signed = $19, stripe_aliases = $20,
			lead_date = $21, signed_at = $22, updated_at = $23
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Name, p.Notes, p.Website, p.ContactName, p.ContactEmail, p.ContactPhone,
		p.Status, nullString(p.OpportunityType), nullString(p.PartnershipType),
		nullString(p.PartnerTier), nullString(p.LifecycleStage),
		pq.Array(p.UseForTags), nullString(p.LifestyleCategory),
		p.Contacted, p.CallBooked, p.CallHad, p.ContractSent, p.ContractSigned,
		pq.Array(p.StripeAliases), p.LeadDate, p.SignedAt, p.UpdatedAt,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *PartnerRepository) FindByID(ctx context.Context, id string) (*entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`

	row := r.DB.QueryRowContext(ctx, query, id)
	return scanPartner(row)
}

func (r *PartnerRepository) FindAll(ctx context.Context) ([]entity.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []entity.Partner
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, *p)
	}

	return partners, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPartner(row rowScanner) (*entity.Partner, error) {
	var p entity.Partner
	var opportunityType, partnershipType, partnerTier, lifecycleStage, lifestyleCategory sql.NullString

	err := row.Scan(
		&p.ID, &p.Name, &p.Notes, &p.Website, &p.ContactName, &p.ContactEmail, &p.ContactPhone,
		&p.Status, &opportunityType, &partnershipType, &partnerTier, &lifecycleStage,
		pq.Array(&p.UseForTags), &lifestyleCategory,
		&p.Contacted, &p.CallBooked, &p.CallHad, &p.ContractSent, &p.ContractSigned,
		pq.Array(&p.StripeAliases), &p.LeadDate, &p.SignedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.OpportunityType = opportunityType.String
	p.PartnershipType = partnershipType.String
	p.PartnerTier = partnerTier.String
	p.LifecycleStage = lifecycleStage.String
	p.LifestyleCategory = lifestyleCategory.String

	return &p, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
