package entity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Partner is the central pipeline entity. IDs are externally assigned
// (forms, imports) and immutable after creation; mutation happens only
// through whole-record replace-by-id.
type Partner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`

	// Free-text contact fields. Format checking is not this layer's job.
	Website      string `json:"website,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`

	Status            string   `json:"status"`
	OpportunityType   string   `json:"opportunity_type,omitempty"`
	PartnershipType   string   `json:"partnership_type,omitempty"`
	PartnerTier       string   `json:"partner_tier,omitempty"`
	LifecycleStage    string   `json:"lifecycle_stage,omitempty"`
	UseForTags        []string `json:"use_for_tags,omitempty"`
	LifestyleCategory string   `json:"lifestyle_category,omitempty"`

	// Negotiation checkpoints. Only meaningful when PartnershipType is
	// Direct. Monotonic in practice but not enforced here.
	Contacted      bool `json:"contacted"`
	CallBooked     bool `json:"call_booked"`
	CallHad        bool `json:"call_had"`
	ContractSent   bool `json:"contract_sent"`
	ContractSigned bool `json:"contract_signed"`

	// Billing identifiers used only for cross-referencing.
	StripeAliases []string `json:"stripe_aliases,omitempty"`

	LeadDate  *time.Time `json:"lead_date,omitempty"`
	SignedAt  *time.Time `json:"signed_at,omitempty"`
	CreatedAt time.Time  `json:"created"`
	UpdatedAt time.Time  `json:"updated"`
}

type PartnerRepositoryInterface interface {
	Create(ctx context.Context, p *Partner) error
	Replace(ctx context.Context, p *Partner) error
	FindByID(ctx context.Context, id string) (*Partner, error)
	FindAll(ctx context.Context) ([]Partner, error)
}

// InvalidFieldError names the enum field and the offending value.
type InvalidFieldError struct {
	Field string
	Value string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value %q for field %q", e.Value, e.Field)
}

// Factory
func NewPartner(name string) *Partner {
	return &Partner{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    StatusPotential,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Validate checks every enum-typed field against its fixed set. Status is
// always required; the other classification fields may be unset. The whole
// record is rejected on the first violation, nothing is partially applied.
func (p *Partner) Validate() error {
	if !isMember(Statuses, p.Status) {
		return &InvalidFieldError{Field: "status", Value: p.Status}
	}
	if p.OpportunityType != "" && !isMember(OpportunityTypes, p.OpportunityType) {
		return &InvalidFieldError{Field: "opportunity_type", Value: p.OpportunityType}
	}
	if p.PartnershipType != "" && !isMember(PartnershipTypes, p.PartnershipType) {
		return &InvalidFieldError{Field: "partnership_type", Value: p.PartnershipType}
	}
	if p.PartnerTier != "" && !isMember(PartnerTiers, p.PartnerTier) {
		return &InvalidFieldError{Field: "partner_tier", Value: p.PartnerTier}
	}
	if p.LifecycleStage != "" && !isMember(LifecycleStages, p.LifecycleStage) {
		return &InvalidFieldError{Field: "lifecycle_stage", Value: p.LifecycleStage}
	}
	for _, tag := range p.UseForTags {
		if !isMember(UseForTags, tag) {
			return &InvalidFieldError{Field: "use_for_tags", Value: tag}
		}
	}
	if p.LifestyleCategory != "" && !isMember(LifestyleCategories, p.LifestyleCategory) {
		return &InvalidFieldError{Field: "lifestyle_category", Value: p.LifestyleCategory}
	}
	return nil
}

// ApplyStatusChange moves the partner to a new status and stamps the
// transition timestamps. lead_date and signed_at record the FIRST time the
// partner reached lead/signed and are never cleared, even if the status
// later regresses.
func (p *Partner) ApplyStatusChange(status string, now time.Time) {
	p.Status = status
	if status == StatusLead && p.LeadDate == nil {
		t := now
		p.LeadDate = &t
	}
	if status == StatusSigned && p.SignedAt == nil {
		t := now
		p.SignedAt = &t
	}
	p.UpdatedAt = now
}

// CheckpointsOrdered reports whether the negotiation checkpoints respect
// their natural order (a later checkpoint implies the earlier ones). This is
// a queryable property, not a validation rule.
func (p *Partner) CheckpointsOrdered() bool {
	flags := []bool{p.Contacted, p.CallBooked, p.CallHad, p.ContractSent, p.ContractSigned}
	for i := len(flags) - 1; i > 0; i-- {
		if flags[i] && !flags[i-1] {
			return false
		}
	}
	return true
}
