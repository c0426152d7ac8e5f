package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/entity"
)

func NewCreatePartnerUseCase(repo entity.PartnerRepositoryInterface) *CreatePartnerUseCase {
	return &CreatePartnerUseCase{Repo: repo}
}

// Execute builds and stores a new partner record. IDs are externally
// assigned when present (imports); form submissions get a fresh UUID.
func (uc *CreatePartnerUseCase) Execute(ctx context.Context, input CreatePartnerInput) (*entity.Partner, error) {
	now := time.Now()

	partner := &entity.Partner{
		ID:                input.ID,
		Name:              input.Name,
		Notes:             input.Notes,
		Website:           input.Website,
		ContactName:       input.ContactName,
		ContactEmail:      input.ContactEmail,
		ContactPhone:      input.ContactPhone,
		Status:            input.Status,
		OpportunityType:   input.OpportunityType,
		PartnershipType:   input.PartnershipType,
		PartnerTier:       input.PartnerTier,
		LifecycleStage:    input.LifecycleStage,
		UseForTags:        input.UseForTags,
		LifestyleCategory: input.LifestyleCategory,
		StripeAliases:     input.StripeAliases,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if partner.ID == "" {
		partner.ID = uuid.New().String()
	}
	if partner.Status == "" {
		partner.Status = entity.StatusPotential
	}
	if partner.Status == entity.StatusLead {
		partner.LeadDate = &now
	}

	if err := partner.Validate(); err != nil {
		return nil, err
	}

	if err := uc.Repo.Create(ctx, partner); err != nil {
		return nil, fmt.Errorf("failed to store partner: %w", err)
	}

	return partner, nil
}
