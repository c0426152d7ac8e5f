package usecase

import (
	"context"

	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/entity"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/integration/corewebhook"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/queue"
)

type WebhookSender interface {
	SendToCore(ctx context.Context, p *entity.Partner) corewebhook.Result
}

type CreatePartnerInput struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`

	Website      string `json:"website,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`

	// Defaults to "potential"; imports may supply "lead".
	Status            string   `json:"status,omitempty"`
	OpportunityType   string   `json:"opportunity_type,omitempty"`
	PartnershipType   string   `json:"partnership_type,omitempty"`
	PartnerTier       string   `json:"partner_tier,omitempty"`
	LifecycleStage    string   `json:"lifecycle_stage,omitempty"`
	UseForTags        []string `json:"use_for_tags,omitempty"`
	LifestyleCategory string   `json:"lifestyle_category,omitempty"`

	StripeAliases []string `json:"stripe_aliases,omitempty"`
}

// UpdatePartnerOutput carries the stored record plus the webhook delivery
// outcome. A failed delivery never fails the mutation; it is reported once
// here and the caller owns any retry.
type UpdatePartnerOutput struct {
	Partner  *entity.Partner    `json:"partner"`
	Delivery corewebhook.Result `json:"delivery"`
}

type CreatePartnerUseCase struct {
	Repo entity.PartnerRepositoryInterface
}

type UpdatePartnerUseCase struct {
	Repo    entity.PartnerRepositoryInterface
	Webhook WebhookSender
	Queue   queue.SignedProducerInterface
}
