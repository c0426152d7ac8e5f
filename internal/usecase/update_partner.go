package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/entity"
	appmiddleware "github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/http/middleware"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/queue"
)

func NewUpdatePartnerUseCase(
	repo entity.PartnerRepositoryInterface,
	webhook WebhookSender,
	producer queue.SignedProducerInterface,
) *UpdatePartnerUseCase {
	return &UpdatePartnerUseCase{
		Repo:    repo,
		Webhook: webhook,
		Queue:   producer,
	}
}

// Execute replaces the record with the given id by the candidate record,
// stamping status-transition timestamps, then notifies the core webhook and,
// on a fresh signing, the team queue. Delivery and publish failures never
// roll back the mutation.
func (uc *UpdatePartnerUseCase) Execute(ctx context.Context, id string, candidate *entity.Partner) (*UpdatePartnerOutput, error) {
	current, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrPartnerNotFound
	}

	now := time.Now()

	// Identity and creation time are immutable; replace-by-id cannot
	// move a record to a new id.
	candidate.ID = current.ID
	candidate.CreatedAt = current.CreatedAt

	// lead_date and signed_at are never retroactively cleared.
	if candidate.LeadDate == nil {
		candidate.LeadDate = current.LeadDate
	}
	if candidate.SignedAt == nil {
		candidate.SignedAt = current.SignedAt
	}

	statusChanged := candidate.Status != current.Status
	freshlySigned := statusChanged && candidate.Status == entity.StatusSigned && current.SignedAt == nil

	if statusChanged {
		candidate.ApplyStatusChange(candidate.Status, now)
	} else {
		candidate.UpdatedAt = now
	}

	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	if err := uc.Repo.Replace(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to replace partner: %w", err)
	}

	if statusChanged {
		appmiddleware.RecordStatusTransition(current.Status, candidate.Status)
	}
	if freshlySigned {
		appmiddleware.RecordPartnerSigned()
	}

	delivery := uc.Webhook.SendToCore(ctx, candidate)
	if delivery.Success {
		appmiddleware.RecordWebhookDelivery("success")
	} else {
		appmiddleware.RecordWebhookDelivery("failure")
		log.Printf("⚠️ Webhook delivery failed for partner %s: %s", candidate.ID, delivery.Error)
	}

	if freshlySigned && uc.Queue != nil {
		payload := queue.SignedPayload{
			PartnerID:    candidate.ID,
			Name:         candidate.Name,
			ContactName:  candidate.ContactName,
			ContactEmail: candidate.ContactEmail,
			PartnerTier:  candidate.PartnerTier,
			SignedAt:     *candidate.SignedAt,
			Origin:       "PARTNER_UPDATE",
		}
		if err := uc.Queue.PublishSigned(ctx, payload); err != nil {
			// Record is stored; the notification is best-effort.
			log.Printf("⚠️ CRITICAL: partner %s signed but queue publish failed: %v", candidate.ID, err)
		}
	}

	return &UpdatePartnerOutput{Partner: candidate, Delivery: delivery}, nil
}
