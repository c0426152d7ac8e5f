package usecase

import (
	"time"

	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/entity"
)

// PipelineStats is a derived snapshot: one bucket per status plus the total.
// Computed on demand, never persisted.
type PipelineStats struct {
	Closed      int `json:"closed"`
	Potential   int `json:"potential"`
	Contacted   int `json:"contacted"`
	Leads       int `json:"leads"`
	Negotiation int `json:"negotiation"`
	Signed      int `json:"signed"`
	Total       int `json:"total"`
}

// WeeklyStats covers partners created inside a reporting window: status
// counts, checkpoint counts and the average days from creation to signing.
type WeeklyStats struct {
	NewLeads      int `json:"new_leads"`
	InNegotiation int `json:"in_negotiation"`
	Signed        int `json:"signed"`
	Contacted     int `json:"contacted"`
	Potential     int `json:"potential"`

	OutreachContacted int `json:"outreach_contacted"`
	CallsBooked       int `json:"calls_booked"`
	CallsHad          int `json:"calls_had"`
	ContractsSent     int `json:"contracts_sent"`
	ContractsSigned   int `json:"contracts_signed"`

	// Mean of (signed_at - created) in fractional days across partners in
	// the window with a signed_at. Zero when none signed (policy, not an
	// error).
	AvgDaysToSign float64 `json:"avg_days_to_sign"`
	Total         int     `json:"total"`
}

// ComputePipelineStats buckets a partner collection by status in a single
// pass. Pure: an empty collection yields all zeros.
func ComputePipelineStats(partners []entity.Partner) PipelineStats {
	stats := PipelineStats{Total: len(partners)}
	for _, p := range partners {
		switch p.Status {
		case entity.StatusClosed:
			stats.Closed++
		case entity.StatusPotential:
			stats.Potential++
		case entity.StatusContacted:
			stats.Contacted++
		case entity.StatusLead:
			stats.Leads++
		case entity.StatusNegotiation:
			stats.Negotiation++
		case entity.StatusSigned:
			stats.Signed++
		}
	}
	return stats
}

// ComputeWeeklyStats aggregates partners whose created timestamp falls in
// [windowStart, windowEnd). The input is never mutated.
func ComputeWeeklyStats(partners []entity.Partner, windowStart, windowEnd time.Time) WeeklyStats {
	var stats WeeklyStats

	var daysToSign float64
	var signedCount int

	for _, p := range partners {
		if p.CreatedAt.Before(windowStart) || !p.CreatedAt.Before(windowEnd) {
			continue
		}
		stats.Total++

		switch p.Status {
		case entity.StatusLead:
			stats.NewLeads++
		case entity.StatusNegotiation:
			stats.InNegotiation++
		case entity.StatusSigned:
			stats.Signed++
		case entity.StatusContacted:
			stats.Contacted++
		case entity.StatusPotential:
			stats.Potential++
		}

		if p.Contacted {
			stats.OutreachContacted++
		}
		if p.CallBooked {
			stats.CallsBooked++
		}
		if p.CallHad {
			stats.CallsHad++
		}
		if p.ContractSent {
			stats.ContractsSent++
		}
		if p.ContractSigned {
			stats.ContractsSigned++
		}

		if p.SignedAt != nil {
			daysToSign += p.SignedAt.Sub(p.CreatedAt).Hours() / 24
			signedCount++
		}
	}

	if signedCount > 0 {
		stats.AvgDaysToSign = daysToSign / float64(signedCount)
	}

	return stats
}
