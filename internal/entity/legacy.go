package entity

import (
	"encoding/json"
	"fmt"
)

// An older schema variant still shows up in imports: "company" instead of
// "name", "contact_number" instead of "contact_phone", "category" instead of
// "lifestyle_category". Its status and category enumerations are strict
// subsets of the canonical ones, so values pass through unchanged.
//
// partnerDocument decodes both shapes at once; NormalizePartner merges the
// legacy fields into the canonical ones. Running it on an already-canonical
// document is a no-op, so migration is idempotent.
type partnerDocument struct {
	Partner
	Company       string `json:"company,omitempty"`
	ContactNumber string `json:"contact_number,omitempty"`
	Category      string `json:"category,omitempty"`
}

// NormalizePartner decodes a canonical or legacy partner document into the
// canonical shape. Legacy fields never overwrite canonical ones that are
// already set, so no information is lost in either direction.
func NormalizePartner(raw []byte) (*Partner, error) {
	var doc partnerDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid partner document: %w", err)
	}

	p := doc.Partner
	if p.Name == "" {
		p.Name = doc.Company
	}
	if p.ContactPhone == "" {
		p.ContactPhone = doc.ContactNumber
	}
	if p.LifestyleCategory == "" {
		p.LifestyleCategory = doc.Category
	}

	return &p, nil
}
