package model

import "time"

const OfferSkPrefix = "OFFER#"

// Offer is a time-bounded promotion attached to a BusinessCard, stored in
// the card's partition.
type Offer struct {
	Pk string `dynamodbav:"pk" validate:"required"`
	Sk string `dynamodbav:"sk" validate:"required"` // OFFER#<id>

	Title       string `dynamodbav:"title" validate:"required"`
	Description string `dynamodbav:"description,omitempty"`
	DiscountPct int    `dynamodbav:"discountPct,omitempty" validate:"min=0,max=100"`

	ValidFrom  time.Time `dynamodbav:"validFrom,unixtime"`
	ValidUntil time.Time `dynamodbav:"validUntil,unixtime"`
	IsActive   bool      `dynamodbav:"isActive"`

	CreatedAt time.Time `dynamodbav:"createdAt,unixtime"`
}

func NewOfferSk(offerId string) string {
	return OfferSkPrefix + offerId
}

// IsLive reports whether the offer should be shown at the given instant.
func (o Offer) IsLive(now time.Time) bool {
	if !o.IsActive {
		return false
	}
	if !o.ValidFrom.IsZero() && now.Before(o.ValidFrom) {
		return false
	}
	if !o.ValidUntil.IsZero() && now.After(o.ValidUntil) {
		return false
	}
	return true
}
