package model

import (
	"time"
)

// BookingSkPrefix namespaces bookings within a business partition. The ISO
// timestamp after it makes lexicographic sort-key order chronological, so a
// range query from a prefix returns upcoming bookings in date order.
const BookingSkPrefix = "BOOKING#"

// Booking is an appointment request against a BusinessCard, stored in the
// same partition as the card itself.
type Booking struct {
	Pk string `dynamodbav:"pk" validate:"required"`
	Sk string `dynamodbav:"sk" validate:"required"` // BOOKING#<iso date>#<id>

	CustomerName  string `dynamodbav:"customerName" validate:"required"`
	CustomerPhone string `dynamodbav:"customerPhone" validate:"required"`
	ServiceName   string `dynamodbav:"serviceName,omitempty"`
	Notes         string `dynamodbav:"notes,omitempty"`

	BookingDate time.Time `dynamodbav:"bookingDate,unixtime" validate:"required"`
	Status      string    `dynamodbav:"status" validate:"oneof=PENDING CONFIRMED CANCELLED"`

	CreatedAt time.Time `dynamodbav:"createdAt,unixtime"`
}

func NewBookingSk(bookingDate time.Time, bookingId string) string {
	return BookingSkPrefix + bookingDate.UTC().Format(time.RFC3339) + "#" + bookingId
}

// BookingSkFrom is the range-query lower bound for bookings at or after the
// given instant.
func BookingSkFrom(from time.Time) string {
	return BookingSkPrefix + from.UTC().Format(time.RFC3339)
}

// BookingSkUpperBound sorts after every real booking sort key (RFC 3339
// timestamps start with a digit) while staying inside the BOOKING# prefix.
const BookingSkUpperBound = BookingSkPrefix + "~"
