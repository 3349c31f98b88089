package model

import "github.com/muthu-pencilcard/connectcard-backend/src/pkg/model/enum"

// Snapshot document constants. The key and cache directive are part of the
// public contract with mobile/offline clients and the CDN in front of them.
const (
	SnapshotVersion      = "1.0"
	SnapshotObjectKey    = "public/businesses.json"
	SnapshotCacheControl = "max-age=3600"
)

// BusinessCardSnapshot is the reduced public projection of a BusinessCard
// carried in the static snapshot. No PII beyond what the directory already
// serves publicly.
type BusinessCardSnapshot struct {
	Slug         string                `json:"slug" dynamodbav:"slug"`
	BusinessName string                `json:"businessName" dynamodbav:"businessName"`
	Category     string                `json:"category" dynamodbav:"category"`
	Phone        string                `json:"phone" dynamodbav:"phone"`
	City         string                `json:"city" dynamodbav:"city"`
	Location     *GeoPoint             `json:"location" dynamodbav:"location"`
	LogoUrl      string                `json:"logoUrl" dynamodbav:"logoUrl"`
	Tier         enum.SubscriptionTier `json:"tier" dynamodbav:"tier"`
	Country      enum.CountryCode      `json:"country" dynamodbav:"country"`
	Currency     enum.CurrencyCode     `json:"currency" dynamodbav:"currency"`
	Hours        *BusinessHours        `json:"hours" dynamodbav:"hours"`
}

type SnapshotMeta struct {
	GeneratedAt string `json:"generatedAt"` // ISO-8601
	Count       int    `json:"count"`
	Version     string `json:"version"`
}

// SnapshotDocument is the versioned JSON artifact published to object
// storage. Each publish fully replaces the previous object at the fixed key.
type SnapshotDocument struct {
	Meta SnapshotMeta           `json:"meta"`
	Data []BusinessCardSnapshot `json:"data"`
}
