package model

import (
	"fmt"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model/enum"
)

// BusinessCardSkPrefix is the sort-key namespace of card items. Bookings,
// offers and other entities share the business partition under their own
// prefixes, so any whole-table traversal for cards must fence on this.
const BusinessCardSkPrefix = "BIZ#"

// BusinessKey addresses a single BusinessCard in the directory table.
// Pk is the geographic hierarchy (e.g. "IN#KA#BLR"), Sk the entity
// discriminator (e.g. "BIZ#rk-plumbing").
type BusinessKey struct {
	Pk string `json:"businessPk" dynamodbav:"pk" validate:"required"`
	Sk string `json:"businessSk" dynamodbav:"sk" validate:"required"`
}

func (k BusinessKey) String() string {
	return k.Pk + "#" + k.Sk
}

type GeoPoint struct {
	Lat float64 `json:"lat" dynamodbav:"lat"`
	Lng float64 `json:"lng" dynamodbav:"lng"`
}

// BusinessCard is a public directory entry. Owned by a ConnectCard account,
// mutated by owner edits and system-incremented counters, never hard-deleted.
type BusinessCard struct {
	Pk   string `dynamodbav:"pk" validate:"required"` // partition key
	Sk   string `dynamodbav:"sk" validate:"required"` // sort key
	Slug string `dynamodbav:"slug" validate:"required"`

	// Identity
	BusinessName string `dynamodbav:"businessName" validate:"required"`
	Tagline      string `dynamodbav:"tagline,omitempty"`
	OwnerUserId  string `dynamodbav:"ownerUserId"`

	// Contact
	Phone    string `dynamodbav:"phone" validate:"required"`
	Email    string `dynamodbav:"email,omitempty" validate:"omitempty,email"`
	Website  string `dynamodbav:"website,omitempty" validate:"omitempty,url"`
	Whatsapp string `dynamodbav:"whatsapp,omitempty"`

	// Location & SEO
	Category          string    `dynamodbav:"category" validate:"required"`
	Address           string    `dynamodbav:"address,omitempty"`
	City              string    `dynamodbav:"city,omitempty"`
	Location          *GeoPoint `dynamodbav:"location,omitempty"`
	ServiceAreaRadius int       `dynamodbav:"serviceAreaRadius,omitempty"` // km

	// Global pricing
	Country  enum.CountryCode      `dynamodbav:"country,omitempty" validate:"omitempty,oneof=IN US UK AE"`
	Currency enum.CurrencyCode     `dynamodbav:"currency,omitempty" validate:"omitempty,oneof=INR USD GBP AED"`
	Tier     enum.SubscriptionTier `dynamodbav:"tier,omitempty" validate:"omitempty,oneof=STARTER PROFESSIONAL ENTERPRISE"`

	// Media (object storage keys)
	LogoUrl       string   `dynamodbav:"logoUrl,omitempty"`
	CoverPhotoUrl string   `dynamodbav:"coverPhotoUrl,omitempty"`
	GalleryUrls   []string `dynamodbav:"galleryUrls,omitempty"`

	// Operational
	Hours      *BusinessHours `dynamodbav:"hours,omitempty"`
	IsVerified bool           `dynamodbav:"isVerified"`

	// Analytics counters. Incremented with atomic ADD updates only, never
	// read-modify-write (lost updates under concurrent viewers otherwise).
	ViewCount          int `dynamodbav:"viewCount"`
	SaveCount          int `dynamodbav:"saveCount"`
	CatalogueViewCount int `dynamodbav:"catalogueViewCount"`

	// External platform identifiers
	GooglePlaceId  string `dynamodbav:"googlePlaceId,omitempty"`
	YelpBusinessId string `dynamodbav:"yelpBusinessId,omitempty"`

	CreatedAt int64 `dynamodbav:"createdAt"`
	UpdatedAt int64 `dynamodbav:"updatedAt"`
}

func (b BusinessCard) Key() BusinessKey {
	return BusinessKey{Pk: b.Pk, Sk: b.Sk}
}

// CounterNames lists the BusinessCard attributes that may be atomically
// incremented through BusinessCardDao.IncrementCounter.
var CounterNames = []string{"viewCount", "saveCount", "catalogueViewCount"}

func ValidateCounterName(name string) error {
	for _, v := range CounterNames {
		if v == name {
			return nil
		}
	}
	return fmt.Errorf("'%s' is not an incrementable BusinessCard counter", name)
}

// BusinessCardSeed is the prefill payload produced by the Google Place
// importer. The owner reviews and confirms it before a card is created.
type BusinessCardSeed struct {
	BusinessName     string   `json:"businessName"`
	Phone            string   `json:"phone"`
	Website          string   `json:"website"`
	Address          string   `json:"address"`
	City             string   `json:"city"`
	Country          string   `json:"country"`
	Location         GeoPoint `json:"location"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Photos           []string `json:"photos"`
	GooglePlaceId    string   `json:"googlePlaceId"`
	GoogleMapsUrl    string   `json:"googleMapsUrl"`
	Hours            []string `json:"hours"` // provider weekday text, raw
	Category         string   `json:"category"`
}
