package model

import (
	"github.com/go-playground/validator/v10"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model/enum"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/util"
	"time"
)

// Review is one rating of a BusinessCard, either left in-app or imported
// from an external provider.
//
// Imported reviews carry an ExternalId (the dedup key) and are attributed to
// the sentinel system user. They are never mutated after creation except for
// lastSyncedAt, which is refreshed when a re-import encounters them.
type Review struct {
	Id         string `dynamodbav:"id" validate:"required"` // partition key; equals ExternalId for imported reviews
	BusinessPk string `dynamodbav:"businessPk" validate:"required"`
	BusinessSk string `dynamodbav:"businessSk" validate:"required"`

	// Composite attribute backing the per-business query index.
	BusinessKey string `dynamodbav:"businessKey" validate:"required"`

	UserId  string      `dynamodbav:"userId" validate:"required"`
	Rating  int         `dynamodbav:"rating" validate:"min=1,max=5"`
	Comment string      `dynamodbav:"comment,omitempty"`
	Source  enum.Source `dynamodbav:"source" validate:"oneof=CONNECTCARD GOOGLE YELP"`

	// Import-only fields. ExternalId is absent for in-app reviews and
	// globally unique among stored reviews when present.
	ExternalId     string `dynamodbav:"externalId,omitempty" validate:"required_if=UserId SYSTEM"`
	ExternalUrl    string `dynamodbav:"externalUrl,omitempty"`
	AuthorName     string `dynamodbav:"authorName,omitempty"`
	AuthorPhotoUrl string `dynamodbav:"authorPhotoUrl,omitempty"`

	PhotoUrl   string `dynamodbav:"photoUrl,omitempty"` // in-app proof-of-work photo
	IsVerified bool   `dynamodbav:"isVerified"`

	ReviewDate   time.Time `dynamodbav:"reviewDate,unixtime" validate:"required"`
	LastSyncedAt time.Time `dynamodbav:"lastSyncedAt,unixtime"`
	CreatedAt    time.Time `dynamodbav:"createdAt,unixtime"`
}

var reviewValidate = validator.New(validator.WithRequiredStructEnabled())

type ImportedReviewInput struct {
	Target         BusinessKey
	Source         enum.Source
	ExternalId     string
	ExternalUrl    string
	AuthorName     string
	AuthorPhotoUrl string
	Rating         int
	Comment        string
	ReviewDate     time.Time
	SyncedAt       time.Time
}

// NewImportedReview builds a Review attributed to the sentinel system user.
// The external id doubles as the item id so the store's insert-if-absent
// condition on the key is exactly the uniqueness guard on ExternalId.
func NewImportedReview(input ImportedReviewInput) (Review, error) {
	review := Review{
		Id:             input.ExternalId,
		BusinessPk:     input.Target.Pk,
		BusinessSk:     input.Target.Sk,
		BusinessKey:    input.Target.String(),
		UserId:         util.SystemUserId,
		Rating:         input.Rating,
		Comment:        input.Comment,
		Source:         input.Source,
		ExternalId:     input.ExternalId,
		ExternalUrl:    input.ExternalUrl,
		AuthorName:     input.AuthorName,
		AuthorPhotoUrl: input.AuthorPhotoUrl,
		IsVerified:     false,
		ReviewDate:     input.ReviewDate,
		LastSyncedAt:   input.SyncedAt,
		CreatedAt:      input.SyncedAt,
	}

	if !review.Source.IsImported() {
		return Review{}, NewInvalidReviewError("imported review source must be GOOGLE or YELP, got " + review.Source.String())
	}

	err := reviewValidate.Struct(review)
	if err != nil {
		return Review{}, err
	}

	return review, nil
}

func ValidateReview(review *Review) error {
	return reviewValidate.Struct(review)
}

type InvalidReviewError struct {
	Reason string
}

func NewInvalidReviewError(reason string) *InvalidReviewError {
	return &InvalidReviewError{Reason: reason}
}

func (e InvalidReviewError) Error() string {
	return "invalid review: " + e.Reason
}
