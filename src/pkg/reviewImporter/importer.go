package reviewImporter

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/exception"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/googleUtil"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/util"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/yelpUtil"
	"go.uber.org/zap"
	"time"
)

// ReviewStore is the slice of the review DAO the importer consumes.
type ReviewStore interface {
	GetReviewByExternalId(externalId string) (*model.Review, error)
	CreateImportedReview(review model.Review) error
	TouchLastSyncedAt(reviewId string, syncedAt time.Time) error
}

type GoogleReviewFetcher interface {
	FetchReviews(ctx context.Context, placeId string) ([]googleUtil.PlaceReview, error)
}

type YelpReviewFetcher interface {
	FetchReviews(ctx context.Context, businessId string) ([]yelpUtil.Review, error)
}

type ImportInput struct {
	BusinessPk     string `json:"businessPk" validate:"required"`
	BusinessSk     string `json:"businessSk" validate:"required"`
	GooglePlaceId  string `json:"googlePlaceId,omitempty"`
	YelpBusinessId string `json:"yelpBusinessId,omitempty"`
}

func (i ImportInput) Target() model.BusinessKey {
	return model.BusinessKey{Pk: i.BusinessPk, Sk: i.BusinessSk}
}

type ImportSummary struct {
	RunId         string   `json:"runId"`
	GoogleReviews int      `json:"googleReviews"`
	YelpReviews   int      `json:"yelpReviews"`
	Errors        []string `json:"errors"`
}

type Importer struct {
	store  ReviewStore
	google GoogleReviewFetcher
	yelp   YelpReviewFetcher
	log    *zap.SugaredLogger
}

func NewImporter(store ReviewStore, google GoogleReviewFetcher, yelp YelpReviewFetcher, logger *zap.SugaredLogger) *Importer {
	return &Importer{
		store:  store,
		google: google,
		yelp:   yelp,
		log:    logger,
	}
}

// Import pulls reviews from each configured source, normalizes them and
// persists the ones not seen before. Sources fail independently: an error on
// one is folded into the summary and never blocks the other.
func (i *Importer) Import(ctx context.Context, input ImportInput) ImportSummary {
	summary := ImportSummary{
		RunId:  uuid.New().String(),
		Errors: []string{},
	}
	target := input.Target()
	syncedAt := time.Now().UTC()

	if !util.IsEmptyString(input.GooglePlaceId) {
		raws, err := i.fetchGoogle(ctx, input.GooglePlaceId)
		if err != nil {
			i.log.Errorf("Google import failed for business %s: %v", target, err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("Google import failed: %v", err))
		} else {
			imported, importErrors := i.importRaws(raws, target, syncedAt)
			summary.GoogleReviews = imported
			summary.Errors = append(summary.Errors, importErrors...)
		}
	}

	if !util.IsEmptyString(input.YelpBusinessId) {
		raws, err := i.fetchYelp(ctx, input.YelpBusinessId)
		if err != nil {
			i.log.Errorf("Yelp import failed for business %s: %v", target, err)
			summary.Errors = append(summary.Errors, fmt.Sprintf("Yelp import failed: %v", err))
		} else {
			imported, importErrors := i.importRaws(raws, target, syncedAt)
			summary.YelpReviews = imported
			summary.Errors = append(summary.Errors, importErrors...)
		}
	}

	i.log.Infof("Import run %s for business %s complete: %d Google, %d Yelp, %d errors",
		summary.RunId, target, summary.GoogleReviews, summary.YelpReviews, len(summary.Errors))

	return summary
}

func (i *Importer) fetchGoogle(ctx context.Context, placeId string) ([]RawReview, error) {
	reviews, err := i.google.FetchReviews(ctx, placeId)
	if err != nil {
		return nil, err
	}

	raws := make([]RawReview, 0, len(reviews))
	for _, review := range reviews {
		raws = append(raws, NewGoogleRawReview(review))
	}
	return raws, nil
}

func (i *Importer) fetchYelp(ctx context.Context, businessId string) ([]RawReview, error) {
	reviews, err := i.yelp.FetchReviews(ctx, businessId)
	if err != nil {
		return nil, err
	}

	raws := make([]RawReview, 0, len(reviews))
	for _, review := range reviews {
		raws = append(raws, NewYelpRawReview(review))
	}
	return raws, nil
}

// importRaws runs the dedupe-check-then-persist pipeline for one source's
// reviews. The conditional put is the atomicity guarantee against concurrent
// imports of the same externalId; losing that race counts as a skip, not an
// error.
func (i *Importer) importRaws(raws []RawReview, target model.BusinessKey, syncedAt time.Time) (int, []string) {
	imported := 0
	var importErrors []string

	for _, raw := range raws {
		review, err := raw.Normalize(target, syncedAt)
		if err != nil {
			importErrors = append(importErrors, fmt.Sprintf("skipping malformed review for business %s: %v", target, err))
			continue
		}

		existing, err := i.store.GetReviewByExternalId(review.ExternalId)
		if err != nil {
			importErrors = append(importErrors, fmt.Sprintf("dedup lookup failed for externalId %s: %v", review.ExternalId, err))
			continue
		}
		if existing != nil {
			i.log.Debugf("Review %s already imported, refreshing lastSyncedAt", review.ExternalId)
			if touchErr := i.store.TouchLastSyncedAt(existing.Id, syncedAt); touchErr != nil {
				// the review itself is intact, so a failed touch is not a summary error
				i.log.Warnf("Unable to refresh lastSyncedAt for review %s: %v", existing.Id, touchErr)
			}
			continue
		}

		err = i.store.CreateImportedReview(review)
		if err != nil {
			if _, ok := err.(*exception.ReviewAlreadyExistException); ok {
				i.log.Debugf("Review %s was imported concurrently, skipping", review.ExternalId)
				continue
			}
			importErrors = append(importErrors, fmt.Sprintf("persist failed for externalId %s: %v", review.ExternalId, err))
			continue
		}
		imported++
	}

	return imported, importErrors
}
