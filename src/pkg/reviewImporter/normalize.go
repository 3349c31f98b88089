package reviewImporter

import (
	"fmt"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/googleUtil"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model/enum"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/yelpUtil"
	"time"
)

// RawReview is one provider-shaped review awaiting normalization into the
// internal Review form. One implementation per provider rather than string
// tags branched on at the call sites.
type RawReview interface {
	Normalize(target model.BusinessKey, syncedAt time.Time) (model.Review, error)
}

type googleRawReview struct {
	raw googleUtil.PlaceReview
}

func NewGoogleRawReview(raw googleUtil.PlaceReview) RawReview {
	return googleRawReview{raw: raw}
}

// GoogleExternalId synthesizes a deterministic dedup key for a Google review.
// Google serves no stable review id, so the business key plus the reported
// timestamp stands in: the same review re-derives the same id on every
// import. Two reviews of one business stamped with the identical second
// would collide and the later import would be dropped; Google's serving
// behavior has not surfaced that case, so the scheme is kept as is.
func GoogleExternalId(target model.BusinessKey, reviewTime int64) string {
	return fmt.Sprintf("google_%s_%d", target.String(), reviewTime)
}

func (g googleRawReview) Normalize(target model.BusinessKey, syncedAt time.Time) (model.Review, error) {
	return model.NewImportedReview(model.ImportedReviewInput{
		Target:         target,
		Source:         enum.SourceGoogle,
		ExternalId:     GoogleExternalId(target, g.raw.Time),
		ExternalUrl:    g.raw.AuthorUrl,
		AuthorName:     g.raw.AuthorName,
		AuthorPhotoUrl: g.raw.ProfilePhotoUrl,
		Rating:         g.raw.Rating,
		Comment:        g.raw.Text,
		ReviewDate:     time.Unix(g.raw.Time, 0).UTC(),
		SyncedAt:       syncedAt,
	})
}

type yelpRawReview struct {
	raw yelpUtil.Review
}

func NewYelpRawReview(raw yelpUtil.Review) RawReview {
	return yelpRawReview{raw: raw}
}

func (y yelpRawReview) Normalize(target model.BusinessKey, syncedAt time.Time) (model.Review, error) {
	reviewDate, err := y.raw.CreatedTime()
	if err != nil {
		return model.Review{}, model.NewInvalidReviewError(
			fmt.Sprintf("unparseable Yelp review time '%s' for review %s", y.raw.TimeCreated, y.raw.Id))
	}

	return model.NewImportedReview(model.ImportedReviewInput{
		Target:         target,
		Source:         enum.SourceYelp,
		ExternalId:     y.raw.Id, // provider-native stable id, used verbatim
		ExternalUrl:    y.raw.Url,
		AuthorName:     y.raw.User.Name,
		AuthorPhotoUrl: y.raw.User.ImageUrl,
		Rating:         y.raw.Rating,
		Comment:        y.raw.Text,
		ReviewDate:     reviewDate,
		SyncedAt:       syncedAt,
	})
}
