package reviewImporter

import (
	"testing"
	"time"

	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/googleUtil"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model/enum"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/yelpUtil"
)

func TestGoogleExternalId(t *testing.T) {
	target := model.BusinessKey{Pk: "IN#KA#BLR", Sk: "BIZ#rk-plumbing"}

	got := GoogleExternalId(target, 1700000000)
	expected := "google_IN#KA#BLR#BIZ#rk-plumbing_1700000000"
	if got != expected {
		t.Errorf("Expected %s, but got %s", expected, got)
	}

	// deterministic across calls
	if GoogleExternalId(target, 1700000000) != got {
		t.Errorf("Expected identical input to re-derive the same externalId")
	}

	// distinct timestamps produce distinct ids
	if GoogleExternalId(target, 1700000500) == got {
		t.Errorf("Expected distinct externalIds for distinct review timestamps")
	}
}

func TestGoogleNormalize(t *testing.T) {
	target := model.BusinessKey{Pk: "IN#KA#BLR", Sk: "BIZ#rk-plumbing"}
	syncedAt := time.Date(2023, 11, 15, 10, 0, 0, 0, time.UTC)
	raw := NewGoogleRawReview(googleUtil.PlaceReview{
		AuthorName:      "Asha",
		AuthorUrl:       "https://www.google.com/maps/contrib/1",
		ProfilePhotoUrl: "https://lh3.googleusercontent.com/a/1",
		Rating:          5,
		Text:            "Fixed my geyser in an hour",
		Time:            1700000000,
	})

	review, err := raw.Normalize(target, syncedAt)
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}

	if review.Source != enum.SourceGoogle {
		t.Errorf("Expected source GOOGLE, but got %s", review.Source)
	}
	if review.UserId != "SYSTEM" {
		t.Errorf("Expected system user, but got %s", review.UserId)
	}
	if review.Id != review.ExternalId {
		t.Errorf("Expected id %s to equal externalId %s", review.Id, review.ExternalId)
	}
	if !review.ReviewDate.Equal(time.Unix(1700000000, 0).UTC()) {
		t.Errorf("Expected review date from the provider timestamp, but got %v", review.ReviewDate)
	}
	if !review.LastSyncedAt.Equal(syncedAt) {
		t.Errorf("Expected lastSyncedAt %v, but got %v", syncedAt, review.LastSyncedAt)
	}
}

func TestYelpNormalize(t *testing.T) {
	target := model.BusinessKey{Pk: "IN#KA#BLR", Sk: "BIZ#rk-plumbing"}
	syncedAt := time.Now().UTC()
	raw := NewYelpRawReview(yelpUtil.Review{
		Id:          "yelp-review-xyz",
		Rating:      4,
		Text:        "Prompt and fairly priced",
		TimeCreated: "2023-11-14 18:30:00",
		Url:         "https://www.yelp.com/biz/rk-plumbing?hrid=yelp-review-xyz",
		User:        yelpUtil.ReviewUser{Name: "Maya", ImageUrl: "https://s3-media0.fl.yelpcdn.com/photo/1"},
	})

	review, err := raw.Normalize(target, syncedAt)
	if err != nil {
		t.Fatalf("Expected no error, but got %v", err)
	}

	if review.ExternalId != "yelp-review-xyz" {
		t.Errorf("Expected the provider-native id verbatim, but got %s", review.ExternalId)
	}
	if review.Source != enum.SourceYelp {
		t.Errorf("Expected source YELP, but got %s", review.Source)
	}
	if review.ReviewDate.IsZero() {
		t.Errorf("Expected parsed review date, but got zero time")
	}
}

func TestYelpNormalize_UnparseableTime(t *testing.T) {
	raw := NewYelpRawReview(yelpUtil.Review{
		Id:          "y2",
		Rating:      3,
		TimeCreated: "not-a-time",
		User:        yelpUtil.ReviewUser{Name: "Dev"},
	})

	_, err := raw.Normalize(model.BusinessKey{Pk: "p", Sk: "s"}, time.Now())
	if err == nil {
		t.Errorf("Expected error for unparseable review time, but got nil")
	}
}
