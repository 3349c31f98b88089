package yelpUtil

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/cenkalti/backoff/v4"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/exception"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/util"
	"go.uber.org/zap"
	"io"
	"net/http"
	"time"
)

const reviewsEndpointFormat = "https://api.yelp.com/v3/businesses/%s/reviews"

type Yelp struct {
	apiKey     string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

func NewYelp(logger *zap.SugaredLogger, apiKey string) *Yelp {
	return &Yelp{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger,
	}
}

// FetchReviews returns the reviews Yelp serves for the business. The Fusion
// endpoint caps the list at three review excerpts per call.
func (y *Yelp) FetchReviews(ctx context.Context, businessId string) ([]Review, error) {
	if util.IsEmptyString(y.apiKey) {
		return nil, exception.NewCredentialMissingException("Yelp API key is not configured", nil)
	}

	requestUrl := fmt.Sprintf(reviewsEndpointFormat, businessId)

	var reviewsResponse ReviewsResponse
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "Bearer "+y.apiKey)

		resp, err := y.httpClient.Do(req)
		if err != nil {
			y.log.Warnf("Transient error fetching Yelp reviews for business %s: %v", businessId, err)
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if err := json.Unmarshal(body, &reviewsResponse); err != nil {
			return backoff.Permanent(exception.NewProviderRejectedException("malformed Yelp reviews response", err))
		}

		if resp.StatusCode != http.StatusOK {
			description := "Unknown error"
			if reviewsResponse.Error != nil && !util.IsEmptyString(reviewsResponse.Error.Description) {
				description = reviewsResponse.Error.Description
			}
			if resp.StatusCode >= http.StatusInternalServerError {
				y.log.Warnf("Yelp server error %d for business %s: %s", resp.StatusCode, businessId, description)
				return fmt.Errorf("yelp server error %d: %s", resp.StatusCode, description)
			}
			return backoff.Permanent(exception.NewProviderRejectedException(
				fmt.Sprintf("Yelp API error: %s", description), nil))
		}
		return nil
	}

	// Retry unwraps Permanent errors, so a rejection surfaces here as the
	// exception itself; anything else was a transport failure.
	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx))
	if err != nil {
		if rejected, ok := err.(*exception.ProviderRejectedException); ok {
			return nil, rejected
		}
		return nil, exception.NewProviderUnavailableException(fmt.Sprintf("Yelp unreachable for business %s", businessId), err)
	}

	return reviewsResponse.Reviews, nil
}
