package googleUtil

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
	"net/url"
	"time"
)

const placeDetailsEndpoint = "https://maps.googleapis.com/maps/api/place/details/json"

const (
	reviewFields       = "reviews"
	placeDetailsFields = "name,formatted_address,international_phone_number,website,geometry,photos,rating,user_ratings_total,url,opening_hours,types,address_components"
)

type Google struct {
	apiKey     string
	baseUrl    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

func NewGoogle(logger *zap.SugaredLogger, apiKey string) *Google {
	return &Google{
		apiKey:     apiKey,
		baseUrl:    placeDetailsEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger,
	}
}

// FetchReviews returns the reviews Google currently serves for the place.
// The endpoint returns at most a handful of recent reviews per call.
func (g *Google) FetchReviews(ctx context.Context, placeId string) ([]PlaceReview, error) {
	details, err := g.fetchDetails(ctx, placeId, reviewFields)
	if err != nil {
		return nil, err
	}
	return details.Reviews, nil
}

// FetchPlaceDetails returns the business profile fields used to prefill a
// BusinessCard.
func (g *Google) FetchPlaceDetails(ctx context.Context, placeId string) (PlaceDetails, error) {
	return g.fetchDetails(ctx, placeId, placeDetailsFields)
}

func (g *Google) fetchDetails(ctx context.Context, placeId string, fields string) (PlaceDetails, error) {
	if util.IsEmptyString(g.apiKey) {
		return PlaceDetails{}, exception.NewCredentialMissingException("Google Places API key is not configured", nil)
	}

	query := url.Values{}
	query.Set("place_id", placeId)
	query.Set("fields", fields)
	query.Set("key", g.apiKey)
	requestUrl := g.baseUrl + "?" + query.Encode()

	var detailsResponse PlaceDetailsResponse
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := g.httpClient.Do(req)
		if err != nil {
			g.log.Warnf("Transient error fetching place details for placeId %s: %v", placeId, err)
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		// 5xx bodies are often HTML error pages; retry before attempting to
		// decode, otherwise a transient outage reads as a malformed response.
		if resp.StatusCode >= http.StatusInternalServerError {
			g.log.Warnf("Google Places returned %d for placeId %s, retrying", resp.StatusCode, placeId)
			return fmt.Errorf("google server error %d: %s", resp.StatusCode, body)
		}

		if err := json.Unmarshal(body, &detailsResponse); err != nil {
			return backoff.Permanent(exception.NewProviderRejectedException("malformed place details response", err))
		}
		return nil
	}

	// Retry unwraps Permanent errors, so a rejection surfaces here as the
	// exception itself; anything else was a transport failure.
	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx))
	if err != nil {
		if rejected, ok := err.(*exception.ProviderRejectedException); ok {
			return PlaceDetails{}, rejected
		}
		return PlaceDetails{}, exception.NewProviderUnavailableException(fmt.Sprintf("Google Places unreachable for placeId %s", placeId), err)
	}

	if detailsResponse.Status != "OK" {
		return PlaceDetails{}, exception.NewProviderRejectedException(
			fmt.Sprintf("Google API error: %s - %s", detailsResponse.Status, orUnknown(detailsResponse.ErrorMessage)), nil)
	}

	return detailsResponse.Result, nil
}

func orUnknown(message string) string {
	if util.IsEmptyString(message) {
		return "Unknown error"
	}
	return message
}

// PhotoUrl builds a retrievable photo URL from a photo reference. Clients
// should proxy or download these; hotlinked references can expire.
func (g *Google) PhotoUrl(photoReference string, maxWidth int) string {
	query := url.Values{}
	query.Set("maxwidth", fmt.Sprintf("%d", maxWidth))
	query.Set("photoreference", photoReference)
	query.Set("key", g.apiKey)
	return "https://maps.googleapis.com/maps/api/place/photo?" + query.Encode()
}
