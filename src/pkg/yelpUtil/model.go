package yelpUtil

import "time"

// Wire shapes for the Yelp Fusion business reviews endpoint.

type ReviewsResponse struct {
	Reviews []Review  `json:"reviews"`
	Total   int       `json:"total"`
	Error   *ApiError `json:"error,omitempty"`
}

type ApiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type Review struct {
	Id          string     `json:"id"` // provider-native stable id
	Rating      int        `json:"rating"`
	Text        string     `json:"text"`
	TimeCreated string     `json:"time_created"`
	Url         string     `json:"url"`
	User        ReviewUser `json:"user"`
}

type ReviewUser struct {
	Name       string `json:"name"`
	ImageUrl   string `json:"image_url,omitempty"`
	ProfileUrl string `json:"profile_url,omitempty"`
}

// Yelp serves created times as "2006-01-02 15:04:05"; tolerate RFC 3339 too.
var timeCreatedLayouts = []string{"2006-01-02 15:04:05", time.RFC3339}

func (r Review) CreatedTime() (time.Time, error) {
	var err error
	for _, layout := range timeCreatedLayouts {
		var parsed time.Time
		parsed, err = time.Parse(layout, r.TimeCreated)
		if err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, err
}
