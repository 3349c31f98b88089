package googleUtil

// Wire shapes for the Google Places Details endpoint. Field names follow the
// provider's snake_case payload.

type PlaceDetailsResponse struct {
	Result       PlaceDetails `json:"result"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
}

type PlaceDetails struct {
	Name                     string             `json:"name"`
	FormattedAddress         string             `json:"formatted_address"`
	InternationalPhoneNumber string             `json:"international_phone_number"`
	Website                  string             `json:"website"`
	Geometry                 *PlaceGeometry     `json:"geometry,omitempty"`
	Photos                   []PlacePhoto       `json:"photos,omitempty"`
	Rating                   float64            `json:"rating"`
	UserRatingsTotal         int                `json:"user_ratings_total"`
	Url                      string             `json:"url"`
	OpeningHours             *PlaceOpeningHours `json:"opening_hours,omitempty"`
	Types                    []string           `json:"types,omitempty"`
	AddressComponents        []AddressComponent `json:"address_components,omitempty"`
	Reviews                  []PlaceReview      `json:"reviews,omitempty"`
}

type PlaceGeometry struct {
	Location PlaceLatLng `json:"location"`
}

type PlaceLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PlacePhoto struct {
	PhotoReference string `json:"photo_reference"`
}

type PlaceOpeningHours struct {
	WeekdayText []string `json:"weekday_text"`
}

type AddressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

type PlaceReview struct {
	AuthorName              string `json:"author_name"`
	AuthorUrl               string `json:"author_url,omitempty"`
	ProfilePhotoUrl         string `json:"profile_photo_url,omitempty"`
	Rating                  int    `json:"rating"`
	Text                    string `json:"text"`
	Time                    int64  `json:"time"` // unix seconds; no provider-native review id exists
	RelativeTimeDescription string `json:"relative_time_description,omitempty"`
}

// FindAddressComponent returns the long name of the first component carrying
// the given type, or "".
func (d PlaceDetails) FindAddressComponent(componentType string) string {
	for _, component := range d.AddressComponents {
		for _, t := range component.Types {
			if t == componentType {
				return component.LongName
			}
		}
	}
	return ""
}
