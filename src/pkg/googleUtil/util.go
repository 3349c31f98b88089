package googleUtil

import (
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/model"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/util"
)

const maxSeedPhotos = 5

// ToBusinessCardSeed reshapes Google place details into the BusinessCard
// prefill payload served to the owner-onboarding flow.
func (g *Google) ToBusinessCardSeed(placeId string, details PlaceDetails) model.BusinessCardSeed {
	city := details.FindAddressComponent("locality")
	if util.IsEmptyString(city) {
		city = details.FindAddressComponent("administrative_area_level_2")
	}
	if util.IsEmptyString(city) {
		city = details.FindAddressComponent("administrative_area_level_1")
	}

	placeType := ""
	if len(details.Types) > 0 {
		placeType = details.Types[0]
	}

	var location model.GeoPoint
	if details.Geometry != nil {
		location = model.GeoPoint{Lat: details.Geometry.Location.Lat, Lng: details.Geometry.Location.Lng}
	}

	photos := []string{}
	for i, photo := range details.Photos {
		if i == maxSeedPhotos {
			break
		}
		photos = append(photos, g.PhotoUrl(photo.PhotoReference, 800))
	}

	var hours []string
	if details.OpeningHours != nil {
		hours = details.OpeningHours.WeekdayText
	}

	return model.BusinessCardSeed{
		BusinessName:     details.Name,
		Phone:            details.InternationalPhoneNumber,
		Website:          details.Website,
		Address:          details.FormattedAddress,
		City:             city,
		Country:          details.FindAddressComponent("country"),
		Location:         location,
		Rating:           details.Rating,
		UserRatingsTotal: details.UserRatingsTotal,
		Photos:           photos,
		GooglePlaceId:    placeId,
		GoogleMapsUrl:    details.Url,
		Hours:            hours,
		Category:         util.TitleizePlaceType(placeType),
	}
}
