package util

const (
	StageEnvKey = "STAGE"

	BusinessCardTableNameEnvKey = "BUSINESS_CARD_TABLE_NAME"
	ReviewTableNameEnvKey       = "REVIEW_TABLE_NAME"
	SavedContactTableNameEnvKey = "SAVED_CONTACT_TABLE_NAME"
	StorageBucketNameEnvKey     = "STORAGE_BUCKET_NAME"

	GooglePlacesApiKeyEnvKey = "GOOGLE_PLACES_API_KEY"
	YelpApiKeyEnvKey         = "YELP_API_KEY"
)

// Reviews created by automated import are attributed to this synthetic owner
// rather than a real ConnectCard account.
const SystemUserId = "SYSTEM"
