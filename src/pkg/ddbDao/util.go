package ddbDao

// Insert-if-absent condition expressions. The review guard doubles as the
// externalId uniqueness check because imported reviews use their externalId
// as the item id.
const (
	BusinessCardKeyNotExistsConditionExpression = "attribute_not_exists(pk) AND attribute_not_exists(sk)"
	ReviewKeyNotExistsConditionExpression       = "attribute_not_exists(id)"
	SavedContactKeyNotExistsConditionExpression = "attribute_not_exists(userId) AND attribute_not_exists(businessId)"
)
