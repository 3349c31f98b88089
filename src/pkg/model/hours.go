package model

// BusinessHours is the structured weekly schedule attached to a BusinessCard.
// SchemaVersion is bumped whenever the day-map contract changes so consumers
// of the static snapshot can branch on it instead of sniffing the shape.
type BusinessHours struct {
	SchemaVersion int               `json:"schemaVersion" dynamodbav:"schemaVersion"`
	Days          map[string]string `json:"days" dynamodbav:"days"`
}

const HoursSchemaVersion = 1

// day keys, in display order
var HoursDayKeys = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

func NewBusinessHours(days map[string]string) *BusinessHours {
	return &BusinessHours{
		SchemaVersion: HoursSchemaVersion,
		Days:          days,
	}
}
