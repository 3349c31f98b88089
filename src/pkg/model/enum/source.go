package enum

// Source identifies where a review originated. Stored and serialized as the
// literal string so DynamoDB items and API payloads carry it verbatim.
type Source string

const (
	SourceConnectCard Source = "CONNECTCARD"
	SourceGoogle      Source = "GOOGLE"
	SourceYelp        Source = "YELP"
)

func (s Source) String() string {
	return string(s)
}

// IsImported reports whether the source is an external review provider.
func (s Source) IsImported() bool {
	return s == SourceGoogle || s == SourceYelp
}
