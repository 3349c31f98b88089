package ddbDao

type BusinessCardIndex int

const (
	BusinessCardIndexSlugGsi BusinessCardIndex = iota
)

func (i BusinessCardIndex) String() string {
	return []string{
		"slug-gsi",
	}[i]
}

type ReviewIndex int

const (
	ReviewIndexExternalIdGsi ReviewIndex = iota
	ReviewIndexBusinessRatingGsi
)

func (i ReviewIndex) String() string {
	return []string{
		"externalId-gsi",
		"businessKey-rating-gsi",
	}[i]
}
