package enum

type Metric int

const (
	MetricImportedGoogleReviews Metric = iota
	MetricImportedYelpReviews
	MetricImportErrors
	MetricSnapshotPublished
	MetricSnapshotRecordCount
)

func (m Metric) String() string {
	return []string{
		"ImportedGoogleReviews",
		"ImportedYelpReviews",
		"ImportErrors",
		"SnapshotPublished",
		"SnapshotRecordCount",
	}[m]
}
