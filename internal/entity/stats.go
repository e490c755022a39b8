package entity

// Chart kinds available to admins.
const (
	ChartHits     = "hits"
	ChartLocation = "location"
	ChartDateHit  = "date_hit"
	ChartDomain   = "domain"
)

// UnknownCity is recorded when the origin of a visitor cannot be determined.
const UnknownCity = "unknown"

// LocationStat counts hits per visitor city.
type LocationStat struct {
	City string
	Hits int64
}

// DateStat counts hits per calendar day. Key has the unpadded day/month/year form.
type DateStat struct {
	Key  string
	Hits int64
}

// ChartPoint is a single labelled value of an admin chart.
type ChartPoint struct {
	Label string
	Value int64
}

// Chart is an aggregate view over the analytics.
type Chart struct {
	Kind   string
	Points []ChartPoint
}
