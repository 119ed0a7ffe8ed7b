package poll

import "math"

const (
	MinRating = 1
	MaxRating = 5
)

type Stats struct {
	Count int64   `json:"count"`
	Avg   float64 `json:"avg"`
}

type Bucket struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

// RoundAvg rounds a mean rating to one decimal place, half away from zero.
// An average of 4.25 therefore rounds up to 4.3.
func RoundAvg(v float64) float64 {
	return math.Round(v*10) / 10
}

// ZeroDistribution returns the five buckets with zero counts.
func ZeroDistribution() []Bucket {
	return DistributionFrom(nil)
}

// DistributionFrom expands per-rating counts into the five buckets in
// ascending rating order. Ratings with no votes appear with count 0.
func DistributionFrom(counts map[int]int64) []Bucket {
	buckets := make([]Bucket, 0, MaxRating)
	for r := MinRating; r <= MaxRating; r++ {
		buckets = append(buckets, Bucket{Rating: r, Count: counts[r]})
	}
	return buckets
}

// StatsFrom computes count and rounded average from per-rating counts.
// A poll without votes yields {0, 0.0}, never NaN.
func StatsFrom(counts map[int]int64) Stats {
	var total, sum int64
	for r, c := range counts {
		total += c
		sum += int64(r) * c
	}
	if total == 0 {
		return Stats{}
	}
	return Stats{
		Count: total,
		Avg:   RoundAvg(float64(sum) / float64(total)),
	}
}
