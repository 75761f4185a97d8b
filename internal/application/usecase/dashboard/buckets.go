package dashboard

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

const (
	// MonthlyBucketCount is the number of daily heatmap cells for a monthly goal.
	MonthlyBucketCount = 30
	// QuarterlyBucketCount is the number of weekly chart cells for a quarterly goal.
	QuarterlyBucketCount = 12
)

// DayBucket is one daily heatmap cell.
type DayBucket struct {
	Date    time.Time
	Present bool
}

// WeekBucket is one weekly chart cell. Intensity is the bucket value scaled
// to the busiest bucket, in [0, 1], for display shading.
type WeekBucket struct {
	Index     int
	Value     int
	Intensity float64
}

// MonthlyBuckets produces 30 fixed daily buckets ending at the reference
// day. A bucket is present when any entry's calendar date matches it;
// month+day equality is sufficient since the range never exceeds one year.
func MonthlyBuckets(entries []*entity.ActivityEntry, ref time.Time) []DayBucket {
	buckets := make([]DayBucket, MonthlyBucketCount)
	for i := 0; i < MonthlyBucketCount; i++ {
		day := ref.AddDate(0, 0, -(MonthlyBucketCount - 1 - i))
		present := false
		for _, e := range entries {
			if e.OccurredAt.Month() == day.Month() && e.OccurredAt.Day() == day.Day() {
				present = true
				break
			}
		}
		buckets[i] = DayBucket{Date: day, Present: present}
	}
	return buckets
}

// QuarterlyBuckets produces 12 fixed weekly buckets starting at the window
// start. Each entry lands in bucket floor(days since start / 7); entries
// beyond the last bucket are dropped from the visualization, although they
// still count toward the numeric progress.
func QuarterlyBuckets(entries []*entity.ActivityEntry, windowStart time.Time) []WeekBucket {
	counts := make([]int, QuarterlyBucketCount)
	for _, e := range entries {
		week := int(e.OccurredAt.Sub(windowStart).Hours() / 24 / 7)
		if week < 0 || week >= QuarterlyBucketCount {
			continue
		}
		counts[week]++
	}

	maxCount := 1
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	buckets := make([]WeekBucket, QuarterlyBucketCount)
	for i, c := range counts {
		buckets[i] = WeekBucket{
			Index:     i,
			Value:     c,
			Intensity: float64(c) / float64(maxCount),
		}
	}
	return buckets
}
