package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

func TestMonthlyBucketsMarksEntryTenDaysAgo(t *testing.T) {
	ref := time.Date(2025, time.March, 30, 12, 0, 0, 0, time.UTC)
	entries := []*entity.ActivityEntry{
		entryFor(uuid.New(), uuid.New(), 5, ref.AddDate(0, 0, -10)),
	}

	buckets := MonthlyBuckets(entries, ref)
	if len(buckets) != MonthlyBucketCount {
		t.Fatalf("got %d buckets, want %d", len(buckets), MonthlyBucketCount)
	}

	// Bucket 0 is 29 days ago, bucket 29 is today; 10 days ago is index 19.
	for i, b := range buckets {
		want := i == 19
		if b.Present != want {
			t.Errorf("bucket %d present = %v, want %v", i, b.Present, want)
		}
	}
	if last := buckets[MonthlyBucketCount-1].Date; last.Day() != ref.Day() || last.Month() != ref.Month() {
		t.Errorf("last bucket date = %v, want today", last)
	}
}

func TestMonthlyBucketsEmptyLedger(t *testing.T) {
	buckets := MonthlyBuckets(nil, time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC))
	for i, b := range buckets {
		if b.Present {
			t.Errorf("bucket %d present with empty ledger", i)
		}
	}
}

func TestQuarterlyBuckets(t *testing.T) {
	start := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()
	habitID := uuid.New()

	entries := []*entity.ActivityEntry{
		entryFor(userID, habitID, 5, start.Add(2*time.Hour)),         // week 0
		entryFor(userID, habitID, 5, start.AddDate(0, 0, 6)),         // week 0
		entryFor(userID, habitID, 5, start.AddDate(0, 0, 7)),         // week 1
		entryFor(userID, habitID, 5, start.AddDate(0, 0, 7*11)),      // week 11, last kept
		entryFor(userID, habitID, 5, start.AddDate(0, 0, 7*12)),      // beyond window, dropped
		entryFor(userID, habitID, 5, start.AddDate(0, 0, 7*12+3)),    // dropped
		entryFor(userID, habitID, 5, start.Add(-24*time.Hour)),       // before window, dropped
	}

	buckets := QuarterlyBuckets(entries, start)
	if len(buckets) != QuarterlyBucketCount {
		t.Fatalf("got %d buckets, want %d", len(buckets), QuarterlyBucketCount)
	}

	wantValues := map[int]int{0: 2, 1: 1, 11: 1}
	for i, b := range buckets {
		if b.Value != wantValues[i] {
			t.Errorf("bucket %d value = %d, want %d", i, b.Value, wantValues[i])
		}
		if b.Index != i {
			t.Errorf("bucket %d carries index %d", i, b.Index)
		}
	}

	// Intensity scales to the busiest bucket.
	if buckets[0].Intensity != 1.0 {
		t.Errorf("bucket 0 intensity = %v, want 1.0", buckets[0].Intensity)
	}
	if buckets[1].Intensity != 0.5 {
		t.Errorf("bucket 1 intensity = %v, want 0.5", buckets[1].Intensity)
	}
	if buckets[2].Intensity != 0 {
		t.Errorf("bucket 2 intensity = %v, want 0", buckets[2].Intensity)
	}
}

func TestQuarterlyBucketsEmptyLedgerIntensityIsZero(t *testing.T) {
	buckets := QuarterlyBuckets(nil, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	for i, b := range buckets {
		if b.Value != 0 || b.Intensity != 0 {
			t.Errorf("bucket %d = %+v, want zero value and intensity", i, b)
		}
	}
}
