package dataset

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestSocialMediaEngagementShape(t *testing.T) {
	tbl := SocialMediaEngagement(rand.NewSource(testSeed))
	if tbl.NumRows() != SocialMediaRows {
		t.Fatalf("rows = %d, want %d", tbl.NumRows(), SocialMediaRows)
	}
	if tbl.NumColumns() != 10 {
		t.Fatalf("columns = %d, want 10", tbl.NumColumns())
	}
	checkUniqueIDs(t, tbl, "user_id")
}

func TestSocialMediaEngagementRanges(t *testing.T) {
	tbl := SocialMediaEngagement(rand.NewSource(testSeed))
	checkRange(t, tbl, "age", 16, 65)
	checkRange(t, tbl, "daily_hours", 0.1, 8)
	checkRange(t, tbl, "engagement_score", 0, 100)
	checkRange(t, tbl, "follower_count", 10, math.Pow(10, 4.5))
	checkRange(t, tbl, "news_sharing_frequency", 1, 5)
	checkRange(t, tbl, "platform_satisfaction", 1, 7)

	// Poisson counts are unbounded above but never negative
	for _, name := range []string{"posts_per_week", "political_posts_per_week"} {
		for i, v := range floatColumn(t, tbl, name) {
			if v < 0 || v != math.Trunc(v) {
				t.Fatalf("%s row %d = %g, want non-negative integer", name, i, v)
			}
		}
	}
}

func TestSocialMediaEngagementCategories(t *testing.T) {
	tbl := SocialMediaEngagement(rand.NewSource(testSeed))
	checkMembership(t, tbl, "platform", engagementPlatforms)
}

// The follower column should be right-skewed: log-uniform draws put roughly
// as much mass below 10^2.75 as above, so the mean far exceeds the median.
func TestSocialMediaEngagementFollowerSkew(t *testing.T) {
	tbl := SocialMediaEngagement(rand.NewSource(testSeed))
	followers := floatColumn(t, tbl, "follower_count")
	sum := 0.0
	small := 0
	for _, f := range followers {
		sum += f
		if f < 1000 {
			small++
		}
	}
	mean := sum / float64(len(followers))
	if mean < 1000 {
		t.Errorf("follower mean = %g, want pulled up by heavy tail", mean)
	}
	if small < len(followers)/4 {
		t.Errorf("only %d/%d accounts under 1000 followers, want a substantial fraction", small, len(followers))
	}
}
