package dataset

import (
	"fmt"
	"strconv"

	"github.com/ewaldman/surveygen/sampler"
	"golang.org/x/exp/rand"
)

// SocialMediaRows is the fixed engagement sample size.
const SocialMediaRows = 300

var engagementPlatforms = []string{"Instagram", "TikTok", "YouTube", "Facebook", "Twitter", "Reddit"}
var engagementPlatformWeights = []float64{0.25, 0.22, 0.20, 0.15, 0.10, 0.08}

// 1..5, skewed toward infrequent sharing
var newsSharingWeights = []float64{0.30, 0.25, 0.20, 0.15, 0.10}

// 1..7, skewed toward satisfied
var platformSatisfactionWeights = []float64{0.05, 0.08, 0.12, 0.20, 0.25, 0.20, 0.10}

// SocialMediaEngagement generates the engagement dataset. Follower counts are
// log-uniform over 10^[1, 4.5] so the column is right-skewed the way follower
// distributions are in practice; posting rates are Poisson counts.
func SocialMediaEngagement(src rand.Source) *Table {
	tbl := &Table{
		Name:     "Social Media Engagement",
		FileName: "social_media_engagement.csv",
		Columns: []string{
			"user_id",
			"age",
			"platform",
			"daily_hours",
			"posts_per_week",
			"engagement_score",
			"follower_count",
			"political_posts_per_week",
			"news_sharing_frequency",
			"platform_satisfaction",
		},
		NumericColumns: []string{
			"age", "daily_hours", "posts_per_week", "engagement_score",
			"follower_count", "political_posts_per_week",
			"news_sharing_frequency", "platform_satisfaction",
		},
		PlotColumn: "engagement_score",
	}

	ageSampler := sampler.UniformInt{Min: 16, Max: 65, Src: src}
	platformSampler := sampler.NewCategorical(engagementPlatforms, engagementPlatformWeights, src)
	dailyHoursSampler := sampler.Uniform{Min: 0.1, Max: 8, Src: src}
	postsSampler := sampler.Poisson{Lambda: 4, Src: src}
	engagementSampler := sampler.Normal{Mu: 65, Sigma: 20, Src: src}
	followerSampler := sampler.LogUniform{MinExp: 1, MaxExp: 4.5, Src: src}
	politicalPostsSampler := sampler.Poisson{Lambda: 1.5, Src: src}
	newsSharingSampler := sampler.NewWeightedInt(1, newsSharingWeights, src)
	satisfactionSampler := sampler.NewWeightedInt(1, platformSatisfactionWeights, src)

	for i := 0; i != SocialMediaRows; i++ {
		tbl.Append(
			fmt.Sprintf("SM%03d", i+1),
			strconv.Itoa(ageSampler.Sample()),
			platformSampler.Sample(),
			formatFloat1(sampler.Round1(dailyHoursSampler.Sample())),
			strconv.Itoa(postsSampler.Sample()),
			formatFloat1(sampler.Round1(engagementSampler.SampleClamped(0, 100))),
			strconv.Itoa(int(followerSampler.Sample())),
			strconv.Itoa(politicalPostsSampler.Sample()),
			strconv.Itoa(newsSharingSampler.Sample()),
			strconv.Itoa(satisfactionSampler.Sample()),
		)
	}
	return tbl
}
