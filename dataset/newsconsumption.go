package dataset

import (
	"fmt"
	"strconv"

	"github.com/ewaldman/surveygen/sampler"
	"golang.org/x/exp/rand"
)

// NewsConsumptionParticipants is the fixed participant count. Each
// participant contributes one row per platform type.
const NewsConsumptionParticipants = 75

// NewsPlatformTypes is the fixed emission order of per-participant rows.
var NewsPlatformTypes = []string{"TV News", "Social Media", "Print Media", "Podcasts"}

var newsAgeGroups = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}
var newsEducationLevels = []string{"High School", "Bachelor's Degree", "Master's Degree", "Doctorate"}

// NewsConsumptionPatterns generates the long-format consumption dataset:
// 75 participants × 4 platform-type rows. Age group and education level are
// drawn once per participant and repeated identically across that
// participant's rows; weekly hours and trust level are drawn per row.
func NewsConsumptionPatterns(src rand.Source) *Table {
	tbl := &Table{
		Name:     "News Consumption Patterns",
		FileName: "news_consumption_patterns.csv",
		Columns: []string{
			"participant_id",
			"age_group",
			"education_level",
			"platform_type",
			"weekly_hours",
			"trust_level",
		},
		NumericColumns: []string{"weekly_hours", "trust_level"},
		PlotColumn:     "weekly_hours",
	}

	ageGroupSampler := sampler.NewUniformCategorical(newsAgeGroups, src)
	educationSampler := sampler.NewUniformCategorical(newsEducationLevels, src)
	weeklyHoursSampler := sampler.Uniform{Min: 0, Max: 15, Src: src}
	trustSampler := sampler.UniformInt{Min: 1, Max: 7, Src: src}

	for i := 0; i != NewsConsumptionParticipants; i++ {
		participantID := fmt.Sprintf("NC%03d", i+1)
		ageGroup := ageGroupSampler.Sample()
		educationLevel := educationSampler.Sample()
		for _, platformType := range NewsPlatformTypes {
			tbl.Append(
				participantID,
				ageGroup,
				educationLevel,
				platformType,
				formatFloat1(sampler.Round1(weeklyHoursSampler.Sample())),
				strconv.Itoa(trustSampler.Sample()),
			)
		}
	}
	return tbl
}
