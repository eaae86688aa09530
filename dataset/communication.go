package dataset

import (
	"fmt"
	"strconv"

	"github.com/ewaldman/surveygen/sampler"
	"golang.org/x/exp/rand"
)

// CommunicationRows is the fixed (small) class-exercise sample size.
const CommunicationRows = 50

var communicationPlatforms = []string{"Instagram", "TikTok", "YouTube", "Facebook", "Twitter"}

// CommunicationSurvey generates the minimal communication survey dataset.
// Every column is an independent draw.
func CommunicationSurvey(src rand.Source) *Table {
	tbl := &Table{
		Name:     "Communication Survey",
		FileName: "communication_survey.csv",
		Columns: []string{
			"participant_id",
			"age",
			"media_trust",
			"platform",
			"daily_use_hours",
		},
		NumericColumns: []string{"age", "media_trust", "daily_use_hours"},
		PlotColumn:     "media_trust",
	}

	ageSampler := sampler.UniformInt{Min: 18, Max: 35, Src: src}
	trustSampler := sampler.Uniform{Min: 1, Max: 7, Src: src}
	platformSampler := sampler.NewUniformCategorical(communicationPlatforms, src)
	hoursSampler := sampler.Uniform{Min: 0.5, Max: 6, Src: src}

	for i := 0; i != CommunicationRows; i++ {
		tbl.Append(
			fmt.Sprintf("CS%03d", i+1),
			strconv.Itoa(ageSampler.Sample()),
			formatFloat1(sampler.Round1(trustSampler.Sample())),
			platformSampler.Sample(),
			formatFloat1(sampler.Round1(hoursSampler.Sample())),
		)
	}
	return tbl
}
