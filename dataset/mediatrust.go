package dataset

import (
	"fmt"
	"strconv"

	"github.com/ewaldman/surveygen/sampler"
	"golang.org/x/exp/rand"
)

// MediaTrustRows is the fixed survey sample size.
const MediaTrustRows = 250

var mediaTrustGenders = []string{"Male", "Female", "Non-binary", "Prefer not to say"}
var mediaTrustGenderWeights = []float64{0.48, 0.48, 0.03, 0.01}

var mediaTrustEducation = []string{"High School", "Some College", "Bachelor's Degree", "Master's Degree", "Doctorate"}
var mediaTrustEducationWeights = []float64{0.25, 0.20, 0.35, 0.15, 0.05}

var mediaTrustNewsSources = []string{"Television", "Online News Sites", "Social Media", "Print Newspapers", "Radio", "Podcasts"}

var mediaTrustIncomeBrackets = []string{"Under $25k", "$25k-$50k", "$50k-$75k", "$75k-$100k", "Over $100k"}

// 1..7, centered on moderate interest
var politicalInterestWeights = []float64{0.05, 0.10, 0.15, 0.25, 0.20, 0.15, 0.10}

// MediaTrustSurvey generates the media trust survey dataset. Trust score rises
// with age (slope 0.04 per year over 18, Gaussian noise σ=1.2); credibility
// rating is the trust score shifted by N(0.5, 1.0). Both are clamped to the
// 1..7 scale and rounded to one decimal before emission.
func MediaTrustSurvey(src rand.Source) *Table {
	tbl := &Table{
		Name:     "Media Trust Survey",
		FileName: "media_trust_survey.csv",
		Columns: []string{
			"participant_id",
			"age",
			"gender",
			"education",
			"news_source",
			"daily_news_minutes",
			"political_interest",
			"income_bracket",
			"trust_score",
			"credibility_rating",
		},
		NumericColumns: []string{"age", "daily_news_minutes", "political_interest", "trust_score", "credibility_rating"},
		PlotColumn:     "trust_score",
	}

	ageSampler := sampler.UniformInt{Min: 18, Max: 75, Src: src}
	genderSampler := sampler.NewCategorical(mediaTrustGenders, mediaTrustGenderWeights, src)
	educationSampler := sampler.NewCategorical(mediaTrustEducation, mediaTrustEducationWeights, src)
	newsSourceSampler := sampler.NewUniformCategorical(mediaTrustNewsSources, src)
	newsMinutesSampler := sampler.UniformInt{Min: 5, Max: 180, Src: src}
	politicalInterestSampler := sampler.NewWeightedInt(1, politicalInterestWeights, src)
	incomeSampler := sampler.NewUniformCategorical(mediaTrustIncomeBrackets, src)
	trustNoise := sampler.Normal{Mu: 0, Sigma: 1.2, Src: src}
	credibilityShift := sampler.Normal{Mu: 0.5, Sigma: 1.0, Src: src}

	for i := 0; i != MediaTrustRows; i++ {
		age := ageSampler.Sample()
		trustScore := sampler.Round1(sampler.Clamp(2.5+float64(age-18)*0.04+trustNoise.Sample(), 1, 7))
		credibilityRating := sampler.Round1(sampler.Clamp(trustScore+credibilityShift.Sample(), 1, 7))
		tbl.Append(
			fmt.Sprintf("MT%03d", i+1),
			strconv.Itoa(age),
			genderSampler.Sample(),
			educationSampler.Sample(),
			newsSourceSampler.Sample(),
			strconv.Itoa(newsMinutesSampler.Sample()),
			strconv.Itoa(politicalInterestSampler.Sample()),
			incomeSampler.Sample(),
			formatFloat1(trustScore),
			formatFloat1(credibilityRating),
		)
	}
	return tbl
}
