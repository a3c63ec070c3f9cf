package service

import (
	"strings"

	"mealcrate/internal/domain"
)

// Sentiment thresholds: positive >= 4, negative <= 2, neutral otherwise.
const (
	positiveThreshold = 4
	negativeThreshold = 2
)

// Tokens shorter than this are discarded when counting themes. A crude
// stop-word heuristic, not a real stop list.
const minThemeTokenLen = 4

// AggregateFeedback computes rating and comment statistics over a
// pre-fetched feedback set.
//
// Theme extraction is a plain word-frequency count: comments are lowercased
// and split on whitespace, short tokens dropped, and the top 10 tokens
// returned. Punctuation is not stripped, so "great!" and "great" count
// separately. Known limitation, kept for output compatibility.
func AggregateFeedback(feedback []domain.FeedbackRecord) domain.FeedbackReport {
	report := domain.FeedbackReport{
		TotalFeedback:      len(feedback),
		RatingDistribution: map[int]int{},
		TopThemes:          []domain.ThemeCount{},
	}

	themes := map[string]int{}
	var seen []string
	var ratingSum int
	for _, record := range feedback {
		ratingSum += record.Rating
		report.RatingDistribution[record.Rating]++

		switch {
		case record.Rating >= positiveThreshold:
			report.SentimentAnalysis.Positive++
		case record.Rating <= negativeThreshold:
			report.SentimentAnalysis.Negative++
		default:
			report.SentimentAnalysis.Neutral++
		}

		for _, token := range strings.Fields(strings.ToLower(record.Comments)) {
			if len(token) < minThemeTokenLen {
				continue
			}
			if _, ok := themes[token]; !ok {
				seen = append(seen, token)
			}
			themes[token]++
		}
	}

	if report.TotalFeedback > 0 {
		report.AverageRating = float64(ratingSum) / float64(report.TotalFeedback)
	}

	for _, ranked := range rankCounts(seen, themes, topLimit) {
		report.TopThemes = append(report.TopThemes, domain.ThemeCount{
			Word:  ranked.key,
			Count: ranked.count,
		})
	}

	return report
}
