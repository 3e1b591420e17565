package interpreter

import (
	"strings"
	"unicode/utf8"

	"github.com/nmoralesv/informe/internal/model"
)

// classifyIntent picks the first intent whose any indicator phrase occurs in
// the text. First match in enumeration order wins; this is deliberately a
// blunt rule, not a scored classifier.
func classifyIntent(text string) model.Intent {
	for _, set := range intentSets {
		if containsAny(text, set.phrases) {
			return set.intent
		}
	}
	return model.IntentQuery
}

// Context window, in runes, around a metric synonym within which a reporting
// word must appear for the synonym to count.
const metricWindow = 50

// detectMetrics collects every metric whose synonym appears near a reporting
// context word. Defaults to total when nothing matches. Set semantics; the
// fixed table order keeps output deterministic.
func detectMetrics(text string) []model.Metric {
	var metrics []model.Metric
	for _, set := range metricSets {
		for _, syn := range set.synonyms {
			if inReportingContext(text, syn) {
				metrics = append(metrics, set.metric)
				break
			}
		}
	}
	if len(metrics) == 0 {
		metrics = []model.Metric{model.MetricTotal}
	}
	return metrics
}

// inReportingContext reports whether word occurs in text with a reporting
// context word within metricWindow runes on either side. Bare metric words
// far from any reporting vocabulary are treated as noise.
func inReportingContext(text, word string) bool {
	byteIdx := strings.Index(text, word)
	if byteIdx < 0 {
		return false
	}

	runes := []rune(text)
	runeIdx := utf8.RuneCountInString(text[:byteIdx])

	lo := runeIdx - metricWindow
	if lo < 0 {
		lo = 0
	}
	hi := runeIdx + metricWindow
	if hi > len(runes) {
		hi = len(runes)
	}

	return containsAny(string(runes[lo:hi]), metricContextWords)
}

// detectGrouping collects requested grouping dimensions. "Top selling"
// phrasing implies an ordering by sales volume even without explicit
// "by X" wording.
func detectGrouping(text string) []model.Grouping {
	var grouping []model.Grouping
	if containsAny(text, topSellingPhrases) {
		grouping = append(grouping, model.GroupingSalesVolume)
	}
	for _, set := range groupingSets {
		if containsAny(text, set.keywords) {
			grouping = append(grouping, set.grouping)
		}
	}
	return grouping
}

// detectFormat is a plain keyword lookup; the table has no overlapping
// keywords so scan order is immaterial, but it is fixed regardless.
func detectFormat(text string) model.OutputFormat {
	for _, set := range formatSets {
		if containsAny(text, set.keywords) {
			return set.format
		}
	}
	return model.FormatScreen
}

// analyzeContext extracts the secondary phrasing signals.
func analyzeContext(text string) model.ContextFlags {
	detail := model.DetailSummary
	if containsAny(text, detailWords) {
		detail = model.DetailDetailed
	}
	return model.ContextFlags{
		IsQuestion:   strings.Contains(text, "?") || containsAny(text, questionWords),
		IsComparison: containsAny(text, comparisonWords),
		IsTrend:      containsAny(text, trendWords),
		DetailLevel:  detail,
	}
}

// Confidence scoring weights. The score is a heuristic quality signal for
// the caller, not a probability, and never changes the extraction itself.
const (
	confidenceBase    = 0.4
	confidenceFloor   = 0.3
	confidenceCeiling = 1.0
)

// scoreConfidence rates how certain the interpretation is: a recognized
// report type and a resolved date range are the strongest signals, text
// length a weaker one.
func scoreConfidence(text string, reportType model.ReportType, dateRange *model.DateRange) float64 {
	confidence := confidenceBase

	if reportType != model.ReportTypeGeneral {
		confidence += 0.25
		// The two first-person types only fire on precise cues.
		if reportType == model.ReportTypeMyPurchases || reportType == model.ReportTypeFinancial {
			confidence += 0.1
		}
	}

	if dateRange != nil {
		confidence += 0.15
	}

	n := utf8.RuneCountInString(text)
	if n > 15 {
		confidence += 0.1
	}
	if n > 30 {
		confidence += 0.05
	}
	if n < 5 {
		confidence -= 0.2
	}

	if confidence < confidenceFloor {
		return confidenceFloor
	}
	if confidence > confidenceCeiling {
		return confidenceCeiling
	}
	return confidence
}
