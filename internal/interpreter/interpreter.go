// Package interpreter turns free-text report requests into structured report
// parameters. The input is colloquial Spanish (with the occasional English
// loanword), typically typed or voice-transcribed; the output is a
// model.Interpretation ready for an authorization gate and a report
// generator downstream.
//
// Interpret is total over strings: it never fails, it degrades to a
// low-confidence general result. It is also pure — no I/O, no mutable state,
// same input always yields the same output for a fixed clock.
package interpreter

import (
	"regexp"
	"strings"
	"time"

	"github.com/nmoralesv/informe/internal/model"
)

// Interpreter holds the compiled extraction patterns. All state is read-only
// after New, so a single Interpreter is safe for concurrent use.
type Interpreter struct {
	now              func() time.Time
	minAmountRe      *regexp.Regexp
	maxAmountRe      *regexp.Regexp
	amountRangeRe    *regexp.Regexp
	lastUnitsRe      *regexp.Regexp
	dmyDateRe        *regexp.Regexp
	isoDateRe        *regexp.Regexp
	dateRangeRe      *regexp.Regexp
	captureStopRe    *regexp.Regexp
	capturePunctRe   *regexp.Regexp
	categoryPatterns []*regexp.Regexp
	productPatterns  []*regexp.Regexp
	clientPatterns   []*regexp.Regexp
}

// New creates an Interpreter with all patterns compiled.
func New() *Interpreter {
	// Captured names admit Spanish letters, digits, spaces and dashes; the
	// lazy group stops at punctuation or a trailing article.
	const name = `([a-záéíóúñü0-9\s\-]+?)(?:\s|$|,|\.)`

	return &Interpreter{
		now: time.Now,
		categoryPatterns: compileAll(
			`categor[íi]a[:\s]+([a-záéíóúñü0-9\s\-]+?)(?:\s|$|,|\.|del|de la)`,
			`de\s+la\s+categor[íi]a\s+`+name,
			`en\s+categor[íi]a\s+`+name,
			`categor[íi]a\s+`+name,
			`tipo\s+`+name,
		),
		productPatterns: compileAll(
			`producto[:\s]+([a-záéíóúñü0-9\s\-]+?)(?:\s|$|,|\.|del|de la)`,
			`el\s+producto\s+`+name,
			`art[íi]culo[:\s]+`+name,
		),
		clientPatterns: compileAll(
			`cliente[:\s]+`+name,
			`del\s+cliente\s+`+name,
		),
		minAmountRe:    regexp.MustCompile(`(?:mayor(?:es)?\s+(?:a|de)|m[áa]s\s+de|superior(?:es)?\s+a|m[íi]nimo\s+(?:de\s+)?)\s*\$?\s*(\d+(?:\.\d+)?)`),
		maxAmountRe:    regexp.MustCompile(`(?:menor(?:es)?\s+(?:a|de)|menos\s+de|inferior(?:es)?\s+a|m[áa]ximo\s+(?:de\s+)?)\s*\$?\s*(\d+(?:\.\d+)?)`),
		amountRangeRe:  regexp.MustCompile(`entre\s+\$?\s*(\d+(?:\.\d+)?)\s+y\s+\$?\s*(\d+(?:\.\d+)?)`),
		lastUnitsRe:    regexp.MustCompile(`[úu]ltim[oa]s?\s+(\d+)\s+(días?|semanas?|meses|mes|trimestres?|semestres?)`),
		dmyDateRe:      regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`),
		isoDateRe:      regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`),
		dateRangeRe:    regexp.MustCompile(`(?:desde|from)\s+(\d{1,2})[/-](\d{1,2})[/-](\d{4})\s+(?:hasta|to)\s+(\d{1,2})[/-](\d{1,2})[/-](\d{4})`),
		captureStopRe:  regexp.MustCompile(`\b(de|la|el|las|los|un|una|del|en|por)\b`),
		capturePunctRe: regexp.MustCompile(`[^\p{L}\p{N}\s\-]`),
	}
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// Interpret reads one report request. It never returns an error: text the
// interpreter cannot place comes back as report type general with the floor
// confidence, which the caller is free to second-guess.
func (i *Interpreter) Interpret(text string) model.Interpretation {
	original := strings.TrimSpace(text)
	normalized := strings.ToLower(original)

	reportType, isProductList := detectReportType(normalized)
	dateRange := i.resolveDateRange(normalized)

	flags := analyzeContext(normalized)
	flags.IsProductList = isProductList

	return model.Interpretation{
		ReportType:     reportType,
		Metrics:        detectMetrics(normalized),
		Filters:        i.detectFilters(normalized),
		DateRange:      dateRange,
		Grouping:       detectGrouping(normalized),
		OutputFormat:   detectFormat(normalized),
		Intent:         classifyIntent(normalized),
		Context:        flags,
		Confidence:     scoreConfidence(normalized, reportType, dateRange),
		OriginalText:   original,
		NormalizedText: normalized,
	}
}

// containsAny reports whether any phrase occurs as a substring of text.
func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
