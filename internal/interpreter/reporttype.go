package interpreter

import (
	"strings"
	"unicode/utf8"

	"github.com/nmoralesv/informe/internal/model"
)

// Scores below this threshold are too weak to call outright and fall
// through to the disambiguation and heuristic steps.
const scoreThreshold = 2

// detectReportType decides which report the text is asking for. The second
// return value flags "products I bought" phrasing on a my_purchases result.
//
// Layered policy, most precise first:
//
//  1. Exact multi-word phrases. A hit wins immediately, except my_purchases
//     phrases also need a first-person indicator so third-person wording
//     ("compras que hice" quoted back by an admin) does not misfire.
//     Financial phrases are accepted unconditionally.
//  2. Inflected verbs are expanded to their canonical nouns on a working
//     copy of the text that the later steps match against.
//  3. First-person short-circuit: "I" plus purchase wording is my_purchases,
//     unless money wording shifts it to financial or "products I bought"
//     phrasing sets the product-list flag.
//  4. Weighted scoring over the expanded text, highest total wins at or
//     above scoreThreshold. Low-score outcomes get one more chance via
//     per-type disambiguating nouns. Ties break by enumeration order.
//  5. Generic query verb plus a domain noun, else general.
func detectReportType(text string) (model.ReportType, bool) {
	for _, prof := range typeProfiles {
		for _, phrase := range prof.phrases {
			if !strings.Contains(text, phrase) {
				continue
			}
			switch prof.reportType {
			case model.ReportTypeFinancial:
				return model.ReportTypeFinancial, false
			case model.ReportTypeMyPurchases:
				if containsAny(text, personGateIndicators) {
					return model.ReportTypeMyPurchases, false
				}
			default:
				return prof.reportType, false
			}
		}
	}

	expanded := text
	for _, exp := range verbExpansions {
		if strings.Contains(text, exp.verb) {
			expanded += " " + exp.noun
		}
	}

	if containsAny(text, personIndicators) && containsAny(text, purchaseWords) {
		if containsAny(text, moneyWords) {
			// My own spending, financial angle. The gate downstream maps
			// this back to my_purchases for non-admin callers.
			return model.ReportTypeFinancial, false
		}
		if containsAny(text, productListPhrases) {
			return model.ReportTypeMyPurchases, true
		}
		return model.ReportTypeMyPurchases, false
	}

	scores := scoreTypes(expanded)

	best := model.ReportTypeGeneral
	bestScore := 0
	for _, prof := range typeProfiles {
		if s := scores[prof.reportType]; s > bestScore {
			best, bestScore = prof.reportType, s
		}
	}

	if bestScore >= scoreThreshold {
		return best, false
	}

	if bestScore > 0 {
		for _, d := range disambiguationNouns {
			if containsAny(text, d.nouns) && scores[d.reportType] > 0 {
				return d.reportType, false
			}
		}
		return best, false
	}

	if containsAny(text, queryVerbs) {
		for _, f := range fallbackNouns {
			if containsAny(text, f.nouns) {
				return f.reportType, false
			}
		}
	}

	return model.ReportTypeGeneral, false
}

// scoreTypes accumulates the weighted match score per type: +5 a full
// phrase, +3 a keyword that prefixes the text or is longer than five runes,
// +2 any other keyword, +1 a partial word overlap, +1 a context word,
// +2 a synthesized phrase around the type's Spanish label.
func scoreTypes(text string) map[model.ReportType]int {
	tokens := strings.Fields(text)
	scores := make(map[model.ReportType]int, len(typeProfiles))

	for _, prof := range typeProfiles {
		score := 0

		for _, phrase := range prof.phrases {
			if strings.Contains(text, phrase) {
				score += 5
			}
		}

		for _, kw := range prof.keywords {
			if !strings.Contains(text, kw) {
				continue
			}
			if strings.HasPrefix(text, kw) || utf8.RuneCountInString(kw) > 5 {
				score += 3
			} else {
				score += 2
			}
		}

		// Partial overlaps catch inflections the keyword list missed;
		// short words are excluded, they over-trigger.
		for _, kw := range prof.keywords {
			if utf8.RuneCountInString(kw) <= 3 {
				continue
			}
			for _, tok := range tokens {
				if utf8.RuneCountInString(tok) <= 3 {
					continue
				}
				if strings.Contains(tok, kw) || strings.Contains(kw, tok) {
					score++
				}
			}
		}

		for _, ctx := range prof.context {
			if strings.Contains(text, ctx) {
				score++
			}
		}

		for _, phrase := range synthesizedPhrases(prof.label) {
			if strings.Contains(text, phrase) {
				score += 2
			}
		}

		scores[prof.reportType] = score
	}

	return scores
}

func synthesizedPhrases(label string) []string {
	return []string{
		"reporte de " + label,
		label + " del",
		label + " de",
		"lista de " + label,
		"información de " + label,
		"dame " + label,
		"muéstrame " + label,
		"quiero ver " + label,
		"necesito " + label,
	}
}
