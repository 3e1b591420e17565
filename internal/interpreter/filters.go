package interpreter

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nmoralesv/informe/internal/model"
)

// detectFilters pulls every constraint the text states. Absence of a filter
// means "no constraint". The state table runs before the category patterns:
// "mis compras pendientes" must become a state, not a category named
// "pendientes".
func (i *Interpreter) detectFilters(text string) model.Filters {
	var filters model.Filters

	for _, set := range stateSets {
		if containsAny(text, set.synonyms) {
			filters.State = set.state
			break
		}
	}
	// Purchase wording plus a bare status word is still a state filter even
	// when the synonym table already missed it.
	if filters.State == "" && containsAny(text, []string{"compra", "compras", "pedido", "pedidos"}) {
		switch {
		case containsAny(text, []string{"pendiente", "pendientes", "en proceso", "procesando", "en espera"}):
			filters.State = model.StatePending
		case containsAny(text, []string{"completada", "completadas", "finalizada", "terminada"}):
			filters.State = model.StateCompleted
		}
	}

	filters.Category = i.captureName(text, i.categoryPatterns, 1)

	for _, set := range paymentSets {
		if containsAny(text, set.synonyms) {
			filters.PaymentMethod = set.method
			break
		}
	}

	filters.Product = i.captureName(text, i.productPatterns, 2)
	filters.Client = i.captureName(text, i.clientPatterns, 2)

	filters.MinAmount, filters.MaxAmount = i.detectAmounts(text)

	return filters
}

// captureName runs the pattern list in order and returns the first captured
// name that survives cleanup and is longer than minRunes.
func (i *Interpreter) captureName(text string, patterns []*regexp.Regexp, minRunes int) string {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := i.cleanCapture(m[1])
		if utf8.RuneCountInString(name) > minRunes {
			return name
		}
	}
	return ""
}

// cleanCapture strips articles, prepositions and stray punctuation from a
// captured name. "de la electrónica" comes back as "electrónica".
func (i *Interpreter) cleanCapture(name string) string {
	name = i.captureStopRe.ReplaceAllString(name, "")
	name = i.capturePunctRe.ReplaceAllString(name, "")
	return strings.Join(strings.Fields(name), " ")
}

// detectAmounts parses explicit numeric bounds: "mayor a 100", "menos de
// 500", and the two-sided "entre 100 y 500".
func (i *Interpreter) detectAmounts(text string) (minAmount, maxAmount *float64) {
	if m := i.amountRangeRe.FindStringSubmatch(text); m != nil {
		lo, errLo := strconv.ParseFloat(m[1], 64)
		hi, errHi := strconv.ParseFloat(m[2], 64)
		if errLo == nil && errHi == nil {
			return &lo, &hi
		}
	}

	if m := i.minAmountRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			minAmount = &v
		}
	}
	if m := i.maxAmountRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			maxAmount = &v
		}
	}
	return minAmount, maxAmount
}
