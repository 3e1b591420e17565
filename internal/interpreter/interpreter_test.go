package interpreter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmoralesv/informe/internal/model"
)

// testToday is a Wednesday: 2024-06-12.
var testToday = time.Date(2024, time.June, 12, 15, 4, 5, 0, time.UTC)

func newTestInterpreter() *Interpreter {
	i := New()
	i.now = func() time.Time { return testToday }
	return i
}

func TestInterpretTotalOverAnyInput(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"?",
		"xyzzy plugh",
		"!!!! ???? ....",
		"mis compras del último mes",
		"cuánto he gastado",
		"ventas por categoría en pdf desde 01/01/2024 hasta 31/01/2024",
		"日本語のテキスト",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
	}

	i := newTestInterpreter()
	validTypes := model.ReportTypes()

	for _, input := range inputs {
		result := i.Interpret(input)

		assert.Contains(t, validTypes, result.ReportType, "input %q", input)
		assert.GreaterOrEqual(t, result.Confidence, 0.3, "input %q", input)
		assert.LessOrEqual(t, result.Confidence, 1.0, "input %q", input)
		assert.NotEmpty(t, result.Metrics, "input %q", input)
		assert.NotEmpty(t, result.OutputFormat, "input %q", input)
		assert.NotEmpty(t, result.Intent, "input %q", input)
	}
}

func TestInterpretIdempotent(t *testing.T) {
	i := newTestInterpreter()

	inputs := []string{
		"mis compras del último mes",
		"productos más vendidos por categoría",
		"cuánto he gastado esta semana",
		"",
	}

	for _, input := range inputs {
		first := i.Interpret(input)
		second := i.Interpret(input)
		assert.Equal(t, first, second, "input %q", input)
	}
}

func TestInterpretEmptyInput(t *testing.T) {
	i := newTestInterpreter()

	for _, input := range []string{"", "   ", "\t\n"} {
		result := i.Interpret(input)

		assert.Equal(t, model.ReportTypeGeneral, result.ReportType, "input %q", input)
		assert.InDelta(t, 0.3, result.Confidence, 1e-9, "input %q", input)
		assert.Nil(t, result.DateRange, "input %q", input)
		assert.Equal(t, []model.Metric{model.MetricTotal}, result.Metrics, "input %q", input)
		assert.Equal(t, model.FormatScreen, result.OutputFormat, "input %q", input)
		assert.True(t, result.Filters.IsZero(), "input %q", input)
	}
}

func TestInterpretMyPurchasesLastMonth(t *testing.T) {
	i := newTestInterpreter()

	result := i.Interpret("mis compras del último mes")

	assert.Equal(t, model.ReportTypeMyPurchases, result.ReportType)
	require.NotNil(t, result.DateRange)
	assert.Equal(t, "2024-05-01", result.DateRange.From)
	assert.Equal(t, "2024-05-31", result.DateRange.Until)
}

func TestInterpretTopSellingProducts(t *testing.T) {
	i := newTestInterpreter()

	result := i.Interpret("productos más vendidos")

	assert.Equal(t, model.ReportTypeProducts, result.ReportType)
	assert.True(t, result.HasGrouping(model.GroupingSalesVolume))
}

func TestInterpretPersonalSpending(t *testing.T) {
	i := newTestInterpreter()

	result := i.Interpret("cuánto he gastado")

	assert.Equal(t, model.ReportTypeFinancial, result.ReportType)
	assert.True(t, result.Context.IsQuestion)
}

func TestInterpretInvalidDateDoesNotRaise(t *testing.T) {
	i := newTestInterpreter()

	result := i.Interpret("ventas del 31/02/2024")

	assert.Equal(t, model.ReportTypeSales, result.ReportType)
	assert.Nil(t, result.DateRange)
}

func TestInterpretExplicitRangeOverridesRelative(t *testing.T) {
	i := newTestInterpreter()

	result := i.Interpret("ventas del último mes desde 01/01/2024 hasta 31/01/2024")

	require.NotNil(t, result.DateRange)
	assert.Equal(t, "2024-01-01", result.DateRange.From)
	assert.Equal(t, "2024-01-31", result.DateRange.Until)
}

func TestInterpretKeepsOriginalText(t *testing.T) {
	i := newTestInterpreter()

	result := i.Interpret("  Ventas POR Categoría  ")

	assert.Equal(t, "Ventas POR Categoría", result.OriginalText)
	assert.Equal(t, "ventas por categoría", result.NormalizedText)
}

func TestInterpretConcurrentUse(t *testing.T) {
	i := newTestInterpreter()
	want := i.Interpret("mis compras del último mes")

	done := make(chan model.Interpretation, 8)
	for n := 0; n < 8; n++ {
		go func() {
			done <- i.Interpret("mis compras del último mes")
		}()
	}
	for n := 0; n < 8; n++ {
		assert.Equal(t, want, <-done)
	}
}
