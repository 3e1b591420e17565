package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nmoralesv/informe/internal/model"
)

func TestApplyOverridesZeroIsNoop(t *testing.T) {
	i := newTestInterpreter()
	in := i.Interpret("ventas de este mes en pdf")

	assert.True(t, Overrides{}.IsZero())
	assert.Equal(t, in, ApplyOverrides(in, Overrides{}))
}

func TestApplyOverridesSetFieldsWin(t *testing.T) {
	i := newTestInterpreter()
	in := i.Interpret("ventas de la categoría electrónica mayores a 100")
	assert.Equal(t, "electrónica", in.Filters.Category)

	category := "ropa"
	maxAmount := 500.0
	out := ApplyOverrides(in, Overrides{
		Category:  &category,
		MaxAmount: &maxAmount,
	})

	assert.Equal(t, "ropa", out.Filters.Category)
	assert.Equal(t, &maxAmount, out.Filters.MaxAmount)
	// Untouched fields keep the extracted values.
	assert.Equal(t, in.Filters.MinAmount, out.Filters.MinAmount)
	assert.Equal(t, in.ReportType, out.ReportType)

	// The input is merged by value, never mutated.
	assert.Equal(t, "electrónica", in.Filters.Category)
}

func TestApplyOverridesDates(t *testing.T) {
	i := newTestInterpreter()

	from := "2024-01-01"
	until := "2024-03-31"

	// No extracted range: the override builds one.
	in := i.Interpret("ventas por categoría")
	assert.Nil(t, in.DateRange)
	out := ApplyOverrides(in, Overrides{From: &from, Until: &until})
	assert.Equal(t, &model.DateRange{From: "2024-01-01", Until: "2024-03-31"}, out.DateRange)

	// Extracted range present: only the overridden side changes.
	in = i.Interpret("ventas de este mes")
	out = ApplyOverrides(in, Overrides{Until: &until})
	assert.Equal(t, in.DateRange.From, out.DateRange.From)
	assert.Equal(t, "2024-03-31", out.DateRange.Until)
	// And the original range object is left alone.
	assert.NotEqual(t, in.DateRange.Until, out.DateRange.Until)
}

func TestApplyOverridesState(t *testing.T) {
	i := newTestInterpreter()
	in := i.Interpret("mis compras del mes")

	state := "cancelled"
	out := ApplyOverrides(in, Overrides{State: &state})
	assert.Equal(t, model.StateCancelled, out.Filters.State)
}
