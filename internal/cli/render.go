package cli

import (
	"fmt"
	"strings"

	"github.com/nmoralesv/informe/internal/model"
)

// Confidence below this gets a visible warning in the rendered output.
const lowConfidence = 0.5

// RenderInterpretation formats one interpretation for the terminal.
func RenderInterpretation(in model.Interpretation) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Interpretación"))
	b.WriteString("\n")

	writeField(&b, "Tipo de reporte", string(in.ReportType))
	writeField(&b, "Intención", string(in.Intent))
	writeField(&b, "Métricas", joinMetrics(in.Metrics))

	if in.DateRange != nil {
		writeField(&b, "Fechas", fmt.Sprintf("%s — %s", in.DateRange.From, in.DateRange.Until))
	}
	if len(in.Grouping) > 0 {
		writeField(&b, "Agrupación", joinGroupings(in.Grouping))
	}
	if !in.Filters.IsZero() {
		writeField(&b, "Filtros", renderFilters(in.Filters))
	}
	writeField(&b, "Formato", string(in.OutputFormat))

	confidence := fmt.Sprintf("%.2f", in.Confidence)
	if in.Confidence < lowConfidence {
		confidence = WarningStyle.Render(confidence + " (baja)")
	}
	writeField(&b, "Confianza", confidence)

	b.WriteString(SubtleStyle.Render(fmt.Sprintf("solicitud: %q", in.OriginalText)))
	b.WriteString("\n")

	return BoxStyle.Render(b.String())
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(LabelStyle.Render(label + ":"))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

func renderFilters(f model.Filters) string {
	var parts []string
	if f.Category != "" {
		parts = append(parts, "categoría="+f.Category)
	}
	if f.State != "" {
		parts = append(parts, "estado="+string(f.State))
	}
	if f.PaymentMethod != "" {
		parts = append(parts, "pago="+f.PaymentMethod)
	}
	if f.Product != "" {
		parts = append(parts, "producto="+f.Product)
	}
	if f.Client != "" {
		parts = append(parts, "cliente="+f.Client)
	}
	if f.MinAmount != nil {
		parts = append(parts, fmt.Sprintf("monto≥%.2f", *f.MinAmount))
	}
	if f.MaxAmount != nil {
		parts = append(parts, fmt.Sprintf("monto≤%.2f", *f.MaxAmount))
	}
	return strings.Join(parts, ", ")
}

func joinMetrics(metrics []model.Metric) string {
	parts := make([]string, 0, len(metrics))
	for _, m := range metrics {
		parts = append(parts, string(m))
	}
	return strings.Join(parts, ", ")
}

func joinGroupings(groupings []model.Grouping) string {
	parts := make([]string, 0, len(groupings))
	for _, g := range groupings {
		parts = append(parts, string(g))
	}
	return strings.Join(parts, ", ")
}
