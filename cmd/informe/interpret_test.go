package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmoralesv/informe/internal/model"
)

func runInterpret(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	cmd := interpretCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	return &buf, cmd.Execute()
}

func TestInterpretCommandFormatOverride(t *testing.T) {
	out, err := runInterpret(t, "--json", "--format", "pdf", "ventas", "de", "hoy")
	require.NoError(t, err)

	var result model.Interpretation
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, model.FormatPDF, result.OutputFormat)
	assert.Equal(t, model.ReportTypeSales, result.ReportType)
}

func TestInterpretCommandDetectedFormatKept(t *testing.T) {
	out, err := runInterpret(t, "--json", "reporte", "de", "ventas", "en", "excel")
	require.NoError(t, err)

	var result model.Interpretation
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, model.FormatExcel, result.OutputFormat)
}

func TestInterpretCommandRejectsUnknownFormat(t *testing.T) {
	_, err := runInterpret(t, "--format", "docx", "ventas")
	assert.Error(t, err)
}

func TestInterpretCommandRejectsUnknownRole(t *testing.T) {
	_, err := runInterpret(t, "--role", "guest", "ventas")
	assert.Error(t, err)
}
