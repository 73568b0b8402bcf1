package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"impact-report-backend/internal/ingest"
	"impact-report-backend/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	out, err := run(t, "token", "jane@example.org")
	require.NoError(t, err)
	assert.Equal(t, token.Generate("jane@example.org"), strings.TrimSpace(out))

	out, err = run(t, "token", "jane@example.org", "--attempt", "2")
	require.NoError(t, err)
	assert.Equal(t, token.GenerateSalted("jane@example.org", 2), strings.TrimSpace(out))

	_, err = run(t, "token", "jane@example.org", "--attempt", "99")
	assert.Error(t, err)
}

func TestImpactCommand(t *testing.T) {
	out, err := run(t, "impact", "100", "--dollars-per-meal", "2")
	require.NoError(t, err)

	var res struct {
		Coefficients struct {
			DollarsPerMeal float64 `json:"dollarsPerMeal"`
		} `json:"coefficients"`
		Impact struct {
			Meals int64 `json:"meals"`
		} `json:"impact"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2.0, res.Coefficients.DollarsPerMeal)
	assert.Equal(t, int64(50), res.Impact.Meals)

	_, err = run(t, "impact", "lots")
	assert.Error(t, err)
}

func TestTemplateAndValidateCommands(t *testing.T) {
	dir := t.TempDir()

	for _, format := range []string{"csv", "xlsx"} {
		path := filepath.Join(dir, "donors."+format)
		_, err := run(t, "template", "--format", format, "-o", path)
		require.NoError(t, err)

		out, err := run(t, "validate", path, "--strict")
		require.NoError(t, err, out)

		var res validateOutput
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, ingest.OutcomeSuccess, res.Outcome)
		assert.Equal(t, 1, res.ValidRows)
	}

	_, err := run(t, "template", "--format", "pdf")
	assert.Error(t, err)
}

func TestValidateStrictFailsOnInvalidRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "donors.csv")
	require.NoError(t, os.WriteFile(path, []byte("first_name,last_name,email,total_giving\nAna,Lee,not-an-email,10\n"), 0o600))

	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Email is invalid")

	_, err = run(t, "validate", path, "--strict")
	assert.Error(t, err)
}
