package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddWarning("slow-build", "table construction took long", "catalog.Product", "")
	assert.False(t, d.HasErrors())

	d.AddError("type-not-found", "no loaded package declares this type", "catalog.Ghost", "")
	require.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type-not-found")
	assert.Contains(t, err.Error(), "catalog.Ghost")
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "bare message",
			diag:     Diagnostic{Message: "boom"},
			expected: "boom",
		},
		{
			name:     "with code",
			diag:     Diagnostic{Code: "build-failed", Message: "boom"},
			expected: "[build-failed] boom",
		},
		{
			name:     "with type and property",
			diag:     Diagnostic{Code: "ambiguous", Message: "boom", Type: "Order", Property: "total"},
			expected: "[Order] total: [ambiguous] boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
