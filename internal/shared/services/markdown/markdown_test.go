package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_ToHTMLSanitized(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name        string
		in          string
		contains    []string
		notContains []string
	}{
		{
			name:     "emphasis and list",
			in:       "**Chargeur** fourni\n\n- souris\n- sacoche",
			contains: []string{"<strong>Chargeur</strong>", "<li>souris</li>"},
		},
		{
			name:        "script removed",
			in:          "ok <script>alert(1)</script>",
			contains:    []string{"ok"},
			notContains: []string{"<script>"},
		},
		{
			name:        "javascript link removed",
			in:          "[clic](javascript:alert(1))",
			notContains: []string{"javascript:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.ToHTMLSanitized(tt.in)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderer_Blank(t *testing.T) {
	out, err := NewRenderer().ToHTMLSanitized("  \n")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderer_PlainText(t *testing.T) {
	out, err := NewRenderer().PlainText("**Écran** rayé")
	require.NoError(t, err)
	assert.Equal(t, "Écran rayé", out)
}
