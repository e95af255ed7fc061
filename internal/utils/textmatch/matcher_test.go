package textmatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vhrodriguesv/clinicfin/internal/utils/textmatch"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		query    string
		want     bool
	}{
		{
			name:     "empty query matches anything",
			haystack: "Consulta de rotina",
			query:    "",
			want:     true,
		},
		{
			name:     "whitespace-only query matches anything",
			haystack: "Consulta de rotina",
			query:    "   ",
			want:     true,
		},
		{
			name:     "exact substring",
			haystack: "Consulta de rotina",
			query:    "rotina",
			want:     true,
		},
		{
			name:     "case and accent insensitive",
			haystack: "Manutenção do raio-X",
			query:    "MANUTENCAO",
			want:     true,
		},
		{
			name:     "single-typo token matches",
			haystack: "Consulta de rotina",
			query:    "consuta",
			want:     true,
		},
		{
			name:     "transposed letters match",
			haystack: "Consulta de rotina",
			query:    "consutla",
			want:     true,
		},
		{
			name:     "unrelated token does not match",
			haystack: "Consulta de rotina",
			query:    "xyz123",
			want:     false,
		},
		{
			name:     "all tokens must match",
			haystack: "Consulta de rotina",
			query:    "consulta xyz123",
			want:     false,
		},
		{
			name:     "multiple fuzzy tokens",
			haystack: "Pagamento fornecedor de luvas",
			query:    "fornecedr luvas",
			want:     true,
		},
		{
			name:     "short token gets tolerance of one",
			haystack: "Raio X torax",
			query:    "rx",
			want:     true,
		},
		{
			name:     "empty haystack rejects non-empty query",
			haystack: "",
			query:    "consulta",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textmatch.Matches(tt.haystack, tt.query))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "consulta", textmatch.Normalize("Consultá"))
	assert.Equal(t, "orcamento aprovacao", textmatch.Normalize("Orçamento APROVAÇÃO"))
}
