package showcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "zero", value: 0, want: "R$ 0,00"},
		{name: "cents only", value: 0.5, want: "R$ 0,50"},
		{name: "hundreds", value: 950, want: "R$ 950,00"},
		{name: "thousands grouping", value: 5111.11, want: "R$ 5.111,11"},
		{name: "tens of thousands", value: 17037.04, want: "R$ 17.037,04"},
		{name: "millions", value: 1234567.89, want: "R$ 1.234.567,89"},
		{name: "rounds half away from zero", value: 0.125, want: "R$ 0,13"},
		{name: "negative", value: -2500, want: "-R$ 2.500,00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(tt.value))
		})
	}
}
