package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSellerSPU(t *testing.T) {
	tests := []struct {
		name string
		sku  string
		want string
	}{
		{"single delimiter", "ABC-001", "ABC"},
		{"multiple delimiters strip last only", "ABC-RED-001", "ABC-RED"},
		{"no delimiter returns input", "ABC001", "ABC001"},
		{"empty input", "", ""},
		{"trailing delimiter", "ABC-", "ABC"},
		{"leading delimiter", "-001", ""},
		{"only delimiter", "-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSellerSPU(tt.sku))
		})
	}
}
