package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		def  int
		want int
	}{
		{"valid value", "25", 10, 25},
		{"missing value uses endpoint default", "", 100, 100},
		{"unparseable uses endpoint default", "abc", 100, 100},
		{"zero uses endpoint default", "0", 10, 10},
		{"negative uses endpoint default", "-5", 100, 100},
		{"oversized clamps to cap, not the default", "2000", 100, maxLimit},
		{"cap itself passes through", "1000", 10, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLimit(tt.raw, tt.def))
		})
	}
}
