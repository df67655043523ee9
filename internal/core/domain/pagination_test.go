package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmartins/varejo-be/internal/core/domain"
)

func TestResolvePage(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		limit          int
		expectedLimit  int
		expectedOffset int
	}{
		{
			name:           "defaults_when_absent",
			page:           0,
			limit:          0,
			expectedLimit:  10,
			expectedOffset: 0,
		},
		{
			name:           "first_page",
			page:           1,
			limit:          10,
			expectedLimit:  10,
			expectedOffset: 0,
		},
		{
			name:           "third_page_offset_arithmetic",
			page:           3,
			limit:          25,
			expectedLimit:  25,
			expectedOffset: 50,
		},
		{
			name:           "page_zero_clamps_to_first_page",
			page:           0,
			limit:          20,
			expectedLimit:  20,
			expectedOffset: 0,
		},
		{
			name:           "negative_page_never_produces_negative_offset",
			page:           -5,
			limit:          20,
			expectedLimit:  20,
			expectedOffset: 0,
		},
		{
			name:           "negative_limit_falls_back_to_default",
			page:           2,
			limit:          -1,
			expectedLimit:  10,
			expectedOffset: 10,
		},
		{
			name:           "oversized_limit_capped",
			page:           1,
			limit:          10000,
			expectedLimit:  100,
			expectedOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.ResolvePage(tt.page, tt.limit)

			assert.Equal(t, tt.expectedLimit, req.Limit)
			assert.Equal(t, tt.expectedOffset, req.Offset)
			assert.GreaterOrEqual(t, req.Offset, 0)
			assert.GreaterOrEqual(t, req.Page, 1)
		})
	}
}
