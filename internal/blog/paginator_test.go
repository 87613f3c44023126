package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intRange(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = n - i // descending, like publishedAt DESC
	}
	return items
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name          string
		items         []int
		pageSize      int
		token         string
		wantItems     []int
		wantNumber    int
		wantPageCount int
	}{
		{
			name:          "FirstPageByDefault",
			items:         intRange(10),
			pageSize:      3,
			token:         "",
			wantItems:     []int{10, 9, 8},
			wantNumber:    1,
			wantPageCount: 4,
		},
		{
			name:          "NonNumericTokenFallsBackToFirstPage",
			items:         intRange(10),
			pageSize:      3,
			token:         "abc",
			wantItems:     []int{10, 9, 8},
			wantNumber:    1,
			wantPageCount: 4,
		},
		{
			name:          "SecondPage",
			items:         intRange(10),
			pageSize:      3,
			token:         "2",
			wantItems:     []int{7, 6, 5},
			wantNumber:    2,
			wantPageCount: 4,
		},
		{
			name:          "LastPageIsShort",
			items:         intRange(10),
			pageSize:      3,
			token:         "4",
			wantItems:     []int{1},
			wantNumber:    4,
			wantPageCount: 4,
		},
		{
			name:          "PastTheEndClampsToLastPage",
			items:         intRange(10),
			pageSize:      3,
			token:         "99",
			wantItems:     []int{1},
			wantNumber:    4,
			wantPageCount: 4,
		},
		{
			name:          "ZeroClampsToLastPage",
			items:         intRange(10),
			pageSize:      3,
			token:         "0",
			wantItems:     []int{1},
			wantNumber:    4,
			wantPageCount: 4,
		},
		{
			name:          "NegativeClampsToLastPage",
			items:         intRange(10),
			pageSize:      3,
			token:         "-5",
			wantItems:     []int{1},
			wantNumber:    4,
			wantPageCount: 4,
		},
		{
			name:          "FloatTokenFallsBackToFirstPage",
			items:         intRange(10),
			pageSize:      3,
			token:         "1.5",
			wantItems:     []int{10, 9, 8},
			wantNumber:    1,
			wantPageCount: 4,
		},
		{
			name:          "EmptyInputYieldsEmptyPage",
			items:         nil,
			pageSize:      3,
			token:         "2",
			wantItems:     []int{},
			wantNumber:    1,
			wantPageCount: 0,
		},
		{
			name:          "NonPositivePageSizeYieldsEmptyPage",
			items:         intRange(10),
			pageSize:      0,
			token:         "1",
			wantItems:     []int{},
			wantNumber:    1,
			wantPageCount: 0,
		},
		{
			name:          "SinglePageHoldsEverything",
			items:         intRange(3),
			pageSize:      5,
			token:         "1",
			wantItems:     []int{3, 2, 1},
			wantNumber:    1,
			wantPageCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(tt.items, tt.pageSize, tt.token)

			assert.Equal(t, tt.wantItems, page.Items)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantPageCount, page.PageCount)
		})
	}
}

func TestPaginate_NeverEmptyForNonEmptyInput(t *testing.T) {
	items := intRange(10)
	for _, token := range []string{"", "abc", "-1", "0", "1", "4", "99", "1e9"} {
		page := Paginate(items, 3, token)
		require.NotEmpty(t, page.Items, "token %q", token)
		require.GreaterOrEqual(t, page.Number, 1, "token %q", token)
		require.LessOrEqual(t, page.Number, page.PageCount, "token %q", token)
	}
}

func TestPageHasOtherPages(t *testing.T) {
	assert.True(t, Paginate(intRange(10), 3, "1").HasOtherPages())
	assert.False(t, Paginate(intRange(3), 5, "1").HasOtherPages())
	assert.False(t, Paginate[int](nil, 5, "1").HasOtherPages())
}
