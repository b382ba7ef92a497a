package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int
		pageSize   int
		want       int
	}{
		{name: "No items", totalCount: 0, pageSize: 9, want: 0},
		{name: "Partial page", totalCount: 1, pageSize: 9, want: 1},
		{name: "Exact page", totalCount: 9, pageSize: 9, want: 1},
		{name: "One over", totalCount: 10, pageSize: 9, want: 2},
		{name: "Many pages", totalCount: 100, pageSize: 9, want: 12},
		{name: "Zero page size", totalCount: 10, pageSize: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.totalCount, tt.pageSize))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 9))
	assert.Equal(t, 9, Offset(2, 9))
	assert.Equal(t, 18, Offset(3, 9))
	assert.Equal(t, 0, Offset(0, 9))
	assert.Equal(t, 0, Offset(-5, 9))
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		want        []Item
	}{
		{
			name:        "Single page hidden",
			currentPage: 1,
			totalPages:  1,
			want:        nil,
		},
		{
			name:        "No pages hidden",
			currentPage: 1,
			totalPages:  0,
			want:        nil,
		},
		{
			name:        "Few pages all shown",
			currentPage: 1,
			totalPages:  3,
			want:        []Item{{Page: 1}, {Page: 2}, {Page: 3}},
		},
		{
			name:        "Middle of a long run",
			currentPage: 5,
			totalPages:  10,
			want: []Item{
				{Page: 1},
				{Ellipsis: true},
				{Page: 4},
				{Page: 5},
				{Page: 6},
				{Ellipsis: true},
				{Page: 10},
			},
		},
		{
			name:        "At the start",
			currentPage: 1,
			totalPages:  10,
			want:        []Item{{Page: 1}, {Page: 2}, {Ellipsis: true}, {Page: 10}},
		},
		{
			name:        "At the end",
			currentPage: 10,
			totalPages:  10,
			want:        []Item{{Page: 1}, {Ellipsis: true}, {Page: 9}, {Page: 10}},
		},
		{
			name:        "Current past the end clamps",
			currentPage: 99,
			totalPages:  5,
			want:        []Item{{Page: 1}, {Ellipsis: true}, {Page: 4}, {Page: 5}},
		},
		{
			name:        "Current below one clamps",
			currentPage: 0,
			totalPages:  5,
			want:        []Item{{Page: 1}, {Page: 2}, {Ellipsis: true}, {Page: 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Window(tt.currentPage, tt.totalPages))
		})
	}
}
