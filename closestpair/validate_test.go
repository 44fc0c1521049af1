package closestpair_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/planar/closestpair"
)

// TestValidateViews_Table covers the accepted shape and each violation class.
func TestValidateViews_Table(t *testing.T) {
	pts := []closestpair.Point{pt(3, 1), pt(1, 2), pt(2, 0), pt(1, 2)}
	byX := closestpair.SortByAxis(pts, closestpair.AxisX)
	byY := closestpair.SortByAxis(pts, closestpair.AxisY)

	tests := []struct {
		name    string
		byX     []closestpair.Point
		byY     []closestpair.Point
		wantErr error
	}{
		{"consistent", byX, byY, nil},
		{"both empty", nil, nil, nil},
		{"x-view unsorted", byY, byY, closestpair.ErrUnsortedView},
		{"y-view unsorted", byX, byX, closestpair.ErrUnsortedView},
		{"length mismatch", byX, byY[:3], closestpair.ErrInconsistentViews},
		{
			name:    "different multiset",
			byX:     byX,
			byY:     closestpair.SortByAxis([]closestpair.Point{pt(3, 1), pt(1, 2), pt(2, 0), pt(2, 0)}, closestpair.AxisY),
			wantErr: closestpair.ErrInconsistentViews,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := closestpair.ValidateViews(tc.byX, tc.byY)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
