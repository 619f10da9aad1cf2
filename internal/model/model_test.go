package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClaimSet(t *testing.T) {
	tcs := map[string]struct {
		regions []int64
		want    []int64
	}{
		"rows in order":  {regions: []int64{2, 5}, want: []int64{2, 5}},
		"order kept":     {regions: []int64{9, 1, 4}, want: []int64{9, 1, 4}},
		"nil defaults":   {regions: nil, want: []int64{DefaultRegion}},
		"empty defaults": {regions: []int64{}, want: []int64{DefaultRegion}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cs := NewClaimSet(7, tc.regions)
			assert.Equal(t, int64(7), cs.ID)
			assert.Equal(t, tc.want, cs.Regions)
		})
	}
}

func TestNewClaimSet_CopiesInput(t *testing.T) {
	in := []int64{3}
	cs := NewClaimSet(1, in)
	in[0] = 99

	assert.Equal(t, []int64{3}, cs.Regions)
}

func TestScope(t *testing.T) {
	sc := Scope{UserID: 7, Regions: []int64{2, 5}}
	assert.True(t, sc.HasRegion(5))
	assert.False(t, sc.HasRegion(0))
	assert.False(t, sc.IsBaseline())

	base := Scope{UserID: 9, Regions: []int64{DefaultRegion}}
	assert.True(t, base.IsBaseline())
	assert.True(t, base.HasRegion(DefaultRegion))
}
