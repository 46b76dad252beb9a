package aggregate

import (
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
)

func TestIdentify(t *testing.T) {
	a := Identify(35.681236, 139.767125)
	assert.Equal(t, a, Identify(35.681236, 139.767125))
	assert.NotEqual(t, a, Identify(35.682236, 139.767125), "points ~110 m apart must not share a cell")
	assert.NotEqual(t, a, Identify(-35.681236, 139.767125))

	cell := s2.CellIDFromToken(a)
	assert.True(t, cell.IsValid())
	assert.Equal(t, CellLevel, cell.Level())
	assert.True(t, cell.Contains(s2.CellIDFromLatLng(s2.LatLngFromDegrees(35.681236, 139.767125))))
}
