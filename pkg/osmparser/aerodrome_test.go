package osmparser_test

import (
	"testing"

	"fms/cdu/pkg/datastructure"
	"fms/cdu/pkg/osmparser"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
)

func TestAerodromeFromNode(t *testing.T) {
	t.Run("aerodrome with icao tag", func(t *testing.T) {
		n := &osm.Node{
			ID:  1,
			Lat: -7.5161,
			Lon: 110.7569,
			Tags: osm.Tags{
				{Key: "aeroway", Value: "aerodrome"},
				{Key: "icao", Value: " wahq"},
				{Key: "name", Value: "Bandar Udara Internasional Adi Soemarmo"},
			},
		}
		wp, ok := osmparser.AerodromeFromNode(n)
		assert.True(t, ok)
		assert.Equal(t, datastructure.Waypoint{
			ICAOCode: "WAHQ",
			Lat:      -7.5161,
			Lon:      110.7569,
			Name:     "Bandar Udara Internasional Adi Soemarmo",
		}, wp)
	})

	t.Run("aerodrome without icao", func(t *testing.T) {
		n := &osm.Node{Tags: osm.Tags{{Key: "aeroway", Value: "aerodrome"}, {Key: "iata", Value: "SOC"}}}
		_, ok := osmparser.AerodromeFromNode(n)
		assert.False(t, ok)
	})

	t.Run("not an aerodrome", func(t *testing.T) {
		n := &osm.Node{Tags: osm.Tags{{Key: "aeroway", Value: "helipad"}, {Key: "icao", Value: "WXXX"}}}
		_, ok := osmparser.AerodromeFromNode(n)
		assert.False(t, ok)
	})
}
