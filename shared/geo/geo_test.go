package geo_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism/shared/geo"
)

func TestParseBBox(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    geo.BBox
		wantErr bool
	}{
		{
			name:  "ordered corners",
			value: "51.2,35.6,51.5,35.8",
			want:  geo.BBox{MinLon: 51.2, MinLat: 35.6, MaxLon: 51.5, MaxLat: 35.8},
		},
		{
			name:  "swapped corners are normalized",
			value: "51.5, 35.8, 51.2, 35.6",
			want:  geo.BBox{MinLon: 51.2, MinLat: 35.6, MaxLon: 51.5, MaxLat: 35.8},
		},
		{name: "too few parts", value: "1,2,3", wantErr: true},
		{name: "not a number", value: "a,2,3,4", wantErr: true},
		{name: "latitude out of range", value: "0,-91,1,1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := geo.ParseBBox(tt.value)

			if tt.wantErr {
				assert.ErrorIs(t, err, geo.ErrInvalidBBox)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBBoxContains(t *testing.T) {
	box := geo.BBox{MinLon: 51, MinLat: 35, MaxLon: 52, MaxLat: 36}

	assert.True(t, box.Contains(geo.Point{Latitude: 35.7, Longitude: 51.4}))
	assert.True(t, box.Contains(geo.Point{Latitude: 35, Longitude: 51}))
	assert.False(t, box.Contains(geo.Point{Latitude: 37, Longitude: 51.4}))
}

func TestBBoxFilter(t *testing.T) {
	box := geo.BBox{MinLon: 51, MinLat: 35, MaxLon: 52, MaxLat: 36}
	group := box.Filter("tourism_places")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(tourism_places.longitude >= :bbox_min_lon AND tourism_places.longitude <= :bbox_max_lon AND "+
		"tourism_places.latitude >= :bbox_min_lat AND tourism_places.latitude <= :bbox_max_lat)", where)
	assert.Equal(t, 51.0, args["bbox_min_lon"])
	assert.Equal(t, 36.0, args["bbox_max_lat"])
}

func TestParsePoint(t *testing.T) {
	point, err := geo.ParsePoint("35.69", " 51.39")
	require.NoError(t, err)
	assert.Equal(t, geo.Point{Latitude: 35.69, Longitude: 51.39}, point)

	_, err = geo.ParsePoint("north", "51")
	assert.ErrorIs(t, err, geo.ErrInvalidPoint)

	_, err = geo.ParsePoint("35", "181")
	assert.ErrorIs(t, err, geo.ErrInvalidPoint)
}

func TestFeatureRendersLongitudeFirst(t *testing.T) {
	feature := geo.NewFeature("p-1", geo.Point{Latitude: 35.69, Longitude: 51.39}, map[string]string{"image": "uploads/places/x.png"})

	raw, err := json.Marshal(feature)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "p-1",
		"type": "Feature",
		"geometry": {"type": "Point", "coordinates": [51.39, 35.69]},
		"properties": {"image": "uploads/places/x.png"}
	}`, string(raw))
}

func TestEmptyFeatureCollection(t *testing.T) {
	raw, err := json.Marshal(geo.NewFeatureCollection[map[string]string](nil, 0, 1))
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"FeatureCollection","features":[],"total_page":1,"total_data":0}`, string(raw))
}
