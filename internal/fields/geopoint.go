package fields

import (
	"strconv"

	"github.com/chaisql/firevalue/internal/model"
)

// geoPointTokenSize is the fixed cost of a GeoPoint in an index entry: two
// 8-byte floats.
const geoPointTokenSize = 16

// GeoPointValue is a (latitude, longitude) pair.
type GeoPointValue struct {
	g model.GeoPoint
}

func NewGeoPoint(lat, lon float64) GeoPointValue {
	return GeoPointValue{g: model.NewGeoPoint(lat, lon)}
}

func (GeoPointValue) TypeOrder() TypeOrder { return TypeOrderGeoPoint }

func (v GeoPointValue) Value(*Options) any { return v.g }

func (v GeoPointValue) Equals(other Value) bool {
	o, ok := other.(GeoPointValue)
	return ok && v.g.Equals(o.g)
}

func (v GeoPointValue) Compare(other Value, bytesRemaining uint) SizedComparison {
	o, ok := other.(GeoPointValue)
	if !ok {
		return defaultCompare(v, other, bytesRemaining)
	}
	return SizedComparison{Cmp: v.g.Compare(o.g), Bytes: v.TruncatedSize(bytesRemaining)}
}

func (GeoPointValue) TruncatedSize(uint) uint {
	return geoPointTokenSize
}

func (v GeoPointValue) String() string {
	return "(" + strconv.FormatFloat(v.g.Latitude, 'g', -1, 64) + ", " + strconv.FormatFloat(v.g.Longitude, 'g', -1, 64) + ")"
}
