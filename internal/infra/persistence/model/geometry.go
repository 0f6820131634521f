// Package model contains the GORM persistence models and their mapping to
// domain entities. Geometry columns are stored as EWKB with SRID 4326 so
// PostGIS can index them with GiST.
package model

import (
	"database/sql/driver"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/ewkb"
	"github.com/pkg/errors"
)

const srid = 4326

// Point is an orb.Point stored as an EWKB geometry(Point,4326) column.
type Point struct {
	orb.Point
}

// NewPoint wraps an orb.Point for persistence.
func NewPoint(p orb.Point) Point {
	return Point{Point: p}
}

// Value implements driver.Valuer.
func (p Point) Value() (driver.Value, error) {
	return ewkb.Value(p.Point, srid).Value()
}

// Scan implements sql.Scanner.
func (p *Point) Scan(value any) error {
	var pt orb.Point
	scanner := ewkb.Scanner(&pt)
	if err := scanner.Scan(value); err != nil {
		return errors.Wrap(err, "scan ewkb point")
	}

	p.Point = pt

	return nil
}

// GormDataType tells GORM the column type for migrations.
func (Point) GormDataType() string {
	return "geometry(Point,4326)"
}

// LineString is an orb.LineString stored as an EWKB geometry column.
// A nil LineString maps to SQL NULL, covering trips without a route yet.
type LineString struct {
	orb.LineString
}

// NewLineString wraps an orb.LineString for persistence.
func NewLineString(ls orb.LineString) LineString {
	return LineString{LineString: ls}
}

// Value implements driver.Valuer.
func (l LineString) Value() (driver.Value, error) {
	if len(l.LineString) == 0 {
		return nil, nil
	}

	return ewkb.Value(l.LineString, srid).Value()
}

// Scan implements sql.Scanner.
func (l *LineString) Scan(value any) error {
	if value == nil {
		l.LineString = nil

		return nil
	}

	var ls orb.LineString
	scanner := ewkb.Scanner(&ls)
	if err := scanner.Scan(value); err != nil {
		return errors.Wrap(err, "scan ewkb linestring")
	}

	l.LineString = ls

	return nil
}

// GormDataType tells GORM the column type for migrations.
func (LineString) GormDataType() string {
	return "geometry(LineString,4326)"
}
