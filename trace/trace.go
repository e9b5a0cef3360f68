// Package trace writes sampled particle trajectories to a GeoPackage,
// one point feature per particle per sampled step.
package trace

import (
	"fmt"
	"log"

	"github.com/go-spatial/geom"
	"github.com/go-spatial/geom/encoding/gpkg"
	"github.com/go-spatial/geom/encoding/wkt"
	"github.com/muesli/reflow/truncate"

	"github.com/pdok/vec2d/sim"
)

const (
	debug          = false
	maxLogWidth    = 60
	tableName      = "trajectory"
	geometryColumn = "geom"
)

// the simulation space has no earthly reference, so: undefined cartesian
var undefinedCartesianSRS = gpkg.SpatialReferenceSystem{
	Name:                   "undefined cartesian",
	ID:                     -1,
	Organization:           "NONE",
	OrganizationCoordsysID: -1,
	Definition:             "undefined",
}

type feature struct {
	particle int
	step     int
	point    geom.Point
}

// Target collects sampled positions and writes them to a GeoPackage in pages.
type Target struct {
	handle      *gpkg.Handle
	pagesize    int
	sampleEvery int
	features    []feature
	extent      *geom.Extent
}

// NewTarget opens (or creates) the GeoPackage and prepares the trajectory
// table. Every sampleEvery-th step is recorded; features are written per
// pagesize in one transaction.
func NewTarget(file string, pagesize, sampleEvery int) (*Target, error) {
	handle, err := gpkg.Open(file)
	if err != nil {
		return nil, fmt.Errorf("error opening trace GeoPackage: %w", err)
	}
	target := &Target{handle: handle, pagesize: pagesize, sampleEvery: sampleEvery}
	err = target.buildTable()
	if err != nil {
		handle.Close()
		return nil, err
	}
	return target, nil
}

func (t *Target) buildTable() error {
	err := t.handle.UpdateSRS(undefinedCartesianSRS)
	if err != nil {
		return err
	}

	create := fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS "%v" (fid INTEGER PRIMARY KEY AUTOINCREMENT, particle INTEGER NOT NULL, step INTEGER NOT NULL, %v POINT);`,
		tableName, geometryColumn)
	_, err = t.handle.Exec(create)
	if err != nil {
		return fmt.Errorf("error building table in trace GeoPackage: %w", err)
	}

	err = t.handle.AddGeometryTable(gpkg.TableDescription{
		Name:          tableName,
		ShortName:     tableName,
		Description:   "sampled particle positions",
		GeometryField: geometryColumn,
		GeometryType:  gpkg.Point,
		SRS:           int32(undefinedCartesianSRS.ID),
		Z:             gpkg.Prohibited,
		M:             gpkg.Prohibited,
	})
	if err != nil {
		return fmt.Errorf("error adding geometry table in trace GeoPackage: %w", err)
	}
	return nil
}

// Observe records the particle positions of a sampled step.
// It matches sim.Observer.
func (t *Target) Observe(step int, particles []sim.Particle) {
	if step%t.sampleEvery != 0 {
		return
	}
	for i := range particles {
		point := particles[i].Pos.ToGeomPoint()
		if debug {
			log.Printf("  trace step %v particle %v: %v",
				step, i, truncate.StringWithTail(wkt.MustEncode(point), maxLogWidth, "..."))
		}
		t.features = append(t.features, feature{particle: i, step: step, point: point})
		if len(t.features) >= t.pagesize {
			t.writeFeatures()
		}
	}
}

func (t *Target) writeFeatures() {
	tx, err := t.handle.Begin()
	if err != nil {
		log.Fatalf("could not start a transaction: %s", err)
	}

	stmt, err := tx.Prepare(fmt.Sprintf(
		`INSERT INTO "%v" (particle, step, %v) VALUES (?, ?, ?);`, tableName, geometryColumn))
	if err != nil {
		log.Fatalf("could not prepare a statement: %s", err)
	}

	for _, f := range t.features {
		sb, err := gpkg.NewBinary(int32(undefinedCartesianSRS.ID), f.point)
		if err != nil {
			log.Fatalf("could not create a binary geometry: %s", err)
		}
		_, err = stmt.Exec(f.particle, f.step, sb)
		if err != nil {
			log.Fatalf("could not insert trace feature for particle %v: %s", f.particle, err)
		}

		if t.extent == nil {
			ext, err := geom.NewExtentFromGeometry(f.point)
			if err != nil {
				log.Println("failed to create new extent:", err)
				continue
			}
			t.extent = ext
		} else {
			t.extent.AddGeometry(f.point)
		}
	}
	stmt.Close()
	tx.Commit()

	t.features = t.features[:0]
}

// Close flushes pending features, updates the table extent and closes the
// GeoPackage.
func (t *Target) Close() error {
	if len(t.features) > 0 {
		t.writeFeatures()
	}
	if t.extent != nil {
		err := t.handle.UpdateGeometryExtent(tableName, t.extent)
		if err != nil {
			return fmt.Errorf("failed to update trace extent: %w", err)
		}
	}
	return t.handle.Close()
}
