package kv

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"sort"

	"fms/cdu/pkg/catalog"
	"fms/cdu/pkg/concurrent"
	"fms/cdu/pkg/datastructure"
	"fms/cdu/pkg/geo"

	"github.com/cockroachdb/pebble"
	"github.com/schollz/progressbar/v3"
	"github.com/uber/h3-go/v4"
)

const (
	waypointPrefix = "wp/"
	cellPrefix     = "cell/"
	// h3 resolution 5: ~250 km2 cells, a few airports per cell.
	h3Resolution = 5
)

// KVDB persists a waypoint catalog snapshot in pebble.
//
//	wp/<seq>     single waypoint, seq keeps catalog order
//	cell/<h3>    every waypoint whose location falls in the h3 cell
type KVDB struct {
	db *pebble.DB
}

func NewKVDB(db *pebble.DB) *KVDB {
	return &KVDB{db}
}

// OpenKVDB opens a catalog db written earlier by SaveCatalog. A missing
// directory is not created, the error wraps catalog.ErrLoad.
func OpenKVDB(path string) (*KVDB, error) {
	// pebble creates the directory before checking ErrorIfNotExists
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", catalog.ErrLoad, path, err)
	}
	db, err := pebble.Open(path, &pebble.Options{ErrorIfNotExists: true})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", catalog.ErrLoad, path, err)
	}
	return NewKVDB(db), nil
}

func waypointKey(seq int) []byte {
	return []byte(fmt.Sprintf("%s%08d", waypointPrefix, seq))
}

func cellKey(cell h3.Cell) string {
	return cellPrefix + cell.String()
}

// prefixUpperBound first key after every key starting with prefix.
func prefixUpperBound(prefix string) []byte {
	end := []byte(prefix)
	end[len(end)-1]++
	return end
}

type saveBucketResult struct {
	key []byte
	val []byte
	err error
}

func saveBucket(job concurrent.SaveBucketJobItem) saveBucketResult {
	val, err := CompressWaypoints(job.Waypoints)
	return saveBucketResult{key: []byte(job.KeyStr), val: val, err: err}
}

// SaveCatalog replaces the stored snapshot with c. progress may be nil.
func (k *KVDB) SaveCatalog(c *catalog.Catalog, progress io.Writer) error {
	if progress == nil {
		progress = io.Discard
	}
	wps := c.Waypoints()

	bar := progressbar.NewOptions(len(wps),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/2][reset] saving waypoints to pebble db..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	batch := k.db.NewBatch()
	defer batch.Close()

	for _, prefix := range []string{waypointPrefix, cellPrefix} {
		if err := batch.DeleteRange([]byte(prefix), prefixUpperBound(prefix), nil); err != nil {
			return err
		}
	}

	buckets := make(map[string][]datastructure.Waypoint)
	for i, wp := range wps {
		val, err := CompressWaypoints([]datastructure.Waypoint{wp})
		if err != nil {
			return fmt.Errorf("encode waypoint %s: %w", wp.ICAOCode, err)
		}
		if err := batch.Set(waypointKey(i), val, nil); err != nil {
			return err
		}

		cell := h3.LatLngToCell(h3.NewLatLng(wp.Lat, wp.Lon), h3Resolution)
		buckets[cellKey(cell)] = append(buckets[cellKey(cell)], wp)
		bar.Add(1)
	}
	fmt.Fprintln(progress, "")

	bar = progressbar.NewOptions(len(buckets),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][2/2][reset] saving h3 indexed waypoints to pebble db..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	workers := concurrent.NewWorkerPool[concurrent.SaveBucketJobItem, saveBucketResult](runtime.NumCPU(), len(buckets))
	for keyStr, bucket := range buckets {
		workers.AddJob(concurrent.SaveBucketJobItem{KeyStr: keyStr, Waypoints: bucket})
	}
	workers.Close()

	workers.Start(saveBucket)
	workers.Wait()

	var errs []error
	for res := range workers.CollectResults() {
		if res.err != nil {
			errs = append(errs, fmt.Errorf("encode %s: %w", res.key, res.err))
			continue
		}
		if err := batch.Set(res.key, res.val, nil); err != nil {
			errs = append(errs, err)
		}
		bar.Add(1)
	}
	fmt.Fprintln(progress, "")
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return batch.Commit(pebble.Sync)
}

// LoadCatalog rebuilds the stored catalog in its original order.
func (k *KVDB) LoadCatalog() (*catalog.Catalog, error) {
	iter, err := k.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(waypointPrefix),
		UpperBound: prefixUpperBound(waypointPrefix),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrLoad, err)
	}
	defer iter.Close()

	wps := []datastructure.Waypoint{}
	for iter.First(); iter.Valid(); iter.Next() {
		stored, err := LoadWaypoints(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("%w: key %s: %v", catalog.ErrLoad, iter.Key(), err)
		}
		wps = append(wps, stored...)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrLoad, err)
	}
	if len(wps) == 0 {
		return nil, fmt.Errorf("%w: no waypoints stored", catalog.ErrLoad)
	}

	return catalog.New(wps), nil
}

// WaypointsInRadius stored waypoints within radiusKm (great-circle) of lat/lon,
// closest first.
func (k *KVDB) WaypointsInRadius(lat, lon, radiusKm float64) ([]datastructure.Waypoint, error) {
	type found struct {
		wp   datastructure.Waypoint
		dist float64
	}
	res := []found{}

	for _, cell := range kRingIndexesArea(lat, lon, radiusKm) {
		val, closer, err := k.db.Get([]byte(cellKey(cell)))
		if errors.Is(err, pebble.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		bucket, err := LoadWaypoints(val)
		closer.Close()
		if err != nil {
			return nil, err
		}

		for _, wp := range bucket {
			d := geo.CalculateHaversineDistance(lat, lon, wp.Lat, wp.Lon)
			if d <= radiusKm {
				res = append(res, found{wp, d})
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].dist < res[j].dist
	})
	wps := make([]datastructure.Waypoint, 0, len(res))
	for _, f := range res {
		wps = append(wps, f.wp)
	}
	return wps, nil
}

/*
*
  - https://observablehq.com/@nrabinowitz/h3-radius-lookup?collection=@nrabinowitz/h3
    cells around lat,lon whose disk covers searchRadiusKm, plus one ring of margin
    for the hexagon edges.
*/
func kRingIndexesArea(lat, lon, searchRadiusKm float64) []h3.Cell {
	home := h3.NewLatLng(lat, lon)
	origin := h3.LatLngToCell(home, h3Resolution)
	originArea := h3.CellAreaKm2(origin)
	searchArea := math.Pi * searchRadiusKm * searchRadiusKm

	radius := 0
	diskArea := originArea

	for diskArea < searchArea {
		radius++
		cellCount := float64(3*radius*(radius+1) + 1)
		diskArea = cellCount * originArea
	}

	return h3.GridDisk(origin, radius+1)
}

func (k *KVDB) Close() error {
	return k.db.Close()
}
