package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"fms/cdu/pkg/catalog"
	"fms/cdu/pkg/config"
	"fms/cdu/pkg/kv"
	"fms/cdu/pkg/logger"
	"fms/cdu/pkg/osmparser"

	"github.com/cockroachdb/pebble"
	"github.com/k0kubun/go-ansi"
)

var (
	sourceFile = flag.String("f", "", "catalog source: waypoint json (airport_data.json) or an openstreetmap .osm.pbf extract, default the -catalog file")
)

// imports a waypoint catalog into the pebble db read by cmd/cdu.
func main() {
	config.LoadEnv()
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	log := logger.New(cfg.LogLevel, cfg.LogDir)

	src := *sourceFile
	if src == "" {
		src = cfg.CatalogFile
	}

	if err := run(src, cfg.DBPath, ansi.NewAnsiStdout(), log); err != nil {
		log.Error("catalog import failed", slog.String("source", src), slog.Any("err", err))
		os.Exit(1)
	}
}

func run(src, dbPath string, progress io.Writer, log *slog.Logger) error {
	c, err := readCatalog(src)
	if err != nil {
		return err
	}
	if dups := c.Duplicates(); len(dups) > 0 {
		log.Warn("duplicate ICAO codes in catalog, first entry wins", slog.Any("codes", dups))
	}

	db, err := pebble.Open(dbPath, &pebble.Options{})
	if err != nil {
		return err
	}

	kvDB := kv.NewKVDB(db)
	defer kvDB.Close()

	if err := kvDB.SaveCatalog(c, progress); err != nil {
		return err
	}

	log.Info("catalog imported", slog.String("source", src), slog.String("db", dbPath), slog.Int("waypoints", c.Len()))
	return nil
}

func readCatalog(path string) (*catalog.Catalog, error) {
	if !strings.HasSuffix(filepath.Base(path), ".osm.pbf") {
		return catalog.LoadFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wps, err := osmparser.ParseAerodromes(context.Background(), f)
	if err != nil {
		return nil, err
	}
	return catalog.New(wps), nil
}
