package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/sylvaml/sylva/dataset"
	"github.com/sylvaml/sylva/dataset/csv"
	"github.com/sylvaml/sylva/dataset/sqldataset"
	"github.com/sylvaml/sylva/feature"
	"github.com/sylvaml/sylva/feature/yaml"
)

/*
loadDataset reads a labeled dataset from the given input, dispatching
on its form: a postgresql:// URL is read through the postgres driver, a
path ending in .db is read through the sqlite3 driver, any other path
is read as a CSV file and an empty input reads CSV from STDIN.
*/
func loadDataset(ctx context.Context, rcc *rootCmdConfig, input, table string, s *feature.Schema) (*dataset.Dataset, error) {
	if strings.HasPrefix(input, "postgresql://") || strings.HasPrefix(input, "postgres://") {
		rcc.Logf("Loading dataset from PostgreSQL table %s...", table)
		return loadSQLDataset(ctx, "postgres", input, table, s)
	}
	if strings.HasSuffix(input, ".db") {
		rcc.Logf("Loading dataset from SQLite3 table %s in %s...", table, input)
		return loadSQLDataset(ctx, "sqlite3", input, table, s)
	}
	var f *os.File
	if input == "" {
		rcc.Logf("Reading dataset from STDIN...")
		f = os.Stdin
	} else {
		rcc.Logf("Opening %s to read dataset...", input)
		var err error
		f, err = os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("opening dataset at %s: %v", input, err)
		}
		defer f.Close()
	}
	ds, err := csv.Read(f, s)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %v", err)
	}
	return ds, nil
}

func loadSQLDataset(ctx context.Context, driver, dsn, table string, s *feature.Schema) (*dataset.Dataset, error) {
	db, err := sqldataset.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return sqldataset.Load(ctx, db, table, s)
}

func loadSchema(metadataInput, label string) (*feature.Schema, error) {
	features, err := yaml.ReadFeaturesFromFile(metadataInput)
	if err != nil {
		return nil, err
	}
	return feature.NewSchema(features, label)
}
