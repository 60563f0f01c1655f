/*
Package sqldataset loads instance matrices from SQL databases through
database/sql. It is driver-agnostic: callers register the driver they
need (github.com/mattn/go-sqlite3 for .db files, github.com/lib/pq for
PostgreSQL URLs) and pass its name to Open.

The training table is expected to have a column named after every
feature in the schema. Categorical columns hold the value strings,
continuous columns hold numeric values.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/sylvaml/sylva/dataset"
	"github.com/sylvaml/sylva/feature"
)

/*
Open takes a driver name and a data source name, opens a database
handle with them and pings it to validate the connection. It returns
the handle or an error.
*/
func Open(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %v", driver, err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s database: %v", driver, err)
	}
	return db, nil
}

/*
Load takes a context, a database handle, a table name and a schema and
returns a labeled dataset read from the table or an error. Every
feature of the schema, label included, must have a column of the same
name on the table.
*/
func Load(ctx context.Context, db *sql.DB, table string, s *feature.Schema) (*dataset.Dataset, error) {
	names := make([]string, 0, len(s.Inputs)+1)
	for _, f := range s.Inputs {
		names = append(names, quoteIdentifier(f.Name()))
	}
	names = append(names, quoteIdentifier(s.Label.Name()))
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(names, ", "), quoteIdentifier(table))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %v", table, err)
	}
	defer rows.Close()

	var x [][]float64
	var y []int
	values := make([]interface{}, len(names))
	for i := range values {
		values[i] = new(sql.RawBytes)
	}
	line := 0
	for rows.Next() {
		line++
		if err = rows.Scan(values...); err != nil {
			return nil, fmt.Errorf("scanning row %d of table %s: %v", line, table, err)
		}
		row := make([]float64, len(s.Inputs))
		for i, f := range s.Inputs {
			raw := string(*values[i].(*sql.RawBytes))
			v, err := encodeValue(f, raw)
			if err != nil {
				return nil, fmt.Errorf("row %d of table %s: %v", line, table, err)
			}
			row[i] = v
		}
		raw := string(*values[len(values)-1].(*sql.RawBytes))
		label, err := s.Label.Encode(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d of table %s: %v", line, table, err)
		}
		x = append(x, row)
		y = append(y, label)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating over table %s: %v", table, err)
	}
	return dataset.New(x, y, s)
}

func encodeValue(f feature.Feature, raw string) (float64, error) {
	if cf, ok := f.(*feature.CategoricalFeature); ok {
		v, err := cf.Encode(raw)
		if err != nil {
			return 0, err
		}
		return float64(v), nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("continuous feature %s got non-numeric value %q", f.Name(), raw)
	}
	return v, nil
}

// quoteIdentifier double-quotes an identifier, escaping embedded quotes.
// Works for both SQLite and PostgreSQL.
func quoteIdentifier(name string) string {
	return `"` + strings.Replace(name, `"`, `""`, -1) + `"`
}
