// Package rawsql benchmarks plain database/sql access. It works with any
// registered driver; the dialect only selects the placeholder style and the
// driver module reported in the framework name.
package rawsql

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gishub/RawDataAccessBencher/bencher"
	"github.com/gishub/RawDataAccessBencher/mapping/adventureworks"
)

// Dialect identifies the driver behind the database/sql handle.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectMySQL
	DialectSQLite
)

func (d Dialect) driverModule() string {
	switch d {
	case DialectMySQL:
		return "github.com/go-sql-driver/mysql"
	case DialectSQLite:
		return "github.com/mattn/go-sqlite3"
	default:
		return "github.com/lib/pq"
	}
}

func (d Dialect) placeholder() string {
	if d == DialectPostgres {
		return "$1"
	}
	return "?"
}

const columnList = "SalesOrderID, RevisionNumber, OrderDate, DueDate, ShipDate, Status, " +
	"OnlineOrderFlag, PurchaseOrderNumber, AccountNumber, CustomerID, SalesPersonID, " +
	"TerritoryID, SubTotal, TaxAmt, Freight, Comment, ModifiedDate"

type Engine struct {
	db        *sql.DB
	name      string
	selectOne string
	selectAll string
}

// New builds a strategy over an open database handle. The table name is the
// physical sales order header table, schema-qualified where the backend
// supports schemas.
func New(db *sql.DB, dialect Dialect, table string) *Engine {
	return &Engine{
		db:   db,
		name: bencher.FrameworkName("database/sql v%s (%s)", dialect.driverModule()),
		selectOne: fmt.Sprintf("select %s from %s where SalesOrderID = %s",
			columnList, table, dialect.placeholder()),
		selectAll: fmt.Sprintf("select %s from %s order by SalesOrderID",
			columnList, table),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner, h *adventureworks.SalesOrderHeader) error {
	return row.Scan(
		&h.SalesOrderID, &h.RevisionNumber, &h.OrderDate, &h.DueDate, &h.ShipDate,
		&h.Status, &h.OnlineOrderFlag, &h.PurchaseOrderNumber, &h.AccountNumber,
		&h.CustomerID, &h.SalesPersonID, &h.TerritoryID, &h.SubTotal, &h.TaxAmt,
		&h.Freight, &h.Comment, &h.ModifiedDate,
	)
}

func (e *Engine) FetchIndividual(key int) (*adventureworks.SalesOrderHeader, error) {
	var h adventureworks.SalesOrderHeader
	if err := scanOrder(e.db.QueryRow(e.selectOne, key), &h); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

// FetchSet returns a lazy cursor over sql.Rows; row materialization happens
// during enumeration, not here.
func (e *Engine) FetchSet() (bencher.Set[adventureworks.SalesOrderHeader], error) {
	rows, err := e.db.Query(e.selectAll)
	if err != nil {
		return nil, err
	}
	return &rowSet{rows: rows}, nil
}

func (e *Engine) Name() string             { return e.name }
func (e *Engine) UsesCaching() bool        { return false }
func (e *Engine) UsesChangeTracking() bool { return false }

type rowSet struct {
	rows *sql.Rows
	cur  *adventureworks.SalesOrderHeader
	err  error
}

func (s *rowSet) Next() bool {
	if s.err != nil || !s.rows.Next() {
		return false
	}
	var h adventureworks.SalesOrderHeader
	if err := scanOrder(s.rows, &h); err != nil {
		s.err = err
		return false
	}
	s.cur = &h
	return true
}

func (s *rowSet) Element() *adventureworks.SalesOrderHeader { return s.cur }

func (s *rowSet) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.rows.Err()
}

func (s *rowSet) Close() error { return s.rows.Close() }
