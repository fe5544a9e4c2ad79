// Package pgx_engine benchmarks the native pgx driver, without the
// database/sql layer in between.
package pgx_engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gishub/RawDataAccessBencher/bencher"
	"github.com/gishub/RawDataAccessBencher/mapping/adventureworks"
)

const columnList = "SalesOrderID, RevisionNumber, OrderDate, DueDate, ShipDate, Status, " +
	"OnlineOrderFlag, PurchaseOrderNumber, AccountNumber, CustomerID, SalesPersonID, " +
	"TerritoryID, SubTotal, TaxAmt, Freight, Comment, ModifiedDate"

type Engine struct {
	pool      *pgxpool.Pool
	name      string
	selectOne string
	selectAll string
}

// Connect opens a small pool for the benchmark. The harness issues one call
// at a time, so a handful of connections is plenty.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 5
	cfg.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

func New(pool *pgxpool.Pool, table string) *Engine {
	return &Engine{
		pool: pool,
		name: bencher.FrameworkName("pgx v%s (%s)", "github.com/jackc/pgx/v5"),
		selectOne: fmt.Sprintf("select %s from %s where SalesOrderID = $1",
			columnList, table),
		selectAll: fmt.Sprintf("select %s from %s order by SalesOrderID",
			columnList, table),
	}
}

func scanOrder(row pgx.Row, h *adventureworks.SalesOrderHeader) error {
	return row.Scan(
		&h.SalesOrderID, &h.RevisionNumber, &h.OrderDate, &h.DueDate, &h.ShipDate,
		&h.Status, &h.OnlineOrderFlag, &h.PurchaseOrderNumber, &h.AccountNumber,
		&h.CustomerID, &h.SalesPersonID, &h.TerritoryID, &h.SubTotal, &h.TaxAmt,
		&h.Freight, &h.Comment, &h.ModifiedDate,
	)
}

func (e *Engine) FetchIndividual(key int) (*adventureworks.SalesOrderHeader, error) {
	var h adventureworks.SalesOrderHeader
	err := scanOrder(e.pool.QueryRow(context.Background(), e.selectOne, key), &h)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

// FetchSet returns a lazy cursor over pgx rows.
func (e *Engine) FetchSet() (bencher.Set[adventureworks.SalesOrderHeader], error) {
	rows, err := e.pool.Query(context.Background(), e.selectAll)
	if err != nil {
		return nil, err
	}
	return &rowSet{rows: rows}, nil
}

func (e *Engine) Name() string             { return e.name }
func (e *Engine) UsesCaching() bool        { return false }
func (e *Engine) UsesChangeTracking() bool { return false }

type rowSet struct {
	rows pgx.Rows
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

func (s *rowSet) Close() error {
	s.rows.Close()
	return nil
}
