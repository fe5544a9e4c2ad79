package rawsql

import (
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var orderColumns = []string{
	"SalesOrderID", "RevisionNumber", "OrderDate", "DueDate", "ShipDate", "Status",
	"OnlineOrderFlag", "PurchaseOrderNumber", "AccountNumber", "CustomerID",
	"SalesPersonID", "TerritoryID", "SubTotal", "TaxAmt", "Freight", "Comment",
	"ModifiedDate",
}

func orderRow(id int64, now time.Time) []driver.Value {
	return []driver.Value{
		id, int64(8), now, now, nil, int64(5),
		true, nil, "10-4020-000676", int64(29825),
		int64(279), int64(5), 20565.6206, 1971.5149, 616.0984, nil,
		now,
	}
}

func TestFetchIndividual(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	defer db.Close()

	now := time.Date(2011, 5, 31, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("where SalesOrderID = $1")).
		WithArgs(43659).
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(orderRow(43659, now)...))

	e := New(db, DialectPostgres, "Sales.SalesOrderHeader")
	h, err := e.FetchIndividual(43659)
	if err != nil {
		t.Fatalf("FetchIndividual failed: %v", err)
	}
	if h == nil {
		t.Fatal("FetchIndividual returned no element")
	}
	if h.SalesOrderID != 43659 {
		t.Errorf("SalesOrderID = %d, want 43659", h.SalesOrderID)
	}
	if h.RevisionNumber != 8 || h.Status != 5 || !h.OnlineOrderFlag {
		t.Errorf("unexpected scan: %+v", h)
	}
	if h.ShipDate != nil || h.Comment != nil {
		t.Errorf("nullable columns should be nil: %+v", h)
	}
	if h.AccountNumber == nil || *h.AccountNumber != "10-4020-000676" {
		t.Errorf("AccountNumber = %v", h.AccountNumber)
	}
	if !h.OrderDate.Equal(now) {
		t.Errorf("OrderDate = %v, want %v", h.OrderDate, now)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestFetchIndividualMissingKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("where SalesOrderID = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	e := New(db, DialectPostgres, "Sales.SalesOrderHeader")
	h, err := e.FetchIndividual(1)
	if err != nil {
		t.Fatalf("FetchIndividual failed: %v", err)
	}
	if h != nil {
		t.Errorf("element = %+v, want absent", h)
	}
}

func TestFetchSetCursor(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(orderColumns).
		AddRow(orderRow(43659, now)...).
		AddRow(orderRow(43660, now)...).
		AddRow(orderRow(43661, now)...)
	mock.ExpectQuery(regexp.QuoteMeta("order by SalesOrderID")).WillReturnRows(rows)

	e := New(db, DialectPostgres, "Sales.SalesOrderHeader")
	set, err := e.FetchSet()
	if err != nil {
		t.Fatalf("FetchSet failed: %v", err)
	}
	defer set.Close()

	var ids []int
	for set.Next() {
		ids = append(ids, set.Element().SalesOrderID)
	}
	if err := set.Err(); err != nil {
		t.Fatalf("cursor error: %v", err)
	}
	if len(ids) != 3 || ids[0] != 43659 || ids[2] != 43661 {
		t.Errorf("ids = %v", ids)
	}
}

func TestPlaceholderDialects(t *testing.T) {
	if got := DialectPostgres.placeholder(); got != "$1" {
		t.Errorf("postgres placeholder = %q", got)
	}
	if got := DialectMySQL.placeholder(); got != "?" {
		t.Errorf("mysql placeholder = %q", got)
	}
	if got := DialectSQLite.placeholder(); got != "?" {
		t.Errorf("sqlite placeholder = %q", got)
	}
}
