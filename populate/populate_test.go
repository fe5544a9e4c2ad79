package populate

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/gishub/RawDataAccessBencher/mapping"
	"github.com/gishub/RawDataAccessBencher/mapping/adventureworks"
)

func testEntity(t *testing.T) *mapping.EntityMapping {
	t.Helper()
	r := mapping.NewRegistry()
	r.AddEntity("Currency", "AdventureWorks", "Sales", "Currency", 3, 1)
	r.AddField("Currency", mapping.FieldMapping{
		FieldName: "CurrencyId", ColumnName: "CurrencyID", SQLType: "Int",
		Kind: mapping.KindInt32, AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()",
		Ordinal: 0,
	})
	r.AddField("Currency", mapping.FieldMapping{
		FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50,
		Kind: mapping.KindString, Ordinal: 1,
	})
	r.AddField("Currency", mapping.FieldMapping{
		FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime",
		Kind: mapping.KindTime, Ordinal: 2,
	})
	r.Seal()

	e, _ := r.Entity("Currency")
	return e
}

func TestTableSkipsGeneratedColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	defer db.Close()

	prep := mock.ExpectPrepare(regexp.QuoteMeta(
		"insert into Sales.Currency (Name, ModifiedDate) values ($1, $2)"))
	for i := 0; i < 3; i++ {
		prep.ExpectExec().WillReturnResult(sqlmock.NewResult(0, 1))
	}

	n, err := Table(db, testEntity(t), "Sales.Currency", 3, DialectPostgres, 42)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if n != 3 {
		t.Errorf("inserted = %d, want 3", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(DialectPostgres, 3); got != "$1, $2, $3" {
		t.Errorf("postgres placeholders = %q", got)
	}
	if got := placeholders(DialectMySQL, 2); got != "?, ?" {
		t.Errorf("mysql placeholders = %q", got)
	}
}

func TestSalesOrdersKeysAndDeterminism(t *testing.T) {
	first := SalesOrders(50, 7)
	if len(first) != 50 {
		t.Fatalf("len = %d, want 50", len(first))
	}
	for i, h := range first {
		if h.SalesOrderID != i+1 {
			t.Fatalf("order %d has id %d", i, h.SalesOrderID)
		}
		if h.SalesOrderID <= 0 {
			t.Fatalf("order %d would fail verification", i)
		}
		if h.DueDate.Before(h.OrderDate) {
			t.Errorf("order %d due before ordered", i)
		}
	}

	second := SalesOrders(50, 7)
	for i := range first {
		if first[i].CustomerID != second[i].CustomerID ||
			first[i].SubTotal != second[i].SubTotal {
			t.Fatalf("same seed produced different order %d", i)
		}
	}
}

func TestGeneratedValuesRespectMetadata(t *testing.T) {
	g := newGenerator(3)

	f := mapping.FieldMapping{Kind: mapping.KindString, Length: 10}
	for i := 0; i < 20; i++ {
		v := g.value(f).(string)
		if len(v) > 10 {
			t.Fatalf("string value %q longer than declared length", v)
		}
	}

	reg := adventureworks.Load()
	e, _ := reg.Entity("SalesOrderHeader")
	for _, fm := range e.Fields() {
		if fm.AutoGenerated {
			continue
		}
		// non-nullable columns must never produce nil
		if !fm.Nullable {
			for i := 0; i < 10; i++ {
				if g.value(fm) == nil {
					t.Fatalf("nil value for non-nullable %s", fm.FieldName)
				}
			}
		}
	}
}
