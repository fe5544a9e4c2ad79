package adventureworks

import (
	"testing"

	"github.com/gishub/RawDataAccessBencher/mapping"
)

func TestLoadVerifies(t *testing.T) {
	r := Load()

	if !r.Sealed() {
		t.Error("registry not sealed after Load")
	}
	if err := r.Verify(); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if r.Len() != len(entities) {
		t.Errorf("Len = %d, want %d", r.Len(), len(entities))
	}
}

func TestOrdinalsContiguous(t *testing.T) {
	r := Load()
	for _, e := range r.Entities() {
		for i, f := range e.Fields() {
			if f.Ordinal != i {
				t.Errorf("%s.%s: ordinal %d at position %d", e.Name, f.FieldName, f.Ordinal, i)
			}
		}
	}
}

func TestSalesOrderHeaderMapping(t *testing.T) {
	r := Load()

	e, ok := r.Entity("SalesOrderHeader")
	if !ok {
		t.Fatal("SalesOrderHeader not registered")
	}
	if e.Schema != "Sales" || e.TableName != "SalesOrderHeader" {
		t.Errorf("physical name = %s.%s", e.Schema, e.TableName)
	}
	if e.Qualified() != "AdventureWorks.Sales.SalesOrderHeader" {
		t.Errorf("Qualified = %q", e.Qualified())
	}
	if e.FieldCount != 26 {
		t.Errorf("FieldCount = %d, want 26", e.FieldCount)
	}

	id, ok := e.Field("SalesOrderId")
	if !ok {
		t.Fatal("SalesOrderId field not found")
	}
	if id.ColumnName != "SalesOrderID" {
		t.Errorf("SalesOrderId column = %q", id.ColumnName)
	}
	if !id.AutoGenerated || id.GenerationExpr == "" {
		t.Error("SalesOrderId should be marked identity with a generation expression")
	}
	if id.Ordinal != 0 {
		t.Errorf("SalesOrderId ordinal = %d, want 0", id.Ordinal)
	}

	comment, ok := e.Field("Comment")
	if !ok {
		t.Fatal("Comment field not found")
	}
	if !comment.Nullable || comment.Length != 128 || comment.Kind != mapping.KindString {
		t.Errorf("unexpected Comment metadata: %+v", comment)
	}

	total, ok := e.Field("TotalDue")
	if !ok {
		t.Fatal("TotalDue field not found")
	}
	if !total.AutoGenerated {
		t.Error("TotalDue is computed and should be marked auto-generated")
	}
	if total.Precision != 19 || total.Scale != 4 {
		t.Errorf("TotalDue precision/scale = %d/%d", total.Precision, total.Scale)
	}
}

func TestRowguidColumns(t *testing.T) {
	r := Load()
	e, _ := r.Entity("Customer")
	f, ok := e.Field("Rowguid")
	if !ok {
		t.Fatal("Customer.Rowguid not found")
	}
	if f.ColumnName != "rowguid" || f.Kind != mapping.KindUUID || f.SQLType != "UniqueIdentifier" {
		t.Errorf("unexpected rowguid metadata: %+v", f)
	}
}
