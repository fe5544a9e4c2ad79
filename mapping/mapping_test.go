package mapping

import (
	"strings"
	"testing"
)

func field(ord int, name string) FieldMapping {
	return FieldMapping{
		FieldName:  name,
		ColumnName: name,
		SQLType:    "Int",
		Kind:       KindInt32,
		Ordinal:    ord,
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	r := NewRegistry()
	r.AddEntity("Customer", "AdventureWorks", "Sales", "Customer", 2, 1)
	r.AddField("Customer", field(0, "CustomerId"))
	r.AddField("Customer", FieldMapping{
		FieldName:  "AccountNumber",
		ColumnName: "AccountNumber",
		SQLType:    "VarChar",
		Length:     10,
		Kind:       KindString,
		Ordinal:    1,
	})
	r.Seal()

	if err := r.Verify(); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	e, ok := r.Entity("Customer")
	if !ok {
		t.Fatal("entity Customer not found")
	}
	if e.Qualified() != "AdventureWorks.Sales.Customer" {
		t.Errorf("Qualified = %q", e.Qualified())
	}
	if len(e.Fields()) != 2 {
		t.Fatalf("fields = %d, want 2", len(e.Fields()))
	}

	f, ok := e.Field("AccountNumber")
	if !ok {
		t.Fatal("field AccountNumber not found")
	}
	if f.Length != 10 || f.SQLType != "VarChar" || f.Kind != KindString {
		t.Errorf("unexpected field metadata: %+v", f)
	}
}

func TestVerifyReportsFieldCountMismatch(t *testing.T) {
	r := NewRegistry()
	r.AddEntity("Shift", "AdventureWorks", "HumanResources", "Shift", 3, 1)
	r.AddField("Shift", field(0, "ShiftId"))
	r.Seal()

	err := r.Verify()
	if err == nil {
		t.Fatal("Verify = nil, want error")
	}
	if !strings.Contains(err.Error(), "Shift") {
		t.Errorf("error does not name the entity: %v", err)
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

func TestRegistrationPanics(t *testing.T) {
	r := NewRegistry()
	r.AddEntity("Product", "AdventureWorks", "Production", "Product", 1, 1)

	expectPanic(t, "unknown entity", func() {
		r.AddField("Vendor", field(0, "VendorId"))
	})
	expectPanic(t, "non-contiguous ordinal", func() {
		r.AddField("Product", field(1, "Name"))
	})
	expectPanic(t, "duplicate entity", func() {
		r.AddEntity("Product", "AdventureWorks", "Production", "Product", 1, 1)
	})

	r.AddField("Product", field(0, "ProductId"))
	r.Seal()

	expectPanic(t, "AddEntity after seal", func() {
		r.AddEntity("Vendor", "AdventureWorks", "Purchasing", "Vendor", 1, 1)
	})
	expectPanic(t, "AddField after seal", func() {
		r.AddField("Product", field(1, "Name"))
	})
}

func TestFieldsReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.AddEntity("Currency", "AdventureWorks", "Sales", "Currency", 1, 1)
	r.AddField("Currency", field(0, "CurrencyCode"))
	r.Seal()

	e, _ := r.Entity("Currency")
	fields := e.Fields()
	fields[0].FieldName = "mutated"

	if got := e.Fields()[0].FieldName; got != "CurrencyCode" {
		t.Errorf("field name = %q, registry data was mutated through Fields()", got)
	}
}
