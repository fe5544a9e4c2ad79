// Package populate fills benchmark tables with fake rows. Statements are
// built from the entity mapping registry: one parameter per column that the
// database does not generate itself, with values picked by the column's
// value kind and sized by its declared length, precision, and scale.
package populate

import (
	"database/sql"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"

	"github.com/gishub/RawDataAccessBencher/mapping"
	"github.com/gishub/RawDataAccessBencher/mapping/adventureworks"
	"github.com/gishub/RawDataAccessBencher/util"
)

// Dialect controls the placeholder style of generated INSERT statements.
type Dialect int

const (
	DialectPostgres Dialect = iota
	DialectMySQL
	DialectSQLite
)

func placeholders(d Dialect, n int) string {
	ph := make([]string, n)
	for i := range ph {
		if d == DialectPostgres {
			ph[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ph[i] = "?"
		}
	}
	return strings.Join(ph, ", ")
}

type generator struct {
	fake faker.Faker
	rng  *rand.Rand
}

func newGenerator(seed int64) *generator {
	return &generator{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (g *generator) value(f mapping.FieldMapping) any {
	// nullable columns stay sparse so fetched sets carry realistic NULLs
	if f.Nullable && g.rng.Intn(4) == 0 {
		return nil
	}

	switch f.Kind {
	case mapping.KindBool:
		return g.fake.Boolean().Bool()
	case mapping.KindUInt8:
		return g.rng.Intn(256)
	case mapping.KindInt16:
		return g.rng.Intn(math.MaxInt16) + 1
	case mapping.KindInt32, mapping.KindInt64:
		return g.rng.Intn(100000) + 1
	case mapping.KindFloat64:
		return g.rng.Float64() * 1000
	case mapping.KindDecimal:
		scale := f.Scale
		if scale == 0 {
			scale = 2
		}
		limit := math.Pow10(min(f.Precision-scale, 6))
		factor := math.Pow10(scale)
		return math.Round(g.rng.Float64()*limit*factor) / factor
	case mapping.KindString:
		length := f.Length
		if length <= 0 || length > 64 {
			length = 64
		}
		return util.RandomString(g.rng, length)
	case mapping.KindBytes:
		return []byte(util.RandomString(g.rng, 32))
	case mapping.KindTime:
		return time.Now().AddDate(0, 0, -g.rng.Intn(3650)).Truncate(time.Second)
	case mapping.KindUUID:
		return uuid.New().String()
	case mapping.KindXML:
		return "<root>" + g.fake.Lorem().Word() + "</root>"
	default:
		return nil
	}
}

// Table inserts n fake rows for the given entity and returns how many made it
// in. Auto-generated columns (identities and computed expressions) are left
// to the database.
func Table(db *sql.DB, entity *mapping.EntityMapping, table string, n int, d Dialect, seed int64) (int, error) {
	var cols []string
	var fields []mapping.FieldMapping
	for _, f := range entity.Fields() {
		if f.AutoGenerated {
			continue
		}
		fields = append(fields, f)
		cols = append(cols, f.ColumnName)
	}
	if len(fields) == 0 {
		return 0, fmt.Errorf("populate: entity %q has no insertable fields", entity.Name)
	}

	stmt, err := db.Prepare(fmt.Sprintf("insert into %s (%s) values (%s)",
		table, strings.Join(cols, ", "), placeholders(d, len(fields))))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	g := newGenerator(seed)
	inserted := 0
	for i := 0; i < n; i++ {
		args := make([]any, len(fields))
		for j, f := range fields {
			args[j] = g.value(f)
		}
		if _, err := stmt.Exec(args...); err != nil {
			return inserted, fmt.Errorf("populate: insert %s row %d: %w", entity.Name, i, err)
		}
		inserted++
	}
	return inserted, nil
}

// SalesOrders builds n fake order elements with ids 1..n, for stores that
// take whole documents rather than per-column inserts.
func SalesOrders(n int, seed int64) []*adventureworks.SalesOrderHeader {
	g := newGenerator(seed)
	orders := make([]*adventureworks.SalesOrderHeader, 0, n)
	for i := 1; i <= n; i++ {
		orderDate := time.Now().AddDate(0, 0, -g.rng.Intn(3650)).Truncate(time.Second)
		due := orderDate.AddDate(0, 0, 12)
		account := fmt.Sprintf("10-4020-%06d", g.rng.Intn(1000000))
		h := &adventureworks.SalesOrderHeader{
			SalesOrderID:    i,
			RevisionNumber:  uint8(g.rng.Intn(9)),
			OrderDate:       orderDate,
			DueDate:         due,
			Status:          uint8(g.rng.Intn(5) + 1),
			OnlineOrderFlag: g.fake.Boolean().Bool(),
			AccountNumber:   &account,
			CustomerID:      g.rng.Intn(20000) + 1,
			SubTotal:        math.Round(g.rng.Float64()*1e8) / 1e4,
			TaxAmt:          math.Round(g.rng.Float64()*1e6) / 1e4,
			Freight:         math.Round(g.rng.Float64()*1e5) / 1e4,
			ModifiedDate:    due,
		}
		if g.rng.Intn(2) == 0 {
			ship := orderDate.AddDate(0, 0, 7)
			h.ShipDate = &ship
		}
		if g.rng.Intn(4) == 0 {
			po := fmt.Sprintf("PO%d", g.rng.Intn(100000000))
			h.PurchaseOrderNumber = &po
		}
		if g.rng.Intn(5) == 0 {
			territory := g.rng.Intn(10) + 1
			h.TerritoryID = &territory
		}
		orders = append(orders, h)
	}
	return orders
}
