// Package mapping holds the static correspondence between logical entity and
// field names and the physical schema: table and column names plus SQL type
// metadata. A Registry is populated once during initialization by generated
// registration code, sealed, and read-only for the rest of the process.
// Registration mistakes are programming errors in the generated code, not
// runtime conditions, and panic.
package mapping

import "fmt"

// FieldMapping describes one physical column of an entity.
type FieldMapping struct {
	FieldName  string
	ColumnName string
	Nullable   bool
	// SQL storage type name, e.g. "Int", "NVarChar", "DateTime"
	SQLType string
	// Length, Precision and Scale are only meaningful for variable-size or
	// numeric types and are zero otherwise.
	Length    int
	Precision int
	Scale     int
	// AutoGenerated marks columns whose value the database produces;
	// GenerationExpr holds the identity/sequence expression, empty otherwise.
	AutoGenerated  bool
	GenerationExpr string
	Kind           ValueKind
	// Ordinal is the declaration position within the entity, contiguous
	// from zero.
	Ordinal int
}

// EntityMapping describes one entity backed by a physical table or view.
type EntityMapping struct {
	Name       string
	Catalog    string
	Schema     string
	TableName  string
	FieldCount int
	Revision   int

	fields []FieldMapping
}

// Fields returns the field mappings in ordinal order.
func (e *EntityMapping) Fields() []FieldMapping {
	out := make([]FieldMapping, len(e.fields))
	copy(out, e.fields)
	return out
}

// Field looks up a field mapping by its logical field name.
func (e *EntityMapping) Field(name string) (FieldMapping, bool) {
	for _, f := range e.fields {
		if f.FieldName == name {
			return f, true
		}
	}
	return FieldMapping{}, false
}

// Qualified returns the fully qualified physical name.
func (e *EntityMapping) Qualified() string {
	return e.Catalog + "." + e.Schema + "." + e.TableName
}

// Registry is the write-once entity mapping table.
type Registry struct {
	entities map[string]*EntityMapping
	order    []string
	sealed   bool
}

func NewRegistry() *Registry {
	return &Registry{entities: map[string]*EntityMapping{}}
}

// AddEntity declares an entity. Redeclaring a name or adding to a sealed
// registry panics.
func (r *Registry) AddEntity(name, catalog, schema, table string, fieldCount, revision int) {
	if r.sealed {
		panic("mapping: AddEntity on sealed registry")
	}
	if _, ok := r.entities[name]; ok {
		panic(fmt.Sprintf("mapping: entity %q declared twice", name))
	}
	r.entities[name] = &EntityMapping{
		Name:       name,
		Catalog:    catalog,
		Schema:     schema,
		TableName:  table,
		FieldCount: fieldCount,
		Revision:   revision,
	}
	r.order = append(r.order, name)
}

// AddField declares one field of a previously declared entity. The field's
// ordinal must be the next contiguous ordinal, starting at zero.
func (r *Registry) AddField(entity string, f FieldMapping) {
	if r.sealed {
		panic("mapping: AddField on sealed registry")
	}
	e, ok := r.entities[entity]
	if !ok {
		panic(fmt.Sprintf("mapping: field %q registered for unknown entity %q", f.FieldName, entity))
	}
	if f.Ordinal != len(e.fields) {
		panic(fmt.Sprintf("mapping: entity %q field %q has ordinal %d, want %d",
			entity, f.FieldName, f.Ordinal, len(e.fields)))
	}
	e.fields = append(e.fields, f)
}

// Seal freezes the registry. Any further registration panics.
func (r *Registry) Seal() {
	r.sealed = true
}

func (r *Registry) Sealed() bool {
	return r.sealed
}

// Verify checks that every entity has exactly its declared number of fields.
func (r *Registry) Verify() error {
	for _, name := range r.order {
		e := r.entities[name]
		if len(e.fields) != e.FieldCount {
			return fmt.Errorf("mapping: entity %q has %d fields, declared %d",
				name, len(e.fields), e.FieldCount)
		}
	}
	return nil
}

// Entity looks up an entity mapping by logical name.
func (r *Registry) Entity(name string) (*EntityMapping, bool) {
	e, ok := r.entities[name]
	return e, ok
}

// Entities returns all entity mappings in registration order.
func (r *Registry) Entities() []*EntityMapping {
	out := make([]*EntityMapping, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entities[name])
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}
