// Package adventureworks carries the entity and field mappings for the
// AdventureWorks sample schema. The data below is mechanically derived from
// the physical schema, one entry per column, grouped per schema in
// declaration order; it carries no behavior of its own.
package adventureworks

import "github.com/gishub/RawDataAccessBencher/mapping"

const (
	// Catalog is the physical catalog every entity lives in.
	Catalog = "AdventureWorks"
	// SchemaRevision is the revision of the schema snapshot the mappings
	// were derived from.
	SchemaRevision = 1
)

type entityDef struct {
	name       string
	schema     string
	table      string
	fieldCount int
	fields     []mapping.FieldMapping
}

var entities = []entityDef{

	// HumanResources
	{name: "Department", schema: "HumanResources", table: "Department", fieldCount: 4, fields: []mapping.FieldMapping{
		{FieldName: "DepartmentId", ColumnName: "DepartmentID", SQLType: "SmallInt", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt16, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "GroupName", ColumnName: "GroupName", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
	}},
	{name: "Employee", schema: "HumanResources", table: "Employee", fieldCount: 14, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "NationalIdNumber", ColumnName: "NationalIDNumber", SQLType: "NVarChar", Length: 15, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "LoginId", ColumnName: "LoginID", SQLType: "NVarChar", Length: 256, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "JobTitle", ColumnName: "JobTitle", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 3},
		{FieldName: "BirthDate", ColumnName: "BirthDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
		{FieldName: "MaritalStatus", ColumnName: "MaritalStatus", SQLType: "NChar", Length: 1, Kind: mapping.KindString, Ordinal: 5},
		{FieldName: "Gender", ColumnName: "Gender", SQLType: "NChar", Length: 1, Kind: mapping.KindString, Ordinal: 6},
		{FieldName: "HireDate", ColumnName: "HireDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 7},
		{FieldName: "SalariedFlag", ColumnName: "SalariedFlag", SQLType: "Bit", Kind: mapping.KindBool, Ordinal: 8},
		{FieldName: "VacationHours", ColumnName: "VacationHours", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 9},
		{FieldName: "SickLeaveHours", ColumnName: "SickLeaveHours", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 10},
		{FieldName: "CurrentFlag", ColumnName: "CurrentFlag", SQLType: "Bit", Kind: mapping.KindBool, Ordinal: 11},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 12},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 13},
	}},
	{name: "EmployeeDepartmentHistory", schema: "HumanResources", table: "EmployeeDepartmentHistory", fieldCount: 6, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "DepartmentId", ColumnName: "DepartmentID", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 1},
		{FieldName: "ShiftId", ColumnName: "ShiftID", SQLType: "TinyInt", Kind: mapping.KindUInt8, Ordinal: 2},
		{FieldName: "StartDate", ColumnName: "StartDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
		{FieldName: "EndDate", ColumnName: "EndDate", Nullable: true, SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 5},
	}},
	{name: "EmployeePayHistory", schema: "HumanResources", table: "EmployeePayHistory", fieldCount: 5, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "RateChangeDate", ColumnName: "RateChangeDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 1},
		{FieldName: "Rate", ColumnName: "Rate", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 2},
		{FieldName: "PayFrequency", ColumnName: "PayFrequency", SQLType: "TinyInt", Kind: mapping.KindUInt8, Ordinal: 3},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
	}},
	{name: "JobCandidate", schema: "HumanResources", table: "JobCandidate", fieldCount: 4, fields: []mapping.FieldMapping{
		{FieldName: "JobCandidateId", ColumnName: "JobCandidateID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "Resume", ColumnName: "Resume", Nullable: true, SQLType: "Xml", Kind: mapping.KindXML, Ordinal: 2},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
	}},
	{name: "Shift", schema: "HumanResources", table: "Shift", fieldCount: 5, fields: []mapping.FieldMapping{
		{FieldName: "ShiftId", ColumnName: "ShiftID", SQLType: "TinyInt", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindUInt8, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "StartTime", ColumnName: "StartTime", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
		{FieldName: "EndTime", ColumnName: "EndTime", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
	}},

	// Person
	{name: "Address", schema: "Person", table: "Address", fieldCount: 8, fields: []mapping.FieldMapping{
		{FieldName: "AddressId", ColumnName: "AddressID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "AddressLine1", ColumnName: "AddressLine1", SQLType: "NVarChar", Length: 60, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "AddressLine2", ColumnName: "AddressLine2", Nullable: true, SQLType: "NVarChar", Length: 60, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "City", ColumnName: "City", SQLType: "NVarChar", Length: 30, Kind: mapping.KindString, Ordinal: 3},
		{FieldName: "StateProvinceId", ColumnName: "StateProvinceID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 4},
		{FieldName: "PostalCode", ColumnName: "PostalCode", SQLType: "NVarChar", Length: 15, Kind: mapping.KindString, Ordinal: 5},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 6},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 7},
	}},
	{name: "AddressType", schema: "Person", table: "AddressType", fieldCount: 4, fields: []mapping.FieldMapping{
		{FieldName: "AddressTypeId", ColumnName: "AddressTypeID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 2},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
	}},
	{name: "BusinessEntity", schema: "Person", table: "BusinessEntity", fieldCount: 3, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 1},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
	}},
	{name: "BusinessEntityAddress", schema: "Person", table: "BusinessEntityAddress", fieldCount: 5, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "AddressId", ColumnName: "AddressID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "AddressTypeId", ColumnName: "AddressTypeID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 2},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 3},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
	}},
	{name: "BusinessEntityContact", schema: "Person", table: "BusinessEntityContact", fieldCount: 5, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "PersonId", ColumnName: "PersonID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "ContactTypeId", ColumnName: "ContactTypeID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 2},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 3},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
	}},
	{name: "ContactType", schema: "Person", table: "ContactType", fieldCount: 3, fields: []mapping.FieldMapping{
		{FieldName: "ContactTypeId", ColumnName: "ContactTypeID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
	}},
	{name: "CountryRegion", schema: "Person", table: "CountryRegion", fieldCount: 3, fields: []mapping.FieldMapping{
		{FieldName: "CountryRegionCode", ColumnName: "CountryRegionCode", SQLType: "NVarChar", Length: 3, Kind: mapping.KindString, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
	}},
	{name: "EmailAddress", schema: "Person", table: "EmailAddress", fieldCount: 5, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "EmailAddressId", ColumnName: "EmailAddressID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "EmailAddress", ColumnName: "EmailAddress", Nullable: true, SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 3},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
	}},
	{name: "Password", schema: "Person", table: "Password", fieldCount: 5, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "PasswordHash", ColumnName: "PasswordHash", SQLType: "VarChar", Length: 128, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "PasswordSalt", ColumnName: "PasswordSalt", SQLType: "VarChar", Length: 10, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 3},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
	}},
	{name: "Person", schema: "Person", table: "Person", fieldCount: 13, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "PersonType", ColumnName: "PersonType", SQLType: "NChar", Length: 2, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "NameStyle", ColumnName: "NameStyle", SQLType: "Bit", Kind: mapping.KindBool, Ordinal: 2},
		{FieldName: "Title", ColumnName: "Title", Nullable: true, SQLType: "NVarChar", Length: 8, Kind: mapping.KindString, Ordinal: 3},
		{FieldName: "FirstName", ColumnName: "FirstName", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 4},
		{FieldName: "MiddleName", ColumnName: "MiddleName", Nullable: true, SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 5},
		{FieldName: "LastName", ColumnName: "LastName", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 6},
		{FieldName: "Suffix", ColumnName: "Suffix", Nullable: true, SQLType: "NVarChar", Length: 10, Kind: mapping.KindString, Ordinal: 7},
		{FieldName: "EmailPromotion", ColumnName: "EmailPromotion", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 8},
		{FieldName: "AdditionalContactInfo", ColumnName: "AdditionalContactInfo", Nullable: true, SQLType: "Xml", Kind: mapping.KindXML, Ordinal: 9},
		{FieldName: "Demographics", ColumnName: "Demographics", Nullable: true, SQLType: "Xml", Kind: mapping.KindXML, Ordinal: 10},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 11},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 12},
	}},
	{name: "PersonPhone", schema: "Person", table: "PersonPhone", fieldCount: 4, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "PhoneNumber", ColumnName: "PhoneNumber", SQLType: "NVarChar", Length: 25, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "PhoneNumberTypeId", ColumnName: "PhoneNumberTypeID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 2},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
	}},
	{name: "PhoneNumberType", schema: "Person", table: "PhoneNumberType", fieldCount: 3, fields: []mapping.FieldMapping{
		{FieldName: "PhoneNumberTypeId", ColumnName: "PhoneNumberTypeID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
	}},
	{name: "StateProvince", schema: "Person", table: "StateProvince", fieldCount: 8, fields: []mapping.FieldMapping{
		{FieldName: "StateProvinceId", ColumnName: "StateProvinceID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "StateProvinceCode", ColumnName: "StateProvinceCode", SQLType: "NChar", Length: 3, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "CountryRegionCode", ColumnName: "CountryRegionCode", SQLType: "NVarChar", Length: 3, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "IsOnlyStateProvinceFlag", ColumnName: "IsOnlyStateProvinceFlag", SQLType: "Bit", Kind: mapping.KindBool, Ordinal: 3},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 4},
		{FieldName: "TerritoryId", ColumnName: "TerritoryID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 5},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 6},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 7},
	}},

	// Production
	{name: "BillOfMaterials", schema: "Production", table: "BillOfMaterials", fieldCount: 9, fields: []mapping.FieldMapping{
		{FieldName: "BillOfMaterialsId", ColumnName: "BillOfMaterialsID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "ProductAssemblyId", ColumnName: "ProductAssemblyID", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "ComponentId", ColumnName: "ComponentID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 2},
		{FieldName: "StartDate", ColumnName: "StartDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
		{FieldName: "EndDate", ColumnName: "EndDate", Nullable: true, SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
		{FieldName: "UnitMeasureCode", ColumnName: "UnitMeasureCode", SQLType: "NChar", Length: 3, Kind: mapping.KindString, Ordinal: 5},
		{FieldName: "BOMLevel", ColumnName: "BOMLevel", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 6},
		{FieldName: "PerAssemblyQty", ColumnName: "PerAssemblyQty", SQLType: "Decimal", Precision: 8, Scale: 2, Kind: mapping.KindDecimal, Ordinal: 7},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 8},
	}},
	{name: "Culture", schema: "Production", table: "Culture", fieldCount: 3, fields: []mapping.FieldMapping{
		{FieldName: "CultureId", ColumnName: "CultureID", SQLType: "NChar", Length: 6, Kind: mapping.KindString, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
	}},
	{name: "Document", schema: "Production", table: "Document", fieldCount: 12, fields: []mapping.FieldMapping{
		{FieldName: "Title", ColumnName: "Title", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 0},
		{FieldName: "Owner", ColumnName: "Owner", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "FolderFlag", ColumnName: "FolderFlag", SQLType: "Bit", Kind: mapping.KindBool, Ordinal: 2},
		{FieldName: "FileName", ColumnName: "FileName", SQLType: "NVarChar", Length: 400, Kind: mapping.KindString, Ordinal: 3},
		{FieldName: "FileExtension", ColumnName: "FileExtension", SQLType: "NVarChar", Length: 8, Kind: mapping.KindString, Ordinal: 4},
		{FieldName: "Revision", ColumnName: "Revision", SQLType: "NChar", Length: 5, Kind: mapping.KindString, Ordinal: 5},
		{FieldName: "ChangeNumber", ColumnName: "ChangeNumber", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 6},
		{FieldName: "Status", ColumnName: "Status", SQLType: "TinyInt", Kind: mapping.KindUInt8, Ordinal: 7},
		{FieldName: "DocumentSummary", ColumnName: "DocumentSummary", Nullable: true, SQLType: "NVarChar", Length: 1073741823, Kind: mapping.KindString, Ordinal: 8},
		{FieldName: "Document", ColumnName: "Document", Nullable: true, SQLType: "VarBinary", Length: 2147483647, Kind: mapping.KindBytes, Ordinal: 9},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 10},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 11},
	}},
	{name: "Illustration", schema: "Production", table: "Illustration", fieldCount: 3, fields: []mapping.FieldMapping{
		{FieldName: "IllustrationId", ColumnName: "IllustrationID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Diagram", ColumnName: "Diagram", Nullable: true, SQLType: "Xml", Kind: mapping.KindXML, Ordinal: 1},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
	}},
	{name: "Location", schema: "Production", table: "Location", fieldCount: 5, fields: []mapping.FieldMapping{
		{FieldName: "LocationId", ColumnName: "LocationID", SQLType: "SmallInt", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt16, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "CostRate", ColumnName: "CostRate", SQLType: "SmallMoney", Precision: 10, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 2},
		{FieldName: "Availability", ColumnName: "Availability", SQLType: "Decimal", Precision: 8, Scale: 2, Kind: mapping.KindDecimal, Ordinal: 3},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
	}},
	{name: "Product", schema: "Production", table: "Product", fieldCount: 25, fields: []mapping.FieldMapping{
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "ProductNumber", ColumnName: "ProductNumber", SQLType: "NVarChar", Length: 25, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "MakeFlag", ColumnName: "MakeFlag", SQLType: "Bit", Kind: mapping.KindBool, Ordinal: 3},
		{FieldName: "FinishedGoodsFlag", ColumnName: "FinishedGoodsFlag", SQLType: "Bit", Kind: mapping.KindBool, Ordinal: 4},
		{FieldName: "Color", ColumnName: "Color", Nullable: true, SQLType: "NVarChar", Length: 15, Kind: mapping.KindString, Ordinal: 5},
		{FieldName: "SafetyStockLevel", ColumnName: "SafetyStockLevel", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 6},
		{FieldName: "ReorderPoint", ColumnName: "ReorderPoint", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 7},
		{FieldName: "StandardCost", ColumnName: "StandardCost", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 8},
		{FieldName: "ListPrice", ColumnName: "ListPrice", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 9},
		{FieldName: "Size", ColumnName: "Size", Nullable: true, SQLType: "NVarChar", Length: 5, Kind: mapping.KindString, Ordinal: 10},
		{FieldName: "SizeUnitMeasureCode", ColumnName: "SizeUnitMeasureCode", Nullable: true, SQLType: "NChar", Length: 3, Kind: mapping.KindString, Ordinal: 11},
		{FieldName: "WeightUnitMeasureCode", ColumnName: "WeightUnitMeasureCode", Nullable: true, SQLType: "NChar", Length: 3, Kind: mapping.KindString, Ordinal: 12},
		{FieldName: "Weight", ColumnName: "Weight", Nullable: true, SQLType: "Decimal", Precision: 8, Scale: 2, Kind: mapping.KindDecimal, Ordinal: 13},
		{FieldName: "DaysToManufacture", ColumnName: "DaysToManufacture", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 14},
		{FieldName: "ProductLine", ColumnName: "ProductLine", Nullable: true, SQLType: "NChar", Length: 2, Kind: mapping.KindString, Ordinal: 15},
		{FieldName: "Class", ColumnName: "Class", Nullable: true, SQLType: "NChar", Length: 2, Kind: mapping.KindString, Ordinal: 16},
		{FieldName: "Style", ColumnName: "Style", Nullable: true, SQLType: "NChar", Length: 2, Kind: mapping.KindString, Ordinal: 17},
		{FieldName: "ProductSubcategoryId", ColumnName: "ProductSubcategoryID", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 18},
		{FieldName: "ProductModelId", ColumnName: "ProductModelID", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 19},
		{FieldName: "SellStartDate", ColumnName: "SellStartDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 20},
		{FieldName: "SellEndDate", ColumnName: "SellEndDate", Nullable: true, SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 21},
		{FieldName: "DiscontinuedDate", ColumnName: "DiscontinuedDate", Nullable: true, SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 22},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 23},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 24},
	}},
	{name: "ProductCategory", schema: "Production", table: "ProductCategory", fieldCount: 4, fields: []mapping.FieldMapping{
		{FieldName: "ProductCategoryId", ColumnName: "ProductCategoryID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 2},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
	}},
	{name: "ProductCostHistory", schema: "Production", table: "ProductCostHistory", fieldCount: 5, fields: []mapping.FieldMapping{
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "StartDate", ColumnName: "StartDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 1},
		{FieldName: "EndDate", ColumnName: "EndDate", Nullable: true, SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
		{FieldName: "StandardCost", ColumnName: "StandardCost", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 3},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
	}},
	{name: "ProductDescription", schema: "Production", table: "ProductDescription", fieldCount: 4, fields: []mapping.FieldMapping{
		{FieldName: "ProductDescriptionId", ColumnName: "ProductDescriptionID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Description", ColumnName: "Description", SQLType: "NVarChar", Length: 400, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 2},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
	}},
	{name: "ProductDocument", schema: "Production", table: "ProductDocument", fieldCount: 2, fields: []mapping.FieldMapping{
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 1},
	}},
	{name: "ProductInventory", schema: "Production", table: "ProductInventory", fieldCount: 7, fields: []mapping.FieldMapping{
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "LocationId", ColumnName: "LocationID", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 1},
		{FieldName: "Shelf", ColumnName: "Shelf", SQLType: "NVarChar", Length: 10, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "Bin", ColumnName: "Bin", SQLType: "TinyInt", Kind: mapping.KindUInt8, Ordinal: 3},
		{FieldName: "Quantity", ColumnName: "Quantity", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 4},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 5},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 6},
	}},
	{name: "ProductListPriceHistory", schema: "Production", table: "ProductListPriceHistory", fieldCount: 5, fields: []mapping.FieldMapping{
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "StartDate", ColumnName: "StartDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 1},
		{FieldName: "EndDate", ColumnName: "EndDate", Nullable: true, SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
		{FieldName: "ListPrice", ColumnName: "ListPrice", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 3},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
	}},
	{name: "ProductModel", schema: "Production", table: "ProductModel", fieldCount: 6, fields: []mapping.FieldMapping{
		{FieldName: "ProductModelId", ColumnName: "ProductModelID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "CatalogDescription", ColumnName: "CatalogDescription", Nullable: true, SQLType: "Xml", Kind: mapping.KindXML, Ordinal: 2},
		{FieldName: "Instructions", ColumnName: "Instructions", Nullable: true, SQLType: "Xml", Kind: mapping.KindXML, Ordinal: 3},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 4},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 5},
	}},
	{name: "ProductModelIllustration", schema: "Production", table: "ProductModelIllustration", fieldCount: 3, fields: []mapping.FieldMapping{
		{FieldName: "ProductModelId", ColumnName: "ProductModelID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "IllustrationId", ColumnName: "IllustrationID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
	}},
	{name: "ProductModelProductDescriptionCulture", schema: "Production", table: "ProductModelProductDescriptionCulture", fieldCount: 4, fields: []mapping.FieldMapping{
		{FieldName: "ProductModelId", ColumnName: "ProductModelID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "ProductDescriptionId", ColumnName: "ProductDescriptionID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "CultureId", ColumnName: "CultureID", SQLType: "NChar", Length: 6, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
	}},
	{name: "ProductPhoto", schema: "Production", table: "ProductPhoto", fieldCount: 6, fields: []mapping.FieldMapping{
		{FieldName: "ProductPhotoId", ColumnName: "ProductPhotoID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "ThumbNailPhoto", ColumnName: "ThumbNailPhoto", Nullable: true, SQLType: "VarBinary", Length: 2147483647, Kind: mapping.KindBytes, Ordinal: 1},
		{FieldName: "ThumbnailPhotoFileName", ColumnName: "ThumbnailPhotoFileName", Nullable: true, SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "LargePhoto", ColumnName: "LargePhoto", Nullable: true, SQLType: "VarBinary", Length: 2147483647, Kind: mapping.KindBytes, Ordinal: 3},
		{FieldName: "LargePhotoFileName", ColumnName: "LargePhotoFileName", Nullable: true, SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 4},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 5},
	}},
	{name: "ProductProductPhoto", schema: "Production", table: "ProductProductPhoto", fieldCount: 4, fields: []mapping.FieldMapping{
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "ProductPhotoId", ColumnName: "ProductPhotoID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "Primary", ColumnName: "Primary", SQLType: "Bit", Kind: mapping.KindBool, Ordinal: 2},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
	}},
	{name: "ProductReview", schema: "Production", table: "ProductReview", fieldCount: 8, fields: []mapping.FieldMapping{
		{FieldName: "ProductReviewId", ColumnName: "ProductReviewID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "ReviewerName", ColumnName: "ReviewerName", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "ReviewDate", ColumnName: "ReviewDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
		{FieldName: "EmailAddress", ColumnName: "EmailAddress", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 4},
		{FieldName: "Rating", ColumnName: "Rating", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 5},
		{FieldName: "Comments", ColumnName: "Comments", Nullable: true, SQLType: "NVarChar", Length: 3850, Kind: mapping.KindString, Ordinal: 6},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 7},
	}},
	{name: "ProductSubcategory", schema: "Production", table: "ProductSubcategory", fieldCount: 5, fields: []mapping.FieldMapping{
		{FieldName: "ProductSubcategoryId", ColumnName: "ProductSubcategoryID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "ProductCategoryId", ColumnName: "ProductCategoryID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 3},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
	}},
	{name: "ScrapReason", schema: "Production", table: "ScrapReason", fieldCount: 3, fields: []mapping.FieldMapping{
		{FieldName: "ScrapReasonId", ColumnName: "ScrapReasonID", SQLType: "SmallInt", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt16, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
	}},
	{name: "TransactionHistory", schema: "Production", table: "TransactionHistory", fieldCount: 9, fields: []mapping.FieldMapping{
		{FieldName: "TransactionId", ColumnName: "TransactionID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "ReferenceOrderId", ColumnName: "ReferenceOrderID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 2},
		{FieldName: "ReferenceOrderLineId", ColumnName: "ReferenceOrderLineID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 3},
		{FieldName: "TransactionDate", ColumnName: "TransactionDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
		{FieldName: "TransactionType", ColumnName: "TransactionType", SQLType: "NChar", Length: 1, Kind: mapping.KindString, Ordinal: 5},
		{FieldName: "Quantity", ColumnName: "Quantity", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 6},
		{FieldName: "ActualCost", ColumnName: "ActualCost", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 7},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 8},
	}},
	{name: "TransactionHistoryArchive", schema: "Production", table: "TransactionHistoryArchive", fieldCount: 9, fields: []mapping.FieldMapping{
		{FieldName: "TransactionId", ColumnName: "TransactionID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "ReferenceOrderId", ColumnName: "ReferenceOrderID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 2},
		{FieldName: "ReferenceOrderLineId", ColumnName: "ReferenceOrderLineID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 3},
		{FieldName: "TransactionDate", ColumnName: "TransactionDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
		{FieldName: "TransactionType", ColumnName: "TransactionType", SQLType: "NChar", Length: 1, Kind: mapping.KindString, Ordinal: 5},
		{FieldName: "Quantity", ColumnName: "Quantity", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 6},
		{FieldName: "ActualCost", ColumnName: "ActualCost", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 7},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 8},
	}},
	{name: "UnitMeasure", schema: "Production", table: "UnitMeasure", fieldCount: 3, fields: []mapping.FieldMapping{
		{FieldName: "UnitMeasureCode", ColumnName: "UnitMeasureCode", SQLType: "NChar", Length: 3, Kind: mapping.KindString, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
	}},
	{name: "WorkOrder", schema: "Production", table: "WorkOrder", fieldCount: 10, fields: []mapping.FieldMapping{
		{FieldName: "WorkOrderId", ColumnName: "WorkOrderID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "OrderQty", ColumnName: "OrderQty", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 2},
		{FieldName: "StockedQty", ColumnName: "StockedQty", SQLType: "Int", AutoGenerated: true, GenerationExpr: "ISNULL([OrderQty]-[ScrappedQty],(0))", Kind: mapping.KindInt32, Ordinal: 3},
		{FieldName: "ScrappedQty", ColumnName: "ScrappedQty", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 4},
		{FieldName: "StartDate", ColumnName: "StartDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 5},
		{FieldName: "EndDate", ColumnName: "EndDate", Nullable: true, SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 6},
		{FieldName: "DueDate", ColumnName: "DueDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 7},
		{FieldName: "ScrapReasonId", ColumnName: "ScrapReasonID", Nullable: true, SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 8},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 9},
	}},
	{name: "WorkOrderRouting", schema: "Production", table: "WorkOrderRouting", fieldCount: 12, fields: []mapping.FieldMapping{
		{FieldName: "WorkOrderId", ColumnName: "WorkOrderID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "OperationSequence", ColumnName: "OperationSequence", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 2},
		{FieldName: "LocationId", ColumnName: "LocationID", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 3},
		{FieldName: "ScheduledStartDate", ColumnName: "ScheduledStartDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
		{FieldName: "ScheduledEndDate", ColumnName: "ScheduledEndDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 5},
		{FieldName: "ActualStartDate", ColumnName: "ActualStartDate", Nullable: true, SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 6},
		{FieldName: "ActualEndDate", ColumnName: "ActualEndDate", Nullable: true, SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 7},
		{FieldName: "ActualResourceHrs", ColumnName: "ActualResourceHrs", Nullable: true, SQLType: "Decimal", Precision: 9, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 8},
		{FieldName: "PlannedCost", ColumnName: "PlannedCost", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 9},
		{FieldName: "ActualCost", ColumnName: "ActualCost", Nullable: true, SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 10},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 11},
	}},

	// Purchasing
	{name: "ProductVendor", schema: "Purchasing", table: "ProductVendor", fieldCount: 11, fields: []mapping.FieldMapping{
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "AverageLeadTime", ColumnName: "AverageLeadTime", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 2},
		{FieldName: "StandardPrice", ColumnName: "StandardPrice", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 3},
		{FieldName: "LastReceiptCost", ColumnName: "LastReceiptCost", Nullable: true, SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 4},
		{FieldName: "LastReceiptDate", ColumnName: "LastReceiptDate", Nullable: true, SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 5},
		{FieldName: "MinOrderQty", ColumnName: "MinOrderQty", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 6},
		{FieldName: "MaxOrderQty", ColumnName: "MaxOrderQty", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 7},
		{FieldName: "OnOrderQty", ColumnName: "OnOrderQty", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 8},
		{FieldName: "UnitMeasureCode", ColumnName: "UnitMeasureCode", SQLType: "NChar", Length: 3, Kind: mapping.KindString, Ordinal: 9},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 10},
	}},
	{name: "PurchaseOrderDetail", schema: "Purchasing", table: "PurchaseOrderDetail", fieldCount: 11, fields: []mapping.FieldMapping{
		{FieldName: "PurchaseOrderId", ColumnName: "PurchaseOrderID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "PurchaseOrderDetailId", ColumnName: "PurchaseOrderDetailID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "DueDate", ColumnName: "DueDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
		{FieldName: "OrderQty", ColumnName: "OrderQty", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 3},
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 4},
		{FieldName: "UnitPrice", ColumnName: "UnitPrice", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 5},
		{FieldName: "LineTotal", ColumnName: "LineTotal", SQLType: "Money", Precision: 19, Scale: 4, AutoGenerated: true, GenerationExpr: "ISNULL([OrderQty]*[UnitPrice],(0.00))", Kind: mapping.KindDecimal, Ordinal: 6},
		{FieldName: "ReceivedQty", ColumnName: "ReceivedQty", SQLType: "Decimal", Precision: 8, Scale: 2, Kind: mapping.KindDecimal, Ordinal: 7},
		{FieldName: "RejectedQty", ColumnName: "RejectedQty", SQLType: "Decimal", Precision: 8, Scale: 2, Kind: mapping.KindDecimal, Ordinal: 8},
		{FieldName: "StockedQty", ColumnName: "StockedQty", SQLType: "Decimal", Precision: 9, Scale: 2, AutoGenerated: true, GenerationExpr: "ISNULL([ReceivedQty]-[RejectedQty],(0.00))", Kind: mapping.KindDecimal, Ordinal: 9},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 10},
	}},
	{name: "PurchaseOrderHeader", schema: "Purchasing", table: "PurchaseOrderHeader", fieldCount: 13, fields: []mapping.FieldMapping{
		{FieldName: "PurchaseOrderId", ColumnName: "PurchaseOrderID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "RevisionNumber", ColumnName: "RevisionNumber", SQLType: "TinyInt", Kind: mapping.KindUInt8, Ordinal: 1},
		{FieldName: "Status", ColumnName: "Status", SQLType: "TinyInt", Kind: mapping.KindUInt8, Ordinal: 2},
		{FieldName: "EmployeeId", ColumnName: "EmployeeID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 3},
		{FieldName: "VendorId", ColumnName: "VendorID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 4},
		{FieldName: "ShipMethodId", ColumnName: "ShipMethodID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 5},
		{FieldName: "OrderDate", ColumnName: "OrderDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 6},
		{FieldName: "ShipDate", ColumnName: "ShipDate", Nullable: true, SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 7},
		{FieldName: "SubTotal", ColumnName: "SubTotal", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 8},
		{FieldName: "TaxAmt", ColumnName: "TaxAmt", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 9},
		{FieldName: "Freight", ColumnName: "Freight", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 10},
		{FieldName: "TotalDue", ColumnName: "TotalDue", SQLType: "Money", Precision: 19, Scale: 4, AutoGenerated: true, GenerationExpr: "ISNULL(([SubTotal]+[TaxAmt])+[Freight],(0))", Kind: mapping.KindDecimal, Ordinal: 11},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 12},
	}},
	{name: "ShipMethod", schema: "Purchasing", table: "ShipMethod", fieldCount: 6, fields: []mapping.FieldMapping{
		{FieldName: "ShipMethodId", ColumnName: "ShipMethodID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "ShipBase", ColumnName: "ShipBase", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 2},
		{FieldName: "ShipRate", ColumnName: "ShipRate", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 3},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 4},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 5},
	}},
	{name: "Vendor", schema: "Purchasing", table: "Vendor", fieldCount: 8, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "AccountNumber", ColumnName: "AccountNumber", SQLType: "NVarChar", Length: 15, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "CreditRating", ColumnName: "CreditRating", SQLType: "TinyInt", Kind: mapping.KindUInt8, Ordinal: 3},
		{FieldName: "PreferredVendorStatus", ColumnName: "PreferredVendorStatus", SQLType: "Bit", Kind: mapping.KindBool, Ordinal: 4},
		{FieldName: "ActiveFlag", ColumnName: "ActiveFlag", SQLType: "Bit", Kind: mapping.KindBool, Ordinal: 5},
		{FieldName: "PurchasingWebServiceURL", ColumnName: "PurchasingWebServiceURL", Nullable: true, SQLType: "NVarChar", Length: 1024, Kind: mapping.KindString, Ordinal: 6},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 7},
	}},

	// Sales
	{name: "CountryRegionCurrency", schema: "Sales", table: "CountryRegionCurrency", fieldCount: 3, fields: []mapping.FieldMapping{
		{FieldName: "CountryRegionCode", ColumnName: "CountryRegionCode", SQLType: "NVarChar", Length: 3, Kind: mapping.KindString, Ordinal: 0},
		{FieldName: "CurrencyCode", ColumnName: "CurrencyCode", SQLType: "NChar", Length: 3, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
	}},
	{name: "CreditCard", schema: "Sales", table: "CreditCard", fieldCount: 6, fields: []mapping.FieldMapping{
		{FieldName: "CreditCardId", ColumnName: "CreditCardID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "CardType", ColumnName: "CardType", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "CardNumber", ColumnName: "CardNumber", SQLType: "NVarChar", Length: 25, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "ExpMonth", ColumnName: "ExpMonth", SQLType: "TinyInt", Kind: mapping.KindUInt8, Ordinal: 3},
		{FieldName: "ExpYear", ColumnName: "ExpYear", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 4},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 5},
	}},
	{name: "Currency", schema: "Sales", table: "Currency", fieldCount: 3, fields: []mapping.FieldMapping{
		{FieldName: "CurrencyCode", ColumnName: "CurrencyCode", SQLType: "NChar", Length: 3, Kind: mapping.KindString, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
	}},
	{name: "CurrencyRate", schema: "Sales", table: "CurrencyRate", fieldCount: 7, fields: []mapping.FieldMapping{
		{FieldName: "CurrencyRateId", ColumnName: "CurrencyRateID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "CurrencyRateDate", ColumnName: "CurrencyRateDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 1},
		{FieldName: "FromCurrencyCode", ColumnName: "FromCurrencyCode", SQLType: "NChar", Length: 3, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "ToCurrencyCode", ColumnName: "ToCurrencyCode", SQLType: "NChar", Length: 3, Kind: mapping.KindString, Ordinal: 3},
		{FieldName: "AverageRate", ColumnName: "AverageRate", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 4},
		{FieldName: "EndOfDayRate", ColumnName: "EndOfDayRate", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 5},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 6},
	}},
	{name: "Customer", schema: "Sales", table: "Customer", fieldCount: 7, fields: []mapping.FieldMapping{
		{FieldName: "CustomerId", ColumnName: "CustomerID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "PersonId", ColumnName: "PersonID", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "StoreId", ColumnName: "StoreID", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 2},
		{FieldName: "TerritoryId", ColumnName: "TerritoryID", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 3},
		{FieldName: "AccountNumber", ColumnName: "AccountNumber", SQLType: "VarChar", Length: 10, AutoGenerated: true, GenerationExpr: "isnull('AW'+[dbo].[ufnLeadingZeros]([CustomerID]),'')", Kind: mapping.KindString, Ordinal: 4},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 5},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 6},
	}},
	{name: "PersonCreditCard", schema: "Sales", table: "PersonCreditCard", fieldCount: 3, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "CreditCardId", ColumnName: "CreditCardID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
	}},
	{name: "SalesOrderDetail", schema: "Sales", table: "SalesOrderDetail", fieldCount: 11, fields: []mapping.FieldMapping{
		{FieldName: "SalesOrderId", ColumnName: "SalesOrderID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "SalesOrderDetailId", ColumnName: "SalesOrderDetailID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "CarrierTrackingNumber", ColumnName: "CarrierTrackingNumber", Nullable: true, SQLType: "NVarChar", Length: 25, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "OrderQty", ColumnName: "OrderQty", SQLType: "SmallInt", Kind: mapping.KindInt16, Ordinal: 3},
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 4},
		{FieldName: "SpecialOfferId", ColumnName: "SpecialOfferID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 5},
		{FieldName: "UnitPrice", ColumnName: "UnitPrice", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 6},
		{FieldName: "UnitPriceDiscount", ColumnName: "UnitPriceDiscount", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 7},
		{FieldName: "LineTotal", ColumnName: "LineTotal", SQLType: "Decimal", Precision: 38, Scale: 6, AutoGenerated: true, GenerationExpr: "isnull(([UnitPrice]*((1.0)-[UnitPriceDiscount]))*[OrderQty],(0.0))", Kind: mapping.KindDecimal, Ordinal: 8},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 9},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 10},
	}},
	{name: "SalesOrderHeader", schema: "Sales", table: "SalesOrderHeader", fieldCount: 26, fields: []mapping.FieldMapping{
		{FieldName: "SalesOrderId", ColumnName: "SalesOrderID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "RevisionNumber", ColumnName: "RevisionNumber", SQLType: "TinyInt", Kind: mapping.KindUInt8, Ordinal: 1},
		{FieldName: "OrderDate", ColumnName: "OrderDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
		{FieldName: "DueDate", ColumnName: "DueDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
		{FieldName: "ShipDate", ColumnName: "ShipDate", Nullable: true, SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
		{FieldName: "Status", ColumnName: "Status", SQLType: "TinyInt", Kind: mapping.KindUInt8, Ordinal: 5},
		{FieldName: "OnlineOrderFlag", ColumnName: "OnlineOrderFlag", SQLType: "Bit", Kind: mapping.KindBool, Ordinal: 6},
		{FieldName: "SalesOrderNumber", ColumnName: "SalesOrderNumber", SQLType: "NVarChar", Length: 25, AutoGenerated: true, GenerationExpr: "isnull(N'SO'+CONVERT(nvarchar(23),[SalesOrderID]),N'*** ERROR ***')", Kind: mapping.KindString, Ordinal: 7},
		{FieldName: "PurchaseOrderNumber", ColumnName: "PurchaseOrderNumber", Nullable: true, SQLType: "NVarChar", Length: 25, Kind: mapping.KindString, Ordinal: 8},
		{FieldName: "AccountNumber", ColumnName: "AccountNumber", Nullable: true, SQLType: "NVarChar", Length: 15, Kind: mapping.KindString, Ordinal: 9},
		{FieldName: "CustomerId", ColumnName: "CustomerID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 10},
		{FieldName: "SalesPersonId", ColumnName: "SalesPersonID", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 11},
		{FieldName: "TerritoryId", ColumnName: "TerritoryID", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 12},
		{FieldName: "BillToAddressId", ColumnName: "BillToAddressID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 13},
		{FieldName: "ShipToAddressId", ColumnName: "ShipToAddressID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 14},
		{FieldName: "ShipMethodId", ColumnName: "ShipMethodID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 15},
		{FieldName: "CreditCardId", ColumnName: "CreditCardID", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 16},
		{FieldName: "CreditCardApprovalCode", ColumnName: "CreditCardApprovalCode", Nullable: true, SQLType: "VarChar", Length: 15, Kind: mapping.KindString, Ordinal: 17},
		{FieldName: "CurrencyRateId", ColumnName: "CurrencyRateID", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 18},
		{FieldName: "SubTotal", ColumnName: "SubTotal", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 19},
		{FieldName: "TaxAmt", ColumnName: "TaxAmt", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 20},
		{FieldName: "Freight", ColumnName: "Freight", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 21},
		{FieldName: "TotalDue", ColumnName: "TotalDue", SQLType: "Money", Precision: 19, Scale: 4, AutoGenerated: true, GenerationExpr: "isnull(([SubTotal]+[TaxAmt])+[Freight],(0))", Kind: mapping.KindDecimal, Ordinal: 22},
		{FieldName: "Comment", ColumnName: "Comment", Nullable: true, SQLType: "NVarChar", Length: 128, Kind: mapping.KindString, Ordinal: 23},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 24},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 25},
	}},
	{name: "SalesOrderHeaderSalesReason", schema: "Sales", table: "SalesOrderHeaderSalesReason", fieldCount: 3, fields: []mapping.FieldMapping{
		{FieldName: "SalesOrderId", ColumnName: "SalesOrderID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "SalesReasonId", ColumnName: "SalesReasonID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
	}},
	{name: "SalesPerson", schema: "Sales", table: "SalesPerson", fieldCount: 9, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "TerritoryId", ColumnName: "TerritoryID", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "SalesQuota", ColumnName: "SalesQuota", Nullable: true, SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 2},
		{FieldName: "Bonus", ColumnName: "Bonus", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 3},
		{FieldName: "CommissionPct", ColumnName: "CommissionPct", SQLType: "SmallMoney", Precision: 10, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 4},
		{FieldName: "SalesYTD", ColumnName: "SalesYTD", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 5},
		{FieldName: "SalesLastYear", ColumnName: "SalesLastYear", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 6},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 7},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 8},
	}},
	{name: "SalesPersonQuotaHistory", schema: "Sales", table: "SalesPersonQuotaHistory", fieldCount: 5, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "QuotaDate", ColumnName: "QuotaDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 1},
		{FieldName: "SalesQuota", ColumnName: "SalesQuota", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 2},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 3},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
	}},
	{name: "SalesReason", schema: "Sales", table: "SalesReason", fieldCount: 4, fields: []mapping.FieldMapping{
		{FieldName: "SalesReasonId", ColumnName: "SalesReasonID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "ReasonType", ColumnName: "ReasonType", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
	}},
	{name: "SalesTaxRate", schema: "Sales", table: "SalesTaxRate", fieldCount: 7, fields: []mapping.FieldMapping{
		{FieldName: "SalesTaxRateId", ColumnName: "SalesTaxRateID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "StateProvinceId", ColumnName: "StateProvinceID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "TaxType", ColumnName: "TaxType", SQLType: "TinyInt", Kind: mapping.KindUInt8, Ordinal: 2},
		{FieldName: "TaxRate", ColumnName: "TaxRate", SQLType: "SmallMoney", Precision: 10, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 3},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 4},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 5},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 6},
	}},
	{name: "SalesTerritory", schema: "Sales", table: "SalesTerritory", fieldCount: 10, fields: []mapping.FieldMapping{
		{FieldName: "TerritoryId", ColumnName: "TerritoryID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "CountryRegionCode", ColumnName: "CountryRegionCode", SQLType: "NVarChar", Length: 3, Kind: mapping.KindString, Ordinal: 2},
		{FieldName: "Group", ColumnName: "Group", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 3},
		{FieldName: "SalesYTD", ColumnName: "SalesYTD", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 4},
		{FieldName: "SalesLastYear", ColumnName: "SalesLastYear", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 5},
		{FieldName: "CostYTD", ColumnName: "CostYTD", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 6},
		{FieldName: "CostLastYear", ColumnName: "CostLastYear", SQLType: "Money", Precision: 19, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 7},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 8},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 9},
	}},
	{name: "SalesTerritoryHistory", schema: "Sales", table: "SalesTerritoryHistory", fieldCount: 6, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "TerritoryId", ColumnName: "TerritoryID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "StartDate", ColumnName: "StartDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 2},
		{FieldName: "EndDate", ColumnName: "EndDate", Nullable: true, SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 4},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 5},
	}},
	{name: "ShoppingCartItem", schema: "Sales", table: "ShoppingCartItem", fieldCount: 6, fields: []mapping.FieldMapping{
		{FieldName: "ShoppingCartItemId", ColumnName: "ShoppingCartItemID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "ShoppingCartId", ColumnName: "ShoppingCartID", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "Quantity", ColumnName: "Quantity", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 2},
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 3},
		{FieldName: "DateCreated", ColumnName: "DateCreated", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 4},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 5},
	}},
	{name: "SpecialOffer", schema: "Sales", table: "SpecialOffer", fieldCount: 11, fields: []mapping.FieldMapping{
		{FieldName: "SpecialOfferId", ColumnName: "SpecialOfferID", SQLType: "Int", AutoGenerated: true, GenerationExpr: "SCOPE_IDENTITY()", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Description", ColumnName: "Description", SQLType: "NVarChar", Length: 255, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "DiscountPct", ColumnName: "DiscountPct", SQLType: "SmallMoney", Precision: 10, Scale: 4, Kind: mapping.KindDecimal, Ordinal: 2},
		{FieldName: "Type", ColumnName: "Type", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 3},
		{FieldName: "Category", ColumnName: "Category", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 4},
		{FieldName: "StartDate", ColumnName: "StartDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 5},
		{FieldName: "EndDate", ColumnName: "EndDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 6},
		{FieldName: "MinQty", ColumnName: "MinQty", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 7},
		{FieldName: "MaxQty", ColumnName: "MaxQty", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 8},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 9},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 10},
	}},
	{name: "SpecialOfferProduct", schema: "Sales", table: "SpecialOfferProduct", fieldCount: 4, fields: []mapping.FieldMapping{
		{FieldName: "SpecialOfferId", ColumnName: "SpecialOfferID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "ProductId", ColumnName: "ProductID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 1},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 2},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 3},
	}},
	{name: "Store", schema: "Sales", table: "Store", fieldCount: 6, fields: []mapping.FieldMapping{
		{FieldName: "BusinessEntityId", ColumnName: "BusinessEntityID", SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 0},
		{FieldName: "Name", ColumnName: "Name", SQLType: "NVarChar", Length: 50, Kind: mapping.KindString, Ordinal: 1},
		{FieldName: "SalesPersonId", ColumnName: "SalesPersonID", Nullable: true, SQLType: "Int", Kind: mapping.KindInt32, Ordinal: 2},
		{FieldName: "Demographics", ColumnName: "Demographics", Nullable: true, SQLType: "Xml", Kind: mapping.KindXML, Ordinal: 3},
		{FieldName: "Rowguid", ColumnName: "rowguid", SQLType: "UniqueIdentifier", Kind: mapping.KindUUID, Ordinal: 4},
		{FieldName: "ModifiedDate", ColumnName: "ModifiedDate", SQLType: "DateTime", Kind: mapping.KindTime, Ordinal: 5},
	}},
}

// Load builds the sealed registry for the AdventureWorks schema. The
// registration sequence runs once; the result is immutable reference data.
func Load() *mapping.Registry {
	r := mapping.NewRegistry()
	for _, e := range entities {
		r.AddEntity(e.name, Catalog, e.schema, e.table, e.fieldCount, SchemaRevision)
		for _, f := range e.fields {
			r.AddField(e.name, f)
		}
	}
	r.Seal()
	if err := r.Verify(); err != nil {
		panic(err)
	}
	return r
}
