// Package dbutil holds the postgres housekeeping run around populate and
// benchmark passes. Helpers panic on failure, matching how the binary treats
// infrastructure errors.
package dbutil

import (
	"database/sql"
	"fmt"

	"github.com/gishub/RawDataAccessBencher/util"
)

// Truncates the benchmark table
func Truncate(db *sql.DB, table string) {
	util.Try(db.Exec("truncate " + table))
}

// Vacuums and checkpoints the database so runs start from a settled state
func VacuumAndCheckpoint(db *sql.DB) {
	util.Try(db.Exec("vacuum analyze"))
	util.Try(db.Exec("checkpoint"))
}

// Returns the total size of the benchmark table, in bytes
func TableSize(db *sql.DB, table string) int64 {
	row := db.QueryRow(fmt.Sprintf("select pg_total_relation_size('%s')", table))
	var s int64
	util.CheckErr(row.Scan(&s))
	return s
}

// Returns the number of rows in the benchmark table
func RowCount(db *sql.DB, table string) int {
	row := db.QueryRow("select count(*) from " + table)
	var n int
	util.CheckErr(row.Scan(&n))
	return n
}
