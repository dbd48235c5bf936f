package db

import "database/sql"

// QueryRower is the minimal query surface schema checks need, satisfied by
// *sql.DB and sqlmock alike.
type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func HasTable(q QueryRower, table string) bool {
	if q == nil {
		return false
	}
	var name string
	err := q.QueryRow(`
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = DATABASE() AND table_name = ?`, table).Scan(&name)
	return err == nil
}

func HasColumn(q QueryRower, table, column string) bool {
	if q == nil {
		return false
	}
	var name string
	err := q.QueryRow(`
		SELECT column_name FROM information_schema.columns
		WHERE table_schema = DATABASE() AND table_name = ? AND column_name = ?`, table, column).Scan(&name)
	return err == nil
}
