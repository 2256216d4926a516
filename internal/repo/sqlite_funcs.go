package repo

import (
	"database/sql/driver"
	"strings"

	"modernc.org/sqlite"
)

// Встроенный LOWER в SQLite переводит в нижний регистр только ASCII.
// Подменяем его на strings.ToLower, чтобы поиск совпадал с in-memory хранилищем и Postgres.
func init() {
	sqlite.MustRegisterDeterministicScalarFunction("lower", 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}
