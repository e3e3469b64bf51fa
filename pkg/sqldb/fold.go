package sqldb

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"modernc.org/sqlite"
)

// sqliteLowerFunc folds case like strings.ToLower. SQLite's own lower() only
// handles ASCII.
const sqliteLowerFunc = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(sqliteLowerFunc, 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T", sqliteLowerFunc, v)
	}
}

// Lower lowercases col in SQL with the same Unicode rules as strings.ToLower.
func (d *DB) Lower(col string) exp.SQLFunctionExpression {
	if d.driver == DriverSQLite {
		return goqu.Func(sqliteLowerFunc, goqu.C(col))
	}
	return goqu.Func("LOWER", goqu.C(col))
}
