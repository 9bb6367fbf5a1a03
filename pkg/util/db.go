package util

import (
	"errors"
	"strings"

	mysqlDriver "github.com/go-sql-driver/mysql"
)

// duplicateEntryErrCode MySQL: duplicate entry for unique key.
const duplicateEntryErrCode uint16 = 1062

// IsDuplicateEntryErr 判断是否为唯一键冲突错误
func IsDuplicateEntryErr(err error) bool {
	if err == nil {
		return false
	}

	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == duplicateEntryErrCode
	}

	return strings.Contains(strings.ToLower(err.Error()), "duplicate entry")
}
