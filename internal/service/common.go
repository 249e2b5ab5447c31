package service

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateError 唯一索引冲突
func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}
