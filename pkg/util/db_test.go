package util

import (
	"errors"
	"fmt"
	"testing"

	mysqlDriver "github.com/go-sql-driver/mysql"
)

func TestIsDuplicateEntryErr(t *testing.T) {
	dup := &mysqlDriver.MySQLError{Number: 1062, Message: "Duplicate entry 'x' for key 'uk_award'"}
	if !IsDuplicateEntryErr(dup) {
		t.Fatal("expected MySQL error 1062 to be recognized")
	}
	if !IsDuplicateEntryErr(fmt.Errorf("create failed: %w", dup)) {
		t.Fatal("expected wrapped 1062 to be recognized")
	}

	other := &mysqlDriver.MySQLError{Number: 1213, Message: "Deadlock found"}
	if IsDuplicateEntryErr(other) {
		t.Fatal("deadlock error should not be treated as duplicate entry")
	}
	if IsDuplicateEntryErr(errors.New("some other error")) {
		t.Fatal("generic error should not be treated as duplicate entry")
	}
	if IsDuplicateEntryErr(nil) {
		t.Fatal("nil should not be treated as duplicate entry")
	}
}
