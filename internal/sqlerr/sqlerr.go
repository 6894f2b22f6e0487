// Package sqlerr specifically handles database driver errors.
//
// It parses error codes from the PostgreSQL (pgx) and MariaDB
// (go-sql-driver/mysql) drivers and converts them into application
// errors: missing rows become 404s, every other driver failure becomes a
// 500 that carries the raw driver message.
package sqlerr

import "fmt"

// Code is a driver-independent classification of a database error.
type Code string

const (
	Other               Code = "other"
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
	InvalidText         Code = "invalid_text_representation"
	NumericOutOfRange   Code = "numeric_value_out_of_range"
	UndefinedTable      Code = "undefined_table"
	UndefinedColumn     Code = "undefined_column"
	ConnectionFailure   Code = "connection_failure"
)

// Severity mirrors the PostgreSQL severity levels.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// Error is a normalized database error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// pgCodes maps PostgreSQL SQLSTATE values to Codes.
var pgCodes = map[string]Code{
	"23502": NotNullViolation,
	"23503": ForeignKeyViolation,
	"23505": UniqueViolation,
	"23514": CheckViolation,
	"22P02": InvalidText,
	"22003": NumericOutOfRange,
	"42P01": UndefinedTable,
	"42703": UndefinedColumn,
	"08000": ConnectionFailure,
	"08003": ConnectionFailure,
	"08006": ConnectionFailure,
}

// MapCode maps a PostgreSQL SQLSTATE to a Code.
func MapCode(sqlState string) Code {
	if code, ok := pgCodes[sqlState]; ok {
		return code
	}
	return Other
}

// mysqlCodes maps MariaDB/MySQL server error numbers to Codes.
var mysqlCodes = map[uint16]Code{
	1048: NotNullViolation,    // ER_BAD_NULL_ERROR
	1364: NotNullViolation,    // ER_NO_DEFAULT_FOR_FIELD
	1451: ForeignKeyViolation, // ER_ROW_IS_REFERENCED_2
	1452: ForeignKeyViolation, // ER_NO_REFERENCED_ROW_2
	1062: UniqueViolation,     // ER_DUP_ENTRY
	3819: CheckViolation,      // ER_CHECK_CONSTRAINT_VIOLATED
	4025: CheckViolation,      // MariaDB ER_CONSTRAINT_FAILED
	1366: InvalidText,         // ER_TRUNCATED_WRONG_VALUE_FOR_FIELD
	1264: NumericOutOfRange,   // ER_WARN_DATA_OUT_OF_RANGE
	1146: UndefinedTable,      // ER_NO_SUCH_TABLE
	1054: UndefinedColumn,     // ER_BAD_FIELD_ERROR
}

// MapMySQLCode maps a MariaDB/MySQL error number to a Code.
func MapMySQLCode(number uint16) Code {
	if code, ok := mysqlCodes[number]; ok {
		return code
	}
	return Other
}

// MapSeverity maps a PostgreSQL severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch Severity(severity) {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return Severity(severity)
	default:
		return SeverityError
	}
}
