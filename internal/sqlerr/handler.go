package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/sample-api/internal/errs"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the mapped Code for a given error.
//
// If err can be unwrapped into *Error its Code is returned, otherwise
// Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError converts a raw Postgres error into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// ConvertMySQLError converts a raw MariaDB/MySQL error into an *Error.
//
// The MySQL protocol does not report table or column metadata, so only
// the code and message are filled in.
func ConvertMySQLError(src *mysql.MySQLError) *Error {
	return &Error{
		Code:         MapMySQLCode(src.Number),
		Severity:     SeverityError,
		DatabaseCode: fmt.Sprintf("%d", src.Number),
		Message:      src.Message,
		driverErr:    src,
	}
}

// generateErrorCode creates a machine-friendly code from a DB error.
//
// Output format is <DOMAIN>_<ACTION>, e.g. agents + UniqueViolation
// gives AGENT_ALREADY_EXISTS. The code only goes to logs.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		domain = domain[:len(domain)-1]
	}

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidText, NumericOutOfRange:
		action = "INVALID"
	case UndefinedTable, UndefinedColumn:
		action = "UNDEFINED"
	case ConnectionFailure:
		action = "UNAVAILABLE"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// getEntityName infers an entity name from table/column data.
//
//  1. A column ending in "_id" names the entity ("agent_id" -> "Agent").
//  2. Otherwise the table name, singularized if it ends with "s".
//  3. Otherwise "Record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "Record"
}

// humanizeText converts snake_case into Title Case:
//
//	"working_area" -> "Working Area"
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// NotFound returns the 404 for a missing row of table, e.g.
// "Agent not found" for "agents".
func NotFound(table string) *errs.HTTPError {
	code := generateErrorCode(table, Other)
	code = strings.TrimSuffix(code, "_ERROR") + "_NOT_FOUND"
	return errs.NewNotFoundError(fmt.Sprintf("%s not found", getEntityName(table, "")), true, &code)
}

// HandleError converts a low-level database error into an application
// error.
//
//   - *errs.HTTPError is returned unchanged
//   - server errors from either driver become a 500 carrying the server
//     message and a generated code
//   - ErrNoRows becomes a 404
//   - anything else (dial failures, pool timeouts, cancelled contexts)
//     becomes a 500 carrying err.Error()
//
// There is no retry or reconnect logic here; the pool redials on the
// next acquire.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)
		code := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		return errs.NewStorageError(sqlErr, &code).WithMessage(sqlErr.Message)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		sqlErr := ConvertMySQLError(myErr)
		code := generateErrorCode("", sqlErr.Code)
		return errs.NewStorageError(sqlErr, &code).WithMessage(sqlErr.Message)
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewStorageError(err, nil)
}
