// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Every call acquires one pooled connection, runs one statement and
// releases the connection on every exit path. Driver errors are returned
// unwrapped so the error handler can surface the server message.
package repository
