// Package seedfile reads seed documents from disk and validates them against
// an embedded JSON Schema before anything is written to the database.
package seedfile
