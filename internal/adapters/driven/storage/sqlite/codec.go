package sqlite

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"strings"
	"unicode"

	"modernc.org/sqlite"
)

const (
	// jsonNull is the JSON representation of null.
	jsonNull = "null"

	// foldFunc is the SQL name of the Unicode-aware lower-casing function.
	// The built-in LOWER only folds ASCII.
	foldFunc = "fold"

	likeEscape = `\`
)

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(foldFunc, 1, fold)
}

// fold lower-cases text values with the same rules as likePattern.
func fold(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// encodeList serialises a string list for a JSON column. Nil encodes as "[]".
func encodeList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// encodeObject serialises a metadata map. Nil and empty maps become NULL.
func encodeObject(obj map[string]any) (sql.NullString, error) {
	if len(obj) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// decodeStringList parses a JSON array column. Anything that is not an
// array of strings decodes to an empty list; non-string elements are dropped.
func decodeStringList(raw string) []string {
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// decodeObject parses a JSON object column. NULL, malformed JSON or a
// non-object value decodes to nil.
func decodeObject(raw sql.NullString) map[string]any {
	if !raw.Valid || raw.String == "" || raw.String == jsonNull {
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw.String), &obj); err != nil {
		return nil
	}
	return obj
}

// likePattern lower-cases term, escapes LIKE wildcards in it and wraps it
// for a case-insensitive substring match built by likeCond.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}

// likeCond returns the condition matching expr against one likePattern.
func likeCond(expr string) string {
	return foldFunc + "(" + expr + ") LIKE ? ESCAPE '" + likeEscape + "'"
}

// escapeFTSQuery turns free text into a safe FTS5 MATCH expression. Every
// whitespace-separated term is wrapped in double quotes, so parentheses,
// wildcards, column-filter colons and boolean keywords are matched as
// plain text instead of being parsed as query syntax. Terms with no letter
// or digit are dropped. The result is empty when nothing searchable remains.
func escapeFTSQuery(query string) string {
	fields := strings.Fields(query)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if !strings.ContainsFunc(f, isWordRune) {
			continue
		}
		terms = append(terms, `"`+strings.ReplaceAll(f, `"`, `""`)+`"`)
	}
	return strings.TrimSpace(strings.Join(terms, " "))
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
