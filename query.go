package drivefolder

import (
	"fmt"
	"strings"
)

// buildQuery serializes a folder-scoped listing query for the Files.List
// q parameter. The folder-containment clause is always present; trashed
// items are excluded unless includeTrashed is set. Untrusted values are
// escaped before serialization so a crafted name cannot inject clauses.
func buildQuery(scope Scope, filter Filter, includeTrashed bool) string {
	clauses := []string{
		fmt.Sprintf("'%s' in parents", escapeQuery(scope.FolderID)),
	}
	if !includeTrashed {
		clauses = append(clauses, "trashed = false")
	}
	switch {
	case filter.ExactName != "":
		clauses = append(clauses, fmt.Sprintf("name = '%s'", escapeQuery(filter.ExactName)))
	case filter.NamePrefix != "":
		clauses = append(clauses, fmt.Sprintf("name contains '%s'", escapeQuery(filter.NamePrefix)))
	}
	return strings.Join(clauses, " and ")
}

// escapeQuery escapes a value for use inside a single-quoted query
// literal. Backslashes must be doubled before quotes are escaped.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", `\'`)
	return s
}
