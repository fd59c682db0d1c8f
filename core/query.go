package core

import (
	"net/url"
	"strings"
)

type QueryMode string

const (
	// QueryModePrefix percent-decodes the whole query, then only honours
	// name when it starts with "name=" and takes the remainder verbatim.
	QueryModePrefix QueryMode = "prefix"
	// QueryModeStandard parses the query as key/value pairs.
	QueryModeStandard QueryMode = "standard"
)

const namePrefix = "name="

func ParseQueryMode(s string) QueryMode {
	switch QueryMode(strings.ToLower(strings.TrimSpace(s))) {
	case QueryModeStandard:
		return QueryModeStandard
	default:
		return QueryModePrefix
	}
}

// NameFromQuery extracts the greeting name from a raw query string as it
// arrived on the request line.
func NameFromQuery(rawQuery string, mode QueryMode) string {
	if mode == QueryModeStandard {
		values, err := url.ParseQuery(rawQuery)
		if err != nil {
			return DefaultName
		}
		if name := values.Get("name"); name != "" {
			return name
		}
		return DefaultName
	}

	query := rawQuery
	if decoded, err := url.PathUnescape(rawQuery); err == nil {
		query = decoded
	}
	if strings.HasPrefix(query, namePrefix) {
		return query[len(namePrefix):]
	}
	return DefaultName
}
