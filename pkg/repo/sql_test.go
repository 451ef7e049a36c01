package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	assert.Equal(t, "SELECT 1 FROM units WHERE id = $1", Join("SELECT 1 FROM units", "", "WHERE id = $1"))
	assert.Equal(t, "", Join("", "  "))
}

func TestJoinWhere(t *testing.T) {
	assert.Equal(t, "", JoinWhere())
	assert.Equal(t, "WHERE a = $1 AND b = $2", JoinWhere("a = $1", "b = $2"))
}

func TestFormatLimitOffset(t *testing.T) {
	assert.Equal(t, "LIMIT 10 OFFSET 20", FormatLimitOffset(10, 20))
	assert.Equal(t, "LIMIT 10", FormatLimitOffset(10, 0))
	assert.Equal(t, "OFFSET 20", FormatLimitOffset(0, 20))
	assert.Equal(t, "", FormatLimitOffset(0, 0))
}

func TestResolveSortField(t *testing.T) {
	fields := map[string]string{
		"unitName":   "unit_name",
		"id":         "id",
		"unitSymbol": "unit_symbol",
	}

	assert.Equal(t, "unit_symbol", ResolveSortField(fields, "unitSymbol", "unitName"))
	// unknown keys fall back to the default column, never into the query
	assert.Equal(t, "unit_name", ResolveSortField(fields, "id; DROP TABLE units--", "unitName"))
	assert.Equal(t, "unit_name", ResolveSortField(fields, "", "unitName"))
}

func TestParseSortOrder(t *testing.T) {
	assert.True(t, ParseSortOrder("ASC"))
	assert.True(t, ParseSortOrder("asc"))
	assert.False(t, ParseSortOrder("DESC"))
	assert.False(t, ParseSortOrder(" desc "))
	assert.True(t, ParseSortOrder("sideways"))
	assert.True(t, ParseSortOrder(""))
}

func TestOrderBy(t *testing.T) {
	assert.Equal(t, "ORDER BY unit_name ASC", OrderBy("unit_name", true))
	assert.Equal(t, "ORDER BY unit_name DESC", OrderBy("unit_name", false))
	assert.Equal(t, "", OrderBy("", true))
}
