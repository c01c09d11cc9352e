package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tourism/shared/constant"
	"tourism/shared/dto"
	"tourism/shared/model"
)

func TestMetadataFromModel(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	var metadata dto.Metadata
	metadata.FromModel(model.Metadata{CreatedAt: created, CreatedBy: "u-1", ModifiedBy: "u-2"})

	parsed, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	assert.NoError(t, err)
	assert.True(t, created.Equal(parsed))
	assert.Empty(t, metadata.ModifiedAt)
	assert.Equal(t, "u-1", metadata.CreatedBy)
	assert.Equal(t, "u-2", metadata.ModifiedBy)
}

func TestQueryParamsFromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "?page=2&limit=20&sort_by=title&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "title", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults",
			query:          "",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "invalid values ignored",
			query:          "?page=-1&limit=abc&sort_dir=sideways",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit capped",
			query:    "?limit=5000",
			expected: dto.QueryParams{Limit: constant.MaxValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/reservations/"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParamsSortable(t *testing.T) {
	params := dto.QueryParams{SortBy: "title; DROP TABLE users", SortDir: dto.SortDirAsc}
	params.Sortable("reservations", "created_at", "title", "type")

	assert.Equal(t, "reservations.created_at", params.SortBy)
	assert.Equal(t, dto.SortDirDesc, params.SortDir)

	params = dto.QueryParams{SortBy: "title", SortDir: dto.SortDirAsc}
	params.Sortable("reservations", "created_at", "title", "type")

	assert.Equal(t, "reservations.title", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)
}

func TestFilterGroupWhereClause(t *testing.T) {
	group := dto.And(
		dto.Filter{Field: "name", Table: "places", Operator: dto.FilterOperatorLike, Value: "Milad"},
		dto.FilterGroup{
			Operator: dto.FilterGroupOperatorOr,
			Filters: []any{
				dto.Filter{ArgName: "type_a", Field: "type", Operator: dto.FilterOperatorEq, Value: "TOURISM"},
				dto.Filter{ArgName: "type_b", Field: "type", Operator: dto.FilterOperatorEq, Value: "SHOPPING"},
			},
		},
		dto.Filter{Field: "admin_id", Operator: dto.FilterIsNull},
		dto.Filter{Field: "ignored", Operator: "unknown"},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(LOWER(places.name) LIKE LOWER(:name)  AND (type = :type_a OR type = :type_b) AND admin_id IS NULL)", where)
	assert.Equal(t, map[string]any{"name": "%Milad%", "type_a": "TOURISM", "type_b": "SHOPPING"}, args)
}

func TestFilterInOperator(t *testing.T) {
	filter := dto.Filter{Field: "id", Table: "places", Operator: dto.FilterOperatorIn, Value: []string{"a", "b"}}

	where, args := filter.GetWhereClause()

	assert.Equal(t, "places.id IN (:id_0, :id_1) ", where)
	assert.Equal(t, map[string]any{"id_0": "a", "id_1": "b"}, args)
}

func TestEmptyGroup(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.True(t, group.Empty())
	assert.Empty(t, where)
	assert.Empty(t, args)
}
