package shared_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourism/shared"
	cacheMocks "tourism/shared/cache/mocks"
	"tourism/shared/constant"
	"tourism/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "no rows", total: 0, limit: 10, expected: 1},
		{name: "no limit", total: 40, limit: 0, expected: 1},
		{name: "exact", total: 40, limit: 10, expected: 4},
		{name: "remainder", total: 41, limit: 10, expected: 5},
		{name: "single page", total: 3, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Title   string  `db:"title"`
		Detail  *string `db:"detail"`
		Star    int     `db:"star"`
		Ignored string  `db:"-"`
		NoTag   string
	}

	detail := ""

	got := shared.TransformFields(update{Title: "Trip", Detail: &detail, Ignored: "x", NoTag: "y"}, "user-1")

	assert.Equal(t, "Trip", got["title"])
	assert.Equal(t, &detail, got["detail"])
	assert.NotContains(t, got, "star")
	assert.NotContains(t, got, "-")
	assert.Equal(t, "user-1", got[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, got[constant.FieldModifiedAt])
	assert.Len(t, got, 4)
}

func TestFilterByIDAndOwner(t *testing.T) {
	group := shared.FilterByID("r-1", "id", "reservations").
		Add(shared.FilterByOwner("u-1", "user_id", "reservations"))

	where, args := group.GetWhereClause()

	assert.Equal(t, "(reservations.id = :id AND reservations.user_id = :owner_user_id)", where)
	assert.Equal(t, map[string]any{"id": "r-1", "owner_user_id": "u-1"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "place:get:42", shared.BuildCacheKey("place:get", "42"))
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
	assert.Equal(t, "place:gets", shared.BuildCacheKey("place:gets"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.And(dto.Filter{Field: "type", Value: "SHOPPING", Operator: dto.FilterOperatorEq})

	first := shared.BuildCacheKeyWithQuery("place:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("place:gets", params, filter)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "place:gets:"))

	params.Page = 2
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("place:gets", params, filter))

	other := dto.And(dto.Filter{Field: "type", Value: "TOURISM", Operator: dto.FilterOperatorEq})
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("place:gets", dto.QueryParams{Page: 1, Limit: 10}, other))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "place:gets*").Return(nil)
	mockCache.EXPECT().Clear(gomock.Any(), "place:count*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), mockCache, "place:gets")
	shared.InvalidateCaches(context.Background(), mockCache, "place:count")
}
