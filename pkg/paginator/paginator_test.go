package paginator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shareit/pkg/paginator"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, paginator.PaginateQuery{From: 0, Size: 1}.Validate())
	assert.ErrorIs(t, paginator.PaginateQuery{From: -1, Size: 10}.Validate(), paginator.ErrInvalidFrom)
	assert.ErrorIs(t, paginator.PaginateQuery{From: 0, Size: 0}.Validate(), paginator.ErrInvalidSize)
}

func TestPageArithmetic(t *testing.T) {
	tests := []struct {
		from, size        int
		page, offset, lim int
	}{
		{from: 0, size: 10, page: 0, offset: 0, lim: 10},
		{from: 9, size: 10, page: 0, offset: 0, lim: 10},
		{from: 10, size: 10, page: 1, offset: 10, lim: 10},
		{from: 5, size: 2, page: 2, offset: 4, lim: 2},
	}
	for _, tt := range tests {
		q := paginator.PaginateQuery{From: tt.from, Size: tt.size}
		assert.Equal(t, tt.page, q.Page())
		assert.Equal(t, tt.offset, q.Offset())
		assert.Equal(t, tt.lim, q.Limit())
	}
}

func TestFromQuery(t *testing.T) {
	assert.Equal(t, paginator.PaginateQuery{From: 0, Size: 10}, paginator.FromQuery(nil, nil))

	from, size := 20, 5
	assert.Equal(t, paginator.PaginateQuery{From: 20, Size: 5}, paginator.FromQuery(&from, &size))
}
