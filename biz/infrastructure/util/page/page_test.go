package page

import (
	"testing"

	"paper-grade/biz/application/dto/basic"

	"github.com/stretchr/testify/assert"
)

func int64p(v int64) *int64 { return &v }

func TestParse_Defaults(t *testing.T) {
	p, size := Parse(nil)
	assert.Equal(t, int64(1), p)
	assert.Equal(t, int64(10), size)

	p, size = Parse(&basic.PaginationOptions{})
	assert.Equal(t, int64(1), p)
	assert.Equal(t, int64(10), size)
}

func TestParse_Explicit(t *testing.T) {
	p, size := Parse(&basic.PaginationOptions{Page: int64p(3), Limit: int64p(25)})
	assert.Equal(t, int64(3), p)
	assert.Equal(t, int64(25), size)
}

func TestParse_IgnoresNonPositive(t *testing.T) {
	p, size := Parse(&basic.PaginationOptions{Page: int64p(0), Limit: int64p(-5)})
	assert.Equal(t, int64(1), p)
	assert.Equal(t, int64(10), size)
}
