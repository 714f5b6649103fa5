package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery(t *testing.T) {
	t.Run("Paginated", func(t *testing.T) {
		args := []interface{}{"company-id"}
		query := buildListQuery("SELECT id FROM jobs", []string{"company_id = $1"}, &args, 40, 20)

		assert.Equal(t, "SELECT id FROM jobs WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3", query)
		assert.Equal(t, []interface{}{"company-id", 20, 40}, args)
	})

	t.Run("Zero Limit Skips Pagination", func(t *testing.T) {
		args := []interface{}{"company-id"}
		query := buildListQuery("SELECT id FROM jobs", []string{"company_id = $1"}, &args, 0, 0)

		assert.Equal(t, "SELECT id FROM jobs WHERE company_id = $1 ORDER BY created_at DESC", query)
		assert.Equal(t, []interface{}{"company-id"}, args)
	})

	t.Run("No Conditions", func(t *testing.T) {
		args := []interface{}{}
		query := buildListQuery("SELECT id FROM jobs", nil, &args, 0, 10)

		assert.Equal(t, "SELECT id FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2", query)
	})
}
