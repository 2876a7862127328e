package catalog

import (
	"testing"

	"statica/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	all := c.All()
	require.Len(t, all, 7)
	assert.Equal(t, Virus30, all[0].ID)
	assert.Equal(t, Tools, all[len(all)-1].ID)

	for _, p := range all {
		assert.NotEmpty(t, p.Name, p.ID)
		assert.NotEmpty(t, p.Price, p.ID)
		assert.NotEmpty(t, p.Features, p.ID)
		assert.Contains(t, Categories, p.Category, p.ID)
	}

	assert.Equal(t, "Statica", c.Company().Name)
}

func TestByCategory(t *testing.T) {
	c := Default()

	assert.Len(t, c.ByCategory(entity.CategoryStaticModels), 4)
	assert.Len(t, c.ByCategory(entity.CategoryFlyingModels), 2)

	tools := c.ByCategory(entity.CategoryTools)
	require.Len(t, tools, 1)
	assert.Equal(t, entity.PriceVaries, tools[0].Price)
}

func TestGet(t *testing.T) {
	c := Default()

	assert.Equal(t, "₹3,499.00", c.Get(Virus30).Price)
	assert.Panics(t, func() { c.Get("concorde") })

	_, ok := c.Lookup("concorde")
	assert.False(t, ok)
}

func TestNew_DuplicateID(t *testing.T) {
	assert.Panics(t, func() {
		New(StaticaCompany(), []entity.Product{{ID: "a"}, {ID: "a"}})
	})
}
