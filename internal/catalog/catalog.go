// Package catalog holds the static Statica product catalog. A Catalog is built once
// at startup and never mutated, so it is shared by pointer across request handlers.
package catalog

import (
	"fmt"
	"statica/entity"
)

const (
	Virus30    = "virus_sw_80_30cm"
	Virus55    = "virus_sw_80_55cm"
	Rafale     = "dassault_rafale"
	Sukhoi     = "sukhoi_su30"
	Skybee     = "skybee_25_cl"
	Peacemaker = "ultra_peacemaker"
	Tools      = "modeling_tools"
)

// Categories lists product categories in display order.
var Categories = []entity.ProductCategory{
	entity.CategoryStaticModels,
	entity.CategoryFlyingModels,
	entity.CategoryTools,
}

type Catalog struct {
	company  entity.Company
	products map[string]entity.Product
	order    []string
}

func New(company entity.Company, products []entity.Product) *Catalog {
	c := &Catalog{
		company:  company,
		products: make(map[string]entity.Product, len(products)),
		order:    make([]string, 0, len(products)),
	}
	for _, p := range products {
		if _, ok := c.products[p.ID]; ok {
			panic(fmt.Sprintf("catalog: duplicate product id %q", p.ID))
		}
		c.products[p.ID] = p
		c.order = append(c.order, p.ID)
	}
	return c
}

func (c *Catalog) Company() entity.Company {
	return c.company
}

// Get returns the record for id. Every id referenced by the composer is part of the
// static catalog, so a miss is a programming error.
func (c *Catalog) Get(id string) entity.Product {
	p, ok := c.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown product id %q", id))
	}
	return p
}

func (c *Catalog) Lookup(id string) (entity.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

func (c *Catalog) All() []entity.Product {
	all := make([]entity.Product, 0, len(c.order))
	for _, id := range c.order {
		all = append(all, c.products[id])
	}
	return all
}

func (c *Catalog) ByCategory(category entity.ProductCategory) []entity.Product {
	var list []entity.Product
	for _, id := range c.order {
		if p := c.products[id]; p.Category == category {
			list = append(list, p)
		}
	}
	return list
}

func CategoryTitle(category entity.ProductCategory) string {
	switch category {
	case entity.CategoryStaticModels:
		return "🎯 STATIC DISPLAY MODEL KITS (Balsa Wood)"
	case entity.CategoryFlyingModels:
		return "✈️ FLYING MODEL KITS (RC & Control Line)"
	case entity.CategoryTools:
		return "🛠️ PRECISION MODELING TOOLS & EQUIPMENT"
	default:
		return string(category)
	}
}
