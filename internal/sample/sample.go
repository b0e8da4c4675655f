// Package sample has fixed table schemas and example-table generators.
package sample

import (
	"fmt"
	"slices"
	"sort"

	"github.com/huangsam/concord/internal/dialect"
)

// TableSchema describes a fixed table layout with a short description per header.
type TableSchema struct {
	Name         string
	Headers      []string
	Descriptions []string
}

// Schema names.
const (
	PriceByCar = "price_by_car"
	Dishes     = "dishes"
)

// Schemas lists every known table layout by name.
var Schemas = map[string]TableSchema{
	PriceByCar: {
		Name:         PriceByCar,
		Headers:      []string{"Country", "Region", "Price"},
		Descriptions: []string{"Country", "Region (short)", "Price with unit (e.g. 500 USD)"},
	},
	Dishes: {
		Name:         Dishes,
		Headers:      []string{"Dish", "Origin", "Ingredients", "Price"},
		Descriptions: []string{"Name", "Region or country", "List joined with '⋮'", "Price with symbol"},
	},
}

// Names returns the schema names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Schemas))
	for name := range Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the schema registered under name.
func Lookup(name string) (TableSchema, error) {
	s, ok := Schemas[name]
	if !ok {
		return TableSchema{}, fmt.Errorf("unknown table schema %q, must be one of %v", name, Names())
	}
	return s, nil
}

// Rows returns the example rows of a schema, keyed by header.
func Rows(name string) ([]any, error) {
	switch name {
	case PriceByCar:
		return []any{
			map[string]any{"Country": "Cuba", "Region": "Central", "Price": "500 USD"},
			map[string]any{"Country": "Peru", "Region": "Andes", "Price": "600 USD"},
		}, nil
	case Dishes:
		return []any{
			map[string]any{"Dish": "Paella", "Origin": "Valencia", "Ingredients": []string{"Rice", "Corn", "Onion"}, "Price": "$34"},
			map[string]any{"Dish": "Congri", "Origin": "Cuba", "Ingredients": []string{"Rice", "Black beans", "Cumin"}, "Price": "$10"},
		}, nil
	default:
		return nil, fmt.Errorf("unknown table schema %q, must be one of %v", name, Names())
	}
}

// Render returns the example table of a schema as dialect text.
func Render(d dialect.Dialect, name string) (string, error) {
	s, err := Lookup(name)
	if err != nil {
		return "", err
	}
	rows, err := Rows(name)
	if err != nil {
		return "", err
	}
	return d.Render(s.Headers, rows)
}

// Generate writes the example table of a schema to path.
func Generate(d dialect.Dialect, name, path string) error {
	s, err := Lookup(name)
	if err != nil {
		return err
	}
	rows, err := Rows(name)
	if err != nil {
		return err
	}
	return d.WriteFile(path, slices.Clone(s.Headers), rows)
}
