package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/reglet-dev/launchkit/internal/domain/values"
)

// CategoryEnv defines the variables available during filter expression evaluation.
type CategoryEnv struct {
	ID       string `expr:"id"`
	Name     string `expr:"name"`
	TierName string `expr:"tier_name"`
	Tier     int    `expr:"tier"`
}

// NewCategoryEnv exposes a category to filter expressions.
func NewCategoryEnv(c values.Category) CategoryEnv {
	return CategoryEnv{
		ID:       c.ID(),
		Name:     c.String(),
		Tier:     int(c.Tier()),
		TierName: c.Tier().String(),
	}
}

// CategoryFilter selects categories from the registry by tier and by an
// optional boolean expression, e.g. `tier == 2 && name startsWith "Game"`.
type CategoryFilter struct {
	tiers         map[values.CategoryTier]bool
	filterProgram *vm.Program
}

// NewCategoryFilter initializes a filter that matches every category.
func NewCategoryFilter() *CategoryFilter {
	return &CategoryFilter{tiers: make(map[values.CategoryTier]bool)}
}

// WithTiers restricts the filter to the given tiers.
func (f *CategoryFilter) WithTiers(tiers ...values.CategoryTier) *CategoryFilter {
	for _, t := range tiers {
		f.tiers[t] = true
	}
	return f
}

// WithExpression compiles and applies an expression over CategoryEnv.
func (f *CategoryFilter) WithExpression(expression string) (*CategoryFilter, error) {
	if expression == "" {
		return f, nil
	}
	program, err := expr.Compile(expression, expr.Env(CategoryEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	f.filterProgram = program
	return f, nil
}

// Matches reports whether a category passes the filter.
func (f *CategoryFilter) Matches(c values.Category) (bool, error) {
	if len(f.tiers) > 0 && !f.tiers[c.Tier()] {
		return false, nil
	}
	if f.filterProgram == nil {
		return true, nil
	}

	out, err := expr.Run(f.filterProgram, NewCategoryEnv(c))
	if err != nil {
		return false, fmt.Errorf("filter evaluation failed for %s: %w", c.ID(), err)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter returned %T, expected bool", out)
	}
	return matched, nil
}

// Apply returns the categories that pass the filter, preserving order.
func (f *CategoryFilter) Apply(categories []values.Category) ([]values.Category, error) {
	selected := make([]values.Category, 0, len(categories))
	for _, c := range categories {
		ok, err := f.Matches(c)
		if err != nil {
			return nil, err
		}
		if ok {
			selected = append(selected, c)
		}
	}
	return selected, nil
}
