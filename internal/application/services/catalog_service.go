package services

import (
	"fmt"

	"github.com/reglet-dev/launchkit/internal/application/dto"
	domainservices "github.com/reglet-dev/launchkit/internal/domain/services"
	"github.com/reglet-dev/launchkit/internal/domain/values"
)

// CategoryQuery narrows a category listing.
type CategoryQuery struct {
	// Filter is an expression over id, name, tier and tier_name.
	Filter string
	Tiers  []int
}

// CatalogService lists the registries launchers may reference.
type CatalogService struct{}

// NewCatalogService creates a catalog service.
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// Categories lists registry categories matching the query, in registry order.
func (s *CatalogService) Categories(query CategoryQuery) ([]dto.CategoryInfo, error) {
	filter := domainservices.NewCategoryFilter()
	for _, tier := range query.Tiers {
		t := values.CategoryTier(tier)
		if t < values.TierMain || t > values.TierReserved {
			return nil, fmt.Errorf("unknown category tier %d (valid: 1-3)", tier)
		}
		filter.WithTiers(t)
	}

	filter, err := filter.WithExpression(query.Filter)
	if err != nil {
		return nil, err
	}

	selected, err := filter.Apply(values.AllCategories())
	if err != nil {
		return nil, err
	}

	infos := make([]dto.CategoryInfo, 0, len(selected))
	for _, c := range selected {
		env := domainservices.NewCategoryEnv(c)
		infos = append(infos, dto.CategoryInfo{
			ID:       env.ID,
			Name:     env.Name,
			Tier:     env.Tier,
			TierName: env.TierName,
		})
	}
	return infos, nil
}

// Environments lists the known desktop environments.
func (s *CatalogService) Environments() []dto.EnvironmentInfo {
	all := values.AllDesktopEnvironments()
	infos := make([]dto.EnvironmentInfo, len(all))
	for i, env := range all {
		infos[i] = dto.EnvironmentInfo{Name: env.String()}
	}
	return infos
}
