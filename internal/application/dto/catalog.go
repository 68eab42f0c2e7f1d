package dto

// CategoryInfo describes one entry of the category registry.
type CategoryInfo struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	TierName string `json:"tier_name" yaml:"tier_name"`
	Tier     int    `json:"tier" yaml:"tier"`
}

// EnvironmentInfo describes a desktop environment usable in
// OnlyShowIn and NotShowIn.
type EnvironmentInfo struct {
	Name string `json:"name" yaml:"name"`
}
