package repositories

import (
	"encoding/json"
	"os"
	"strings"
)

type CatalogRepositoryInterface interface {
	Lookup(city string) []string
}

// CatalogRepository is the static, pre-curated city→image-list mapping,
// loaded once from a local file at process start. Missing or unreadable
// catalogs just disable the tier.
type CatalogRepository struct {
	cities map[string][]string
}

func NewCatalogRepository(path string) (CatalogRepositoryInterface, error) {
	repo := &CatalogRepository{cities: make(map[string][]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		return repo, err
	}
	if err := json.Unmarshal(data, &repo.cities); err != nil {
		return &CatalogRepository{cities: make(map[string][]string)}, err
	}
	return repo, nil
}

// Lookup tries the exact city name first, then a case-insensitive pass.
func (r *CatalogRepository) Lookup(city string) []string {
	if urls, ok := r.cities[city]; ok {
		return urls
	}
	for name, urls := range r.cities {
		if strings.EqualFold(name, city) {
			return urls
		}
	}
	return nil
}
