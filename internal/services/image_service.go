package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"tripdesk/internal/repositories"
	"tripdesk/pkg/imagecache"
	"tripdesk/pkg/providers"
	"tripdesk/pkg/utils"
)

// FallbackImageURL is the generic travel photo returned when no better image
// can be resolved. Resolution never fails and never returns fewer URLs than
// asked for.
const FallbackImageURL = "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=1200"

type ImageServiceInterface interface {
	ResolveCityImages(ctx context.Context, city string, count int) []string
	ResolveAllCityImages(ctx context.Context, cities []string, count int) map[string][]string
	ResolveHeroImage(ctx context.Context, destinations []string) string
	// LookupLandmarkImage hits only the curated store (exact match, then AI
	// semantic matching). The bool reports whether a curated row was found;
	// callers must have their own fallback when it is false.
	LookupLandmarkImage(ctx context.Context, city string, landmark string) (string, bool)
}

type ImageService struct {
	catalog   repositories.CatalogRepositoryInterface
	photoRepo repositories.PhotoRepositoryInterface
	aiClient  utils.LLMClientInterface
	providers []providers.Provider
	cache     imagecache.Cache
}

func NewImageService(
	catalog repositories.CatalogRepositoryInterface,
	photoRepo repositories.PhotoRepositoryInterface,
	aiClient utils.LLMClientInterface,
	searchProviders []providers.Provider,
	cache imagecache.Cache,
) ImageServiceInterface {
	return &ImageService{
		catalog:   catalog,
		photoRepo: photoRepo,
		aiClient:  aiClient,
		providers: searchProviders,
		cache:     cache,
	}
}

// Fixed bonus per provider; ordering intentionally favors Unsplash over
// Pexels over Pixabay.
var providerBonus = map[string]float64{
	"unsplash": 30,
	"pexels":   20,
	"pixabay":  10,
}

// Landmark-flavored search phrases per city. Cities without an entry fall
// back to a generic travel query.
var citySearchQueries = map[string][]string{
	"buenos aires":            {"Obelisco Buenos Aires", "Caminito La Boca Buenos Aires", "Puerto Madero Buenos Aires"},
	"lima":                    {"Miraflores Lima Peru", "Plaza de Armas Lima", "Lima Peru coastline"},
	"cusco":                   {"Plaza de Armas Cusco", "Sacsayhuaman Cusco", "Cusco Peru streets"},
	"machu picchu":            {"Machu Picchu Peru", "Machu Picchu sunrise"},
	"santiago":                {"Cerro San Cristobal Santiago", "Santiago Chile skyline"},
	"san carlos de bariloche": {"Cerro Catedral Bariloche", "Lago Nahuel Huapi Bariloche"},
	"rio de janeiro":          {"Cristo Redentor Rio de Janeiro", "Pao de Acucar Rio de Janeiro"},
	"paris":                   {"Torre Eiffel Paris", "Louvre Paris"},
}

var iconicKeywords = []string{
	"machu picchu", "machu", "cusco",
	"paris", "eiffel", "coliseu", "rome",
	"tokyo", "dubai", "new york", "london",
}

func (s *ImageService) ResolveCityImages(ctx context.Context, city string, count int) []string {
	if count <= 0 {
		return nil
	}

	cacheKey := strings.ToLower(strings.TrimSpace(city)) + "|" + strconv.Itoa(count)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached
	}

	urls := s.resolveUncached(ctx, city, count)
	s.cache.Set(cacheKey, urls)
	return urls
}

func (s *ImageService) resolveUncached(ctx context.Context, city string, count int) []string {
	// Tier 1: static catalog, cycled to pad short lists.
	if catalogURLs := s.catalog.Lookup(city); len(catalogURLs) > 0 {
		urls := make([]string, 0, count)
		for i := 0; i < count; i++ {
			urls = append(urls, catalogURLs[i%len(catalogURLs)])
		}
		return urls
	}

	// Tier 2: stock-photo providers, merged and scored.
	urls := s.searchProviders(ctx, city, count)

	// Final tier: pad with the fallback image until the list is full.
	for len(urls) < count {
		urls = append(urls, FallbackImageURL)
	}
	return urls
}

func (s *ImageService) searchProviders(ctx context.Context, city string, count int) []string {
	city = strings.TrimSpace(city)
	if city == "" || len(s.providers) == 0 {
		return nil
	}

	var pool []providers.ImageCandidate
	for _, query := range searchQueriesFor(city) {
		for _, provider := range s.providers {
			candidates, err := provider.Search(ctx, query, count)
			if err != nil {
				log.Printf("Provider %s failed for %q: %v", provider.Name(), query, err)
				continue
			}
			pool = append(pool, candidates...)
		}
	}

	scored := make([]providers.ImageCandidate, 0, len(pool))
	for _, candidate := range pool {
		if candidate.URL == "" || isGrayscaleColor(candidate.Color) {
			continue
		}
		scored = append(scored, candidate)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return candidateScore(scored[i]) > candidateScore(scored[j])
	})

	var urls []string
	seen := make(map[string]bool)
	for _, candidate := range scored {
		if seen[candidate.URL] {
			continue
		}
		seen[candidate.URL] = true
		urls = append(urls, candidate.URL)
		if len(urls) == count {
			break
		}
	}
	return urls
}

func candidateScore(c providers.ImageCandidate) float64 {
	return float64(c.Likes) + 0.002*float64(c.Views) + providerBonus[c.Provider]
}

// isGrayscaleColor treats a dominant color as non-colorful when all three
// RGB channels sit within 20 of each other. Unknown colors pass.
func isGrayscaleColor(hex string) bool {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return false
	}

	r, errR := strconv.ParseInt(hex[0:2], 16, 32)
	g, errG := strconv.ParseInt(hex[2:4], 16, 32)
	b, errB := strconv.ParseInt(hex[4:6], 16, 32)
	if errR != nil || errG != nil || errB != nil {
		return false
	}

	max := r
	min := r
	for _, v := range []int64{g, b} {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return max-min <= 20
}

func searchQueriesFor(city string) []string {
	if queries, ok := citySearchQueries[strings.ToLower(city)]; ok {
		return queries
	}
	return []string{city + " travel landmark"}
}

func (s *ImageService) ResolveAllCityImages(ctx context.Context, cities []string, count int) map[string][]string {
	images := make(map[string][]string, len(cities))
	for _, city := range cities {
		images[city] = s.ResolveCityImages(ctx, city, count)
	}
	return images
}

// ResolveHeroImage prefers the first destination whose name contains an
// iconic keyword; otherwise the first destination wins.
func (s *ImageService) ResolveHeroImage(ctx context.Context, destinations []string) string {
	if len(destinations) == 0 {
		return FallbackImageURL
	}

	chosen := destinations[0]
search:
	for _, destination := range destinations {
		lower := strings.ToLower(destination)
		for _, keyword := range iconicKeywords {
			if strings.Contains(lower, keyword) {
				chosen = destination
				break search
			}
		}
	}

	urls := s.ResolveCityImages(ctx, chosen, 1)
	if len(urls) == 0 {
		return FallbackImageURL
	}
	return urls[0]
}

func (s *ImageService) LookupLandmarkImage(ctx context.Context, city string, landmark string) (string, bool) {
	photo, err := s.photoRepo.Lookup(ctx, city, landmark)
	if err != nil {
		log.Printf("Curated lookup failed for %s/%s: %v", city, landmark, err)
		return "", false
	}
	if photo != nil {
		return photo.ImageURL, true
	}

	corrected := s.matchLandmarkSemantically(ctx, city, landmark)
	if corrected == "" {
		return "", false
	}

	photo, err = s.photoRepo.Lookup(ctx, city, corrected)
	if err != nil || photo == nil {
		return "", false
	}
	log.Printf("[IA MATCH] %q -> %q", landmark, corrected)
	return photo.ImageURL, true
}

// matchLandmarkSemantically asks the model which stored landmark the caller
// meant ("Ponte da Mulher" -> "Puerto Madero"). Returns "" on no match or
// any failure.
func (s *ImageService) matchLandmarkSemantically(ctx context.Context, city string, landmark string) string {
	available, err := s.photoRepo.ListLandmarks(ctx, city)
	if err != nil || len(available) == 0 {
		return ""
	}

	prompt := fmt.Sprintf(`Você é um especialista em pontos turísticos.

CIDADE: %s

LANDMARK PROCURADO: %s

LANDMARKS DISPONÍVEIS NO BANCO:
- %s

TAREFA:
Identifique qual landmark disponível no banco corresponde ao landmark procurado.

REGRAS:
- "Ponte da Mulher" = "Puerto Madero" (a ponte fica lá)
- "La Boca" = "Caminito" (Caminito é em La Boca)
- "Cemitério" = "Cemitério da Recoleta"
- Se não houver correspondência clara, retorne "NENHUM"

Retorne APENAS o nome exato do landmark da lista, ou "NENHUM".
Não adicione explicações.`, city, landmark, strings.Join(available, "\n- "))

	result, err := s.aiClient.Complete(ctx,
		"Você é especialista em associar landmarks. Retorne APENAS o nome do landmark ou NENHUM.",
		prompt, 0.1, 50)
	if err != nil {
		log.Printf("Semantic landmark matching failed: %v", err)
		return ""
	}

	result = strings.TrimSpace(result)
	if strings.EqualFold(result, "NENHUM") {
		return ""
	}
	for _, candidate := range available {
		if candidate == result {
			return result
		}
	}
	return ""
}
