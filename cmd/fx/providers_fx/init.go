package providers_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"tripdesk/pkg/providers"
)

var Module = fx.Provide(
	provideSearchProviders)

// provideSearchProviders wires one client per configured stock-photo API.
// Providers without credentials are skipped; an empty slice just disables
// the search tier.
func provideSearchProviders() []providers.Provider {
	var list []providers.Provider

	if key := os.Getenv("UNSPLASH_ACCESS_KEY"); key != "" {
		list = append(list, providers.NewUnsplashProvider(key))
	}
	if key := os.Getenv("PEXELS_API_KEY"); key != "" {
		list = append(list, providers.NewPexelsProvider(key))
	}
	if key := os.Getenv("PIXABAY_API_KEY"); key != "" {
		list = append(list, providers.NewPixabayProvider(key))
	}

	if len(list) == 0 {
		log.Println("No image provider keys configured, search tier disabled")
	}
	return list
}
