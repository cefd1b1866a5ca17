package onboarding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hitarthpattani/aio-toolkit-sub000/ioevents"
)

// commerceProviderMetadata is the provider family injected for Commerce
// providers so Commerce eventing recognizes them.
const commerceProviderMetadata = "dx_commerce_events"

// commerceKeywords trigger the Commerce special case when found in a
// provider's key, label, or description (case-insensitive).
var commerceKeywords = []string{"commerce", "magento", "adobe commerce"}

// skipReasonExists annotates skipped results for entities already present
// remotely.
const skipReasonExists = "already exists"

// providerResolver decides create-vs-skip for each desired provider against
// the remote provider store.
type providerResolver struct {
	projectName string
	store       ProviderStore
	logger      *slog.Logger
}

// enhancedLabel builds the per-project-unique display label.
func (r *providerResolver) enhancedLabel(provider Provider) string {
	return fmt.Sprintf("%s - %s", r.projectName, provider.Label)
}

// isCommerceProvider reports whether the provider matches the Commerce
// keyword heuristic.
func isCommerceProvider(provider Provider) bool {
	haystacks := []string{provider.Key, provider.Label, provider.Description}
	for _, haystack := range haystacks {
		lowered := strings.ToLower(haystack)
		for _, keyword := range commerceKeywords {
			if strings.Contains(lowered, keyword) {
				return true
			}
		}
	}
	return false
}

// Resolve fetches the remote providers once and walks the desired providers
// in order, creating the missing ones. A list failure aborts the whole
// stage; a single provider's create failure becomes a failed result and the
// loop continues.
func (r *providerResolver) Resolve(ctx context.Context, providers []Provider) ([]ProviderResult, error) {
	existing, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}

	// Index by label; labels are expected unique per project, so
	// last-write-wins on duplicates is acceptable.
	index := make(map[string]ioevents.Provider, len(existing))
	for _, remote := range existing {
		index[remote.Label] = remote
	}

	results := make([]ProviderResult, 0, len(providers))
	for _, provider := range providers {
		resolved := ResolvedProvider{
			Key:           provider.Key,
			Label:         r.enhancedLabel(provider),
			OriginalLabel: provider.Label,
			Description:   provider.Description,
			DocsURL:       provider.DocsURL,
		}

		if remote, ok := index[resolved.Label]; ok {
			resolved.ID = remote.ID
			resolved.InstanceID = remote.InstanceID
			r.logger.Info("provider already exists",
				"key", provider.Key,
				"label", resolved.Label,
				"id", remote.ID)
			results = append(results, ProviderResult{
				Skipped:  true,
				Provider: resolved,
				Reason:   skipReasonExists,
				Raw:      &remote,
			})
			continue
		}

		payload := ioevents.ProviderPayload{Label: resolved.Label}
		if provider.Description != "" {
			payload.Description = provider.Description
		}
		if provider.DocsURL != "" {
			payload.DocsURL = provider.DocsURL
		}
		if isCommerceProvider(provider) {
			payload.ProviderMetadata = commerceProviderMetadata
			payload.InstanceID = uuid.NewString()
		}

		created, err := r.store.Create(ctx, payload)
		if err != nil {
			r.logger.Error("provider creation failed",
				"key", provider.Key,
				"label", resolved.Label,
				"error", err)
			results = append(results, ProviderResult{
				Provider: resolved,
				Error:    err.Error(),
			})
			continue
		}

		resolved.ID = created.ID
		resolved.InstanceID = created.InstanceID
		r.logger.Info("provider created",
			"key", provider.Key,
			"label", resolved.Label,
			"id", created.ID)
		results = append(results, ProviderResult{
			Created:  true,
			Provider: resolved,
			Raw:      created,
		})
	}

	return results, nil
}
