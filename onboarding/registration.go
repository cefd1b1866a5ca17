package onboarding

import (
	"context"
	"log/slog"

	"github.com/hitarthpattani/aio-toolkit-sub000/errors"
	"github.com/hitarthpattani/aio-toolkit-sub000/ioevents"
)

// DefaultDeliveryType is used when an event group's first event carries no
// delivery type.
const DefaultDeliveryType = "webhook"

// registrationResolver creates missing registrations, grouping each desired
// registration's events per provider.
type registrationResolver struct {
	clientID string
	store    RegistrationStore
	logger   *slog.Logger
}

// eventGroup is one registration's events under a single provider key,
// in input order.
type eventGroup struct {
	providerKey string
	events      []Event
}

// groupByProviderKey partitions events by their ProviderKey value,
// preserving first-seen group order and input order within a group.
func groupByProviderKey(events []Event) []eventGroup {
	groups := make([]eventGroup, 0, 1)
	position := make(map[string]int)
	for _, event := range events {
		i, ok := position[event.ProviderKey]
		if !ok {
			i = len(groups)
			position[event.ProviderKey] = i
			groups = append(groups, eventGroup{providerKey: event.ProviderKey})
		}
		groups[i].events = append(groups[i].events, event)
	}
	return groups
}

// findByOriginalLabel resolves an event group's provider key against the
// provider results. The lookup matches the result's OriginalLabel, not its
// Key: callers populate an event's provider key with the provider's label,
// and that contract is preserved here.
func findByOriginalLabel(providerResults []ProviderResult, label string) (ResolvedProvider, bool) {
	for _, result := range providerResults {
		if result.Provider.OriginalLabel == label {
			return result.Provider, true
		}
	}
	return ResolvedProvider{}, false
}

// Resolve fetches the remote registrations once and walks the desired
// registrations in order. Empty inputs mean nothing to do, not an error.
// A list failure aborts the stage; a single create failure becomes a failed
// result and the loop continues.
func (r *registrationResolver) Resolve(
	ctx context.Context,
	registrations []Registration,
	events []Event,
	providerResults []ProviderResult,
) ([]RegistrationResult, error) {
	results := make([]RegistrationResult, 0, len(registrations))
	if len(registrations) == 0 || len(events) == 0 || len(providerResults) == 0 {
		r.logger.Info("no registrations to resolve",
			"registrations", len(registrations),
			"events", len(events),
			"providers", len(providerResults))
		return results, nil
	}

	existing, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}

	// Registration names are used verbatim, without per-project enhancement.
	index := make(map[string]ioevents.Registration, len(existing))
	for _, remote := range existing {
		index[remote.Name] = remote
	}

	for _, registration := range registrations {
		var registrationEvents []Event
		for _, event := range events {
			if event.RegistrationKey == registration.Key {
				registrationEvents = append(registrationEvents, event)
			}
		}
		if len(registrationEvents) == 0 {
			r.logger.Info("registration has no events, skipping",
				"key", registration.Key,
				"label", registration.Label)
			continue
		}

		for _, group := range groupByProviderKey(registrationEvents) {
			provider, ok := findByOriginalLabel(providerResults, group.providerKey)
			if !ok || provider.ID == "" {
				r.logger.Warn("no resolved provider for event group",
					"registration", registration.Key,
					"provider", group.providerKey)
				continue
			}

			resolved := ResolvedRegistration{
				Key:         registration.Key,
				Label:       registration.Label,
				Description: registration.Description,
			}

			if remote, ok := index[registration.Label]; ok {
				resolved.ID = remote.ID
				r.logger.Info("registration already exists",
					"key", registration.Key,
					"name", registration.Label,
					"id", remote.ID)
				results = append(results, RegistrationResult{
					Skipped:      true,
					Registration: resolved,
					Provider:     provider,
					Reason:       skipReasonExists,
					Raw:          &remote,
				})
				continue
			}

			created, err := r.create(ctx, registration, provider, group.events)
			if err != nil {
				r.logger.Error("registration creation failed",
					"key", registration.Key,
					"name", registration.Label,
					"error", err)
				results = append(results, RegistrationResult{
					Registration: resolved,
					Provider:     provider,
					Error:        err.Error(),
				})
				continue
			}

			resolved.ID = created.ID
			r.logger.Info("registration created",
				"key", registration.Key,
				"name", registration.Label,
				"id", created.ID)
			results = append(results, RegistrationResult{
				Created:      true,
				Registration: resolved,
				Provider:     provider,
				Raw:          created,
			})
		}
	}

	return results, nil
}

// create builds the creation payload from the group's events. The first
// event sources the delivery type and runtime action; every event
// contributes an events_of_interest entry.
func (r *registrationResolver) create(
	ctx context.Context,
	registration Registration,
	provider ResolvedProvider,
	events []Event,
) (*ioevents.Registration, error) {
	// Step filtering guarantees a non-empty group; checked anyway.
	if len(events) == 0 {
		return nil, errors.New(errors.CodeInvalidInput, "onboarding.createRegistration",
			"no events provided")
	}

	first := events[0]
	deliveryType := first.DeliveryType
	if deliveryType == "" {
		deliveryType = DefaultDeliveryType
	}

	payload := ioevents.RegistrationPayload{
		ClientID:     r.clientID,
		Name:         registration.Label,
		Description:  registration.Description,
		DeliveryType: deliveryType,
	}
	if first.RuntimeAction != "" {
		payload.RuntimeAction = first.RuntimeAction
	}

	for _, event := range events {
		payload.EventsOfInterest = append(payload.EventsOfInterest, ioevents.EventOfInterest{
			ProviderID: provider.ID,
			EventCode:  event.EventCode,
		})
	}

	return r.store.Create(ctx, payload)
}
