package onboarding

// ParseInput flattens the nested input tree into three flat, cross-
// referenced collections. It is a pure, total function: entities come out
// in input document order, each registration is tagged with its parent
// provider's key, and each event with both parent keys.
//
// No validation happens here. Malformed or duplicate keys pass through
// silently; duplicate caller-supplied keys make downstream cross-linkage
// ambiguous (last match wins when grouping).
func ParseInput(input Input) Entities {
	entities := Entities{
		Providers:     make([]Provider, 0, len(input.Providers)),
		Registrations: make([]Registration, 0),
		Events:        make([]Event, 0),
	}

	for _, provider := range input.Providers {
		entities.Providers = append(entities.Providers, Provider{
			Key:         provider.Key,
			Label:       provider.Label,
			Description: provider.Description,
			DocsURL:     provider.DocsURL,
		})

		for _, registration := range provider.Registrations {
			entities.Registrations = append(entities.Registrations, Registration{
				Key:         registration.Key,
				Label:       registration.Label,
				Description: registration.Description,
				ProviderKey: provider.Key,
			})

			for _, event := range registration.Events {
				entities.Events = append(entities.Events, Event{
					EventCode:           event.EventCode,
					RuntimeAction:       event.RuntimeAction,
					DeliveryType:        event.DeliveryType,
					SampleEventTemplate: event.SampleEventTemplate,
					RegistrationKey:     registration.Key,
					ProviderKey:         provider.Key,
				})
			}
		}
	}

	return entities
}
