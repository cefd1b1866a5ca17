package ioevents

// Provider is an Adobe I/O Events event provider record.
type Provider struct {
	// ID is the provider's server-assigned identifier.
	ID string `json:"id"`

	// InstanceID distinguishes multiple provider instances of the same
	// metadata type within one organization.
	InstanceID string `json:"instance_id"`

	// Label is the provider's display label, unique within the organization.
	Label string `json:"label"`

	// Description is the human-readable provider description.
	Description string `json:"description"`

	// Source is the URN Commerce events reference the provider by.
	Source string `json:"source"`

	// DocsURL links to the provider's documentation.
	DocsURL string `json:"docs_url"`

	// ProviderMetadata names the provider family (e.g. the Commerce events
	// metadata type).
	ProviderMetadata string `json:"provider_metadata"`
}

// ProviderPayload is the creation request for a provider. Optional fields
// are omitted from the wire payload when empty.
type ProviderPayload struct {
	Label            string `json:"label"`
	Description      string `json:"description,omitempty"`
	DocsURL          string `json:"docs_url,omitempty"`
	ProviderMetadata string `json:"provider_metadata,omitempty"`
	InstanceID       string `json:"instance_id,omitempty"`
}

// EventMetadata describes one event type emitted by a provider.
type EventMetadata struct {
	ID                  string `json:"id"`
	EventCode           string `json:"event_code"`
	Label               string `json:"label"`
	Description         string `json:"description"`
	SampleEventTemplate any    `json:"sample_event_template,omitempty"`
}

// EventMetadataPayload is the creation request for event metadata.
type EventMetadataPayload struct {
	EventCode           string `json:"event_code"`
	Label               string `json:"label"`
	Description         string `json:"description"`
	SampleEventTemplate any    `json:"sample_event_template,omitempty"`
}

// EventOfInterest binds one provider's event code to a registration.
type EventOfInterest struct {
	ProviderID string `json:"provider_id"`
	EventCode  string `json:"event_code"`
}

// Registration is a webhook or journal subscription record.
type Registration struct {
	// ID is the registration's server-assigned identifier.
	ID string `json:"registration_id"`

	// Name is the registration's display name, unique within the workspace.
	Name string `json:"name"`

	Description      string            `json:"description"`
	ClientID         string            `json:"client_id"`
	DeliveryType     string            `json:"delivery_type"`
	Enabled          bool              `json:"enabled"`
	WebhookURL       string            `json:"webhook_url,omitempty"`
	EventsOfInterest []EventOfInterest `json:"events_of_interest"`
}

// RegistrationPayload is the creation request for a registration.
type RegistrationPayload struct {
	ClientID         string            `json:"client_id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	DeliveryType     string            `json:"delivery_type"`
	RuntimeAction    string            `json:"runtime_action,omitempty"`
	EventsOfInterest []EventOfInterest `json:"events_of_interest"`
}

// halLink is one entry of a HAL _links object.
type halLink struct {
	Href string `json:"href"`
}

// halLinks carries the pagination links the list endpoints return.
type halLinks struct {
	Next *halLink `json:"next"`
}
