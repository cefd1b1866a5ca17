// Package onboarding creates the Adobe I/O Events resources an integration
// needs: event providers, their event metadata, and the registrations that
// subscribe to them. The orchestrator reconciles a desired configuration
// tree against the remote state, creating what is missing and skipping what
// already exists, and reports a per-entity outcome for everything it touched.
package onboarding

import "github.com/hitarthpattani/aio-toolkit-sub000/ioevents"

// Input is the desired-configuration tree: providers owning registrations
// owning events.
type Input struct {
	Providers []InputProvider `json:"providers"`
}

// InputProvider is one desired provider with its nested registrations.
type InputProvider struct {
	// Key is the caller-supplied identifier the nested entities reference.
	Key string `json:"key"`

	// Label is the provider's display label before per-project enhancement.
	Label string `json:"label"`

	// Description is the human-readable provider description.
	Description string `json:"description,omitempty"`

	// DocsURL links to the provider's documentation.
	DocsURL string `json:"docs_url,omitempty"`

	// Registrations are the subscriptions nested under this provider.
	Registrations []InputRegistration `json:"registrations,omitempty"`
}

// InputRegistration is one desired registration with its nested events.
type InputRegistration struct {
	// Key is the caller-supplied identifier the nested events reference.
	Key string `json:"key"`

	// Label is the registration's display name, used verbatim remotely.
	Label string `json:"label"`

	// Description is the human-readable registration description.
	Description string `json:"description,omitempty"`

	// Events are the event subscriptions nested under this registration.
	Events []InputEvent `json:"events,omitempty"`
}

// InputEvent is one desired event subscription.
type InputEvent struct {
	// EventCode identifies the event type (e.g. "observer.catalog_product_save_after").
	EventCode string `json:"event_code"`

	// RuntimeAction is the runtime action the registration routes the event to.
	RuntimeAction string `json:"runtime_action,omitempty"`

	// DeliveryType is "webhook" or "journal"; empty defaults to webhook.
	DeliveryType string `json:"delivery_type,omitempty"`

	// SampleEventTemplate is an example payload registered with the event
	// metadata.
	SampleEventTemplate any `json:"sample_event_template,omitempty"`
}

// Provider is a parsed, flattened provider entity.
type Provider struct {
	Key         string
	Label       string
	Description string
	DocsURL     string
}

// Registration is a parsed registration entity carrying its parent
// provider's key as a foreign key.
type Registration struct {
	Key         string
	Label       string
	Description string
	ProviderKey string
}

// Event is a parsed event entity carrying both parent keys as foreign keys.
type Event struct {
	EventCode           string
	RuntimeAction       string
	DeliveryType        string
	SampleEventTemplate any
	RegistrationKey     string
	ProviderKey         string
}

// Entities is the flat, cross-referenced form of an Input tree.
type Entities struct {
	Providers     []Provider
	Registrations []Registration
	Events        []Event
}

// ResolvedProvider identifies one provider after resolution, combining the
// caller's desired fields with the remote identifiers.
type ResolvedProvider struct {
	// ID is the remote provider id; empty when resolution failed.
	ID string

	// InstanceID is the remote provider instance id, when present.
	InstanceID string

	// Key is the caller-supplied provider key.
	Key string

	// Label is the per-project enhanced label.
	Label string

	// OriginalLabel is the label before enhancement; registrations resolve
	// providers by this value.
	OriginalLabel string

	Description string
	DocsURL     string
}

// ProviderResult is the three-state outcome of resolving one provider:
// exactly one of created, skipped, or failed (neither flag set, Error
// non-empty) holds.
type ProviderResult struct {
	Created  bool
	Skipped  bool
	Provider ResolvedProvider

	// Error carries the failure message when neither flag is set.
	Error string

	// Reason explains a skip.
	Reason string

	// Raw is the remote record backing a created or skipped result.
	Raw *ioevents.Provider
}

// Failed reports whether the provider was neither created nor skipped.
func (r ProviderResult) Failed() bool {
	return !r.Created && !r.Skipped
}

// ResolvedEvent identifies one event metadata entry after resolution.
// Skipped events carry the event code only.
type ResolvedEvent struct {
	ID        string
	EventCode string
}

// EventResult is the three-state outcome of resolving one event, stamped
// with the provider that owns it.
type EventResult struct {
	Created  bool
	Skipped  bool
	Event    ResolvedEvent
	Provider ResolvedProvider
	Error    string
	Reason   string
	Raw      *ioevents.EventMetadata
}

// Failed reports whether the event was neither created nor skipped.
func (r EventResult) Failed() bool {
	return !r.Created && !r.Skipped
}

// ResolvedRegistration identifies one registration after resolution.
type ResolvedRegistration struct {
	ID          string
	Key         string
	Label       string
	Description string
}

// RegistrationResult is the three-state outcome of resolving one
// registration for one provider group.
type RegistrationResult struct {
	Created      bool
	Skipped      bool
	Registration ResolvedRegistration
	Provider     ResolvedProvider
	Error        string
	Reason       string
	Raw          *ioevents.Registration
}

// Failed reports whether the registration was neither created nor skipped.
func (r RegistrationResult) Failed() bool {
	return !r.Created && !r.Skipped
}

// Result aggregates the outcomes of one orchestration run.
type Result struct {
	CreatedProviders     []ProviderResult     `json:"createdProviders"`
	CreatedEvents        []EventResult        `json:"createdEvents"`
	CreatedRegistrations []RegistrationResult `json:"createdRegistrations"`
}
