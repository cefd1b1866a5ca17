package onboarding

import (
	"context"
	"log/slog"

	"github.com/hitarthpattani/aio-toolkit-sub000/errors"
)

// Config holds the orchestrator's required settings.
type Config struct {
	// ProjectName prefixes provider labels so they stay unique per project.
	ProjectName string

	// ClientID is the API client registrations are created for.
	ClientID string
}

// Validate checks that both settings are present.
func (c *Config) Validate() error {
	const op = "onboarding.config"
	switch {
	case c.ProjectName == "":
		return errors.New(errors.CodeInvalidConfig, op, "project name is required")
	case c.ClientID == "":
		return errors.New(errors.CodeInvalidConfig, op, "client id is required")
	}
	return nil
}

// Orchestrator runs the onboarding pipeline: parse the input tree, resolve
// providers, then events, then registrations, strictly in that order.
type Orchestrator struct {
	cfg           Config
	providers     ProviderStore
	eventMetadata EventMetadataStore
	registrations RegistrationStore
	logger        *slog.Logger
}

// Option configures the Orchestrator.
type Option func(*Orchestrator)

// WithLogger configures the orchestrator (and the resolvers it builds) with
// a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an Orchestrator over the injected stores.
func New(
	cfg Config,
	providers ProviderStore,
	eventMetadata EventMetadataStore,
	registrations RegistrationStore,
	opts ...Option,
) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	orchestrator := &Orchestrator{
		cfg:           cfg,
		providers:     providers,
		eventMetadata: eventMetadata,
		registrations: registrations,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(orchestrator)
	}
	return orchestrator, nil
}

// Process runs one orchestration over the input tree. Each stage completes
// fully before the next begins; no entity is acted on before its dependency
// stage finished. Stage-abort failures (listing existing providers or
// registrations) propagate; per-item create failures are recorded in the
// result and never stop sibling items.
//
// Nothing persists in memory across calls; remote state lives only in the
// stores.
func (o *Orchestrator) Process(ctx context.Context, input Input) (*Result, error) {
	entities := ParseInput(input)
	o.logger.Info("onboarding input parsed",
		"providers", len(entities.Providers),
		"registrations", len(entities.Registrations),
		"events", len(entities.Events))

	providerResolver := &providerResolver{
		projectName: o.cfg.ProjectName,
		store:       o.providers,
		logger:      o.logger,
	}
	providerResults, err := providerResolver.Resolve(ctx, entities.Providers)
	if err != nil {
		return nil, err
	}

	eventResolver := &eventResolver{
		store:  o.eventMetadata,
		logger: o.logger,
	}
	eventResults := eventResolver.Resolve(ctx, entities.Events, providerResults)

	registrationResolver := &registrationResolver{
		clientID: o.cfg.ClientID,
		store:    o.registrations,
		logger:   o.logger,
	}
	registrationResults, err := registrationResolver.Resolve(
		ctx, entities.Registrations, entities.Events, providerResults)
	if err != nil {
		return nil, err
	}

	result := &Result{
		CreatedProviders:     providerResults,
		CreatedEvents:        eventResults,
		CreatedRegistrations: registrationResults,
	}

	summary := Summarize(result)
	o.logger.Info("onboarding complete",
		"providers_created", summary.Providers.Created,
		"providers_existing", summary.Providers.Existing,
		"providers_failed", summary.Providers.Failed,
		"events_created", summary.Events.Created,
		"events_existing", summary.Events.Existing,
		"events_failed", summary.Events.Failed,
		"registrations_created", summary.Registrations.Created,
		"registrations_existing", summary.Registrations.Existing,
		"registrations_failed", summary.Registrations.Failed,
		"total_created", summary.Combined.Created,
		"total_existing", summary.Combined.Existing,
		"total_failed", summary.Combined.Failed)

	return result, nil
}
