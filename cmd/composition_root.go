package cmd

import (
	"log/slog"
	"time"

	"intake/internal/adapters/out/memstore"
	"intake/internal/adapters/out/trackerhttp"
	"intake/internal/core/application/usecases/commands"
	"intake/internal/core/application/usecases/queries"
	"intake/internal/core/domain/services"
	"intake/internal/jobs"
)

type CompositionRoot struct {
	config    Config
	store     *memstore.SessionStore
	tracker   *trackerhttp.Client
	validator services.StepValidator
}

func NewCompositionRoot(config Config) CompositionRoot {
	return CompositionRoot{
		config:    config,
		store:     memstore.NewSessionStore(),
		tracker:   trackerhttp.NewClient(config.TrackerBaseURL),
		validator: services.NewStepValidator(),
	}
}

func (c *CompositionRoot) CreateOpenWizardCommandHandler() commands.OpenWizardCommandHandler {
	return commands.NewOpenWizardCommandHandler(c.store)
}

func (c *CompositionRoot) CreateAdvanceStepCommandHandler() commands.AdvanceStepCommandHandler {
	return commands.NewAdvanceStepCommandHandler(c.store, c.validator)
}

func (c *CompositionRoot) CreateRetreatStepCommandHandler() commands.RetreatStepCommandHandler {
	return commands.NewRetreatStepCommandHandler(c.store)
}

func (c *CompositionRoot) CreateResetWizardCommandHandler() commands.ResetWizardCommandHandler {
	return commands.NewResetWizardCommandHandler(c.store)
}

func (c *CompositionRoot) CreateLookupPlateCommandHandler() commands.LookupPlateCommandHandler {
	return commands.NewLookupPlateCommandHandler(c.store, c.tracker)
}

func (c *CompositionRoot) CreateResolveLookupCommandHandler() commands.ResolveLookupCommandHandler {
	return commands.NewResolveLookupCommandHandler(c.store, c.tracker)
}

func (c *CompositionRoot) CreateDecideConflictCommandHandler() commands.DecideConflictCommandHandler {
	return commands.NewDecideConflictCommandHandler(c.store)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.store, c.validator, c.tracker)
}

func (c *CompositionRoot) CreateCleanupSessionsCommandHandler() commands.CleanupSessionsCommandHandler {
	return commands.NewCleanupSessionsCommandHandler(c.store)
}

func (c *CompositionRoot) CreateGetWizardStateQueryHandler() queries.GetWizardStateQueryHandler {
	return queries.NewGetWizardStateQueryHandler(c.store)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	idleTTL := time.Duration(c.config.SessionIdleTTLMinutes) * time.Minute
	return jobs.NewJobManager(
		c.CreateCleanupSessionsCommandHandler(),
		idleTTL,
		c.config.CleanupSchedule,
		logger,
	)
}
