// Package importer runs a Postman collection import end to end: parse,
// flatten, normalize, resolve the owning mapping, upsert endpoints and merge
// the mapping's variable catalog, all inside one transaction.
package importer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"qa-catalog/pkg/dbtime"
	"qa-catalog/pkg/idwrap"
	"qa-catalog/pkg/model/mendpoint"
	"qa-catalog/pkg/model/postman/v21/mpostmanenv"
	"qa-catalog/pkg/service/sapp"
	"qa-catalog/pkg/service/scountry"
	"qa-catalog/pkg/service/sendpoint"
	"qa-catalog/pkg/service/senvironment"
	"qa-catalog/pkg/service/smapping"
	"qa-catalog/pkg/sqlc/gen"
	"qa-catalog/pkg/translate/tpostman"
)

var (
	// ErrParse marks unreadable or structurally invalid input documents.
	ErrParse = errors.New("parse error")
	// ErrReferenceNotFound marks an unknown environment or country code.
	ErrReferenceNotFound = errors.New("reference not found")
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomePartial Outcome = "partial"
	OutcomeFailure Outcome = "failure"
)

// Request carries one import run's inputs. EnvironmentData is optional.
type Request struct {
	CollectionData  []byte
	EnvironmentData []byte

	ApplicationCode string
	EnvironmentCode string
	CountryCode     string
}

type SkippedItem struct {
	Name   string
	Reason string
}

type VariableSummary struct {
	VariablesExtracted int
	RuntimeValuesSet   int
	Variables          map[string]string
	RuntimeValues      map[string]string
}

type Summary struct {
	Outcome Outcome

	Application string
	Environment string
	Country     string
	MappingID   idwrap.IDWrap

	EndpointsCreated int
	EndpointsUpdated int
	EndpointsTotal   int
	SkippedItems     []SkippedItem

	ExecutionVariables VariableSummary
}

type Service struct {
	db      *sql.DB
	queries *gen.Queries
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(db *sql.DB, queries *gen.Queries, opts ...Option) *Service {
	s := &Service{db: db, queries: queries, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) txnRollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		s.logger.Error("transaction rollback failed", slog.String("error", err.Error()))
	}
}

// ImportCollection runs one import. Fatal conditions (unparseable input,
// unknown environment or country) roll back everything; per-item problems
// only skip that item and degrade the outcome to partial.
func (s *Service) ImportCollection(ctx context.Context, req Request) (Summary, error) {
	failed := Summary{Outcome: OutcomeFailure}

	if req.ApplicationCode == "" || req.EnvironmentCode == "" || req.CountryCode == "" {
		return failed, fmt.Errorf("%w: application, environment and country codes are required", ErrReferenceNotFound)
	}

	collection, err := tpostman.ParseCollection(req.CollectionData)
	if err != nil {
		return failed, fmt.Errorf("%w: %s", ErrParse, err)
	}

	var environment *mpostmanenv.Environment
	if len(req.EnvironmentData) > 0 {
		env, err := tpostman.ParseEnvironment(req.EnvironmentData)
		if err != nil {
			return failed, fmt.Errorf("%w: %s", ErrParse, err)
		}
		environment = &env
	}

	envVars := map[string]string{}
	if environment != nil {
		envVars = tpostman.EnvironmentVars(*environment)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return failed, err
	}
	defer s.txnRollback(tx)

	appService := sapp.New(s.queries).TX(tx)
	envService := senvironment.New(s.queries).TX(tx)
	countryService := scountry.New(s.queries).TX(tx)
	mappingService := smapping.New(s.queries).TX(tx)
	endpointService := sendpoint.New(s.queries).TX(tx)

	app, err := appService.GetOrCreateByCode(ctx, req.ApplicationCode)
	if err != nil {
		return failed, err
	}

	env, err := envService.GetByCode(ctx, req.EnvironmentCode)
	if err != nil {
		if errors.Is(err, senvironment.ErrNoEnvironmentFound) {
			return failed, fmt.Errorf("%w: environment %q", ErrReferenceNotFound, req.EnvironmentCode)
		}
		return failed, err
	}

	country, err := countryService.GetByCode(ctx, req.CountryCode)
	if err != nil {
		if errors.Is(err, scountry.ErrNoCountryFound) {
			return failed, fmt.Errorf("%w: country %q", ErrReferenceNotFound, req.CountryCode)
		}
		return failed, err
	}

	mapping, err := mappingService.GetOrCreateByTriad(ctx, app.ID, env.ID, country.ID, envVars)
	if err != nil {
		return failed, err
	}

	summary := Summary{
		Outcome:     OutcomeSuccess,
		Application: app.Code,
		Environment: env.Code,
		Country:     country.Code,
		MappingID:   mapping.ID,
	}

	for _, item := range tpostman.FlattenItems(collection.Items) {
		result := tpostman.ExtractDraft(item)
		if result.Skipped {
			s.logger.Warn("skipping item",
				slog.String("item", item.Name),
				slog.String("reason", result.Reason))
			summary.SkippedItems = append(summary.SkippedItems, SkippedItem{
				Name:   item.Name,
				Reason: result.Reason,
			})
			continue
		}

		// Storage failures abort the whole run; only extraction problems
		// are skippable. The deferred rollback discards everything written
		// so far.
		created, err := s.upsertEndpoint(ctx, endpointService, mapping.ID, result.Draft)
		if err != nil {
			return failed, fmt.Errorf("failed to upsert endpoint %q: %w", result.Draft.Name, err)
		}
		if created {
			summary.EndpointsCreated++
		} else {
			summary.EndpointsUpdated++
		}
	}
	summary.EndpointsTotal = summary.EndpointsCreated + summary.EndpointsUpdated
	if len(summary.SkippedItems) > 0 {
		summary.Outcome = OutcomePartial
	}

	harvest := tpostman.HarvestCollection(collection, environment)
	catalog, err := mappingService.MergeVariableCatalog(ctx, mapping.ID, harvest.Catalog())
	if err != nil {
		return failed, err
	}
	summary.ExecutionVariables = VariableSummary{
		VariablesExtracted: len(catalog.Variables),
		RuntimeValuesSet:   len(catalog.RuntimeValues),
		Variables:          catalog.Variables,
		RuntimeValues:      catalog.RuntimeValues,
	}

	if err := tx.Commit(); err != nil {
		return failed, err
	}

	s.logger.Info("collection imported",
		slog.String("application", summary.Application),
		slog.String("environment", summary.Environment),
		slog.String("country", summary.Country),
		slog.Int("created", summary.EndpointsCreated),
		slog.Int("updated", summary.EndpointsUpdated),
		slog.Int("skipped", len(summary.SkippedItems)))
	return summary, nil
}

// upsertEndpoint creates the endpoint or, when one with the same name
// already exists under the mapping, rewrites only its body and description.
// A unique violation on insert means another draft in this run claimed the
// name first; it is retried once as an update.
func (s *Service) upsertEndpoint(ctx context.Context, endpointService sendpoint.EndpointService, mappingID idwrap.IDWrap, draft mendpoint.Draft) (bool, error) {
	existing, err := endpointService.GetByName(ctx, mappingID, draft.Name)
	if err != nil && !errors.Is(err, sendpoint.ErrNoEndpointFound) {
		return false, err
	}
	if existing != nil {
		return false, endpointService.Update(ctx, existing.ID, draft.Body, draft.Description)
	}

	endpoint := &mendpoint.Endpoint{
		ID:          idwrap.NewNow(),
		MappingID:   mappingID,
		Name:        draft.Name,
		Path:        draft.Path,
		Method:      draft.Method,
		Body:        draft.Body,
		Description: draft.Description,
		Active:      true,
		CreatedAt:   dbtime.DBNow(),
	}
	if err := endpointService.Create(ctx, endpoint); err != nil {
		if isUniqueViolation(err) {
			existing, getErr := endpointService.GetByName(ctx, mappingID, draft.Name)
			if getErr != nil {
				return false, getErr
			}
			return false, endpointService.Update(ctx, existing.ID, draft.Body, draft.Description)
		}
		return false, err
	}
	return true, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint")
}
