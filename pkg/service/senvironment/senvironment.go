package senvironment

import (
	"context"
	"database/sql"

	"qa-catalog/pkg/model/menvironment"
	"qa-catalog/pkg/sqlc/gen"
)

var ErrNoEnvironmentFound = sql.ErrNoRows

type EnvironmentService struct {
	queries *gen.Queries
}

func New(queries *gen.Queries) EnvironmentService {
	return EnvironmentService{queries: queries}
}

func (es EnvironmentService) TX(tx *sql.Tx) EnvironmentService {
	return EnvironmentService{queries: es.queries.WithTx(tx)}
}

func ConvertToModelEnvironment(env gen.Environment) menvironment.Environment {
	return menvironment.Environment{
		ID:        env.ID,
		Code:      env.EnvCode,
		Name:      env.EnvName,
		CreatedAt: env.CreatedAt,
	}
}

// GetByCode resolves an environment code. Environments are provisioned out
// of band; unknown codes are never created implicitly.
func (es EnvironmentService) GetByCode(ctx context.Context, code string) (*menvironment.Environment, error) {
	env, err := es.queries.GetEnvironmentByCode(ctx, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoEnvironmentFound
		}
		return nil, err
	}
	item := ConvertToModelEnvironment(env)
	return &item, nil
}

func (es EnvironmentService) Create(ctx context.Context, env *menvironment.Environment) error {
	return es.queries.CreateEnvironment(ctx, gen.CreateEnvironmentParams{
		ID:        env.ID,
		EnvCode:   env.Code,
		EnvName:   env.Name,
		CreatedAt: env.CreatedAt,
	})
}
