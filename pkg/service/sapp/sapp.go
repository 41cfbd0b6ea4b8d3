package sapp

import (
	"context"
	"database/sql"
	"fmt"

	"qa-catalog/pkg/dbtime"
	"qa-catalog/pkg/idwrap"
	"qa-catalog/pkg/model/mapp"
	"qa-catalog/pkg/sqlc/gen"
)

var ErrNoAppFound = sql.ErrNoRows

type AppService struct {
	queries *gen.Queries
}

func New(queries *gen.Queries) AppService {
	return AppService{queries: queries}
}

func (as AppService) TX(tx *sql.Tx) AppService {
	return AppService{queries: as.queries.WithTx(tx)}
}

func ConvertToModelApp(app gen.App) mapp.App {
	return mapp.App{
		ID:          app.ID,
		Code:        app.AppCode,
		Name:        app.AppName,
		Description: app.Description.String,
		Active:      app.IsActive,
		CreatedAt:   app.CreatedAt,
	}
}

func (as AppService) GetByCode(ctx context.Context, code string) (*mapp.App, error) {
	app, err := as.queries.GetAppByCode(ctx, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoAppFound
		}
		return nil, err
	}
	item := ConvertToModelApp(app)
	return &item, nil
}

func (as AppService) Create(ctx context.Context, app *mapp.App) error {
	return as.queries.CreateApp(ctx, gen.CreateAppParams{
		ID:          app.ID,
		AppCode:     app.Code,
		AppName:     app.Name,
		Description: sql.NullString{String: app.Description, Valid: app.Description != ""},
		IsActive:    app.Active,
		CreatedAt:   app.CreatedAt,
	})
}

// GetOrCreateByCode resolves an application code, registering an active
// application record on first sight of a new code.
func (as AppService) GetOrCreateByCode(ctx context.Context, code string) (*mapp.App, error) {
	app, err := as.GetByCode(ctx, code)
	if err == nil {
		return app, nil
	}
	if err != ErrNoAppFound {
		return nil, err
	}

	created := &mapp.App{
		ID:          idwrap.NewNow(),
		Code:        code,
		Name:        code,
		Description: fmt.Sprintf("Application %s (auto-created from Postman import)", code),
		Active:      true,
		CreatedAt:   dbtime.DBNow(),
	}
	if err := as.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}
