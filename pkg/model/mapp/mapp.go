package mapp

import (
	"qa-catalog/pkg/idwrap"
	"time"
)

type App struct {
	ID          idwrap.IDWrap
	Code        string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
}
