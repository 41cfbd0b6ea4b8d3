package menvironment

import (
	"qa-catalog/pkg/idwrap"
	"time"
)

type Environment struct {
	ID        idwrap.IDWrap
	Code      string
	Name      string
	CreatedAt time.Time
}
