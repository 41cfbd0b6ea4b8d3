package mcountry

import (
	"qa-catalog/pkg/idwrap"
	"time"
)

type Country struct {
	ID        idwrap.IDWrap
	Code      string
	Name      string
	CreatedAt time.Time
}
