package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type FrameStyle struct {
	ID          uuid.UUID
	Name        string
	Description sql.NullString
	BasePrice   float64
	Material    sql.NullString
	Color       sql.NullString
	WidthInches sql.NullFloat64
	ImageURL    sql.NullString
	MockupURL   sql.NullString
	CreatedAt   time.Time
}
