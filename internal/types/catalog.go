package types

import (
	"time"

	"github.com/google/uuid"
)

// Genre is a movie category. Names are unique at the storage layer.
type Genre struct {
	ID        uuid.UUID `json:"_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Movie is a catalog entry. Image holds the public path returned by the
// upload endpoint.
type Movie struct {
	ID        uuid.UUID  `json:"_id"`
	Name      string     `json:"name"`
	Image     string     `json:"image,omitempty"`
	Year      int        `json:"year"`
	Detail    string     `json:"detail"`
	Cast      []string   `json:"cast"`
	GenreID   *uuid.UUID `json:"genre,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateMovieParams carries the fields accepted when creating a movie.
type CreateMovieParams struct {
	Name    string     `json:"name"`
	Image   string     `json:"image,omitempty"`
	Year    int        `json:"year"`
	Detail  string     `json:"detail"`
	Cast    []string   `json:"cast,omitempty"`
	GenreID *uuid.UUID `json:"genre,omitempty"`
}

// UpdateMovieParams allows partial movie updates; nil fields keep prior values.
type UpdateMovieParams struct {
	Name    *string    `json:"name,omitempty"`
	Image   *string    `json:"image,omitempty"`
	Year    *int       `json:"year,omitempty"`
	Detail  *string    `json:"detail,omitempty"`
	Cast    *[]string  `json:"cast,omitempty"`
	GenreID *uuid.UUID `json:"genre,omitempty"`
}
