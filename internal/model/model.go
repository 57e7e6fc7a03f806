package model

import "github.com/google/uuid"

type Genre struct {
	ID       int       `json:"id" db:"id"`
	GenreUID uuid.UUID `json:"genreUid" db:"genre_uid"`
	Name     string    `json:"name" db:"name"`
}

// URL is the canonical path of the genre detail view.
func (g Genre) URL() string {
	return "/genre/" + g.GenreUID.String()
}

type Book struct {
	ID      int       `json:"id" db:"id"`
	BookUID uuid.UUID `json:"bookUid" db:"book_uid"`
	Title   string    `json:"title" db:"title"`
	Summary string    `json:"summary" db:"summary"`
}

func (b Book) URL() string {
	return "/book/" + b.BookUID.String()
}

type BookInstance struct {
	ID          int       `json:"id" db:"id"`
	InstanceUID uuid.UUID `json:"instanceUid" db:"instance_uid"`
	BookID      int       `json:"bookId" db:"book_id"`
	Status      Status    `json:"status" db:"status"`
}

type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusOnLoan      Status = "ON_LOAN"
	StatusMaintenance Status = "MAINTENANCE"
)

// GenreForm carries the submitted form fields of the create and update
// views. Name is trimmed and sanitized before validation.
type GenreForm struct {
	Name string `form:"name" validate:"required,min=3"`
}
