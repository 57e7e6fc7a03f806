package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mvoronov/locallibrary/internal/model"
	"github.com/stretchr/testify/require"
)

func TestGenre_URL(t *testing.T) {
	t.Parallel()
	g := model.Genre{GenreUID: uuid.MustParse("83575e12-7ce0-48ee-9931-51919ff3c9ee")}
	require.Equal(t, "/genre/83575e12-7ce0-48ee-9931-51919ff3c9ee", g.URL())
}

func TestBook_URL(t *testing.T) {
	t.Parallel()
	b := model.Book{BookUID: uuid.MustParse("f7cdc58f-2caf-4b15-9727-f89dcc629b27")}
	require.Equal(t, "/book/f7cdc58f-2caf-4b15-9727-f89dcc629b27", b.URL())
}
