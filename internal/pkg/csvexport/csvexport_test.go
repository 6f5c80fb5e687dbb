package csvexport

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWrite_QuotesCommas(t *testing.T) {
	var sb strings.Builder

	err := Write(&sb, []string{"a", "b"}, []Row{{"a": 1, "b": "x,y"}})

	assert.NoError(t, err)
	assert.Equal(t, "a,b\n1,\"x,y\"\n", sb.String())
}

func TestWrite_DoublesEmbeddedQuotes(t *testing.T) {
	var sb strings.Builder

	err := Write(&sb, []string{"nota"}, []Row{{"nota": `cambio "urgente"`}})

	assert.NoError(t, err)
	assert.Equal(t, "nota\n\"cambio \"\"urgente\"\"\"\n", sb.String())
}

func TestWrite_NilRendersEmpty(t *testing.T) {
	var sb strings.Builder

	err := Write(&sb, []string{"a", "b"}, []Row{{"a": nil}})

	assert.NoError(t, err)
	assert.Equal(t, "a,b\n,\n", sb.String())
}

func TestWrite_HeaderOnlyWhenNoRows(t *testing.T) {
	var sb strings.Builder

	err := Write(&sb, []string{"a", "b"}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "a,b\n", sb.String())
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "equipos-2026-09-01.csv", Filename("equipos", now))
}
