package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lunch-break-service/internal/model"
)

func TestPerson_String(t *testing.T) {
	p := model.Person{Name: "Mark", Email: "mark.huang01@example.com"}
	assert.Equal(t, "Mark (mark.huang01@example.com)", p.String())
	assert.Equal(t, "Shide ()", model.Person{Name: "Shide"}.String())
}
