package failure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerics_Order(t *testing.T) {
	assert.Equal(t, []Category{Unspecified, CheckedError, RuntimeError, Interrupted}, Generics())
}

func TestGeneric_Fields(t *testing.T) {
	for _, c := range Generics() {
		g := c.(Generic)
		t.Run(g.String(), func(t *testing.T) {
			assert.NotEmpty(t, g.Title())
			assert.Equal(t, 0, g.TemplateParameterCount())
		})
	}
}

func TestGeneric_OutOfRange(t *testing.T) {
	g := Generic(42)

	assert.Equal(t, "generic(42)", g.String())
	assert.Equal(t, Unspecified.Title(), g.Title())
	assert.Equal(t, Unspecified.Template(), g.Template())
}

func TestNewCategory(t *testing.T) {
	c := NewCategory("Not found", "{} was not found in {}")

	assert.Equal(t, "Not found", c.Title())
	assert.Equal(t, "{} was not found in {}", c.Template())
	assert.Equal(t, 2, c.TemplateParameterCount())
	assert.Equal(t, NewCategory("Not found", "{} was not found in {}"), c)
}
