package failure

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescription_Error(t *testing.T) {
	cases := []struct {
		name string
		d    *Description
		want string
	}{
		{name: "title and detail", d: Titledf("Lookup", "no {}", "user"), want: "Lookup: no user"},
		{name: "title only", d: Titled("Lookup"), want: "Lookup"},
		{name: "detail only", d: NewBuilder().Title("").Detail("no user").Build(), want: "no user"},
		{name: "empty", d: NewBuilder().Title("").Build(), want: "failure"},
		{name: "nil", d: nil, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.d.Error())
		})
	}
}

func TestDescription_UnwrapExposesCause(t *testing.T) {
	sentinel := errors.New("disk full")
	d := Wrap(fmt.Errorf("write: %w", sentinel))

	assert.ErrorIs(t, d, sentinel)

	var target *Description
	wrapped := fmt.Errorf("save: %w", d)
	assert.ErrorAs(t, wrapped, &target)
	assert.Same(t, d, target)
}

func TestDescription_NilAccessors(t *testing.T) {
	var d *Description

	assert.Equal(t, Unspecified, d.Category())
	assert.Empty(t, d.Title())
	assert.Empty(t, d.Detail())
	assert.Nil(t, d.Cause())
	assert.Nil(t, d.Unwrap())
}

func TestHasCategory(t *testing.T) {
	d := Categorized(about, "X")

	assert.True(t, HasCategory(d, about))
	assert.True(t, HasCategory(fmt.Errorf("wrapped: %w", d), about))
	assert.False(t, HasCategory(d, Unspecified))
	assert.False(t, HasCategory(errors.New("plain"), Unspecified))
	assert.False(t, HasCategory(nil, Unspecified))
}

type labels []string

func (l labels) Title() string { return "Labelled" }
func (l labels) Template() string { return "" }
func (l labels) TemplateParameterCount() int { return 0 }

func TestHasCategory_UncomparableCategory(t *testing.T) {
	d := Categorized(labels{"a", "b"})

	assert.NotPanics(t, func() { HasCategory(d, labels{"a", "b"}) })
	assert.True(t, HasCategory(d, labels{"a", "b"}))
	assert.False(t, HasCategory(d, labels{"a"}))
	assert.False(t, HasCategory(d, Unspecified))
}
