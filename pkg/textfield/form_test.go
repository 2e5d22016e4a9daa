package textfield_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/stuffkit/pkg/textfield"
	"github.com/dmitrymomot/stuffkit/pkg/validator"
)

func TestForm(t *testing.T) {
	t.Parallel()

	form := textfield.NewForm[string]()
	name := textfield.New(textfield.ChainPolicy(textfield.Messages(
		validator.Required("name"),
		validator.MinLen("name", 3),
	)...))
	email := textfield.New(textfield.ChainPolicy(textfield.Messages(validator.Email("email"))...))

	require.NoError(t, form.Add("name", name))
	require.NoError(t, form.Add("email", email))
	assert.Equal(t, []string{"name", "email"}, form.Names())

	err := form.Add("name", name)
	assert.True(t, errors.Is(err, textfield.ErrDuplicateField))
	assert.True(t, errors.Is(form.Add("nil", nil), textfield.ErrNilField))

	_, err = form.Field("missing")
	assert.True(t, errors.Is(err, textfield.ErrFieldNotFound))

	got, err := form.Field("email")
	require.NoError(t, err)
	assert.Same(t, email, got)

	assert.False(t, form.HasErrors())
	assert.NoError(t, textfield.ValidateForm(form))

	name.OnTextChanged("ab")
	email.OnTextChanged("nope")

	assert.True(t, form.HasErrors())
	assert.Equal(t, map[string]string{
		"name":  "must be at least 3 characters long",
		"email": "must be a valid email address",
	}, form.Errors())

	verr := validator.ExtractValidationErrors(textfield.ValidateForm(form))
	require.Len(t, verr, 2)
	assert.Equal(t, []string{"name", "email"}, verr.Fields())

	name.OnTextChanged("abc")
	email.OnTextChanged("user@example.com")
	assert.False(t, form.HasErrors())
	assert.Empty(t, form.Errors())
}
