package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salvodev/portfolio-backend/errs"
)

func TestCreateContactFormInputValid(t *testing.T) {
	input := CreateContactFormInput{
		Name:    "Mario Rossi",
		Email:   "mario@example.com",
		Subject: "Collaborazione",
		Message: "Vorrei parlarti di un progetto interessante.",
	}

	require.NoError(t, input.Validate())

	form := input.Model()
	assert.False(t, form.Replied)
}

func TestCreateContactFormInputShortMessage(t *testing.T) {
	input := CreateContactFormInput{
		Name:    "Mario",
		Email:   "mario@example.com",
		Subject: "Ciao",
		Message: "troppo",
	}

	err := input.Validate()
	require.Error(t, err)

	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Violations, 1)
	assert.Equal(t, "message", ve.Violations[0].Field)
	assert.Equal(t, "too short: 6 < 10 chars", ve.Violations[0].Message)
}

func TestCreateContactFormInputBounds(t *testing.T) {
	input := CreateContactFormInput{
		Name:    strings.Repeat("a", 101),
		Email:   "not-an-email",
		Subject: strings.Repeat("s", 201),
		Message: strings.Repeat("m", 2001),
	}

	fields := violatedFields(t, input.Validate())
	assert.ElementsMatch(t, []string{"name", "email", "subject", "message"}, fields)
}
