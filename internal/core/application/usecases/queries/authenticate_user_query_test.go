package queries_test

import (
	"testing"

	"lockers/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthenticateUserQuery_Valid(t *testing.T) {
	query, err := queries.NewAuthenticateUserQuery("ana@alumno.ipn.mx", "hunter2")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "ana@alumno.ipn.mx", query.Email())
	assert.Equal(t, "hunter2", query.Password())
}

func TestNewAuthenticateUserQuery_EmailIsRequired(t *testing.T) {
	_, err := queries.NewAuthenticateUserQuery("", "hunter2")
	require.ErrorIs(t, err, queries.ErrEmailIsRequired)
}

func TestNewAuthenticateUserQuery_PasswordIsRequired(t *testing.T) {
	_, err := queries.NewAuthenticateUserQuery("ana@alumno.ipn.mx", "")
	require.ErrorIs(t, err, queries.ErrPasswordIsRequired)
}

func TestAuthenticateUserQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.AuthenticateUserQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrAuthenticateUserQueryIsNotConstructed)
}
