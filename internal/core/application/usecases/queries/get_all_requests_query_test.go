package queries_test

import (
	"testing"

	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllRequestsQuery_Valid(t *testing.T) {
	actor, err := kernel.NewPrincipal(99, kernel.Coordinator)
	require.NoError(t, err)

	query, err := queries.NewGetAllRequestsQuery(actor)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, actor, query.Actor())
}

func TestNewGetAllRequestsQuery_RequiresPrincipal(t *testing.T) {
	_, err := queries.NewGetAllRequestsQuery(kernel.Principal{})
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestGetAllRequestsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllRequestsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllRequestsQueryIsNotConstructed)
}
