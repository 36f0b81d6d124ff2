package commands_test

import (
	"errors"
	"testing"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateRequestCommand(t *testing.T) {
	actor := studentPrincipal(t, 7)

	cmd, err := commands.NewCreateRequestCommand(
		actor, "2021630123", "Ana Torres", "5", "ana@alumno.ipn.mx", "5512345678",
	)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, "2021630123", cmd.Boleta())
	assert.Equal(t, "Ana Torres", cmd.FullName())
	assert.Equal(t, "5", cmd.Semester())
	assert.Equal(t, "ana@alumno.ipn.mx", cmd.Email())
	assert.Equal(t, "5512345678", cmd.Phone())
}

func TestNewCreateRequestCommand_UnauthenticatedActor(t *testing.T) {
	_, err := commands.NewCreateRequestCommand(
		kernel.Principal{}, "2021630123", "Ana Torres", "5", "ana@alumno.ipn.mx", "5512345678",
	)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrUnauthenticated))
}

func TestCreateRequestCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.CreateRequestCommand

	err := cmd.Validate()

	assert.ErrorIs(t, err, commands.ErrCreateRequestCommandIsNotConstructed)
}
