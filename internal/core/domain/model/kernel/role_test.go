package kernel_test

import (
	"testing"

	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	tests := []struct {
		name    string
		role    kernel.Role
		wantErr bool
	}{
		{"student_is_valid", kernel.Student, false},
		{"coordinator_is_valid", kernel.Coordinator, false},
		{"unknown_is_invalid", kernel.UnknownRole, true},
		{"out_of_range_is_invalid", kernel.Role(42), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.role.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "student", kernel.Student.String())
	assert.Equal(t, "coordinator", kernel.Coordinator.String())
	assert.Equal(t, "unknown", kernel.UnknownRole.String())
	assert.Equal(t, "unknown", kernel.Role(42).String())
}

func TestRoleFromString(t *testing.T) {
	t.Run("round_trips_valid_roles", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.Student, kernel.Coordinator} {
			parsed, err := kernel.RoleFromString(role.String())
			require.NoError(t, err)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("rejects_unknown_strings", func(t *testing.T) {
		_, err := kernel.RoleFromString("admin")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = kernel.RoleFromString("")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPrincipal(t *testing.T) {
	t.Run("new_principal_is_valid", func(t *testing.T) {
		p, err := kernel.NewPrincipal(7, kernel.Student)
		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, uint64(7), p.UserID())
		assert.Equal(t, kernel.Student, p.Role())
		assert.False(t, p.IsCoordinator())
	})

	t.Run("coordinator_principal", func(t *testing.T) {
		p, err := kernel.NewPrincipal(1, kernel.Coordinator)
		require.NoError(t, err)
		assert.True(t, p.IsCoordinator())
	})

	t.Run("zero_user_id_is_rejected", func(t *testing.T) {
		_, err := kernel.NewPrincipal(0, kernel.Student)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_role_is_rejected", func(t *testing.T) {
		_, err := kernel.NewPrincipal(7, kernel.UnknownRole)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_is_unauthenticated", func(t *testing.T) {
		var p kernel.Principal
		require.ErrorIs(t, p.Validate(), errs.ErrUnauthenticated)
	})
}
