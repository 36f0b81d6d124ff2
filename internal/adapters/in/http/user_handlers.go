package http

import (
	"net/http"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/application/usecases/queries"
	"lockers/internal/core/domain/model/kernel"
	"lockers/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type registerUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID uint64 `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type createdResponse struct {
	ID uint64 `json:"id"`
}

// RegisterUser handles POST /api/v1/users. Registration is open; an omitted
// role defaults to student.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body registerUserRequest
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	if body.Role == "" {
		body.Role = kernel.Student.String()
	}
	role, err := kernel.RoleFromString(body.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(body.Email, body.Password, role)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.commands.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: id})
}

// Login handles POST /api/v1/users/login: checks credentials and issues a
// signed token for the session.
func (s *Server) Login(ctx echo.Context) error {
	var body loginRequest
	if err := ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	query, err := queries.NewAuthenticateUserQuery(body.Email, body.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	account, err := s.queries.AuthenticateUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	principal, err := kernel.NewPrincipal(account.UserID, account.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	token, err := s.tokens.Issue(principal)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, loginResponse{
		Token:  token,
		UserID: account.UserID,
		Email:  account.Email,
		Role:   account.Role.String(),
	})
}
