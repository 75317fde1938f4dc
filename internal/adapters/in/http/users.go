package http

import (
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
)

const (
	msgSignedUp     = "SignUp successful"
	msgSignedIn     = "SignIn successful"
	msgUserNotFound = "User not found"
)

// SignUp handles POST /api/signup.
func (s *Server) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := bindBody(c, &req); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewSignUpUserCommand(req.Username, req.Email, req.Password, req.ConfirmPassword, req.Role)
	if err != nil {
		return s.respondError(c, err)
	}

	user, err := s.handlers.SignUpUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondError(c, err)
	}

	role := identity.RoleNameUser
	if user.IsAdmin() {
		role = identity.RoleNameAdmin
	}
	return c.JSON(http.StatusCreated, SignUpResponse{
		Message: msgSignedUp,
		Role:    role,
		UserID:  user.ID().Int64(),
	})
}

// SignIn handles POST /api/login.
func (s *Server) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := bindBody(c, &req); err != nil {
		return s.respondError(c, err)
	}

	cmd, err := commands.NewSignInUserCommand(req.Email, req.Password)
	if err != nil {
		return s.respondError(c, err)
	}

	result, err := s.handlers.SignInUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.respondErrorAs(c, err, msgUserNotFound)
	}

	return c.JSON(http.StatusOK, SignInResponse{
		Message:   msgSignedIn,
		User:      toUserResponse(result.User),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
	})
}
