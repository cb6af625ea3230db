package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/delis/schoolhub/internal/app/models/dto"
	"github.com/delis/schoolhub/internal/app/services"
	"github.com/delis/schoolhub/internal/middleware"
	"github.com/delis/schoolhub/internal/pkg/auth"
	"github.com/delis/schoolhub/internal/pkg/logger"
)

// AuthController handles the login endpoint
type AuthController struct {
	userService services.UserService
	jwtService  *auth.JWTService
}

// NewAuthController creates a new AuthController
func NewAuthController(userService services.UserService, jwtService *auth.JWTService) *AuthController {
	return &AuthController{
		userService: userService,
		jwtService:  jwtService,
	}
}

// Login checks the submitted credentials and issues a bearer token on
// success. A bad username and a bad password produce the same response.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ok, err := c.userService.Login(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
		return
	}

	user, err := c.userService.GetUserByUsername(ctx, req.Username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if user == nil {
		// The user disappeared between the credential check and the lookup.
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
		return
	}

	token, err := c.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		logger.Error().Err(err).Msg("Token generation failed")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Could not issue token")))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
	}))
}
