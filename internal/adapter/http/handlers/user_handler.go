package handlers

import (
	"errors"
	"net/http"

	request "casar_em_carneiros/internal/adapter/http/dto/request"
	response "casar_em_carneiros/internal/adapter/http/dto/response"
	"casar_em_carneiros/internal/domain/entities"
	"casar_em_carneiros/internal/usecase"
	"casar_em_carneiros/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidUserPayload = pkg.NewDomainErrorSimple("INVALID_USER_INPUT", "Invalid user payload", http.StatusBadRequest)
	errPasswordMismatch   = pkg.NewDomainErrorSimple("PASSWORD_MISMATCH", "As senhas não coincidem", http.StatusBadRequest)
)

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

func (h *UserHandler) Create(c *gin.Context) {
	var payload request.CreateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}
	if payload.Password != payload.ConfirmPassword {
		c.JSON(errPasswordMismatch.HTTPStatus, errPasswordMismatch.ToHTTPError())
		return
	}

	user := entities.User{
		FullName:    payload.FullName,
		PhoneNumber: payload.PhoneNumber,
		Email:       payload.Email,
		Role:        entities.Role(payload.Role),
		BirthDate:   payload.BirthDate,
	}

	created, err := h.usecase.Create(c.Request.Context(), user, payload.Password)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(created))
}

func (h *UserHandler) Update(c *gin.Context) {
	var payload request.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUserPayload.HTTPStatus, errInvalidUserPayload.ToHTTPError())
		return
	}

	user := entities.User{
		ID:          c.Param("id"),
		FullName:    payload.FullName,
		PhoneNumber: payload.PhoneNumber,
		Email:       payload.Email,
		Role:        entities.Role(payload.Role),
		BirthDate:   payload.BirthDate,
	}

	updated, err := h.usecase.Update(c.Request.Context(), user)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(updated))
}

func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(users))
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserRole):
		return pkg.NewDomainErrorSimple("INVALID_ROLE", "Invalid role", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "A senha deve ter pelo menos 6 caracteres", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmailInUse):
		return pkg.NewDomainErrorSimple("EMAIL_IN_USE", "E-mail já está em uso", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
