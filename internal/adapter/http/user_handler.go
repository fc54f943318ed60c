package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	userUC "huskify-backend/internal/usecase/user"
)

type UserHandler struct {
	uc *userUC.Usecase
}

func NewUserHandler(uc *userUC.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *UserHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	out, err := h.uc.Login(c.Request().Context(), userUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type registerReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required"`
	EmpID    uint64 `json:"empId"`
	RoleID   uint64 `json:"roleId"`
}

// Register creates an account on the platform resolved by the middleware.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Register(c.Request().Context(), userUC.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		EmpID:      req.EmpID,
		RoleID:     req.RoleID,
		PlatformID: actingPlatformID(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *UserHandler) Get(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), userID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// List returns the users of the acting platform, for approver pickers.
func (h *UserHandler) List(c echo.Context) error {
	dtos, err := h.uc.ListByPlatform(c.Request().Context(), actingPlatformID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": dtos})
}
