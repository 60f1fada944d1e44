package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/imnahmed17/user-order-api/internal/application"
	"github.com/imnahmed17/user-order-api/pkg/response"
	"github.com/imnahmed17/user-order-api/pkg/validation"
)

// Stable error codes surfaced in the response envelope.
const (
	codeValidation = "VALIDATION_ERROR"
	codeConflict   = "USER_ALREADY_EXISTS"
	codeNotFound   = "USER_NOT_FOUND"
	codeNoOrders   = "NO_ORDERS"
	codeInternal   = "INTERNAL_ERROR"
)

type UserHandler struct {
	Svc       *userapp.Service
	Validator *validation.Validator
	Logger    *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, v *validation.Validator, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Validator: v, Logger: logger}
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidPayload(c, err)
		return
	}
	if err := h.Validator.Struct(&req); err != nil {
		h.invalidPayload(c, err)
		return
	}

	u, err := h.Svc.CreateUser(c.Request.Context(), req.User.toEntity())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserResponse(u), "User created successfully!", nil)
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	response.Success(c, http.StatusOK, out, "Users fetched successfully!", nil)
}

func (h *UserHandler) GetSingleUser(c *gin.Context) {
	u, err := h.Svc.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "User fetched successfully!", nil)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidPayload(c, err)
		return
	}
	if err := h.Validator.Struct(&req); err != nil {
		h.invalidPayload(c, err)
		return
	}

	u, err := h.Svc.UpdateUser(c.Request.Context(), c.Param("userId"), req.User.toEntity())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "User updated successfully!", nil)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.Svc.DeleteUser(c.Request.Context(), c.Param("userId")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "User deleted successfully!", nil)
}

func (h *UserHandler) CreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidPayload(c, err)
		return
	}
	if err := h.Validator.Struct(&req); err != nil {
		h.invalidPayload(c, err)
		return
	}

	orders, err := h.Svc.AddOrder(c.Request.Context(), c.Param("userId"), req.Order.toEntity())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": toOrderResponses(orders)}, "Order created successfully!", nil)
}

func (h *UserHandler) GetAllOrders(c *gin.Context) {
	orders, err := h.Svc.ListOrders(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": toOrderResponses(orders)}, "Orders fetched successfully!", nil)
}

func (h *UserHandler) GetTotalPrice(c *gin.Context) {
	total, err := h.Svc.TotalPrice(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"totalPrice": total}, "Total price calculated successfully!", nil)
}

func (h *UserHandler) invalidPayload(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "Validation failed", response.ErrorDetail{
		Code:        codeValidation,
		Description: "Validation failed",
		Details:     validation.ToDetails(err),
	})
}

// fail maps service errors onto status codes and stable error codes.
func (h *UserHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, userapp.ErrUserExists):
		response.Error[any](c, http.StatusConflict, "User already exists", response.ErrorDetail{
			Code:        codeConflict,
			Description: "User already exists!",
		})
	case errors.Is(err, userapp.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "User not found", response.ErrorDetail{
			Code:        codeNotFound,
			Description: "User not found!",
		})
	case errors.Is(err, userapp.ErrNoOrders):
		response.Error[any](c, http.StatusNotFound, "No orders found", response.ErrorDetail{
			Code:        codeNoOrders,
			Description: "No orders found!",
		})
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "Internal server error", response.ErrorDetail{
			Code:        codeInternal,
			Description: "Internal server error!",
		})
	}
}
