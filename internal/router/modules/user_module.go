package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/imnahmed17/user-order-api/internal/container"
	handlers "github.com/imnahmed17/user-order-api/internal/interface/http"
	"github.com/imnahmed17/user-order-api/internal/interface/middleware"
)

// UserModule wires user HTTP handlers into routes under /api/users:
//
//	POST   /api/users
//	GET    /api/users
//	GET    /api/users/:userId
//	PUT    /api/users/:userId
//	DELETE /api/users/:userId
//	PUT    /api/users/:userId/orders
//	GET    /api/users/:userId/orders
//	GET    /api/users/:userId/orders/total-price
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Writes get a tighter per-IP-per-route limit than reads.
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath())
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP())

	users := rg.Group("/users")
	{
		users.POST("", writeLimiter, m.Handler.CreateUser)
		users.GET("", readLimiter, m.Handler.GetAllUsers)
		users.GET("/:userId", readLimiter, m.Handler.GetSingleUser)
		users.PUT("/:userId", writeLimiter, m.Handler.UpdateUser)
		users.DELETE("/:userId", writeLimiter, m.Handler.DeleteUser)
		users.PUT("/:userId/orders", writeLimiter, m.Handler.CreateOrder)
		users.GET("/:userId/orders", readLimiter, m.Handler.GetAllOrders)
		users.GET("/:userId/orders/total-price", readLimiter, m.Handler.GetTotalPrice)
	}
}
