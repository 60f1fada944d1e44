package router

import (
	userapp "github.com/imnahmed17/user-order-api/internal/application"
	"github.com/imnahmed17/user-order-api/internal/container"
	repouser "github.com/imnahmed17/user-order-api/internal/domain/repository"
	"github.com/imnahmed17/user-order-api/internal/infrastructure/mongodb"
	handlers "github.com/imnahmed17/user-order-api/internal/interface/http"
	"github.com/imnahmed17/user-order-api/internal/router/modules"
)

type UserModuleDeps struct {
	Repo    repouser.UserRepository
	Service *userapp.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	repo := mongodb.NewUserRepository(container.GetUserCollection())

	service := userapp.NewService(
		repo,
		container.GetLogger(),
		container.GetConfig().BcryptCost,
	)

	handler := handlers.NewUserHandler(
		service,
		container.GetValidator(),
		container.GetLogger(),
	)

	return UserModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with
// the router registry. Called once during application startup.
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler))
}
