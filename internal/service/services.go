package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/inohub/prospect-console/internal/adapter"
	"github.com/inohub/prospect-console/internal/logger"
)

// Services aggregates the console's application services behind one
// constructor, mirroring how the rest of the wiring passes dependencies
// around.
type Services struct {
	AuthService      AuthService
	ProspectService  ProspectService
	UserService      UserService
	DashboardService DashboardService
}

// NewServices wires all services around the shared gateway, session store,
// and a single validator instance.
func NewServices(gateway adapter.APIGateway, sessions SessionStore, log *logger.Logger) *Services {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &Services{
		AuthService:      NewAuthService(gateway, sessions, log),
		ProspectService:  NewProspectService(gateway, validate, log),
		UserService:      NewUserService(gateway, validate, log),
		DashboardService: NewDashboardService(gateway, log),
	}
}
