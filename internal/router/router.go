package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/thspin/proyecto-1/internal/auth"
	"github.com/thspin/proyecto-1/internal/config"
	"github.com/thspin/proyecto-1/internal/errors"
	"github.com/thspin/proyecto-1/internal/handler"
	"github.com/thspin/proyecto-1/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	userService service.UserService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	transactionHandler *handler.TransactionHandler,
	creditCardHandler *handler.CreditCardHandler,
	otherCreditHandler *handler.OtherCreditHandler,
	rentalHandler *handler.RentalHandler,
	serviceHandler *handler.ServiceHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/usuarios", userHandler.Register)
	api.POST("/usuarios/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes: bearer token verification, then subject resolution.
	secured := api.Group("", bearerMiddleware(jwtService), resolveUserMiddleware(userService))

	secured.GET("/usuarios", userHandler.List)
	secured.GET("/usuarios/me", userHandler.Me)
	secured.GET("/usuarios/:id", userHandler.Get)
	secured.PUT("/usuarios/:id", userHandler.Update)
	secured.DELETE("/usuarios/:id", userHandler.Delete)

	secured.POST("/categorias", categoryHandler.Create)
	secured.GET("/categorias", categoryHandler.List)
	secured.GET("/categorias/:id", categoryHandler.Get)
	secured.PUT("/categorias/:id", categoryHandler.Update)
	secured.DELETE("/categorias/:id", categoryHandler.Delete)

	secured.POST("/transacciones", transactionHandler.Create)
	secured.GET("/transacciones", transactionHandler.List)
	secured.GET("/transacciones/:id", transactionHandler.Get)
	secured.PUT("/transacciones/:id", transactionHandler.Update)
	secured.DELETE("/transacciones/:id", transactionHandler.Delete)

	secured.POST("/tarjetas-credito", creditCardHandler.Create)
	secured.GET("/tarjetas-credito", creditCardHandler.List)
	secured.GET("/tarjetas-credito/:id", creditCardHandler.Get)
	secured.PUT("/tarjetas-credito/:id", creditCardHandler.Update)
	secured.DELETE("/tarjetas-credito/:id", creditCardHandler.Delete)

	secured.POST("/otros-creditos", otherCreditHandler.Create)
	secured.GET("/otros-creditos", otherCreditHandler.List)
	secured.GET("/otros-creditos/:id", otherCreditHandler.Get)
	secured.PUT("/otros-creditos/:id", otherCreditHandler.Update)
	secured.DELETE("/otros-creditos/:id", otherCreditHandler.Delete)

	secured.POST("/alquileres", rentalHandler.Create)
	secured.GET("/alquileres", rentalHandler.List)
	secured.GET("/alquileres/:id", rentalHandler.Get)
	secured.PUT("/alquileres/:id", rentalHandler.Update)
	secured.DELETE("/alquileres/:id", rentalHandler.Delete)

	secured.POST("/servicios", serviceHandler.Create)
	secured.GET("/servicios", serviceHandler.List)
	secured.GET("/servicios/:id", serviceHandler.Get)
	secured.PUT("/servicios/:id", serviceHandler.Update)
	secured.DELETE("/servicios/:id", serviceHandler.Delete)
}

// bearerMiddleware verifies the Authorization bearer token signature and
// expiry. Every failure collapses into the same opaque 401 carrying a
// WWW-Authenticate challenge.
func bearerMiddleware(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthorized(c)
		},
	})
}

// resolveUserMiddleware resolves the verified token subject to a live
// user record and stores it for handlers. An unresolvable subject is
// indistinguishable from any other credential failure.
func resolveUserMiddleware(userService service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok || claims.Subject == "" {
				return unauthorized(c)
			}

			user, err := userService.FindByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				return unauthorized(c)
			}

			c.Set(handler.ContextUserKey, user)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: "could not validate credentials",
		Code:  "INVALID_CREDENTIALS",
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
