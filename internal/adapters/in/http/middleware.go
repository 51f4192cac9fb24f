package http

import (
	"log/slog"
	"net/http"

	"littlelemon/internal/adapters/out/credentials"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const principalKey = "principal"

func principalFrom(c echo.Context) identity.Principal {
	if p, ok := c.Get(principalKey).(identity.Principal); ok {
		return p
	}
	return identity.Anonymous()
}

// authenticate resolves the bearer token, if any, into a principal. A
// request without credentials continues as anonymous; a request with bad
// credentials is rejected.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			c.Set(principalKey, identity.Anonymous())
			return next(c)
		}

		token, ok := credentials.BearerToken(header)
		if !ok {
			return s.fail(c, echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header"))
		}
		claims, err := s.verifier.Verify(c.Request().Context(), token)
		if err != nil {
			s.logger.DebugContext(c.Request().Context(), "token rejected", "error", err)
			return s.fail(c, echo.NewHTTPError(http.StatusUnauthorized, "invalid token").SetInternal(err))
		}

		cmd, err := commands.NewResolvePrincipalCommand(claims.Subject, claims.Username)
		if err != nil {
			return s.fail(c, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims").SetInternal(err))
		}
		principal, err := s.h.ResolvePrincipal.Handle(c.Request().Context(), cmd)
		if err != nil {
			return s.fail(c, err)
		}

		c.Set(principalKey, principal)
		return next(c)
	}
}

func (s *Server) requireAuthentication(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !principalFrom(c).IsAuthenticated() {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer realm="littlelemon"`)
			return s.fail(c, echo.NewHTTPError(http.StatusUnauthorized, "authentication credentials were not provided"))
		}
		return next(c)
	}
}

// requestLogger writes one structured line per request.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if p := principalFrom(c); p.IsAuthenticated() {
				attrs = append(attrs, "user", p.Username())
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error.Error())
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}
