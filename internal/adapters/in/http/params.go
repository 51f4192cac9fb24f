package http

import (
	"fmt"
	"net/http"
	"strings"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func pathID(c echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, badRequest(fmt.Sprintf("invalid %s", name), err)
	}
	id, err := kernel.UUIDFromRaw(raw)
	if err != nil {
		return kernel.UUID{}, badRequest(fmt.Sprintf("invalid %s", name), err)
	}
	return id, nil
}

// queryInt binds an optional integer query parameter; absent yields zero.
func queryInt(c echo.Context, name string) (int, error) {
	var v *int
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &v); err != nil {
		return 0, badRequest(fmt.Sprintf("invalid %s", name), err)
	}
	if v == nil {
		return 0, nil
	}
	return *v, nil
}

func queryString(c echo.Context, name string) (string, error) {
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &v); err != nil {
		return "", badRequest(fmt.Sprintf("invalid %s", name), err)
	}
	if v == nil {
		return "", nil
	}
	return strings.TrimSpace(*v), nil
}

// groupRole maps the group path segment onto a grantable role.
func groupRole(c echo.Context) (identity.Role, string, error) {
	switch group := c.Param("group"); group {
	case "manager":
		return identity.Manager, "Manager", nil
	case "delivery-crew":
		return identity.DeliveryCrew, "Delivery crew", nil
	default:
		return "", "", echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("unknown group %q", group))
	}
}

func bindBody(c echo.Context, dest any) error {
	if err := c.Bind(dest); err != nil {
		return badRequest("invalid request body", err)
	}
	return nil
}
