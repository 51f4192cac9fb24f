package http

import (
	"fmt"
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListGroupMembers(c echo.Context) error {
	role, _, err := groupRole(c)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewListRoleMembersQuery(principalFrom(c), role)
	if err != nil {
		return s.fail(c, err)
	}
	users, err := s.h.ListRoleMembers.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newList(mapSlice(users, toUserResponse)))
}

// AddGroupMember answers 201 when the user joins the group and 200 when
// the user already belonged to it.
func (s *Server) AddGroupMember(c echo.Context) error {
	role, group, err := groupRole(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req groupMemberRequest
	if err = bindBody(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAddRoleMemberCommand(principalFrom(c), role, req.Username)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.h.AddRoleMember.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	if !result.Changed {
		return c.JSON(http.StatusOK, messageResponse{
			Message: fmt.Sprintf("User already belongs to %s group", group),
			Result:  fromUser(result.User),
		})
	}
	return c.JSON(http.StatusCreated, messageResponse{
		Message: fmt.Sprintf("User added to %s group", group),
		Result:  fromUser(result.User),
	})
}

func (s *Server) RemoveGroupMember(c echo.Context) error {
	role, group, err := groupRole(c)
	if err != nil {
		return s.fail(c, err)
	}
	userID, err := pathID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRemoveRoleMemberCommand(principalFrom(c), role, userID)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.h.RemoveRoleMember.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	message := fmt.Sprintf("User removed from %s group", group)
	if !result.Changed {
		message = fmt.Sprintf("User does not belong to %s group", group)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: message, Result: fromUser(result.User)})
}
