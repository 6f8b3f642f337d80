package patch_user_roles

import (
	"net/http"

	"litten/api"
	"litten/constants"
	"litten/docs"
	"litten/roles"
	"litten/state"
	"litten/types"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var compiledMessages map[string]string

func Setup() {
	compiledMessages = api.CompileValidationErrors(types.RolesUpdate{})
}

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "PATCH",
		Path:        "/users/{id}/roles",
		OpId:        "patch_user_roles",
		Summary:     "Update User Roles",
		Description: "Replaces the set of roles on a user. Unknown role names are rejected. Only list managers can use this endpoint.",
		Req:         types.RolesUpdate{},
		Resp:        types.ApiError{},
		Params: []docs.Parameter{
			{
				Name:        "id",
				Description: "The users ID",
				Required:    true,
				In:          "path",
				Schema:      docs.IdSchema,
			},
		},
		Tags:     []string{api.CurrentTag},
		AuthType: []types.TargetType{types.TargetTypeUser},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	err := api.AuthzRoleCheck(d.Context, d.Auth, roles.PermManageList)

	if err != nil {
		return api.DefaultResponse(http.StatusForbidden)
	}

	id := chi.URLParam(r, "id")

	var payload types.RolesUpdate

	hresp, ok := api.MarshalReq(r, &payload)

	if !ok {
		return hresp
	}

	err = state.Validator.Struct(payload)

	if err != nil {
		errs := err.(validator.ValidationErrors)
		return api.ValidatorErrorResponse(compiledMessages, errs)
	}

	for _, role := range payload.Roles {
		if !roles.Valid(role) {
			return api.HttpResponse{
				Status: http.StatusBadRequest,
				Json: types.ApiError{
					Error:   true,
					Message: "Unknown role: " + constants.BackTick + role + constants.BackTick,
				},
			}
		}
	}

	tag, err := state.Pool.Exec(d.Context, "UPDATE users SET roles = $1 WHERE user_id = $2", payload.Roles, id)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	if tag.RowsAffected() == 0 {
		return api.HttpResponse{
			Status: http.StatusNotFound,
			Data:   constants.ResourceNotFound,
		}
	}

	state.Redis.Del(d.Context, "uc-"+id)

	return api.DefaultResponse(http.StatusNoContent)
}
