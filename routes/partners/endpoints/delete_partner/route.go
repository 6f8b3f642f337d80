package delete_partner

import (
	"net/http"

	"litten/api"
	"litten/constants"
	"litten/docs"
	"litten/roles"
	"litten/state"
	"litten/types"

	"github.com/go-chi/chi/v5"
)

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "DELETE",
		Path:        "/partners/{id}",
		OpId:        "delete_partner",
		Summary:     "Delete Partner",
		Description: "Deletes a partner from the list. Only list managers can use this endpoint.",
		Resp:        types.ApiError{},
		Params: []docs.Parameter{
			{
				Name:        "id",
				Description: "The partners ID",
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

	tag, err := state.Pool.Exec(d.Context, "DELETE FROM partners WHERE id = $1", id)

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

	state.Redis.Del(d.Context, "partner-list")

	return api.DefaultResponse(http.StatusNoContent)
}
