package set_bot_featured

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
		Method:      "PATCH",
		Path:        "/bots/{id}/featured",
		OpId:        "set_bot_featured",
		Summary:     "Set Bot Featured",
		Description: "Sets or clears the featured flag on an approved bot. Only bot reviewers can use this endpoint.",
		Req:         types.FeaturedUpdate{},
		Resp:        types.ApiError{},
		Params: []docs.Parameter{
			{
				Name:        "id",
				Description: "The bots ID",
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
	err := api.AuthzRoleCheck(d.Context, d.Auth, roles.PermModerateBots)

	if err != nil {
		return api.DefaultResponse(http.StatusForbidden)
	}

	id := chi.URLParam(r, "id")

	var payload types.FeaturedUpdate

	hresp, ok := api.MarshalReq(r, &payload)

	if !ok {
		return hresp
	}

	// Only approved bots show on the index, so only they may be featured
	tag, err := state.Pool.Exec(d.Context, "UPDATE bots SET featured = $1 WHERE bot_id = $2 AND type = $3", payload.Featured, id, types.BotTypeApproved)

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

	state.Redis.Del(d.Context, "bc-"+id)
	state.Redis.Del(d.Context, "list-index")

	return api.DefaultResponse(http.StatusNoContent)
}
