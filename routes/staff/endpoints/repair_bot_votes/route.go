package repair_bot_votes

import (
	"errors"
	"net/http"

	"litten/api"
	"litten/constants"
	"litten/docs"
	"litten/roles"
	"litten/state"
	"litten/types"
	"litten/votes"

	"github.com/go-chi/chi/v5"
)

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "POST",
		Path:        "/bots/{id}/votes/repair",
		OpId:        "repair_bot_votes",
		Summary:     "Repair Bot Votes",
		Description: "Recomputes a bots vote count from the vote ledger, fixing any drift in the cached tally. Only bot reviewers can use this endpoint.",
		Resp:        types.VoteResult{},
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

	total, err := votes.RepairTally(d.Context, state.Pool, id)

	if errors.Is(err, votes.ErrBotNotFound) {
		return api.HttpResponse{
			Status: http.StatusNotFound,
			Data:   constants.ResourceNotFound,
		}
	}

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	state.Redis.Del(d.Context, "bc-"+id)
	state.Redis.Del(d.Context, "list-index")

	return api.HttpResponse{
		Json: types.VoteResult{
			TotalVotes: total,
		},
	}
}
