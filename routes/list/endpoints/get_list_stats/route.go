package get_list_stats

import (
	"net/http"

	"litten/api"
	"litten/docs"
	"litten/state"
	"litten/types"
)

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "GET",
		Path:        "/list/stats",
		OpId:        "get_list_stats",
		Summary:     "Get List Stats",
		Description: "Returns basic statistics of the list such as the total number of bots and votes.",
		Resp:        types.ListStats{},
		Tags:        []string{api.CurrentTag},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	var stats types.ListStats

	err := state.Pool.QueryRow(d.Context, "SELECT COUNT(*) FROM bots").Scan(&stats.TotalBots)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	err = state.Pool.QueryRow(d.Context, "SELECT COUNT(*) FROM bots WHERE type = $1", types.BotTypeApproved).Scan(&stats.TotalApproved)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	err = state.Pool.QueryRow(d.Context, "SELECT COUNT(*) FROM bots WHERE type = $1", types.BotTypePending).Scan(&stats.TotalPending)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	err = state.Pool.QueryRow(d.Context, "SELECT COUNT(*) FROM users").Scan(&stats.TotalUsers)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	err = state.Pool.QueryRow(d.Context, "SELECT COUNT(*) FROM votes").Scan(&stats.TotalVotes)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	return api.HttpResponse{
		Json: stats,
	}
}
