package get_all_bots

import (
	"net/http"
	"strings"

	"litten/api"
	"litten/db"
	"litten/docs"
	"litten/state"
	"litten/types"
	"litten/utils"

	"github.com/georgysavva/scany/v2/pgxscan"
)

var (
	indexBotColsArr = db.GetCols(types.IndexBot{})
	indexBotCols    = strings.Join(indexBotColsArr, ",")
)

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "GET",
		Path:        "/bots/all",
		OpId:        "get_all_bots",
		Summary:     "Get All Bots",
		Description: "Returns all approved bots on the list in pages of 12 bots each.",
		Params: []docs.Parameter{
			{
				Name:        "page",
				Description: "The page to fetch",
				Required:    false,
				In:          "query",
				Schema:      docs.IdSchema,
			},
		},
		Resp: types.AllBots{},
		Tags: []string{api.CurrentTag},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	page, err := utils.GetPage(r)

	if err != nil {
		return api.DefaultResponse(http.StatusBadRequest)
	}

	offset := utils.PerPage * (page - 1)

	rows, err := state.Pool.Query(d.Context, "SELECT "+indexBotCols+" FROM bots WHERE type = $1 ORDER BY votes DESC LIMIT $2 OFFSET $3", types.BotTypeApproved, utils.PerPage, offset)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	var bots []types.IndexBot

	err = pgxscan.ScanAll(&bots, rows)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	var count uint64

	err = state.Pool.QueryRow(d.Context, "SELECT COUNT(*) FROM bots WHERE type = $1", types.BotTypeApproved).Scan(&count)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	return api.HttpResponse{
		Json: types.AllBots{
			Count:   count,
			PerPage: utils.PerPage,
			Results: bots,
		},
	}
}
