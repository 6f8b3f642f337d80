package get_list_index

import (
	"net/http"
	"strings"
	"time"

	"litten/api"
	"litten/db"
	"litten/docs"
	"litten/state"
	"litten/types"

	"github.com/georgysavva/scany/v2/pgxscan"
)

var (
	indexBotColsArr = db.GetCols(types.IndexBot{})
	indexBotCols    = strings.Join(indexBotColsArr, ",")
)

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "GET",
		Path:        "/list/index",
		OpId:        "get_list_index",
		Summary:     "Get List Index",
		Description: "Returns the index of the list: featured bots, the most voted bots and the newest additions.",
		Resp:        types.ListIndex{},
		Tags:        []string{api.CurrentTag},
	})
}

func indexQuery(d api.RouteData, where, order string) ([]types.IndexBot, error) {
	rows, err := state.Pool.Query(d.Context, "SELECT "+indexBotCols+" FROM bots WHERE type = $1 "+where+" ORDER BY "+order+" LIMIT 12", types.BotTypeApproved)

	if err != nil {
		return nil, err
	}

	var bots []types.IndexBot

	err = pgxscan.ScanAll(&bots, rows)

	if err != nil {
		return nil, err
	}

	return bots, nil
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	cache := state.Redis.Get(d.Context, "list-index").Val()
	if cache != "" {
		return api.HttpResponse{
			Data: cache,
			Headers: map[string]string{
				"X-Litten-Cached": "true",
			},
		}
	}

	featured, err := indexQuery(d, "AND featured = true", "votes DESC")

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	topVoted, err := indexQuery(d, "", "votes DESC")

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	newBots, err := indexQuery(d, "", "created_at DESC")

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	return api.HttpResponse{
		Json: types.ListIndex{
			Featured: featured,
			TopVoted: topVoted,
			NewBots:  newBots,
		},
		CacheKey:  "list-index",
		CacheTime: 3 * time.Minute,
	}
}
