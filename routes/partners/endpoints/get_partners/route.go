package get_partners

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
	partnerColsArr = db.GetCols(types.Partner{})
	partnerCols    = strings.Join(partnerColsArr, ",")
)

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "GET",
		Path:        "/partners",
		OpId:        "get_partners",
		Summary:     "Get Partners",
		Description: "Returns the current partners of the list.",
		Resp:        types.PartnerList{},
		Tags:        []string{api.CurrentTag},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	cache := state.Redis.Get(d.Context, "partner-list").Val()

	if cache != "" {
		return api.HttpResponse{
			Data: cache,
			Headers: map[string]string{
				"X-Litten-Cached": "true",
			},
		}
	}

	partners := []types.Partner{}

	err := pgxscan.Select(d.Context, state.Pool, &partners, "SELECT "+partnerCols+" FROM partners ORDER BY created_at ASC")

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	return api.HttpResponse{
		Json:      types.PartnerList{Partners: partners},
		CacheKey:  "partner-list",
		CacheTime: 5 * time.Minute,
	}
}
