package get_bot_seo

import (
	"errors"
	"net/http"
	"time"

	"litten/api"
	"litten/constants"
	"litten/docs"
	"litten/state"
	"litten/types"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
)

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "GET",
		Path:        "/bots/{id}/seo",
		OpId:        "get_bot_seo",
		Summary:     "Get Bot SEO Info",
		Description: "Returns the minimal information about a bot needed for meta tags and embeds.",
		Resp:        types.SEO{},
		Params: []docs.Parameter{
			{
				Name:        "id",
				Description: "The bots ID",
				Required:    true,
				In:          "path",
				Schema:      docs.IdSchema,
			},
		},
		Tags: []string{api.CurrentTag},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	id := chi.URLParam(r, "id")

	cache := state.Redis.Get(d.Context, "seob-"+id).Val()
	if cache != "" {
		return api.HttpResponse{
			Data: cache,
			Headers: map[string]string{
				"X-Litten-Cached": "true",
			},
		}
	}

	var name, avatar, short string

	err := state.Pool.QueryRow(d.Context, "SELECT name, avatar, short FROM bots WHERE bot_id = $1 AND type = $2", id, types.BotTypeApproved).Scan(&name, &avatar, &short)

	if errors.Is(err, pgx.ErrNoRows) {
		return api.HttpResponse{
			Status: http.StatusNotFound,
			Data:   constants.ResourceNotFound,
		}
	}

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	return api.HttpResponse{
		Json: types.SEO{
			ID:     id,
			Name:   name,
			Avatar: avatar,
			Short:  short,
		},
		CacheKey:  "seob-" + id,
		CacheTime: 30 * time.Minute,
	}
}
