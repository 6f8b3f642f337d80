package list

import (
	"litten/api"
	"litten/routes/list/endpoints/get_list_index"
	"litten/routes/list/endpoints/get_list_stats"
	"litten/routes/list/endpoints/search_list"

	"github.com/go-chi/chi/v5"
)

const tagName = "List"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "These API endpoints are basic statistics and listings of our list."
}

func (b Router) Routes(r *chi.Mux) {
	api.Route{
		Pattern: "/list/index",
		OpId:    "get_list_index",
		Method:  api.GET,
		Docs:    get_list_index.Docs,
		Handler: get_list_index.Route,
	}.Route(r)

	api.Route{
		Pattern: "/list/stats",
		OpId:    "get_list_stats",
		Method:  api.GET,
		Docs:    get_list_stats.Docs,
		Handler: get_list_stats.Route,
	}.Route(r)

	api.Route{
		Pattern: "/list/search",
		OpId:    "search_list",
		Method:  api.POST,
		Docs:    search_list.Docs,
		Handler: search_list.Route,
		Setup:   search_list.Setup,
	}.Route(r)
}
