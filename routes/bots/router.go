package bots

import (
	"litten/api"
	"litten/routes/bots/endpoints/add_bot"
	"litten/routes/bots/endpoints/create_bot_vote"
	"litten/routes/bots/endpoints/get_all_bots"
	"litten/routes/bots/endpoints/get_bot"
	"litten/routes/bots/endpoints/get_bot_seo"
	"litten/routes/bots/endpoints/get_bot_vote_eligibility"
	"litten/routes/bots/endpoints/patch_bot_settings"
	"litten/routes/bots/endpoints/post_bot_stats"
	"litten/types"

	"github.com/go-chi/chi/v5"
)

const tagName = "Bots"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "These API endpoints are related to bots on the list."
}

func (b Router) Routes(r *chi.Mux) {
	api.Route{
		Pattern: "/bots/all",
		OpId:    "get_all_bots",
		Method:  api.GET,
		Docs:    get_all_bots.Docs,
		Handler: get_all_bots.Route,
	}.Route(r)

	api.Route{
		Pattern: "/bots/stats",
		OpId:    "post_bot_stats",
		Method:  api.POST,
		Docs:    post_bot_stats.Docs,
		Handler: post_bot_stats.Route,
		Setup:   post_bot_stats.Setup,
		Auth: []api.AuthType{
			{
				Type: types.TargetTypeBot,
			},
		},
	}.Route(r)

	api.Route{
		Pattern: "/bots/{id}",
		OpId:    "get_bot",
		Method:  api.GET,
		Docs:    get_bot.Docs,
		Handler: get_bot.Route,
	}.Route(r)

	api.Route{
		Pattern: "/bots/{id}/seo",
		OpId:    "get_bot_seo",
		Method:  api.GET,
		Docs:    get_bot_seo.Docs,
		Handler: get_bot_seo.Route,
	}.Route(r)

	api.Route{
		Pattern: "/bots",
		OpId:    "add_bot",
		Method:  api.POST,
		Docs:    add_bot.Docs,
		Handler: add_bot.Route,
		Setup:   add_bot.Setup,
		Auth: []api.AuthType{
			{
				Type: types.TargetTypeUser,
			},
		},
	}.Route(r)

	api.Route{
		Pattern: "/bots/{id}/settings",
		OpId:    "patch_bot_settings",
		Method:  api.PATCH,
		Docs:    patch_bot_settings.Docs,
		Handler: patch_bot_settings.Route,
		Setup:   patch_bot_settings.Setup,
		Auth: []api.AuthType{
			{
				Type: types.TargetTypeUser,
			},
		},
	}.Route(r)

	api.Route{
		Pattern: "/bots/{id}/votes",
		OpId:    "get_bot_vote_eligibility",
		Method:  api.GET,
		Docs:    get_bot_vote_eligibility.Docs,
		Handler: get_bot_vote_eligibility.Route,
		Auth: []api.AuthType{
			{
				Type: types.TargetTypeUser,
			},
		},
		AuthOptional: true,
	}.Route(r)

	api.Route{
		Pattern: "/bots/{id}/votes",
		OpId:    "create_bot_vote",
		Method:  api.POST,
		Docs:    create_bot_vote.Docs,
		Handler: create_bot_vote.Route,
		Auth: []api.AuthType{
			{
				Type: types.TargetTypeUser,
			},
		},
	}.Route(r)
}
