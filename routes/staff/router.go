package staff

import (
	"litten/api"
	"litten/routes/staff/endpoints/approve_bot"
	"litten/routes/staff/endpoints/deny_bot"
	"litten/routes/staff/endpoints/patch_user_roles"
	"litten/routes/staff/endpoints/repair_bot_votes"
	"litten/routes/staff/endpoints/set_bot_featured"
	"litten/types"

	"github.com/go-chi/chi/v5"
)

const tagName = "Staff"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "These API endpoints are for staff use: bot review and list management."
}

func (b Router) Routes(r *chi.Mux) {
	api.Route{
		Pattern: "/bots/{id}/approve",
		OpId:    "approve_bot",
		Method:  api.POST,
		Docs:    approve_bot.Docs,
		Handler: approve_bot.Route,
		Auth: []api.AuthType{
			{
				Type: types.TargetTypeUser,
			},
		},
	}.Route(r)

	api.Route{
		Pattern: "/bots/{id}/deny",
		OpId:    "deny_bot",
		Method:  api.POST,
		Docs:    deny_bot.Docs,
		Handler: deny_bot.Route,
		Setup:   deny_bot.Setup,
		Auth: []api.AuthType{
			{
				Type: types.TargetTypeUser,
			},
		},
	}.Route(r)

	api.Route{
		Pattern: "/bots/{id}/featured",
		OpId:    "set_bot_featured",
		Method:  api.PATCH,
		Docs:    set_bot_featured.Docs,
		Handler: set_bot_featured.Route,
		Auth: []api.AuthType{
			{
				Type: types.TargetTypeUser,
			},
		},
	}.Route(r)

	api.Route{
		Pattern: "/bots/{id}/votes/repair",
		OpId:    "repair_bot_votes",
		Method:  api.POST,
		Docs:    repair_bot_votes.Docs,
		Handler: repair_bot_votes.Route,
		Auth: []api.AuthType{
			{
				Type: types.TargetTypeUser,
			},
		},
	}.Route(r)

	api.Route{
		Pattern: "/users/{id}/roles",
		OpId:    "patch_user_roles",
		Method:  api.PATCH,
		Docs:    patch_user_roles.Docs,
		Handler: patch_user_roles.Route,
		Setup:   patch_user_roles.Setup,
		Auth: []api.AuthType{
			{
				Type: types.TargetTypeUser,
			},
		},
	}.Route(r)
}
