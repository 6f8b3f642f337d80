package users

import (
	"litten/api"
	"litten/routes/users/endpoints/get_user"
	"litten/routes/users/endpoints/patch_user_profile"
	"litten/types"

	"github.com/go-chi/chi/v5"
)

const tagName = "Users"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "These API endpoints are related to users on the list."
}

func (b Router) Routes(r *chi.Mux) {
	api.Route{
		Pattern: "/users/{id}",
		OpId:    "get_user",
		Method:  api.GET,
		Docs:    get_user.Docs,
		Handler: get_user.Route,
	}.Route(r)

	api.Route{
		Pattern: "/users/{id}/profile",
		OpId:    "patch_user_profile",
		Method:  api.PATCH,
		Docs:    patch_user_profile.Docs,
		Handler: patch_user_profile.Route,
		Setup:   patch_user_profile.Setup,
		Auth: []api.AuthType{
			{
				URLVar: "id",
				Type:   types.TargetTypeUser,
			},
		},
	}.Route(r)
}
