package partners

import (
	"litten/api"
	"litten/routes/partners/endpoints/create_partner"
	"litten/routes/partners/endpoints/delete_partner"
	"litten/routes/partners/endpoints/edit_partner"
	"litten/routes/partners/endpoints/get_partners"
	"litten/types"

	"github.com/go-chi/chi/v5"
)

const tagName = "Partners"

type Router struct{}

func (b Router) Tag() (string, string) {
	return tagName, "These API endpoints are related to our partners."
}

func (b Router) Routes(r *chi.Mux) {
	api.Route{
		Pattern: "/partners",
		OpId:    "get_partners",
		Method:  api.GET,
		Docs:    get_partners.Docs,
		Handler: get_partners.Route,
	}.Route(r)

	api.Route{
		Pattern: "/partners",
		OpId:    "create_partner",
		Method:  api.POST,
		Docs:    create_partner.Docs,
		Handler: create_partner.Route,
		Setup:   create_partner.Setup,
		Auth: []api.AuthType{
			{
				Type: types.TargetTypeUser,
			},
		},
	}.Route(r)

	api.Route{
		Pattern: "/partners/{id}",
		OpId:    "edit_partner",
		Method:  api.PATCH,
		Docs:    edit_partner.Docs,
		Handler: edit_partner.Route,
		Setup:   edit_partner.Setup,
		Auth: []api.AuthType{
			{
				Type: types.TargetTypeUser,
			},
		},
	}.Route(r)

	api.Route{
		Pattern: "/partners/{id}",
		OpId:    "delete_partner",
		Method:  api.DELETE,
		Docs:    delete_partner.Docs,
		Handler: delete_partner.Route,
		Auth: []api.AuthType{
			{
				Type: types.TargetTypeUser,
			},
		},
	}.Route(r)
}
