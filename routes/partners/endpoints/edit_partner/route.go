package edit_partner

import (
	"net/http"

	"litten/api"
	"litten/constants"
	"litten/docs"
	"litten/roles"
	"litten/state"
	"litten/types"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var compiledMessages map[string]string

func Setup() {
	compiledMessages = api.CompileValidationErrors(types.CreatePartner{})
}

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "PATCH",
		Path:        "/partners/{id}",
		OpId:        "edit_partner",
		Summary:     "Edit Partner",
		Description: "Edits an existing partner. Only list managers can use this endpoint.",
		Req:         types.CreatePartner{},
		Resp:        types.ApiError{},
		Params: []docs.Parameter{
			{
				Name:        "id",
				Description: "The partners ID",
				Required:    true,
				In:          "path",
				Schema:      docs.IdSchema,
			},
		},
		Tags:     []string{api.CurrentTag},
		AuthType: []types.TargetType{types.TargetTypeUser},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	err := api.AuthzRoleCheck(d.Context, d.Auth, roles.PermManageList)

	if err != nil {
		return api.DefaultResponse(http.StatusForbidden)
	}

	id := chi.URLParam(r, "id")

	var count int

	err = state.Pool.QueryRow(d.Context, "SELECT COUNT(*) FROM partners WHERE id = $1", id).Scan(&count)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	if count == 0 {
		return api.HttpResponse{
			Status: http.StatusNotFound,
			Data:   constants.ResourceNotFound,
		}
	}

	var payload types.CreatePartner

	hresp, ok := api.MarshalReq(r, &payload)

	if !ok {
		return hresp
	}

	err = state.Validator.Struct(payload)

	if err != nil {
		errs := err.(validator.ValidationErrors)
		return api.ValidatorErrorResponse(compiledMessages, errs)
	}

	// The path param wins over any ID in the body
	if payload.ID != id {
		var idTaken int

		err = state.Pool.QueryRow(d.Context, "SELECT COUNT(*) FROM partners WHERE id = $1", payload.ID).Scan(&idTaken)

		if err != nil {
			state.Logger.Error(err)
			return api.DefaultResponse(http.StatusInternalServerError)
		}

		if idTaken > 0 {
			return api.HttpResponse{
				Status: http.StatusConflict,
				Json: types.ApiError{
					Error:   true,
					Message: "A partner with this ID already exists",
				},
			}
		}
	}

	_, err = state.Pool.Exec(
		d.Context,
		"UPDATE partners SET id = $1, name = $2, image = $3, short = $4, links = $5, user_id = $6 WHERE id = $7",
		payload.ID,
		payload.Name,
		payload.Image,
		payload.Short,
		payload.Links,
		payload.UserID,
		id,
	)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	state.Redis.Del(d.Context, "partner-list")

	return api.DefaultResponse(http.StatusNoContent)
}
