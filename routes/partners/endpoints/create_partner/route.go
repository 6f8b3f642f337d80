package create_partner

import (
	"net/http"

	"litten/api"
	"litten/docs"
	"litten/roles"
	"litten/state"
	"litten/types"

	"github.com/go-playground/validator/v10"
)

var compiledMessages map[string]string

func Setup() {
	compiledMessages = api.CompileValidationErrors(types.CreatePartner{})
}

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "POST",
		Path:        "/partners",
		OpId:        "create_partner",
		Summary:     "Create Partner",
		Description: "Adds a new partner to the list. Only list managers can use this endpoint.",
		Req:         types.CreatePartner{},
		Resp:        types.ApiError{},
		Tags:        []string{api.CurrentTag},
		AuthType:    []types.TargetType{types.TargetTypeUser},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	err := api.AuthzRoleCheck(d.Context, d.Auth, roles.PermManageList)

	if err != nil {
		return api.DefaultResponse(http.StatusForbidden)
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

	// Partner IDs are caller-chosen, so reject duplicates up front
	var count int

	err = state.Pool.QueryRow(d.Context, "SELECT COUNT(*) FROM partners WHERE id = $1", payload.ID).Scan(&count)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	if count > 0 {
		return api.HttpResponse{
			Status: http.StatusConflict,
			Json: types.ApiError{
				Error:   true,
				Message: "A partner with this ID already exists",
			},
		}
	}

	var userCount int

	err = state.Pool.QueryRow(d.Context, "SELECT COUNT(*) FROM users WHERE user_id = $1", payload.UserID).Scan(&userCount)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	if userCount == 0 {
		return api.HttpResponse{
			Status: http.StatusBadRequest,
			Json: types.ApiError{
				Error:   true,
				Message: "The partner contact must be a user on the list",
			},
		}
	}

	_, err = state.Pool.Exec(
		d.Context,
		"INSERT INTO partners (id, name, image, short, links, user_id) VALUES ($1, $2, $3, $4, $5, $6)",
		payload.ID,
		payload.Name,
		payload.Image,
		payload.Short,
		payload.Links,
		payload.UserID,
	)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	state.Redis.Del(d.Context, "partner-list")

	return api.DefaultResponse(http.StatusNoContent)
}
