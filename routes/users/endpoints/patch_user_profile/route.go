package patch_user_profile

import (
	"net/http"

	"litten/api"
	"litten/docs"
	"litten/state"
	"litten/types"

	"github.com/go-playground/validator/v10"
)

var compiledMessages map[string]string

func Setup() {
	compiledMessages = api.CompileValidationErrors(types.ProfileUpdate{})
}

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "PATCH",
		Path:        "/users/{id}/profile",
		OpId:        "patch_user_profile",
		Summary:     "Update User Profile",
		Description: "Updates the profile of the authenticated user. Users can only update their own profile.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				Description: "The users ID",
				Required:    true,
				In:          "path",
				Schema:      docs.IdSchema,
			},
		},
		Req:      types.ProfileUpdate{},
		Resp:     types.ApiError{},
		Tags:     []string{api.CurrentTag},
		AuthType: []types.TargetType{types.TargetTypeUser},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	var payload types.ProfileUpdate

	hresp, ok := api.MarshalReq(r, &payload)

	if !ok {
		return hresp
	}

	err := state.Validator.Struct(payload)

	if err != nil {
		errs := err.(validator.ValidationErrors)
		return api.ValidatorErrorResponse(compiledMessages, errs)
	}

	_, err = state.Pool.Exec(d.Context, "UPDATE users SET about = $1, extra_links = $2 WHERE user_id = $3", payload.About, payload.ExtraLinks, d.Auth.ID)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	state.Redis.Del(d.Context, "uc-"+d.Auth.ID)

	return api.DefaultResponse(http.StatusOK)
}
