package add_bot

import (
	"net/http"

	"litten/api"
	"litten/docs"
	"litten/state"
	"litten/types"
	"litten/utils"

	"github.com/go-playground/validator/v10"
)

var compiledMessages map[string]string

func Setup() {
	compiledMessages = api.CompileValidationErrors(types.CreateBot{})
}

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "POST",
		Path:        "/bots",
		OpId:        "add_bot",
		Summary:     "Create Bot",
		Description: "Submits a new bot to the list. The bot starts out as pending and must be approved by a reviewer before it shows up publicly.",
		Req:         types.CreateBot{},
		Resp:        types.ApiError{},
		Tags:        []string{api.CurrentTag},
		AuthType:    []types.TargetType{types.TargetTypeUser},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	var payload types.CreateBot

	hresp, ok := api.MarshalReq(r, &payload)

	if !ok {
		return hresp
	}

	err := state.Validator.Struct(payload)

	if err != nil {
		errs := err.(validator.ValidationErrors)
		return api.ValidatorErrorResponse(compiledMessages, errs)
	}

	// Check that the bot is not already on the list
	var count int

	err = state.Pool.QueryRow(d.Context, "SELECT COUNT(*) FROM bots WHERE bot_id = $1", payload.BotID).Scan(&count)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	if count > 0 {
		return api.HttpResponse{
			Status: http.StatusConflict,
			Json: types.ApiError{
				Message: "This bot is already on the list",
				Error:   true,
			},
		}
	}

	// The submitter must exist as a user before owning a bot
	var userExists bool

	err = state.Pool.QueryRow(d.Context, "SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)", d.Auth.ID).Scan(&userExists)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	if !userExists {
		return api.DefaultResponse(http.StatusUnauthorized)
	}

	_, err = state.Pool.Exec(
		d.Context,
		"INSERT INTO bots (bot_id, owner, name, avatar, short, long, tags, extra_links, servers, type, api_token) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)",
		payload.BotID,
		d.Auth.ID,
		payload.Name,
		payload.Avatar,
		payload.Short,
		payload.Long,
		payload.Tags,
		payload.ExtraLinks,
		payload.Servers,
		types.BotTypePending,
		utils.RandString(128),
	)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	return api.HttpResponse{
		Status: http.StatusNoContent,
	}
}
