package post_bot_stats

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
	compiledMessages = api.CompileValidationErrors(types.BotStats{})
}

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "POST",
		Path:        "/bots/stats",
		OpId:        "post_bot_stats",
		Summary:     "Post Bot Stats",
		Description: "Updates the statistics of the bot identified by the supplied bot token.",
		Req:         types.BotStats{},
		Resp:        types.ApiError{},
		Tags:        []string{api.CurrentTag},
		AuthType:    []types.TargetType{types.TargetTypeBot},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	var payload types.BotStats

	hresp, ok := api.MarshalReq(r, &payload)

	if !ok {
		return hresp
	}

	err := state.Validator.Struct(payload)

	if err != nil {
		errs := err.(validator.ValidationErrors)
		return api.ValidatorErrorResponse(compiledMessages, errs)
	}

	_, err = state.Pool.Exec(d.Context, "UPDATE bots SET servers = $1 WHERE bot_id = $2", payload.Servers, d.Auth.ID)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	state.Redis.Del(d.Context, "bc-"+d.Auth.ID)

	return api.DefaultResponse(http.StatusNoContent)
}
