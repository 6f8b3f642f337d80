package patch_bot_settings

import (
	"net/http"

	"litten/api"
	"litten/docs"
	"litten/roles"
	"litten/state"
	"litten/types"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgtype"
)

var compiledMessages map[string]string

func Setup() {
	compiledMessages = api.CompileValidationErrors(types.UpdateBotSettings{})
}

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "PATCH",
		Path:        "/bots/{id}/settings",
		OpId:        "patch_bot_settings",
		Summary:     "Update Bot Settings",
		Description: "Updates the settings of a bot. Only the owner of the bot or a bot moderator can do this. Editing a rejected bot resubmits it to the queue as pending.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				Description: "The bots ID",
				Required:    true,
				In:          "path",
				Schema:      docs.IdSchema,
			},
		},
		Req:      types.UpdateBotSettings{},
		Resp:     types.ApiError{},
		Tags:     []string{api.CurrentTag},
		AuthType: []types.TargetType{types.TargetTypeUser},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	botId := chi.URLParam(r, "id")

	var owner pgtype.Text
	var botType string

	err := state.Pool.QueryRow(d.Context, "SELECT owner, type FROM bots WHERE bot_id = $1", botId).Scan(&owner, &botType)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusNotFound)
	}

	if owner.String != d.Auth.ID {
		// Not the owner, fall back to the moderation roles
		err = api.AuthzRoleCheck(d.Context, d.Auth, roles.PermModerateBots)

		if err != nil {
			return api.DefaultResponse(http.StatusForbidden)
		}
	}

	var payload types.UpdateBotSettings

	hresp, ok := api.MarshalReq(r, &payload)

	if !ok {
		return hresp
	}

	err = state.Validator.Struct(payload)

	if err != nil {
		errs := err.(validator.ValidationErrors)
		return api.ValidatorErrorResponse(compiledMessages, errs)
	}

	// Edits to a rejected bot resubmit it to the queue
	newType := botType

	if botType == types.BotTypeRejected {
		newType = types.BotTypePending
	}

	_, err = state.Pool.Exec(
		d.Context,
		"UPDATE bots SET name = $1, avatar = $2, short = $3, long = $4, tags = $5, extra_links = $6, servers = $7, type = $8, deny_reason = NULL WHERE bot_id = $9",
		payload.Name,
		payload.Avatar,
		payload.Short,
		payload.Long,
		payload.Tags,
		payload.ExtraLinks,
		payload.Servers,
		newType,
		botId,
	)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	// Invalidate the cached bot
	state.Redis.Del(d.Context, "bc-"+botId)

	return api.DefaultResponse(http.StatusOK)
}
