package deny_bot

import (
	"errors"
	"net/http"

	"litten/api"
	"litten/constants"
	"litten/docs"
	"litten/roles"
	"litten/state"
	"litten/types"

	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
)

var compiledMessages map[string]string

func Setup() {
	compiledMessages = api.CompileValidationErrors(types.BotDeny{})
}

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "POST",
		Path:        "/bots/{id}/deny",
		OpId:        "deny_bot",
		Summary:     "Deny Bot",
		Description: "Denies a pending bot with a reason. The owner can edit the listing and resubmit it later. Only bot reviewers can use this endpoint.",
		Req:         types.BotDeny{},
		Resp:        types.ApiError{},
		Params: []docs.Parameter{
			{
				Name:        "id",
				Description: "The bots ID",
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
	err := api.AuthzRoleCheck(d.Context, d.Auth, roles.PermModerateBots)

	if err != nil {
		return api.DefaultResponse(http.StatusForbidden)
	}

	id := chi.URLParam(r, "id")

	var payload types.BotDeny

	hresp, ok := api.MarshalReq(r, &payload)

	if !ok {
		return hresp
	}

	err = state.Validator.Struct(payload)

	if err != nil {
		errs := err.(validator.ValidationErrors)
		return api.ValidatorErrorResponse(compiledMessages, errs)
	}

	var botType string

	err = state.Pool.QueryRow(d.Context, "SELECT type FROM bots WHERE bot_id = $1", id).Scan(&botType)

	if errors.Is(err, pgx.ErrNoRows) {
		return api.HttpResponse{
			Status: http.StatusNotFound,
			Data:   constants.ResourceNotFound,
		}
	}

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	if botType != types.BotTypePending {
		return api.HttpResponse{
			Status: http.StatusBadRequest,
			Json: types.ApiError{
				Error:   true,
				Message: "Only pending bots can be denied",
			},
		}
	}

	_, err = state.Pool.Exec(d.Context, "UPDATE bots SET type = $1, deny_reason = $2 WHERE bot_id = $3", types.BotTypeRejected, payload.Reason, id)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	state.Redis.Del(d.Context, "bc-"+id)

	_, err = state.Discord.ChannelMessageSendEmbed(state.Config.Channels.BotLogs, &discordgo.MessageEmbed{
		Title:       "Bot Denied",
		Description: "<@" + id + "> has been denied by <@" + d.Auth.ID + ">",
		Color:       0xFF0000,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Reason",
				Value: payload.Reason,
			},
		},
	})

	if err != nil {
		state.Logger.Error("error sending bot deny log: ", err)
	}

	return api.DefaultResponse(http.StatusNoContent)
}
