package approve_bot

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
	"github.com/jackc/pgx/v5"
)

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "POST",
		Path:        "/bots/{id}/approve",
		OpId:        "approve_bot",
		Summary:     "Approve Bot",
		Description: "Approves a pending bot so it shows up publicly on the list. Only bot reviewers can use this endpoint.",
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
				Message: "Only pending bots can be approved",
			},
		}
	}

	_, err = state.Pool.Exec(d.Context, "UPDATE bots SET type = $1, deny_reason = NULL WHERE bot_id = $2", types.BotTypeApproved, id)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	state.Redis.Del(d.Context, "bc-"+id)
	state.Redis.Del(d.Context, "list-index")

	// Review outcomes are announced best-effort, the approval itself has
	// already been committed at this point
	_, err = state.Discord.ChannelMessageSendEmbed(state.Config.Channels.BotLogs, &discordgo.MessageEmbed{
		URL:         state.Config.Sites.Frontend.Parse() + "/bots/" + id,
		Title:       "Bot Approved!",
		Description: "<@" + id + "> has been approved by <@" + d.Auth.ID + ">",
		Color:       0x00FF00,
	})

	if err != nil {
		state.Logger.Error("error sending bot approve log: ", err)
	}

	return api.DefaultResponse(http.StatusNoContent)
}
