package create_bot_vote

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"litten/api"
	"litten/constants"
	"litten/docs"
	"litten/notifications"
	"litten/state"
	"litten/types"
	"litten/votes"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "POST",
		Path:        "/bots/{id}/votes",
		OpId:        "create_bot_vote",
		Summary:     "Create Bot Vote",
		Description: "Casts a vote for a bot. A user can vote for a given bot once every 12 hours, measured from their previous vote.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				Description: "The bots ID",
				Required:    true,
				In:          "path",
				Schema:      docs.IdSchema,
			},
		},
		Resp:     types.VoteResult{},
		Tags:     []string{api.CurrentTag},
		AuthType: []types.TargetType{types.TargetTypeUser},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	botId := chi.URLParam(r, "id")

	newTally, err := votes.CastVote(d.Context, state.Pool, d.Auth.ID, botId)

	if err != nil {
		var cooldown votes.ErrCooldown

		switch {
		case errors.As(err, &cooldown):
			wait := votes.Wait(cooldown.NextEligibleAt.Add(-votes.VoteCooldown), time.Now())

			msg := "Please wait before voting again"

			if wait != nil {
				msg = fmt.Sprintf("Please wait %02d hours, %02d minutes and %02d seconds before voting again", wait.Hours, wait.Minutes, wait.Seconds)
			}

			return api.HttpResponse{
				Status: http.StatusTooManyRequests,
				Json: types.VoteEligibility{
					CanVote:        false,
					Error:          msg,
					NextEligibleAt: &cooldown.NextEligibleAt,
				},
			}
		case errors.Is(err, votes.ErrBotNotFound):
			return api.DefaultResponse(http.StatusNotFound)
		case errors.Is(err, votes.ErrSelfVote):
			return api.HttpResponse{
				Status: http.StatusForbidden,
				Json: types.ApiError{
					Message: "You cannot vote for your own bot",
					Error:   true,
				},
			}
		case errors.Is(err, votes.ErrVoteBanned):
			return api.HttpResponse{
				Status: http.StatusForbidden,
				Data:   constants.VoteBanned,
			}
		case errors.Is(err, votes.ErrNotApproved):
			return api.HttpResponse{
				Status: http.StatusBadRequest,
				Data:   constants.NotApproved,
			}
		default:
			state.Logger.Error(err)
			return api.DefaultResponse(http.StatusInternalServerError)
		}
	}

	// The vote is committed at this point. Notification delivery is
	// best-effort and must never roll it back.
	var username pgtype.Text

	err = state.Pool.QueryRow(d.Context, "SELECT username FROM users WHERE user_id = $1", d.Auth.ID).Scan(&username)

	if err != nil {
		state.Logger.Error(err)
	}

	select {
	case notifications.VoteChannel <- types.VoteEvent{
		BotID:    botId,
		UserID:   d.Auth.ID,
		Username: username.String,
		Votes:    newTally,
	}:
	default:
		state.Logger.Error("vote notification channel is full, dropping event for bot ", botId)
	}

	return api.HttpResponse{
		Json: types.VoteResult{
			TotalVotes: newTally,
		},
	}
}
