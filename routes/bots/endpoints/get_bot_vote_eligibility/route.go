package get_bot_vote_eligibility

import (
	"errors"
	"net/http"
	"time"

	"litten/api"
	"litten/docs"
	"litten/state"
	"litten/types"
	"litten/votes"

	"github.com/go-chi/chi/v5"
)

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "GET",
		Path:        "/bots/{id}/votes",
		OpId:        "get_bot_vote_eligibility",
		Summary:     "Get Bot Vote Eligibility",
		Description: "Returns whether the authenticated user can vote for this bot right now. Unauthenticated callers always get can_vote set to false with a reason rather than an error.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				Description: "The bots ID",
				Required:    true,
				In:          "path",
				Schema:      docs.IdSchema,
			},
		},
		Resp:     types.VoteEligibility{},
		Tags:     []string{api.CurrentTag},
		AuthType: []types.TargetType{types.TargetTypeUser},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	botId := chi.URLParam(r, "id")

	bi, err := votes.GetBotInfo(d.Context, state.Pool, botId)

	if errors.Is(err, votes.ErrBotNotFound) {
		return api.DefaultResponse(http.StatusNotFound)
	}

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	if !d.Auth.Authorized {
		return api.HttpResponse{
			Json: types.VoteEligibility{
				CanVote:    false,
				Error:      "You must be logged in to vote",
				TotalVotes: bi.Votes,
			},
		}
	}

	if bi.Owner == d.Auth.ID {
		return api.HttpResponse{
			Json: types.VoteEligibility{
				CanVote:    false,
				Error:      "You cannot vote for your own bot",
				TotalVotes: bi.Votes,
			},
		}
	}

	if bi.Type != types.BotTypeApproved {
		return api.HttpResponse{
			Json: types.VoteEligibility{
				CanVote:    false,
				Error:      "This bot is not approved and cannot be voted for yet",
				TotalVotes: bi.Votes,
			},
		}
	}

	if bi.VoteBanned {
		return api.HttpResponse{
			Json: types.VoteEligibility{
				CanVote:    false,
				Error:      "This bot cannot be voted for right now",
				TotalVotes: bi.Votes,
			},
		}
	}

	uv, err := votes.CheckVote(d.Context, state.Pool, d.Auth.ID, bi.BotID, time.Now())

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	if uv.HasVoted {
		return api.HttpResponse{
			Json: types.VoteEligibility{
				CanVote:        false,
				Error:          "You have already voted for this bot recently",
				NextEligibleAt: uv.NextEligibleAt,
				TotalVotes:     bi.Votes,
			},
		}
	}

	return api.HttpResponse{
		Json: types.VoteEligibility{
			CanVote:    true,
			TotalVotes: bi.Votes,
		},
	}
}
