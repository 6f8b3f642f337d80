// Fan-out of fire-and-forget events. Delivery failures are logged and never
// affect the state that produced the event.
package notifications

import (
	"strconv"

	"litten/state"
	"litten/types"
	"litten/webhooks"

	"github.com/bwmarrin/discordgo"
)

// VoteChannel receives one event per accepted vote
var VoteChannel = make(chan types.VoteEvent, 64)

// Setup starts the consumer goroutine. Call once at startup.
func Setup() {
	go func() {
		for ev := range VoteChannel {
			voteLog(ev)

			err := webhooks.Send(types.WebhookPost{
				BotID:  ev.BotID,
				UserID: ev.UserID,
				Votes:  ev.Votes,
			})

			if err != nil {
				state.Logger.Error("failed to deliver vote webhook: ", err)
			}
		}
	}()
}

func voteLog(ev types.VoteEvent) {
	frontend := state.Config.Sites.Frontend.Parse()

	_, err := state.Discord.ChannelMessageSendComplex(state.Config.Channels.VoteLogs, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				URL:         frontend + "/bots/" + ev.BotID,
				Title:       "🎉 Vote Count Updated!",
				Description: ":heart: " + ev.Username + " has voted for <@" + ev.BotID + ">",
				Color:       0x8A6BFD,
				Fields: []*discordgo.MessageEmbedField{
					{
						Name:   "Vote Count:",
						Value:  strconv.Itoa(ev.Votes),
						Inline: true,
					},
					{
						Name:   "User ID:",
						Value:  ev.UserID,
						Inline: true,
					},
					{
						Name:   "Vote Page",
						Value:  "[Vote for this bot](" + frontend + "/bots/" + ev.BotID + "/vote)",
						Inline: true,
					},
				},
			},
		},
	})

	if err != nil {
		state.Logger.Error("failed to send vote log: ", err)
	}
}
