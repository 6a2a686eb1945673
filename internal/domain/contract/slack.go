package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// AuthTest verifies the bot token and returns the authenticated identity
	AuthTest() (*slack.AuthTestResponse, error)

	// GetConversationInfo resolves a channel ID to its metadata
	GetConversationInfo(input *slack.GetConversationInfoInput) (*slack.Channel, error)

	// PostMessage sends a message to a Slack channel
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
}
