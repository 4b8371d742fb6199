package tutor

const (
	MsgMenuTitle = "Would you like to learn... (click option below)"

	MsgRefused = "Oops! I don't really know you so I cannot talk to you. \n\nSorry about that!"

	MsgHelp = "Say hi or type /start to start chatting"

	MsgFallback = "Sorry, I'm a young bot so I've trouble understanding you. \nWould you like to do the following?"

	MsgHopeThatHelps = "Hope that helps :) \nIs there anything else you would like to do?"

	MsgRepeatAfterMe = "Please repeat after me and send your recorded voice over the chat to check if you've pronounce it correctly"

	MsgCorrect      = "That's correct! Good job!"
	MsgAnythingElse = "Is there anything else you would like to do?"

	MsgNothingToCheck = "I have nothing to check yet. Pick an option below and we'll practice together :)"

	MsgTurnFailed  = "Oops! Something went wrong on my side. Please try that again."
	MsgVoiceFailed = "Oops! I couldn't process your voice message. Please try recording it again."
)

// greetingTokens start a fresh session when no mode is active.
var greetingTokens = map[string]struct{}{
	"hi":             {},
	"hello":          {},
	"yo":             {},
	"good morning":   {},
	"good afternoon": {},
	"good evening":   {},
}
