package telegram

const sessionPrefix = "telegram_"

// Commands
const (
	CommandStart    = "/start"
	CommandHelp     = "/help"
	CommandReset    = "/reset"
	CommandLocation = "/location"
	CommandForget   = "/forget"
)

// Bot replies
const (
	MsgWelcome = "👋 Welcome to the *Snowboarding Assistant*!\n\n" +
		"Ask me about resorts, trips, gear or conditions. For example:\n" +
		"_\"What's the weather at Vail tomorrow?\"_\n" +
		"_\"Which resorts are closest to me?\"_\n\n" +
		"Share your location if you want distance-based recommendations."
	MsgHelp = "*How to use me:*\n\n" +
		"Just type a question.\n\n" +
		"/location - share your location for distance questions\n" +
		"/forget - stop using your location\n" +
		"/reset - start a new conversation"
	MsgReset            = "Conversation cleared. What would you like to plan next?"
	MsgAskLocation      = "Tap the button below to share your location. I only use it to rank resorts by distance."
	MsgLocationButton   = "📍 Share my location"
	MsgLocationSaved    = "Thanks! I'll use %s for distance questions. Send /forget to stop."
	MsgLocationInvalid  = "Sorry, that location doesn't look valid. Please try again."
	MsgLocationForgot   = "Okay, I won't use your location anymore."
	MsgNudgeLocation    = "If you share your location I can rank resorts by distance from you."
	MsgUnsupported      = "I can only read text messages and shared locations."
	MsgProcessingFailed = "Sorry, something went wrong while handling your message. Please try again."
)
