// Package prompt holds every fixed piece of text the assistant sends to the
// model or shows to the user.
package prompt

// System prompt for the response generator.
const BaseSystem = `You are a helpful snowboarding assistant that helps users plan their season and trips.
You can provide advice about:
- Resort recommendations and planning
- Trip planning and logistics
- Gear recommendations and purchases
- Clothing and accessories advice
- General snowboarding questions

Users may provide:
- Lists of resorts they want to visit
- Planned trips they want to take
- Gear they're considering buying
- Clothing items they need
- Accessories they're interested in

Help them make informed decisions about their snowboarding season planning.
Focus on being practical and specific in your recommendations.`

// Classifier is the system prompt for the intent classifier. The reply grammar
// is exactly "NONE" or "SEARCH: <query>".
const Classifier = `You decide whether a snowboarding assistant needs a live web search to answer the user's latest message.

Search is needed for anything time-sensitive or that changes often: weather, snow reports, forecasts, lift or road status, current ticket and pass prices, opening dates, events, recent news, or products released recently.
Search is NOT needed for general technique, gear advice, trip planning principles, or distances to resorts.

Reply with exactly one line and nothing else:
NONE
or
SEARCH: <a short web search query>`

// SearchUnavailable replaces search content once the monthly quota is spent.
const SearchUnavailable = `Web search is temporarily unavailable because the monthly search limit has been reached. ` +
	`Answer from your general knowledge, and tell the user that live information such as current conditions or prices could not be checked.`

// SearchUnavailableNotice is prepended to the answer when search was wanted but the quota was spent.
const SearchUnavailableNotice = "_Live web search is unavailable right now (monthly limit reached), so this answer could not check current information._"

// NoSearchResults is the content of an empty or failed search.
const NoSearchResults = "No results found."

// Search context block. %s is the formatted results, the links follow.
const (
	SearchContextHeader = "Here are web search results relevant to the user's question:\n\n%s"
	SearchLinksHeader   = "\n\nSources retrieved (by index):\n"
	SearchInstruction   = "\n\nUse these results where they help. Do not write your own Sources, References, or links section; sources are added automatically."
)

// Location context appended to the system prompt.
const (
	LocationHeader      = "\n\nThe user has shared their location: %s."
	LocationResortsHead = "\nClosest resorts by straight-line distance:\n"
	LocationResortLine  = "%d. %s (%s) - %.1f miles\n"
	LocationNoResorts   = "\nNo resorts in the database matched this location."
	NoLocationNotice    = "\n\nThe user has not shared their location. Do not guess where they are."
	ShareLocationNudge  = " They seem to be asking about places near them, so suggest they share their location for distance-based recommendations."
)

// Time context appended to the system prompt: today, weekday, tomorrow, weekend start and end.
const TimeContext = "\n\nToday is %s (%s). Tomorrow is %s. The coming weekend is %s to %s. " +
	"Resolve relative dates such as \"tomorrow\" or \"this weekend\" against these dates."

// Messages shown to the user when the pipeline cannot produce an answer.
const (
	ApologyGeneric  = "Sorry, I ran into a problem while putting that answer together. Please try again in a moment."
	ApologyEmpty    = "Sorry, I didn't catch a question there. What would you like to know about your snowboarding season?"
	ApologyCanceled = "Sorry, that took too long and was cancelled. Please try again."
)

// Rendering of the sources footer.
const (
	SourcesHeader      = "\n\n**Sources:**\n"
	SourceLine         = "- [%s](%s)\n"
	HelpfulQueryFooter = "\n**Helpful search query:** [%s](%s)\n"
)

// LocationKeywords mark utterances that ask about places relative to the user.
var LocationKeywords = []string{
	"near me",
	"nearest",
	"closest",
	"how far",
	"nearby",
	"distance to",
	"close to me",
	"around me",
	"drive from here",
}
