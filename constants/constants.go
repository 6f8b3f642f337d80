package constants

const (
	ResourceNotFound = "{\"message\":\"Whoops! We couldn't find this resource anywhere on the list!\",\"error\":true}"
	NotFoundPage     = "{\"message\":\"Whoops! This endpoint doesn't exist, check the path and try again!\",\"error\":true}"
	BadRequest       = "{\"message\":\"Whoops! That request doesn't look right to us!\",\"error\":true}"
	Forbidden        = "{\"message\":\"Whoops! You're not allowed to do this!\",\"error\":true}"
	Unauthorized     = "{\"message\":\"Whoops! You're not authorized to do this, did you forget an API token somewhere?\",\"error\":true}"
	InternalError    = "{\"message\":\"Whoops! Something went wrong on our end!\",\"error\":true}"
	MethodNotAllowed = "{\"message\":\"Whoops! That method is not allowed for this endpoint!\",\"error\":true}"
	BodyRequired     = "{\"message\":\"Whoops! A body is required for this endpoint!\",\"error\":true}"
	Success          = "{\"message\":\"Success!\",\"error\":false}"
	VoteBanned       = "{\"message\":\"You are banned from voting on the list right now!\",\"error\":true}"
	NotApproved      = "{\"message\":\"This bot is not approved and cannot be voted for yet!\",\"error\":true}"
	BackTick         = "`"
	DoubleBackTick   = "``"
)
