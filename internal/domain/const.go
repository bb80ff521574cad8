package domain

type contextKey string

const (
	RequesterIdCtxKey contextKey = "sk-requesterId"
	RequestIdCtxKey   contextKey = "sk-requestId"
)

const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

const (
	LinkStatusLinked        = "linked"
	LinkStatusAlreadyLinked = "already_linked"
)

// Event types published on the signal channel.
const (
	EventLinked   = "linked"
	EventUnlinked = "unlinked"
)

var Levels = []string{"high", "intermediate", "low"}

var Statuses = []string{"to-do", "doing", "done"}

var Genders = []string{"male", "female"}

var Cities = []string{
	// United Kingdom
	"london", "manchester", "birmingham", "glasgow", "edinburgh",
	// United States
	"new_york", "los_angeles", "chicago", "houston", "miami",
	// Europe
	"paris", "berlin", "madrid", "rome", "amsterdam", "vienna", "copenhagen", "stockholm",
	// Asia
	"tokyo", "seoul", "beijing", "shanghai", "hong_kong", "singapore", "bangkok", "mumbai", "delhi", "jakarta",
}

var ResourceTypes = []string{
	"time",
	"physical ability",
	"mental ability",
	"technology",
	"human resources",
	"financial resources",
}
