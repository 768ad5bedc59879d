package domain

// Flow marks which multi-step conversation is waiting for the user's next
// message. At most one flow is pending per user; the table lives in memory
// and resets to idle on restart.
type Flow string

const (
	FlowIdle                   Flow = "idle"
	FlowAwaitingHashtagCreate  Flow = "awaiting_hashtag_create"
	FlowAwaitingHashtagDelete  Flow = "awaiting_hashtag_delete"
	FlowAwaitingCategoryImport Flow = "awaiting_category_import"
	FlowAwaitingLanguage       Flow = "awaiting_language"
)
