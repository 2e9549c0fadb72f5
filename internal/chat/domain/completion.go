package domain

// Completion thresholds. The message counts are history lengths measured
// after the turn's two appends; they are tuned values and must not change
// without changing observable behavior.
const (
	hesitantCompleteMinMessages = 3
	partialCompleteMinMessages  = 5
)

// IsComplete decides whether the qualification conversation is finished.
// True if any of:
//  1. all five fields are known;
//  2. the user is hesitant and the conversation has at least 3 messages;
//  3. there is something to follow up on (hesitation, or a known name or
//     email) and the conversation has at least 5 messages.
func IsComplete(fields CollectedFields, hesitant bool, historyLen int) bool {
	if fields.AllFieldsKnown() {
		return true
	}
	if hesitant && historyLen >= hesitantCompleteMinMessages {
		return true
	}
	canFollowUp := hesitant || fields.Name != "" || fields.Email != ""
	return canFollowUp && historyLen >= partialCompleteMinMessages
}
