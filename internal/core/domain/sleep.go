package domain

import "regexp"

// SleepIntent is what a spoken phrase asks of the sleep gate.
type SleepIntent uint8

const (
	// IntentNone leaves the sleep state unchanged.
	IntentNone SleepIntent = iota
	// IntentSleep puts the assistant to sleep.
	IntentSleep
	// IntentWake wakes the assistant up.
	IntentWake
)

// Replies of the sleep gate.
const (
	WakeReply      = "Stonic is now awake."
	SleepingStatus = "Yes, Stonic is sleeping."
	AwakeStatus    = "No, Stonic is awake."
)

// SleepState is the on-disk layout of the sleep state file.
type SleepState struct {
	Sleeping bool `json:"sleeping"`
}

var (
	sleepPhraseRe = regexp.MustCompile(`(?i)\b(so jao|sone chalo|go to sleep|sleep now|stonic so jao|stonic go to sleep|sleep mode|sleep stonic|chup ho jao)\b`)
	wakePhraseRe  = regexp.MustCompile(`(?i)\b(uth jao|jaago|wake up|stonic uth jao|wake up stonic)\b`)
)

// ClassifySleepIntent matches text against the sleep and wake phrases.
// Sleep phrases take precedence.
func ClassifySleepIntent(text string) SleepIntent {
	switch {
	case sleepPhraseRe.MatchString(text):
		return IntentSleep
	case wakePhraseRe.MatchString(text):
		return IntentWake
	default:
		return IntentNone
	}
}

// SleepStatus returns the spoken status for a sleep state.
func SleepStatus(sleeping bool) string {
	if sleeping {
		return SleepingStatus
	}
	return AwakeStatus
}
