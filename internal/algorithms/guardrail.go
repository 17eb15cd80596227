package algorithms

import (
	"regexp"
	"strings"
)

// Verdict is the guardrail decision for an incoming chat message.
type Verdict int

const (
	// VerdictForward sends the message on to the language model.
	VerdictForward Verdict = iota
	// VerdictGreet answers a bare greeting with the canned greeting.
	VerdictGreet
	// VerdictRedirect answers an off-topic message with the canned
	// redirect, without contacting the model.
	VerdictRedirect
)

// Canned assistant responses.
const (
	GreetingResponse = "Hello Adithya! I am your K9 Buddy AI clinical assistant. How can I help you and Jillu today?"

	RedirectResponse = "A dog is the only thing on earth that loves you more than he loves himself. Take a deep breath; we are here to help you navigate this for your companion. Please ask a question related to canine blood donation or Jillu's clinical status."

	FallbackResponse = "I apologize, but I'm unable to process that request. Please consult with MVC Vepery for assistance."

	ErrorResponse = "Error communicating with clinical assistant. Please try again or contact MVC Vepery directly."
)

// greetingPattern matches a message that is nothing but a greeting,
// after trimming and lowercasing.
var greetingPattern = regexp.MustCompile(`^(hi|hello|hey|hii|hai)$`)

// offTopicPhrases are substring-matched against the lowercased message.
var offTopicPhrases = []string{
	"politics",
	"sports",
	"entertainment",
	"joke",
	"story",
	"relationship advice",
	"career advice",
	"general knowledge",
	"tell me about yourself",
}

// Classify decides how to handle a chat message before it reaches the
// model. Greeting detection runs on the whole trimmed message;
// off-topic detection is a substring scan.
func Classify(message string) Verdict {
	normalized := strings.ToLower(strings.TrimSpace(message))

	if greetingPattern.MatchString(normalized) {
		return VerdictGreet
	}
	for _, phrase := range offTopicPhrases {
		if strings.Contains(normalized, phrase) {
			return VerdictRedirect
		}
	}
	return VerdictForward
}
