package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Greetings(t *testing.T) {
	for _, msg := range []string{"hi", "Hello", "HEY", "  hii  ", "hai"} {
		assert.Equal(t, VerdictGreet, Classify(msg), "message %q", msg)
	}
}

func TestClassify_GreetingMustBeWholeMessage(t *testing.T) {
	// A greeting followed by a real question goes to the model.
	assert.Equal(t, VerdictForward, Classify("hello, is my dog eligible to donate?"))
}

func TestClassify_OffTopicRedirects(t *testing.T) {
	for _, msg := range []string{
		"tell me a joke",
		"what do you think about politics?",
		"Tell me about yourself",
		"any career advice?",
	} {
		assert.Equal(t, VerdictRedirect, Classify(msg), "message %q", msg)
	}
}

func TestClassify_ClinicalQuestionsForward(t *testing.T) {
	for _, msg := range []string{
		"What blood group can a DEA 1.1+ dog receive?",
		"how long after surgery can my dog donate blood",
		"is a 56 day gap between donations enough?",
	} {
		assert.Equal(t, VerdictForward, Classify(msg), "message %q", msg)
	}
}
