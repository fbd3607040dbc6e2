package chat

import "math/rand/v2"

// Picker returns an index in [0, n). It is the seam tests use to replace randomness.
type Picker func(n int) int

// RandomPicker picks uniformly.
func RandomPicker(n int) int {
	return rand.IntN(n)
}

// Responder produces the bot's reply to a user message.
type Responder interface {
	Reply(input string) string
}

var cannedResponses = []string{
	"Based on the legal framework in your jurisdiction, here's what you need to know: This matter typically falls " +
		"under civil law provisions. I recommend consulting with a local attorney for specific guidance.",
	"According to international legal standards, this situation requires careful consideration of local regulations. " +
		"The penalties can vary significantly depending on your location.",
	"This is an important legal question. The answer depends on several factors including your location, the specific " +
		"circumstances, and applicable local laws. Would you like me to provide more specific information if you share your country?",
	"Legal procedures for this matter typically involve several steps. First, you should gather all relevant documentation. " +
		"Second, understand your rights under local law. Third, consider seeking professional legal advice.",
}

// CannedResponder ignores the input and answers with one of a fixed list of sentences.
type CannedResponder struct {
	responses []string
	pick      Picker
}

func NewCannedResponder(pick Picker) *CannedResponder {
	if pick == nil {
		pick = RandomPicker
	}
	return &CannedResponder{responses: cannedResponses, pick: pick}
}

func (r *CannedResponder) Reply(string) string {
	return r.responses[r.pick(len(r.responses))]
}

func CannedResponses() []string {
	out := make([]string, len(cannedResponses))
	copy(out, cannedResponses)
	return out
}
