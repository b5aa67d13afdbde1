package lookup

import "strings"

const literaryInstruction = "Prefer sophisticated, literary, or eloquent words that would be appropriate in formal or creative writing."

const outputContract = `Return your response as a JSON array of objects with these fields:
- word: the suggested word
- definition: concise definition (1-2 sentences)
- part_of_speech: one of "noun", "verb", "adjective", "adverb", "preposition", "conjunction", "interjection"
- frequency: number 1-10 (10=very common, 1=very rare)
- origin: language of origin (e.g., "Latin", "Greek", "French", "Germanic", "Arabic")
- etymology: brief etymology (1 sentence, how the word came to be)
- synonyms: array of 2-4 related words with similar meaning
- antonyms: array of 1-3 words with opposite meaning (or empty array if none)

Example format:
[
  {
    "word": "obviate",
    "definition": "To remove or prevent (a need or difficulty); make unnecessary.",
    "part_of_speech": "verb",
    "frequency": 3,
    "origin": "Latin",
    "etymology": "From Latin 'obviatus', meaning 'to meet or counter'.",
    "synonyms": ["preclude", "prevent", "avert", "forestall"],
    "antonyms": ["necessitate", "require"]
  }
]

Provide 5-10 words ranked by relevance.`

// BuildSystemPrompt constructs the reverse-dictionary instruction sent as the
// system message. The user's description travels separately as the user message.
func BuildSystemPrompt(literary bool) string {
	var sb strings.Builder
	sb.WriteString("You are a reverse dictionary assistant. Given a description or meaning, suggest words that match it.")
	if literary {
		sb.WriteString(" ")
		sb.WriteString(literaryInstruction)
	}
	sb.WriteString("\n\n")
	sb.WriteString(outputContract)
	return strings.TrimSpace(sb.String())
}
