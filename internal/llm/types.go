package llm

// Message represents a single message in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StudyCard is a single question/answer pair generated from a publication.
type StudyCard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
