package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// GenerateStudyCards asks the model for question/answer pairs testing
// understanding of a publication. The model is instructed to return a bare
// JSON array; code fences and surrounding prose are stripped before parsing.
func (c *Client) GenerateStudyCards(ctx context.Context, title, body string, count int) ([]StudyCard, error) {
	if count <= 0 {
		count = 5
	}

	prompt := strings.Join([]string{
		fmt.Sprintf("Create %d question-and-answer pairs that test understanding of the publication below. Only use the article content itself.", count),
		`Return ONLY a JSON array like: [{"question":"...","answer":"..."}].`,
		"Do NOT include markdown/code fences or any extra text.",
		"",
		fmt.Sprintf("Title: %s", title),
		"",
		"Body:",
		body,
	}, "\n")

	raw, err := c.ChatWithMessages(ctx, []Message{{Role: "user", Content: prompt}})
	if err != nil {
		return nil, err
	}

	cards, err := parseStudyCards(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse study cards: %w", err)
	}
	return normalizeCards(cards, count), nil
}

// parseStudyCards decodes model output into study cards, tolerating code
// fences and extra prose around the JSON array.
func parseStudyCards(raw string) ([]StudyCard, error) {
	var cards []StudyCard
	if err := json.Unmarshal([]byte(raw), &cards); err == nil {
		return cards, nil
	}

	arr, err := extractFirstJSONArray(raw)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(arr), &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// extractFirstJSONArray returns the first balanced top-level JSON array in s,
// after stripping markdown code fences.
func extractFirstJSONArray(s string) (string, error) {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	start := strings.IndexByte(s, '[')
	if start < 0 {
		return "", fmt.Errorf("no JSON array start '[' found")
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("no matching ']' for JSON array")
}

// normalizeCards trims fields, drops incomplete entries and caps the result.
func normalizeCards(cards []StudyCard, count int) []StudyCard {
	if count < 1 {
		count = 1
	}
	cleaned := make([]StudyCard, 0, len(cards))
	for _, card := range cards {
		q := strings.TrimSpace(card.Question)
		a := strings.TrimSpace(card.Answer)
		if q == "" || a == "" {
			continue
		}
		cleaned = append(cleaned, StudyCard{Question: q, Answer: a})
	}
	if len(cleaned) > count {
		cleaned = cleaned[:count]
	}
	return cleaned
}
