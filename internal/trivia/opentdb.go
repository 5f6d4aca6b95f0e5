package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/triviaz/internal/opentdb"
)

// subjectCategories maps the leading word of a subject to an Open Trivia DB
// category.
var subjectCategories = map[string]int{
	"mathematics": opentdb.CategoryMathematics,
	"science":     opentdb.CategoryScienceNature,
	"history":     opentdb.CategoryHistory,
	"geography":   opentdb.CategoryGeography,
	"english":     opentdb.CategoryBooks,
	"general":     opentdb.CategoryGeneralKnowledge,
}

// OpenTDBSource implements Source with the Open Trivia Database.
type OpenTDBSource struct {
	client     *opentdb.Client
	difficulty string
	shuffle    func(n int, swap func(i, j int))
}

// NewOpenTDBSource creates a source backed by client. difficulty may be
// empty for any difficulty.
func NewOpenTDBSource(client *opentdb.Client, difficulty string) *OpenTDBSource {
	return &OpenTDBSource{client: client, difficulty: difficulty, shuffle: rand.Shuffle}
}

func (s *OpenTDBSource) Name() string { return SourceOpenTDB }

func (s *OpenTDBSource) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	results, err := s.client.Fetch(ctx, opentdb.Query{
		Amount:     1,
		Category:   categoryFor(input.Subject),
		Difficulty: s.difficulty,
		Type:       "multiple",
	})
	if err != nil {
		return nil, fmt.Errorf("fetch from opentdb: %w", err)
	}
	if len(results) == 0 {
		return nil, errors.New("opentdb returned no questions")
	}

	raw := results[0]
	options := append([]string{raw.CorrectAnswer}, raw.IncorrectAnswers...)
	s.shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	correct := -1
	for i, o := range options {
		if o == raw.CorrectAnswer {
			correct = i
			break
		}
	}

	// Label by the category actually returned; a requested subject without
	// a mapped category would otherwise mislabel an any-category question.
	subject := strings.TrimSpace(raw.Category)
	if subject == "" {
		subject = input.Subject
	}

	return &Question{
		Text:         raw.Question,
		Options:      options,
		CorrectIndex: correct,
		Subject:      subject,
		Explanation:  fmt.Sprintf("The answer is %s.", raw.CorrectAnswer),
		Source:       SourceOpenTDB,
	}, nil
}

// categoryFor returns the category for subject, or 0 (any) when unknown.
func categoryFor(subject string) int {
	word, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(subject)), " ")
	return subjectCategories[word]
}
