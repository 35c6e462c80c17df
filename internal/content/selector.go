package content

import (
	"github.com/mashaer-ai/mashaer/internal/model"
)

// Candidate is the text chosen for one article, tagged with the fallback
// tier that produced it. Ephemeral; never persisted on its own.
type Candidate struct {
	Text    string
	Source  model.ContentSource
	Quality int
}

// strategy is one tier of the fallback cascade. Adding a tier is a data
// change here, not new control flow.
type strategy struct {
	source  model.ContentSource
	primary bool
	extract func(model.Article) string
}

// Selector applies the fallback cascade over an article's fields and returns
// the first candidate that clears the quality threshold. This is what lets
// partially-paywalled articles still be analyzed from their title and
// description instead of being discarded.
type Selector struct {
	scorer     *Scorer
	strategies []strategy
}

// NewSelector builds the default cascade: body, then title+description, then
// title alone.
func NewSelector(scorer *Scorer) *Selector {
	return &Selector{
		scorer: scorer,
		strategies: []strategy{
			{
				source:  model.SourceBody,
				primary: true,
				extract: func(a model.Article) string {
					return StripHTML(a.Body)
				},
			},
			{
				source:  model.SourceTitleDescription,
				primary: false,
				extract: func(a model.Article) string {
					if a.Title == "" || a.Description == "" {
						return ""
					}
					return a.Title + ". " + a.Description
				},
			},
			{
				source:  model.SourceTitleOnly,
				primary: false,
				extract: func(a model.Article) string {
					return a.Title
				},
			},
		},
	}
}

// Select short-circuits at the first tier whose text scores valid. When no
// tier clears its threshold the candidate is empty with SourceNone.
func (s *Selector) Select(article model.Article) Candidate {
	for _, st := range s.strategies {
		text := st.extract(article)
		if text == "" {
			continue
		}

		assessment := s.scorer.Score(text, st.primary)
		if assessment.Valid {
			return Candidate{
				Text:    text,
				Source:  st.source,
				Quality: assessment.Score,
			}
		}
	}

	return Candidate{Source: model.SourceNone}
}
