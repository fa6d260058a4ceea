package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/momentum-api/external/ollama"
	"github.com/bitmark-inc/momentum-api/schema"
	"github.com/bitmark-inc/momentum-api/utils"
)

const (
	promptMessageID      = "coach.prompt"
	NoDataMessageID      = "coach.no_data"
	UnavailableMessageID = "coach.unavailable"
)

var ErrNoFitnessData = fmt.Errorf("no fitness data")

var log = logrus.WithField("prefix", "coach")

// BuildPrompt renders the coaching prompt for a window of records. The
// records keep their estimated flags so the model can tell them apart.
func BuildPrompt(records []schema.DailyRecord, question string) (string, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}

	return utils.Localize(promptMessageID, map[string]interface{}{
		"Days":     len(records),
		"Records":  string(data),
		"Question": question,
	})
}

type Coach struct {
	llm ollama.LLM
}

func New(llm ollama.LLM) *Coach {
	return &Coach{llm: llm}
}

// Ask answers a question about the given window of records
func (c *Coach) Ask(ctx context.Context, records []schema.DailyRecord, question string) (string, error) {
	if len(records) == 0 {
		return "", ErrNoFitnessData
	}

	prompt, err := BuildPrompt(records, question)
	if err != nil {
		return "", err
	}

	reply, err := c.llm.Generate(ctx, prompt)
	if err != nil {
		log.WithError(err).Error("coach reply generation failed")
		return "", err
	}

	return reply, nil
}
