package vertexclient

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/vertexai/genai"
	"github.com/sony/gobreaker"
)

// Adapter is the text-completion oracle. Every call runs under its own
// timeout and through a circuit breaker, so one hung or failing field in the
// summary generator cannot drag down the calls for the other fields.
type Adapter struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
	log     *slog.Logger
}

func NewAdapter(ctx context.Context, log *slog.Logger, projectID, region, model string, timeout time.Duration) (*Adapter, error) {
	client, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, err
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "vertex",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("oracle circuit breaker state changed",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &Adapter{
		client:  client,
		model:   model,
		timeout: timeout,
		breaker: breaker,
		log:     log,
	}, nil
}

func (a *Adapter) Close() error {
	err := a.client.Close()
	if err != nil && a.log != nil {
		a.log.Error("vertex adapter close failed", "error", err)
	}
	return err
}

// GenerateText sends one prompt and returns the concatenated text of the
// response candidates.
func (a *Adapter) GenerateText(ctx context.Context, prompt string) (string, error) {
	if a.model == "" {
		return "", fmt.Errorf("vertex model is required")
	}

	out, err := a.breaker.Execute(func() (interface{}, error) {
		callCtx := ctx
		if a.timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, a.timeout)
			defer cancel()
		}

		model := a.client.GenerativeModel(a.model)
		resp, err := model.GenerateContent(callCtx, genai.Text(prompt))
		if err != nil {
			return "", err
		}
		return responseText(resp), nil
	})
	if err != nil {
		return "", fmt.Errorf("vertex generate: %w", err)
	}

	return out.(string), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var text string
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if p, ok := part.(genai.Text); ok {
				text += string(p)
			}
		}
	}
	return text
}
