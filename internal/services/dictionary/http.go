package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
)

// HTTPConfig configures a remote word oracle
type HTTPConfig struct {
	// URL of an endpoint accepting POST {"word": "..."} and answering
	// {"valid": bool, "word": "..."}
	URL string

	// Timeout bounds a single request
	Timeout time.Duration

	// Attempts is the total number of tries for transient failures
	Attempts uint

	// Delay is the initial backoff between attempts
	Delay time.Duration
}

// DefaultHTTPConfig returns sensible defaults for a remote oracle
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{
		Timeout:  2 * time.Second,
		Attempts: 3,
		Delay:    100 * time.Millisecond,
	}
}

// ErrMalformedResponse is returned when the oracle answers without a verdict
var ErrMalformedResponse = errors.New("malformed dictionary response")

type validateRequest struct {
	Word string `json:"word"`
}

type validateResponse struct {
	Valid *bool  `json:"valid"`
	Word  string `json:"word"`
	Error string `json:"error,omitempty"`
}

// statusError is a non-2xx answer from the oracle
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("dictionary returned status %d", e.code)
}

// HTTPOracle checks words against a remote validation endpoint
type HTTPOracle struct {
	cfg    HTTPConfig
	client *http.Client
	logger *slog.Logger
}

// NewHTTPOracle creates an oracle for the given endpoint
func NewHTTPOracle(cfg HTTPConfig, logger *slog.Logger) *HTTPOracle {
	return &HTTPOracle{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Lookup asks the remote endpoint about word, retrying transport failures
// and server errors with exponential backoff
func (o *HTTPOracle) Lookup(ctx context.Context, word string) (bool, error) {
	word = Normalize(word)

	return retry.DoWithData(
		func() (bool, error) {
			return o.lookupOnce(ctx, word)
		},
		retry.Context(ctx),
		retry.Attempts(max(o.cfg.Attempts, 1)),
		retry.Delay(o.cfg.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			o.logger.Warn("dictionary lookup failed, retrying",
				slog.String("word", word),
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
	)
}

func (o *HTTPOracle) lookupOnce(ctx context.Context, word string) (bool, error) {
	body, err := json.Marshal(validateRequest{Word: word})
	if err != nil {
		return false, retry.Unrecoverable(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return false, retry.Unrecoverable(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return false, &statusError{code: resp.StatusCode}
	}
	if resp.StatusCode != http.StatusOK {
		return false, retry.Unrecoverable(&statusError{code: resp.StatusCode})
	}

	var out validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, retry.Unrecoverable(fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}
	if out.Valid == nil {
		return false, retry.Unrecoverable(ErrMalformedResponse)
	}
	return *out.Valid, nil
}

var _ Oracle = (*HTTPOracle)(nil)
