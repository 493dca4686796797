package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout bounds one submission round trip
const DefaultTimeout = 15 * time.Second

// fallbackRelayMessage is shown when the relay rejects without a message
const fallbackRelayMessage = "failed to send the message"

// RelayError is a non-2xx answer from the relay
type RelayError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *RelayError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("relay returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("relay returned status %d: %s (%s)", e.StatusCode, e.Message, strings.Join(e.Errors, "; "))
}

// Response is a successful relay answer
type Response struct {
	Message   string
	RequestID string
}

type relayResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
	Success bool     `json:"success"`
}

// Client posts submissions to <baseURL>/contact
// There is no automatic retry; callers resubmit on ErrConnection
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Submit sends s and classifies the outcome
// Transport failures and unreadable replies wrap ErrConnection; rejections are *RelayError
func (c *Client) Submit(ctx context.Context, s Submission) (*Response, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/contact", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	log := c.logger.With(zap.String("request_id", requestID))
	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn("relay request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer resp.Body.Close()

	var result relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Warn("relay response unreadable", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, fmt.Errorf("%w: decode response: %w", ErrConnection, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := result.Message
		if msg == "" {
			msg = fallbackRelayMessage
		}
		log.Info("relay rejected submission", zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return nil, &RelayError{StatusCode: resp.StatusCode, Message: msg, Errors: result.Errors}
	}

	log.Info("submission delivered")
	return &Response{Message: result.Message, RequestID: requestID}, nil
}
