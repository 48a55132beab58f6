// Package contact submits the contact form to the hosted form processor.
// There is deliberately no retry and no state here: one request, one of
// three outcomes (sent, rejected with field errors, transport failure).
package contact

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/uddipan77/portfolio-tui/internal/encoding"
)

// ErrSend covers transport-level failures where no structured response was
// available.
var ErrSend = errors.New("failed to send message")

// HTTPDoer defines a common interface for HTTP clients.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Message is a single contact form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// FieldError is one entry of the form processor's errors array.
type FieldError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
	Code    string `json:"code"`
}

type errorResponse struct {
	Errors []FieldError `json:"errors"`
}

// ValidationError is returned when the form processor rejected the
// submission with structured field errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, fieldError := range e.Errors {
		messages = append(messages, fieldError.Message)
	}

	return strings.Join(messages, ", ")
}

// NewSender creates a sender pointed at the configured form endpoint.
func NewSender(httpClient HTTPDoer, endpoint string, subject string) Sender {
	return Sender{httpClient: httpClient, endpoint: endpoint, subject: subject}
}

type Sender struct {
	httpClient HTTPDoer
	endpoint   string
	subject    string
}

// Send posts the form-encoded message. A nil error means the processor
// accepted it (any 2xx). The honeypot field is always sent empty; anything
// filling it in is not using this client.
func (s Sender) Send(ctx context.Context, message Message) error {
	form := url.Values{}
	form.Set("name", message.Name)
	form.Set("email", message.Email)
	form.Set("message", message.Body)
	form.Set("_subject", s.subject)
	form.Set("_honey", "")

	req, errReq := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if errReq != nil {
		return errors.Join(errReq, ErrSend)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, errResp := s.httpClient.Do(req)
	if errResp != nil {
		return errors.Join(errResp, ErrSend)
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}(resp.Body)

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	return s.decodeFailure(resp.Body)
}

func (s Sender) decodeFailure(body io.Reader) error {
	decoded, errDecode := encoding.UnmarshalJSON[errorResponse](body)
	if errDecode != nil || len(decoded.Errors) == 0 {
		return ErrSend
	}

	return &ValidationError{Errors: decoded.Errors}
}
