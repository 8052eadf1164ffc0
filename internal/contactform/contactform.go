// Package contactform is the page's side of the contact relay contract:
// serialize the three fields as JSON, submit them, show whatever text the
// relay answers with and clear the form only when the relay accepted it.
package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	StatusSending = "Sending..."
	StatusFailed  = "Something went wrong. Please try again."
)

// Form is the contact form's state.
type Form struct {
	Name    string
	Email   string
	Message string
	Status  string
}

// Reset clears the input fields. Status is kept.
func (f *Form) Reset() {
	f.Name, f.Email, f.Message = "", "", ""
}

type payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submitter posts forms to a relay endpoint.
type Submitter struct {
	Endpoint string
	Client   *http.Client
	// OnStatus, when set, is called every time the form status changes.
	OnStatus func(string)
}

// NewSubmitter returns a Submitter with a bounded HTTP client.
func NewSubmitter(endpoint string) *Submitter {
	return &Submitter{Endpoint: endpoint, Client: &http.Client{Timeout: 30 * time.Second}}
}

// Submit sends f to the relay. The relay's response body becomes f.Status
// verbatim whatever the HTTP status; the fields are cleared on 2xx only.
// A transport failure sets the generic failure status and is returned.
func (s *Submitter) Submit(ctx context.Context, f *Form) error {
	s.setStatus(f, StatusSending)

	body, err := json.Marshal(payload{Name: f.Name, Email: f.Email, Message: f.Message})
	if err != nil {
		s.setStatus(f, StatusFailed)
		return fmt.Errorf("encoding form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		s.setStatus(f, StatusFailed)
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		s.setStatus(f, StatusFailed)
		return fmt.Errorf("posting to %s: %w", s.Endpoint, err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		s.setStatus(f, StatusFailed)
		return fmt.Errorf("reading response: %w", err)
	}

	s.setStatus(f, string(text))
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		f.Reset()
	}
	return nil
}

func (s *Submitter) setStatus(f *Form, status string) {
	f.Status = status
	if s.OnStatus != nil {
		s.OnStatus(status)
	}
}
