// Package relay is the contact endpoint: it validates a submission, mails
// it to the site owner and answers with a plain-text status the page shows
// verbatim.
package relay

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/crtvaryan/portfolio/internal/store"
)

const (
	TextRunning      = "Backend server is running!"
	TextMissingField = "Please fill out all fields."
	TextSent         = "Message sent successfully!"
	TextFailed       = "Something went wrong. Please try again later."
)

// Request is a submission: JSON from the page script, or a plain form post
// when the script is not running.
type Request struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

func (r Request) complete() bool {
	return strings.TrimSpace(r.Name) != "" &&
		strings.TrimSpace(r.Email) != "" &&
		strings.TrimSpace(r.Message) != ""
}

// Recorder persists submissions. store.DB satisfies it.
type Recorder interface {
	SaveMessage(ctx context.Context, m store.Message) (store.Message, error)
	MarkDelivered(ctx context.Context, id string, delivered bool) error
}

// Relay wires a Mailer and an optional Recorder into gin handlers.
type Relay struct {
	mailer   Mailer
	recorder Recorder
}

// New returns a relay. recorder may be nil.
func New(mailer Mailer, recorder Recorder) *Relay {
	return &Relay{mailer: mailer, recorder: recorder}
}

// Register mounts the relay under /api.
func (rl *Relay) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.GET("", rl.Status)
	api.POST("/contact", rl.Contact)
}

// Status is the liveness text.
func (rl *Relay) Status(c *gin.Context) {
	c.String(http.StatusOK, TextRunning)
}

// Contact handles a form submission.
func (rl *Relay) Contact(c *gin.Context) {
	var req Request
	if err := c.ShouldBind(&req); err != nil || !req.complete() {
		c.String(http.StatusBadRequest, TextMissingField)
		return
	}
	ctx := c.Request.Context()

	id := rl.record(ctx, req)

	err := rl.mailer.Send(ctx, Compose(req))
	if id != "" {
		if merr := rl.recorder.MarkDelivered(ctx, id, err == nil); merr != nil {
			log.Printf("Error updating message %s: %v", id, merr)
		}
	}
	if err != nil {
		log.Printf("Error sending email: %v", err)
		c.String(http.StatusInternalServerError, TextFailed)
		return
	}

	log.Printf("Email sent for contact from %s", req.Name)
	c.String(http.StatusOK, TextSent)
}

// record stores the submission and returns its id, or "" when there is no
// recorder or storing failed.
func (rl *Relay) record(ctx context.Context, req Request) string {
	if rl.recorder == nil {
		return ""
	}
	m, err := rl.recorder.SaveMessage(ctx, store.Message{Name: req.Name, Email: req.Email, Body: req.Message})
	if err != nil {
		log.Printf("Error recording message: %v", err)
		return ""
	}
	return m.ID
}
