package relay

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/crtvaryan/portfolio/internal/store"
)

type fakeMailer struct {
	sent []Mail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, m Mail) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}

type fakeRecorder struct {
	saved     []store.Message
	delivered map[string]bool
}

func (f *fakeRecorder) SaveMessage(_ context.Context, m store.Message) (store.Message, error) {
	m.ID = "msg-1"
	f.saved = append(f.saved, m)
	return m, nil
}

func (f *fakeRecorder) MarkDelivered(_ context.Context, id string, delivered bool) error {
	if f.delivered == nil {
		f.delivered = make(map[string]bool)
	}
	f.delivered[id] = delivered
	return nil
}

func newTestRouter(rl *Relay) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rl.Register(r)
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestContact_Success(t *testing.T) {
	m := &fakeMailer{}
	rec := &fakeRecorder{}
	r := newTestRouter(New(m, rec))

	w := post(r, `{"name":"A","email":"a@b.com","message":"hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if w.Body.String() != TextSent {
		t.Errorf("body: got %q", w.Body.String())
	}
	if len(m.sent) != 1 {
		t.Fatalf("mails sent: got %d", len(m.sent))
	}
	if m.sent[0].Subject != "New Portfolio Message from A" {
		t.Errorf("subject: got %q", m.sent[0].Subject)
	}
	if m.sent[0].Body != "You have a new message from a@b.com:\n\nhi" {
		t.Errorf("mail body: got %q", m.sent[0].Body)
	}
	if len(rec.saved) != 1 || !rec.delivered["msg-1"] {
		t.Errorf("recording: saved=%d delivered=%v", len(rec.saved), rec.delivered)
	}
}

func TestContact_FormPost(t *testing.T) {
	m := &fakeMailer{}
	r := newTestRouter(New(m, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader("name=A&email=a%40b.com&message=hi"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != TextSent {
		t.Fatalf("form post: got %d %q", w.Code, w.Body.String())
	}
	if len(m.sent) != 1 || m.sent[0].ReplyTo != "a@b.com" {
		t.Errorf("unexpected mail: %+v", m.sent)
	}
}

func TestContact_MissingFields(t *testing.T) {
	m := &fakeMailer{}
	r := newTestRouter(New(m, nil))

	for _, body := range []string{
		`{"name":"A","email":"a@b.com","message":""}`,
		`{"name":"A","email":"a@b.com"}`,
		`{"name":"  ","email":"a@b.com","message":"hi"}`,
		`not json`,
	} {
		w := post(r, body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status got %d, want 400", body, w.Code)
		}
		if w.Body.String() != TextMissingField {
			t.Errorf("%s: body got %q", body, w.Body.String())
		}
	}
	if len(m.sent) != 0 {
		t.Errorf("mail sent for invalid submissions: %d", len(m.sent))
	}
}

func TestContact_DeliveryFailure(t *testing.T) {
	rec := &fakeRecorder{}
	r := newTestRouter(New(&fakeMailer{err: errors.New("smtp down")}, rec))

	w := post(r, `{"name":"A","email":"a@b.com","message":"hi"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", w.Code)
	}
	if w.Body.String() != TextFailed {
		t.Errorf("body: got %q", w.Body.String())
	}
	if delivered, ok := rec.delivered["msg-1"]; !ok || delivered {
		t.Errorf("message should be recorded as undelivered: %v", rec.delivered)
	}
}

func TestStatusRoute(t *testing.T) {
	r := newTestRouter(New(&fakeMailer{}, nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))
	if w.Code != http.StatusOK || w.Body.String() != TextRunning {
		t.Errorf("GET /api: got %d %q", w.Code, w.Body.String())
	}
}

func TestSMTPMailer_ComposesHeaders(t *testing.T) {
	var gotFrom string
	var gotTo []string
	var gotMsg string
	mailer := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: "587", User: "owner@example.com", Password: "pw"})
	mailer.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		if addr != "smtp.example.com:587" {
			t.Errorf("addr: got %q", addr)
		}
		gotFrom, gotTo, gotMsg = from, to, string(msg)
		return nil
	}

	err := mailer.Send(context.Background(), Compose(Request{Name: "Eve\r\nBcc: x@y.z", Email: "eve@b.com", Message: "hello"}))
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if gotFrom != "owner@example.com" || len(gotTo) != 1 || gotTo[0] != "owner@example.com" {
		t.Errorf("envelope: from=%q to=%v", gotFrom, gotTo)
	}
	if !strings.Contains(gotMsg, "Reply-To: eve@b.com\r\n") {
		t.Errorf("missing Reply-To header:\n%s", gotMsg)
	}
	if strings.Contains(gotMsg, "\r\nBcc:") {
		t.Errorf("header injection not stripped:\n%s", gotMsg)
	}
}

func TestSMTPMailer_NotConfigured(t *testing.T) {
	err := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com"}).Send(context.Background(), Mail{})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("got %v, want ErrNotConfigured", err)
	}
}
