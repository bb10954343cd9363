package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"log"

	"gopkg.in/gomail.v2"
)

// ContactMessage carries one validated contact-form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Sender relays contact notifications. Send reports success as a bool and
// never returns an error: a failed send degrades the response message, it
// must not fail the request.
type Sender interface {
	Send(msg ContactMessage) bool
	Configured() bool
}

// Client wraps an SMTP connection. A Client without credentials is
// permanently disabled and treats every send as "unavailable".
type Client struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func New(host string, port int, user, pass, to string) *Client {
	if user == "" || pass == "" {
		log.Printf("mailer: EMAIL_USER/EMAIL_PASS not set, contact mail disabled")
		return &Client{}
	}
	return &Client{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
		to:     to,
	}
}

// Probe checks SMTP connectivity once at startup. Failure disables the
// client and logs a warning; the service keeps serving requests either way.
func (c *Client) Probe() {
	if c.dialer == nil {
		return
	}
	conn, err := c.dialer.Dial()
	if err != nil {
		log.Printf("mailer: connectivity probe failed, contact mail disabled: %v", err)
		c.dialer = nil
		return
	}
	_ = conn.Close()
	log.Printf("mailer: SMTP transport ready host=%s", c.dialer.Host)
}

func (c *Client) Configured() bool {
	return c != nil && c.dialer != nil
}

func (c *Client) Send(msg ContactMessage) bool {
	if !c.Configured() {
		log.Printf("mailer: transport unavailable, dropping contact mail from=%s", msg.Email)
		return false
	}

	var html bytes.Buffer
	if err := contactTemplate.Execute(&html, msg); err != nil {
		log.Printf("mailer: template render failed: %v", err)
		return false
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", c.from, "Rakshak Morcha")
	m.SetHeader("To", c.to)
	m.SetHeader("Reply-To", msg.Email)
	m.SetHeader("Subject", "Contact Form: "+msg.Subject)
	m.SetBody("text/plain", plainBody(msg))
	m.AddAlternative("text/html", html.String())

	if err := c.dialer.DialAndSend(m); err != nil {
		log.Printf("mailer: send failed from=%s subject=%q: %v", msg.Email, msg.Subject, err)
		return false
	}

	log.Printf("mailer: sent from=%s subject=%q", msg.Email, msg.Subject)
	return true
}

func plainBody(msg ContactMessage) string {
	return fmt.Sprintf(
		"New Contact Form Submission\n\nName: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n",
		msg.Name, msg.Email, msg.Subject, msg.Message,
	)
}

var contactTemplate = template.Must(template.New("contact").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333; border-bottom: 2px solid #333; padding-bottom: 10px;">
    New Contact Form Submission
  </h2>
  <div style="background: #f9f9f9; padding: 20px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
  </div>
  <div style="background: #fff; padding: 20px; border-left: 4px solid #333; margin: 20px 0;">
    <h3>Message:</h3>
    <p style="line-height: 1.6;">{{.Message}}</p>
  </div>
</div>`))
