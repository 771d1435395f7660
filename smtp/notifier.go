// Package smtp emails finished reports using gomail.
package smtp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/marketcap"
	"gopkg.in/gomail.v2"
)

// Ensure Notifier implements marketcap.Notifier at compile time.
var _ marketcap.Notifier = (*Notifier)(nil)

// Sender delivers messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Notifier emails a report as an attachment.
type Notifier struct {
	config *Config
	sender Sender
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithSender replaces the SMTP dialer.
func WithSender(s Sender) Option {
	return func(n *Notifier) {
		n.sender = s
	}
}

// WithClock sets the time source used in the subject and body.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) {
		n.now = now
	}
}

// NewNotifier creates a Notifier. Without WithSender it dials the configured
// server, using implicit TLS on port 465.
func NewNotifier(cfg *Config, logger *slog.Logger, opts ...Option) *Notifier {
	n := &Notifier{
		config: cfg,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.sender == nil {
		n.sender = gomail.NewDialer(cfg.Host, int(cfg.Port), cfg.User, cfg.Pass)
	}
	return n
}

// Notify sends the report at path. It returns false without sending when
// credentials are missing, and false when delivery fails.
func (n *Notifier) Notify(ctx context.Context, path string, rowCount int) bool {
	if !n.config.Complete() {
		n.logger.Warn("SMTP credentials not configured, email not sent",
			"hint", "set smtp_user, smtp_pass and recipient in the config file or SMTP_USER, SMTP_PASS and RECIPIENT")
		return false
	}

	if err := ctx.Err(); err != nil {
		n.logger.Error("email not sent", "err", err)
		return false
	}

	msg := n.newMessage(path, rowCount)
	if err := n.sender.DialAndSend(msg); err != nil {
		n.logger.Error("email send failed",
			"host", n.config.Host,
			"port", n.config.Port,
			"err", err,
		)
		return false
	}

	n.logger.Info("email sent", "recipient", n.config.Recipient)
	return true
}

func (n *Notifier) newMessage(path string, rowCount int) *gomail.Message {
	now := n.now()

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.config.User, "Market Cap Scraper")
	m.SetHeader("To", n.config.Recipient)
	m.SetHeader("Subject", "Telecom Market Cap Report - "+now.Format("2006-01-02 15:04"))
	m.SetBody("text/plain", messageBody(filepath.Base(path), rowCount, now))

	if _, err := os.Stat(path); err == nil {
		m.Attach(path)
	} else {
		n.logger.Warn("report file missing, sending without attachment", "path", path)
	}
	return m
}

func messageBody(fileName string, rowCount int, now time.Time) string {
	return fmt.Sprintf(`Hello,

The telecommunications market cap scrape has finished.

Results:
- %d companies extracted
- File: %s
- Date: %s

The report is attached to this email.

---
This message was sent automatically by the market cap scraper.
`, rowCount, fileName, now.Format("02/01/2006 15:04"))
}
