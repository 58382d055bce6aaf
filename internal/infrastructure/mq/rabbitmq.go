package mq

import (
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/rabbitmq/amqp091-go"
)

// Conn owns one AMQP connection and the channel used for publishing.
type Conn struct {
	conn    *amqp091.Connection
	Channel *amqp091.Channel
}

func SanitizeURL(raw string) (string, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.Trim(clean, "\"'")
	if !strings.HasSuffix(clean, "/") {
		clean += "/"
	}
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

// Dial connects to the broker and opens a channel.
func Dial(rawURL string) (*Conn, error) {
	cleanURL, err := SanitizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	conn, err := amqp091.Dial(cleanURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	slog.Info("rabbitmq: connected")
	return &Conn{conn: conn, Channel: ch}, nil
}

func (c *Conn) Close() {
	if c.Channel != nil {
		_ = c.Channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
