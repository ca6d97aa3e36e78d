package provider

import (
	"context"
	"time"

	"priofeed/pkg/domain"
)

// Mail is the messaging provider client
type Mail struct {
	client
}

// NewMail creates a mail client
func NewMail(baseURL, token string, timeout time.Duration) *Mail {
	return &Mail{client: newClient(baseURL, token, timeout)}
}

// FetchMessages retrieves inbox messages. The endpoint may return either
// {"messages": [...]} or a bare array.
func (m *Mail) FetchMessages(ctx context.Context) ([]domain.RawMessage, error) {
	body, err := m.get(ctx, "/messages/inbox")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.RawMessage](body, "messages"), nil
}
