package notify

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("missing address returns error", func(t *testing.T) {
		_, err := New("", "noreply@example.com")
		require.Error(t, err)
	})

	t.Run("missing sender returns error", func(t *testing.T) {
		_, err := New("localhost:25", "")
		require.Error(t, err)
	})
}

func TestNotify(t *testing.T) {
	ctx := context.Background()

	t.Run("sends one message to the recipient", func(t *testing.T) {
		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte

		mailer, err := New("mail.example.com:587", "noreply@example.com",
			withSendFunc(func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
				gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
				return nil
			}))
		require.NoError(t, err)

		require.NoError(t, mailer.Notify(ctx, "user@example.com"))

		assert.Equal(t, "mail.example.com:587", gotAddr)
		assert.Equal(t, "noreply@example.com", gotFrom)
		assert.Equal(t, []string{"user@example.com"}, gotTo)
		assert.Contains(t, string(gotMsg), "Subject: "+subject)
		assert.Contains(t, string(gotMsg), "To: user@example.com")
		assert.Contains(t, string(gotMsg), "Dear User,")
		assert.Contains(t, string(gotMsg), body)
	})

	t.Run("empty recipient is rejected before sending", func(t *testing.T) {
		sent := false
		mailer, err := New("localhost:25", "noreply@example.com",
			withSendFunc(func(string, smtp.Auth, string, []string, []byte) error {
				sent = true
				return nil
			}))
		require.NoError(t, err)

		require.Error(t, mailer.Notify(ctx, ""))
		assert.False(t, sent)
	})

	t.Run("send failure is wrapped", func(t *testing.T) {
		mailer, err := New("localhost:25", "noreply@example.com",
			withSendFunc(func(string, smtp.Auth, string, []string, []byte) error {
				return errors.New("connection refused")
			}))
		require.NoError(t, err)

		err = mailer.Notify(ctx, "user@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "send absence notice")
	})

	t.Run("canceled context is not sent", func(t *testing.T) {
		sent := false
		mailer, err := New("localhost:25", "noreply@example.com",
			withSendFunc(func(string, smtp.Auth, string, []string, []byte) error {
				sent = true
				return nil
			}))
		require.NoError(t, err)

		canceled, cancel := context.WithCancel(ctx)
		cancel()
		require.Error(t, mailer.Notify(canceled, "user@example.com"))
		assert.False(t, sent)
	})
}
