package mailer

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSubscriptionEmail(t *testing.T) {
	t.Run("Composes Both Bodies", func(t *testing.T) {
		message, err := ComposeSubscriptionEmail("Ada", "ada@example.com", "107.89", "hello@carepass.io")
		require.NoError(t, err)

		assert.Equal(t, constvars.EmailSubscriptionSubject, message.Subject)
		assert.Equal(t, "ada@example.com", message.Recipient)
		assert.Equal(t, "hello@carepass.io", message.Sender)

		assert.Contains(t, message.HTMLBody, "Ada")
		assert.Contains(t, message.TextBody, "Ada")
		assert.Contains(t, message.HTMLBody, "$107.89")
		assert.Contains(t, message.TextBody, "$107.89")

		year := fmt.Sprintf("%d", time.Now().Year())
		assert.Contains(t, message.HTMLBody, year)
		assert.Contains(t, message.TextBody, year)
	})

	t.Run("Plain Text Carries No Markup", func(t *testing.T) {
		message, err := ComposeSubscriptionEmail("Ada", "ada@example.com", "119.88", "hello@carepass.io")
		require.NoError(t, err)

		assert.False(t, strings.Contains(message.TextBody, "<"), "text body should be markup free")
		assert.True(t, strings.HasPrefix(message.HTMLBody, "<html>"))
	})

	t.Run("Missing Recipient Email", func(t *testing.T) {
		_, err := ComposeSubscriptionEmail("Ada", "", "119.88", "hello@carepass.io")
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Missing Sender Email", func(t *testing.T) {
		_, err := ComposeSubscriptionEmail("Ada", "ada@example.com", "119.88", "")
		assert.Error(t, err)
	})
}
