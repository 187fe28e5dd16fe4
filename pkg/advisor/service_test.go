package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceImpl_AskQuestion(t *testing.T) {
	t.Run("should prepend the finance-only instruction to the question", func(t *testing.T) {
		// given
		client := &StubClient{Response: "Diversify your portfolio."}
		service := NewService(client)

		// when
		answer, err := service.AskQuestion(context.Background(), "How should I invest ₹5000?")

		// then
		require.NoError(t, err)
		assert.Equal(t, "Diversify your portfolio.", answer)
		require.Len(t, client.Prompts, 1)
		assert.Contains(t, client.Prompts[0], "Only answer questions related to finance")
		assert.Contains(t, client.Prompts[0], "User: How should I invest ₹5000?")
	})

	t.Run("should reject empty and whitespace-only questions", func(t *testing.T) {
		client := &StubClient{}
		service := NewService(client)

		for _, question := range []string{"", "   ", "\n\t"} {
			_, err := service.AskQuestion(context.Background(), question)
			assert.ErrorIs(t, err, ErrValidation)
		}

		// the client is never reached
		assert.Empty(t, client.Prompts)
	})

	t.Run("should propagate client failures", func(t *testing.T) {
		service := NewService(&StubClient{Err: errors.New("quota exceeded")})

		_, err := service.AskQuestion(context.Background(), "What is an index fund?")

		assert.Error(t, err)
	})
}
