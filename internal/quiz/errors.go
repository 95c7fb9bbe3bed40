package quiz

import (
	"errors"
	"fmt"

	"github.com/abhisek/sciquiz/internal/llm"
)

// UserMessage converts a fetch error into the single line shown to the
// player. Validation messages pass through verbatim; transport errors
// keep the HTTP status for diagnostics.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}

	var te *llm.ErrTransport
	if errors.As(err, &te) {
		if te.StatusCode != 0 {
			return fmt.Sprintf("Question service error (HTTP %d). Try again.", te.StatusCode)
		}
		return "Network error. Check your connection and try again."
	}

	var me *llm.ErrMalformed
	if errors.As(err, &me) {
		return "The question service sent an unreadable reply. Try again."
	}

	var mt *llm.ErrMaxTokensExceeded
	if errors.As(err, &mt) {
		return "The question service reply was cut short. Try again."
	}

	return err.Error()
}
