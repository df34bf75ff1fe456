// internal/infra/practicum/response.go
package practicum

import (
	"errors"
	"fmt"

	"homework_notification_bot/internal/domain/poll"
)

var (
	ErrMissingHomeworks   = errors.New(`response has no "homeworks" field`)
	ErrMissingCurrentDate = errors.New(`response has no "current_date" field`)
)

// CheckResponse verifies the decoded API payload: it must be a JSON object
// whose "homeworks" field is a list. An empty list is valid — there is simply
// nothing to notify this cycle. The list is returned as-is, no copy.
func CheckResponse(payload any) ([]any, error) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, poll.Errorf(poll.KindShape, "response is not an object (got %T)", payload)
	}

	raw, ok := obj["homeworks"]
	if !ok {
		return nil, poll.NewError(poll.KindShape, ErrMissingHomeworks)
	}

	homeworks, ok := raw.([]any)
	if !ok {
		return nil, poll.Errorf(poll.KindShape, `"homeworks" is not a list (got %T)`, raw)
	}
	return homeworks, nil
}

// CurrentDate extracts the server-reported timestamp that becomes the next
// poll cursor. The cursor must never advance on a response that did not
// actually carry the field.
func CurrentDate(payload any) (int64, error) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return 0, poll.Errorf(poll.KindShape, "response is not an object (got %T)", payload)
	}

	raw, ok := obj["current_date"]
	if !ok {
		return 0, poll.NewError(poll.KindShape, ErrMissingCurrentDate)
	}

	// encoding/json decodes every JSON number into float64.
	ts, ok := raw.(float64)
	if !ok {
		return 0, poll.NewError(poll.KindShape,
			fmt.Errorf(`"current_date" is not a number (got %T)`, raw))
	}
	return int64(ts), nil
}
