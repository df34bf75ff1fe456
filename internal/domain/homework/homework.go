// internal/domain/homework/homework.go
package homework

import (
	"errors"
	"fmt"

	"homework_notification_bot/internal/domain/poll"
)

// Status is the review state the Practicum API reports for a homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps each recognized status to its user-facing text.
// Any status outside this table is a hard error: it signals an API
// contract change the bot does not understand.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

var (
	ErrMissingField  = errors.New("homework record is missing a required field")
	ErrUnknownStatus = errors.New("unknown homework status")
)

// ParseStatus extracts the name and status of a single homework record and
// builds the notification text. The record comes straight from the decoded
// API response, so its shape is checked here: it must be a JSON object with
// string "homework_name" and "status" fields, and the status must be one of
// the three recognized values.
func ParseStatus(record any) (string, error) {
	obj, ok := record.(map[string]any)
	if !ok {
		return "", poll.Errorf(poll.KindShape, "homework record is not an object (got %T)", record)
	}

	name, err := stringField(obj, "homework_name")
	if err != nil {
		return "", err
	}
	status, err := stringField(obj, "status")
	if err != nil {
		return "", err
	}

	verdict, ok := Verdicts[Status(status)]
	if !ok {
		return "", poll.NewError(poll.KindShape, fmt.Errorf("%w: %q", ErrUnknownStatus, status))
	}

	return fmt.Sprintf("Изменился статус проверки работы %q. %s", name, verdict), nil
}

func stringField(obj map[string]any, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", poll.NewError(poll.KindShape, fmt.Errorf("%w: %q", ErrMissingField, key))
	}
	s, ok := raw.(string)
	if !ok {
		return "", poll.Errorf(poll.KindShape, "homework field %q is not a string (got %T)", key, raw)
	}
	return s, nil
}
