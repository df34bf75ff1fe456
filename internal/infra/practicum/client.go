// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"homework_notification_bot/internal/domain/poll"

	"github.com/sirupsen/logrus"
)

// ErrBadHTTPStatus reports a reachable endpoint answering with a non-200 code.
var ErrBadHTTPStatus = errors.New("review API response status is not 200")

// Client queries the Practicum homework-statuses API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	log        *logrus.Entry
}

// NewClient builds a Client with an explicit request timeout. The timeout is
// deliberate: its expiry is reported as a transport error like any other
// network failure.
func NewClient(endpoint, token string, timeout time.Duration, log *logrus.Entry) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
		log:        log,
	}
}

// Statuses requests homework updates that happened at or after fromDate
// (unix seconds). The body is decoded into a dynamic value so response-shape
// validation stays a separate step (see CheckResponse and CurrentDate).
func (c *Client) Statuses(ctx context.Context, fromDate int64) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, poll.Errorf(poll.KindUnknown, "building request for %s: %w", c.endpoint, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()

	c.log.WithField("from_date", fromDate).Debug("Requesting homework statuses")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).Errorf("Failed to reach endpoint %s", c.endpoint)
		return nil, poll.Errorf(poll.KindTransport, "requesting %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.WithField("status_code", resp.StatusCode).Errorf("Endpoint %s is unavailable", c.endpoint)
		return nil, poll.NewError(poll.KindProtocol,
			fmt.Errorf("%w: endpoint %s answered %d", ErrBadHTTPStatus, c.endpoint, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, poll.Errorf(poll.KindTransport, "reading response from %s: %w", c.endpoint, err)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, poll.Errorf(poll.KindShape, "decoding response from %s: %w", c.endpoint, err)
	}
	return payload, nil
}
