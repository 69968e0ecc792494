package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-StaffScheduler/internal/domain"
)

// Client отправляет клиентам подтверждения записи.
// Без webhookURL письмо только пишется в лог.
type Client struct {
	from       string
	webhookURL string
	location   *time.Location
	httpClient *http.Client
	log        Logger
}

// NewClient создает клиент уведомлений
func NewClient(from, webhookURL string, timeout time.Duration, location *time.Location, log Logger) *Client {
	if location == nil {
		location = time.UTC
	}
	return &Client{
		from:       from,
		webhookURL: webhookURL,
		location:   location,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendAssignmentConfirmation отправляет подтверждение созданного назначения.
// Назначение без email клиента пропускается.
func (c *Client) SendAssignmentConfirmation(ctx context.Context, assignment *domain.Assignment, employee *domain.Employee) error {
	if strings.TrimSpace(assignment.ClientEmail) == "" {
		c.log.Info("Notifier: assignment id=%s has no client email, skipping confirmation", assignment.ID)
		return nil
	}

	msg := c.buildConfirmation(assignment, employee)

	c.log.Info("Notifier: confirmation to=%s subject=%q assignment=%s\n%s", msg.To, msg.Subject, msg.AssignmentID, msg.Body)

	if c.webhookURL == "" {
		return nil
	}

	return c.post(ctx, msg)
}

func (c *Client) buildConfirmation(assignment *domain.Assignment, employee *domain.Employee) *Confirmation {
	start := assignment.StartTime.In(c.location)
	end := assignment.EndTime.In(c.location)

	name := assignment.ClientName
	if name == "" {
		name = "client"
	}

	title := assignment.Title
	if title == "" {
		title = "Appointment"
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Hello %s,\n\n", name)
	fmt.Fprintf(&body, "Your appointment %q with %s is confirmed.\n", title, employee.Name)
	fmt.Fprintf(&body, "Date: %s\n", start.Format(domain.DateFormat))
	fmt.Fprintf(&body, "Time: %s - %s (%s)\n", start.Format(domain.TimeFormat), end.Format(domain.TimeFormat), c.location)

	return &Confirmation{
		From:         c.from,
		To:           assignment.ClientEmail,
		Subject:      fmt.Sprintf("Appointment confirmed: %s", start.Format("2006-01-02 15:04")),
		Body:         body.String(),
		AssignmentID: assignment.ID,
		EmployeeName: employee.Name,
		StartTime:    start,
		EndTime:      end,
	}
}

func (c *Client) post(ctx context.Context, msg *Confirmation) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to encode confirmation: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrDeliveryFailed, resp.StatusCode, string(body))
	}

	return nil
}
