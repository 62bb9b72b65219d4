package reminder

import (
	"context"
	"fmt"
	"os"
	"time"
)

const reminderQuery = `query OrderReminders($since: DateTime!) {
  orders(filter: {orderDateGte: $since}) {
    id
    customer {
      email
    }
  }
}`

// Job queries recent orders from the CRM GraphQL endpoint and appends one
// reminder line per order to the shared log file.
type Job struct {
	client  *Client
	logFile string
	window  time.Duration
	now     func() time.Time
}

func NewJob(cfg Config) *Job {
	cfg = cfg.withDefaults()
	return &Job{
		client:  NewClient(cfg.Endpoint, cfg.Retries),
		logFile: cfg.LogFile,
		window:  cfg.Window,
		now:     time.Now,
	}
}

// Run executes one reminder pass. Any failure is printed to stdout and
// swallowed: the job never raises past its boundary and does not retry the
// whole pass.
func (j *Job) Run(ctx context.Context) {
	if err := j.run(ctx); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Order reminders processed!")
}

func (j *Job) run(ctx context.Context) error {
	now := j.now()
	since := now.Add(-j.window)

	var result struct {
		Orders []struct {
			ID       string `json:"id"`
			Customer struct {
				Email string `json:"email"`
			} `json:"customer"`
		} `json:"orders"`
	}
	vars := map[string]interface{}{"since": since.Format(time.RFC3339)}
	if err := j.client.Query(ctx, reminderQuery, vars, &result); err != nil {
		return err
	}

	// O_APPEND keeps concurrent runs from corrupting prior lines.
	f, err := os.OpenFile(j.logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	stamp := now.Format("2006-01-02 15:04:05")
	for _, order := range result.Orders {
		line := fmt.Sprintf("%s - Order ID: %s, Email: %s\n", stamp, order.ID, order.Customer.Email)
		if _, err := f.WriteString(line); err != nil {
			return err
		}
	}
	return nil
}
