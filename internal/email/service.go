package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"gymcore/internal/logger"
	"gymcore/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey       = "gymcore:emails"
	failedQueueKey = "gymcore:emails:failed"
	maxTries       = 3
	retryDelay     = 5 * time.Second
)

const (
	TypeWelcome        = "welcome"
	TypePaymentReceipt = "payment_receipt"
	TypeCancellation   = "cancellation"
	TypePlanChanged    = "plan_changed"
	TypePasswordReset  = "password_reset"
)

type EmailJob struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Config struct {
	From      string
	FromName  string
	SMTPHost  string
	SMTPPort  string
	SMTPUser  string
	SMTPPass  string
	RedisAddr string
}

// Service queues outgoing mail in Redis and delivers it over SMTP from a
// background worker started with Start.
type Service struct {
	redis    *redis.Client
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
	send     func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func New(cfg Config) *Service {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), cfg)
}

func NewWithClient(rdb *redis.Client, cfg Config) *Service {
	return &Service{
		redis:    rdb,
		from:     cfg.From,
		fromName: cfg.FromName,
		smtpHost: cfg.SMTPHost,
		smtpPort: cfg.SMTPPort,
		smtpUser: cfg.SMTPUser,
		smtpPass: cfg.SMTPPass,
		send:     smtp.SendMail,
	}
}

func (s *Service) enqueue(ctx context.Context, job EmailJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal email job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to queue %s email to %s: %v", job.Type, job.To, err)
		metrics.RecordEmail(job.Type, "queue_failed")
		return err
	}

	logger.Info("email queued", "type", job.Type, "to", job.To)
	return nil
}

func (s *Service) Send(ctx context.Context, emailType, to, name, subject, body string) error {
	return s.enqueue(ctx, EmailJob{
		Type:    emailType,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	})
}

// Start consumes the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("Email worker started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email worker stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	s.deliver(ctx, job)
	metrics.EmailQueueLength.Set(float64(s.QueueLength(ctx)))
}

func (s *Service) deliver(ctx context.Context, job EmailJob) {
	job.Tries++
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send %s email to %s (attempt %d): %v", job.Type, job.To, job.Tries, err)

		if job.Tries < maxTries {
			select {
			case <-ctx.Done():
			case <-time.After(retryDelay):
			}
			data, _ := json.Marshal(job)
			s.redis.LPush(context.WithoutCancel(ctx), queueKey, string(data))
			return
		}

		metrics.RecordEmail(job.Type, "failed")
		s.saveFailed(context.WithoutCancel(ctx), job, err)
		return
	}

	metrics.RecordEmail(job.Type, "success")
	logger.Info("email sent", "type", job.Type, "to", job.To, "attempt", job.Tries)
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return s.send(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(ctx context.Context, job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(ctx, failedQueueKey, string(data))
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	return length
}

func (s *Service) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendWelcome(ctx context.Context, to, name, gymName string) error {
	subject := "Welcome to GymCore - " + gymName
	body := fmt.Sprintf(`Hi %s,

%s is registered on GymCore.

Complete the first payment from the billing page to activate your gym.

- GymCore Team`, name, gymName)

	return s.Send(ctx, TypeWelcome, to, name, subject, body)
}

func (s *Service) SendPaymentReceipt(ctx context.Context, to, name, gymName, planType, amount string, endDate time.Time) error {
	subject := "Payment received - " + gymName
	body := fmt.Sprintf(`Hi %s,

We received your payment. %s is now active.

Plan: %s
Amount: $%s
Valid until: %s

- GymCore Team`, name, gymName, planType, amount, endDate.Format("Jan 2, 2006"))

	return s.Send(ctx, TypePaymentReceipt, to, name, subject, body)
}

func (s *Service) SendPlanChanged(ctx context.Context, to, name, gymName, oldPlan, newPlan string) error {
	subject := "Plan changed - " + gymName
	body := fmt.Sprintf(`Hi %s,

The plan of %s changed from %s to %s.

- GymCore Team`, name, gymName, oldPlan, newPlan)

	return s.Send(ctx, TypePlanChanged, to, name, subject, body)
}

func (s *Service) SendCancellation(ctx context.Context, to, name, gymName string, endDate time.Time) error {
	subject := "Subscription cancelled - " + gymName
	body := fmt.Sprintf(`Hi %s,

The subscription of %s was cancelled. Access stays open until %s.

- GymCore Team`, name, gymName, endDate.Format("Jan 2, 2006"))

	return s.Send(ctx, TypeCancellation, to, name, subject, body)
}

func (s *Service) SendPasswordReset(ctx context.Context, to, name, token string) error {
	subject := "Password reset"
	body := fmt.Sprintf(`Hi %s,

Use this token to reset your password within the next hour:

%s

If you did not request it, ignore this email.

- GymCore Team`, name, token)

	return s.Send(ctx, TypePasswordReset, to, name, subject, body)
}
