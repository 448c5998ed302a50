// Package notify отвечает за best-effort уведомления о событиях бронирования.
// Отправка идёт в отдельной горутине, не держит блокировок и не влияет на
// результат операции: любая ошибка канала логируется и проглатывается.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/metrics"
)

// MailSender интерфейс почтового канала
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ChatSender интерфейс служебного чат-канала (персонал площадки)
type ChatSender interface {
	SendMessage(ctx context.Context, text string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier рассылает уведомления по настроенным каналам
type Notifier struct {
	mail    MailSender
	chat    ChatSender
	metrics *metrics.Metrics
	logger  Logger
	timeout time.Duration
	enabled bool
}

// NewNotifier создает новый notifier.
// metrics может быть nil, если сбор метрик выключен.
func NewNotifier(mail MailSender, chat ChatSender, m *metrics.Metrics, logger Logger, timeout time.Duration, enabled bool) *Notifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Notifier{
		mail:    mail,
		chat:    chat,
		metrics: m,
		logger:  logger,
		timeout: timeout,
		enabled: enabled,
	}
}

// VisitConfirmed отправляет подтверждение бронирования.
// Fire-and-forget: вызывающий не ждёт результата, транзакция бронирования
// к моменту вызова уже закоммичена.
func (n *Notifier) VisitConfirmed(visit *domain.Visit) {
	n.dispatch("confirmation", visit, confirmationSubject,
		fmt.Sprintf("Ваш визит подтверждён: %s в %s, %d чел.",
			visit.VisitDate.Format(domain.DateFormat), visit.StartTime, visit.PartySize),
		fmt.Sprintf("Новое бронирование #%d: %s %s, %s, %d чел.",
			visit.ID, visit.VisitDate.Format(domain.DateFormat), visit.StartTime, visit.VisitType, visit.PartySize))
}

// VisitCancelled отправляет уведомление об отмене
func (n *Notifier) VisitCancelled(visit *domain.Visit, reason string) {
	n.dispatch("cancellation", visit, cancellationSubject,
		fmt.Sprintf("Ваш визит %s в %s отменён. Причина: %s",
			visit.VisitDate.Format(domain.DateFormat), visit.StartTime, reason),
		fmt.Sprintf("Отмена бронирования #%d: %s %s. Причина: %s",
			visit.ID, visit.VisitDate.Format(domain.DateFormat), visit.StartTime, reason))
}

// PartySizeUpdated отправляет уведомление об изменении размера группы
func (n *Notifier) PartySizeUpdated(visit *domain.Visit, oldSize int) {
	n.dispatch("party_size_update", visit, updateSubject,
		fmt.Sprintf("Размер группы визита %s в %s изменён: %d → %d чел.",
			visit.VisitDate.Format(domain.DateFormat), visit.StartTime, oldSize, visit.PartySize),
		fmt.Sprintf("Бронирование #%d: размер группы %d → %d",
			visit.ID, oldSize, visit.PartySize))
}

// Reminder отправляет напоминание о визите. В отличие от остальных методов
// синхронно: напоминание и есть основной эффект операции, ошибка отдаётся
// вызывающему.
func (n *Notifier) Reminder(ctx context.Context, visit *domain.Visit) error {
	if !n.enabled {
		return nil
	}
	if visit.CustomerEmail == nil || *visit.CustomerEmail == "" {
		return fmt.Errorf("visit id=%d has no customer email", visit.ID)
	}

	body := fmt.Sprintf("Напоминаем о вашем визите: %s в %s, %d чел.",
		visit.VisitDate.Format(domain.DateFormat), visit.StartTime, visit.PartySize)

	if err := n.mail.Send(ctx, *visit.CustomerEmail, reminderSubject, body); err != nil {
		n.observeFailure("mail")
		return err
	}
	return nil
}

const (
	confirmationSubject = "Подтверждение бронирования"
	cancellationSubject = "Отмена бронирования"
	updateSubject       = "Изменение бронирования"
	reminderSubject     = "Напоминание о визите"
)

// dispatch отправляет письмо клиенту и сообщение персоналу в отдельной
// горутине с собственным контекстом и таймаутом
func (n *Notifier) dispatch(kind string, visit *domain.Visit, subject, mailBody, chatText string) {
	if !n.enabled {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		if visit.CustomerEmail != nil && *visit.CustomerEmail != "" {
			if err := n.mail.Send(ctx, *visit.CustomerEmail, subject, mailBody); err != nil {
				n.observeFailure("mail")
				n.logger.Error("notify: %s mail for visit id=%d failed: %v", kind, visit.ID, err)
			}
		}

		if err := n.chat.SendMessage(ctx, chatText); err != nil {
			n.observeFailure("telegram")
			n.logger.Error("notify: %s chat message for visit id=%d failed: %v", kind, visit.ID, err)
		}
	}()
}

func (n *Notifier) observeFailure(channel string) {
	if n.metrics != nil {
		n.metrics.NotifyFailuresTotal.WithLabelValues(channel).Inc()
	}
}
