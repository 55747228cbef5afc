package ports

// MailEnqueuer : fire-and-forget отправка писем.
// Ядро не ждет подтверждения доставки
type MailEnqueuer interface {
	Enqueue(recipients []string, subject string, body string)
}
