package mail

import (
	"log"

	"quillist/config"
	"quillist/internal/util"

	gomail "github.com/wneessen/go-mail"
)

// Mailer отправляет письма через SMTP.
// Enqueue ставит отправку в фон: хендлеры не ждут доставки,
// ошибки только логируются
type Mailer struct {
	client   *gomail.Client
	from     string
	fromName string
}

func NewMailer(cfg *config.MailConfig) (*Mailer, error) {
	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, util.LogError("ошибка создания SMTP клиента", err)
	}

	return &Mailer{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
	}, nil
}

func (m *Mailer) Enqueue(recipients []string, subject string, body string) {
	go func() {
		if err := m.send(recipients, subject, body); err != nil {
			log.Printf("ошибка отправки письма %q: %v", subject, err)
			return
		}
		log.Printf("письмо %q отправлено: %v", subject, recipients)
	}()
}

func (m *Mailer) send(recipients []string, subject string, body string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return err
	}
	if err := msg.To(recipients...); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	return m.client.DialAndSend(msg)
}
