package mail

import "fmt"

// Тексты писем аккаунтных флоу

func WelcomeMessage() (string, string) {
	subject := "Welcome to Quillist"
	body := `
		<h1>Welcome to Quillist</h1>
		<p>Thank you for signing up!</p>
		<p>We are excited to have you on board.</p>
	`
	return subject, body
}

func VerificationMessage(firstName string, link string) (string, string) {
	subject := "Verify your Quillist account"
	body := fmt.Sprintf(`
		<h1>Welcome to Quillist</h1>
		<p>Thank you for signing up, %s!</p>
		<p>Please click <a href="%s">this</a> link to verify your account.</p>
	`, firstName, link)
	return subject, body
}

func PasswordResetMessage(link string) (string, string) {
	subject := "Reset your Quillist account password"
	body := fmt.Sprintf(`
		<h1>Reset your Quillist account password!</h1>
		<p>Please click <a href="%s">this</a> link to reset your account password.</p>
	`, link)
	return subject, body
}
