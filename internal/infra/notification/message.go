package notification

import (
	"bytes"
	"html/template"
	"net/url"
	"strings"

	"swiftauth/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	activationPath    = "/activate"
	passwordResetPath = "/auth/reset-password"
)

// message is a rendered email ready for any transport.
type message struct {
	To       string
	Subject  string
	Link     string
	TextBody string
	HTMLBody string
}

var htmlTemplates = map[service.NotificationKind]*template.Template{
	service.NotificationActivation: template.Must(template.New("activation").Parse(
		`<p>Welcome to SwiftChat.</p><p>Please <a href="{{.Link}}">activate your account</a>.</p>`,
	)),
	service.NotificationPasswordReset: template.Must(template.New("password_reset").Parse(
		`<p>A password reset was requested for your SwiftChat account.</p>` +
			`<p><a href="{{.Link}}">Choose a new password</a>. If this was not you, ignore this email.</p>`,
	)),
}

var subjects = map[service.NotificationKind]string{
	service.NotificationActivation:    "Activate your SwiftChat account",
	service.NotificationPasswordReset: "Reset your SwiftChat password",
}

// buildLink joins the frontend base URL with the page that consumes the secret.
func buildLink(frontendURL string, kind service.NotificationKind, secret string) (string, error) {
	var path, param string
	switch kind {
	case service.NotificationActivation:
		path, param = activationPath, "key"
	case service.NotificationPasswordReset:
		path, param = passwordResetPath, "token"
	default:
		return "", errors.Errorf("unknown notification kind: %s", kind)
	}

	return strings.TrimRight(frontendURL, "/") + path + "?" + url.Values{param: {secret}}.Encode(), nil
}

func renderMessage(frontendURL string, n service.Notification) (*message, error) {
	link, err := buildLink(frontendURL, n.Kind, n.Secret)
	if err != nil {
		return nil, err
	}

	var html bytes.Buffer
	if err := htmlTemplates[n.Kind].Execute(&html, struct{ Link string }{Link: link}); err != nil {
		return nil, errors.Wrap(err, "failed to render email body")
	}

	return &message{
		To:       n.Recipient,
		Subject:  subjects[n.Kind],
		Link:     link,
		TextBody: subjects[n.Kind] + ": " + link,
		HTMLBody: html.String(),
	}, nil
}
