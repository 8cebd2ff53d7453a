package mailer

import "embed"

const (
	FromName                  = "ToolHub"
	maxRetries                = 3
	AccidentReportTemplate    = "accident_report_confirmation.tmpl"
	AccidentEscalatedTemplate = "accident_report_escalated.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) (int, error)
}
