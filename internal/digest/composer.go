// Package digest builds and delivers the daily summary of open tasks.
package digest

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/tarefasapp/tarefas/internal/models"
)

const digestTemplate = `<h2 style="font-family:Montserrat,Arial,sans-serif;color:#1b2b48;">Daily summary of open tasks</h2>
<table style="border-collapse:collapse;width:98%;margin-bottom:18px;font-family:Inter,Arial,sans-serif;">
  <thead>
    <tr style="background:#f0f4fa;">
      <th style="padding:9px 12px;border:1px solid #e4e9f1;">Name</th>
      <th style="padding:9px 12px;border:1px solid #e4e9f1;">Priority</th>
      <th style="padding:9px 12px;border:1px solid #e4e9f1;">Deadline</th>
    </tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr>
      <td style="padding:8px 12px;border:1px solid #e4e9f1;">{{.Name}}</td>
      <td style="padding:8px 12px;border:1px solid #e4e9f1;">{{.Priority}}</td>
      <td style="padding:8px 12px;border:1px solid #e4e9f1;">{{.Deadline}}</td>
    </tr>
{{- else}}
    <tr><td colspan="3" style="text-align:center;padding:18px;color:#7b879b;">There are no open tasks.</td></tr>
{{- end}}
  </tbody>
</table>
<a href="{{.AppURL}}" target="_blank"
  style="display:inline-block;padding:12px 32px;background:#2b6be3;color:#fff;border-radius:8px;font-weight:bold;text-decoration:none;font-family:Montserrat,sans-serif;letter-spacing:.03em;margin-top:10px;">
  Open application
</a>
<br/><br/>
<div style="font-size:13px;color:#8f99ae;">This is an automatic email sent by TarefasApp.</div>
`

// Composer renders the digest email body.
//
// When escape is false task fields are written verbatim, which lets task
// names inject markup into the email.
type Composer struct {
	tmpl   *template.Template
	appURL string
	escape bool
}

type digestRow struct {
	Name     any
	Priority any
	Deadline any
}

type digestView struct {
	Rows   []digestRow
	AppURL string
}

func NewComposer(appURL string, escape bool) (*Composer, error) {
	tmpl, err := template.New("digest").Parse(digestTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse digest template: %w", err)
	}
	return &Composer{
		tmpl:   tmpl,
		appURL: appURL,
		escape: escape,
	}, nil
}

// Compose renders tasks in the given order.
func (c *Composer) Compose(tasks []models.Task) (string, error) {
	view := digestView{
		Rows:   make([]digestRow, 0, len(tasks)),
		AppURL: c.appURL,
	}
	for _, task := range tasks {
		view.Rows = append(view.Rows, c.row(task))
	}

	var buf bytes.Buffer
	err := c.tmpl.Execute(&buf, view)
	if err != nil {
		return "", fmt.Errorf("failed to render digest: %w", err)
	}
	return buf.String(), nil
}

func (c *Composer) row(task models.Task) digestRow {
	if c.escape {
		return digestRow{
			Name:     task.Name,
			Priority: task.Priority,
			Deadline: task.Deadline,
		}
	}
	return digestRow{
		Name:     template.HTML(task.Name),
		Priority: task.Priority,
		Deadline: template.HTML(task.Deadline),
	}
}
