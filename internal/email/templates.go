package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateManager renders the builtin transactional templates.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	for name, body := range builtinTemplates {
		tpl, err := template.New(name).Parse(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}

	return tm, nil
}

// Render executes the named template with the given data.
func (tm *TemplateManager) Render(name string, data interface{}) (string, error) {
	tpl, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}

	return buf.String(), nil
}

var builtinTemplates = map[string]string{
	TemplateContactNotification: `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2d5016;">Nuevo mensaje de contacto</h2>
  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px;">
    <p><strong>Nombre:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Teléfono:</strong> {{if .Phone}}{{.Phone}}{{else}}No proporcionado{{end}}</p>
    <p><strong>Mensaje:</strong></p>
    <p style="background: white; padding: 15px; border-radius: 4px;">{{.Message}}</p>
  </div>
  <p style="color: #666; font-size: 12px; margin-top: 20px;">
    Este mensaje fue enviado desde el formulario de contacto de D&amp;D Landscaping Pro
  </p>
</div>`,

	TemplateQuoteNotification: `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2d5016;">Nueva solicitud de cotización</h2>
  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px;">
    <p><strong>Nombre:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Teléfono:</strong> {{.Phone}}</p>
    <p><strong>Dirección:</strong> {{if .Address}}{{.Address}}{{else}}No proporcionada{{end}}</p>
    <p><strong>Tipo de servicio:</strong> {{.ServiceType}}</p>
    <p><strong>Presupuesto estimado:</strong> {{if .Budget}}{{.Budget}}{{else}}No especificado{{end}}</p>
    <p><strong>Descripción del proyecto:</strong></p>
    <p style="background: white; padding: 15px; border-radius: 4px;">{{.Description}}</p>
  </div>
  <p style="color: #666; font-size: 12px; margin-top: 20px;">
    Solicitud recibida el {{.ReceivedAt}}
  </p>
</div>`,

	TemplateQuoteConfirmation: `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2d5016;">Gracias por su solicitud</h2>
  <p>Estimado/a {{.Name}},</p>
  <p>Hemos recibido su solicitud de cotización. Nuestro equipo la revisará y se pondrá en contacto con usted a la brevedad.</p>
  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Resumen de su solicitud:</strong></p>
    <p>Tipo de servicio: {{.ServiceType}}</p>
    <p>Descripción: {{.Description}}</p>
  </div>
  <p>Si tiene alguna pregunta, no dude en contactarnos.</p>
  <p style="margin-top: 30px;">
    Atentamente,<br>
    <strong>{{.CompanyName}}</strong>
  </p>
</div>`,
}
