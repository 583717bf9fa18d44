package digest

// Inline styles throughout: email clients ignore <style> blocks.
const emailHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
</head>
<body style="margin:0;padding:0;background:#faf9f7;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,'Helvetica Neue',Arial,sans-serif;">
  <div style="max-width:640px;margin:0 auto;padding:30px 16px 50px;">
    <div style="text-align:center;border-bottom:2px solid #e5e0d8;padding-bottom:24px;margin-bottom:32px;">
      <p style="font-size:11px;letter-spacing:.12em;text-transform:uppercase;color:#9ca3af;margin:0 0 8px;">Daily Digest</p>
      <h1 style="font-size:26px;font-weight:700;color:#2e6e4e;margin:0;line-height:1.2;">Wikipedia Biographical Digest</h1>
      <p style="font-size:14px;color:#6b7280;margin:9px 0 0;">{{.DateDisplay}} &mdash; Four lives worth knowing about</p>
    </div>
{{- range .People}}
    <div style="background:#ffffff;border:1px solid #e5e0d8;border-radius:12px;padding:24px 26px 20px;margin-bottom:24px;">
      <p style="font-size:11px;font-weight:600;color:#9ca3af;text-transform:uppercase;letter-spacing:.09em;margin:0 0 7px;">{{.SourceLabel}}</p>
      <div style="margin-bottom:4px;">
        <span style="font-size:20px;font-weight:700;color:#1a1a1a;">{{.Name}}</span>
        <span style="font-size:13px;color:#6b7280;margin-left:8px;">{{.Years}}</span>
        <p style="font-size:14px;color:#555;font-style:italic;margin:6px 0 0;">{{.Tagline}}</p>
      </div>
      <p style="font-size:11px;font-weight:700;color:#2e6e4e;letter-spacing:.1em;text-transform:uppercase;margin:16px 0 0;">The Anecdote</p>
{{- range .Snippets}}
{{- if .Label}}
      <p style="font-size:11px;font-weight:700;color:#9ca3af;letter-spacing:.08em;text-transform:uppercase;margin:14px 0 3px;">{{.Label}}</p>
{{- end}}
      <p style="font-size:15px;line-height:1.78;color:#2d2d2d;margin:0 0 6px;">{{.Text}}</p>
{{- end}}
{{- if .Tags}}
      <div style="margin-top:13px;">
{{- range .Tags}}
        <span style="display:inline-block;background:#eef7f2;color:#2e6e4e;border-radius:5px;font-size:11px;font-weight:600;padding:3px 9px;margin:2px 3px 2px 0;letter-spacing:.04em;">{{.}}</span>
{{- end}}
      </div>
{{- end}}
      <a href="{{.URL}}" style="display:inline-block;margin-top:18px;font-size:14px;color:#2563eb;text-decoration:none;font-weight:500;">Read the full biography &rarr;</a>
    </div>
{{- end}}
{{- if .Obituaries}}
    <div style="text-align:center;border-bottom:2px solid #e5e0d8;border-top:2px solid #e5e0d8;padding:24px 0;margin:32px 0;">
      <h2 style="font-size:22px;font-weight:700;color:#8b5e3c;margin:0;line-height:1.2;">Obituary Digest</h2>
      <p style="font-size:13px;color:#6b7280;margin:8px 0 0;">Notable lives remembered this week</p>
    </div>
{{- range .Obituaries}}
    <div style="background:#ffffff;border:1px solid #e5ddd4;border-radius:12px;padding:24px 26px 20px;margin-bottom:24px;">
      <p style="font-size:11px;font-weight:600;color:#8b5e3c;text-transform:uppercase;letter-spacing:.09em;margin:0 0 7px;">{{.SourceLabel}}</p>
      <div style="margin-bottom:4px;">
        <span style="font-size:20px;font-weight:700;color:#1a1a1a;">{{.Name}}</span>
        <span style="font-size:13px;color:#6b7280;margin-left:8px;">{{.Years}}</span>
        <p style="font-size:14px;color:#555;font-style:italic;margin:6px 0 0;">{{.Tagline}}</p>
      </div>
      <p style="font-size:11px;font-weight:700;color:#8b5e3c;letter-spacing:.1em;text-transform:uppercase;margin:16px 0 12px;">The Anecdote</p>
{{- range .TeaserParas}}
      <p style="font-size:15px;line-height:1.78;color:#2d2d2d;margin:0 0 14px;">{{.}}</p>
{{- end}}
{{- if .Tags}}
      <div style="margin-top:13px;">
{{- range .Tags}}
        <span style="display:inline-block;background:#fdf2e9;color:#8b5e3c;border-radius:5px;font-size:11px;font-weight:600;padding:3px 9px;margin:2px 3px 2px 0;letter-spacing:.04em;">{{.}}</span>
{{- end}}
      </div>
{{- end}}
      <a href="{{.URL}}" style="display:inline-block;margin-top:18px;font-size:14px;color:#2563eb;text-decoration:none;font-weight:500;">Read the full obituary &rarr;</a>
    </div>
{{- end}}
{{- end}}
    <p style="text-align:center;font-size:12px;color:#9ca3af;margin-top:12px;border-top:1px solid #e5e0d8;padding-top:20px;">
      Generated automatically &bull; Sources: Wikipedia and obituary pages of record &bull; {{.DateDisplay}}
    </p>
  </div>
</body>
</html>`
