package routes

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kaelif/QuickLink/internal/config"
)

const docsIndexHTML = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <style>
    :root {
      color-scheme: light;
      --bg: #f4f6f7;
      --text: #16222b;
      --muted: #5a6b75;
      --accent: #c14b2a;
      --border: #d7dde1;
      --code-bg: #101a21;
      --code-text: #dce6ed;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      font-family: -apple-system, "Segoe UI", sans-serif;
      color: var(--text);
      background: var(--bg);
    }
    main { max-width: 860px; margin: 0 auto; padding: 40px 20px 64px; }
    h1 { margin: 0 0 4px; }
    p.tagline { margin: 0 0 28px; color: var(--muted); }
    section {
      background: #fff;
      border: 1px solid var(--border);
      border-radius: 12px;
      padding: 20px 24px;
      margin-bottom: 16px;
    }
    section h2 { margin: 0 0 12px; font-size: 1.1rem; }
    table { width: 100%; border-collapse: collapse; }
    td { padding: 6px 8px; border-top: 1px solid var(--border); vertical-align: top; }
    td.method { width: 5.5rem; font-weight: 600; color: var(--accent); font-family: monospace; }
    td.path { width: 18rem; font-family: monospace; }
    td.note { color: var(--muted); }
    code {
      background: var(--code-bg);
      color: var(--code-text);
      padding: 1px 6px;
      border-radius: 4px;
      font-size: 0.85rem;
    }
    footer { color: var(--muted); font-size: 0.85rem; margin-top: 24px; }
  </style>
</head>
<body>
  <main>
    <h1>{{ .Title }}</h1>
    <p class="tagline">Local API reference. All routes below <code>/api/v1</code> require the bearer token from <code>POST /api/auth/device</code>.</p>
    {{ range .Sections }}
    <section>
      <h2>{{ .Name }}</h2>
      <table>
        {{ range .Endpoints }}
        <tr>
          <td class="method">{{ .Method }}</td>
          <td class="path">{{ .Path }}</td>
          <td class="note">{{ .Note }}</td>
        </tr>
        {{ end }}
      </table>
    </section>
    {{ end }}
    <footer>Rendered {{ .RenderedAt }}.</footer>
  </main>
</body>
</html>`

type docsEndpoint struct {
	Method string
	Path   string
	Note   string
}

type docsSection struct {
	Name      string
	Endpoints []docsEndpoint
}

var docsSections = []docsSection{
	{
		Name: "Session",
		Endpoints: []docsEndpoint{
			{"POST", "/api/auth/device", "Mint or renew the device token; body may carry an existing device_id."},
		},
	},
	{
		Name: "Deck",
		Endpoints: []docsEndpoint{
			{"GET", "/api/v1/deck?lat=&lon=", "Ordered candidate deck; coordinates are optional and enable distance sorting."},
			{"POST", "/api/v1/deck/swipe", "Record a like or pass on a card."},
		},
	},
	{
		Name: "Matches & messages",
		Endpoints: []docsEndpoint{
			{"GET", "/api/v1/matches", "All matches with the latest message of each thread."},
			{"DELETE", "/api/v1/matches/:id", "Unmatch and delete the thread."},
			{"POST", "/api/v1/matches/:id/block", "Block a climber; also unmatches."},
			{"GET", "/api/v1/matches/:id/messages", "Full thread, oldest first."},
			{"POST", "/api/v1/matches/:id/messages", "Send a message (max 500 characters)."},
		},
	},
	{
		Name: "Filter & profile",
		Endpoints: []docsEndpoint{
			{"GET", "/api/v1/filter", "Current match filter."},
			{"PUT", "/api/v1/filter", "Replace the filter; response carries the normalized form."},
			{"GET", "/api/v1/profile", "Local profile."},
			{"PUT", "/api/v1/profile", "Replace the local profile."},
			{"POST", "/api/v1/profile/sync", "Push the profile to the remote source, when configured."},
		},
	},
	{
		Name: "Events & testing",
		Endpoints: []docsEndpoint{
			{"GET", "/api/v1/ws?token=", "WebSocket event stream: match_added, message_sent, match_removed, reset."},
			{"POST", "/api/v1/reset", "Wipe matches, threads, and swipe history. Testing mode only."},
		},
	},
}

func registerDocsRoutes(app fiber.Router, cfg *config.Config) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	indexTemplate, err := template.New("docs-index").Parse(docsIndexHTML)
	if err != nil {
		return fmt.Errorf("parse docs template: %w", err)
	}

	indexHandler := func(c *fiber.Ctx) error {
		var buf bytes.Buffer
		err := indexTemplate.Execute(&buf, fiber.Map{
			"Title":      "QuickLink API",
			"Sections":   docsSections,
			"RenderedAt": time.Now().UTC().Format(time.RFC1123),
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("failed to render docs")
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		c.Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'")
		return c.Send(buf.Bytes())
	}

	app.Get("/docs", indexHandler)
	app.Get("/docs/", indexHandler)
	return nil
}
