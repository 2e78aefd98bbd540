package server

import (
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Deliberately unstyled pages. The UI proper lives elsewhere; these routes
// exist so the session gate has something to guard.

var loginTmpl = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html>
<body>
  <h1>Project Dragon</h1>
  <form method="post" action="/api/auth/signin">
    <input name="username" placeholder="Username">
    <input name="password" type="password" placeholder="Password">
    <button type="submit">Sign in</button>
  </form>
  <form method="post" action="/api/auth/send-magic-link">
    <input name="email" placeholder="Email">
    <button type="submit">Send magic link</button>
  </form>
</body>
</html>`))

var homeTmpl = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html>
<body>
  <h1>Dragon List</h1>
  <ul>
  {{range .}}
    <li><a href="/dragon/{{.ID}}">{{.Name}}</a> — Type: {{.TypeName}}</li>
  {{else}}
    <li>No dragons found.</li>
  {{end}}
  </ul>
</body>
</html>`))

var detailTmpl = template.Must(template.New("detail").Parse(`<!DOCTYPE html>
<html>
<body>
  <h1>{{.Name}}</h1>
  <p><strong>Type:</strong> {{.TypeName}}</p>
  <p><strong>Created:</strong> {{.CreatedAt.Format "2006-01-02"}}</p>
  <a href="/home">Back</a>
</body>
</html>`))

func (s *Server) handleLoginPage(c echo.Context) error {
	return renderPage(c, loginTmpl, nil)
}

func (s *Server) handleHomePage(c echo.Context) error {
	dragons, err := s.dragons.List(c.Request().Context())
	if err != nil {
		c.Logger().Error("dragon API error:", err)
		return c.HTML(http.StatusBadGateway, "<p>Failed to fetch dragons.</p>")
	}
	return renderPage(c, homeTmpl, dragons)
}

func (s *Server) handleDragonPage(c echo.Context) error {
	d, err := s.dragons.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		c.Logger().Error("dragon API error:", err)
		return c.HTML(http.StatusBadGateway, "<p>Failed to fetch dragon.</p>")
	}
	return renderPage(c, detailTmpl, d)
}

func renderPage(c echo.Context, tmpl *template.Template, data interface{}) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return tmpl.Execute(c.Response(), data)
}
