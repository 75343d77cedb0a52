package folio

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// Dashboard is the admin view model.
type Dashboard struct {
	Messages []Message
	Views    []ProjectViews
	Unread   int
	Titles   map[string]string // slug -> project title
	Notice   string
}

func (a *App) adminPage(c echo.Context) Page {
	p := a.newPage(c, "", "")
	p.Meta.Title = p.T("admin.title") + " | " + a.Config.Name
	return p
}

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(a.adminPage(c), false))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

// checkPassword compares pass with the configured hash, or with the plain
// password when no hash is set.
func (a *App) checkPassword(pass string) bool {
	if a.Config.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(a.Config.AdminPasswordHash), []byte(pass)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	if a.checkPassword(c.FormValue("password")) {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	return RenderStatus(c, http.StatusUnauthorized, a.Views.AdminLogin(a.adminPage(c), true))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminMarkRead(c echo.Context) error {
	if err := a.Store.MarkMessageRead(c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return err
	}
	return a.renderAdminDashboard(c, "read")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if err := a.Store.DeleteMessage(c.Param("id")); err != nil {
		return err
	}
	return a.renderAdminDashboard(c, "deleted")
}

func (a *App) renderAdminDashboard(c echo.Context, notice string) error {
	messages, err := a.Store.ListMessages()
	if err != nil {
		return err
	}
	views, err := a.Store.ListViews()
	if err != nil {
		return err
	}
	unread, err := a.Store.UnreadCount()
	if err != nil {
		return err
	}
	titles := make(map[string]string, a.Content.Catalog.Len())
	p := a.adminPage(c)
	for _, pr := range a.Content.Catalog.All() {
		titles[pr.Slug] = pr.TitleIn(p.Lang)
	}
	return Render(c, a.Views.AdminDashboard(p, Dashboard{
		Messages: messages,
		Views:    views,
		Unread:   unread,
		Titles:   titles,
		Notice:   notice,
	}))
}
