package folio

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/eringen/folio/widget"
)

// PreviewFrame is one message of the card preview stream.
type PreviewFrame struct {
	Slug  string `json:"slug"`
	Index int    `json:"index"`
	Total int    `json:"total"`
	Image string `json:"image"`
}

// handlePreview streams a project's hover images while the card is hovered.
// The client opens the socket on hover-enter and closes it on hover-exit;
// the rotation timer lives exactly as long as the connection.
func (a *App) handlePreview(c echo.Context) error {
	project, ok := a.Content.Catalog.BySlug(c.Param("slug"))
	if !ok {
		return echo.ErrNotFound
	}
	frames := project.HoverImages
	if len(frames) == 0 {
		frames = []string{project.CoverImage}
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		c.Logger().Warnf("preview %s: accept: %v", project.Slug, err)
		return nil
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithTimeout(c.Request().Context(), a.Config.PreviewMaxDuration)
	defer cancel()
	// CloseRead cancels ctx when the client closes the socket.
	ctx = conn.CloseRead(ctx)

	send := func(i int) error {
		return wsjson.Write(ctx, conn, PreviewFrame{
			Slug:  project.Slug,
			Index: i,
			Total: len(frames),
			Image: frames[i],
		})
	}
	if err := send(0); err != nil {
		return nil
	}

	carousel := widget.NewCarousel(len(frames), a.Config.PreviewInterval)
	defer carousel.Leave()

	ticks := make(chan int, 1)
	carousel.Enter(ctx, func(i int) {
		// Keep only the latest frame if the writer falls behind.
		select {
		case ticks <- i:
		default:
			select {
			case <-ticks:
			default:
			}
			select {
			case ticks <- i:
			default:
			}
		}
	})

	for {
		select {
		case <-a.closing:
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return nil
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				conn.Close(websocket.StatusNormalClosure, "preview expired")
			}
			return nil
		case i := <-ticks:
			if err := send(i); err != nil {
				return nil
			}
		}
	}
}
