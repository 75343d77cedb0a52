package folio

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

func dialPreview(t *testing.T, ctx context.Context, srv *httptest.Server, slug string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/preview/" + slug
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	return conn
}

func TestPreviewRotatesHoverImages(t *testing.T) {
	a := newTestApp(t)
	srv := httptest.NewServer(a.Echo)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn := dialPreview(t, ctx, srv, "ecommerce")
	defer conn.CloseNow()

	var first PreviewFrame
	if err := wsjson.Read(ctx, conn, &first); err != nil {
		t.Fatalf("read first frame: %v", err)
	}
	if first.Index != 0 || first.Total != 3 || first.Slug != "ecommerce" {
		t.Fatalf("first frame = %+v", first)
	}

	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		var f PreviewFrame
		if err := wsjson.Read(ctx, conn, &f); err != nil {
			t.Fatalf("read frame %d: %v", i+1, err)
		}
		if f.Index < 0 || f.Index >= f.Total {
			t.Fatalf("frame index %d out of range", f.Index)
		}
		seen[f.Index] = true
	}
	if !seen[1] && !seen[2] {
		t.Errorf("carousel never advanced: %v", seen)
	}
	conn.Close(websocket.StatusNormalClosure, "hover left")
}

func TestPreviewSingleImageExpires(t *testing.T) {
	cfg := testConfig(t)
	cfg.PreviewMaxDuration = 100 * time.Millisecond
	a := newTestAppWithConfig(t, cfg)
	srv := httptest.NewServer(a.Echo)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn := dialPreview(t, ctx, srv, "clock")
	defer conn.CloseNow()

	var f PreviewFrame
	if err := wsjson.Read(ctx, conn, &f); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if f.Total != 1 || f.Image == "" {
		t.Fatalf("frame = %+v, want the cover as the only frame", f)
	}

	// No further frames; the server closes once the preview expires.
	err := wsjson.Read(ctx, conn, &f)
	if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
		t.Errorf("read after expiry = %v, want a normal closure", err)
	}
}

func TestPreviewClosesOnShutdown(t *testing.T) {
	a := newTestApp(t)
	srv := httptest.NewServer(a.Echo)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn := dialPreview(t, ctx, srv, "mars-marine")
	defer conn.CloseNow()

	var f PreviewFrame
	if err := wsjson.Read(ctx, conn, &f); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	a.closeOnce.Do(func() { close(a.closing) })

	for {
		err := wsjson.Read(ctx, conn, &f)
		if err == nil {
			continue
		}
		if websocket.CloseStatus(err) != websocket.StatusGoingAway {
			t.Errorf("close = %v, want going away", err)
		}
		return
	}
}

func TestPreviewUnknownProject(t *testing.T) {
	a := newTestApp(t)
	srv := httptest.NewServer(a.Echo)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/preview/nope"
	_, resp, err := websocket.Dial(ctx, url, nil)
	if err == nil {
		t.Fatal("expected the handshake to fail")
	}
	if resp == nil || resp.StatusCode != 404 {
		t.Errorf("response = %v, want 404", resp)
	}
}
