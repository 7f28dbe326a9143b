package export

import (
	"context"
	"io"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Snapshotter captures a rendered report document as a raster image or a
// paginated PDF through a headless browser. The browser launches lazily on
// first use and is reused across captures; Close releases it.
type Snapshotter struct {
	mu      sync.Mutex
	browser *rod.Browser
}

// NewSnapshotter builds an idle Snapshotter; no browser starts until the
// first capture.
func NewSnapshotter() *Snapshotter { return &Snapshotter{} }

// PNG snapshots the document to a full-page raster image.
func (s *Snapshotter) PNG(ctx context.Context, html string) ([]byte, error) {
	page, err := s.page(ctx, html)
	if err != nil {
		return nil, err
	}
	defer func() { _ = page.Close() }()
	return page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
}

// PDF snapshots the document to a paginated PDF.
func (s *Snapshotter) PDF(ctx context.Context, html string) ([]byte, error) {
	page, err := s.page(ctx, html)
	if err != nil {
		return nil, err
	}
	defer func() { _ = page.Close() }()
	r, err := page.PDF(&proto.PagePrintToPDF{PrintBackground: true})
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// Close shuts the shared browser down. The Snapshotter is reusable after
// Close; the next capture relaunches.
func (s *Snapshotter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.browser == nil {
		return nil
	}
	err := s.browser.Close()
	s.browser = nil
	return err
}

func (s *Snapshotter) connect() (*rod.Browser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.browser != nil {
		return s.browser, nil
	}
	u, err := launcher.New().Headless(true).Launch()
	if err != nil {
		return nil, err
	}
	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		return nil, err
	}
	s.browser = b
	return b, nil
}

func (s *Snapshotter) page(ctx context.Context, html string) (*rod.Page, error) {
	b, err := s.connect()
	if err != nil {
		return nil, err
	}
	page, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, err
	}
	page = page.Context(ctx)
	if err := page.SetDocumentContent(html); err != nil {
		_ = page.Close()
		return nil, err
	}
	return page, nil
}
