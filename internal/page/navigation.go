package page

import (
	"fmt"

	"github.com/bnema/pagecore/internal/application/port"
	"github.com/bnema/pagecore/internal/domain/entity"
	"github.com/bnema/pagecore/internal/logging"
)

type navigationKind int

const (
	navigationNone navigationKind = iota
	navigationNew
	navigationHistory
	navigationReload
)

// Load starts a navigation to url. Navigating always leaves fullscreen.
// A request the host refuses is dropped without error.
func (s *Session) Load(url string, ignoreCaches bool) error {
	return s.startLoad(entity.LoadRequest{URL: url, IgnoreCaches: ignoreCaches}, navigationNew)
}

// LoadData displays data as an HTML document with url as its base.
func (s *Session) LoadData(data []byte, url string) error {
	return s.startLoad(entity.LoadRequest{URL: url, Data: data, MIMEType: "text/html"}, navigationNew)
}

func (s *Session) startLoad(req entity.LoadRequest, kind navigationKind) error {
	frame := s.contentFrame()
	if frame == nil {
		return ErrClosed
	}
	nav := s.host.Navigation
	if !nav.CanHandleRequest(req.URL) {
		s.logger.Debug().Str("url", req.URL).Msg("host cannot handle request")
		return nil
	}
	if !nav.ShouldNavigateToURL(req.URL, false) {
		s.logger.Debug().Str("url", req.URL).Msg("navigation refused by host")
		return nil
	}

	s.SetFullscreenElement(nil)
	frame.Stop()
	s.saveCurrentToPageCache()

	s.lastNavigationID++
	s.pendingNavigationID = s.lastNavigationID
	s.pendingNav = kind
	req.NavigationID = s.pendingNavigationID

	logging.FromContext(logging.WithNavigation(s.ctx, req.NavigationID, req.URL)).Debug().
		Bool("ignore_caches", req.IgnoreCaches).
		Msg("load")
	if err := frame.Load(req); err != nil {
		return fmt.Errorf("load %s: %w", req.URL, err)
	}
	return nil
}

// Reload reloads from origin when the current document still has url,
// otherwise it loads url afresh.
func (s *Session) Reload(url string) error {
	frame := s.contentFrame()
	if frame == nil {
		return ErrClosed
	}
	if frame.DocumentLoaderURL() == url {
		s.lastNavigationID++
		s.pendingNavigationID = s.lastNavigationID
		s.pendingNav = navigationReload
		frame.Reload(true)
		return nil
	}
	return s.Load(url, false)
}

// Stop cancels the current navigation and leaves fullscreen.
func (s *Session) Stop() {
	frame := s.contentFrame()
	if frame == nil {
		return
	}
	s.pendingNavigationID = 0
	s.SetFullscreenElement(nil)
	frame.Stop()
}

// GoBack navigates one step back in session history.
func (s *Session) GoBack() bool { return s.goToOffset(-1) }

// GoForward navigates one step forward in session history.
func (s *Session) GoForward() bool { return s.goToOffset(1) }

// CanGoBack reports whether GoBack has somewhere to go.
func (s *Session) CanGoBack() bool { return s.history.CanGoBack() }

// CanGoForward reports whether GoForward has somewhere to go.
func (s *Session) CanGoForward() bool { return s.history.CanGoForward() }

// History exposes the back/forward list.
func (s *Session) History() *BackForwardList { return s.history }

func (s *Session) goToOffset(delta int) bool {
	item, ok := s.history.ItemAt(delta)
	if !ok {
		return false
	}
	s.pendingItem = item
	if err := s.startLoad(entity.LoadRequest{URL: item.URL}, navigationHistory); err != nil {
		s.logger.Warn().Err(err).Msg("history navigation failed")
		return false
	}
	return true
}

func (s *Session) pageCacheKey(item HistoryItem) string {
	return fmt.Sprintf("%d/%d", s.id, item.ID)
}

// saveCurrentToPageCache records the state of the item being left.
func (s *Session) saveCurrentToPageCache() {
	if s.pageCache == nil || s.pageCache.Capacity() <= 0 || s.committedURL == "" {
		return
	}
	item, ok := s.history.Current()
	if !ok {
		return
	}
	var scroll entity.Point
	if frame := s.contentFrame(); frame != nil {
		if view := frame.View(); view != nil {
			scroll = view.ScrollPosition()
		}
	}
	s.pageCache.Put(s.pageCacheKey(item), port.CachedPage{URL: item.URL, Title: item.Title, Scroll: scroll})
}

// ConsumePendingNavigationID hands the pending id to the new document loader.
func (s *Session) ConsumePendingNavigationID() entity.NavigationID {
	id := s.pendingNavigationID
	s.pendingNavigationID = 0
	return id
}

// LoadState returns the main frame load state.
func (s *Session) LoadState() entity.LoadState { return s.loadState }

// URL returns the last committed URL.
func (s *Session) URL() string { return s.committedURL }

// Title returns the current document title.
func (s *Session) Title() string { return s.title }

func (s *Session) DidStartProvisionalLoad(url string) {
	s.loadState = entity.LoadProvisional
	s.progress = newProgressLimiter()
	s.host.Navigation.ProgressStarted()
	s.logger.Trace().Str("url", url).Msg("provisional load")
}

// DidCommitLoad records the new document and updates history.
func (s *Session) DidCommitLoad(url string) {
	s.loadState = entity.LoadCommitted
	s.committedURL = url
	s.title = ""
	s.autofill = nil
	s.restore = nil

	switch s.pendingNav {
	case navigationHistory:
		s.history.GoTo(s.pendingItem.ID)
		if s.pageCache != nil {
			if cached, ok := s.pageCache.Take(s.pageCacheKey(s.pendingItem)); ok {
				s.restore = &cached
			}
		}
	case navigationReload:
	case navigationNew:
		s.history.Push(url)
	default:
		// engine initiated, e.g. a followed link
		if cur, ok := s.history.Current(); !ok || cur.URL != url {
			s.history.Push(url)
		}
	}
	s.pendingNav = navigationNone
	s.host.Navigation.ChangedURL(url)
	s.InvalidateAll()
}

func (s *Session) DidReceiveTitle(title string) {
	s.title = title
	s.history.SetCurrentTitle(title)
	s.host.Navigation.ChangedTitle(title)
}

// DidFinishLoad completes the load and restores a cached scroll position.
func (s *Session) DidFinishLoad() {
	s.loadState = entity.LoadFinished
	if s.restore != nil {
		s.SetScroll(s.restore.Scroll)
		s.restore = nil
	}
	s.finishProgress()
}

// DidFailLoad reports a failed load. Cancellations leave the visible URL
// alone; other failures restore the committed URL.
func (s *Session) DidFailLoad(err *entity.ResourceError) {
	s.loadState = entity.LoadFailed
	s.pendingNav = navigationNone
	s.host.Navigation.DidFailWithError(err)
	if err == nil || !err.IsCancellation() {
		s.host.Navigation.ChangedURL(s.committedURL)
	}
	s.finishProgress()
}

func (s *Session) DidLoadInsecureContent() {
	s.host.Navigation.DidLoadInsecureContent()
}

// ProgressEstimateChanged forwards progress at most every progressInterval;
// completion is always forwarded.
func (s *Session) ProgressEstimateChanged(fraction float64) {
	if fraction < 1 && !s.progress.Allow() {
		return
	}
	s.host.Navigation.ProgressUpdated(fraction)
}

func (s *Session) finishProgress() {
	s.host.Navigation.ProgressUpdated(1)
	s.host.Navigation.ProgressFinished()
}

func (s *Session) DidChangeContentsSize(size entity.Size) {
	s.host.Render.SetDocumentSize(size.Width, size.Height)
	s.clampScroll()
}

// AddResourceRequest starts tracking a request. The first one flips the page
// into the loading state.
func (s *Session) AddResourceRequest(id entity.ResourceRequestID) {
	if _, ok := s.resources[id]; ok {
		return
	}
	s.resources[id] = struct{}{}
	if len(s.resources) == 1 {
		s.host.Navigation.DidStartLoading()
	}
}

// RemoveResourceRequest stops tracking a request. Unknown ids are ignored,
// late removals may race with teardown.
func (s *Session) RemoveResourceRequest(id entity.ResourceRequestID) {
	if _, ok := s.resources[id]; !ok {
		return
	}
	delete(s.resources, id)
	if len(s.resources) == 0 {
		s.host.Navigation.DidStopLoading()
	}
}

// IsLoading reports whether any tracked request is in flight.
func (s *Session) IsLoading() bool { return len(s.resources) > 0 }
