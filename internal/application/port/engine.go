package port

import "github.com/bnema/pagecore/internal/domain/entity"

// FrameLoaderClient receives load and editing notifications for a page from
// the engine. Calls arrive on the run loop.
type FrameLoaderClient interface {
	// ConsumePendingNavigationID hands the id assigned by the last load to the
	// document loader being created. Zero means the load was not initiated by
	// the page session.
	ConsumePendingNavigationID() entity.NavigationID
	DidStartProvisionalLoad(url string)
	DidCommitLoad(url string)
	DidReceiveTitle(title string)
	DidFinishLoad()
	DidFailLoad(err *entity.ResourceError)
	DidLoadInsecureContent()
	ProgressEstimateChanged(fraction float64)
	DidChangeContentsSize(size entity.Size)

	AddResourceRequest(id entity.ResourceRequestID)
	RemoveResourceRequest(id entity.ResourceRequestID)

	// StartedEditingElement reports the editable element that gained focus,
	// or nil when focus moved off editing to a link or to nothing.
	StartedEditingElement(el Element)
}

// RequestPolicy decides whether subresource loads may proceed.
type RequestPolicy interface {
	ShouldAllowRequest(url, mainDocumentURL string, frame entity.FrameID) bool
}

// PageConfig is what the engine needs to build a page.
type PageConfig struct {
	PageID      entity.PageID
	MainFrameID entity.FrameID
	Client      FrameLoaderClient
	Policy      RequestPolicy
}

// Engine creates content pages.
type Engine interface {
	NewPage(cfg PageConfig) (ContentPage, error)
}
