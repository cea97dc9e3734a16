package constants

type Header struct {
	Name  string
	Value string
}

var (
	DefaultResponseHeaders = []Header{
		{Name: "Server", Value: "SafeHaven"},
	}
	DefaultOutboundRequestHeaders = []Header{
		{Name: "User-Agent", Value: "SafeHaven"},
		{Name: "Content-Type", Value: "application/json; charset=utf-8"},
	}
)

// Analytics event types recorded by the site frontend. Kept in one place so
// server-side emitters stay consistent with the client instrumentation.
const (
	EventTypePageView    = "page_view"
	EventTypeSectionView = "section_view"
	EventTypeButtonClick = "button_click"
	EventTypeLinkClick   = "link_click"
	EventTypeFormSubmit  = "form_submit"
	EventTypeDownload    = "download"
)
