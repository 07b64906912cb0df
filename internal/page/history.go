package page

// DefaultHistoryLimit bounds the back/forward list.
const DefaultHistoryLimit = 100

// HistoryItem is one entry of the back/forward list.
type HistoryItem struct {
	ID    uint64
	URL   string
	Title string
}

// BackForwardList is a linear session history with a cursor.
type BackForwardList struct {
	items  []HistoryItem
	index  int
	nextID uint64
	limit  int
}

// NewBackForwardList returns an empty list holding at most limit items.
func NewBackForwardList(limit int) *BackForwardList {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &BackForwardList{index: -1, limit: limit}
}

// Push appends url after the current item, dropping forward entries.
func (l *BackForwardList) Push(url string) HistoryItem {
	l.nextID++
	item := HistoryItem{ID: l.nextID, URL: url}
	l.items = append(l.items[:l.index+1], item)
	if len(l.items) > l.limit {
		l.items = l.items[len(l.items)-l.limit:]
	}
	l.index = len(l.items) - 1
	return item
}

// Current returns the current item.
func (l *BackForwardList) Current() (HistoryItem, bool) {
	if l.index < 0 {
		return HistoryItem{}, false
	}
	return l.items[l.index], true
}

// SetCurrentTitle records the title of the current item.
func (l *BackForwardList) SetCurrentTitle(title string) {
	if l.index >= 0 {
		l.items[l.index].Title = title
	}
}

func (l *BackForwardList) CanGoBack() bool    { return l.index > 0 }
func (l *BackForwardList) CanGoForward() bool { return l.index >= 0 && l.index < len(l.items)-1 }

// ItemAt returns the item delta steps from the current one.
func (l *BackForwardList) ItemAt(delta int) (HistoryItem, bool) {
	i := l.index + delta
	if l.index < 0 || i < 0 || i >= len(l.items) {
		return HistoryItem{}, false
	}
	return l.items[i], true
}

// GoTo moves the cursor to the item with id.
func (l *BackForwardList) GoTo(id uint64) bool {
	for i, it := range l.items {
		if it.ID == id {
			l.index = i
			return true
		}
	}
	return false
}

// Len returns the number of items.
func (l *BackForwardList) Len() int { return len(l.items) }
