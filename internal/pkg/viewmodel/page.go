package viewmodel

// Page is the data every page view is rendered with
type Page struct {
	Title string
	View  string
}

func NewPage(view string) Page {
	return Page{Title: view, View: view}
}
