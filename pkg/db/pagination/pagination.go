package pagination

// Request is the standard page/per_page offset contract.
type Request struct {
	Page    int `form:"page,default=1"`
	PerPage int `form:"per_page,default=5"`
}

func (r Request) Normalize(defaultPerPage int) Request {
	out := r
	if out.Page < 1 {
		out.Page = 1
	}
	if out.PerPage < 1 {
		out.PerPage = defaultPerPage
	}
	return out
}

func (r Request) Offset() int {
	return (r.Page - 1) * r.PerPage
}

// Page is the paginated response envelope.
type Page[T any] struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
	Data        []T   `json:"data"`
}

func NewPage[T any](data []T, total int64, req Request) Page[T] {
	if data == nil {
		data = []T{}
	}
	lastPage := int(total) / req.PerPage
	if int(total)%req.PerPage != 0 || lastPage == 0 {
		lastPage++
	}
	return Page[T]{
		CurrentPage: req.Page,
		PerPage:     req.PerPage,
		Total:       total,
		LastPage:    lastPage,
		Data:        data,
	}
}

// Slice pages an already-materialized list, used for views that group
// rows in memory before paginating the groups.
func Slice[T any](items []T, req Request) Page[T] {
	total := int64(len(items))
	start := req.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + req.PerPage
	if end > len(items) {
		end = len(items)
	}
	return NewPage(items[start:end], total, req)
}
