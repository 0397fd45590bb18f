package requests

type Pagination struct {
	Page   int
	Limit  int
	Search string
}

func (p *Pagination) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}
