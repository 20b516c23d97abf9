package paging

// Cursor tracks the position of one paginated list view. Once AtBound is
// true no further fetch advances Page; only Reset leaves that state.
type Cursor struct {
	Page    int32 `json:"page"`
	AtBound bool  `json:"atBound"`
}

// Advance applies the post-fetch transition: a short page marks the
// bound, a full page moves to the next one.
func (c *Cursor) Advance(fetched, limit int) {
	if c.AtBound {
		return
	}
	if fetched < limit {
		c.AtBound = true
	} else {
		c.Page++
	}
}

func (c *Cursor) Reset() {
	c.Page = 0
	c.AtBound = false
}
