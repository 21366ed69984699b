package compositor

import "github.com/orbitald/compositor/winstack"

// OpenWindow assigns a new window id, resolves cascading placement when the
// caller leaves x and y negative, schedules damage for both the previously
// focused window (losing focus) and the new one, and inserts the new window
// at the front of the focus order.
func (c *Compositor) OpenWindow(x, y, width, height int, title string, async, resizable bool) int {
	id := int(c.nextID)
	c.nextID++
	if c.nextID <= 0 {
		c.nextID = 1
	}

	if x < 0 && y < 0 {
		x, y = c.nextX, c.nextY
		c.nextX += 20
		if c.nextX+20 >= c.screen.W {
			c.nextX = 20
		}
		c.nextY += 20
		if c.nextY+20 >= c.screen.H {
			c.nextY = 20
		}
	}

	if len(c.order) > 0 {
		if old, ok := c.windows[c.order[0]]; ok {
			c.scheduleWindowDamage(old)
		}
	}

	w := winstack.New(id, x, y, width, height, title, async, resizable)
	c.scheduleWindowDamage(w)

	c.order = append([]int{id}, c.order...)
	c.windows[id] = w
	return id
}

// CloseWindow removes id from the order and window map, schedules damage
// for the area it occupied, and — if it was focused — for the new front's
// decoration.
func (c *Compositor) CloseWindow(id int) error {
	w, ok := c.windows[id]
	if !ok {
		return ErrNotFound
	}

	wasFocused := len(c.order) > 0 && c.order[0] == id
	c.order = removeID(c.order, id)
	if wasFocused && len(c.order) > 0 {
		if nw, ok := c.windows[c.order[0]]; ok {
			c.scheduleWindowDamage(nw)
		}
	}

	delete(c.windows, id)
	c.scheduleWindowDamage(w)

	if c.dragging.mode != DragNone && c.dragging.id == id {
		c.dragging = dragState{}
	}
	return nil
}

// MoveWindow implements the "P,<x>,<y>" write message: schedule old and new
// damage, then update position.
func (c *Compositor) MoveWindow(id, x, y int) error {
	w, ok := c.windows[id]
	if !ok {
		return ErrNotFound
	}
	c.scheduleWindowDamage(w)
	w.X, w.Y = x, y
	c.scheduleWindowDamage(w)
	return nil
}

// ResizeWindow implements the "S,<w>,<h>" write message: resize the client
// buffer and schedule old and new damage.
func (c *Compositor) ResizeWindow(id, width, height int) error {
	w, ok := c.windows[id]
	if !ok {
		return ErrNotFound
	}
	c.scheduleWindowDamage(w)
	w.SetSize(width, height)
	c.scheduleWindowDamage(w)
	return nil
}

// RetitleWindow implements the "T,<title>" write message: re-render the
// title image and schedule title damage only.
func (c *Compositor) RetitleWindow(id int, title string) error {
	w, ok := c.windows[id]
	if !ok {
		return ErrNotFound
	}
	w.SetTitle(title)
	c.redraws.Schedule(w.TitleRect())
	return nil
}

// Sync implements fsync: the client has finished a batch of pixel writes,
// so the client rectangle is scheduled as damage.
func (c *Compositor) Sync(id int) error {
	w, ok := c.windows[id]
	if !ok {
		return ErrNotFound
	}
	c.redraws.Schedule(w.ClientRect())
	return nil
}
