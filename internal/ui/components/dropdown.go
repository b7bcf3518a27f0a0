package components

// Dropdown is the suggestion list under the tag input. It distinguishes a
// hidden list (no query) from a shown list with zero items, and its cursor
// starts on no item so enter falls through to submitting typed text.
type Dropdown struct {
	Items    []string
	Cursor   int
	Offset   int
	PageSize int
	shown    bool
}

// NewDropdown creates a hidden dropdown with the given page size.
func NewDropdown(pageSize int) *Dropdown {
	if pageSize <= 0 {
		pageSize = 1
	}
	return &Dropdown{PageSize: pageSize, Cursor: -1}
}

// SetItems shows the given labels and clears the highlight. A nil slice hides
// the dropdown.
func (d *Dropdown) SetItems(items []string) {
	d.Items = items
	d.shown = items != nil
	d.Cursor = -1
	d.Offset = 0
}

// Hide clears and hides the dropdown.
func (d *Dropdown) Hide() {
	d.SetItems(nil)
}

// Shown reports whether the dropdown should render at all.
func (d *Dropdown) Shown() bool {
	return d.shown
}

// Down moves the highlight down, starting from the first item.
func (d *Dropdown) Down() {
	if d.Cursor < len(d.Items)-1 {
		d.Cursor++
		if d.Cursor >= d.Offset+d.PageSize {
			d.Offset++
		}
	}
}

// Up moves the highlight up. Moving above the first item clears it.
func (d *Dropdown) Up() {
	if d.Cursor < 0 {
		return
	}
	d.Cursor--
	if d.Cursor >= 0 && d.Cursor < d.Offset {
		d.Offset--
	}
}

// Visible returns the current page of items.
func (d *Dropdown) Visible() []string {
	if len(d.Items) == 0 {
		return nil
	}
	end := d.Offset + d.PageSize
	if end > len(d.Items) {
		end = len(d.Items)
	}
	return d.Items[d.Offset:end]
}

// Selected returns the highlighted index, or -1.
func (d *Dropdown) Selected() int {
	return d.Cursor
}

// Highlighted reports whether an item is highlighted.
func (d *Dropdown) Highlighted() bool {
	return d.Cursor >= 0 && d.Cursor < len(d.Items)
}

// IsSelected returns true if the given absolute index is highlighted.
func (d *Dropdown) IsSelected(absIdx int) bool {
	return absIdx == d.Cursor
}

// RelToAbs converts a visible index to an absolute one.
func (d *Dropdown) RelToAbs(relIdx int) int {
	return d.Offset + relIdx
}
