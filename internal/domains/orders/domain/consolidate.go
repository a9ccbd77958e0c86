package domain

// Consolidate merges repeated submissions of the same order id into one
// logical order.
//
// Orders are grouped by id, preserving the order in which each id was
// first seen. The first order of a group is the anchor. Every later
// member is compared against the anchor only: if its delivery time,
// creation time, and customer address all match, its lines fold into the
// anchor (quantities added for products the anchor already carries,
// lines appended otherwise); if any of those fields differ, the member
// is emitted unchanged as its own entry, ahead of the anchor. A
// non-anchor member with no lines is dropped. The anchor is emitted last
// within its group.
//
// Line pointers are shared with the input; merging mutates the anchor in
// place.
func Consolidate(orders []*Order) []*Order {
	groups := make(map[string][]*Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		if order == nil {
			continue
		}
		if _, seen := groups[order.ID]; !seen {
			ids = append(ids, order.ID)
		}
		groups[order.ID] = append(groups[order.ID], order)
	}

	consolidated := make([]*Order, 0, len(ids))
	for _, id := range ids {
		group := groups[id]
		anchor := group[0]
		for _, order := range group[1:] {
			if !order.DeliverAt.Equal(anchor.DeliverAt) ||
				!order.CreatedAt.Equal(anchor.CreatedAt) ||
				order.CustomerAddress != anchor.CustomerAddress {
				// Mismatched submissions are never compared against each
				// other, only against the anchor.
				consolidated = append(consolidated, order)
				continue
			}
			if len(order.Lines) == 0 {
				continue
			}
			for _, line := range order.Lines {
				if existing := anchor.Line(line.ProductID); existing != nil {
					existing.Quantity += line.Quantity
				} else {
					anchor.Lines = append(anchor.Lines, line)
				}
			}
		}
		consolidated = append(consolidated, anchor)
	}
	return consolidated
}
