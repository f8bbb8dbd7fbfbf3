package calculator

// QuoteRequest is one complete wizard selection. Every single-select group is
// required; appliances may be skipped.
type QuoteRequest struct {
	SizeID         string   `json:"sizeId"`
	LayoutID       string   `json:"layoutId"`
	ColorID        string   `json:"colorId"`
	WorktopID      string   `json:"worktopId"`
	PlumbingID     string   `json:"plumbingId"`
	ApplianceIDs   []string `json:"applianceIds,omitempty"`
	InstallationID string   `json:"installationId"`
}

// Quote is the itemized price estimate.
type Quote struct {
	Items []Item `json:"items"`
	Total int64  `json:"total"`
}

// Price validates a selection against the config and sums the item prices.
// The second return value carries per-field validation errors; a nil map
// means the selection is valid.
func (c Config) Price(req QuoteRequest) (Quote, map[string]string) {
	fieldErrors := map[string]string{}
	var quote Quote

	pick := func(field, id string, g Group) {
		if id == "" {
			fieldErrors[field] = "required"
			return
		}
		item, ok := g.find(id)
		if !ok {
			fieldErrors[field] = "unknown option: " + id
			return
		}
		quote.Items = append(quote.Items, item)
		quote.Total += item.Price
	}

	pick("sizeId", req.SizeID, c.Sizes)
	pick("layoutId", req.LayoutID, c.Layouts)
	pick("colorId", req.ColorID, c.Colors)
	pick("worktopId", req.WorktopID, c.Worktops)
	pick("plumbingId", req.PlumbingID, c.Plumbing)
	pick("installationId", req.InstallationID, c.Installations)

	seen := map[string]bool{}
	for _, id := range req.ApplianceIDs {
		if seen[id] {
			fieldErrors["applianceIds"] = "duplicate option: " + id
			continue
		}
		seen[id] = true
		item, ok := c.Appliances.find(id)
		if !ok {
			fieldErrors["applianceIds"] = "unknown option: " + id
			continue
		}
		quote.Items = append(quote.Items, item)
		quote.Total += item.Price
	}

	if len(fieldErrors) > 0 {
		return Quote{}, fieldErrors
	}
	return quote, nil
}
