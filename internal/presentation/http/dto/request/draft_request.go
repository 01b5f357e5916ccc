package request

// DraftHeaderRequest selects the client and seller of the draft
type DraftHeaderRequest struct {
	ClientID *int   `json:"clientId" binding:"omitempty,min=1"`
	SellerID *int   `json:"sellerId" binding:"omitempty,min=1"`
	Comment  string `json:"comment" binding:"max=500"`
}

// AddItemRequest adds one unit of an article to the draft
type AddItemRequest struct {
	ProductID int `json:"productId" binding:"required,min=1"`
}

// SetQuantityRequest replaces the quantity of a draft line. Zero or less
// removes the line.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
