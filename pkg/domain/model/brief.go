package model

// UserBrief captures the user's initial description of the product to name
type UserBrief struct {
	ProductDescription string `json:"product_description"`
	TargetAudience     string `json:"target_audience,omitempty"`
	BrandPersonality   string `json:"brand_personality,omitempty"`
	Industry           string `json:"industry,omitempty"`
}

// IsEmpty reports whether no brief field has been filled in
func (b *UserBrief) IsEmpty() bool {
	if b == nil {
		return true
	}
	return b.ProductDescription == "" &&
		b.TargetAudience == "" &&
		b.BrandPersonality == "" &&
		b.Industry == ""
}
