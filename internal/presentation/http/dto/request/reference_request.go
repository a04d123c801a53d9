package request

// NameRequest is the shared payload for the reference tables, which
// hold nothing but a unique name
type NameRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}
