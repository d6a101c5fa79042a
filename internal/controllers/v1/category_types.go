package v1

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string `json:"name" example:"Zabava" default:""` // Name of the category
}

type URICategory struct {
	Name string `uri:"name" binding:"required" example:"Zabava"` // Name of the category
}

// CategoryDeletion reports what happened to a deleted category.
type CategoryDeletion struct {
	Name       string   `json:"name" example:"Prace"`     // Name of the category
	Hidden     bool     `json:"hidden" example:"true"`    // True when a built-in category was hidden instead of deleted
	Categories []string `json:"categories"`               // The effective category list after the deletion
}

type CategoryListResponse struct {
	Data  []string `json:"data"`                                            // The effective category list, in display order
	Error *string  `json:"error" example:"this category already exists"` // The error, if any occurred
}

type CategoryDeleteResponse struct {
	Data  *CategoryDeletion `json:"data"`                                                   // Data for the deletion
	Error *string           `json:"error" example:"there is no category with this name"` // The error, if any occurred
}
