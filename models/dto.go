package models

// Auth request fields carry validate tags instead of binding tags: the
// handlers run them through the shared validator so failures come back
// as translated, per-field messages.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ArticleInput carries the editable fields of an article. Length and
// content rules are checked by the publication workflow, not by binding
// tags, so that failures surface as field-level validation errors.
type ArticleInput struct {
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"cover_image"`
	Published  bool     `json:"published"`
	Author     string   `json:"author"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

type NavigationInput struct {
	Title   string         `json:"title"`
	Path    string         `json:"path"`
	Type    NavigationType `json:"type"`
	Order   int            `json:"order"`
	Enabled bool           `json:"enabled"`
}

type ArticleListParams struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
}
