package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"imagetagger/internal/delivery/http/controllers"
	"imagetagger/internal/delivery/http/middleware"
	"imagetagger/internal/domain"
)

// Controllers bundles the handler groups the router wires up.
type Controllers struct {
	Auth   *controllers.AuthController
	Group  *controllers.GroupController
	Image  *controllers.ImageController
	Tag    *controllers.TagController
	Export *controllers.ExportController
	Assist *controllers.AssistController
}

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(c Controllers, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(verifier)
	admin := middleware.RequireRole("admin")

	// Auth
	mux.HandleFunc("POST /login", c.Auth.Login)
	mux.HandleFunc("GET /protected", auth(c.Auth.Protected))
	mux.HandleFunc("GET /admin", auth(admin(c.Auth.AdminOnly)))
	mux.HandleFunc("GET /users", c.Auth.Usernames)

	// Groups
	mux.HandleFunc("GET /groups", c.Group.List)
	mux.HandleFunc("POST /groups", c.Group.Create)
	mux.HandleFunc("POST /groups/add-user", c.Group.AddUser)
	mux.HandleFunc("POST /groups/remove-user", c.Group.RemoveUser)
	mux.HandleFunc("POST /groups/update", c.Group.Update)
	mux.HandleFunc("POST /groups/delete", c.Group.Delete)

	// Images
	mux.HandleFunc("POST /upload", c.Image.Upload)
	mux.HandleFunc("GET /images/{username}", c.Image.UserImages)
	mux.HandleFunc("DELETE /images/delete/{image_id}", c.Image.Delete)
	mux.HandleFunc("GET /uploads/{filename}", c.Image.ServeFile)

	// Tags
	mux.HandleFunc("GET /tags", c.Tag.ListSuggestions)
	mux.HandleFunc("POST /tags/suggest", c.Tag.Suggest)
	mux.HandleFunc("GET /tags/image/{image_id}", c.Tag.ImageTags)
	mux.HandleFunc("POST /tags/review", c.Tag.Review)
	mux.HandleFunc("GET /tags/pending", c.Tag.ListPending)
	mux.HandleFunc("GET /tags/approved", c.Tag.ListApproved)
	mux.HandleFunc("POST /tags/upvote", c.Tag.Upvote)
	mux.HandleFunc("GET /tags/upvote/{tag_id}/{user_id}", c.Tag.CheckUpvote)
	mux.HandleFunc("DELETE /tags/approved/{tag_id}", c.Tag.DeleteApproved)
	mux.HandleFunc("GET /tags/upvotes/{tag_id}", c.Tag.TagUpvotes)

	// Export and persistence
	mux.HandleFunc("GET /export/annotations", c.Export.Annotations)
	mux.HandleFunc("POST /admin/save", auth(admin(c.Export.Save)))

	// AI assistance
	mux.HandleFunc("POST /ai/suggest-tag", c.Assist.SuggestTag)
	mux.HandleFunc("POST /ai/chat", c.Assist.Chat)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
