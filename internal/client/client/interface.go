package client

import (
	"context"

	"github.com/dmitrijs2005/lightlens/internal/client/models"
)

// Client is the backend contract used by the view controllers.
type Client interface {
	Register(ctx context.Context, draft models.UserDraft) (*models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, draft models.UserDraft, image *models.Upload) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	UploadProfileImage(ctx context.Context, id int64, image models.Upload) (models.User, error)
	UploadPostImage(ctx context.Context, id int64, image models.Upload) error
	Follow(ctx context.Context, id int64) (*models.User, error)
	Unfollow(ctx context.Context, id int64) (*models.User, error)
	GetUserSummary(ctx context.Context, id int64) (models.User, error)
	ListGoals(ctx context.Context, userID int64) ([]models.Goal, error)
	CreateGoal(ctx context.Context, draft models.GoalDraft) (models.Goal, error)
	UpdateGoal(ctx context.Context, id int64, draft models.GoalDraft) (models.Goal, error)
	DeleteGoal(ctx context.Context, id int64) error
	AssetURL(image string) string
}
