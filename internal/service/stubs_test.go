package service

import (
	"context"

	"socialpod/internal/models"
	"socialpod/internal/repository"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn         func(context.Context, *models.User) (models.InsertResult, error)
	getByEmailFn     func(context.Context, string) (*models.User, error)
	listFn           func(context.Context, string) ([]models.User, error)
	listByRoleFn     func(context.Context, string) ([]models.User, error)
	setRoleFn        func(context.Context, string, string) (models.UpdateResult, error)
	setRoleByEmailFn func(context.Context, string, string) (models.UpdateResult, error)
	setBadgeFn       func(context.Context, string, string) (models.UpdateResult, error)
	countFn          func(context.Context) (int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) (models.InsertResult, error) {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) List(ctx context.Context, search string) ([]models.User, error) {
	return s.listFn(ctx, search)
}
func (s *userRepoStub) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.listByRoleFn(ctx, role)
}
func (s *userRepoStub) SetRole(ctx context.Context, id, role string) (models.UpdateResult, error) {
	return s.setRoleFn(ctx, id, role)
}
func (s *userRepoStub) SetRoleByEmail(ctx context.Context, email, role string) (models.UpdateResult, error) {
	return s.setRoleByEmailFn(ctx, email, role)
}
func (s *userRepoStub) SetBadge(ctx context.Context, email, badge string) (models.UpdateResult, error) {
	return s.setBadgeFn(ctx, email, badge)
}
func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func updated(n int64) models.UpdateResult {
	return models.UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, u *models.User) (models.InsertResult, error) {
			return models.InsertResult{Acknowledged: true, InsertedID: models.NewID()}, nil
		},
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, repository.ErrNotFound },
		listFn:       func(context.Context, string) ([]models.User, error) { return []models.User{}, nil },
		listByRoleFn: func(context.Context, string) ([]models.User, error) { return []models.User{}, nil },
		setRoleFn: func(context.Context, string, string) (models.UpdateResult, error) {
			return updated(1), nil
		},
		setRoleByEmailFn: func(context.Context, string, string) (models.UpdateResult, error) {
			return updated(1), nil
		},
		setBadgeFn: func(context.Context, string, string) (models.UpdateResult, error) {
			return updated(1), nil
		},
		countFn: func(context.Context) (int64, error) { return 0, nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post) (models.InsertResult, error)
	getByIDFn       func(context.Context, string) (*models.Post, error)
	listFn          func(context.Context, int, int) ([]models.Post, error)
	listByAuthorFn  func(context.Context, string) ([]models.Post, error)
	countFn         func(context.Context) (int64, error)
	incrementVoteFn func(context.Context, string, models.VoteKind) (models.UpdateResult, error)
	deleteFn        func(context.Context, string) (models.DeleteResult, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) (models.InsertResult, error) {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, skip, limit int) ([]models.Post, error) {
	return s.listFn(ctx, skip, limit)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, email string) ([]models.Post, error) {
	return s.listByAuthorFn(ctx, email)
}
func (s *postRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}
func (s *postRepoStub) IncrementVote(ctx context.Context, id string, kind models.VoteKind) (models.UpdateResult, error) {
	return s.incrementVoteFn(ctx, id, kind)
}
func (s *postRepoStub) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(context.Context, *models.Post) (models.InsertResult, error) {
			return models.InsertResult{Acknowledged: true, InsertedID: models.NewID()}, nil
		},
		getByIDFn:      func(context.Context, string) (*models.Post, error) { return nil, repository.ErrNotFound },
		listFn:         func(context.Context, int, int) ([]models.Post, error) { return []models.Post{}, nil },
		listByAuthorFn: func(context.Context, string) ([]models.Post, error) { return []models.Post{}, nil },
		countFn:        func(context.Context) (int64, error) { return 0, nil },
		incrementVoteFn: func(context.Context, string, models.VoteKind) (models.UpdateResult, error) {
			return updated(1), nil
		},
		deleteFn: func(context.Context, string) (models.DeleteResult, error) {
			return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		},
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) (models.InsertResult, error)
	listFn        func(context.Context) ([]models.Comment, error)
	listByTitleFn func(context.Context, string) ([]models.Comment, error)
	listByPostFn  func(context.Context, string) ([]models.Comment, error)
	countFn       func(context.Context) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) (models.InsertResult, error) {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) List(ctx context.Context) ([]models.Comment, error) {
	return s.listFn(ctx)
}
func (s *commentRepoStub) ListByTitle(ctx context.Context, title string) ([]models.Comment, error) {
	return s.listByTitleFn(ctx, title)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(context.Context, *models.Comment) (models.InsertResult, error) {
			return models.InsertResult{Acknowledged: true, InsertedID: models.NewID()}, nil
		},
		listFn:        func(context.Context) ([]models.Comment, error) { return []models.Comment{}, nil },
		listByTitleFn: func(context.Context, string) ([]models.Comment, error) { return []models.Comment{}, nil },
		listByPostFn:  func(context.Context, string) ([]models.Comment, error) { return []models.Comment{}, nil },
		countFn:       func(context.Context) (int64, error) { return 0, nil },
	}
}

// tagRepoStub is a stub for repository.TagRepository.
type tagRepoStub struct {
	createFn func(context.Context, *models.Tag) (models.InsertResult, error)
	listFn   func(context.Context) ([]models.Tag, error)
}

func (s *tagRepoStub) Create(ctx context.Context, t *models.Tag) (models.InsertResult, error) {
	return s.createFn(ctx, t)
}
func (s *tagRepoStub) List(ctx context.Context) ([]models.Tag, error) {
	return s.listFn(ctx)
}

// announcementRepoStub is a stub for repository.AnnouncementRepository.
type announcementRepoStub struct {
	createFn func(context.Context, *models.Announcement) (models.InsertResult, error)
	listFn   func(context.Context) ([]models.Announcement, error)
}

func (s *announcementRepoStub) Create(ctx context.Context, a *models.Announcement) (models.InsertResult, error) {
	return s.createFn(ctx, a)
}
func (s *announcementRepoStub) List(ctx context.Context) ([]models.Announcement, error) {
	return s.listFn(ctx)
}
