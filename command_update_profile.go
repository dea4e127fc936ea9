package storefront

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
)

// UpdateProfileMessage carries the mutable profile fields. Email and
// password are immutable via this path.
type UpdateProfileMessage struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Lastname     string `json:"lastname"`
	Phone        string `json:"phone"`
	Province     string `json:"province"`
	Municipality string `json:"municipality"`
	PostalCode   string `json:"postal_code"`
	Street       string `json:"street"`
}

func (e UpdateProfileMessage) Type() string { return "user.update_profile" }

func (e UpdateProfileMessage) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.UserID, validation.Required),
		validation.Field(&e.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&e.Lastname, validation.Length(0, 200)),
		validation.Field(&e.Phone, validation.Length(0, 20)),
	)
}

// UpdateProfileHandler applies profile updates to existing accounts.
type UpdateProfileHandler struct {
	repo   RepositoryManager
	logger Logger
}

func NewUpdateProfileHandler(repo RepositoryManager) *UpdateProfileHandler {
	return &UpdateProfileHandler{
		repo:   repo,
		logger: defLogger{},
	}
}

func (h *UpdateProfileHandler) WithLogger(l Logger) *UpdateProfileHandler {
	if l != nil {
		h.logger = l
	}
	return h
}

func (h *UpdateProfileHandler) Execute(ctx context.Context, event UpdateProfileMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during profile update",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *UpdateProfileHandler) execute(ctx context.Context, event UpdateProfileMessage) error {
	if err := event.Validate(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid profile payload")
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err := h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		user, err := h.repo.Users().GetByIDTx(ctx, tx, event.UserID)
		if err != nil {
			if repository.IsRecordNotFound(err) {
				return ErrIdentityNotFound
			}
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to load user for profile update")
		}

		// Only the allowed mutable fields; email and password hash are
		// carried through untouched.
		user.Name = event.Name
		user.Lastname = event.Lastname
		user.Phone = event.Phone
		user.Province = event.Province
		user.Municipality = event.Municipality
		user.PostalCode = event.PostalCode
		user.Street = event.Street

		if _, err := h.repo.Users().UpdateTx(ctx, tx, user, repository.UpdateByID(user.ID.String())); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "could not update profile")
		}

		return nil
	})

	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return richErr
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "profile update transaction failed")
	}

	return nil
}
