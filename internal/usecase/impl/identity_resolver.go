package impl

import (
	"context"
	"log/slog"

	deliverycontext "evently/internal/delivery/context"
	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/errors"
	"evently/internal/usecase"

	"go.uber.org/fx"
)

// identityResolver implements usecase.IdentityResolver over the credential store.
type identityResolver struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// IdentityResolverParams holds dependencies for identityResolver.
type IdentityResolverParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewIdentityResolver creates the delegated-login identity resolver.
func NewIdentityResolver(params IdentityResolverParams) usecase.IdentityResolver {
	return &identityResolver{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (r *identityResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Resolve runs the three-way resolution: existing link, link by email, create.
// Every write is a single conditional statement; a lost race is recovered by
// re-reading the winner's row.
func (r *identityResolver) Resolve(ctx context.Context, externalID, email string, emailVerified bool) (*entity.User, error) {
	if externalID == "" {
		return nil, domainerrors.ErrOAuthFailed.WithCause(errors.New("external profile has no subject"))
	}
	email = entity.NormalizeEmail(email)

	// 1. Already linked.
	user, err := r.userRepo.FindByGoogleID(ctx, externalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by google id")
	}

	// 2. A local identity with the same email and no link yet.
	if email != "" {
		user, err = r.userRepo.FindByEmail(ctx, email)
		switch {
		case err == nil && !user.HasExternalIdentity() && emailVerified:
			return r.link(ctx, user, externalID)
		case err == nil && !emailVerified:
			// An unverified address never merges into an existing identity.
			r.log(ctx).Warn("Unverified email matches an existing user, creating identity without email",
				slog.Any("existingUserID", user.ID))
			email = ""
		case err == nil:
			// The email belongs to an identity linked to another Google
			// account; the new identity cannot also claim it.
			r.log(ctx).Warn("Email already linked to another Google account, creating identity without email",
				slog.Any("existingUserID", user.ID))
			email = ""
		case !errors.Is(err, repository.ErrUserNotFound):
			return nil, errors.Wrap(err, "failed to find user by email")
		}
	}

	// 3. New identity.
	return r.create(ctx, externalID, email)
}

func (r *identityResolver) link(ctx context.Context, user *entity.User, externalID string) (*entity.User, error) {
	err := r.userRepo.LinkGoogleID(ctx, user.ID, externalID)
	if err == nil {
		user.GoogleID = externalID
		r.log(ctx).Info("Linked Google account to existing user", slog.Any("userID", user.ID))

		return user, nil
	}
	if !errors.Is(err, repository.ErrGoogleIDAlreadyLinked) {
		return nil, errors.Wrap(err, "failed to link google id")
	}

	// A concurrent call linked first; if it linked this externalID we are done.
	return r.reread(ctx, externalID, err)
}

func (r *identityResolver) create(ctx context.Context, externalID, email string) (*entity.User, error) {
	user := &entity.User{
		Email:    email,
		GoogleID: externalID,
	}

	err := r.userRepo.Create(ctx, user)
	if err == nil {
		r.log(ctx).Info("Created user from Google profile", slog.Any("userID", user.ID), slog.Bool("hasEmail", email != ""))

		return user, nil
	}
	if !errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		return nil, errors.Wrap(err, "failed to create google user")
	}

	return r.reread(ctx, externalID, err)
}

func (r *identityResolver) reread(ctx context.Context, externalID string, cause error) (*entity.User, error) {
	user, err := r.userRepo.FindByGoogleID(ctx, externalID)
	if err != nil {
		return nil, errors.Wrap(cause, "failed to resolve google identity after conflict")
	}

	return user, nil
}
