package postgres

import (
	"context"
	"time"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/errors"
	"evently/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// mutableEventColumns are the columns Update may overwrite. owner_id and
// created_at are never touched after insert.
var mutableEventColumns = []string{"name", "date", "time", "location", "description", "category", "updated_at"}

// eventRepository implements repository.EventRepository using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserNotFound, "event owner does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidCategory.WithCause(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindByID reads from the primary so an update or delete issued right after
// a write sees it.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel
	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id).First(&eventM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find event")
	}

	return toEventDomain(&eventM), nil
}

func (repo *eventRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Event, error) {
	var eventMs []*model.EventModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "date"}},
			{Column: clause.Column{Name: "time"}},
			{Column: clause.Column{Name: "created_at"}},
		}}).
		Find(&eventMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventMs))
	for _, eventM := range eventMs {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	result := repo.db.WithContext(ctx).
		Model(eventM).
		Select(mutableEventColumns).
		Updates(eventM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidCategory.WithCause(result.Error)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

func (repo *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EventModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:          data.ID,
		Name:        data.Name,
		Date:        toCalendarDate(data.Date),
		Time:        data.Time,
		Location:    data.Location,
		Description: data.Description,
		Category:    entity.ParseCategory(data.Category),
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:          data.ID,
		Name:        data.Name,
		Date:        toCalendarDate(data.Date),
		Time:        data.Time,
		Location:    data.Location,
		Description: data.Description,
		Category:    data.Category.String(),
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toCalendarDate drops the clock and zone so a DATE column round-trips
// to UTC midnight regardless of the session time zone.
func toCalendarDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
