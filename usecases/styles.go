package usecases

import (
	"errors"
	"fmt"

	"imagemaker-server/entities"
	"imagemaker-server/repositories"

	"gorm.io/gorm"
)

// ErrStyleExists marks a duplicate style name so the HTTP layer can tell it
// apart from a persistence failure.
var ErrStyleExists = errors.New("style name already exists")

type StyleUseCase struct {
	StyleRepo repositories.StyleRepository
}

func NewStyleUseCase(styleRepo repositories.StyleRepository) *StyleUseCase {
	return &StyleUseCase{StyleRepo: styleRepo}
}

type CreateStyleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

type StyleModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ListStylesResponse struct {
	Styles []StyleModel `json:"styles"`
}

type DeleteStyleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateStyle inserts a new catalog entry. The name pre-check is only a
// fast path; the unique constraint on the insert is the source of truth.
func (uc *StyleUseCase) CreateStyle(name string, description *string) (*CreateStyleResponse, error) {
	existing, err := uc.StyleRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("a style with the name '%s' already exists: %w", name, ErrStyleExists)
	}

	style := &entities.Style{Name: name, Description: description}
	if err := uc.StyleRepo.Create(style); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("a style with the name '%s' already exists: %w", name, ErrStyleExists)
		}
		return nil, err
	}

	return &CreateStyleResponse{
		ID:          style.ID,
		Name:        style.Name,
		Description: style.Description,
		CreatedAt:   style.CreatedAt,
	}, nil
}

// ListStyles returns every catalog entry, with missing descriptions
// reported as empty strings.
func (uc *StyleUseCase) ListStyles() (*ListStylesResponse, error) {
	records, err := uc.StyleRepo.GetAll()
	if err != nil {
		return nil, err
	}

	styles := make([]StyleModel, 0, len(records))
	for _, record := range records {
		description := ""
		if record.Description != nil {
			description = *record.Description
		}
		styles = append(styles, StyleModel{
			ID:          record.ID,
			Name:        record.Name,
			Description: description,
		})
	}
	return &ListStylesResponse{Styles: styles}, nil
}

// DeleteStyle removes a catalog entry. Unknown ids, repeated deletes
// included, report a not-found failure value and never an error.
func (uc *StyleUseCase) DeleteStyle(id string) DeleteStyleResponse {
	style, err := uc.StyleRepo.GetByID(id)
	if err != nil {
		return DeleteStyleResponse{Success: false, Message: fmt.Sprintf("An error occurred: %v", err)}
	}
	if style == nil {
		return DeleteStyleResponse{Success: false, Message: "Style not found."}
	}

	if err := uc.StyleRepo.Delete(id); err != nil {
		return DeleteStyleResponse{Success: false, Message: fmt.Sprintf("An error occurred: %v", err)}
	}
	return DeleteStyleResponse{Success: true, Message: "Style deleted successfully."}
}
