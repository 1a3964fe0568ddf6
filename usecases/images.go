package usecases

import (
	"errors"

	"imagemaker-server/entities"
	"imagemaker-server/repositories"
)

// Generation is simulated: no model is invoked and the image URL is a
// fixed placeholder. The request is still logged and recorded exactly as a
// real pipeline would.
const (
	placeholderImageURL         = "https://example.com/generated_image.jpg"
	externalPlaceholderImageURL = "https://example.com/generated-image.jpg"
	externalCacheID             = "abc123"
	feedbackPrompt              = "Please share your feedback on this image."
	externalFeedbackPrompt      = "Do you like the generated image? Your feedback is welcome."
	defaultLanguage             = "en"
)

// ImageEventPublisher receives a notification after each successful
// generation. Publishing is best-effort and never fails the request.
type ImageEventPublisher interface {
	PublishImageGenerated(userID, imageID, imageURL, generatedAt string)
}

type ImageUseCase struct {
	ImageRepo repositories.ImageRepository
	Events    ImageEventPublisher // optional
}

func NewImageUseCase(imageRepo repositories.ImageRepository, events ImageEventPublisher) *ImageUseCase {
	return &ImageUseCase{ImageRepo: imageRepo, Events: events}
}

type GenerateImageInput struct {
	UserID          string
	TextDescription string
	Style           *string
	Language        *string
}

type GenerateImageResponse struct {
	ImageURL       string `json:"image_url"`
	CacheID        string `json:"cache_id,omitempty"`
	GenerationTime string `json:"generation_time"`
	FeedbackPrompt string `json:"feedback_prompt,omitempty"`
}

// GenerateImage serves both the internal endpoint and the external API
// variant; the external flag only changes the stub metadata in the
// response. Side effects in order: an audit log row with its text input,
// then the generated image row with its own text input.
func (uc *ImageUseCase) GenerateImage(in GenerateImageInput, external bool) (*GenerateImageResponse, error) {
	if in.UserID == "" {
		return nil, errors.New("user_id is required")
	}
	if in.TextDescription == "" {
		return nil, errors.New("text_description is required")
	}

	language := defaultLanguage
	if in.Language != nil && *in.Language != "" {
		language = *in.Language
	}

	logEntry := &entities.ImageRequestLog{
		UserID:  in.UserID,
		Success: true,
		TextInput: &entities.TextInput{
			InputText: in.TextDescription,
			UserID:    in.UserID,
			StyleID:   in.Style,
			Language:  language,
		},
	}
	if err := uc.ImageRepo.CreateRequestLog(logEntry); err != nil {
		return nil, err
	}

	imageURL := placeholderImageURL
	if external {
		imageURL = externalPlaceholderImageURL
	}

	image := &entities.GeneratedImage{
		ImageURL: imageURL,
		UserID:   in.UserID,
		TextInput: &entities.TextInput{
			InputText: in.TextDescription,
			UserID:    in.UserID,
			StyleID:   in.Style,
			Language:  language,
		},
	}
	if err := uc.ImageRepo.CreateGeneratedImage(image); err != nil {
		return nil, err
	}

	resp := &GenerateImageResponse{
		ImageURL:       image.ImageURL,
		GenerationTime: image.CreatedAt,
		FeedbackPrompt: feedbackPrompt,
	}
	if external {
		resp.CacheID = externalCacheID
		resp.FeedbackPrompt = externalFeedbackPrompt
	}

	if uc.Events != nil {
		uc.Events.PublishImageGenerated(image.UserID, image.ID, image.ImageURL, image.CreatedAt)
	}
	return resp, nil
}
