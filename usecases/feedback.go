package usecases

import (
	"fmt"

	"imagemaker-server/entities"
	"imagemaker-server/repositories"
)

// simulatedReportID is returned for every accepted report instead of the
// inserted row's id. Kept as-is until report tracking is built out.
const simulatedReportID = "simulated_db_report_id"

type FeedbackUseCase struct {
	FeedbackRepo repositories.FeedbackRepository
	UserRepo     repositories.UserRepository
	ImageRepo    repositories.ImageRepository
}

func NewFeedbackUseCase(feedbackRepo repositories.FeedbackRepository, userRepo repositories.UserRepository, imageRepo repositories.ImageRepository) *FeedbackUseCase {
	return &FeedbackUseCase{FeedbackRepo: feedbackRepo, UserRepo: userRepo, ImageRepo: imageRepo}
}

type SubmitFeedbackResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type ReportContentResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ReportID string `json:"report_id"`
}

// SubmitFeedback stores the feedback text, folding the optional category
// into the content string. The user id is taken as given.
func (uc *FeedbackUseCase) SubmitFeedback(userID string, category *string, feedback string) (*SubmitFeedbackResponse, error) {
	content := feedback
	if category != nil && *category != "" {
		content = fmt.Sprintf("Category: %s - %s", *category, feedback)
	}

	submission := &entities.FeedbackSubmission{UserID: userID, Content: content}
	if err := uc.FeedbackRepo.Create(submission); err != nil {
		return nil, err
	}

	return &SubmitFeedbackResponse{
		Status:  "Success",
		Message: "Your feedback has been received. Thank you!",
	}, nil
}

// ReportContent files a report against a generated image. Unknown users or
// images are domain failures with an empty report id.
func (uc *FeedbackUseCase) ReportContent(userID, imageID, reason string, additionalDetails *string) (*ReportContentResponse, error) {
	user, err := uc.UserRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &ReportContentResponse{Success: false, Message: "User not found", ReportID: ""}, nil
	}

	image, err := uc.ImageRepo.GetGeneratedImageByID(imageID)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return &ReportContentResponse{Success: false, Message: "Generated image not found", ReportID: ""}, nil
	}

	details := "N/A"
	if additionalDetails != nil && *additionalDetails != "" {
		details = *additionalDetails
	}

	submission := &entities.FeedbackSubmission{
		UserID: userID,
		Content: fmt.Sprintf("Report for image ID %s by User ID %s. Reason: %s. Additional details: %s",
			imageID, userID, reason, details),
	}
	if err := uc.FeedbackRepo.Create(submission); err != nil {
		return nil, err
	}

	return &ReportContentResponse{
		Success:  true,
		Message:  "Report submitted successfully. We will review it as soon as possible.",
		ReportID: simulatedReportID,
	}, nil
}
