package httpHandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"imagemaker-server/entities"
	"imagemaker-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Compact in-memory repositories backing the handlers under test.

type memStyleRepo struct{ styles map[string]*entities.Style }

func (m *memStyleRepo) Create(style *entities.Style) error {
	for _, existing := range m.styles {
		if existing.Name == style.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	style.ID = uuid.New().String()
	style.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	m.styles[style.ID] = style
	return nil
}

func (m *memStyleRepo) GetByID(id string) (*entities.Style, error) {
	style, ok := m.styles[id]
	if !ok {
		return nil, nil
	}
	return style, nil
}

func (m *memStyleRepo) GetByName(name string) (*entities.Style, error) {
	for _, style := range m.styles {
		if style.Name == name {
			return style, nil
		}
	}
	return nil, nil
}

func (m *memStyleRepo) GetAll() ([]entities.Style, error) {
	all := make([]entities.Style, 0, len(m.styles))
	for _, style := range m.styles {
		all = append(all, *style)
	}
	return all, nil
}

func (m *memStyleRepo) Delete(id string) error {
	delete(m.styles, id)
	return nil
}

type memUserRepo struct {
	users    map[string]*entities.User
	profiles map[string]*entities.Profile
	prefs    map[string]*entities.UserPreferences
}

func (m *memUserRepo) CreateWithProfile(user *entities.User, profile *entities.Profile) error {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = uuid.New().String()
	m.users[user.ID] = user
	profile.UserID = user.ID
	m.profiles[user.ID] = profile
	return nil
}

func (m *memUserRepo) GetByID(id string) (*entities.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (m *memUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) UpdateProfile(userID string, firstName, lastName *string) error {
	m.profiles[userID] = &entities.Profile{UserID: userID, FirstName: firstName, LastName: lastName}
	return nil
}

func (m *memUserRepo) UpsertPreferences(userID string, theme, language *string) error {
	m.prefs[userID] = &entities.UserPreferences{UserID: userID, Theme: theme, Language: language}
	return nil
}

type memImageRepo struct {
	images []*entities.GeneratedImage
	logs   []*entities.ImageRequestLog
}

func (m *memImageRepo) CreateGeneratedImage(image *entities.GeneratedImage) error {
	image.ID = uuid.New().String()
	image.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	m.images = append(m.images, image)
	return nil
}

func (m *memImageRepo) CreateRequestLog(logEntry *entities.ImageRequestLog) error {
	logEntry.ID = uuid.New().String()
	logEntry.RequestTime = time.Now().UTC().Format(time.RFC3339)
	m.logs = append(m.logs, logEntry)
	return nil
}

func (m *memImageRepo) GetGeneratedImageByID(id string) (*entities.GeneratedImage, error) {
	for _, image := range m.images {
		if image.ID == id {
			return image, nil
		}
	}
	return nil, nil
}

type memFeedbackRepo struct{ submissions []*entities.FeedbackSubmission }

func (m *memFeedbackRepo) Create(submission *entities.FeedbackSubmission) error {
	submission.ID = uuid.New().String()
	m.submissions = append(m.submissions, submission)
	return nil
}

type fixture struct {
	router    *gin.Engine
	styleRepo *memStyleRepo
	userRepo  *memUserRepo
	imageRepo *memImageRepo
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)

	styleRepo := &memStyleRepo{styles: make(map[string]*entities.Style)}
	userRepo := &memUserRepo{
		users:    make(map[string]*entities.User),
		profiles: make(map[string]*entities.Profile),
		prefs:    make(map[string]*entities.UserPreferences),
	}
	imageRepo := &memImageRepo{}
	feedbackRepo := &memFeedbackRepo{}

	userHandler := NewUserHandler(usecases.NewUserUseCase(userRepo))
	styleHandler := NewStyleHandler(usecases.NewStyleUseCase(styleRepo))
	imageHandler := NewImageHandler(usecases.NewImageUseCase(imageRepo, nil))
	feedbackHandler := NewFeedbackHandler(usecases.NewFeedbackUseCase(feedbackRepo, userRepo, imageRepo))

	router := gin.New()
	router.POST("/user", userHandler.CreateUser)
	router.POST("/login", userHandler.Login)
	router.PUT("/user/profile", userHandler.UpdateProfile)
	router.POST("/styles", styleHandler.CreateStyle)
	router.GET("/styles", styleHandler.ListStyles)
	router.DELETE("/styles/:id", styleHandler.DeleteStyle)
	router.POST("/generate-image", imageHandler.GenerateImage)
	router.POST("/api/generate-image", imageHandler.GenerateImageExternal)
	router.POST("/feedback/submit", feedbackHandler.SubmitFeedback)
	router.POST("/report/content", feedbackHandler.ReportContent)

	return &fixture{router: router, styleRepo: styleRepo, userRepo: userRepo, imageRepo: imageRepo}
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func TestCreateUserEndpoint(t *testing.T) {
	f := newFixture()

	rec, body := f.do(t, http.MethodPost, "/user", gin.H{
		"email":      "jane@example.com",
		"password":   "secret",
		"first_name": "Jane",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["user_id"])

	// Duplicate email stays HTTP 200 with a failure value.
	rec, body = f.do(t, http.MethodPost, "/user", gin.H{
		"email":    "jane@example.com",
		"password": "other",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "Failed to create user account")
}

func TestLoginEndpoint(t *testing.T) {
	f := newFixture()
	_, created := f.do(t, http.MethodPost, "/user", gin.H{"email": "jane@example.com", "password": "secret"})
	userID := created["user_id"].(string)

	rec, body := f.do(t, http.MethodPost, "/login", gin.H{"email": "jane@example.com", "password": "secret"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "token_for_user_"+userID, body["token"])
	assert.Equal(t, userID, body["user_id"])

	rec, body = f.do(t, http.MethodPost, "/login", gin.H{"email": "jane@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, body["error"])
	assert.NotContains(t, body, "token")
}

func TestUpdateProfileEndpoint(t *testing.T) {
	f := newFixture()
	f.do(t, http.MethodPost, "/user", gin.H{"email": "taken@example.com", "password": "pw"})

	rec, body := f.do(t, http.MethodPut, "/user/profile", gin.H{
		"first_name":  "New",
		"email":       "taken@example.com",
		"preferences": gin.H{"theme": "dark"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Email already exists.", body["message"])

	rec, body = f.do(t, http.MethodPut, "/user/profile", gin.H{
		"first_name":  "Jane",
		"preferences": gin.H{"theme": "dark", "language": "en"},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
}

func TestStyleEndpoints(t *testing.T) {
	f := newFixture()

	rec, body := f.do(t, http.MethodGet, "/styles", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	styles, ok := body["styles"].([]interface{})
	require.True(t, ok, "styles must be present and a list")
	assert.Empty(t, styles)

	rec, body = f.do(t, http.MethodPost, "/styles", gin.H{"name": "Abstract", "description": "blobs"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "Abstract", body["name"])
	assert.NotEmpty(t, body["createdAt"])
	styleID := body["id"].(string)

	// Duplicate names are rejected as a client error, not a 500.
	rec, body = f.do(t, http.MethodPost, "/styles", gin.H{"name": "Abstract"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "already exists")

	rec, body = f.do(t, http.MethodDelete, "/styles/"+styleID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	rec, body = f.do(t, http.MethodDelete, "/styles/"+styleID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Style not found.", body["message"])
}

func TestGenerateImageEndpoints(t *testing.T) {
	f := newFixture()

	rec, body := f.do(t, http.MethodPost, "/generate-image", gin.H{
		"user_id":          "u1",
		"text_description": "a cat",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["image_url"])
	assert.NotEmpty(t, body["generation_time"])
	assert.NotContains(t, body, "cache_id")
	assert.Equal(t, "Please share your feedback on this image.", body["feedback_prompt"])

	rec, body = f.do(t, http.MethodPost, "/api/generate-image", gin.H{
		"user_id":          "u1",
		"text_description": "a cat",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc123", body["cache_id"])
	assert.Equal(t, "Do you like the generated image? Your feedback is welcome.", body["feedback_prompt"])

	// Both variants log and record.
	assert.Len(t, f.imageRepo.logs, 2)
	assert.Len(t, f.imageRepo.images, 2)

	rec, _ = f.do(t, http.MethodPost, "/generate-image", gin.H{"user_id": "u1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeedbackEndpoints(t *testing.T) {
	f := newFixture()

	rec, body := f.do(t, http.MethodPost, "/feedback/submit", gin.H{
		"userId":   "u1",
		"category": "UI",
		"feedback": "Had an issue with the navigation.",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Success", body["status"])

	_, created := f.do(t, http.MethodPost, "/user", gin.H{"email": "r@example.com", "password": "pw"})
	userID := created["user_id"].(string)

	rec, body = f.do(t, http.MethodPost, "/report/content", gin.H{
		"user_id":  userID,
		"image_id": "no-such-image",
		"reason":   "copyright",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Generated image not found", body["message"])
	assert.Equal(t, "", body["report_id"])

	f.do(t, http.MethodPost, "/generate-image", gin.H{"user_id": userID, "text_description": "a cat"})
	imageID := f.imageRepo.images[0].ID

	rec, body = f.do(t, http.MethodPost, "/report/content", gin.H{
		"user_id":  userID,
		"image_id": imageID,
		"reason":   "copyright",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "simulated_db_report_id", body["report_id"])
}
