package usecases

import (
	"time"

	"imagemaker-server/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. They mimic what the persistence layer does on
// insert (id assignment, timestamps, unique constraints) so the usecases
// under test see the same behavior as against Postgres.

type fakeStyleRepo struct {
	styles    map[string]*entities.Style
	createErr error
}

func newFakeStyleRepo() *fakeStyleRepo {
	return &fakeStyleRepo{styles: make(map[string]*entities.Style)}
}

func (f *fakeStyleRepo) Create(style *entities.Style) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.styles {
		if existing.Name == style.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	style.ID = uuid.New().String()
	style.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	copied := *style
	f.styles[style.ID] = &copied
	return nil
}

func (f *fakeStyleRepo) GetByID(id string) (*entities.Style, error) {
	style, ok := f.styles[id]
	if !ok {
		return nil, nil
	}
	copied := *style
	return &copied, nil
}

func (f *fakeStyleRepo) GetByName(name string) (*entities.Style, error) {
	for _, style := range f.styles {
		if style.Name == name {
			copied := *style
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeStyleRepo) GetAll() ([]entities.Style, error) {
	all := make([]entities.Style, 0, len(f.styles))
	for _, style := range f.styles {
		all = append(all, *style)
	}
	return all, nil
}

func (f *fakeStyleRepo) Delete(id string) error {
	delete(f.styles, id)
	return nil
}

type fakeUserRepo struct {
	users          map[string]*entities.User
	profiles       map[string]*entities.Profile     // keyed by user id
	preferences    map[string]*entities.UserPreferences // keyed by user id
	profileUpdates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:       make(map[string]*entities.User),
		profiles:    make(map[string]*entities.Profile),
		preferences: make(map[string]*entities.UserPreferences),
	}
}

func (f *fakeUserRepo) CreateWithProfile(user *entities.User, profile *entities.Profile) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = uuid.New().String()
	userCopy := *user
	f.users[user.ID] = &userCopy

	profile.ID = uuid.New().String()
	profile.UserID = user.ID
	profileCopy := *profile
	f.profiles[user.ID] = &profileCopy
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfile(userID string, firstName, lastName *string) error {
	f.profileUpdates++
	profile, ok := f.profiles[userID]
	if !ok {
		profile = &entities.Profile{ID: uuid.New().String(), UserID: userID}
		f.profiles[userID] = profile
	}
	profile.FirstName = firstName
	profile.LastName = lastName
	return nil
}

func (f *fakeUserRepo) UpsertPreferences(userID string, theme, language *string) error {
	prefs, ok := f.preferences[userID]
	if !ok {
		prefs = &entities.UserPreferences{ID: uuid.New().String(), UserID: userID}
		f.preferences[userID] = prefs
	}
	prefs.Theme = theme
	prefs.Language = language
	return nil
}

type fakeImageRepo struct {
	images []*entities.GeneratedImage
	logs   []*entities.ImageRequestLog
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{}
}

func (f *fakeImageRepo) CreateGeneratedImage(image *entities.GeneratedImage) error {
	image.ID = uuid.New().String()
	image.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if image.TextInput != nil {
		image.TextInput.ID = uuid.New().String()
		image.TextInput.GeneratedImageID = &image.ID
	}
	f.images = append(f.images, image)
	return nil
}

func (f *fakeImageRepo) CreateRequestLog(logEntry *entities.ImageRequestLog) error {
	logEntry.ID = uuid.New().String()
	logEntry.RequestTime = time.Now().UTC().Format(time.RFC3339)
	if logEntry.TextInput != nil {
		logEntry.TextInput.ID = uuid.New().String()
		logEntry.TextInput.ImageRequestLogID = &logEntry.ID
	}
	f.logs = append(f.logs, logEntry)
	return nil
}

func (f *fakeImageRepo) GetGeneratedImageByID(id string) (*entities.GeneratedImage, error) {
	for _, image := range f.images {
		if image.ID == id {
			copied := *image
			return &copied, nil
		}
	}
	return nil, nil
}

type fakeFeedbackRepo struct {
	submissions []*entities.FeedbackSubmission
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{}
}

func (f *fakeFeedbackRepo) Create(submission *entities.FeedbackSubmission) error {
	submission.ID = uuid.New().String()
	submission.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	f.submissions = append(f.submissions, submission)
	return nil
}

type fakePublisher struct {
	events []publishedEvent
}

type publishedEvent struct {
	userID      string
	imageID     string
	imageURL    string
	generatedAt string
}

func (f *fakePublisher) PublishImageGenerated(userID, imageID, imageURL, generatedAt string) {
	f.events = append(f.events, publishedEvent{userID, imageID, imageURL, generatedAt})
}
